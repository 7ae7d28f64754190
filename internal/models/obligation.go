package models

import (
	"strings"

	"github.com/cashrunway/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AmountSource describes where the amount of an obligation comes from.
type AmountSource string

const (
	AmountSourceManual           AmountSource = "manual"
	AmountSourceXeroSync         AmountSource = "xero_sync"
	AmountSourceRepeatingInvoice AmountSource = "repeating_invoice"
	AmountSourceContractUpload   AmountSource = "contract_upload"
)

type AmountType string

const (
	AmountTypeFixed     AmountType = "fixed"
	AmountTypeVariable  AmountType = "variable"
	AmountTypeMilestone AmountType = "milestone"
)

// ObligationAgreement is a canonical commitment to pay or receive money.
//
// It is linked to either a Client, an ExpenseBucket or nothing at all.
type ObligationAgreement struct {
	DefaultModel
	UserID          uuid.UUID           `json:"userId" gorm:"index"`
	ObligationType  string              `json:"obligationType"`
	AmountType      AmountType          `json:"amountType"`
	AmountSource    AmountSource        `json:"amountSource"`
	BaseAmount      decimal.NullDecimal `json:"baseAmount" gorm:"type:DECIMAL(15,2)"`
	VariabilityRule datatypes.JSON      `json:"variabilityRule"`
	Currency        string              `json:"currency"`
	Frequency       string              `json:"frequency"`
	StartDate       types.Date          `json:"startDate"`
	EndDate         *types.Date         `json:"endDate"`
	Category        string              `json:"category"`
	Confidence      string              `json:"confidence"`
	VendorName      string              `json:"vendorName"`
	ClientID        *uuid.UUID          `json:"clientId" gorm:"index"`
	ExpenseBucketID *uuid.UUID          `json:"expenseBucketId" gorm:"index"`
	Notes           string              `json:"notes"`
}

func (o *ObligationAgreement) BeforeSave(_ *gorm.DB) error {
	o.VendorName = strings.TrimSpace(o.VendorName)
	o.Notes = strings.TrimSpace(o.Notes)
	o.Currency = normalizeCurrency(o.Currency)

	if o.AmountSource == "" {
		o.AmountSource = AmountSourceManual
	}

	return nil
}

func (o *ObligationAgreement) AfterSave(_ *gorm.DB) error {
	if o.BaseAmount.Valid && o.BaseAmount.Decimal.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// ScheduleStatus is the lifecycle state of a single obligation occurrence.
type ScheduleStatus string

const (
	ScheduleStatusScheduled ScheduleStatus = "scheduled"
	ScheduleStatusDue       ScheduleStatus = "due"
	ScheduleStatusPaid      ScheduleStatus = "paid"
	ScheduleStatusOverdue   ScheduleStatus = "overdue"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
)

// Projectable reports whether an occurrence in this state is still expected
// to move cash.
func (s ScheduleStatus) Projectable() bool {
	return s == ScheduleStatusScheduled || s == ScheduleStatusDue
}

// EstimateSource describes how the amount of a schedule was estimated.
type EstimateSource string

const (
	EstimateSourceFixedAgreement    EstimateSource = "fixed_agreement"
	EstimateSourceHistoricalAverage EstimateSource = "historical_average"
	EstimateSourceManualEstimate    EstimateSource = "manual_estimate"
	EstimateSourceXeroInvoice       EstimateSource = "xero_invoice"
)

// ObligationSchedule is one occurrence of an ObligationAgreement.
type ObligationSchedule struct {
	DefaultModel
	ObligationID    uuid.UUID           `json:"obligationId" gorm:"index"`
	Obligation      ObligationAgreement `json:"-"`
	DueDate         types.Date          `json:"dueDate" gorm:"index"`
	PeriodStart     *types.Date         `json:"periodStart"`
	PeriodEnd       *types.Date         `json:"periodEnd"`
	EstimatedAmount decimal.Decimal     `json:"estimatedAmount" gorm:"type:DECIMAL(15,2)"`
	EstimateSource  EstimateSource      `json:"estimateSource"`
	Confidence      string              `json:"confidence"`
	Status          ScheduleStatus      `json:"status"`
	Notes           string              `json:"notes"`
}

func (s *ObligationSchedule) BeforeSave(_ *gorm.DB) error {
	s.Notes = strings.TrimSpace(s.Notes)

	if s.ObligationID == uuid.Nil {
		return ErrScheduleObligationRequired
	}

	if s.Status == "" {
		s.Status = ScheduleStatusScheduled
	}

	return nil
}

func (s *ObligationSchedule) AfterSave(_ *gorm.DB) error {
	if s.EstimatedAmount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}
