package models

import (
	"strings"

	"github.com/cashrunway/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusReversed  PaymentStatus = "reversed"
)

// PaymentEvent is a payment that left a bank account.
type PaymentEvent struct {
	DefaultModel
	UserID       uuid.UUID       `json:"userId" gorm:"index"`
	ObligationID *uuid.UUID      `json:"obligationId"`
	ScheduleID   *uuid.UUID      `json:"scheduleId"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:DECIMAL(15,2)"`
	Currency     string          `json:"currency"`
	PaymentDate  types.Date      `json:"paymentDate" gorm:"index"`
	Status       PaymentStatus   `json:"status"`
	Source       string          `json:"source"`
	VendorName   string          `json:"vendorName"`
	Reference    string          `json:"reference"`
	IsReconciled bool            `json:"isReconciled"`
}

func (p *PaymentEvent) BeforeSave(_ *gorm.DB) error {
	p.VendorName = strings.TrimSpace(p.VendorName)
	p.Reference = strings.TrimSpace(p.Reference)
	p.Currency = normalizeCurrency(p.Currency)

	if p.Status == "" {
		p.Status = PaymentStatusPending
	}

	return nil
}

func (p *PaymentEvent) AfterSave(_ *gorm.DB) error {
	if p.Amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}
