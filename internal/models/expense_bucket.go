package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BucketType string

const (
	BucketTypeFixed    BucketType = "fixed"
	BucketTypeVariable BucketType = "variable"
)

type Priority string

const (
	PriorityEssential Priority = "essential"
	PriorityHigh      Priority = "high"
	PriorityMedium    Priority = "medium"
	PriorityLow       Priority = "low"
)

// DefaultDueDay is the day of the month expenses are due on if none is set.
const DefaultDueDay = 15

// ExpenseBucket is a recurring expense.
type ExpenseBucket struct {
	DefaultModel
	UserID            uuid.UUID       `json:"userId" gorm:"index"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	BucketType        BucketType      `json:"bucketType"`
	MonthlyAmount     decimal.Decimal `json:"monthlyAmount" gorm:"type:DECIMAL(15,2)"`
	Currency          string          `json:"currency"`
	Priority          Priority        `json:"priority"`
	IsStable          bool            `json:"isStable"`
	DueDay            *int            `json:"dueDay"`
	Frequency         string          `json:"frequency"`
	ExternalContactID string          `json:"externalContactId"`
	LastSyncedAt      *time.Time      `json:"lastSyncedAt"`
	Notes             string          `json:"notes"`
}

func (b *ExpenseBucket) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Category = strings.TrimSpace(b.Category)
	b.Notes = strings.TrimSpace(b.Notes)
	b.Currency = normalizeCurrency(b.Currency)

	return nil
}

func (b *ExpenseBucket) AfterSave(_ *gorm.DB) error {
	if b.MonthlyAmount.IsNegative() {
		return ErrAmountNegative
	}

	if b.DueDay != nil && (*b.DueDay < 1 || *b.DueDay > 31) {
		return ErrDueDayInvalid
	}

	return nil
}

// EffectiveDueDay returns the configured due day or DefaultDueDay.
func (b ExpenseBucket) EffectiveDueDay() int {
	if b.DueDay == nil {
		return DefaultDueDay
	}
	return *b.DueDay
}
