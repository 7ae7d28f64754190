package models

import (
	"strings"

	"github.com/cashrunway/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultCurrency is used for all resources that do not specify a currency.
const DefaultCurrency = "USD"

// CashAccount is a bank account whose balance contributes to the starting cash.
type CashAccount struct {
	DefaultModel
	UserID      uuid.UUID       `json:"userId" gorm:"index;uniqueIndex:cash_account_user_name"`
	AccountName string          `json:"accountName" gorm:"uniqueIndex:cash_account_user_name"`
	Balance     decimal.Decimal `json:"balance" gorm:"type:DECIMAL(15,2)"`
	Currency    string          `json:"currency"`
	AsOfDate    types.Date      `json:"asOfDate"`
}

func (a *CashAccount) BeforeSave(_ *gorm.DB) error {
	a.AccountName = strings.TrimSpace(a.AccountName)
	a.Currency = normalizeCurrency(a.Currency)

	return nil
}

func normalizeCurrency(c string) string {
	c = strings.ToUpper(strings.TrimSpace(c))
	if c == "" {
		return DefaultCurrency
	}
	return c
}
