package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ClientType string

const (
	ClientTypeRetainer ClientType = "retainer"
	ClientTypeProject  ClientType = "project"
	ClientTypeUsage    ClientType = "usage"
	ClientTypeMixed    ClientType = "mixed"
)

type ClientStatus string

const (
	ClientStatusActive  ClientStatus = "active"
	ClientStatusPaused  ClientStatus = "paused"
	ClientStatusDeleted ClientStatus = "deleted"
)

type PaymentBehavior string

const (
	PaymentBehaviorOnTime  PaymentBehavior = "on_time"
	PaymentBehaviorDelayed PaymentBehavior = "delayed"
	PaymentBehaviorUnknown PaymentBehavior = "unknown"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Client is a revenue source.
//
// How a client bills is described by BillingConfig, whose shape depends on
// ClientType.
type Client struct {
	DefaultModel
	UserID            uuid.UUID       `json:"userId" gorm:"index"`
	Name              string          `json:"name"`
	ClientType        ClientType      `json:"clientType"`
	Currency          string          `json:"currency"`
	Status            ClientStatus    `json:"status" gorm:"index"`
	PaymentBehavior   PaymentBehavior `json:"paymentBehavior"`
	ChurnRisk         RiskLevel       `json:"churnRisk"`
	ScopeRisk         RiskLevel       `json:"scopeRisk"`
	BillingConfig     datatypes.JSON  `json:"billingConfig"`
	ExternalContactID string          `json:"externalContactId"` // ID of the contact in the connected accounting system
	LastSyncedAt      *time.Time      `json:"lastSyncedAt"`
	Notes             string          `json:"notes"`
}

func (c *Client) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Notes = strings.TrimSpace(c.Notes)
	c.Currency = normalizeCurrency(c.Currency)

	if c.Status == "" {
		c.Status = ClientStatusActive
	}

	if c.PaymentBehavior == "" {
		c.PaymentBehavior = PaymentBehaviorUnknown
	}

	return nil
}

// IsActive reports whether the client contributes to forecasts.
func (c Client) IsActive() bool {
	return c.Status == ClientStatusActive
}
