package forecast

import (
	"fmt"
	"time"

	"github.com/cashrunway/backend/internal/billing"
	"github.com/cashrunway/backend/internal/models"
	"github.com/cashrunway/backend/internal/types"
	"github.com/shopspring/decimal"
)

type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// StaleAfter is the number of days after which synced data is considered
// out of date.
const StaleAfter = 30

var (
	highThreshold   = decimal.RequireFromString("0.8")
	mediumThreshold = decimal.RequireFromString("0.5")

	scoreIntegration = decimal.RequireFromString("0.9")
	scoreStale       = decimal.RequireFromString("0.7")
	scoreManual      = decimal.RequireFromString("0.6")
	scorePlaceholder = decimal.RequireFromString("0.5")
	scoreVariableCap = decimal.RequireFromString("0.7")

	latePayerFactor = decimal.RequireFromString("0.8")
)

// LevelOf quantizes a score into a Level.
func LevelOf(score decimal.Decimal) Level {
	switch {
	case score.GreaterThanOrEqual(highThreshold):
		return LevelHigh
	case score.GreaterThanOrEqual(mediumThreshold):
		return LevelMedium
	default:
		return LevelLow
	}
}

// ParseLevel returns the Level for a label. ok is false for unknown labels.
func ParseLevel(s string) (level Level, ok bool) {
	switch Level(s) {
	case LevelHigh, LevelMedium, LevelLow:
		return Level(s), true
	}
	return "", false
}

// Basis names what a score is derived from. It determines which improvement
// is suggested for a source.
type Basis string

const (
	BasisIntegration Basis = "integration"
	BasisStale       Basis = "stale"
	BasisManual      Basis = "manual"
	BasisVariable    Basis = "variable"
	BasisLatePayer   Basis = "late_payer"
	BasisMissing     Basis = "missing"
	BasisUnlinked    Basis = "unlinked"
	BasisObligation  Basis = "obligation"
)

// Score is the confidence in the data of a single source.
type Score struct {
	Level  Level           `json:"level"`
	Value  decimal.Decimal `json:"score"`
	Reason string          `json:"reason"`
	Basis  Basis           `json:"-"`
}

func newScore(value decimal.Decimal, reason string, basis Basis) Score {
	return Score{
		Level:  LevelOf(value),
		Value:  value.Round(2),
		Reason: reason,
		Basis:  basis,
	}
}

// placeholder is used when a linked source no longer exists.
func placeholder(reason string) Score {
	return newScore(scorePlaceholder, reason, BasisUnlinked)
}

// integrationScore scores data that comes from an accounting integration.
func integrationScore(lastSynced *time.Time, today types.Date) Score {
	if lastSynced != nil {
		age := types.DateOf(*lastSynced).DaysUntil(today)
		if age > StaleAfter {
			return newScore(scoreStale, fmt.Sprintf("Last synced %d days ago", age), BasisStale)
		}
	}

	return newScore(scoreIntegration, "Synced from accounting integration", BasisIntegration)
}

// ClientConfidence scores the revenue data of a client.
func ClientConfidence(c models.Client, cfg billing.Config, today types.Date) Score {
	var s Score

	switch {
	case len(c.BillingConfig) == 0:
		s = newScore(scorePlaceholder, "No billing data available", BasisMissing)
	case c.ExternalContactID != "" || cfg.Linked():
		s = integrationScore(c.LastSyncedAt, today)
	default:
		s = newScore(scoreManual, "Manually entered", BasisManual)
	}

	if c.ClientType == models.ClientTypeUsage && s.Value.GreaterThan(scoreVariableCap) {
		s = newScore(scoreVariableCap, s.Reason+", usage-based amounts vary", BasisVariable)
	}

	if c.PaymentBehavior == models.PaymentBehaviorDelayed {
		s = newScore(s.Value.Mul(latePayerFactor), s.Reason+", usually pays late", BasisLatePayer)
	}

	return s
}

// ExpenseConfidence scores the data of an expense bucket.
func ExpenseConfidence(b models.ExpenseBucket, today types.Date) Score {
	if b.ExternalContactID != "" {
		return integrationScore(b.LastSyncedAt, today)
	}

	if b.BucketType == models.BucketTypeVariable || !b.IsStable {
		return newScore(scoreManual, "Manually entered, amount varies", BasisVariable)
	}

	return newScore(scoreStale, "Manually entered fixed amount", BasisManual)
}

// ObligationConfidence scores an occurrence of an obligation that is not
// linked to a client or expense bucket.
func ObligationConfidence(o models.ObligationAgreement, s models.ObligationSchedule) Score {
	var value decimal.Decimal
	var reason string

	switch o.AmountSource {
	case models.AmountSourceXeroSync:
		value, reason = decimal.RequireFromString("0.9"), "Synced from Xero"
	case models.AmountSourceRepeatingInvoice:
		value, reason = decimal.RequireFromString("0.85"), "From repeating invoice"
	case models.AmountSourceContractUpload:
		value, reason = decimal.RequireFromString("0.7"), "From contract upload"
	default:
		value, reason = decimal.RequireFromString("0.6"), "Manual entry"
	}

	switch s.EstimateSource {
	case models.EstimateSourceHistoricalAverage:
		value = value.Mul(decimal.RequireFromString("0.9"))
		reason += " (historical average)"
	case models.EstimateSourceManualEstimate:
		value = value.Mul(decimal.RequireFromString("0.8"))
		reason += " (manual estimate)"
	}

	return newScore(value, reason, BasisObligation)
}
