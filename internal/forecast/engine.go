// Package forecast projects the cash position of a user into the future.
//
// Sources are expanded into dated events, each carrying a confidence
// level. The events are aggregated into weekly balances and summarized.
// Nothing is persisted, every calculation starts from the sources.
package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/cashrunway/backend/internal/models"
	"github.com/cashrunway/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const (
	DefaultWeeks = 13
	MaxWeeks     = 52
)

// Options configure a single forecast calculation.
type Options struct {
	Weeks    int        // Number of weeks, DefaultWeeks if 0
	Strategy Strategy   // StrategyLegacy if empty
	Today    types.Date // First day of the forecast, the current date if zero
}

// Result is a calculated forecast.
type Result struct {
	StartingCash      decimal.Decimal   `json:"startingCash" example:"12000.00"`
	Currency          string            `json:"currency" example:"USD"`
	ForecastStartDate types.Date        `json:"forecastStartDate" example:"2024-01-01"`
	ForecastEndDate   types.Date        `json:"forecastEndDate" example:"2024-03-31"`
	Strategy          Strategy          `json:"strategy" example:"legacy"`
	Weeks             []Week            `json:"weeks"`
	Summary           Summary           `json:"summary"`
	Confidence        ConfidenceSummary `json:"confidence"`
}

// Engine calculates forecasts from a Source.
//
// It does not hold any state between calculations and is safe for
// concurrent use if the Source is.
type Engine struct {
	source Source
}

func NewEngine(source Source) Engine {
	return Engine{source: source}
}

// Calculate calculates the forecast for a user.
//
// Errors of the source are returned as they are, all other problems with
// the data of single sources only skip the affected source.
func (e Engine) Calculate(ctx context.Context, userID uuid.UUID, opts Options) (Result, error) {
	opts, err := opts.normalize()
	if err != nil {
		return Result{}, err
	}

	materializer, err := opts.Strategy.Materializer(e.source)
	if err != nil {
		return Result{}, err
	}

	window := NewWindow(opts.Today, opts.Weeks)

	accounts, err := e.source.CashAccounts(ctx, userID)
	if err != nil {
		return Result{}, err
	}

	m, err := materializer.Materialize(ctx, userID, window)
	if err != nil {
		return Result{}, err
	}

	startingCash := decimal.Zero
	for _, a := range accounts {
		startingCash = startingCash.Add(a.Balance)
	}

	weeks := Aggregate(m.Events, startingCash, window.Start, opts.Weeks)

	log.Debug().
		Str("user", userID.String()).
		Str("strategy", string(opts.Strategy)).
		Int("events", len(m.Events)).
		Int("sources", len(m.Sources)).
		Msg("calculated forecast")

	return Result{
		StartingCash:      startingCash,
		Currency:          reportingCurrency(accounts),
		ForecastStartDate: window.Start,
		ForecastEndDate:   window.End,
		Strategy:          opts.Strategy,
		Weeks:             weeks,
		Summary:           Summarize(weeks),
		Confidence:        SummarizeConfidence(m.Sources),
	}, nil
}

func (o Options) normalize() (Options, error) {
	if o.Weeks == 0 {
		o.Weeks = DefaultWeeks
	}

	if o.Weeks < 1 || o.Weeks > MaxWeeks {
		return Options{}, fmt.Errorf("%w, got %d", ErrInvalidWeeks, o.Weeks)
	}

	if o.Strategy == "" {
		o.Strategy = StrategyLegacy
	}

	if o.Today.IsZero() {
		o.Today = types.DateOf(time.Now())
	}

	return o, nil
}

// reportingCurrency returns the currency the starting cash is reported in.
//
// Balances are not converted. If the accounts use different currencies,
// the currency of the first account is used.
func reportingCurrency(accounts []models.CashAccount) string {
	var result currency.Unit
	found := false

	for _, a := range accounts {
		unit, err := currency.ParseISO(a.Currency)
		if err != nil {
			log.Debug().Str("account", a.ID.String()).Str("currency", a.Currency).Msg("ignoring unknown currency")
			continue
		}

		if !found {
			result, found = unit, true
			continue
		}

		if unit != result {
			log.Warn().Str("currency", result.String()).Str("other", unit.String()).Msg("cash accounts use different currencies, balances are summed without conversion")
		}
	}

	if !found {
		return models.DefaultCurrency
	}
	return result.String()
}
