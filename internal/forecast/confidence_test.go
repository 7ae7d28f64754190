package forecast_test

import (
	"testing"
	"time"

	"github.com/cashrunway/backend/internal/billing"
	"github.com/cashrunway/backend/internal/forecast"
	"github.com/cashrunway/backend/internal/models"
	"github.com/cashrunway/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestLevelOf(t *testing.T) {
	tests := []struct {
		score string
		level forecast.Level
	}{
		{"1", forecast.LevelHigh},
		{"0.8", forecast.LevelHigh},
		{"0.79", forecast.LevelMedium},
		{"0.5", forecast.LevelMedium},
		{"0.49", forecast.LevelLow},
		{"0", forecast.LevelLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, forecast.LevelOf(decimal.RequireFromString(tt.score)), tt.score)
	}
}

func TestClientConfidence(t *testing.T) {
	today := types.NewDate(2024, time.March, 1)
	recent := time.Date(2024, time.February, 20, 12, 0, 0, 0, time.UTC)
	stale := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		client models.Client
		score  string
		level  forecast.Level
		reason string
	}{
		{
			"manual",
			models.Client{ClientType: models.ClientTypeRetainer, BillingConfig: datatypes.JSON(`{"amount": 100}`)},
			"0.6", forecast.LevelMedium, "Manually entered",
		},
		{
			"no billing data",
			models.Client{ClientType: models.ClientTypeRetainer},
			"0.5", forecast.LevelMedium, "No billing data available",
		},
		{
			"integration",
			models.Client{ClientType: models.ClientTypeRetainer, ExternalContactID: "c1", LastSyncedAt: &recent, BillingConfig: datatypes.JSON(`{"amount": 100}`)},
			"0.9", forecast.LevelHigh, "Synced from accounting integration",
		},
		{
			"integration through billing config",
			models.Client{ClientType: models.ClientTypeRetainer, BillingConfig: datatypes.JSON(`{"amount": 100, "source": "xero_sync"}`)},
			"0.9", forecast.LevelHigh, "Synced from accounting integration",
		},
		{
			"stale",
			models.Client{ClientType: models.ClientTypeRetainer, ExternalContactID: "c1", LastSyncedAt: &stale, BillingConfig: datatypes.JSON(`{"amount": 100}`)},
			"0.7", forecast.LevelMedium, "Last synced 46 days ago",
		},
		{
			"usage is capped",
			models.Client{ClientType: models.ClientTypeUsage, ExternalContactID: "c1", BillingConfig: datatypes.JSON(`{"typical_amount": 100}`)},
			"0.7", forecast.LevelMedium, "Synced from accounting integration, usage-based amounts vary",
		},
		{
			"late payer",
			models.Client{ClientType: models.ClientTypeRetainer, ExternalContactID: "c1", PaymentBehavior: models.PaymentBehaviorDelayed, BillingConfig: datatypes.JSON(`{"amount": 100}`)},
			"0.72", forecast.LevelMedium, "Synced from accounting integration, usually pays late",
		},
		{
			"late payer without billing data",
			models.Client{ClientType: models.ClientTypeProject, PaymentBehavior: models.PaymentBehaviorDelayed},
			"0.4", forecast.LevelLow, "No billing data available, usually pays late",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := billing.Parse(tt.client.ClientType, tt.client.BillingConfig)
			require.Nil(t, err)

			s := forecast.ClientConfidence(tt.client, cfg, today)
			assert.Equal(t, tt.score, s.Value.String())
			assert.Equal(t, tt.level, s.Level)
			assert.Equal(t, tt.reason, s.Reason)
		})
	}
}

func TestExpenseConfidence(t *testing.T) {
	today := types.NewDate(2024, time.March, 1)
	stale := time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		bucket models.ExpenseBucket
		score  string
		basis  forecast.Basis
	}{
		{"integration", models.ExpenseBucket{ExternalContactID: "c1"}, "0.9", forecast.BasisIntegration},
		{"stale integration", models.ExpenseBucket{ExternalContactID: "c1", LastSyncedAt: &stale}, "0.7", forecast.BasisStale},
		{"fixed and stable", models.ExpenseBucket{BucketType: models.BucketTypeFixed, IsStable: true}, "0.7", forecast.BasisManual},
		{"fixed and unstable", models.ExpenseBucket{BucketType: models.BucketTypeFixed}, "0.6", forecast.BasisVariable},
		{"variable", models.ExpenseBucket{BucketType: models.BucketTypeVariable, IsStable: true}, "0.6", forecast.BasisVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := forecast.ExpenseConfidence(tt.bucket, today)
			assert.Equal(t, tt.score, s.Value.String())
			assert.Equal(t, tt.basis, s.Basis)
		})
	}
}

func TestObligationConfidence(t *testing.T) {
	tests := []struct {
		amountSource   models.AmountSource
		estimateSource models.EstimateSource
		score          string
		level          forecast.Level
		reason         string
	}{
		{models.AmountSourceXeroSync, models.EstimateSourceFixedAgreement, "0.9", forecast.LevelHigh, "Synced from Xero"},
		{models.AmountSourceXeroSync, models.EstimateSourceHistoricalAverage, "0.81", forecast.LevelHigh, "Synced from Xero (historical average)"},
		{models.AmountSourceXeroSync, models.EstimateSourceManualEstimate, "0.72", forecast.LevelMedium, "Synced from Xero (manual estimate)"},
		{models.AmountSourceRepeatingInvoice, models.EstimateSourceXeroInvoice, "0.85", forecast.LevelHigh, "From repeating invoice"},
		{models.AmountSourceRepeatingInvoice, models.EstimateSourceHistoricalAverage, "0.77", forecast.LevelMedium, "From repeating invoice (historical average)"},
		{models.AmountSourceContractUpload, models.EstimateSourceManualEstimate, "0.56", forecast.LevelMedium, "From contract upload (manual estimate)"},
		{models.AmountSourceManual, models.EstimateSourceManualEstimate, "0.48", forecast.LevelLow, "Manual entry (manual estimate)"},
		{"", "", "0.6", forecast.LevelMedium, "Manual entry"},
	}

	for _, tt := range tests {
		t.Run(string(tt.amountSource)+"/"+string(tt.estimateSource), func(t *testing.T) {
			s := forecast.ObligationConfidence(
				models.ObligationAgreement{AmountSource: tt.amountSource},
				models.ObligationSchedule{EstimateSource: tt.estimateSource},
			)
			assert.Equal(t, tt.score, s.Value.String())
			assert.Equal(t, tt.level, s.Level)
			assert.Equal(t, tt.reason, s.Reason)
		})
	}
}

func TestSummarizeConfidence(t *testing.T) {
	sources := []forecast.SourceConfidence{
		{SourceID: "1", SourceName: "Acme", Amount: decimal.NewFromInt(3000), Score: forecast.Score{Level: forecast.LevelHigh, Value: decimal.RequireFromString("0.9"), Basis: forecast.BasisIntegration}},
		{SourceID: "2", SourceName: "Rent", Amount: decimal.NewFromInt(1000), Score: forecast.Score{Level: forecast.LevelMedium, Value: decimal.RequireFromString("0.7"), Basis: forecast.BasisManual}},
		{SourceID: "3", SourceName: "Globex", Amount: decimal.NewFromInt(1000), Score: forecast.Score{Level: forecast.LevelLow, Value: decimal.RequireFromString("0.4"), Basis: forecast.BasisLatePayer}},
	}

	s := forecast.SummarizeConfidence(sources)

	// (3000 * 0.9 + 1000 * 0.7 + 1000 * 0.4) / 5000
	assert.Equal(t, "0.76", s.OverallScore.String())
	assert.Equal(t, forecast.LevelMedium, s.OverallLevel)
	assert.Equal(t, 76, s.OverallPercentage)

	assert.Equal(t, 1, s.Breakdown.HighConfidenceCount)
	assert.Equal(t, 1, s.Breakdown.MediumConfidenceCount)
	assert.Equal(t, 1, s.Breakdown.LowConfidenceCount)
	assert.Equal(t, "3000", s.Breakdown.HighConfidenceAmount.String())
	assert.Equal(t, "1000", s.Breakdown.LowConfidenceAmount.String())

	assert.Equal(t, []string{
		"Check payment timing with Globex, payments usually arrive late",
		"Connect Rent to your accounting integration",
	}, s.ImprovementSuggestions)
}

func TestSummarizeConfidenceWithoutAmounts(t *testing.T) {
	sources := []forecast.SourceConfidence{
		{SourceName: "A", Amount: decimal.Zero, Score: forecast.Score{Level: forecast.LevelHigh, Value: decimal.RequireFromString("0.9")}},
		{SourceName: "B", Amount: decimal.Zero, Score: forecast.Score{Level: forecast.LevelMedium, Value: decimal.RequireFromString("0.6")}},
	}

	s := forecast.SummarizeConfidence(sources)
	assert.Equal(t, "0.75", s.OverallScore.String())
	assert.Equal(t, forecast.LevelMedium, s.OverallLevel)
}

func TestSummarizeConfidenceEmpty(t *testing.T) {
	s := forecast.SummarizeConfidence(nil)
	assert.True(t, s.OverallScore.IsZero())
	assert.Equal(t, forecast.LevelLow, s.OverallLevel)
	assert.Equal(t, 0, s.OverallPercentage)
	assert.Len(t, s.ImprovementSuggestions, 1)
}

func TestSummarizeConfidenceSuggestionLimit(t *testing.T) {
	var sources []forecast.SourceConfidence
	for _, name := range []string{"G", "F", "E", "D", "C", "B", "A"} {
		sources = append(sources, forecast.SourceConfidence{
			SourceName: name,
			Amount:     decimal.NewFromInt(100),
			Score:      forecast.Score{Level: forecast.LevelMedium, Value: decimal.RequireFromString("0.6"), Basis: forecast.BasisManual},
		})
	}

	// The same suggestion is only made once
	sources = append(sources, sources[0])

	s := forecast.SummarizeConfidence(sources)
	assert.Equal(t, []string{
		"Connect A to your accounting integration",
		"Connect B to your accounting integration",
		"Connect C to your accounting integration",
		"Connect D to your accounting integration",
		"Connect E to your accounting integration",
	}, s.ImprovementSuggestions)
}
