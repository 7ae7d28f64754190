package forecast

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// maxSuggestions is the number of improvement suggestions returned at most.
const maxSuggestions = 5

// SourceConfidence is the confidence of one source together with the typical
// amount it contributes.
type SourceConfidence struct {
	SourceID   string
	SourceName string
	SourceType SourceType
	Amount     decimal.Decimal
	Score      Score
}

type ConfidenceSummary struct {
	OverallScore           decimal.Decimal     `json:"overallScore" example:"0.72"`
	OverallLevel           Level               `json:"overallLevel" example:"medium"`
	OverallPercentage      int                 `json:"overallPercentage" example:"72"`
	Breakdown              ConfidenceBreakdown `json:"breakdown"`
	ImprovementSuggestions []string            `json:"improvementSuggestions"`
}

type ConfidenceBreakdown struct {
	HighConfidenceCount    int             `json:"highConfidenceCount"`
	MediumConfidenceCount  int             `json:"mediumConfidenceCount"`
	LowConfidenceCount     int             `json:"lowConfidenceCount"`
	HighConfidenceAmount   decimal.Decimal `json:"highConfidenceAmount"`
	MediumConfidenceAmount decimal.Decimal `json:"mediumConfidenceAmount"`
	LowConfidenceAmount    decimal.Decimal `json:"lowConfidenceAmount"`
}

// SummarizeConfidence rolls up the confidence of all sources into one score.
//
// The overall score is the mean of all scores weighted by amount. If no
// source has an amount, all sources are weighted equally.
func SummarizeConfidence(sources []SourceConfidence) ConfidenceSummary {
	summary := ConfidenceSummary{
		OverallScore: decimal.Zero,
		OverallLevel: LevelLow,
		Breakdown: ConfidenceBreakdown{
			HighConfidenceAmount:   decimal.Zero,
			MediumConfidenceAmount: decimal.Zero,
			LowConfidenceAmount:    decimal.Zero,
		},
		ImprovementSuggestions: []string{},
	}

	if len(sources) == 0 {
		summary.ImprovementSuggestions = append(summary.ImprovementSuggestions, "Add clients and expenses to build your forecast")
		return summary
	}

	weighted := decimal.Zero
	totalAmount := decimal.Zero
	plain := decimal.Zero

	for _, s := range sources {
		amount := s.Amount.Abs()

		weighted = weighted.Add(s.Score.Value.Mul(amount))
		totalAmount = totalAmount.Add(amount)
		plain = plain.Add(s.Score.Value)

		switch s.Score.Level {
		case LevelHigh:
			summary.Breakdown.HighConfidenceCount++
			summary.Breakdown.HighConfidenceAmount = summary.Breakdown.HighConfidenceAmount.Add(amount)
		case LevelMedium:
			summary.Breakdown.MediumConfidenceCount++
			summary.Breakdown.MediumConfidenceAmount = summary.Breakdown.MediumConfidenceAmount.Add(amount)
		default:
			summary.Breakdown.LowConfidenceCount++
			summary.Breakdown.LowConfidenceAmount = summary.Breakdown.LowConfidenceAmount.Add(amount)
		}
	}

	var overall decimal.Decimal
	if totalAmount.IsPositive() {
		overall = weighted.Div(totalAmount)
	} else {
		overall = plain.Div(decimal.NewFromInt(int64(len(sources))))
	}

	summary.OverallLevel = LevelOf(overall)
	summary.OverallScore = overall.Round(2)
	summary.OverallPercentage = int(overall.Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	summary.ImprovementSuggestions = suggestions(sources)

	return summary
}

// suggestions returns what the user can do to raise confidence, starting
// with the sources that carry the largest amounts.
func suggestions(sources []SourceConfidence) []string {
	candidates := make([]SourceConfidence, 0, len(sources))
	for _, s := range sources {
		if s.Score.Level != LevelHigh {
			candidates = append(candidates, s)
		}
	}

	slices.SortStableFunc(candidates, func(a, b SourceConfidence) int {
		if c := b.Amount.Abs().Cmp(a.Amount.Abs()); c != 0 {
			return c
		}
		if a.SourceName != b.SourceName {
			if a.SourceName < b.SourceName {
				return -1
			}
			return 1
		}
		if a.SourceID < b.SourceID {
			return -1
		}
		if a.SourceID > b.SourceID {
			return 1
		}
		return 0
	})

	result := []string{}
	for _, s := range candidates {
		text := suggestion(s)
		if slices.Contains(result, text) {
			continue
		}

		result = append(result, text)
		if len(result) == maxSuggestions {
			break
		}
	}

	return result
}

func suggestion(s SourceConfidence) string {
	switch s.Score.Basis {
	case BasisStale:
		return fmt.Sprintf("Re-sync %s, its data is out of date", s.SourceName)
	case BasisVariable:
		return fmt.Sprintf("Review the typical amount for %s, its amounts vary", s.SourceName)
	case BasisLatePayer:
		return fmt.Sprintf("Check payment timing with %s, payments usually arrive late", s.SourceName)
	case BasisMissing:
		return fmt.Sprintf("Add billing details for %s", s.SourceName)
	case BasisUnlinked:
		return fmt.Sprintf("Link %s to an existing client or expense", s.SourceName)
	case BasisObligation:
		return fmt.Sprintf("Confirm the amount of %s with an invoice or contract", s.SourceName)
	default:
		return fmt.Sprintf("Connect %s to your accounting integration", s.SourceName)
	}
}
