package billing

import (
	"strings"

	"github.com/cashrunway/backend/internal/types"
)

// Frequency is the cadence at which a recurring source bills or is billed.
type Frequency string

const (
	Weekly    Frequency = "weekly"
	BiWeekly  Frequency = "bi_weekly"
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
)

// ParseFrequency normalizes a frequency. Unknown or empty values are
// treated as monthly.
func ParseFrequency(s string) Frequency {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weekly":
		return Weekly
	case "bi_weekly", "bi-weekly", "biweekly":
		return BiWeekly
	case "quarterly":
		return Quarterly
	default:
		return Monthly
	}
}

// Next returns the start of the period following the one starting at d.
func (f Frequency) Next(d types.Date) types.Date {
	switch f {
	case Weekly:
		return d.AddDays(7)
	case BiWeekly:
		return d.AddDays(14)
	case Quarterly:
		return types.Date(d.Time().AddDate(0, 3, 0))
	default:
		return types.Date(d.Time().AddDate(0, 1, 0))
	}
}

// Pattern returns the recurrence pattern reported on forecast events.
func (f Frequency) Pattern() string {
	if f == BiWeekly {
		return "bi-weekly"
	}
	return string(f)
}
