package forecast

import (
	"github.com/cashrunway/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// maxWeekEvents is the number of events listed per week at most.
const maxWeekEvents = 10

// Week is the cash position of a single week of the forecast.
//
// Week 0 is the current position. It never has events and its balances are
// the starting cash.
type Week struct {
	WeekNumber          int             `json:"weekNumber" example:"1"`
	WeekStart           types.Date      `json:"weekStart" example:"2024-01-01"`
	WeekEnd             types.Date      `json:"weekEnd" example:"2024-01-07"`
	StartingBalance     decimal.Decimal `json:"startingBalance" example:"12000.00"`
	CashIn              decimal.Decimal `json:"cashIn" example:"1000.00"`
	CashOut             decimal.Decimal `json:"cashOut" example:"250.00"`
	NetChange           decimal.Decimal `json:"netChange" example:"750.00"`
	EndingBalance       decimal.Decimal `json:"endingBalance" example:"12750.00"`
	ConfidenceBreakdown WeekConfidence  `json:"confidenceBreakdown"`
	Events              []Event         `json:"events"` // The largest events of the week
}

// WeekConfidence splits the cash flows of a week by confidence level.
type WeekConfidence struct {
	CashIn  LevelAmounts `json:"cashIn"`
	CashOut LevelAmounts `json:"cashOut"`
}

type LevelAmounts struct {
	High   decimal.Decimal `json:"high"`
	Medium decimal.Decimal `json:"medium"`
	Low    decimal.Decimal `json:"low"`
}

func newLevelAmounts() LevelAmounts {
	return LevelAmounts{
		High:   decimal.Zero,
		Medium: decimal.Zero,
		Low:    decimal.Zero,
	}
}

func (l *LevelAmounts) add(level Level, amount decimal.Decimal) {
	switch level {
	case LevelHigh:
		l.High = l.High.Add(amount)
	case LevelMedium:
		l.Medium = l.Medium.Add(amount)
	default:
		l.Low = l.Low.Add(amount)
	}
}

func newWeek(number int, start, end types.Date, balance decimal.Decimal) Week {
	return Week{
		WeekNumber:      number,
		WeekStart:       start,
		WeekEnd:         end,
		StartingBalance: balance,
		CashIn:          decimal.Zero,
		CashOut:         decimal.Zero,
		NetChange:       decimal.Zero,
		EndingBalance:   balance,
		ConfidenceBreakdown: WeekConfidence{
			CashIn:  newLevelAmounts(),
			CashOut: newLevelAmounts(),
		},
		Events: []Event{},
	}
}

// Aggregate partitions events into weeks starting at start and tracks the
// running balance.
//
// It returns weeks+1 snapshots. The first one is week 0, followed by the
// 7 day buckets [start+7k, start+7k+6] for k in 0..weeks-1. Events outside
// of all buckets are ignored.
func Aggregate(events []Event, startingCash decimal.Decimal, start types.Date, weeks int) []Week {
	result := make([]Week, 0, weeks+1)
	result = append(result, newWeek(0, start, start, startingCash))

	buckets := make([][]Event, weeks)
	for _, e := range events {
		k := start.DaysUntil(e.Date) / 7
		if e.Date.Before(start) || k >= weeks {
			continue
		}
		buckets[k] = append(buckets[k], e)
	}

	balance := startingCash
	for k := 0; k < weeks; k++ {
		weekStart := start.AddDays(7 * k)
		week := newWeek(k+1, weekStart, weekStart.AddDays(6), balance)

		for _, e := range buckets[k] {
			if e.Direction == DirectionIn {
				week.CashIn = week.CashIn.Add(e.Amount)
				week.ConfidenceBreakdown.CashIn.add(e.Confidence, e.Amount)
			} else {
				week.CashOut = week.CashOut.Add(e.Amount)
				week.ConfidenceBreakdown.CashOut.add(e.Confidence, e.Amount)
			}
		}

		week.NetChange = week.CashIn.Sub(week.CashOut)
		week.EndingBalance = balance.Add(week.NetChange)
		week.Events = largest(buckets[k], maxWeekEvents)

		balance = week.EndingBalance
		result = append(result, week)
	}

	return result
}

// largest returns the n events with the largest amounts, largest first.
// Events with equal amounts keep their order.
func largest(events []Event, n int) []Event {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b Event) int {
		return b.Amount.Cmp(a.Amount)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	if sorted == nil {
		return []Event{}
	}
	return sorted
}
