package forecast

import (
	"github.com/shopspring/decimal"
)

// Summary holds the headline figures of a forecast.
type Summary struct {
	LowestCashWeek   int             `json:"lowestCashWeek" example:"4"`         // Number of the first week with the lowest ending balance
	LowestCashAmount decimal.Decimal `json:"lowestCashAmount" example:"1200.00"` // Lowest ending balance
	TotalCashIn      decimal.Decimal `json:"totalCashIn" example:"13000.00"`
	TotalCashOut     decimal.Decimal `json:"totalCashOut" example:"9500.00"`
	RunwayWeeks      int             `json:"runwayWeeks" example:"13"` // Weeks until the balance reaches zero, the number of weeks if it never does
}

// Summarize calculates the headline figures of the weeks produced by
// Aggregate. Week 0 is not part of any figure.
func Summarize(weeks []Week) Summary {
	s := Summary{
		LowestCashAmount: decimal.Zero,
		TotalCashIn:      decimal.Zero,
		TotalCashOut:     decimal.Zero,
	}

	if len(weeks) < 2 {
		if len(weeks) == 1 {
			s.LowestCashAmount = weeks[0].EndingBalance
		}
		return s
	}

	forecast := weeks[1:]
	s.RunwayWeeks = len(forecast)
	s.LowestCashWeek = forecast[0].WeekNumber
	s.LowestCashAmount = forecast[0].EndingBalance

	runwayFound := false
	for i, w := range forecast {
		s.TotalCashIn = s.TotalCashIn.Add(w.CashIn)
		s.TotalCashOut = s.TotalCashOut.Add(w.CashOut)

		if w.EndingBalance.LessThan(s.LowestCashAmount) {
			s.LowestCashWeek = w.WeekNumber
			s.LowestCashAmount = w.EndingBalance
		}

		if !runwayFound && !w.EndingBalance.IsPositive() {
			s.RunwayWeeks = i + 1
			runwayFound = true
		}
	}

	return s
}
