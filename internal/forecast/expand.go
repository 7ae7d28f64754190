package forecast

import (
	"fmt"

	"github.com/cashrunway/backend/internal/billing"
	"github.com/cashrunway/backend/internal/models"
	"github.com/cashrunway/backend/internal/types"
	"github.com/shopspring/decimal"
)

// expenseLookAhead is the number of periods expanded for every expense
// bucket, independent of the window length.
const expenseLookAhead = 4

// expandClient returns the revenue events of a client within the window.
//
// Every schedule of the billing configuration is expanded on its own, the
// events of a mixed client are the union of its schedules.
func expandClient(c models.Client, cfg billing.Config, score Score, w Window) []Event {
	if !c.IsActive() {
		return nil
	}

	var events []Event
	for _, s := range cfg.Schedules {
		switch s := s.(type) {
		case billing.Retainer:
			events = append(events, expandRetainer(c, s, score, w)...)
		case billing.Project:
			events = append(events, expandProject(c, s, score, w)...)
		case billing.Usage:
			events = append(events, expandUsage(c, s, score, w)...)
		}
	}

	linked := cfg.Linked() || c.ExternalContactID != ""
	return append(events, expandInvoices(c, cfg.OutstandingInvoices, linked, score, w)...)
}

// periods calls fn for the start of every period of the given frequency,
// beginning with the first day of the window's first month. It stops after
// limit periods or when a period starts after the window, whichever comes
// first. A limit of 0 means no limit.
func periods(f billing.Frequency, w Window, limit int, fn func(start types.Date)) {
	current := w.Start.Month().First()
	for n := 0; !current.After(w.End); n++ {
		if limit > 0 && n == limit {
			return
		}

		fn(current)
		current = f.Next(current)
	}
}

// billingDay returns the date a period starting at start is billed on:
// the given day in the month of start, or the 1st if no day is set.
// Days beyond the end of the month are clamped to its last day.
func billingDay(start types.Date, day int) types.Date {
	return start.Month().Day(day)
}

func expandRetainer(c models.Client, r billing.Retainer, score Score, w Window) []Event {
	if !r.Amount.IsPositive() {
		return nil
	}

	var events []Event
	periods(r.Frequency, w, 0, func(start types.Date) {
		payment := billingDay(start, r.InvoiceDay).AddDays(r.Terms)
		if !w.Contains(payment) {
			return
		}

		e := clientEvent(c, score)
		e.ID = fmt.Sprintf("client_%s_%s_%d", c.ID, payment, len(events)+1)
		e.Date = payment
		e.Amount = r.Amount
		e.Category = "retainer"
		e.IsRecurring = true
		e.RecurrencePattern = pattern(r.Frequency.Pattern())
		events = append(events, e)
	})

	return events
}

func expandUsage(c models.Client, u billing.Usage, score Score, w Window) []Event {
	if !u.TypicalAmount.IsPositive() {
		return nil
	}

	if score.Level == LevelHigh {
		score.Level = LevelMedium
		score.Reason = "Usage-based (variable)"
	}

	var events []Event
	periods(u.Frequency, w, 0, func(start types.Date) {
		payment := start.AddDays(u.Terms)
		if !w.Contains(payment) {
			return
		}

		e := clientEvent(c, score)
		e.ID = fmt.Sprintf("client_%s_usage_%s_%d", c.ID, payment, len(events)+1)
		e.Date = payment
		e.Amount = u.TypicalAmount
		e.Category = "usage"
		e.IsRecurring = true
		e.RecurrencePattern = pattern(u.Frequency.Pattern())
		events = append(events, e)
	})

	return events
}

func expandProject(c models.Client, p billing.Project, score Score, w Window) []Event {
	var events []Event

	for _, m := range p.Milestones {
		if m.Paid() || !m.Amount.IsPositive() {
			continue
		}

		payment := m.ExpectedDate.AddDays(m.Terms)
		if !w.Contains(payment) {
			continue
		}

		e := clientEvent(c, score)
		e.ID = fmt.Sprintf("client_%s_milestone_%d_%s", c.ID, m.Index, payment)
		e.Date = payment
		e.Amount = m.Amount
		e.Category = "milestone_payment"
		events = append(events, e)
	}

	return events
}

// expandInvoices returns the payments of invoices that have been sent already.
// Invoices of clients linked to an accounting integration are known to
// exist and always have high confidence.
func expandInvoices(c models.Client, invoices []billing.Invoice, linked bool, score Score, w Window) []Event {
	var events []Event

	for _, inv := range invoices {
		if !inv.Amount.IsPositive() {
			continue
		}

		payment := inv.ExpectedDate.AddDays(inv.Terms)
		if !w.Contains(payment) {
			continue
		}

		e := clientEvent(c, score)
		e.ID = fmt.Sprintf("client_%s_invoice_%d_%s", c.ID, inv.Index, payment)
		e.Date = payment
		e.Amount = inv.Amount
		e.Category = "outstanding_invoice"
		e.ConfidenceReason = fmt.Sprintf("Outstanding invoice: %s", inv.Name)

		if linked {
			e.Confidence = LevelHigh
			e.ConfidenceReason = fmt.Sprintf("Outstanding invoice from Xero: %s", inv.Name)
		}

		events = append(events, e)
	}

	return events
}

func clientEvent(c models.Client, score Score) Event {
	e := newEvent(EventTypeExpectedRevenue)
	e.Confidence = score.Level
	e.ConfidenceReason = score.Reason
	e.SourceID = c.ID.String()
	e.SourceName = c.Name
	e.SourceType = SourceTypeClient
	return e
}

// expandExpense returns the payments of an expense bucket within the window.
func expandExpense(b models.ExpenseBucket, score Score, w Window) []Event {
	if !b.MonthlyAmount.IsPositive() {
		return nil
	}

	frequency := billing.ParseFrequency(b.Frequency)

	var events []Event
	periods(frequency, w, expenseLookAhead, func(start types.Date) {
		due := billingDay(start, b.EffectiveDueDay())
		if !w.Contains(due) {
			return
		}

		e := newEvent(EventTypeExpectedExpense)
		e.ID = fmt.Sprintf("expense_%s_%s_%d", b.ID, due, len(events)+1)
		e.Date = due
		e.Amount = b.MonthlyAmount
		e.Category = b.Category
		e.Confidence = score.Level
		e.ConfidenceReason = score.Reason
		e.SourceID = b.ID.String()
		e.SourceName = b.Name
		e.SourceType = SourceTypeExpense
		e.IsRecurring = true
		e.RecurrencePattern = pattern(frequency.Pattern())
		events = append(events, e)
	})

	return events
}

// positive returns d if it is positive and zero otherwise.
func positive(d decimal.Decimal) decimal.Decimal {
	if d.IsPositive() {
		return d
	}
	return decimal.Zero
}
