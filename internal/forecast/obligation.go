package forecast

import (
	"fmt"

	"github.com/cashrunway/backend/internal/models"
	"github.com/cashrunway/backend/internal/types"
	"github.com/google/uuid"
)

// recurrencePatterns maps obligation frequencies to recurrence patterns.
// Frequencies that are not listed are reported as they are.
var recurrencePatterns = map[string]string{
	"bi_weekly": "bi-weekly",
	"annually":  "yearly",
	"one_time":  "",
}

func recurrence(frequency string) (recurring bool, p *string) {
	if frequency == "" || frequency == "one_time" {
		return false, nil
	}

	if mapped, ok := recurrencePatterns[frequency]; ok {
		return true, pattern(mapped)
	}

	return true, pattern(frequency)
}

// links holds the clients and expense buckets obligations can be linked to.
type links struct {
	clients map[uuid.UUID]models.Client
	buckets map[uuid.UUID]models.ExpenseBucket
	today   types.Date
}

// scheduleSource describes who an obligation schedule is paid by or paid to.
type scheduleSource struct {
	eventType  EventType
	sourceType SourceType
	name       string
	score      Score
}

// resolve determines the source of an obligation.
//
// Obligations linked to a client are revenue, everything else is an expense.
// Links to sources that do not exist anymore resolve to a placeholder.
func (l links) resolve(o models.ObligationAgreement, s models.ObligationSchedule) scheduleSource {
	switch {
	case o.ClientID != nil:
		src := scheduleSource{eventType: EventTypeExpectedRevenue, sourceType: SourceTypeClient}

		c, ok := l.clients[*o.ClientID]
		if !ok {
			src.name = fallback(o.VendorName, "Unknown Client")
			src.score = placeholder("No linked client")
			return src
		}

		src.name = fallback(c.Name, o.VendorName, "Unknown Client")
		src.score = ClientConfidence(c, parseBilling(c), l.today)
		return src

	case o.ExpenseBucketID != nil:
		src := scheduleSource{eventType: EventTypeExpectedExpense, sourceType: SourceTypeExpense}

		b, ok := l.buckets[*o.ExpenseBucketID]
		if !ok {
			src.name = fallback(o.VendorName, "Unknown Expense")
			src.score = placeholder("No linked expense bucket")
			return src
		}

		src.name = fallback(b.Name, o.VendorName, "Unknown Expense")
		src.score = ExpenseConfidence(b, l.today)
		return src

	default:
		return scheduleSource{
			eventType:  EventTypeExpectedExpense,
			sourceType: SourceTypeObligation,
			name:       fallback(o.VendorName, o.ObligationType, "Obligation"),
			score:      ObligationConfidence(o, s),
		}
	}
}

// expandSchedule returns the event for a single obligation occurrence.
// ok is false if the occurrence is not projected.
func expandSchedule(s models.ObligationSchedule, src scheduleSource, w Window) (Event, bool) {
	if !s.Status.Projectable() || !w.Contains(s.DueDate) || !s.EstimatedAmount.IsPositive() {
		return Event{}, false
	}

	o := s.Obligation

	e := newEvent(src.eventType)
	e.ID = fmt.Sprintf("obligation_%s_%s_%s", o.ID, s.ID, s.DueDate)
	e.Date = s.DueDate
	e.Amount = s.EstimatedAmount
	e.Category = o.Category
	e.Confidence = src.score.Level
	e.ConfidenceReason = fmt.Sprintf("From obligation schedule (%s)", s.EstimateSource)
	e.SourceID = o.ID.String()
	e.SourceName = src.name
	e.SourceType = src.sourceType
	e.IsRecurring, e.RecurrencePattern = recurrence(o.Frequency)

	// The schedule may carry its own, more specific, confidence
	if level, ok := ParseLevel(s.Confidence); ok {
		e.Confidence = level
	}

	return e, true
}

// expandPayment returns the event for a payment that has already happened.
// ok is false for payments that are not completed or lie outside the window.
func expandPayment(p models.PaymentEvent, w Window) (Event, bool) {
	if p.Status != models.PaymentStatusCompleted || !w.Contains(p.PaymentDate) {
		return Event{}, false
	}

	e := newEvent(EventTypeConfirmedExpense)
	e.ID = fmt.Sprintf("payment_%s_%s", p.ID, p.PaymentDate)
	e.Date = p.PaymentDate
	e.Amount = p.Amount.Abs()
	e.Category = "payment"
	e.Confidence = LevelHigh
	e.ConfidenceReason = "Confirmed payment from bank"
	e.SourceID = p.ID.String()
	e.SourceName = fallback(p.VendorName, "Payment")
	e.SourceType = SourceTypePayment

	return e, true
}

// fallback returns the first non-empty value.
func fallback(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
