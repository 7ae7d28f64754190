package forecast

import (
	"github.com/cashrunway/backend/internal/types"
	"github.com/shopspring/decimal"
)

type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

type EventType string

const (
	EventTypeExpectedRevenue  EventType = "expected_revenue"
	EventTypeExpectedExpense  EventType = "expected_expense"
	EventTypeConfirmedRevenue EventType = "confirmed_revenue"
	EventTypeConfirmedExpense EventType = "confirmed_expense"
)

// Direction returns the direction cash moves for events of this type.
func (t EventType) Direction() Direction {
	if t == EventTypeExpectedRevenue || t == EventTypeConfirmedRevenue {
		return DirectionIn
	}
	return DirectionOut
}

type SourceType string

const (
	SourceTypeClient     SourceType = "client"
	SourceTypeExpense    SourceType = "expense"
	SourceTypeObligation SourceType = "obligation"
	SourceTypePayment    SourceType = "payment"
)

// Event is a single projected or confirmed cash movement.
type Event struct {
	ID                string          `json:"id" example:"client_1e777d24-3f5b-4c43-8000-04f65f895578_2024-01-31_1"`
	Date              types.Date      `json:"date" example:"2024-01-31"`
	Amount            decimal.Decimal `json:"amount" example:"1000.00"`
	Direction         Direction       `json:"direction" example:"in"`
	EventType         EventType       `json:"eventType" example:"expected_revenue"`
	Category          string          `json:"category" example:"retainer"`
	Confidence        Level           `json:"confidence" example:"high"`
	ConfidenceReason  string          `json:"confidenceReason" example:"Synced from accounting integration"`
	SourceID          string          `json:"sourceId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	SourceName        string          `json:"sourceName" example:"Acme Corp"`
	SourceType        SourceType      `json:"sourceType" example:"client"`
	IsRecurring       bool            `json:"isRecurring" example:"true"`
	RecurrencePattern *string         `json:"recurrencePattern" example:"monthly"`
}

// newEvent returns an event with the direction set from its type.
func newEvent(eventType EventType) Event {
	return Event{
		EventType: eventType,
		Direction: eventType.Direction(),
	}
}

// Window is the inclusive date range of a forecast.
type Window struct {
	Start types.Date
	End   types.Date
}

// NewWindow returns the window covering the given number of weeks from start.
func NewWindow(start types.Date, weeks int) Window {
	return Window{
		Start: start,
		End:   start.AddDays(weeks*7 - 1),
	}
}

// Contains reports whether the date lies within the window.
func (w Window) Contains(d types.Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

func pattern(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
