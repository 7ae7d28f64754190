// Package billing parses the billing configuration stored on clients.
//
// The configuration is free-form JSON whose shape depends on the client
// type. Parsing is lenient: fields with unusable values are dropped or
// replaced by their defaults so that one bad value never hides the rest of
// a client's revenue.
package billing

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cashrunway/backend/internal/models"
	"github.com/cashrunway/backend/internal/types"
	"github.com/shopspring/decimal"
)

var ErrInvalidConfig = errors.New("billing configuration is not a JSON object")

// SourceXeroSync marks configurations that were synced from Xero.
const SourceXeroSync = "xero_sync"

// Schedule is one way a client pays. It is implemented by Retainer,
// Project and Usage.
type Schedule interface {
	// Representative returns the typical amount committed by the schedule.
	Representative() decimal.Decimal
	schedule()
}

// Retainer is a fixed amount billed every period.
type Retainer struct {
	Frequency  Frequency
	InvoiceDay int // 0 if not set
	Amount     decimal.Decimal
	Terms      int
}

// Project is paid in milestones.
type Project struct {
	Milestones []Milestone
}

// Milestone is a single payment of a project.
type Milestone struct {
	Index        int // position in the configuration
	Name         string
	Amount       decimal.Decimal
	ExpectedDate types.Date
	Terms        int
	Status       string
}

// Usage is a variable amount settled every period.
type Usage struct {
	Frequency     Frequency
	TypicalAmount decimal.Decimal
	Terms         int
}

// Invoice is an invoice that has been sent but not paid yet.
type Invoice struct {
	Index        int // position in the configuration
	Name         string
	Amount       decimal.Decimal
	ExpectedDate types.Date
	Terms        int
}

func (Retainer) schedule() {}
func (Project) schedule()  {}
func (Usage) schedule()    {}

func (r Retainer) Representative() decimal.Decimal {
	return positive(r.Amount)
}

// Representative returns the sum of all milestones that are not paid yet.
func (p Project) Representative() decimal.Decimal {
	sum := decimal.Zero
	for _, m := range p.Milestones {
		if !m.Paid() {
			sum = sum.Add(positive(m.Amount))
		}
	}
	return sum
}

func (u Usage) Representative() decimal.Decimal {
	return positive(u.TypicalAmount)
}

// Paid reports whether the milestone has already been collected.
func (m Milestone) Paid() bool {
	return m.Status == "paid"
}

// Config is the parsed billing configuration of a client.
type Config struct {
	Source              string
	ContactID           string
	Schedules           []Schedule
	OutstandingInvoices []Invoice
}

// Linked reports whether the configuration is backed by an accounting
// integration.
func (c Config) Linked() bool {
	return c.ContactID != "" || c.Source == SourceXeroSync
}

// Representative returns the typical amount of all schedules combined.
func (c Config) Representative() decimal.Decimal {
	sum := decimal.Zero
	for _, s := range c.Schedules {
		sum = sum.Add(s.Representative())
	}
	return sum
}

// Default returns the configuration used for clients that have none.
func Default(clientType models.ClientType) Config {
	c := Config{Source: "manual"}

	switch clientType {
	case models.ClientTypeRetainer:
		c.Schedules = []Schedule{Retainer{Frequency: Monthly, InvoiceDay: 1, Amount: decimal.Zero, Terms: DefaultRetainerTerms}}
	case models.ClientTypeProject:
		c.Schedules = []Schedule{Project{}}
	case models.ClientTypeUsage:
		c.Schedules = []Schedule{Usage{Frequency: Monthly, TypicalAmount: decimal.Zero, Terms: DefaultUsageTerms}}
	}

	return c
}

// Parse parses the raw billing configuration of a client of the given type.
//
// An empty configuration results in Default(clientType).
func Parse(clientType models.ClientType, raw []byte) (Config, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return Default(clientType), nil
	}

	var f fields
	if err := json.Unmarshal(raw, &f); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if len(f) == 0 {
		return Default(clientType), nil
	}

	c := Config{
		Source:    f.str("source"),
		ContactID: f.str("xero_contact_id"),
	}

	switch clientType {
	case models.ClientTypeRetainer:
		c.Schedules = append(c.Schedules, parseRetainer(f))
	case models.ClientTypeProject:
		c.Schedules = append(c.Schedules, parseProject(f))
	case models.ClientTypeUsage:
		c.Schedules = append(c.Schedules, parseUsage(f))
	case models.ClientTypeMixed:
		if sub, ok := f.object("retainer"); ok {
			c.Schedules = append(c.Schedules, parseRetainer(sub))
		}
		if sub, ok := f.object("project"); ok {
			c.Schedules = append(c.Schedules, parseProject(sub))
		}
		if sub, ok := f.object("usage"); ok {
			c.Schedules = append(c.Schedules, parseUsage(sub))
		}
	}

	for i, inv := range f.list("outstanding_invoices") {
		date, ok := inv.date("expected_date")
		if !ok {
			continue
		}

		name := inv.str("name")
		if name == "" {
			name = fmt.Sprintf("Invoice %d", i+1)
		}

		c.OutstandingInvoices = append(c.OutstandingInvoices, Invoice{
			Index:        i,
			Name:         name,
			Amount:       inv.amount("amount"),
			ExpectedDate: date,
			Terms:        ParseTerms(inv["payment_terms"], DefaultInvoiceTerms),
		})
	}

	return c, nil
}

func parseRetainer(f fields) Retainer {
	return Retainer{
		Frequency:  ParseFrequency(f.str("frequency")),
		InvoiceDay: f.day("day_of_month", "invoice_day"),
		Amount:     f.amount("amount"),
		Terms:      ParseTerms(f["payment_terms"], DefaultRetainerTerms),
	}
}

func parseProject(f fields) Project {
	var p Project

	for i, m := range f.list("milestones") {
		date, ok := m.date("expected_date")
		if !ok {
			continue
		}

		p.Milestones = append(p.Milestones, Milestone{
			Index:        i,
			Name:         m.str("name"),
			Amount:       m.amount("amount"),
			ExpectedDate: date,
			Terms:        ParseTerms(m["payment_terms"], DefaultMilestoneTerms),
			Status:       m.str("status"),
		})
	}

	return p
}

func parseUsage(f fields) Usage {
	return Usage{
		Frequency:     ParseFrequency(f.str("settlement_frequency")),
		TypicalAmount: f.amount("typical_amount"),
		Terms:         ParseTerms(f["payment_terms"], DefaultUsageTerms),
	}
}

func positive(d decimal.Decimal) decimal.Decimal {
	if d.IsPositive() {
		return d
	}
	return decimal.Zero
}
