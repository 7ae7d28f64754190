package forecast

import (
	"context"
	"fmt"
	"strings"

	"github.com/cashrunway/backend/internal/billing"
	"github.com/cashrunway/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Strategy selects the data model events are materialized from.
type Strategy string

const (
	// StrategyLegacy expands the billing configuration of clients and
	// the expense buckets.
	StrategyLegacy Strategy = "legacy"

	// StrategyCanonical expands obligation schedules and confirmed payments.
	StrategyCanonical Strategy = "canonical"
)

// ParseStrategy parses a strategy name. An empty name is the legacy strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyLegacy, "":
		return StrategyLegacy, nil
	case StrategyCanonical:
		return StrategyCanonical, nil
	}

	return "", fmt.Errorf("%w, got '%s'", ErrInvalidStrategy, s)
}

// StrategyFor returns the strategy selected by the canonical model switch.
func StrategyFor(useCanonical bool) Strategy {
	if useCanonical {
		return StrategyCanonical
	}
	return StrategyLegacy
}

// Materializer returns the implementation of the strategy.
func (s Strategy) Materializer(source Source) (Materializer, error) {
	switch s {
	case StrategyLegacy:
		return Legacy{Source: source}, nil
	case StrategyCanonical:
		return Canonical{Source: source}, nil
	}

	return nil, fmt.Errorf("%w, got '%s'", ErrInvalidStrategy, s)
}

// Materialized is the outcome of materializing a user's sources.
type Materialized struct {
	// Events sorted by date and ID
	Events []Event

	// Confidence of every source, weighted by its typical amount
	Sources []SourceConfidence
}

// Materializer turns the sources of a user into events within a window.
//
// All reads happen before any expansion so that events are calculated from
// a consistent set of data.
type Materializer interface {
	Materialize(ctx context.Context, userID uuid.UUID, w Window) (Materialized, error)
}

// Legacy materializes events from clients and expense buckets.
type Legacy struct {
	Source Source
}

func (l Legacy) Materialize(ctx context.Context, userID uuid.UUID, w Window) (Materialized, error) {
	clients, err := l.Source.ActiveClients(ctx, userID)
	if err != nil {
		return Materialized{}, err
	}

	buckets, err := l.Source.ExpenseBuckets(ctx, userID)
	if err != nil {
		return Materialized{}, err
	}

	var m Materialized
	for _, c := range clients {
		if !c.IsActive() {
			continue
		}

		cfg, err := billing.Parse(c.ClientType, c.BillingConfig)
		if err != nil {
			log.Debug().Err(err).Str("client", c.ID.String()).Msg("skipping client with invalid billing configuration")
			continue
		}

		score := ClientConfidence(c, cfg, w.Start)
		m.Events = append(m.Events, expandClient(c, cfg, score, w)...)
		m.Sources = append(m.Sources, SourceConfidence{
			SourceID:   c.ID.String(),
			SourceName: c.Name,
			SourceType: SourceTypeClient,
			Amount:     cfg.Representative(),
			Score:      score,
		})
	}

	for _, b := range buckets {
		score := ExpenseConfidence(b, w.Start)
		m.Events = append(m.Events, expandExpense(b, score, w)...)
		m.Sources = append(m.Sources, SourceConfidence{
			SourceID:   b.ID.String(),
			SourceName: b.Name,
			SourceType: SourceTypeExpense,
			Amount:     positive(b.MonthlyAmount),
			Score:      score,
		})
	}

	sortEvents(m.Events)
	return m, nil
}

// Canonical materializes events from obligation schedules and completed
// payments.
type Canonical struct {
	Source Source
}

func (c Canonical) Materialize(ctx context.Context, userID uuid.UUID, w Window) (Materialized, error) {
	schedules, err := c.Source.Schedules(ctx, userID, w)
	if err != nil {
		return Materialized{}, err
	}

	payments, err := c.Source.CompletedPayments(ctx, userID, w)
	if err != nil {
		return Materialized{}, err
	}

	l, err := c.links(ctx, userID, schedules)
	if err != nil {
		return Materialized{}, err
	}
	l.today = w.Start

	var m Materialized

	// Sources are reported once per obligation with the sum of its
	// occurrences as amount
	index := make(map[uuid.UUID]int)

	for _, s := range schedules {
		src := l.resolve(s.Obligation, s)

		e, ok := expandSchedule(s, src, w)
		if !ok {
			continue
		}
		m.Events = append(m.Events, e)

		i, ok := index[s.ObligationID]
		if !ok {
			i = len(m.Sources)
			index[s.ObligationID] = i
			m.Sources = append(m.Sources, SourceConfidence{
				SourceID:   s.ObligationID.String(),
				SourceName: src.name,
				SourceType: src.sourceType,
				Score:      src.score,
			})
		}
		m.Sources[i].Amount = m.Sources[i].Amount.Add(s.EstimatedAmount)
	}

	for _, p := range payments {
		if e, ok := expandPayment(p, w); ok {
			m.Events = append(m.Events, e)
		}
	}

	sortEvents(m.Events)
	return m, nil
}

// links loads the clients and expense buckets the obligations of the
// schedules are linked to.
func (c Canonical) links(ctx context.Context, userID uuid.UUID, schedules []models.ObligationSchedule) (links, error) {
	var clientIDs, bucketIDs []uuid.UUID
	for _, s := range schedules {
		if id := s.Obligation.ClientID; id != nil && !slices.Contains(clientIDs, *id) {
			clientIDs = append(clientIDs, *id)
		}

		if id := s.Obligation.ExpenseBucketID; id != nil && !slices.Contains(bucketIDs, *id) {
			bucketIDs = append(bucketIDs, *id)
		}
	}

	l := links{
		clients: map[uuid.UUID]models.Client{},
		buckets: map[uuid.UUID]models.ExpenseBucket{},
	}

	var err error
	if len(clientIDs) > 0 {
		l.clients, err = c.Source.ClientsByID(ctx, userID, clientIDs)
		if err != nil {
			return links{}, err
		}
	}

	if len(bucketIDs) > 0 {
		l.buckets, err = c.Source.ExpenseBucketsByID(ctx, userID, bucketIDs)
		if err != nil {
			return links{}, err
		}
	}

	return l, nil
}

// parseBilling returns the billing configuration of a client. An invalid
// configuration is treated as an empty one.
func parseBilling(c models.Client) billing.Config {
	cfg, err := billing.Parse(c.ClientType, c.BillingConfig)
	if err != nil {
		log.Debug().Err(err).Str("client", c.ID.String()).Msg("ignoring invalid billing configuration")
		return billing.Config{}
	}
	return cfg
}

// sortEvents sorts events chronologically. Events on the same day are
// sorted by ID.
func sortEvents(events []Event) {
	slices.SortStableFunc(events, func(a, b Event) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
