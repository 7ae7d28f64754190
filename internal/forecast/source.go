package forecast

import (
	"context"

	"github.com/cashrunway/backend/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=source.go -destination=source_mock.go -package=forecast

// Source provides read access to the data a forecast is calculated from.
//
// Implementations must return errors wrapping ErrSourceUnavailable when the
// underlying store cannot be read.
type Source interface {
	// Starting cash
	CashAccounts(ctx context.Context, userID uuid.UUID) ([]models.CashAccount, error)

	// Legacy sources
	ActiveClients(ctx context.Context, userID uuid.UUID) ([]models.Client, error)
	ExpenseBuckets(ctx context.Context, userID uuid.UUID) ([]models.ExpenseBucket, error)

	// Canonical sources. Schedules are returned with their obligation loaded.
	Schedules(ctx context.Context, userID uuid.UUID, window Window) ([]models.ObligationSchedule, error)
	CompletedPayments(ctx context.Context, userID uuid.UUID, window Window) ([]models.PaymentEvent, error)

	// Lookups for linked sources. Sources that do not exist are missing
	// from the result.
	ClientsByID(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]models.Client, error)
	ExpenseBucketsByID(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]models.ExpenseBucket, error)
}
