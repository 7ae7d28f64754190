// Package store reads the data forecasts are calculated from.
package store

import (
	"context"
	"fmt"

	"github.com/cashrunway/backend/internal/forecast"
	"github.com/cashrunway/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store implements forecast.Source for a gorm database.
type Store struct {
	db *gorm.DB
}

var _ forecast.Source = Store{}

func New(db *gorm.DB) Store {
	return Store{db: db}
}

// unavailable marks database errors as retryable for the forecast engine.
func unavailable(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", forecast.ErrSourceUnavailable, err)
}

func (s Store) CashAccounts(ctx context.Context, userID uuid.UUID) ([]models.CashAccount, error) {
	var accounts []models.CashAccount
	err := s.db.WithContext(ctx).
		Where(&models.CashAccount{UserID: userID}).
		Order("account_name, id").
		Find(&accounts).Error

	return accounts, unavailable(err)
}

func (s Store) ActiveClients(ctx context.Context, userID uuid.UUID) ([]models.Client, error) {
	var clients []models.Client
	err := s.db.WithContext(ctx).
		Where(&models.Client{UserID: userID, Status: models.ClientStatusActive}).
		Order("name, id").
		Find(&clients).Error

	return clients, unavailable(err)
}

func (s Store) ExpenseBuckets(ctx context.Context, userID uuid.UUID) ([]models.ExpenseBucket, error) {
	var buckets []models.ExpenseBucket
	err := s.db.WithContext(ctx).
		Where(&models.ExpenseBucket{UserID: userID}).
		Order("name, id").
		Find(&buckets).Error

	return buckets, unavailable(err)
}

// Schedules returns all schedules of the user's obligations that are due
// within the window, regardless of their status.
func (s Store) Schedules(ctx context.Context, userID uuid.UUID, window forecast.Window) ([]models.ObligationSchedule, error) {
	db := s.db.WithContext(ctx)

	obligations := db.Model(&models.ObligationAgreement{}).
		Select("id").
		Where(&models.ObligationAgreement{UserID: userID})

	var schedules []models.ObligationSchedule
	err := db.
		Preload("Obligation").
		Where("obligation_id IN (?)", obligations).
		Where("due_date >= ? AND due_date <= ?", window.Start, window.End).
		Order("due_date, id").
		Find(&schedules).Error

	return schedules, unavailable(err)
}

func (s Store) CompletedPayments(ctx context.Context, userID uuid.UUID, window forecast.Window) ([]models.PaymentEvent, error) {
	var payments []models.PaymentEvent
	err := s.db.WithContext(ctx).
		Where(&models.PaymentEvent{UserID: userID, Status: models.PaymentStatusCompleted}).
		Where("payment_date >= ? AND payment_date <= ?", window.Start, window.End).
		Order("payment_date, id").
		Find(&payments).Error

	return payments, unavailable(err)
}

func (s Store) ClientsByID(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]models.Client, error) {
	var clients []models.Client
	err := s.db.WithContext(ctx).
		Where(&models.Client{UserID: userID}).
		Where("id IN ?", ids).
		Find(&clients).Error
	if err != nil {
		return nil, unavailable(err)
	}

	result := make(map[uuid.UUID]models.Client, len(clients))
	for _, c := range clients {
		result[c.ID] = c
	}
	return result, nil
}

func (s Store) ExpenseBucketsByID(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]models.ExpenseBucket, error) {
	var buckets []models.ExpenseBucket
	err := s.db.WithContext(ctx).
		Where(&models.ExpenseBucket{UserID: userID}).
		Where("id IN ?", ids).
		Find(&buckets).Error
	if err != nil {
		return nil, unavailable(err)
	}

	result := make(map[uuid.UUID]models.ExpenseBucket, len(buckets))
	for _, b := range buckets {
		result[b.ID] = b
	}
	return result, nil
}
