// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tripsplit/internal/models"
)

var (
	// ErrNotFound is returned when a trip does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a participant name is already taken on a trip.
	ErrDuplicate = errors.New("already exists")
)

// Store defines the interface for trip ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateTrip persists a new trip.
	// The trip.ID and trip.CreatedAt fields are populated by the store when empty.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip retrieves a trip by its ID.
	// Returns an error wrapping ErrNotFound if the trip does not exist.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// ListTrips retrieves all trips, newest first.
	ListTrips(ctx context.Context) ([]*models.Trip, error)

	// AddParticipant registers a participant on a trip.
	// Returns an error wrapping ErrDuplicate if the name is taken.
	AddParticipant(ctx context.Context, tripID string, participant *models.Participant) error

	// ListParticipants returns a trip's roster in registration order.
	ListParticipants(ctx context.Context, tripID string) ([]models.Participant, error)

	// CreateExpense records an expense. The payer must already be registered.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses returns a trip's expenses in recording order.
	ListExpenses(ctx context.Context, tripID string) ([]models.Expense, error)

	// ImportLedger writes a new trip together with its roster and expenses,
	// all or nothing. IDs and timestamps are populated as in the single-row
	// methods, and every expense's TripID is set to the new trip.
	ImportLedger(ctx context.Context, ledger *models.Ledger) error

	// Snapshot reads a trip's roster and expenses in one read transaction.
	Snapshot(ctx context.Context, tripID string) (*models.Ledger, error)

	// Close releases any resources held by the store.
	Close() error
}
