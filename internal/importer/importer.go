// Package importer loads a roster and ledger from an external source into a
// new trip.
package importer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/settlement"
	"github.com/mmynk/tripsplit/internal/storage"
)

// Source supplies a roster and a ledger, e.g. a spreadsheet.
type Source interface {
	ReadParticipants(ctx context.Context) ([]models.Participant, error)
	ReadExpenses(ctx context.Context) ([]models.Expense, error)
}

// Import creates a trip named tripName and copies the source's participants
// and expenses into it. The whole source is validated first and then written
// in a single store transaction, so a failed import leaves no partial trip.
func Import(ctx context.Context, src Source, store storage.Store, tripName string) (*models.Trip, error) {
	participants, err := src.ReadParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("read participants: %w", err)
	}
	expenses, err := src.ReadExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("read expenses: %w", err)
	}

	names := make([]string, 0, len(participants))
	for _, p := range participants {
		if err := settlement.ValidateParticipant(p.Name, names); err != nil {
			return nil, err
		}
		names = append(names, p.Name)
	}
	roster := make(map[string]bool, len(names))
	for _, n := range names {
		roster[n] = true
	}
	for i, e := range expenses {
		if err := settlement.ValidateExpense(settlement.Expense{
			Description: e.Description,
			Amount:      e.Amount,
			Payer:       e.Payer,
			Involved:    e.Involved,
		}, roster); err != nil {
			return nil, fmt.Errorf("expense %d (%s): %w", i+1, e.Description, err)
		}
	}

	ledger := &models.Ledger{
		Trip:         models.Trip{Name: tripName},
		Participants: participants,
		Expenses:     expenses,
	}
	if err := store.ImportLedger(ctx, ledger); err != nil {
		return nil, fmt.Errorf("import ledger: %w", err)
	}
	trip := &ledger.Trip

	slog.InfoContext(ctx, "Trip imported",
		"trip_id", trip.ID,
		"participants_count", len(participants),
		"expenses_count", len(expenses),
	)
	return trip, nil
}
