package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/settlement"
	"github.com/mmynk/tripsplit/internal/storage"
)

// CreateExpense persists a new expense to the database.
// The involved list is stored in its ";"-joined form.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	return insertExpense(ctx, s.db, expense)
}

func insertExpense(ctx context.Context, db execer, expense *models.Expense) error {
	// Generate ID if not set
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO expenses (id, trip_id, description, amount, payer, involved, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.TripID, expense.Description, expense.Amount.String(),
		expense.Payer, settlement.JoinInvolved(expense.Involved), expense.CreatedAt,
	)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("trip %s or payer %q: %w", expense.TripID, expense.Payer, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	return nil
}

// ListExpenses returns a trip's expenses in recording order.
func (s *SQLiteStore) ListExpenses(ctx context.Context, tripID string) ([]models.Expense, error) {
	return listExpenses(ctx, s.db, tripID)
}

func listExpenses(ctx context.Context, q queryer, tripID string) ([]models.Expense, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, trip_id, description, amount, payer, involved, created_at
		 FROM expenses WHERE trip_id = ? ORDER BY seq`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		var involved string
		if err := rows.Scan(&e.ID, &e.TripID, &e.Description, &e.Amount,
			&e.Payer, &involved, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Involved = settlement.SplitInvolved(involved)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}
