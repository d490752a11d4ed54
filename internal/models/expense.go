package models

import "github.com/shopspring/decimal"

// Expense is one cost fronted by a participant and shared equally among the
// participants involved.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// TripID is the trip this expense belongs to.
	TripID string

	// Description is a free-text label (e.g., "Ferry tickets").
	Description string

	// Amount is the total cost. Always positive.
	Amount decimal.Decimal

	// Payer is the name of the participant who fronted the money.
	Payer string

	// Involved lists the participants sharing the cost, in the order given.
	// It may or may not include the payer.
	Involved []string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}
