package settlement

import (
	"github.com/shopspring/decimal"
)

// Result is the output of one settlement computation.
type Result struct {
	Balances []MemberBalance
	Edges    []DebtEdge
}

// Compute runs the balance calculation and the matcher over one consistent
// snapshot of a trip. The tolerance is used as given; a zero tolerance
// settles every non-zero balance.
func Compute(participants []string, expenses []Expense, tolerance decimal.Decimal) (*Result, error) {
	balances, err := CalculateBalances(participants, expenses)
	if err != nil {
		return nil, err
	}
	return &Result{
		Balances: balances,
		Edges:    Settle(balances, tolerance),
	}, nil
}
