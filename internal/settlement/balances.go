// Package settlement computes net balances from a trip ledger and pairs
// debtors with creditors into settlement instructions.
package settlement

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Expense is an expense with the minimal information needed for balance calculations.
type Expense struct {
	Description string
	Amount      decimal.Decimal
	Payer       string
	Involved    []string // Shares the cost equally; may include Payer
}

// MemberBalance represents the balance information for one participant.
type MemberBalance struct {
	MemberName string
	NetBalance decimal.Decimal // Positive = owed money, Negative = owes money
	TotalPaid  decimal.Decimal // Total amount fronted across all expenses
	TotalOwed  decimal.Decimal // Total of this person's shares
}

// CalculateBalances computes the net position of every participant.
// The result holds one entry per participant, in roster order, including
// participants that appear in no expense.
//
// Algorithm:
//   - For each expense: share = amount / len(involved), unrounded
//   - Payer contributed +amount, each involved participant owes -share
//   - A payer who is also involved ends up at amount - share
//   - net_balance = total_paid - total_owed
//
// Every expense is validated first; an unknown payer or involved name fails
// the whole computation with ErrUnknownParticipant.
func CalculateBalances(participants []string, expenses []Expense) ([]MemberBalance, error) {
	roster := rosterSet(participants)

	// Track balances per member, keyed by name, indexed in roster order
	balances := make([]MemberBalance, len(participants))
	index := make(map[string]int, len(participants))
	for i, name := range participants {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: %q appears twice on the roster", ErrInvalidParticipant, name)
		}
		index[name] = i
		balances[i] = MemberBalance{MemberName: name}
	}

	for i, e := range expenses {
		if err := ValidateExpense(e, roster); err != nil {
			return nil, fmt.Errorf("expense %d (%s): %w", i, e.Description, err)
		}

		share := e.Amount.Div(decimal.NewFromInt(int64(len(e.Involved))))

		payer := &balances[index[e.Payer]]
		payer.TotalPaid = payer.TotalPaid.Add(e.Amount)

		for _, name := range e.Involved {
			owes := &balances[index[name]]
			owes.TotalOwed = owes.TotalOwed.Add(share)
		}
	}

	for i := range balances {
		balances[i].NetBalance = balances[i].TotalPaid.Sub(balances[i].TotalOwed)
	}

	return balances, nil
}

// BalanceMap returns the net balances keyed by participant name.
func BalanceMap(balances []MemberBalance) map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(balances))
	for _, b := range balances {
		m[b.MemberName] = b.NetBalance
	}
	return m
}
