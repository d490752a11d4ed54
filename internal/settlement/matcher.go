package settlement

import (
	"slices"

	"github.com/shopspring/decimal"
)

// DefaultTolerance is the magnitude below which a balance counts as settled.
// It absorbs division rounding and avoids issuing trivial payments.
var DefaultTolerance = decimal.NewFromInt(1)

// DebtEdge represents a payment from one person to another.
type DebtEdge struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount decimal.Decimal
}

type position struct {
	name      string
	remaining decimal.Decimal
}

// Settle pairs debtors with creditors greedily, largest first.
//
// Participants whose net balance lies within [-tolerance, tolerance] are
// treated as settled and never appear in an edge. Debtors are visited from
// the most negative balance, creditors from the most positive; equal
// balances keep their input order. Each payment is the smaller of what the
// debtor still owes and what the creditor is still owed, so nobody over-pays
// and nobody is over-paid. The returned edges are in debtor-major,
// creditor-minor order.
func Settle(balances []MemberBalance, tolerance decimal.Decimal) []DebtEdge {
	var debtors, creditors []position
	neg := tolerance.Neg()
	for _, b := range balances {
		switch {
		case b.NetBalance.LessThan(neg):
			debtors = append(debtors, position{name: b.MemberName, remaining: b.NetBalance.Neg()})
		case b.NetBalance.GreaterThan(tolerance):
			creditors = append(creditors, position{name: b.MemberName, remaining: b.NetBalance})
		}
	}

	// Most owed first on both sides. Debts are held as positive magnitudes.
	byRemainingDesc := func(a, b position) int {
		return b.remaining.Cmp(a.remaining)
	}
	slices.SortStableFunc(debtors, byRemainingDesc)
	slices.SortStableFunc(creditors, byRemainingDesc)

	var edges []DebtEdge
	for i := range debtors {
		d := &debtors[i]
		for j := range creditors {
			c := &creditors[j]
			if !c.remaining.IsPositive() {
				continue
			}

			amount := decimal.Min(d.remaining, c.remaining)
			edges = append(edges, DebtEdge{From: d.name, To: c.name, Amount: amount})

			d.remaining = d.remaining.Sub(amount)
			c.remaining = c.remaining.Sub(amount)

			if !d.remaining.IsPositive() {
				break
			}
		}
	}

	return edges
}

// Apply returns the balances that remain once every edge has been paid:
// the payer's net balance rises by the amount and the recipient's falls.
// Edges naming someone absent from balances are ignored.
func Apply(balances []MemberBalance, edges []DebtEdge) []MemberBalance {
	out := slices.Clone(balances)
	index := make(map[string]int, len(out))
	for i, b := range out {
		index[b.MemberName] = i
	}
	for _, e := range edges {
		if i, ok := index[e.From]; ok {
			out[i].NetBalance = out[i].NetBalance.Add(e.Amount)
		}
		if i, ok := index[e.To]; ok {
			out[i].NetBalance = out[i].NetBalance.Sub(e.Amount)
		}
	}
	return out
}
