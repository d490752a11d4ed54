package settlement

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount bounds. An amount outside them is rejected before any arithmetic,
// since decimal operations rescale to the larger of two exponents.
const (
	MaxAmountScale  = 8  // decimal places
	MaxAmountDigits = 15 // digits before the decimal point
)

// ValidateParticipant checks that name can be registered on a roster that
// already holds existing.
func ValidateParticipant(name string, existing []string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidParticipant)
	}
	if strings.Contains(name, InvolvedDelimiter) {
		return fmt.Errorf("%w: name %q cannot contain %q", ErrInvalidParticipant, name, InvolvedDelimiter)
	}
	for _, e := range existing {
		if e == name {
			return fmt.Errorf("%w: %q is already registered", ErrInvalidParticipant, name)
		}
	}
	return nil
}

// ValidateExpense checks the expense invariants against a roster.
func ValidateExpense(e Expense, roster map[string]bool) error {
	if err := validateAmount(e.Amount); err != nil {
		return err
	}
	if e.Amount.Sign() <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidExpense, e.Amount)
	}
	if len(e.Involved) == 0 {
		return fmt.Errorf("%w: must involve at least one participant", ErrInvalidExpense)
	}
	if !roster[e.Payer] {
		return fmt.Errorf("%w: payer %q", ErrUnknownParticipant, e.Payer)
	}
	for _, name := range e.Involved {
		if !roster[name] {
			return fmt.Errorf("%w: involved %q", ErrUnknownParticipant, name)
		}
	}
	return nil
}

// validateAmount checks the exponent and digit count only, so it stays
// cheap for any input.
func validateAmount(amount decimal.Decimal) error {
	exp := amount.Exponent()
	if exp < -MaxAmountScale {
		return fmt.Errorf("%w: amount has more than %d decimal places", ErrInvalidExpense, MaxAmountScale)
	}
	if exp > MaxAmountDigits || amount.NumDigits()+int(exp) > MaxAmountDigits {
		return fmt.Errorf("%w: amount has more than %d integer digits", ErrInvalidExpense, MaxAmountDigits)
	}
	return nil
}

func rosterSet(participants []string) map[string]bool {
	set := make(map[string]bool, len(participants))
	for _, p := range participants {
		set[p] = true
	}
	return set
}
