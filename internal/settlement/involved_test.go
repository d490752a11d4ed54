package settlement

import (
	"errors"
	"slices"
	"testing"
)

func TestSplitInvolved(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"A;B;C", []string{"A", "B", "C"}},
		{" A ; B ;", []string{"A", "B"}},
		{"", []string{}},
		{"Solo", []string{"Solo"}},
	}
	for _, tt := range tests {
		if got := SplitInvolved(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("SplitInvolved(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestJoinInvolvedRoundTrip(t *testing.T) {
	names := []string{"Asha", "Ben Li", "Chen"}
	joined := JoinInvolved(names)
	if joined != "Asha;Ben Li;Chen" {
		t.Errorf("JoinInvolved() = %q", joined)
	}
	if got := SplitInvolved(joined); !slices.Equal(got, names) {
		t.Errorf("SplitInvolved(JoinInvolved()) = %v", got)
	}
}

func TestValidateParticipant(t *testing.T) {
	existing := []string{"Asha"}
	if err := ValidateParticipant("Ben", existing); err != nil {
		t.Errorf("ValidateParticipant(Ben) = %v", err)
	}
	for _, name := range []string{"", "   ", "A;B", "Asha"} {
		if err := ValidateParticipant(name, existing); !errors.Is(err, ErrInvalidParticipant) {
			t.Errorf("ValidateParticipant(%q) = %v, want ErrInvalidParticipant", name, err)
		}
	}
}

func TestValidateExpenseAmountBounds(t *testing.T) {
	roster := rosterSet([]string{"A", "B"})
	tests := []struct {
		amount string
		ok     bool
	}{
		{"0.00000001", true},
		{"999999999999999.99999999", true},
		{"1200.50", true},
		{"0.000000001", false},
		{"1000000000000000", false},
		{"1e16", false},
		{"1e-4000000", false},
		{"1e4000000", false},
	}
	for _, tt := range tests {
		err := ValidateExpense(Expense{Amount: d(tt.amount), Payer: "A", Involved: []string{"A", "B"}}, roster)
		if tt.ok && err != nil {
			t.Errorf("ValidateExpense(%s) = %v, want nil", tt.amount, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidExpense) {
			t.Errorf("ValidateExpense(%s) = %v, want ErrInvalidExpense", tt.amount, err)
		}
	}
}
