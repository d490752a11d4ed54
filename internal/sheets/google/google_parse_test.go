package google

import (
	"slices"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseParticipants(t *testing.T) {
	values := [][]interface{}{
		{"name", "upi_id"},
		{"Asha", "asha@okaxis"},
		{" Ben ", ""},
		{""},
		{"Chen"},
	}
	got, err := parseParticipants(values)
	if err != nil {
		t.Fatalf("parseParticipants error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d participants, want 3: %+v", len(got), got)
	}
	if got[0].Name != "Asha" || got[0].PaymentAddress != "asha@okaxis" {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].Name != "Ben" || got[1].PaymentAddress != "" {
		t.Errorf("second = %+v", got[1])
	}
	if got[2].Name != "Chen" {
		t.Errorf("third = %+v", got[2])
	}
}

func TestParseParticipantsMissingHeader(t *testing.T) {
	_, err := parseParticipants([][]interface{}{{"who", "upi_id"}})
	if err == nil || !strings.Contains(err.Error(), "missing name") {
		t.Errorf("expected missing name error, got %v", err)
	}
}

func TestParseExpenses(t *testing.T) {
	values := [][]interface{}{
		{"description", "amount", "payer", "involved"},
		{"Dinner", float64(90), "Asha", "Asha;Ben;Chen"},
		{"Taxi", "₹1,200.50", "Ben", "Ben; Chen"},
		{"", "", "", ""},
		{"Chai", 30.0, "Chen", "Asha"},
	}
	got, err := parseExpenses(values)
	if err != nil {
		t.Fatalf("parseExpenses error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d expenses, want 3", len(got))
	}

	if !got[0].Amount.Equal(decimal.NewFromInt(90)) || got[0].Payer != "Asha" {
		t.Errorf("first = %+v", got[0])
	}
	if !slices.Equal(got[0].Involved, []string{"Asha", "Ben", "Chen"}) {
		t.Errorf("first involved = %v", got[0].Involved)
	}
	if !got[1].Amount.Equal(decimal.RequireFromString("1200.50")) {
		t.Errorf("second amount = %s", got[1].Amount)
	}
	if !slices.Equal(got[1].Involved, []string{"Ben", "Chen"}) {
		t.Errorf("second involved = %v", got[1].Involved)
	}
	if got[2].Description != "Chai" {
		t.Errorf("third = %+v", got[2])
	}
}

func TestParseExpensesErrors(t *testing.T) {
	t.Run("missing columns", func(t *testing.T) {
		_, err := parseExpenses([][]interface{}{{"description", "amount"}})
		if err == nil || !strings.Contains(err.Error(), "payer,involved") {
			t.Errorf("expected missing columns error, got %v", err)
		}
	})

	t.Run("bad amount", func(t *testing.T) {
		_, err := parseExpenses([][]interface{}{
			{"description", "amount", "payer", "involved"},
			{"Dinner", "lots", "Asha", "Asha"},
		})
		if err == nil || !strings.Contains(err.Error(), "row 2") {
			t.Errorf("expected row 2 error, got %v", err)
		}
	})
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      interface{}
		want    string
		wantErr bool
	}{
		{float64(90), "90", false},
		{int64(45), "45", false},
		{"₹1,200.50", "1200.5", false},
		{" $ 30 ", "30", false},
		{"-5", "-5", false},
		{"₹-5", "-5", false},
		{"1.200,50", "", true},
		{"1.2.3", "", true},
		{"12-3", "", true},
		{"5-", "", true},
		{"Rs 100", "", true},
		{"12abc", "", true},
		{"", "", true},
		{"₹", "", true},
	}
	for _, tt := range tests {
		got, err := parseAmount(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseAmount(%q) = %s, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseAmount(%q) error: %v", tt.in, err)
			continue
		}
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("parseAmount(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	if p, err := parseParticipants(nil); err != nil || p != nil {
		t.Errorf("parseParticipants(nil) = %v, %v", p, err)
	}
	if e, err := parseExpenses(nil); err != nil || e != nil {
		t.Errorf("parseExpenses(nil) = %v, %v", e, err)
	}
}
