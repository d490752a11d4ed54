package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if !cfg.Tolerance.Equal(decimal.NewFromInt(1)) {
		t.Errorf("Tolerance = %s, want 1", cfg.Tolerance)
	}
	if cfg.PaymentCurrency != "INR" || cfg.PaymentScheme != "upi" {
		t.Errorf("payment defaults = %s/%s", cfg.PaymentScheme, cfg.PaymentCurrency)
	}
	if cfg.ParticipantsSheet != "friends" || cfg.ExpensesSheet != "expenses" {
		t.Errorf("sheet defaults = %s/%s", cfg.ParticipantsSheet, cfg.ExpensesSheet)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SETTLE_TOLERANCE", "0.01")
	t.Setenv("PAYMENT_CURRENCY", "EUR")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Port != 9090 || cfg.Addr() != ":9090" {
		t.Errorf("Port = %d, Addr = %s", cfg.Port, cfg.Addr())
	}
	if !cfg.Tolerance.Equal(decimal.RequireFromString("0.01")) {
		t.Errorf("Tolerance = %s, want 0.01", cfg.Tolerance)
	}
	if cfg.PaymentCurrency != "EUR" {
		t.Errorf("PaymentCurrency = %s", cfg.PaymentCurrency)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
}

func TestZeroToleranceIsKept(t *testing.T) {
	t.Setenv("SETTLE_TOLERANCE", "0")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !cfg.Tolerance.IsZero() {
		t.Errorf("Tolerance = %s, want 0", cfg.Tolerance)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	t.Setenv("PORT", "eighty")
	if _, err := Parse(); err == nil {
		t.Error("expected error for non-numeric port")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"port out of range", func(c *Config) { c.Port = 70000 }, "invalid port"},
		{"negative tolerance", func(c *Config) { c.Tolerance = decimal.NewFromInt(-1) }, "tolerance"},
		{"empty db path", func(c *Config) { c.DBPath = "" }, "database path"},
		{"scheme with separator", func(c *Config) { c.PaymentScheme = "upi://" }, "payment scheme"},
		{"long currency", func(c *Config) { c.PaymentCurrency = "RUPEE" }, "currency"},
		{"zero shutdown timeout", func(c *Config) { c.ShutdownTimeout = 0 }, "shutdown timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse()
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			tt.mutate(cfg)
			err = cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := &Config{Port: 0, DBPath: "", PaymentCurrency: "X", ShutdownTimeout: time.Second}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if n := strings.Count(err.Error(), "\n- "); n != 3 {
		t.Errorf("expected 3 problems, got %d: %v", n, err)
	}
}

func TestValidateSheets(t *testing.T) {
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if err := cfg.ValidateSheets(); err == nil {
		t.Error("expected error without spreadsheet ID")
	}

	creds := filepath.Join(t.TempDir(), "creds.json")
	if err := os.WriteFile(creds, []byte("{}"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg.SpreadsheetID = "sheet-123"
	cfg.CredentialsFile = creds
	if err := cfg.ValidateSheets(); err != nil {
		t.Errorf("ValidateSheets() = %v", err)
	}

	cfg.CredentialsFile = filepath.Join(t.TempDir(), "missing.json")
	if err := cfg.ValidateSheets(); err == nil {
		t.Error("expected error for missing credentials file")
	}
}
