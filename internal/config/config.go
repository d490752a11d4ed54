// Package config loads server and importer settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	// Server
	Port            int           `env:"PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MetricsEnabled  bool          `env:"METRICS_ENABLED" envDefault:"true"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Database
	DBPath string `env:"DB_PATH" envDefault:"./data/trips.db"`

	// Settlement
	Tolerance decimal.Decimal `env:"SETTLE_TOLERANCE" envDefault:"1"`

	// Payment links
	PaymentScheme   string `env:"PAYMENT_SCHEME" envDefault:"upi"`
	PaymentCurrency string `env:"PAYMENT_CURRENCY" envDefault:"INR"`

	// Google Sheets import
	SpreadsheetID     string `env:"GOOGLE_SPREADSHEET_ID"`
	ParticipantsSheet string `env:"GOOGLE_PARTICIPANTS_SHEET" envDefault:"friends"`
	ExpensesSheet     string `env:"GOOGLE_EXPENSES_SHEET" envDefault:"expenses"`
	CredentialsFile   string `env:"GOOGLE_CREDENTIALS_FILE"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}
	if c.ShutdownTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid shutdown timeout %v: must be positive", c.ShutdownTimeout))
	}
	if c.DBPath == "" {
		problems = append(problems, "database path cannot be empty")
	}
	if c.Tolerance.IsNegative() {
		problems = append(problems, fmt.Sprintf("invalid settlement tolerance %s: must not be negative", c.Tolerance))
	}
	if strings.ContainsAny(c.PaymentScheme, ":/?") {
		problems = append(problems, fmt.Sprintf("invalid payment scheme %q: give the bare scheme, e.g. upi", c.PaymentScheme))
	}
	if len(c.PaymentCurrency) != 3 {
		problems = append(problems, fmt.Sprintf("invalid payment currency %q: must be a 3-letter code", c.PaymentCurrency))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// ValidateSheets checks the settings the spreadsheet importer needs.
func (c *Config) ValidateSheets() error {
	var problems []string

	if c.SpreadsheetID == "" {
		problems = append(problems, "GOOGLE_SPREADSHEET_ID is required for import")
	}
	if c.ParticipantsSheet == "" || c.ExpensesSheet == "" {
		problems = append(problems, "participants and expenses sheet names cannot be empty")
	}
	if c.CredentialsFile != "" {
		if _, err := os.Stat(c.CredentialsFile); err != nil {
			problems = append(problems, fmt.Sprintf("Google credentials file not readable: %s", c.CredentialsFile))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("sheets configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
