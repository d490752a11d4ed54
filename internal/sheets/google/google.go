// Package google reads a trip roster and ledger from a Google spreadsheet
// with one worksheet for participants and one for expenses.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"github.com/mmynk/tripsplit/internal/importer"
	"github.com/mmynk/tripsplit/internal/models"
)

// Ensure interface conformance
var _ importer.Source = (*Client)(nil)

// Client reads the participants and expenses worksheets of one spreadsheet.
type Client struct {
	svc               *gsheet.Service
	spreadsheetID     string
	participantsSheet string
	expensesSheet     string
}

// Options selects the spreadsheet and worksheets to read.
type Options struct {
	SpreadsheetID     string
	ParticipantsSheet string // default "friends"
	ExpensesSheet     string // default "expenses"
	// CredentialsFile is a service account JSON key. When empty,
	// Application Default Credentials are used.
	CredentialsFile string
}

// New creates a read-only Sheets client.
func New(ctx context.Context, opts Options) (*Client, error) {
	if strings.TrimSpace(opts.SpreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet ID")
	}
	if opts.ParticipantsSheet == "" {
		opts.ParticipantsSheet = "friends"
	}
	if opts.ExpensesSheet == "" {
		opts.ExpensesSheet = "expenses"
	}

	clientOpts := []goption.ClientOption{goption.WithScopes(gsheet.SpreadsheetsReadonlyScope)}
	if opts.CredentialsFile != "" {
		slog.InfoContext(ctx, "Reading credentials from file", "path", opts.CredentialsFile)
		credentialsJSON, err := os.ReadFile(opts.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		clientOpts = append(clientOpts, goption.WithCredentialsJSON(credentialsJSON))
	}

	svc, err := gsheet.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:               svc,
		spreadsheetID:     opts.SpreadsheetID,
		participantsSheet: opts.ParticipantsSheet,
		expensesSheet:     opts.ExpensesSheet,
	}, nil
}

// ReadParticipants returns the roster in sheet order.
func (c *Client) ReadParticipants(ctx context.Context) ([]models.Participant, error) {
	values, err := c.readRange(ctx, c.participantsSheet+"!A:Z")
	if err != nil {
		return nil, err
	}
	return parseParticipants(values)
}

// ReadExpenses returns the ledger in sheet order.
func (c *Client) ReadExpenses(ctx context.Context) ([]models.Expense, error) {
	values, err := c.readRange(ctx, c.expensesSheet+"!A:Z")
	if err != nil {
		return nil, err
	}
	return parseExpenses(values)
}

func (c *Client) readRange(ctx context.Context, rng string) ([][]interface{}, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	slog.DebugContext(ctx, "Read sheet range", "range", rng, "rows", len(resp.Values))
	return resp.Values, nil
}
