// Command import-sheet copies a trip kept in a Google spreadsheet (a
// "friends" worksheet and an "expenses" worksheet) into the trip database
// and prints the resulting settlements.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mmynk/tripsplit/internal/config"
	"github.com/mmynk/tripsplit/internal/importer"
	"github.com/mmynk/tripsplit/internal/paylink"
	"github.com/mmynk/tripsplit/internal/settlement"
	"github.com/mmynk/tripsplit/internal/sheets/google"
	"github.com/mmynk/tripsplit/internal/storage/sqlite"
	"github.com/mmynk/tripsplit/pkg/logging"
)

func main() {
	tripName := flag.String("name", "", "name of the trip to create")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid config", "error", err)
		os.Exit(1)
	}
	if err := cfg.ValidateSheets(); err != nil {
		slog.Error("Invalid config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *tripName); err != nil {
		slog.Error("Import failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, tripName string) error {
	sheet, err := google.New(ctx, google.Options{
		SpreadsheetID:     cfg.SpreadsheetID,
		ParticipantsSheet: cfg.ParticipantsSheet,
		ExpensesSheet:     cfg.ExpensesSheet,
		CredentialsFile:   cfg.CredentialsFile,
	})
	if err != nil {
		return err
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	trip, err := importer.Import(ctx, sheet, store, tripName)
	if err != nil {
		return err
	}

	ledger, err := store.Snapshot(ctx, trip.ID)
	if err != nil {
		return err
	}
	calc := make([]settlement.Expense, len(ledger.Expenses))
	for i, e := range ledger.Expenses {
		calc[i] = settlement.Expense{Description: e.Description, Amount: e.Amount, Payer: e.Payer, Involved: e.Involved}
	}
	result, err := settlement.Compute(ledger.Names(), calc, cfg.Tolerance)
	if err != nil {
		return err
	}

	links := paylink.NewBuilder(cfg.PaymentScheme, cfg.PaymentCurrency)
	fmt.Printf("Trip %s (%s)\n", trip.Name, trip.ID)
	for _, edge := range result.Edges {
		to, _ := ledger.Participant(edge.To)
		fmt.Printf("%s owes %s: %s %s\n", edge.From, edge.To, edge.Amount.StringFixed(2), links.Currency)
		if link := links.Link(to.PaymentAddress, to.Name, edge.Amount); link != "" {
			fmt.Printf("  %s\n", link)
		}
	}
	if len(result.Edges) == 0 {
		fmt.Println("Everyone is settled up.")
	}
	return nil
}
