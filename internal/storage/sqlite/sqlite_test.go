package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateTrip generates ID and name", func(t *testing.T) {
		trip := &models.Trip{}
		if err := store.CreateTrip(ctx, trip); err != nil {
			t.Fatalf("CreateTrip failed: %v", err)
		}
		if trip.ID == "" {
			t.Error("Expected trip ID to be generated")
		}
		if trip.Name == "" {
			t.Error("Expected trip name to be generated")
		}
		if trip.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetTrip retrieves trip", func(t *testing.T) {
		original := &models.Trip{Name: "Goa"}
		if err := store.CreateTrip(ctx, original); err != nil {
			t.Fatalf("CreateTrip failed: %v", err)
		}
		got, err := store.GetTrip(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetTrip failed: %v", err)
		}
		if got.Name != "Goa" || got.CreatedAt != original.CreatedAt {
			t.Errorf("GetTrip = %+v, want %+v", got, original)
		}
	})

	t.Run("GetTrip returns ErrNotFound for nonexistent trip", func(t *testing.T) {
		_, err := store.GetTrip(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListTrips returns every trip", func(t *testing.T) {
		trips, err := store.ListTrips(ctx)
		if err != nil {
			t.Fatalf("ListTrips failed: %v", err)
		}
		if len(trips) != 2 {
			t.Errorf("Expected 2 trips, got %d", len(trips))
		}
	})
}

func TestParticipants(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	trip := &models.Trip{Name: "Hampi"}
	if err := store.CreateTrip(ctx, trip); err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}

	for _, p := range []models.Participant{
		{Name: "Zara", PaymentAddress: "zara@okaxis"},
		{Name: "Asha", PaymentAddress: "asha@okicici"},
		{Name: "Milo"},
	} {
		p := p
		if err := store.AddParticipant(ctx, trip.ID, &p); err != nil {
			t.Fatalf("AddParticipant(%s) failed: %v", p.Name, err)
		}
	}

	t.Run("roster keeps registration order", func(t *testing.T) {
		roster, err := store.ListParticipants(ctx, trip.ID)
		if err != nil {
			t.Fatalf("ListParticipants failed: %v", err)
		}
		var names []string
		for _, p := range roster {
			names = append(names, p.Name)
		}
		if want := []string{"Zara", "Asha", "Milo"}; !slices.Equal(names, want) {
			t.Errorf("roster = %v, want %v", names, want)
		}
		if roster[0].PaymentAddress != "zara@okaxis" {
			t.Errorf("payment address = %q", roster[0].PaymentAddress)
		}
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		err := store.AddParticipant(ctx, trip.ID, &models.Participant{Name: "Asha"})
		if !errors.Is(err, storage.ErrDuplicate) {
			t.Errorf("Expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("same name on another trip is fine", func(t *testing.T) {
		other := &models.Trip{Name: "Other"}
		if err := store.CreateTrip(ctx, other); err != nil {
			t.Fatalf("CreateTrip failed: %v", err)
		}
		if err := store.AddParticipant(ctx, other.ID, &models.Participant{Name: "Asha"}); err != nil {
			t.Errorf("AddParticipant failed: %v", err)
		}
	})

	t.Run("unknown trip", func(t *testing.T) {
		err := store.AddParticipant(ctx, "missing", &models.Participant{Name: "Ghost"})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestExpenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	trip := &models.Trip{Name: "Coorg"}
	if err := store.CreateTrip(ctx, trip); err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}
	for _, name := range []string{"Asha", "Ben", "Chen"} {
		if err := store.AddParticipant(ctx, trip.ID, &models.Participant{Name: name}); err != nil {
			t.Fatalf("AddParticipant failed: %v", err)
		}
	}

	first := &models.Expense{
		TripID:      trip.ID,
		Description: "Homestay",
		Amount:      decimal.RequireFromString("4500.50"),
		Payer:       "Ben",
		Involved:    []string{"Asha", "Ben", "Chen"},
	}
	second := &models.Expense{
		TripID:      trip.ID,
		Description: "Coffee",
		Amount:      decimal.RequireFromString("120"),
		Payer:       "Asha",
		Involved:    []string{"Chen"},
	}
	for _, e := range []*models.Expense{first, second} {
		if err := store.CreateExpense(ctx, e); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		if e.ID == "" || e.CreatedAt == 0 {
			t.Errorf("Expected ID and CreatedAt to be set, got %+v", e)
		}
	}

	t.Run("ListExpenses round trips amounts and involved", func(t *testing.T) {
		expenses, err := store.ListExpenses(ctx, trip.ID)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if len(expenses) != 2 {
			t.Fatalf("Expected 2 expenses, got %d", len(expenses))
		}
		got := expenses[0]
		if got.ID != first.ID || got.Description != "Homestay" || got.Payer != "Ben" {
			t.Errorf("first expense = %+v", got)
		}
		if !got.Amount.Equal(first.Amount) {
			t.Errorf("amount = %s, want %s", got.Amount, first.Amount)
		}
		if !slices.Equal(got.Involved, first.Involved) {
			t.Errorf("involved = %v, want %v", got.Involved, first.Involved)
		}
		if expenses[1].ID != second.ID {
			t.Errorf("expenses out of recording order")
		}
	})

	t.Run("unregistered payer is rejected", func(t *testing.T) {
		err := store.CreateExpense(ctx, &models.Expense{
			TripID:      trip.ID,
			Description: "Mystery",
			Amount:      decimal.NewFromInt(10),
			Payer:       "Nobody",
			Involved:    []string{"Asha"},
		})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Snapshot reads roster and ledger together", func(t *testing.T) {
		ledger, err := store.Snapshot(ctx, trip.ID)
		if err != nil {
			t.Fatalf("Snapshot failed: %v", err)
		}
		if ledger.Trip.ID != trip.ID {
			t.Errorf("trip = %s, want %s", ledger.Trip.ID, trip.ID)
		}
		if want := []string{"Asha", "Ben", "Chen"}; !slices.Equal(ledger.Names(), want) {
			t.Errorf("names = %v, want %v", ledger.Names(), want)
		}
		if len(ledger.Expenses) != 2 {
			t.Errorf("Expected 2 expenses, got %d", len(ledger.Expenses))
		}
	})

	t.Run("Snapshot of missing trip", func(t *testing.T) {
		if _, err := store.Snapshot(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	store, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	trip := &models.Trip{Name: "Persisted"}
	if err := store.CreateTrip(context.Background(), trip); err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}
	store.Close()

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("New on existing database failed: %v", err)
	}
	defer reopened.Close()
	if _, err := reopened.GetTrip(context.Background(), trip.ID); err != nil {
		t.Errorf("GetTrip after reopen failed: %v", err)
	}
}

func TestImportLedger(t *testing.T) {
	ctx := context.Background()

	t.Run("writes trip, roster and expenses", func(t *testing.T) {
		store := newTestStore(t)
		ledger := &models.Ledger{
			Trip:         models.Trip{Name: "Hampi"},
			Participants: []models.Participant{{Name: "Asha", PaymentAddress: "asha@okaxis"}, {Name: "Ben"}},
			Expenses: []models.Expense{
				{Description: "Bus", Amount: decimal.NewFromInt(40), Payer: "Ben", Involved: []string{"Asha", "Ben"}},
			},
		}
		if err := store.ImportLedger(ctx, ledger); err != nil {
			t.Fatalf("ImportLedger failed: %v", err)
		}
		if ledger.Trip.ID == "" || ledger.Expenses[0].TripID != ledger.Trip.ID {
			t.Fatalf("IDs not populated: %+v", ledger)
		}

		got, err := store.Snapshot(ctx, ledger.Trip.ID)
		if err != nil {
			t.Fatalf("Snapshot failed: %v", err)
		}
		if !slices.Equal(got.Names(), []string{"Asha", "Ben"}) {
			t.Errorf("roster = %v", got.Names())
		}
		if len(got.Expenses) != 1 || !got.Expenses[0].Amount.Equal(decimal.NewFromInt(40)) {
			t.Errorf("expenses = %+v", got.Expenses)
		}
	})

	tests := []struct {
		name    string
		ledger  *models.Ledger
		wantErr error
	}{
		{
			name: "duplicate participant",
			ledger: &models.Ledger{
				Participants: []models.Participant{{Name: "Asha"}, {Name: "Asha"}},
			},
			wantErr: storage.ErrDuplicate,
		},
		{
			name: "expense payer not on roster",
			ledger: &models.Ledger{
				Participants: []models.Participant{{Name: "Asha"}},
				Expenses: []models.Expense{
					{Description: "Tea", Amount: decimal.NewFromInt(5), Payer: "Asha", Involved: []string{"Asha"}},
					{Description: "Taxi", Amount: decimal.NewFromInt(9), Payer: "Zed", Involved: []string{"Asha"}},
				},
			},
			wantErr: storage.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name+" rolls back", func(t *testing.T) {
			store := newTestStore(t)
			if err := store.ImportLedger(ctx, tt.ledger); !errors.Is(err, tt.wantErr) {
				t.Fatalf("ImportLedger error = %v, want %v", err, tt.wantErr)
			}
			trips, err := store.ListTrips(ctx)
			if err != nil {
				t.Fatalf("ListTrips failed: %v", err)
			}
			if len(trips) != 0 {
				t.Errorf("expected no trips after failed import, got %d", len(trips))
			}
		})
	}
}
