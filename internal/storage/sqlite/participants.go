package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
)

// AddParticipant registers a participant on an existing trip.
func (s *SQLiteStore) AddParticipant(ctx context.Context, tripID string, participant *models.Participant) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := getTrip(ctx, tx, tripID); err != nil {
		return err
	}

	if err := insertParticipant(ctx, tx, tripID, participant); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertParticipant(ctx context.Context, db execer, tripID string, participant *models.Participant) error {
	if participant.JoinedAt == 0 {
		participant.JoinedAt = time.Now().Unix()
	}

	_, err := db.ExecContext(ctx,
		"INSERT INTO participants (trip_id, name, payment_address, joined_at) VALUES (?, ?, ?, ?)",
		tripID, participant.Name, participant.PaymentAddress, participant.JoinedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("participant %q: %w", participant.Name, storage.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}
	return nil
}

// ListParticipants returns a trip's roster in registration order.
func (s *SQLiteStore) ListParticipants(ctx context.Context, tripID string) ([]models.Participant, error) {
	return listParticipants(ctx, s.db, tripID)
}

func listParticipants(ctx context.Context, q queryer, tripID string) ([]models.Participant, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT name, payment_address, joined_at FROM participants WHERE trip_id = ? ORDER BY seq",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.Name, &p.PaymentAddress, &p.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return participants, nil
}
