package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kuniyuki/beybattle-server/models"
	"github.com/lib/pq"
)

var (
	ErrWinnerNotFound     = errors.New("winner record not found")
	ErrWinnerInvalidEvent = errors.New("invalid event reference for winner record")
)

// WinnerRepository persists the per-slot bracket results. One row per
// (event, slot key); writing a key again overwrites the previous result
// so an operator can correct a past match.
type WinnerRepository interface {
	Upsert(ctx context.Context, exec SQLExecutor, record *models.WinnerRecord) error
	ListByEvent(ctx context.Context, eventID int) ([]models.WinnerRecord, error)
	DeleteByEvent(ctx context.Context, exec SQLExecutor, eventID int) error
	DeleteKey(ctx context.Context, eventID int, slotKey string) error
}

type postgresWinnerRepository struct {
	db *sql.DB
}

func NewPostgresWinnerRepository(db *sql.DB) WinnerRepository {
	return &postgresWinnerRepository{db: db}
}

func (r *postgresWinnerRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresWinnerRepository) Upsert(ctx context.Context, exec SQLExecutor, rec *models.WinnerRecord) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO match_winners (event_id, slot_key, winner, decided_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (event_id, slot_key)
		DO UPDATE SET winner = EXCLUDED.winner, decided_at = NOW()
		RETURNING decided_at`

	err := executor.QueryRowContext(ctx, query, rec.EventID, rec.SlotKey, rec.Winner).Scan(&rec.DecidedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrWinnerInvalidEvent
		}
		return err
	}
	return nil
}

func (r *postgresWinnerRepository) ListByEvent(ctx context.Context, eventID int) ([]models.WinnerRecord, error) {
	query := `
		SELECT event_id, slot_key, winner, decided_at
		FROM match_winners
		WHERE event_id = $1
		ORDER BY decided_at, slot_key`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.WinnerRecord, 0)
	for rows.Next() {
		var rec models.WinnerRecord
		if scanErr := rows.Scan(&rec.EventID, &rec.SlotKey, &rec.Winner, &rec.DecidedAt); scanErr != nil {
			return nil, scanErr
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *postgresWinnerRepository) DeleteByEvent(ctx context.Context, exec SQLExecutor, eventID int) error {
	executor := r.getExecutor(exec)
	_, err := executor.ExecContext(ctx, `DELETE FROM match_winners WHERE event_id = $1`, eventID)
	return err
}

func (r *postgresWinnerRepository) DeleteKey(ctx context.Context, eventID int, slotKey string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM match_winners WHERE event_id = $1 AND slot_key = $2`, eventID, slotKey)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrWinnerNotFound)
}
