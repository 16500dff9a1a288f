package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kuniyuki/beybattle-server/models"
	"github.com/lib/pq"
)

var (
	ErrEntryNotFound     = errors.New("entry not found")
	ErrEntryInvalidEvent = errors.New("invalid event reference for entry")
	ErrEntryInUse        = errors.New("entry is referenced by match loadouts")
)

type EntryRepository interface {
	Create(ctx context.Context, entry *models.EventEntry) error
	GetByID(ctx context.Context, id int) (*models.EventEntry, error)
	ListByEvent(ctx context.Context, eventID int) ([]models.EventEntry, error)
	Delete(ctx context.Context, id int) error
}

type postgresEntryRepository struct {
	db *sql.DB
}

func NewPostgresEntryRepository(db *sql.DB) EntryRepository {
	return &postgresEntryRepository{db: db}
}

func (r *postgresEntryRepository) Create(ctx context.Context, entry *models.EventEntry) error {
	userIDs, err := marshalJSONColumn(entry.UserIDs)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO event_entries (event_id, user_ids, use_team_parts, team_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err = r.db.QueryRowContext(ctx, query,
		entry.EventID, userIDs, entry.UseTeamParts, entry.TeamName,
	).Scan(&entry.ID, &entry.CreatedAt)

	return r.handleEntryError(err)
}

func (r *postgresEntryRepository) GetByID(ctx context.Context, id int) (*models.EventEntry, error) {
	query := `
		SELECT id, event_id, user_ids, use_team_parts, team_name, created_at
		FROM event_entries
		WHERE id = $1`

	entry := &models.EventEntry{}
	var rawUserIDs []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&entry.ID, &entry.EventID, &rawUserIDs, &entry.UseTeamParts, &entry.TeamName, &entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	if err := unmarshalJSONColumn(rawUserIDs, &entry.UserIDs); err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *postgresEntryRepository) ListByEvent(ctx context.Context, eventID int) ([]models.EventEntry, error) {
	query := `
		SELECT id, event_id, user_ids, use_team_parts, team_name, created_at
		FROM event_entries
		WHERE event_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.EventEntry, 0)
	for rows.Next() {
		var entry models.EventEntry
		var rawUserIDs []byte
		if scanErr := rows.Scan(
			&entry.ID, &entry.EventID, &rawUserIDs, &entry.UseTeamParts, &entry.TeamName, &entry.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		if err := unmarshalJSONColumn(rawUserIDs, &entry.UserIDs); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *postgresEntryRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM event_entries WHERE id = $1`, id)
	if err != nil {
		return r.handleEntryError(err)
	}
	return checkAffectedRows(result, ErrEntryNotFound)
}

func (r *postgresEntryRepository) handleEntryError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
		if pqErr.Constraint == "event_entries_event_id_fkey" {
			return ErrEntryInvalidEvent
		}
		return ErrEntryInUse
	}
	return err
}
