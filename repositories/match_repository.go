package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kuniyuki/beybattle-server/models"
	"github.com/lib/pq"
)

var (
	ErrMatchNotFound        = errors.New("match not found")
	ErrMatchInvalidEvent    = errors.New("invalid event reference for match")
	ErrLoadoutNotFound      = errors.New("match loadout not found")
	ErrLoadoutSideConflict  = errors.New("loadout already exists for this match side")
	ErrLoadoutInvalidEntry  = errors.New("invalid entry reference for loadout")
	ErrMatchPointInvalidRef = errors.New("invalid match reference for point")
)

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListByEvent(ctx context.Context, eventID int) ([]models.Match, error)
	Delete(ctx context.Context, id int) error

	CreateLoadout(ctx context.Context, exec SQLExecutor, loadout *models.MatchLoadout) error
	ListLoadouts(ctx context.Context, matchID int) ([]models.MatchLoadout, error)
	LatestLoadoutByEntry(ctx context.Context, entryID int) (*models.MatchLoadout, error)

	AppendPoint(ctx context.Context, exec SQLExecutor, point *models.MatchPoint) error
	ListPoints(ctx context.Context, matchID int) ([]models.MatchPoint, error)
	ListPointsByEvent(ctx context.Context, eventID int) ([]models.MatchPoint, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, m *models.Match) error {
	executor := r.getExecutor(exec)
	query := `INSERT INTO matches (event_id) VALUES ($1) RETURNING id, created_at`

	err := executor.QueryRowContext(ctx, query, m.EventID).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrMatchInvalidEvent
		}
		return err
	}
	return nil
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	m := &models.Match{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, event_id, created_at FROM matches WHERE id = $1`, id,
	).Scan(&m.ID, &m.EventID, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *postgresMatchRepository) ListByEvent(ctx context.Context, eventID int) ([]models.Match, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, event_id, created_at FROM matches WHERE event_id = $1 ORDER BY id`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var m models.Match
		if scanErr := rows.Scan(&m.ID, &m.EventID, &m.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) CreateLoadout(ctx context.Context, exec SQLExecutor, l *models.MatchLoadout) error {
	executor := r.getExecutor(exec)
	userIDs, err := marshalJSONColumn(l.UserIDs)
	if err != nil {
		return err
	}
	beys, err := marshalJSONColumn(l.Beys)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO match_loadouts (match_id, entry_id, side, user_ids, beys)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err = executor.QueryRowContext(ctx, query, l.MatchID, l.EntryID, l.Side, userIDs, beys).Scan(&l.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				return ErrLoadoutSideConflict
			case "23503":
				if pqErr.Constraint == "match_loadouts_entry_id_fkey" {
					return ErrLoadoutInvalidEntry
				}
				return ErrMatchNotFound
			}
		}
		return err
	}
	return nil
}

func (r *postgresMatchRepository) ListLoadouts(ctx context.Context, matchID int) ([]models.MatchLoadout, error) {
	query := `
		SELECT id, match_id, entry_id, side, user_ids, beys
		FROM match_loadouts
		WHERE match_id = $1
		ORDER BY side`

	rows, err := r.db.QueryContext(ctx, query, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loadouts := make([]models.MatchLoadout, 0)
	for rows.Next() {
		var l models.MatchLoadout
		var rawUserIDs, rawBeys []byte
		if scanErr := rows.Scan(&l.ID, &l.MatchID, &l.EntryID, &l.Side, &rawUserIDs, &rawBeys); scanErr != nil {
			return nil, scanErr
		}
		if err := unmarshalJSONColumn(rawUserIDs, &l.UserIDs); err != nil {
			return nil, err
		}
		if err := unmarshalJSONColumn(rawBeys, &l.Beys); err != nil {
			return nil, err
		}
		loadouts = append(loadouts, l)
	}
	return loadouts, rows.Err()
}

// LatestLoadoutByEntry returns the entry's most recently persisted
// loadout, so a side can reuse its previous configuration.
func (r *postgresMatchRepository) LatestLoadoutByEntry(ctx context.Context, entryID int) (*models.MatchLoadout, error) {
	query := `
		SELECT id, match_id, entry_id, side, user_ids, beys
		FROM match_loadouts
		WHERE entry_id = $1
		ORDER BY id DESC
		LIMIT 1`

	var l models.MatchLoadout
	var rawUserIDs, rawBeys []byte
	err := r.db.QueryRowContext(ctx, query, entryID).
		Scan(&l.ID, &l.MatchID, &l.EntryID, &l.Side, &rawUserIDs, &rawBeys)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLoadoutNotFound
		}
		return nil, err
	}
	if err := unmarshalJSONColumn(rawUserIDs, &l.UserIDs); err != nil {
		return nil, err
	}
	if err := unmarshalJSONColumn(rawBeys, &l.Beys); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *postgresMatchRepository) AppendPoint(ctx context.Context, exec SQLExecutor, p *models.MatchPoint) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO match_points (match_id, winner_side, finish_type, points)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := executor.QueryRowContext(ctx, query, p.MatchID, p.WinnerSide, p.FinishType, p.Points).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrMatchPointInvalidRef
		}
		return err
	}
	return nil
}

func (r *postgresMatchRepository) ListPoints(ctx context.Context, matchID int) ([]models.MatchPoint, error) {
	query := `
		SELECT id, match_id, winner_side, finish_type, points, created_at
		FROM match_points
		WHERE match_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPoints(rows)
}

func (r *postgresMatchRepository) ListPointsByEvent(ctx context.Context, eventID int) ([]models.MatchPoint, error) {
	query := `
		SELECT p.id, p.match_id, p.winner_side, p.finish_type, p.points, p.created_at
		FROM match_points p
		JOIN matches m ON m.id = p.match_id
		WHERE m.event_id = $1
		ORDER BY p.id`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPoints(rows)
}

func scanPoints(rows *sql.Rows) ([]models.MatchPoint, error) {
	points := make([]models.MatchPoint, 0)
	for rows.Next() {
		var p models.MatchPoint
		if err := rows.Scan(&p.ID, &p.MatchID, &p.WinnerSide, &p.FinishType, &p.Points, &p.CreatedAt); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
