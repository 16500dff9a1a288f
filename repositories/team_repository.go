package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kuniyuki/beybattle-server/models"
	"github.com/lib/pq"
)

var (
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamNameConflict = errors.New("team name conflict")
	ErrTeamInUse        = errors.New("team has members or parts")
	ErrTeamPartNotFound = errors.New("team part not found")
	ErrTeamPartConflict = errors.New("team already owns this part")
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	List(ctx context.Context) ([]models.Team, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id int) error

	AddPart(ctx context.Context, part *models.TeamPart) error
	RemovePart(ctx context.Context, id int) error
	ListParts(ctx context.Context, teamID int) ([]models.TeamPart, error)
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) Create(ctx context.Context, t *models.Team) error {
	query := `INSERT INTO teams (name) VALUES ($1) RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, t.Name).Scan(&t.ID, &t.CreatedAt)
	return r.handleTeamError(err)
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	t := &models.Team{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM teams WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *postgresTeamRepository) List(ctx context.Context) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at FROM teams ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var t models.Team
		if scanErr := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *postgresTeamRepository) Update(ctx context.Context, t *models.Team) error {
	result, err := r.db.ExecContext(ctx, `UPDATE teams SET name = $1 WHERE id = $2`, t.Name, t.ID)
	if err != nil {
		return r.handleTeamError(err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return r.handleTeamError(err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) AddPart(ctx context.Context, p *models.TeamPart) error {
	query := `
		INSERT INTO team_parts (team_id, part_kind, part_code)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, p.TeamID, p.PartKind, p.PartCode).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				return ErrTeamPartConflict
			case "23503":
				return ErrTeamNotFound
			}
		}
		return err
	}
	return nil
}

func (r *postgresTeamRepository) RemovePart(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM team_parts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamPartNotFound)
}

func (r *postgresTeamRepository) ListParts(ctx context.Context, teamID int) ([]models.TeamPart, error) {
	query := `
		SELECT id, team_id, part_kind, part_code, created_at
		FROM team_parts
		WHERE team_id = $1
		ORDER BY part_kind, part_code`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parts := make([]models.TeamPart, 0)
	for rows.Next() {
		var p models.TeamPart
		if scanErr := rows.Scan(&p.ID, &p.TeamID, &p.PartKind, &p.PartCode, &p.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

func (r *postgresTeamRepository) handleTeamError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			return ErrTeamNameConflict
		case "23503":
			return ErrTeamInUse
		}
	}
	return err
}
