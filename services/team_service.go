package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kuniyuki/beybattle-server/models"
	"github.com/kuniyuki/beybattle-server/parts"
	"github.com/kuniyuki/beybattle-server/repositories"
)

type AddTeamPartInput struct {
	PartKind string `json:"part_kind"`
	PartCode string `json:"part_code"`
}

type TeamService interface {
	Create(ctx context.Context, name string) (*models.Team, error)
	GetByID(ctx context.Context, id int) (*models.Team, error)
	List(ctx context.Context) ([]models.Team, error)
	Rename(ctx context.Context, id int, name string) (*models.Team, error)
	Delete(ctx context.Context, id int) error

	AddPart(ctx context.Context, teamID int, input AddTeamPartInput) (*models.TeamPart, error)
	RemovePart(ctx context.Context, partID int) error
	ListParts(ctx context.Context, teamID int) ([]models.TeamPart, error)
}

type teamService struct {
	teamRepo repositories.TeamRepository
}

func NewTeamService(teamRepo repositories.TeamRepository) TeamService {
	return &teamService{teamRepo: teamRepo}
}

func (s *teamService) Create(ctx context.Context, name string) (*models.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}
	team := &models.Team{Name: name}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

func (s *teamService) GetByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

func (s *teamService) List(ctx context.Context) ([]models.Team, error) {
	return s.teamRepo.List(ctx)
}

func (s *teamService) Rename(ctx context.Context, id int, name string) (*models.Team, error) {
	team, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}
	team.Name = name
	if err := s.teamRepo.Update(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to rename team: %w", err)
	}
	return team, nil
}

func (s *teamService) Delete(ctx context.Context, id int) error {
	err := s.teamRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrTeamNotFound) {
		return ErrTeamNotFound
	}
	return err
}

func (s *teamService) AddPart(ctx context.Context, teamID int, input AddTeamPartInput) (*models.TeamPart, error) {
	kind := models.PartKind(input.PartKind)
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPartKind, input.PartKind)
	}
	code := strings.TrimSpace(input.PartCode)
	if code == "" {
		return nil, fmt.Errorf("%w: part code is required", ErrValidationFailed)
	}
	// Unknown codes are allowed for parts the catalog subset misses, but
	// known kinds get a canonical code from the catalog when one matches.
	if p, ok := parts.Find(kind, code); ok {
		code = p.Code
	}

	part := &models.TeamPart{TeamID: teamID, PartKind: kind, PartCode: code}
	if err := s.teamRepo.AddPart(ctx, part); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNotFound):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrTeamPartConflict):
			return nil, fmt.Errorf("%w: %s %s already owned", ErrValidationFailed, kind, code)
		}
		return nil, fmt.Errorf("failed to add team part: %w", err)
	}
	return part, nil
}

func (s *teamService) RemovePart(ctx context.Context, partID int) error {
	err := s.teamRepo.RemovePart(ctx, partID)
	if errors.Is(err, repositories.ErrTeamPartNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *teamService) ListParts(ctx context.Context, teamID int) ([]models.TeamPart, error) {
	if _, err := s.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.teamRepo.ListParts(ctx, teamID)
}
