package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kuniyuki/beybattle-server/models"
	"github.com/kuniyuki/beybattle-server/repositories"
)

type UpsertUserInput struct {
	Name   string `json:"name"`
	TeamID *int   `json:"team_id,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

type UserService interface {
	Create(ctx context.Context, input UpsertUserInput) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	List(ctx context.Context, activeOnly bool) ([]models.User, error)
	Update(ctx context.Context, id int, input UpsertUserInput) (*models.User, error)
	Delete(ctx context.Context, id int) error
}

type userService struct {
	userRepo repositories.UserRepository
	teamRepo repositories.TeamRepository
}

func NewUserService(userRepo repositories.UserRepository, teamRepo repositories.TeamRepository) UserService {
	return &userService{userRepo: userRepo, teamRepo: teamRepo}
}

func (s *userService) checkTeam(ctx context.Context, teamID *int) error {
	if teamID == nil {
		return nil
	}
	if _, err := s.teamRepo.GetByID(ctx, *teamID); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return err
	}
	return nil
}

func (s *userService) Create(ctx context.Context, input UpsertUserInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrUserNameRequired
	}
	if err := s.checkTeam(ctx, input.TeamID); err != nil {
		return nil, err
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}
	user := &models.User{Name: name, TeamID: input.TeamID, Active: active}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id int) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, activeOnly bool) ([]models.User, error) {
	return s.userRepo.List(ctx, activeOnly)
}

func (s *userService) Update(ctx context.Context, id int, input UpsertUserInput) (*models.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		user.Name = strings.TrimSpace(input.Name)
		if user.Name == "" {
			return nil, ErrUserNameRequired
		}
	}
	if err := s.checkTeam(ctx, input.TeamID); err != nil {
		return nil, err
	}
	if input.TeamID != nil {
		user.TeamID = input.TeamID
	}
	if input.Active != nil {
		user.Active = *input.Active
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int) error {
	err := s.userRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return ErrUserNotFound
	}
	return err
}
