package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kuniyuki/beybattle-server/models"
	"github.com/kuniyuki/beybattle-server/repositories"
)

// maxEntryUsers bounds a team relay lineup.
const maxEntryUsers = 3

type CreateEntryInput struct {
	UserIDs      []int   `json:"user_ids"`
	UseTeamParts bool    `json:"use_team_parts"`
	TeamName     *string `json:"team_name,omitempty"`
}

type EntryService interface {
	Create(ctx context.Context, eventID int, input CreateEntryInput) (*models.EventEntry, error)
	ListByEvent(ctx context.Context, eventID int) ([]models.EventEntry, error)
	Delete(ctx context.Context, entryID int) error
}

type entryService struct {
	entryRepo repositories.EntryRepository
	eventRepo repositories.EventRepository
	userRepo  repositories.UserRepository
}

func NewEntryService(
	entryRepo repositories.EntryRepository,
	eventRepo repositories.EventRepository,
	userRepo repositories.UserRepository,
) EntryService {
	return &entryService{
		entryRepo: entryRepo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
	}
}

func (s *entryService) validateUsers(ctx context.Context, battleType models.BattleType, input CreateEntryInput) error {
	if len(input.UserIDs) == 0 {
		return ErrEntryUsersRequired
	}
	limit := 1
	if battleType == models.BattleTeam {
		limit = maxEntryUsers
	}
	if len(input.UserIDs) > limit {
		return fmt.Errorf("%w: max %d for %s", ErrEntryTooManyUsers, limit, battleType)
	}

	users, err := s.userRepo.ListByIDs(ctx, input.UserIDs)
	if err != nil {
		return fmt.Errorf("failed to load entry users: %w", err)
	}
	byID := make(map[int]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	for _, id := range input.UserIDs {
		u, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: user %d", ErrUserNotFound, id)
		}
		if !u.Active {
			return fmt.Errorf("%w: user %d", ErrEntryUserInactive, id)
		}
	}
	return nil
}

func (s *entryService) Create(ctx context.Context, eventID int, input CreateEntryInput) (*models.EventEntry, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if event.Status == models.EventArchived {
		return nil, ErrEventArchived
	}
	if err := s.validateUsers(ctx, event.BattleType, input); err != nil {
		return nil, err
	}

	entry := &models.EventEntry{
		EventID:      eventID,
		UserIDs:      input.UserIDs,
		UseTeamParts: input.UseTeamParts,
		TeamName:     input.TeamName,
	}
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}
	return entry, nil
}

func (s *entryService) ListByEvent(ctx context.Context, eventID int) ([]models.EventEntry, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return s.entryRepo.ListByEvent(ctx, eventID)
}

// Entries are immutable once created; a mistaken lineup is deleted and
// re-entered rather than edited in place, so seeding stays reproducible.
func (s *entryService) Delete(ctx context.Context, entryID int) error {
	err := s.entryRepo.Delete(ctx, entryID)
	if errors.Is(err, repositories.ErrEntryNotFound) {
		return ErrEntryNotFound
	}
	return err
}
