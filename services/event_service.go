package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kuniyuki/beybattle-server/models"
	"github.com/kuniyuki/beybattle-server/repositories"
)

type CreateEventInput struct {
	Name          string     `json:"name"`
	Stadium       string     `json:"stadium"`
	SideRule      string     `json:"side_rule"`
	BattleType    string     `json:"battle_type"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
}

type UpdateEventInput struct {
	Name          *string    `json:"name,omitempty"`
	Stadium       *string    `json:"stadium,omitempty"`
	SideRule      *string    `json:"side_rule,omitempty"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
}

type EventService interface {
	Create(ctx context.Context, input CreateEventInput) (*models.Event, error)
	GetByID(ctx context.Context, id int) (*models.Event, error)
	List(ctx context.Context, filter repositories.ListEventsFilter) ([]models.Event, error)
	Update(ctx context.Context, id int, input UpdateEventInput) (*models.Event, error)
	Delete(ctx context.Context, id int) error
}

type eventService struct {
	eventRepo repositories.EventRepository
}

func NewEventService(eventRepo repositories.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) Create(ctx context.Context, input CreateEventInput) (*models.Event, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEventNameRequired
	}
	battleType := models.BattleType(input.BattleType)
	if !battleType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBattleType, input.BattleType)
	}
	sideRule := models.SideRule(input.SideRule)
	if input.SideRule == "" {
		sideRule = models.SideRuleFixed
	}
	if !sideRule.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSideRule, input.SideRule)
	}

	event := &models.Event{
		Name:          name,
		Stadium:       models.NormalizeStadium(input.Stadium),
		SideRule:      sideRule,
		BattleType:    battleType,
		Status:        models.EventActive,
		ScheduledDate: input.ScheduledDate,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, repositories.ErrEventNameConflict) {
			return nil, ErrEventNameConflict
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetByID(ctx context.Context, id int) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context, filter repositories.ListEventsFilter) ([]models.Event, error) {
	return s.eventRepo.List(ctx, filter)
}

func (s *eventService) Update(ctx context.Context, id int, input UpdateEventInput) (*models.Event, error) {
	event, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.Status == models.EventArchived {
		return nil, ErrEventArchived
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrEventNameRequired
		}
		event.Name = name
	}
	if input.Stadium != nil {
		event.Stadium = models.NormalizeStadium(*input.Stadium)
	}
	if input.SideRule != nil {
		rule := models.SideRule(*input.SideRule)
		if !rule.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSideRule, *input.SideRule)
		}
		event.SideRule = rule
	}
	if input.ScheduledDate != nil {
		event.ScheduledDate = input.ScheduledDate
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, repositories.ErrEventNameConflict) {
			return nil, ErrEventNameConflict
		}
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id int) error {
	err := s.eventRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrEventNotFound) {
		return ErrEventNotFound
	}
	return err
}
