package services

import (
	"context"
	"errors"
	"strings"

	"github.com/kuniyuki/beybattle-server/brackets"
	"github.com/kuniyuki/beybattle-server/models"
	"github.com/kuniyuki/beybattle-server/repositories"
	"golang.org/x/sync/errgroup"
)

// SlotView is one side of a bracket pair as rendered to clients: the
// entry identifier plus a ready-made display label.
type SlotView struct {
	EntryID int    `json:"entry_id"`
	Label   string `json:"label"`
}

type PairView struct {
	Key    string       `json:"key"`
	A      *SlotView    `json:"a,omitempty"`
	B      *SlotView    `json:"b,omitempty"`
	Winner *models.Side `json:"winner,omitempty"`
}

type RoundView struct {
	Title string     `json:"title"`
	Pairs []PairView `json:"pairs"`
}

// BracketView is the full derived bracket for one event. Rounds are empty
// for streak events, which have no elimination tree.
type BracketView struct {
	Event      *models.Event `json:"event"`
	EntryCount int           `json:"entry_count"`
	Rounds     []RoundView   `json:"rounds"`
	CurrentKey *string       `json:"current_key,omitempty"`
	Champion   *string       `json:"champion,omitempty"`
}

type BracketService interface {
	View(ctx context.Context, eventID int) (*BracketView, error)
}

type bracketService struct {
	eventRepo  repositories.EventRepository
	entryRepo  repositories.EntryRepository
	userRepo   repositories.UserRepository
	winnerRepo repositories.WinnerRepository
}

func NewBracketService(
	eventRepo repositories.EventRepository,
	entryRepo repositories.EntryRepository,
	userRepo repositories.UserRepository,
	winnerRepo repositories.WinnerRepository,
) BracketService {
	return &bracketService{
		eventRepo:  eventRepo,
		entryRepo:  entryRepo,
		userRepo:   userRepo,
		winnerRepo: winnerRepo,
	}
}

func (s *bracketService) View(ctx context.Context, eventID int) (*BracketView, error) {
	var (
		event   *models.Event
		entries []models.EventEntry
		records []models.WinnerRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		event, err = s.eventRepo.GetByID(gctx, eventID)
		if errors.Is(err, repositories.ErrEventNotFound) {
			return ErrEventNotFound
		}
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.entryRepo.ListByEvent(gctx, eventID)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.winnerRepo.ListByEvent(gctx, eventID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names, err := loadUserNames(ctx, s.userRepo, entries)
	if err != nil {
		return nil, err
	}
	labels := entryLabels(event, entries, names)

	view := &BracketView{
		Event:      event,
		EntryCount: len(entries),
		Rounds:     []RoundView{},
	}
	if event.WinnerName != nil {
		view.Champion = event.WinnerName
	}
	if !event.BattleType.UsesBracket() {
		return view, nil
	}

	winners := brackets.Winners{}
	for _, rec := range records {
		winners[rec.SlotKey] = rec.Winner
	}

	first := brackets.FirstRound(entries, brackets.SeedForEvent(event.ID))
	rounds := brackets.DeriveRounds(first, winners)

	for _, round := range rounds {
		rv := RoundView{Title: roundTitle(round), Pairs: make([]PairView, 0, len(round))}
		for _, pair := range round {
			pv := PairView{Key: pair.Key, A: slotView(pair.A, labels), B: slotView(pair.B, labels)}
			if w, ok := winners[pair.Key]; ok {
				winner := w
				pv.Winner = &winner
			}
			rv.Pairs = append(rv.Pairs, pv)
		}
		view.Rounds = append(view.Rounds, rv)
	}

	if pair, ok := brackets.CurrentPair(rounds, winners); ok {
		key := pair.Key
		view.CurrentKey = &key
	}
	if view.Champion == nil {
		if champ := brackets.Champion(rounds, winners); champ != nil {
			label := labels[champ.ID]
			view.Champion = &label
		}
	}
	return view, nil
}

func loadUserNames(ctx context.Context, userRepo repositories.UserRepository, entries []models.EventEntry) (map[int]string, error) {
	ids := make([]int, 0, len(entries))
	seen := map[int]bool{}
	for _, entry := range entries {
		for _, id := range entry.UserIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	users, err := userRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}

// entryLabels builds the display label per entry: the declared team name
// for team events, otherwise the member names joined with a slash.
func entryLabels(event *models.Event, entries []models.EventEntry, names map[int]string) map[int]string {
	labels := make(map[int]string, len(entries))
	for _, entry := range entries {
		if event.BattleType == models.BattleTeam && entry.TeamName != nil && *entry.TeamName != "" {
			labels[entry.ID] = *entry.TeamName
			continue
		}
		parts := make([]string, 0, len(entry.UserIDs))
		for _, id := range entry.UserIDs {
			if name, ok := names[id]; ok {
				parts = append(parts, name)
			} else {
				parts = append(parts, "不明")
			}
		}
		if len(parts) == 0 {
			labels[entry.ID] = "未設定"
			continue
		}
		labels[entry.ID] = strings.Join(parts, " / ")
	}
	return labels
}

func slotView(entry *models.EventEntry, labels map[int]string) *SlotView {
	if entry == nil {
		return nil
	}
	return &SlotView{EntryID: entry.ID, Label: labels[entry.ID]}
}

func roundTitle(round brackets.Round) string {
	if len(round) > 0 && round[0].Key == brackets.ThirdPlaceKey {
		return "3位決定戦"
	}
	slots := len(round) * 2
	switch {
	case slots <= 2:
		return "決勝"
	case slots <= 4:
		return "準決勝"
	case slots <= 8:
		return "準々決勝"
	}
	return "勝ち上がり"
}
