package services

import (
	"context"
	"sync"
	"time"

	"github.com/kuniyuki/beybattle-server/models"
	"github.com/kuniyuki/beybattle-server/repositories"
)

// In-memory repository fakes. They hold plain slices and maps behind one
// mutex so concurrent service calls exercise the same interleavings the
// real store would see.

type fakeEventRepo struct {
	mu     sync.Mutex
	nextID int
	events map[int]models.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[int]models.Event{}}
}

func (r *fakeEventRepo) Create(_ context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	event.ID = r.nextID
	event.CreatedAt = time.Now()
	r.events[event.ID] = *event
	return nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id int) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return nil, repositories.ErrEventNotFound
	}
	return &event, nil
}

func (r *fakeEventRepo) List(_ context.Context, _ repositories.ListEventsFilter) ([]models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[event.ID]; !ok {
		return repositories.ErrEventNotFound
	}
	r.events[event.ID] = *event
	return nil
}

func (r *fakeEventRepo) UpdateStatus(_ context.Context, _ repositories.SQLExecutor, id int, status models.EventStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return repositories.ErrEventNotFound
	}
	event.Status = status
	r.events[id] = event
	return nil
}

func (r *fakeEventRepo) SetWinnerName(_ context.Context, _ repositories.SQLExecutor, id int, winnerName *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return repositories.ErrEventNotFound
	}
	event.WinnerName = winnerName
	r.events[id] = event
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return repositories.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

type fakeEntryRepo struct {
	mu      sync.Mutex
	nextID  int
	entries []models.EventEntry
}

func newFakeEntryRepo() *fakeEntryRepo { return &fakeEntryRepo{} }

func (r *fakeEntryRepo) Create(_ context.Context, entry *models.EventEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	entry.ID = r.nextID
	entry.CreatedAt = time.Now()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeEntryRepo) GetByID(_ context.Context, id int) (*models.EventEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.ID == id {
			entry := e
			return &entry, nil
		}
	}
	return nil, repositories.ErrEntryNotFound
}

func (r *fakeEntryRepo) ListByEvent(_ context.Context, eventID int) ([]models.EventEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.EventEntry
	for _, e := range r.entries {
		if e.EventID == eventID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Update is a fixture seeding helper; the repository interface itself has
// no entry update, entries are immutable once created.
func (r *fakeEntryRepo) Update(_ context.Context, entry *models.EventEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.ID == entry.ID {
			r.entries[i] = *entry
			return nil
		}
	}
	return repositories.ErrEntryNotFound
}

func (r *fakeEntryRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return repositories.ErrEntryNotFound
}

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int
	users  map[int]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) List(_ context.Context, activeOnly bool) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		if activeOnly && !u.Active {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) ListByIDs(_ context.Context, ids []int) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeTeamRepo struct {
	mu     sync.Mutex
	nextID int
	teams  map[int]models.Team
	parts  map[int][]models.TeamPart
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: map[int]models.Team{}, parts: map[int][]models.TeamPart{}}
}

func (r *fakeTeamRepo) Create(_ context.Context, team *models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	team.ID = r.nextID
	team.CreatedAt = time.Now()
	r.teams[team.ID] = *team
	return nil
}

func (r *fakeTeamRepo) GetByID(_ context.Context, id int) (*models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	team, ok := r.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	return &team, nil
}

func (r *fakeTeamRepo) List(_ context.Context) ([]models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTeamRepo) Update(_ context.Context, team *models.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[team.ID]; !ok {
		return repositories.ErrTeamNotFound
	}
	r.teams[team.ID] = *team
	return nil
}

func (r *fakeTeamRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.teams[id]; !ok {
		return repositories.ErrTeamNotFound
	}
	delete(r.teams, id)
	return nil
}

func (r *fakeTeamRepo) AddPart(_ context.Context, part *models.TeamPart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	part.ID = r.nextID
	r.parts[part.TeamID] = append(r.parts[part.TeamID], *part)
	return nil
}

func (r *fakeTeamRepo) RemovePart(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for teamID, parts := range r.parts {
		for i, p := range parts {
			if p.ID == id {
				r.parts[teamID] = append(parts[:i], parts[i+1:]...)
				return nil
			}
		}
	}
	return repositories.ErrTeamPartNotFound
}

func (r *fakeTeamRepo) ListParts(_ context.Context, teamID int) ([]models.TeamPart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.TeamPart(nil), r.parts[teamID]...), nil
}

type fakeMatchRepo struct {
	mu       sync.Mutex
	nextID   int
	matches  []models.Match
	loadouts []models.MatchLoadout
	points   []models.MatchPoint
}

func newFakeMatchRepo() *fakeMatchRepo { return &fakeMatchRepo{} }

func (r *fakeMatchRepo) Create(_ context.Context, _ repositories.SQLExecutor, match *models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	match.ID = r.nextID
	match.CreatedAt = time.Now()
	r.matches = append(r.matches, *match)
	return nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id int) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.matches {
		if m.ID == id {
			match := m
			return &match, nil
		}
	}
	return nil, repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) ListByEvent(_ context.Context, eventID int) ([]models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Match
	for _, m := range r.matches {
		if m.EventID == eventID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.matches {
		if m.ID == id {
			r.matches = append(r.matches[:i], r.matches[i+1:]...)
			return nil
		}
	}
	return repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) CreateLoadout(_ context.Context, _ repositories.SQLExecutor, loadout *models.MatchLoadout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, lo := range r.loadouts {
		if lo.MatchID == loadout.MatchID && lo.Side == loadout.Side {
			return repositories.ErrLoadoutSideConflict
		}
	}
	r.nextID++
	loadout.ID = r.nextID
	r.loadouts = append(r.loadouts, *loadout)
	return nil
}

func (r *fakeMatchRepo) ListLoadouts(_ context.Context, matchID int) ([]models.MatchLoadout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.MatchLoadout
	for _, lo := range r.loadouts {
		if lo.MatchID == matchID {
			out = append(out, lo)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) LatestLoadoutByEntry(_ context.Context, entryID int) (*models.MatchLoadout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.loadouts) - 1; i >= 0; i-- {
		if r.loadouts[i].EntryID == entryID {
			loadout := r.loadouts[i]
			return &loadout, nil
		}
	}
	return nil, repositories.ErrLoadoutNotFound
}

func (r *fakeMatchRepo) AppendPoint(_ context.Context, _ repositories.SQLExecutor, point *models.MatchPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	point.ID = r.nextID
	point.CreatedAt = time.Now()
	r.points = append(r.points, *point)
	return nil
}

func (r *fakeMatchRepo) ListPoints(_ context.Context, matchID int) ([]models.MatchPoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.MatchPoint
	for _, p := range r.points {
		if p.MatchID == matchID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) ListPointsByEvent(_ context.Context, eventID int) ([]models.MatchPoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matchIDs := map[int]bool{}
	for _, m := range r.matches {
		if m.EventID == eventID {
			matchIDs[m.ID] = true
		}
	}
	var out []models.MatchPoint
	for _, p := range r.points {
		if matchIDs[p.MatchID] {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeWinnerRepo struct {
	mu      sync.Mutex
	records []models.WinnerRecord
}

func newFakeWinnerRepo() *fakeWinnerRepo { return &fakeWinnerRepo{} }

func (r *fakeWinnerRepo) Upsert(_ context.Context, _ repositories.SQLExecutor, record *models.WinnerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record.DecidedAt = time.Now()
	for i, rec := range r.records {
		if rec.EventID == record.EventID && rec.SlotKey == record.SlotKey {
			r.records[i] = *record
			return nil
		}
	}
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeWinnerRepo) ListByEvent(_ context.Context, eventID int) ([]models.WinnerRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.WinnerRecord
	for _, rec := range r.records {
		if rec.EventID == eventID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeWinnerRepo) DeleteByEvent(_ context.Context, _ repositories.SQLExecutor, eventID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.records[:0]
	for _, rec := range r.records {
		if rec.EventID != eventID {
			kept = append(kept, rec)
		}
	}
	r.records = kept
	return nil
}

func (r *fakeWinnerRepo) DeleteKey(_ context.Context, eventID int, slotKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rec := range r.records {
		if rec.EventID == eventID && rec.SlotKey == slotKey {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return repositories.ErrWinnerNotFound
}
