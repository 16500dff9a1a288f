package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/kuniyuki/beybattle-server/battle"
	"github.com/kuniyuki/beybattle-server/brackets"
	"github.com/kuniyuki/beybattle-server/models"
	"github.com/kuniyuki/beybattle-server/parts"
	"github.com/kuniyuki/beybattle-server/repositories"
	"github.com/kuniyuki/beybattle-server/storage"
)

type SideLoadoutInput struct {
	EntryID int                `json:"entry_id"`
	Beys    []models.BeyConfig `json:"beys"`
}

type StartBattleInput struct {
	A SideLoadoutInput `json:"a"`
	B SideLoadoutInput `json:"b"`
}

type RecordFinishInput struct {
	Side       string `json:"side"`
	FinishType string `json:"finish_type"`
}

// BattleState is the transient scoring state of the event's current
// match, as exposed to the operator console. Terminal means the event
// already has a resolved champion: finishes are accepted as no-ops.
type BattleState struct {
	EventID     int          `json:"event_id"`
	SlotKey     string       `json:"slot_key,omitempty"`
	MatchID     int          `json:"match_id,omitempty"`
	Started     bool         `json:"started"`
	Decided     bool         `json:"decided"`
	Terminal    bool         `json:"terminal"`
	Winner      *models.Side `json:"winner,omitempty"`
	ScoreA      int          `json:"score_a"`
	ScoreB      int          `json:"score_b"`
	BeyIndexA   int          `json:"bey_index_a"`
	BeyIndexB   int          `json:"bey_index_b"`
	FinishCount int          `json:"finish_count"`

	Round           int `json:"round,omitempty"`
	LossesA         int `json:"losses_a,omitempty"`
	LossesB         int `json:"losses_b,omitempty"`
	Streak          int `json:"streak,omitempty"`
	ChampionIndex   int `json:"champion_index,omitempty"`
	ChallengerIndex int `json:"challenger_index,omitempty"`
}

// ScoreService is the match recorder: it owns the per-event win-condition
// machine, lazily creates the persisted match and loadouts on the first
// finish of a slot, appends the immutable point log, and commits winner
// records the moment a match is decided.
type ScoreService interface {
	State(ctx context.Context, eventID int) (*BattleState, error)
	StartBattle(ctx context.Context, eventID int, input StartBattleInput) (*BattleState, error)
	RecordFinish(ctx context.Context, eventID int, input RecordFinishInput) (*BattleState, error)
	AdvanceBattle(ctx context.Context, eventID int) (*BattleState, error)
	ResetBattle(ctx context.Context, eventID int) (*BattleState, error)
	ReopenSlot(ctx context.Context, eventID int, slotKey string) (*BattleState, error)
	ResetBracket(ctx context.Context, eventID int) (*BattleState, error)
	Finalize(ctx context.Context, eventID int) (*models.Event, error)
	LastLoadout(ctx context.Context, entryID int) (*models.MatchLoadout, error)
}

type sideLoadout struct {
	entryID int
	userIDs []int
	beys    []models.BeyConfig
}

// eventRuntime holds the in-progress state for one event. The mutex
// serializes every scoring action so at most one mutation is in flight
// per event, which is what makes the lazy match creation idempotent.
type eventRuntime struct {
	mu       sync.Mutex
	machine  battle.Machine
	slotKey  string
	started  bool
	matchID  int
	finishes int
	loadouts map[models.Side]sideLoadout
}

type scoreService struct {
	eventRepo  repositories.EventRepository
	entryRepo  repositories.EntryRepository
	userRepo   repositories.UserRepository
	teamRepo   repositories.TeamRepository
	matchRepo  repositories.MatchRepository
	winnerRepo repositories.WinnerRepository
	hub        *brackets.Hub
	uploader   storage.FileUploader
	logger     *slog.Logger

	mu       sync.Mutex
	runtimes map[int]*eventRuntime
}

func NewScoreService(
	eventRepo repositories.EventRepository,
	entryRepo repositories.EntryRepository,
	userRepo repositories.UserRepository,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	winnerRepo repositories.WinnerRepository,
	hub *brackets.Hub,
	uploader storage.FileUploader,
	logger *slog.Logger,
) ScoreService {
	return &scoreService{
		eventRepo:  eventRepo,
		entryRepo:  entryRepo,
		userRepo:   userRepo,
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		winnerRepo: winnerRepo,
		hub:        hub,
		uploader:   uploader,
		logger:     logger,
		runtimes:   make(map[int]*eventRuntime),
	}
}

func (s *scoreService) runtime(eventID int) *eventRuntime {
	s.mu.Lock()
	defer s.mu.Unlock()
	rt, ok := s.runtimes[eventID]
	if !ok {
		rt = &eventRuntime{loadouts: make(map[models.Side]sideLoadout)}
		s.runtimes[eventID] = rt
	}
	return rt
}

type eventContext struct {
	event   *models.Event
	entries []models.EventEntry
	winners brackets.Winners
	rounds  []brackets.Round
	pair    brackets.Pair
	hasPair bool
}

func (s *scoreService) loadEventContext(ctx context.Context, eventID int) (*eventContext, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	entries, err := s.entryRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	ec := &eventContext{event: event, entries: entries, winners: brackets.Winners{}}
	if !event.BattleType.UsesBracket() {
		return ec, nil
	}

	records, err := s.winnerRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		ec.winners[rec.SlotKey] = rec.Winner
	}
	ec.derive()
	return ec, nil
}

// derive recomputes the bracket view from the current winner set.
func (ec *eventContext) derive() {
	first := brackets.FirstRound(ec.entries, brackets.SeedForEvent(ec.event.ID))
	ec.rounds = brackets.DeriveRounds(first, ec.winners)
	ec.pair, ec.hasPair = brackets.CurrentPair(ec.rounds, ec.winners)
}

func (ec *eventContext) terminal() bool {
	if ec.event.Status == models.EventArchived || ec.event.WinnerName != nil {
		return true
	}
	if ec.event.BattleType.UsesBracket() {
		return brackets.Champion(ec.rounds, ec.winners) != nil
	}
	return false
}

// sync points the runtime at the event's current slot. When the bracket
// has moved on to a new pair, the previous machine and match binding are
// discarded. Streak events keep one machine for the whole event.
func (s *scoreService) sync(rt *eventRuntime, ec *eventContext) error {
	if !ec.event.BattleType.UsesBracket() {
		if rt.machine == nil {
			if len(ec.entries) < 2 {
				return ErrTooFewEntries
			}
			m, err := battle.New(ec.event.BattleType, len(ec.entries))
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidBattleType, err)
			}
			rt.machine = m
		}
		return nil
	}

	if !ec.hasPair {
		rt.machine = nil
		rt.slotKey = ""
		rt.started = false
		rt.matchID = 0
		return nil
	}
	if rt.machine == nil || rt.slotKey != ec.pair.Key {
		m, err := battle.New(ec.event.BattleType, len(ec.entries))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBattleType, err)
		}
		rt.machine = m
		rt.slotKey = ec.pair.Key
		rt.started = false
		rt.matchID = 0
		rt.finishes = 0
		rt.loadouts = make(map[models.Side]sideLoadout)
	}
	return nil
}

func (s *scoreService) state(rt *eventRuntime, ec *eventContext) *BattleState {
	st := &BattleState{
		EventID:  ec.event.ID,
		SlotKey:  rt.slotKey,
		MatchID:  rt.matchID,
		Started:  rt.started,
		Terminal: ec.terminal(),
	}
	if rt.machine == nil {
		return st
	}
	st.Decided = rt.machine.Decided()
	if w, ok := rt.machine.Winner(); ok {
		st.Winner = &w
	}
	st.ScoreA = rt.machine.Score(models.SideA)
	st.ScoreB = rt.machine.Score(models.SideB)
	st.BeyIndexA = rt.machine.BeyIndex(models.SideA)
	st.BeyIndexB = rt.machine.BeyIndex(models.SideB)
	st.FinishCount = rt.finishes

	switch m := rt.machine.(type) {
	case *battle.Series:
		st.Round = m.Round()
	case *battle.Relay:
		st.LossesA = m.Losses(models.SideA)
		st.LossesB = m.Losses(models.SideB)
	case *battle.Streak:
		st.Streak = m.Streak()
		st.ChampionIndex = m.ChampionIndex()
		st.ChallengerIndex = m.ChallengerIndex()
	}
	return st
}

func (s *scoreService) State(ctx context.Context, eventID int) (*BattleState, error) {
	ec, err := s.loadEventContext(ctx, eventID)
	if err != nil {
		return nil, err
	}
	rt := s.runtime(eventID)
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if err := s.sync(rt, ec); err != nil && !errors.Is(err, ErrTooFewEntries) {
		return nil, err
	}
	return s.state(rt, ec), nil
}

// validateLoadout checks the declared beys against the format and, for
// team-part entries, against the owning team's inventory.
func (s *scoreService) validateLoadout(ctx context.Context, ec *eventContext, input SideLoadoutInput, entry *models.EventEntry) error {
	if entry == nil || entry.ID != input.EntryID {
		return fmt.Errorf("%w: entry %d is not on this side", ErrValidationFailed, input.EntryID)
	}
	if err := parts.ValidateSide(ec.event.BattleType, input.Beys); err != nil {
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	if !entry.UseTeamParts || len(entry.UserIDs) == 0 {
		return nil
	}

	user, err := s.userRepo.GetByID(ctx, entry.UserIDs[0])
	if err != nil {
		return err
	}
	if user.TeamID == nil {
		return fmt.Errorf("%w: entry uses team parts but user %d has no team", ErrValidationFailed, user.ID)
	}
	teamParts, err := s.teamRepo.ListParts(ctx, *user.TeamID)
	if err != nil {
		return err
	}
	if err := parts.ValidateAllowed(input.Beys, parts.AllowedFromTeamParts(teamParts)); err != nil {
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	return nil
}

func (s *scoreService) sideEntries(ec *eventContext, rt *eventRuntime) (a, b *models.EventEntry) {
	if ec.event.BattleType.UsesBracket() {
		return ec.pair.A, ec.pair.B
	}
	m, ok := rt.machine.(*battle.Streak)
	if !ok {
		return nil, nil
	}
	if m.ChampionIndex() < len(ec.entries) {
		a = &ec.entries[m.ChampionIndex()]
	}
	if m.ChallengerIndex() < len(ec.entries) {
		b = &ec.entries[m.ChallengerIndex()]
	}
	return a, b
}

func (s *scoreService) StartBattle(ctx context.Context, eventID int, input StartBattleInput) (*BattleState, error) {
	ec, err := s.loadEventContext(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ec.terminal() {
		return nil, ErrEventArchived
	}

	rt := s.runtime(eventID)
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if err := s.sync(rt, ec); err != nil {
		return nil, err
	}
	if ec.event.BattleType.UsesBracket() && !ec.hasPair {
		return nil, ErrNoCurrentMatch
	}

	entryA, entryB := s.sideEntries(ec, rt)
	if entryA == nil || entryB == nil {
		return nil, ErrNoCurrentMatch
	}
	if err := s.validateLoadout(ctx, ec, input.A, entryA); err != nil {
		return nil, err
	}
	if err := s.validateLoadout(ctx, ec, input.B, entryB); err != nil {
		return nil, err
	}

	rt.loadouts[models.SideA] = sideLoadout{entryID: entryA.ID, userIDs: entryA.UserIDs, beys: input.A.Beys}
	rt.loadouts[models.SideB] = sideLoadout{entryID: entryB.ID, userIDs: entryB.UserIDs, beys: input.B.Beys}
	rt.started = true

	st := s.state(rt, ec)
	s.broadcast(eventID, brackets.MessageScoreUpdated, st)
	return st, nil
}

// ensureMatch creates the persisted match row and both loadouts exactly
// once per slot. The runtime mutex is the single-writer guard; matchID
// stays zero until the row exists, so a retried first finish never
// duplicates the match.
func (s *scoreService) ensureMatch(ctx context.Context, rt *eventRuntime, ec *eventContext) error {
	if rt.matchID != 0 {
		return nil
	}
	match := &models.Match{EventID: ec.event.ID}
	if err := s.matchRepo.Create(ctx, nil, match); err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	for _, side := range []models.Side{models.SideA, models.SideB} {
		lo := rt.loadouts[side]
		loadout := &models.MatchLoadout{
			MatchID: match.ID,
			EntryID: lo.entryID,
			Side:    side,
			UserIDs: lo.userIDs,
			Beys:    lo.beys,
		}
		if err := s.matchRepo.CreateLoadout(ctx, nil, loadout); err != nil {
			return fmt.Errorf("failed to create loadout for side %s: %w", side, err)
		}
	}
	rt.matchID = match.ID
	return nil
}

func (s *scoreService) RecordFinish(ctx context.Context, eventID int, input RecordFinishInput) (*BattleState, error) {
	ec, err := s.loadEventContext(ctx, eventID)
	if err != nil {
		return nil, err
	}

	rt := s.runtime(eventID)
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if err := s.sync(rt, ec); err != nil {
		return nil, err
	}

	// A resolved champion makes the whole event read-only. Deliberately a
	// no-op rather than an error so a double tap after the final cannot
	// surface a failure.
	if ec.terminal() {
		return s.state(rt, ec), nil
	}

	side := models.Side(input.Side)
	if !side.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSide, input.Side)
	}
	finish := models.NormalizeFinish(input.FinishType)
	if !finish.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFinishType, input.FinishType)
	}
	if rt.machine == nil {
		return nil, ErrNoCurrentMatch
	}
	if !rt.started {
		return nil, ErrMatchNotStarted
	}
	if rt.machine.Decided() {
		// Same rationale as the terminal check above.
		return s.state(rt, ec), nil
	}

	if err := s.ensureMatch(ctx, rt, ec); err != nil {
		return nil, err
	}

	outcome, err := rt.machine.Apply(side, finish.Points())
	if err != nil {
		return nil, err
	}

	point := &models.MatchPoint{
		MatchID:    rt.matchID,
		WinnerSide: side,
		FinishType: finish,
		Points:     finish.Points(),
	}
	if err := s.matchRepo.AppendPoint(ctx, nil, point); err != nil {
		return nil, fmt.Errorf("failed to append point: %w", err)
	}
	rt.finishes++

	if outcome.NewMatchRecord {
		rt.matchID = 0
	}

	if outcome.Decided && ec.event.BattleType.UsesBracket() {
		record := &models.WinnerRecord{EventID: eventID, SlotKey: rt.slotKey, Winner: side}
		if err := s.winnerRepo.Upsert(ctx, nil, record); err != nil {
			return nil, fmt.Errorf("failed to record winner: %w", err)
		}
		ec.winners[rt.slotKey] = side
		st := s.state(rt, ec)
		s.logger.Info("match decided",
			slog.Int("event_id", eventID),
			slog.String("slot", rt.slotKey),
			slog.String("winner", string(side)))
		s.broadcast(eventID, brackets.MessageBracketUpdated, st)
		return st, nil
	}

	st := s.state(rt, ec)
	s.broadcast(eventID, brackets.MessageScoreUpdated, st)
	return st, nil
}

func (s *scoreService) AdvanceBattle(ctx context.Context, eventID int) (*BattleState, error) {
	ec, err := s.loadEventContext(ctx, eventID)
	if err != nil {
		return nil, err
	}

	rt := s.runtime(eventID)
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if err := s.sync(rt, ec); err != nil {
		return nil, err
	}
	if rt.machine == nil {
		return nil, ErrNoCurrentMatch
	}

	if err := rt.machine.Advance(); err != nil {
		// The redo signal propagates with the state already reset.
		return nil, err
	}
	if !ec.event.BattleType.UsesBracket() {
		// The ladder rotated in a new combatant, so the next round needs
		// its own start with fresh loadouts.
		rt.started = false
	}
	st := s.state(rt, ec)
	s.broadcast(eventID, brackets.MessageScoreUpdated, st)
	return st, nil
}

func (s *scoreService) ResetBattle(ctx context.Context, eventID int) (*BattleState, error) {
	ec, err := s.loadEventContext(ctx, eventID)
	if err != nil {
		return nil, err
	}

	rt := s.runtime(eventID)
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if err := s.sync(rt, ec); err != nil {
		return nil, err
	}
	if rt.machine != nil {
		rt.machine.Reset()
	}
	rt.started = false

	st := s.state(rt, ec)
	s.broadcast(eventID, brackets.MessageScoreUpdated, st)
	return st, nil
}

// unbind drops the runtime's slot binding so the next sync rebuilds the
// machine against the rederived bracket.
func (rt *eventRuntime) unbind() {
	rt.machine = nil
	rt.slotKey = ""
	rt.started = false
	rt.matchID = 0
	rt.finishes = 0
	rt.loadouts = nil
}

// ReopenSlot deletes one recorded bracket result so the slot can be
// replayed. Pairings fed by the slot unsettle until a new winner is
// recorded; a champion that was resolved through the slot is resolved no
// longer, which is how a wrongly entered final gets corrected before
// finalize.
func (s *scoreService) ReopenSlot(ctx context.Context, eventID int, slotKey string) (*BattleState, error) {
	ec, err := s.loadEventContext(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ec.event.Status == models.EventArchived {
		return nil, ErrEventArchived
	}

	rt := s.runtime(eventID)
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if err := s.winnerRepo.DeleteKey(ctx, eventID, slotKey); err != nil {
		if errors.Is(err, repositories.ErrWinnerNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	delete(ec.winners, slotKey)
	ec.derive()
	rt.unbind()
	if err := s.sync(rt, ec); err != nil {
		return nil, err
	}

	s.logger.Info("slot reopened", slog.Int("event_id", eventID), slog.String("slot", slotKey))
	st := s.state(rt, ec)
	s.broadcast(eventID, brackets.MessageBracketUpdated, st)
	return st, nil
}

// ResetBracket wipes every recorded result for the event. A bracket event
// restarts from its seeded first round; a gauntlet event restarts its
// ladder from the top.
func (s *scoreService) ResetBracket(ctx context.Context, eventID int) (*BattleState, error) {
	ec, err := s.loadEventContext(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ec.event.Status == models.EventArchived {
		return nil, ErrEventArchived
	}

	rt := s.runtime(eventID)
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if err := s.winnerRepo.DeleteByEvent(ctx, nil, eventID); err != nil {
		return nil, err
	}
	ec.winners = brackets.Winners{}
	if ec.event.BattleType.UsesBracket() {
		ec.derive()
	}
	rt.unbind()
	if err := s.sync(rt, ec); err != nil {
		return nil, err
	}

	s.logger.Info("bracket reset", slog.Int("event_id", eventID))
	st := s.state(rt, ec)
	s.broadcast(eventID, brackets.MessageBracketUpdated, st)
	return st, nil
}

// LastLoadout returns the entry's most recent persisted loadout so the
// operator console can prefill the side with its previous configuration.
func (s *scoreService) LastLoadout(ctx context.Context, entryID int) (*models.MatchLoadout, error) {
	if _, err := s.entryRepo.GetByID(ctx, entryID); err != nil {
		if errors.Is(err, repositories.ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	loadout, err := s.matchRepo.LatestLoadoutByEntry(ctx, entryID)
	if err != nil {
		if errors.Is(err, repositories.ErrLoadoutNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return loadout, nil
}

// resultSnapshot is the JSON document exported on finalize.
type resultSnapshot struct {
	Event   *models.Event         `json:"event"`
	Entries []models.EventEntry   `json:"entries"`
	Winners []models.WinnerRecord `json:"winners"`
	Matches []models.Match        `json:"matches"`
	Points  []models.MatchPoint   `json:"points"`
}

func (s *scoreService) Finalize(ctx context.Context, eventID int) (*models.Event, error) {
	ec, err := s.loadEventContext(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ec.event.Status == models.EventArchived {
		return nil, ErrEventArchived
	}

	rt := s.runtime(eventID)
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if err := s.sync(rt, ec); err != nil {
		return nil, err
	}

	names, err := loadUserNames(ctx, s.userRepo, ec.entries)
	if err != nil {
		return nil, err
	}
	labels := entryLabels(ec.event, ec.entries, names)

	var champion *models.EventEntry
	if ec.event.BattleType.UsesBracket() {
		champion = brackets.Champion(ec.rounds, ec.winners)
	} else if m, ok := rt.machine.(*battle.Streak); ok && m.Decided() && m.ChampionIndex() < len(ec.entries) {
		champion = &ec.entries[m.ChampionIndex()]
	}
	if champion == nil {
		return nil, ErrEventNotCompletable
	}

	winnerName := labels[champion.ID]
	if err := s.eventRepo.SetWinnerName(ctx, nil, eventID, &winnerName); err != nil {
		return nil, fmt.Errorf("failed to persist winner name: %w", err)
	}
	if err := s.eventRepo.UpdateStatus(ctx, nil, eventID, models.EventArchived); err != nil {
		return nil, fmt.Errorf("failed to archive event: %w", err)
	}
	ec.event.WinnerName = &winnerName
	ec.event.Status = models.EventArchived

	s.exportResults(ctx, ec)

	s.logger.Info("event finalized",
		slog.Int("event_id", eventID),
		slog.String("winner", winnerName))
	s.broadcast(eventID, brackets.MessageEventFinalized, ec.event)

	s.mu.Lock()
	delete(s.runtimes, eventID)
	s.mu.Unlock()

	return ec.event, nil
}

// exportResults uploads a JSON snapshot of the finished event. Failures
// are logged and swallowed: the archive transition must not depend on the
// storage backend being reachable.
func (s *scoreService) exportResults(ctx context.Context, ec *eventContext) {
	if s.uploader == nil {
		return
	}
	records, err := s.winnerRepo.ListByEvent(ctx, ec.event.ID)
	if err != nil {
		s.logger.Error("result export: failed to load winners", slog.Any("error", err))
		return
	}
	matches, err := s.matchRepo.ListByEvent(ctx, ec.event.ID)
	if err != nil {
		s.logger.Error("result export: failed to load matches", slog.Any("error", err))
		return
	}
	points, err := s.matchRepo.ListPointsByEvent(ctx, ec.event.ID)
	if err != nil {
		s.logger.Error("result export: failed to load points", slog.Any("error", err))
		return
	}

	snapshot := resultSnapshot{
		Event:   ec.event,
		Entries: ec.entries,
		Winners: records,
		Matches: matches,
		Points:  points,
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Error("result export: failed to marshal snapshot", slog.Any("error", err))
		return
	}

	key := fmt.Sprintf("results/event-%d-%s.json", ec.event.ID, uuid.NewString())
	result, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(raw))
	if err != nil {
		s.logger.Error("result export: upload failed", slog.Any("error", err))
		return
	}
	s.logger.Info("result export uploaded",
		slog.Int("event_id", ec.event.ID),
		slog.String("key", result.Key),
		slog.String("url", result.Location))
}

func (s *scoreService) broadcast(eventID int, msgType string, payload interface{}) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastToRoom(strconv.Itoa(eventID), brackets.Message{Type: msgType, Payload: payload})
}
