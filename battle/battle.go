// Package battle implements the per-format win-condition state machines.
// A machine tracks the in-progress state of exactly one bracket slot (or,
// for streak events, the rolling championship) and decides when a side has
// won the current match. Machines are not safe for concurrent use; the
// score service serializes access to them.
package battle

import (
	"errors"
	"fmt"

	"github.com/kuniyuki/beybattle-server/models"
)

var (
	// ErrAlreadyDecided rejects finishes once the current match is decided.
	ErrAlreadyDecided = errors.New("battle is already decided")
	// ErrRoundLocked rejects finishes while a sub-battle waits to be advanced.
	ErrRoundLocked = errors.New("round is locked until advanced")
	// ErrRoundNotFinished rejects an advance while the sub-battle still runs.
	ErrRoundNotFinished = errors.New("current round is not finished")
	// ErrSeriesUndecided is the operator-visible redo signal: three rounds
	// completed without either side reaching the threshold. The series has
	// already been reset to round zero when this is returned.
	ErrSeriesUndecided = errors.New("no side reached the threshold after three rounds, redo the round sequence")
	// ErrNoChallenger means the streak ladder ran out of unplayed entries.
	ErrNoChallenger = errors.New("no remaining challenger entries")
)

// Outcome describes the effect of one accepted finish.
type Outcome struct {
	// SubBattleEnded is set when this finish concluded the current
	// sub-battle (a three-on-three round, a team sub-match, or a streak
	// round). The caller must Advance before the next finish when the
	// match itself is not yet decided.
	SubBattleEnded bool
	// SubBattleWinner is the side that took the sub-battle, when ended.
	SubBattleWinner models.Side
	// Decided is set when the whole match is decided.
	Decided bool
	// NewMatchRecord signals the recorder that the next finish belongs to a
	// fresh persisted match: team relay records one match per sub-match,
	// the gauntlet one per round.
	NewMatchRecord bool
}

// Machine is the capability set shared by the four battle formats.
type Machine interface {
	// Apply records one finish worth points for side.
	Apply(side models.Side, points int) (Outcome, error)
	// Decided reports whether the current match has a winner.
	Decided() bool
	// Winner returns the winning side once decided.
	Winner() (models.Side, bool)
	// Score returns the side's running score in the current sub-battle
	// (cumulative for formats without sub-battle score resets).
	Score(side models.Side) int
	// BeyIndex reports which declared bey the side currently fields.
	BeyIndex(side models.Side) int
	// Advance moves to the next sub-battle after SubBattleEnded.
	Advance() error
	// Reset unwinds the transient state of the current battle. Structural
	// championship state (streak ladder position, relay loss counters)
	// survives; see each format.
	Reset()
}

// New builds the machine for the event's battle type. entryCount is only
// used by the streak format, which walks the entry list as a ladder.
func New(t models.BattleType, entryCount int) (Machine, error) {
	switch t {
	case models.BattleOneBey:
		return NewSingle(), nil
	case models.BattleThreeOnThree:
		return NewSeries(), nil
	case models.BattleStreak:
		return NewStreak(entryCount), nil
	case models.BattleTeam:
		return NewRelay(), nil
	}
	return nil, fmt.Errorf("unsupported battle type %q", t)
}
