package battle

import "github.com/kuniyuki/beybattle-server/models"

const streakTarget = 3

// Streak is the gauntlet format: the reigning champion (side A) faces a
// ladder of challengers (side B), one finish per round. A champion win
// extends the streak and pulls in the next unplayed entry; a challenger
// win makes the challenger the new champion with a streak of one. The
// first entry to reach a streak of three wins the event. There is no
// bracket in this format.
type Streak struct {
	entryCount    int
	championIdx   int
	challengerIdx int
	streak        int
	roundPlayed   bool
	pendingWinner models.Side
}

func NewStreak(entryCount int) *Streak {
	return &Streak{
		entryCount:    entryCount,
		championIdx:   0,
		challengerIdx: 1,
	}
}

func (s *Streak) Apply(side models.Side, points int) (Outcome, error) {
	if s.Decided() {
		return Outcome{}, ErrAlreadyDecided
	}
	if s.roundPlayed {
		return Outcome{}, ErrRoundLocked
	}
	if s.challengerIdx >= s.entryCount {
		return Outcome{}, ErrNoChallenger
	}
	s.roundPlayed = true
	s.pendingWinner = side
	// Each round is its own persisted match; the next one starts fresh
	// once the ladder rotates.
	return Outcome{
		SubBattleEnded:  true,
		SubBattleWinner: side,
		NewMatchRecord:  true,
	}, nil
}

func (s *Streak) Decided() bool {
	return s.streak >= streakTarget
}

// Winner reports side A once decided: the champion always occupies the
// left side. The winning entry itself is entries[ChampionIndex()].
func (s *Streak) Winner() (models.Side, bool) {
	if s.Decided() {
		return models.SideA, true
	}
	return "", false
}

// Score is the champion's current streak on side A; challengers carry no
// running score between rounds.
func (s *Streak) Score(side models.Side) int {
	if side == models.SideA {
		return s.streak
	}
	return 0
}

func (s *Streak) BeyIndex(models.Side) int { return 0 }

// ChampionIndex is the position of the reigning champion in the entry list.
func (s *Streak) ChampionIndex() int { return s.championIdx }

// ChallengerIndex is the position of the current challenger. It can equal
// the entry count once the ladder is exhausted; Apply then rejects further
// finishes with ErrNoChallenger.
func (s *Streak) ChallengerIndex() int { return s.challengerIdx }

// Streak returns the champion's current consecutive win count.
func (s *Streak) Streak() int { return s.streak }

// Advance applies the round result: the winner stays as champion and the
// loser's slot is replaced by the next unplayed entry.
func (s *Streak) Advance() error {
	if s.Decided() {
		return ErrAlreadyDecided
	}
	if !s.roundPlayed {
		return ErrRoundNotFinished
	}

	if s.pendingWinner == models.SideA {
		if s.streak < streakTarget {
			s.streak++
		}
		if s.streak < streakTarget {
			s.challengerIdx++
		}
	} else {
		s.championIdx = s.challengerIdx
		s.challengerIdx++
		s.streak = 1
	}

	s.roundPlayed = false
	s.pendingWinner = ""
	return nil
}

// Reset clears the pending round only. Ladder position and the running
// streak are championship structure and survive a battle reset.
func (s *Streak) Reset() {
	s.roundPlayed = false
	s.pendingWinner = ""
}
