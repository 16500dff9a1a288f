package battle

import "github.com/kuniyuki/beybattle-server/models"

const (
	seriesTarget = 4
	seriesRounds = 3
)

// Series is the three-on-three format: each side declares three beys and
// they battle in order, one finish per round. Points accumulate across the
// rounds; the first side to reach 4 wins the match. Scoring locks after
// every round until the operator advances. If all three rounds complete
// without either side reaching 4, the series resets to round zero with
// cleared scores and the advance reports ErrSeriesUndecided so the
// operator can redo the bey order.
type Series struct {
	scoreA int
	scoreB int
	round  int
	locked bool
}

func NewSeries() *Series {
	return &Series{}
}

func (s *Series) Apply(side models.Side, points int) (Outcome, error) {
	if s.Decided() {
		return Outcome{}, ErrAlreadyDecided
	}
	if s.locked {
		return Outcome{}, ErrRoundLocked
	}
	if side == models.SideA {
		s.scoreA += points
	} else {
		s.scoreB += points
	}
	s.locked = true
	return Outcome{
		SubBattleEnded:  true,
		SubBattleWinner: side,
		Decided:         s.Decided(),
	}, nil
}

func (s *Series) Decided() bool {
	return s.scoreA >= seriesTarget || s.scoreB >= seriesTarget
}

func (s *Series) Winner() (models.Side, bool) {
	if s.scoreA >= seriesTarget {
		return models.SideA, true
	}
	if s.scoreB >= seriesTarget {
		return models.SideB, true
	}
	return "", false
}

func (s *Series) Score(side models.Side) int {
	if side == models.SideA {
		return s.scoreA
	}
	return s.scoreB
}

func (s *Series) BeyIndex(models.Side) int { return s.round }

// Round returns the zero-based index of the active round.
func (s *Series) Round() int { return s.round }

func (s *Series) Advance() error {
	if s.Decided() {
		return ErrAlreadyDecided
	}
	if !s.locked {
		return ErrRoundNotFinished
	}
	if s.round >= seriesRounds-1 {
		s.Reset()
		return ErrSeriesUndecided
	}
	s.round++
	s.locked = false
	return nil
}

func (s *Series) Reset() {
	s.scoreA, s.scoreB = 0, 0
	s.round = 0
	s.locked = false
}
