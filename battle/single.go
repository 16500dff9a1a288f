package battle

import "github.com/kuniyuki/beybattle-server/models"

const singleTarget = 4

// Single is the one-bey format: each side fields one bey, first side to
// reach 4 points wins the match. No sub-battles.
type Single struct {
	scoreA int
	scoreB int
}

func NewSingle() *Single {
	return &Single{}
}

func (s *Single) Apply(side models.Side, points int) (Outcome, error) {
	if s.Decided() {
		return Outcome{}, ErrAlreadyDecided
	}
	if side == models.SideA {
		s.scoreA += points
	} else {
		s.scoreB += points
	}
	if s.Decided() {
		return Outcome{SubBattleEnded: true, SubBattleWinner: side, Decided: true}, nil
	}
	return Outcome{}, nil
}

func (s *Single) Decided() bool {
	return s.scoreA >= singleTarget || s.scoreB >= singleTarget
}

func (s *Single) Winner() (models.Side, bool) {
	if s.scoreA >= singleTarget {
		return models.SideA, true
	}
	if s.scoreB >= singleTarget {
		return models.SideB, true
	}
	return "", false
}

func (s *Single) Score(side models.Side) int {
	if side == models.SideA {
		return s.scoreA
	}
	return s.scoreB
}

func (s *Single) BeyIndex(models.Side) int { return 0 }

func (s *Single) Advance() error { return nil }

func (s *Single) Reset() {
	s.scoreA, s.scoreB = 0, 0
}
