package battle

import "github.com/kuniyuki/beybattle-server/models"

const (
	relaySubTarget  = 2
	relayLossTarget = 3
	relayTeamSize   = 3
)

// Relay is the team format: each side fields three players sequentially.
// A sub-match goes to the first side reaching 2 points; the losing side's
// loss counter increments and its next player steps in. The match is
// decided when either side has lost all three players. Each sub-match is
// persisted as its own match record.
type Relay struct {
	scoreA  int
	scoreB  int
	lossesA int
	lossesB int
	idxA    int
	idxB    int
}

func NewRelay() *Relay {
	return &Relay{}
}

func (r *Relay) Apply(side models.Side, points int) (Outcome, error) {
	if r.Decided() {
		return Outcome{}, ErrAlreadyDecided
	}
	if side == models.SideA {
		r.scoreA += points
	} else {
		r.scoreB += points
	}
	if r.scoreA < relaySubTarget && r.scoreB < relaySubTarget {
		return Outcome{}, nil
	}

	// Sub-match over: the loser burns a player and sends the next one in.
	if side == models.SideA {
		r.lossesB++
		if r.idxB < relayTeamSize-1 {
			r.idxB++
		}
	} else {
		r.lossesA++
		if r.idxA < relayTeamSize-1 {
			r.idxA++
		}
	}
	r.scoreA, r.scoreB = 0, 0

	return Outcome{
		SubBattleEnded:  true,
		SubBattleWinner: side,
		Decided:         r.Decided(),
		NewMatchRecord:  !r.Decided(),
	}, nil
}

func (r *Relay) Decided() bool {
	return r.lossesA >= relayLossTarget || r.lossesB >= relayLossTarget
}

func (r *Relay) Winner() (models.Side, bool) {
	if r.lossesB >= relayLossTarget {
		return models.SideA, true
	}
	if r.lossesA >= relayLossTarget {
		return models.SideB, true
	}
	return "", false
}

func (r *Relay) Score(side models.Side) int {
	if side == models.SideA {
		return r.scoreA
	}
	return r.scoreB
}

func (r *Relay) BeyIndex(side models.Side) int {
	if side == models.SideA {
		return r.idxA
	}
	return r.idxB
}

// Losses returns how many of the side's players have been eliminated.
func (r *Relay) Losses(side models.Side) int {
	if side == models.SideA {
		return r.lossesA
	}
	return r.lossesB
}

func (r *Relay) Advance() error { return nil }

// Reset clears the running sub-match scores. Loss counters and active
// player indices are match structure and survive a battle reset.
func (r *Relay) Reset() {
	r.scoreA, r.scoreB = 0, 0
}
