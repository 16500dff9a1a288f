package brackets

import (
	"fmt"

	"github.com/kuniyuki/beybattle-server/models"
)

// ThirdPlaceKey identifies the synthesized third-place pair.
const ThirdPlaceKey = "third-place"

// Winners maps decided slot keys to the winning side. It is the sole
// mutable state driving bracket derivation; a key may be re-assigned to
// correct a past result, and every derivation starts from scratch, so
// downstream rounds recompute automatically.
type Winners map[string]models.Side

// ResolveWinner returns the entry advancing out of a pair: the recorded
// winner when one exists, else the lone present side (bye), else nil.
func ResolveWinner(p Pair, winners Winners) *models.EventEntry {
	switch winners[p.Key] {
	case models.SideA:
		return p.A
	case models.SideB:
		return p.B
	}
	if p.A != nil && p.B == nil {
		return p.A
	}
	if p.B != nil && p.A == nil {
		return p.B
	}
	return nil
}

// loserOf is only defined when the pair has a recorded winner; byes have
// no loser.
func loserOf(p Pair, winners Winners) *models.EventEntry {
	switch winners[p.Key] {
	case models.SideA:
		return p.B
	case models.SideB:
		return p.A
	}
	return nil
}

// DeriveRounds derives every round of the bracket from the first round and
// the set of recorded winners, transitively: round N+1 pairs up the
// resolved winners of round N two at a time, preserving order. Undecided
// pairs simply leave the downstream sides empty. When at least two rounds
// exist, a single third-place pair holding the two semifinal losers is
// spliced in immediately before the final.
func DeriveRounds(first Round, winners Winners) []Round {
	result := make([]Round, 0, 4)
	current := first
	roundIndex := 1
	for len(current) > 0 {
		result = append(result, current)

		advancing := make([]*models.EventEntry, len(current))
		for i, pair := range current {
			advancing[i] = ResolveWinner(pair, winners)
		}
		if len(advancing) <= 1 {
			break
		}

		next := make(Round, 0, len(advancing)/2)
		for i := 0; i < len(advancing); i += 2 {
			next = append(next, Pair{
				Key: fmt.Sprintf("r%d-m%d", roundIndex+1, i/2),
				A:   advancing[i],
				B:   advancing[i+1],
			})
		}
		current = next
		roundIndex++
	}

	if len(result) >= 2 {
		semifinal := result[len(result)-2]
		if len(semifinal) >= 2 {
			thirdPlace := Round{Pair{
				Key: ThirdPlaceKey,
				A:   loserOf(semifinal[0], winners),
				B:   loserOf(semifinal[1], winners),
			}}
			final := result[len(result)-1]
			result[len(result)-1] = thirdPlace
			result = append(result, final)
		}
	}
	return result
}

// CurrentPair returns the first pair, in round order, with both sides
// present and no recorded winner. The second return is false when no such
// pair exists (every playable pair is decided, or nothing is playable yet).
func CurrentPair(rounds []Round, winners Winners) (Pair, bool) {
	for _, round := range rounds {
		for _, pair := range round {
			if pair.A != nil && pair.B != nil {
				if _, decided := winners[pair.Key]; !decided {
					return pair, true
				}
			}
		}
	}
	return Pair{}, false
}

// Champion resolves the final round's single pair: the tournament is
// complete exactly when this returns non-nil.
func Champion(rounds []Round, winners Winners) *models.EventEntry {
	if len(rounds) == 0 {
		return nil
	}
	final := rounds[len(rounds)-1]
	if len(final) == 0 {
		return nil
	}
	return ResolveWinner(final[0], winners)
}
