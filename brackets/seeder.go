package brackets

import (
	"fmt"

	"github.com/kuniyuki/beybattle-server/models"
)

// rng is a Lehmer linear-congruential generator (MINSTD constants). The
// sequence produced for a given seed is part of the bracket contract: the
// same event always reproduces the same shuffle across reloads, so the
// bracket itself never needs to be persisted.
type rng struct {
	state int64
}

const (
	rngModulus    = 2147483647
	rngMultiplier = 16807
)

func newRNG(seed int64) *rng {
	state := seed % rngModulus
	if state <= 0 {
		state += rngModulus - 1
	}
	return &rng{state: state}
}

// next returns a float in [0, 1).
func (r *rng) next() float64 {
	r.state = r.state * rngMultiplier % rngModulus
	return float64(r.state-1) / float64(rngModulus-1)
}

// Pair is one matchup node of the single-elimination tree, identified by a
// composite key "r<round>-m<index>" (or ThirdPlaceKey). Either side may be
// nil: a pair with exactly one side present is a bye and resolves in favor
// of the present side without a recorded match.
type Pair struct {
	Key string             `json:"key"`
	A   *models.EventEntry `json:"a,omitempty"`
	B   *models.EventEntry `json:"b,omitempty"`
}

// Round is one column of the bracket, first round leftmost.
type Round []Pair

// SeedForEvent derives the shuffle seed from the event's own identifier.
func SeedForEvent(eventID int) int64 {
	if eventID <= 0 {
		return 1
	}
	return int64(eventID)
}

// FirstRound shuffles the entries with the seeded generator, pads the list
// with byes up to the smallest power of two, and emits one pair per two
// slots. Side order within a pair is also generator-driven so the
// first-listed entry does not always land on the left.
func FirstRound(entries []models.EventEntry, seed int64) Round {
	if len(entries) == 0 {
		return Round{}
	}

	r := newRNG(seed)
	list := make([]*models.EventEntry, len(entries))
	for i := range entries {
		e := entries[i]
		list[i] = &e
	}
	for i := len(list) - 1; i > 0; i-- {
		j := int(r.next() * float64(i+1))
		if j > i {
			j = i
		}
		list[i], list[j] = list[j], list[i]
	}

	size := 1
	for size < len(list) {
		size *= 2
	}
	for len(list) < size {
		list = append(list, nil)
	}

	round := make(Round, 0, (len(list)+1)/2)
	for i := 0; i < len(list); i += 2 {
		a := list[i]
		var b *models.EventEntry
		if i+1 < len(list) {
			b = list[i+1]
		}
		if a != nil && b != nil && r.next() > 0.5 {
			a, b = b, a
		}
		round = append(round, Pair{Key: fmt.Sprintf("r1-m%d", i/2), A: a, B: b})
	}
	return round
}
