package brackets

import (
	"fmt"
	"testing"

	"github.com/kuniyuki/beybattle-server/models"
	"github.com/stretchr/testify/require"
)

func makeEntries(n int) []models.EventEntry {
	entries := make([]models.EventEntry, n)
	for i := range entries {
		entries[i] = models.EventEntry{ID: i + 1, EventID: 1, UserIDs: []int{i + 1}}
	}
	return entries
}

func roundEntryIDs(r Round) []int {
	ids := make([]int, 0, len(r)*2)
	for _, p := range r {
		for _, e := range []*models.EventEntry{p.A, p.B} {
			if e == nil {
				ids = append(ids, 0)
			} else {
				ids = append(ids, e.ID)
			}
		}
	}
	return ids
}

func TestFirstRoundDeterministic(t *testing.T) {
	entries := makeEntries(8)

	a := FirstRound(entries, 42)
	b := FirstRound(entries, 42)
	require.Equal(t, roundEntryIDs(a), roundEntryIDs(b))

	c := FirstRound(entries, 43)
	// A one-off seed collision is possible in principle, but not for these
	// fixed seeds.
	require.NotEqual(t, roundEntryIDs(a), roundEntryIDs(c))
}

func TestFirstRoundKeysAndCoverage(t *testing.T) {
	entries := makeEntries(6)
	round := FirstRound(entries, 7)

	// 6 entries pad to 8 slots, 4 pairs.
	require.Len(t, round, 4)
	for i, pair := range round {
		require.Equal(t, fmt.Sprintf("r1-m%d", i), pair.Key)
	}

	seen := map[int]bool{}
	nils := 0
	for _, id := range roundEntryIDs(round) {
		if id == 0 {
			nils++
			continue
		}
		require.False(t, seen[id], "entry %d appears twice", id)
		seen[id] = true
	}
	require.Len(t, seen, 6)
	require.Equal(t, 2, nils)
}

func TestFirstRoundSmallInputs(t *testing.T) {
	require.Empty(t, FirstRound(nil, 1))
	require.Empty(t, FirstRound([]models.EventEntry{}, 5))

	single := FirstRound(makeEntries(1), 3)
	require.Len(t, single, 1)
	require.NotNil(t, single[0].A)
	require.Nil(t, single[0].B)
}

func TestFirstRoundPowerOfTwoPadding(t *testing.T) {
	tests := []struct {
		entries int
		pairs   int
	}{
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 4},
		{9, 8},
		{16, 8},
	}
	for _, tt := range tests {
		round := FirstRound(makeEntries(tt.entries), 11)
		require.Len(t, round, tt.pairs, "%d entries", tt.entries)
	}
}

func TestSeedForEvent(t *testing.T) {
	require.Equal(t, int64(1), SeedForEvent(0))
	require.Equal(t, int64(1), SeedForEvent(-5))
	require.Equal(t, int64(17), SeedForEvent(17))
}

func TestRNGSequenceStable(t *testing.T) {
	// The generator output for a given seed is part of the bracket
	// contract; these values pin the MINSTD sequence for seed 1.
	r := newRNG(1)
	first := r.next()
	require.InDelta(t, float64(16807-1)/float64(2147483646), first, 1e-12)

	r2 := newRNG(1)
	require.Equal(t, first, r2.next())
}
