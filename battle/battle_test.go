package battle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kuniyuki/beybattle-server/models"
)

func TestNewByBattleType(t *testing.T) {
	tests := []struct {
		name       string
		battleType models.BattleType
		want       any
	}{
		{name: "one-bey", battleType: models.BattleOneBey, want: &Single{}},
		{name: "three-on-three", battleType: models.BattleThreeOnThree, want: &Series{}},
		{name: "streak", battleType: models.BattleStreak, want: &Streak{}},
		{name: "team", battleType: models.BattleTeam, want: &Relay{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := New(tc.battleType, 4)
			require.NoError(t, err)
			require.IsType(t, tc.want, m)
		})
	}

	_, err := New(models.BattleType("royale"), 4)
	require.Error(t, err)
}

func TestSingleThreshold(t *testing.T) {
	m := NewSingle()

	out, err := m.Apply(models.SideA, 3)
	require.NoError(t, err)
	require.False(t, out.Decided)
	require.False(t, m.Decided())

	out, err = m.Apply(models.SideB, 2)
	require.NoError(t, err)
	require.False(t, out.Decided)

	out, err = m.Apply(models.SideA, 1)
	require.NoError(t, err)
	require.True(t, out.Decided)
	require.True(t, out.SubBattleEnded)
	require.Equal(t, models.SideA, out.SubBattleWinner)

	winner, ok := m.Winner()
	require.True(t, ok)
	require.Equal(t, models.SideA, winner)
	require.Equal(t, 4, m.Score(models.SideA))
	require.Equal(t, 2, m.Score(models.SideB))
}

func TestSingleRejectsAfterDecision(t *testing.T) {
	m := NewSingle()
	_, err := m.Apply(models.SideB, 3)
	require.NoError(t, err)
	_, err = m.Apply(models.SideB, 3)
	require.NoError(t, err)

	_, err = m.Apply(models.SideA, 1)
	require.ErrorIs(t, err, ErrAlreadyDecided)
	require.Equal(t, 0, m.Score(models.SideA))
}

func TestSingleOvershootStillDecidesOnce(t *testing.T) {
	m := NewSingle()
	out, err := m.Apply(models.SideA, 3)
	require.NoError(t, err)
	require.False(t, out.Decided)

	// An extreme finish from 3 points lands at 6; the match decides on
	// crossing the threshold, not on hitting it exactly.
	out, err = m.Apply(models.SideA, 3)
	require.NoError(t, err)
	require.True(t, out.Decided)
	require.Equal(t, 6, m.Score(models.SideA))
}

func TestSingleReset(t *testing.T) {
	m := NewSingle()
	_, err := m.Apply(models.SideA, 4)
	require.NoError(t, err)
	require.True(t, m.Decided())

	m.Reset()
	require.False(t, m.Decided())
	require.Equal(t, 0, m.Score(models.SideA))
	_, ok := m.Winner()
	require.False(t, ok)
}

func TestSeriesRoundLocking(t *testing.T) {
	m := NewSeries()
	require.Equal(t, 0, m.Round())
	require.Equal(t, 0, m.BeyIndex(models.SideA))

	out, err := m.Apply(models.SideA, 2)
	require.NoError(t, err)
	require.True(t, out.SubBattleEnded)
	require.False(t, out.Decided)

	// One finish per round: the next finish must wait for an advance.
	_, err = m.Apply(models.SideB, 1)
	require.ErrorIs(t, err, ErrRoundLocked)

	require.NoError(t, m.Advance())
	require.Equal(t, 1, m.Round())
	require.Equal(t, 1, m.BeyIndex(models.SideB))

	_, err = m.Apply(models.SideB, 1)
	require.NoError(t, err)
}

func TestSeriesAdvanceRequiresFinish(t *testing.T) {
	m := NewSeries()
	require.ErrorIs(t, m.Advance(), ErrRoundNotFinished)
}

func TestSeriesDecidesMidSeries(t *testing.T) {
	m := NewSeries()

	_, err := m.Apply(models.SideA, 3)
	require.NoError(t, err)
	require.NoError(t, m.Advance())

	out, err := m.Apply(models.SideA, 2)
	require.NoError(t, err)
	require.True(t, out.Decided)
	require.Equal(t, 5, m.Score(models.SideA))

	winner, ok := m.Winner()
	require.True(t, ok)
	require.Equal(t, models.SideA, winner)
	require.ErrorIs(t, m.Advance(), ErrAlreadyDecided)
}

func TestSeriesUndecidedResetsForRedo(t *testing.T) {
	m := NewSeries()

	// Three spin finishes split 2-1 leave both sides under the threshold.
	_, err := m.Apply(models.SideA, 1)
	require.NoError(t, err)
	require.NoError(t, m.Advance())
	_, err = m.Apply(models.SideB, 1)
	require.NoError(t, err)
	require.NoError(t, m.Advance())
	_, err = m.Apply(models.SideA, 1)
	require.NoError(t, err)

	err = m.Advance()
	require.ErrorIs(t, err, ErrSeriesUndecided)

	// The redo starts from a clean slate.
	require.Equal(t, 0, m.Round())
	require.Equal(t, 0, m.Score(models.SideA))
	require.Equal(t, 0, m.Score(models.SideB))
	require.False(t, m.Decided())
	_, err = m.Apply(models.SideB, 3)
	require.NoError(t, err)
}

func TestStreakChampionDefends(t *testing.T) {
	m := NewStreak(5)
	require.Equal(t, 0, m.ChampionIndex())
	require.Equal(t, 1, m.ChallengerIndex())

	for i := 0; i < 2; i++ {
		out, err := m.Apply(models.SideA, 3)
		require.NoError(t, err)
		require.True(t, out.SubBattleEnded)
		require.True(t, out.NewMatchRecord)
		require.False(t, out.Decided)
		require.NoError(t, m.Advance())
	}
	require.Equal(t, 2, m.Streak())
	require.Equal(t, 3, m.ChallengerIndex())

	_, err := m.Apply(models.SideA, 1)
	require.NoError(t, err)
	require.NoError(t, m.Advance())

	require.True(t, m.Decided())
	require.Equal(t, 0, m.ChampionIndex())
	winner, ok := m.Winner()
	require.True(t, ok)
	require.Equal(t, models.SideA, winner)
}

func TestStreakChallengerTakesOver(t *testing.T) {
	m := NewStreak(4)

	_, err := m.Apply(models.SideB, 2)
	require.NoError(t, err)
	require.NoError(t, m.Advance())

	// Entry 1 is now the champion with a streak of one; entry 2 steps in.
	require.Equal(t, 1, m.ChampionIndex())
	require.Equal(t, 2, m.ChallengerIndex())
	require.Equal(t, 1, m.Streak())
	require.False(t, m.Decided())
}

func TestStreakRoundLockAndLadderExhaustion(t *testing.T) {
	m := NewStreak(2)

	_, err := m.Apply(models.SideB, 3)
	require.NoError(t, err)
	_, err = m.Apply(models.SideA, 3)
	require.ErrorIs(t, err, ErrRoundLocked)
	require.NoError(t, m.Advance())

	// Both entries have played and nobody holds three wins.
	require.Equal(t, 1, m.ChampionIndex())
	require.Equal(t, 2, m.ChallengerIndex())
	_, err = m.Apply(models.SideA, 1)
	require.ErrorIs(t, err, ErrNoChallenger)
}

func TestStreakResetKeepsLadder(t *testing.T) {
	m := NewStreak(4)
	_, err := m.Apply(models.SideA, 2)
	require.NoError(t, err)
	require.NoError(t, m.Advance())

	_, err = m.Apply(models.SideB, 2)
	require.NoError(t, err)
	m.Reset()

	// The pending round is discarded but the streak and positions stand.
	require.Equal(t, 1, m.Streak())
	require.Equal(t, 0, m.ChampionIndex())
	require.Equal(t, 2, m.ChallengerIndex())
	_, err = m.Apply(models.SideA, 1)
	require.NoError(t, err)
}

func TestRelaySubMatchRotation(t *testing.T) {
	m := NewRelay()

	out, err := m.Apply(models.SideA, 1)
	require.NoError(t, err)
	require.False(t, out.SubBattleEnded)
	require.Equal(t, 1, m.Score(models.SideA))

	out, err = m.Apply(models.SideA, 1)
	require.NoError(t, err)
	require.True(t, out.SubBattleEnded)
	require.Equal(t, models.SideA, out.SubBattleWinner)
	require.False(t, out.Decided)
	require.True(t, out.NewMatchRecord)

	// Side B burned a player; scores reset for the next sub-match.
	require.Equal(t, 1, m.Losses(models.SideB))
	require.Equal(t, 1, m.BeyIndex(models.SideB))
	require.Equal(t, 0, m.BeyIndex(models.SideA))
	require.Equal(t, 0, m.Score(models.SideA))
	require.Equal(t, 0, m.Score(models.SideB))
}

func TestRelayDecidesAtThreeLosses(t *testing.T) {
	m := NewRelay()

	for i := 0; i < 2; i++ {
		out, err := m.Apply(models.SideB, 2)
		require.NoError(t, err)
		require.True(t, out.SubBattleEnded)
		require.False(t, out.Decided)
		require.True(t, out.NewMatchRecord)
	}
	require.Equal(t, 2, m.Losses(models.SideA))
	require.Equal(t, 2, m.BeyIndex(models.SideA))

	out, err := m.Apply(models.SideB, 2)
	require.NoError(t, err)
	require.True(t, out.Decided)
	require.False(t, out.NewMatchRecord)

	winner, ok := m.Winner()
	require.True(t, ok)
	require.Equal(t, models.SideB, winner)
	_, err = m.Apply(models.SideA, 1)
	require.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestRelayResetKeepsLosses(t *testing.T) {
	m := NewRelay()
	_, err := m.Apply(models.SideA, 2)
	require.NoError(t, err)
	_, err = m.Apply(models.SideB, 1)
	require.NoError(t, err)

	m.Reset()
	require.Equal(t, 0, m.Score(models.SideB))
	require.Equal(t, 1, m.Losses(models.SideB))
	require.Equal(t, 1, m.BeyIndex(models.SideB))
}
