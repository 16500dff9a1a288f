package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeFinish(t *testing.T) {
	tests := []struct {
		in     string
		want   FinishType
		points int
	}{
		{"spin", FinishSpin, 1},
		{"over", FinishOver, 2},
		{"burst", FinishBurst, 2},
		{"extreme", FinishExtreme, 3},
		{"ko", FinishExtreme, 3},
		{"ringout", FinishOver, 2},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got := NormalizeFinish(tc.in)
			require.Equal(t, tc.want, got)
			require.True(t, got.Valid())
			require.Equal(t, tc.points, got.Points())
		})
	}

	require.False(t, NormalizeFinish("mega").Valid())
}

func TestNormalizeStadium(t *testing.T) {
	tests := []struct {
		in   string
		want StadiumType
	}{
		{"EXTREME", StadiumExtreme},
		{"エクストリームスタジアム", StadiumExtreme},
		{"ダブルエクストリームスタジアム", StadiumDoubleExtreme},
		{"ワイドエクストリームスタジアム", StadiumWideExtreme},
		{"インフィニティスタジアム", StadiumInfinity},
		{"ワイド", StadiumWideExtreme},
		{"standard", StadiumExtreme},
		{"", StadiumExtreme},
		{"anything else", StadiumExtreme},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, NormalizeStadium(tc.in), "input %q", tc.in)
	}
}

func TestSideOpposite(t *testing.T) {
	require.Equal(t, SideB, SideA.Opposite())
	require.Equal(t, SideA, SideB.Opposite())
	require.True(t, SideA.Valid())
	require.False(t, Side("C").Valid())
}

func TestBeyConfigComplete(t *testing.T) {
	require.True(t, BeyConfig{Line: LineUXBX, Blade: "dransword", Ratchet: "3-60", Bit: "F"}.Complete())
	require.False(t, BeyConfig{Line: LineUXBX, Blade: "dransword", Ratchet: "3-60"}.Complete())

	cx := BeyConfig{Line: LineCX, LockChip: "dran", MainBlade: "brave", AssistBlade: "J", Ratchet: "4-60", Bit: "R"}
	require.True(t, cx.Complete())
	cx.AssistBlade = ""
	require.False(t, cx.Complete())
}

func TestBattleTypeShape(t *testing.T) {
	require.True(t, BattleThreeOnThree.UsesTriple())
	require.True(t, BattleTeam.UsesTriple())
	require.False(t, BattleOneBey.UsesTriple())

	require.False(t, BattleStreak.UsesBracket())
	require.True(t, BattleOneBey.UsesBracket())
	require.False(t, BattleType("royale").Valid())
}
