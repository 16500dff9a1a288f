package parts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kuniyuki/beybattle-server/models"
)

func TestParseQuick(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.BeyConfig
	}{
		{
			name: "uxbx full combination",
			text: "シャークスケイル3-80LF",
			want: models.BeyConfig{Line: models.LineUXBX, Blade: "sharkscale", Ratchet: "3-80", Bit: "LF"},
		},
		{
			name: "spaces around the ratchet",
			text: "ウィザードロッド 9-60 B",
			want: models.BeyConfig{Line: models.LineUXBX, Blade: "wizardrod", Ratchet: "9-60", Bit: "B"},
		},
		{
			name: "cx with assist blade letter",
			text: "ドランブレイブJ 4-60R",
			want: models.BeyConfig{Line: models.LineCX, LockChip: "dran", MainBlade: "brave", AssistBlade: "J", Ratchet: "4-60", Bit: "R"},
		},
		{
			name: "cx parts spelled in latin",
			text: "wizard arc A 5-70 HT",
			want: models.BeyConfig{Line: models.LineCX, LockChip: "wizard", MainBlade: "arc", AssistBlade: "A", Ratchet: "5-70", Bit: "HT"},
		},
		{
			name: "metal ratchet",
			text: "フェニックスウイング M-85 GF",
			want: models.BeyConfig{Line: models.LineUXBX, Blade: "phoenixwing", Ratchet: "M-85", Bit: "GF"},
		},
		{
			name: "unknown blade keeps ratchet and bit",
			text: "ペガサスストーム 3-85 N",
			want: models.BeyConfig{Line: models.LineUXBX, Ratchet: "3-85", Bit: "N"},
		},
		{
			name: "unknown bit stays empty",
			text: "ドランソード1-60XX",
			want: models.BeyConfig{Line: models.LineUXBX, Blade: "dransword", Ratchet: "1-60"},
		},
		{
			name: "ratchet only",
			text: "7-60",
			want: models.BeyConfig{Line: models.LineUXBX, Ratchet: "7-60"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseQuick(tc.text, nil)
			require.True(t, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseQuickNoMatch(t *testing.T) {
	for _, text := range []string{"", "   ", "ドランソード", "just words"} {
		_, ok := ParseQuick(text, nil)
		require.False(t, ok, "text %q", text)
	}
}

func TestParseQuickBitCaseInsensitive(t *testing.T) {
	got, ok := ParseQuick("シャークエッジ3-60lf", nil)
	require.True(t, ok)
	require.Equal(t, "LF", got.Bit)
}

func TestParseQuickRespectsInventory(t *testing.T) {
	allowed := AllowedFromTeamParts([]models.TeamPart{
		{PartKind: models.PartRatchet, PartCode: "4-60"},
		{PartKind: models.PartBit, PartCode: "F"},
	})

	// The ratchet in the text is not owned, so nothing anchors the parse.
	_, ok := ParseQuick("ドランソード3-80F", allowed)
	require.False(t, ok)

	got, ok := ParseQuick("ドランソード4-60F", allowed)
	require.True(t, ok)
	require.Equal(t, "4-60", got.Ratchet)
	require.Equal(t, "F", got.Bit)
	// Blade kind carries no inventory entries here, so the catalog applies.
	require.Equal(t, "dransword", got.Blade)
}

func TestFormatBey(t *testing.T) {
	tests := []struct {
		name string
		bey  models.BeyConfig
		want string
	}{
		{
			name: "uxbx",
			bey:  models.BeyConfig{Line: models.LineUXBX, Blade: "dransword", Ratchet: "3-60", Bit: "F"},
			want: "ドランソード3-60F",
		},
		{
			name: "cx",
			bey:  models.BeyConfig{Line: models.LineCX, LockChip: "dran", MainBlade: "brave", AssistBlade: "J", Ratchet: "4-60", Bit: "R"},
			want: "ドランブレイブJ4-60R",
		},
		{
			name: "incomplete renders empty",
			bey:  models.BeyConfig{Line: models.LineUXBX, Blade: "dransword"},
			want: "",
		},
		{
			name: "cx missing assist renders empty",
			bey:  models.BeyConfig{Line: models.LineCX, LockChip: "dran", MainBlade: "brave", Ratchet: "4-60", Bit: "R"},
			want: "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, FormatBey(tc.bey))
		})
	}
}

func TestCatalogLookups(t *testing.T) {
	p, ok := Find(models.PartBlade, "wizardrod")
	require.True(t, ok)
	require.Equal(t, "ウィザードロッド", p.Name)

	_, ok = Find(models.PartBlade, "spinzaur")
	require.False(t, ok)

	require.Equal(t, "フラット", Name(models.PartBit, "F"))
	// Unknown codes fall back to the code itself.
	require.Equal(t, "??", Name(models.PartBit, "??"))

	sorted := RatchetsByCode()
	require.Len(t, sorted, len(Ratchets))
	require.Equal(t, "0-60", sorted[0].Code)
}
