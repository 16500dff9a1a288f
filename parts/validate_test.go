package parts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kuniyuki/beybattle-server/models"
)

func uxbxBey(blade, ratchet, bit string) models.BeyConfig {
	return models.BeyConfig{Line: models.LineUXBX, Blade: blade, Ratchet: ratchet, Bit: bit}
}

func cxBey(lock, main, assist, ratchet, bit string) models.BeyConfig {
	return models.BeyConfig{
		Line: models.LineCX, LockChip: lock, MainBlade: main, AssistBlade: assist,
		Ratchet: ratchet, Bit: bit,
	}
}

func TestRequiredBeys(t *testing.T) {
	require.Equal(t, 1, RequiredBeys(models.BattleOneBey))
	require.Equal(t, 1, RequiredBeys(models.BattleStreak))
	require.Equal(t, 1, RequiredBeys(models.BattleTeam))
	require.Equal(t, 3, RequiredBeys(models.BattleThreeOnThree))
}

func TestValidateSideSingleFormats(t *testing.T) {
	err := ValidateSide(models.BattleOneBey, []models.BeyConfig{uxbxBey("dransword", "3-60", "F")})
	require.NoError(t, err)

	err = ValidateSide(models.BattleOneBey, nil)
	require.ErrorIs(t, err, ErrWrongBeyCount)

	err = ValidateSide(models.BattleOneBey, []models.BeyConfig{
		uxbxBey("dransword", "3-60", "F"),
		uxbxBey("wizardrod", "5-70", "B"),
	})
	require.ErrorIs(t, err, ErrWrongBeyCount)

	err = ValidateSide(models.BattleOneBey, []models.BeyConfig{uxbxBey("dransword", "", "F")})
	require.ErrorIs(t, err, ErrIncompleteBey)
}

func TestValidateSideTripleDuplicates(t *testing.T) {
	base := []models.BeyConfig{
		uxbxBey("dransword", "3-60", "F"),
		uxbxBey("wizardrod", "5-70", "B"),
		uxbxBey("sharkscale", "4-60", "LF"),
	}
	require.NoError(t, ValidateSide(models.BattleThreeOnThree, base))

	tests := []struct {
		name string
		beys []models.BeyConfig
		want error
	}{
		{
			name: "repeated blade",
			beys: []models.BeyConfig{base[0], uxbxBey("dransword", "5-70", "B"), base[2]},
			want: ErrDuplicateBlade,
		},
		{
			name: "repeated ratchet",
			beys: []models.BeyConfig{base[0], uxbxBey("wizardrod", "3-60", "B"), base[2]},
			want: ErrDuplicateRatchet,
		},
		{
			name: "repeated bit",
			beys: []models.BeyConfig{base[0], uxbxBey("wizardrod", "5-70", "F"), base[2]},
			want: ErrDuplicateBit,
		},
		{
			name: "cx sharing a main blade",
			beys: []models.BeyConfig{
				cxBey("dran", "brave", "J", "3-60", "F"),
				cxBey("wizard", "brave", "A", "5-70", "B"),
				base[2],
			},
			want: ErrDuplicateBlade,
		},
		{
			name: "cx sharing an assist blade",
			beys: []models.BeyConfig{
				cxBey("dran", "brave", "J", "3-60", "F"),
				cxBey("wizard", "arc", "J", "5-70", "B"),
				base[2],
			},
			want: ErrDuplicateBlade,
		},
		{
			name: "cx main blade matching a uxbx blade",
			beys: []models.BeyConfig{
				cxBey("dran", "brave", "J", "3-60", "F"),
				uxbxBey("brave", "5-70", "B"),
				base[2],
			},
			want: ErrDuplicateBlade,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, ValidateSide(models.BattleThreeOnThree, tc.beys), tc.want)
		})
	}

	// A repeated lock chip is legal on its own; only the blade halves,
	// ratchets and bits are counted as the duplicate pool.
	sharedChip := []models.BeyConfig{
		cxBey("dran", "brave", "J", "3-60", "F"),
		cxBey("dran", "arc", "A", "5-70", "B"),
		base[2],
	}
	require.NoError(t, ValidateSide(models.BattleThreeOnThree, sharedChip))
}

func TestValidateSideRestrictedLockChips(t *testing.T) {
	// The same restricted chip twice is out.
	repeated := []models.BeyConfig{
		cxBey("valkyrie", "brave", "J", "3-60", "F"),
		cxBey("valkyrie", "arc", "A", "5-70", "B"),
		uxbxBey("dransword", "4-60", "LF"),
	}
	require.ErrorIs(t, ValidateSide(models.BattleThreeOnThree, repeated), ErrRestrictedLockChip)

	// Two different restricted chips are each under their limit.
	distinct := []models.BeyConfig{
		cxBey("valkyrie", "brave", "J", "3-60", "F"),
		cxBey("emperor", "arc", "A", "5-70", "B"),
		uxbxBey("dransword", "4-60", "LF"),
	}
	require.NoError(t, ValidateSide(models.BattleThreeOnThree, distinct))

	one := []models.BeyConfig{cxBey("valkyrie", "brave", "J", "3-60", "F")}
	require.NoError(t, ValidateSide(models.BattleOneBey, one))
}

func TestValidateAllowed(t *testing.T) {
	allowed := AllowedFromTeamParts([]models.TeamPart{
		{PartKind: models.PartBlade, PartCode: "dransword"},
		{PartKind: models.PartRatchet, PartCode: "3-60"},
		{PartKind: models.PartBit, PartCode: "F"},
	})

	require.NoError(t, ValidateAllowed([]models.BeyConfig{uxbxBey("dransword", "3-60", "F")}, allowed))

	err := ValidateAllowed([]models.BeyConfig{uxbxBey("wizardrod", "3-60", "F")}, allowed)
	require.ErrorIs(t, err, ErrPartNotOwned)

	err = ValidateAllowed([]models.BeyConfig{uxbxBey("dransword", "5-70", "F")}, allowed)
	require.ErrorIs(t, err, ErrPartNotOwned)

	// A nil inventory allows everything.
	require.NoError(t, ValidateAllowed([]models.BeyConfig{uxbxBey("wizardrod", "5-70", "B")}, nil))

	// CX parts check against their own kinds; none are registered here, so
	// those kinds stay unrestricted.
	require.NoError(t, ValidateAllowed([]models.BeyConfig{cxBey("dran", "brave", "J", "3-60", "F")}, allowed))
}
