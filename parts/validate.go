package parts

import (
	"errors"
	"fmt"

	"github.com/kuniyuki/beybattle-server/models"
)

var (
	ErrIncompleteBey      = errors.New("bey parts are not fully selected")
	ErrWrongBeyCount      = errors.New("wrong number of beys for battle format")
	ErrDuplicateBlade     = errors.New("blade used more than once")
	ErrDuplicateRatchet   = errors.New("ratchet used more than once")
	ErrDuplicateBit       = errors.New("bit used more than once")
	ErrRestrictedLockChip = errors.New("restricted lock chip used more than once")
	ErrPartNotOwned       = errors.New("part is not in the team inventory")
)

// restrictedLockChips may appear at most once per side; other lock chips
// may repeat across a triple lineup.
var restrictedLockChips = map[string]bool{
	"valkyrie": true,
	"emperor":  true,
}

// RequiredBeys returns how many declared combinations a side needs for
// the battle format.
func RequiredBeys(t models.BattleType) int {
	if t.UsesTriple() {
		return 3
	}
	return 1
}

// ValidateSide checks a side's declared loadout for the format: the right
// number of combinations, each complete, and for triple formats no blade
// part, ratchet, or bit used twice. Blade parts share one pool across
// lines, so a CX main or assist blade also collides with a UX/BX blade of
// the same code. Lock chips may repeat unless restricted.
func ValidateSide(t models.BattleType, beys []models.BeyConfig) error {
	need := RequiredBeys(t)
	if len(beys) != need {
		return fmt.Errorf("%w: need %d, got %d", ErrWrongBeyCount, need, len(beys))
	}
	for i, b := range beys {
		if !b.Complete() {
			return fmt.Errorf("%w: bey %d", ErrIncompleteBey, i+1)
		}
	}

	if !t.UsesTriple() {
		return nil
	}

	bladeParts := make(map[string]bool)
	ratchets := make(map[string]bool)
	bits := make(map[string]bool)
	lockChipUses := make(map[string]int)
	useBlade := func(i int, code, label string) error {
		if bladeParts[code] {
			return fmt.Errorf("%w: bey %d %s", ErrDuplicateBlade, i+1, label)
		}
		bladeParts[code] = true
		return nil
	}
	for i, b := range beys {
		if b.Line == models.LineCX {
			lockChipUses[b.LockChip]++
			if restrictedLockChips[b.LockChip] && lockChipUses[b.LockChip] > 1 {
				return fmt.Errorf("%w: %s", ErrRestrictedLockChip, b.LockChip)
			}
			if err := useBlade(i, b.MainBlade, "main blade"); err != nil {
				return err
			}
			if err := useBlade(i, b.AssistBlade, "assist blade"); err != nil {
				return err
			}
		} else {
			if err := useBlade(i, b.Blade, "blade"); err != nil {
				return err
			}
		}
		if ratchets[b.Ratchet] {
			return fmt.Errorf("%w: bey %d", ErrDuplicateRatchet, i+1)
		}
		ratchets[b.Ratchet] = true
		if bits[b.Bit] {
			return fmt.Errorf("%w: bey %d", ErrDuplicateBit, i+1)
		}
		bits[b.Bit] = true
	}
	return nil
}

// ValidateAllowed checks every selected part against a team inventory.
func ValidateAllowed(beys []models.BeyConfig, allowed Allowed) error {
	check := func(kind models.PartKind, code string) error {
		if code == "" || allowed.permits(kind, code) {
			return nil
		}
		return fmt.Errorf("%w: %s %s", ErrPartNotOwned, kind, code)
	}
	for _, b := range beys {
		var err error
		if b.Line == models.LineCX {
			if err = check(models.PartCxLockChip, b.LockChip); err == nil {
				if err = check(models.PartCxMainBlade, b.MainBlade); err == nil {
					err = check(models.PartCxAssist, b.AssistBlade)
				}
			}
		} else {
			err = check(models.PartBlade, b.Blade)
		}
		if err != nil {
			return err
		}
		if err = check(models.PartRatchet, b.Ratchet); err != nil {
			return err
		}
		if err = check(models.PartBit, b.Bit); err != nil {
			return err
		}
	}
	return nil
}
