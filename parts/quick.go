package parts

import (
	"strings"
	"unicode"

	"github.com/kuniyuki/beybattle-server/models"
)

// Allowed restricts parsing and validation to a team inventory. A nil map
// (or nil set for a kind) means the whole catalog is allowed.
type Allowed map[models.PartKind]map[string]bool

// AllowedFromTeamParts collects the owned part codes per kind.
func AllowedFromTeamParts(teamParts []models.TeamPart) Allowed {
	allowed := Allowed{}
	for _, tp := range teamParts {
		set := allowed[tp.PartKind]
		if set == nil {
			set = map[string]bool{}
			allowed[tp.PartKind] = set
		}
		set[tp.PartCode] = true
	}
	return allowed
}

func (a Allowed) permits(kind models.PartKind, code string) bool {
	if a == nil {
		return true
	}
	set, ok := a[kind]
	if !ok || set == nil {
		return true
	}
	return set[code]
}

func (a Allowed) filter(kind models.PartKind, table []Part) []Part {
	out := make([]Part, 0, len(table))
	for _, p := range table {
		if a.permits(kind, p.Code) {
			out = append(out, p)
		}
	}
	return out
}

func normalizeCode(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func hasLatin(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

// ParseQuick recognizes a free-text combination like "シャークスケイル3-80LF"
// or "ドランブレイブJ 4-60R" and fills whatever parts it can identify. The
// anchor is the ratchet code: the longest allowed code contained in the
// text splits it into a blade half and a bit half. Latin letters in the
// blade half select the CX line. Unrecognized slots stay empty so the
// operator can finish by hand; ok is false when nothing matched at all.
func ParseQuick(text string, allowed Allowed) (cfg models.BeyConfig, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.BeyConfig{}, false
	}

	var ratchet Part
	at := -1
	for _, r := range allowed.filter(models.PartRatchet, Ratchets) {
		i := strings.Index(text, r.Code)
		if i < 0 {
			continue
		}
		if len(r.Code) > len(ratchet.Code) || at < 0 {
			ratchet, at = r, i
		}
	}
	if at < 0 {
		return models.BeyConfig{}, false
	}
	cfg.Ratchet = ratchet.Code
	ok = true

	bladeText := strings.TrimSpace(text[:at])
	bitText := normalizeCode(text[at+len(ratchet.Code):])
	if bitText != "" {
		for _, b := range allowed.filter(models.PartBit, Bits) {
			if strings.ToLower(b.Code) == bitText {
				cfg.Bit = b.Code
				break
			}
		}
	}

	if bladeText == "" {
		cfg.Line = models.LineUXBX
		return cfg, ok
	}

	if hasLatin(bladeText) {
		cfg.Line = models.LineCX
		lowered := strings.ToLower(bladeText)
		for _, lc := range allowed.filter(models.PartCxLockChip, CxLockChips) {
			if strings.Contains(lowered, lc.Code) || strings.Contains(bladeText, lc.Name) {
				cfg.LockChip = lc.Code
				break
			}
		}
		for _, mb := range allowed.filter(models.PartCxMainBlade, CxMainBlades) {
			if strings.Contains(lowered, mb.Code) || strings.Contains(bladeText, mb.Name) {
				cfg.MainBlade = mb.Code
				break
			}
		}
		// Assist blades are single uppercase letters; take the last one so
		// the lock chip or main blade spelled in Latin does not shadow it.
		for i := len(bladeText) - 1; i >= 0; i-- {
			c := bladeText[i]
			if c < 'A' || c > 'Z' {
				continue
			}
			code := string(c)
			if _, found := Find(models.PartCxAssist, code); found && allowed.permits(models.PartCxAssist, code) {
				cfg.AssistBlade = code
			}
			break
		}
		return cfg, ok
	}

	cfg.Line = models.LineUXBX
	for _, bl := range allowed.filter(models.PartBlade, Blades) {
		if strings.Contains(bladeText, bl.Name) {
			cfg.Blade = bl.Code
			break
		}
	}
	return cfg, ok
}

// FormatBey renders a combination the way it is read aloud: part names for
// the blade half, codes for ratchet, bit and assist blade. Incomplete
// combinations render empty.
func FormatBey(b models.BeyConfig) string {
	if !b.Complete() {
		return ""
	}
	if b.Line == models.LineCX {
		return Name(models.PartCxLockChip, b.LockChip) +
			Name(models.PartCxMainBlade, b.MainBlade) +
			b.AssistBlade + b.Ratchet + b.Bit
	}
	return Name(models.PartBlade, b.Blade) + b.Ratchet + b.Bit
}
