package models

import "time"

// Team is a named group of users owning a shared part inventory.
type Team struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// PartKind matches the ENUM in the team_parts table.
type PartKind string

const (
	PartBlade       PartKind = "blade"
	PartRatchet     PartKind = "ratchet"
	PartBit         PartKind = "bit"
	PartCxLockChip  PartKind = "cx_lock_chip"
	PartCxMainBlade PartKind = "cx_main_blade"
	PartCxAssist    PartKind = "cx_assist_blade"
)

func (k PartKind) Valid() bool {
	switch k {
	case PartBlade, PartRatchet, PartBit, PartCxLockChip, PartCxMainBlade, PartCxAssist:
		return true
	}
	return false
}

// TeamPart is one part the team declares to own. Entries flagged
// use_team_parts may only select codes present in their members' teams.
type TeamPart struct {
	ID        int       `json:"id"`
	TeamID    int       `json:"team_id"`
	PartKind  PartKind  `json:"part_kind"`
	PartCode  string    `json:"part_code"`
	CreatedAt time.Time `json:"created_at"`
}
