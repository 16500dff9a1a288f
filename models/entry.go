package models

import "time"

// EventEntry is one bracket participant: a single player for individual
// formats, or up to three players for the team relay format. Entries
// flagged UseTeamParts may only declare parts owned by their team.
type EventEntry struct {
	ID           int       `json:"id"`
	EventID      int       `json:"event_id"`
	UserIDs      []int     `json:"user_ids"`
	UseTeamParts bool      `json:"use_team_parts"`
	TeamName     *string   `json:"team_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
