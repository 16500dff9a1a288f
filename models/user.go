package models

import "time"

// User is a registered player. Players have no credentials; the single
// operator account is configured out of band.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	TeamID    *int      `json:"team_id,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
