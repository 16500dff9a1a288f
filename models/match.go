package models

import "time"

// Match is a persisted record created lazily the first time a point is
// recorded for a bracket slot pairing (or for a streak/team sub-battle).
type Match struct {
	ID        int       `json:"id"`
	EventID   int       `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchLoadout binds one match side to an entry and its declared beys.
// Created together with the match, once per side.
type MatchLoadout struct {
	ID      int         `json:"id"`
	MatchID int         `json:"match_id"`
	EntryID int         `json:"entry_id"`
	Side    Side        `json:"side"`
	UserIDs []int       `json:"user_ids,omitempty"`
	Beys    []BeyConfig `json:"beys"`
}

// MatchPoint is one immutable scoring event. The running score of a match
// is always derivable as the sum over its points, never a stored counter.
type MatchPoint struct {
	ID         int        `json:"id"`
	MatchID    int        `json:"match_id"`
	WinnerSide Side       `json:"winner_side"`
	FinishType FinishType `json:"finish_type"`
	Points     int        `json:"points"`
	CreatedAt  time.Time  `json:"created_at"`
}

// WinnerRecord maps a decided bracket slot to its winning side. This is
// the only persisted bracket state; rounds are derived from it on every
// read. Re-assignable per key so a past result can be corrected.
type WinnerRecord struct {
	EventID   int       `json:"event_id"`
	SlotKey   string    `json:"slot_key"`
	Winner    Side      `json:"winner"`
	DecidedAt time.Time `json:"decided_at"`
}
