package models

import "time"

// BattleType selects the win-condition rules for an event.
type BattleType string

const (
	BattleStreak       BattleType = "streak"
	BattleOneBey       BattleType = "one-bey"
	BattleThreeOnThree BattleType = "three-on-three"
	BattleTeam         BattleType = "team"
)

func (t BattleType) Valid() bool {
	switch t {
	case BattleStreak, BattleOneBey, BattleThreeOnThree, BattleTeam:
		return true
	}
	return false
}

// UsesTriple reports whether each side declares three beys.
func (t BattleType) UsesTriple() bool {
	return t == BattleThreeOnThree || t == BattleTeam
}

// UsesBracket reports whether the event runs an elimination bracket.
// Streak events walk the entry list as a championship ladder instead.
func (t BattleType) UsesBracket() bool {
	return t != BattleStreak
}

// EventStatus is the event lifecycle. Archived is terminal.
type EventStatus string

const (
	EventActive    EventStatus = "active"
	EventCompleted EventStatus = "completed"
	EventArchived  EventStatus = "archived"
)

// NormalizeEventStatus coerces unknown stored values to active.
func NormalizeEventStatus(v string) EventStatus {
	switch EventStatus(v) {
	case EventArchived:
		return EventArchived
	case EventCompleted:
		return EventCompleted
	}
	return EventActive
}

// StadiumType is the stadium the event is played in.
type StadiumType string

const (
	StadiumExtreme       StadiumType = "EXTREME"
	StadiumDoubleExtreme StadiumType = "DOUBLE_EXTREME"
	StadiumWideExtreme   StadiumType = "WIDE_EXTREME"
	StadiumInfinity      StadiumType = "INFINITY"
)

// legacyStadiums maps labels written by older clients to the current keys.
var legacyStadiums = map[string]StadiumType{
	"エクストリームスタジアム":    StadiumExtreme,
	"ダブルエクストリームスタジアム": StadiumDoubleExtreme,
	"ワイドエクストリームスタジアム": StadiumWideExtreme,
	"インフィニティスタジアム":    StadiumInfinity,
	"エクストリーム":         StadiumExtreme,
	"ワイド":             StadiumWideExtreme,
	"スタンダード":          StadiumExtreme,
	"extreme":         StadiumExtreme,
	"wide":            StadiumWideExtreme,
	"standard":        StadiumExtreme,
}

// NormalizeStadium accepts current keys and legacy labels, defaulting to
// the extreme stadium.
func NormalizeStadium(v string) StadiumType {
	switch StadiumType(v) {
	case StadiumExtreme, StadiumDoubleExtreme, StadiumWideExtreme, StadiumInfinity:
		return StadiumType(v)
	}
	if s, ok := legacyStadiums[v]; ok {
		return s
	}
	return StadiumExtreme
}

// SideRule controls how entries are assigned to the A and B launch sides.
type SideRule string

const (
	SideRuleFixed  SideRule = "fixed"
	SideRuleRandom SideRule = "random"
)

func (r SideRule) Valid() bool {
	return r == SideRuleFixed || r == SideRuleRandom
}

// Side labels one of the two launch positions of a match.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

func (s Side) Valid() bool {
	return s == SideA || s == SideB
}

func (s Side) Opposite() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// FinishType is the category of one scoring exchange.
type FinishType string

const (
	FinishSpin    FinishType = "spin"
	FinishOver    FinishType = "over"
	FinishBurst   FinishType = "burst"
	FinishExtreme FinishType = "extreme"
)

// NormalizeFinish maps legacy categories onto the current four: ko is the
// old name for extreme, ringout for over. Unknown values come back as-is
// so callers can reject them.
func NormalizeFinish(v string) FinishType {
	switch v {
	case "ko":
		return FinishExtreme
	case "ringout":
		return FinishOver
	}
	return FinishType(v)
}

func (f FinishType) Valid() bool {
	switch f {
	case FinishSpin, FinishOver, FinishBurst, FinishExtreme:
		return true
	}
	return false
}

// Points is the fixed value of the finish category.
func (f FinishType) Points() int {
	switch f {
	case FinishSpin:
		return 1
	case FinishOver, FinishBurst:
		return 2
	case FinishExtreme:
		return 3
	}
	return 0
}

// Event is one tournament event.
type Event struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Stadium       StadiumType `json:"stadium"`
	SideRule      SideRule    `json:"side_rule"`
	BattleType    BattleType  `json:"battle_type"`
	Status        EventStatus `json:"status"`
	ScheduledDate *time.Time  `json:"scheduled_date,omitempty"`
	WinnerName    *string     `json:"winner_name,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}
