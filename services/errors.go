package services

import "errors"

// Shared sentinels mapped to HTTP status codes in the handlers package.
var (
	ErrNotFound         = errors.New("requested resource not found")
	ErrValidationFailed = errors.New("validation failed")

	ErrEventNotFound = errors.New("event not found")
	ErrEntryNotFound = errors.New("entry not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrTeamNotFound  = errors.New("team not found")

	ErrEventNameRequired   = errors.New("event name is required")
	ErrEventNameConflict   = errors.New("event name already exists")
	ErrEventArchived       = errors.New("event is archived")
	ErrEventNotCompletable = errors.New("event has no resolved champion yet")
	ErrInvalidBattleType   = errors.New("invalid battle type")
	ErrInvalidSideRule     = errors.New("invalid side rule")
	ErrInvalidSide         = errors.New("invalid side")
	ErrInvalidFinishType   = errors.New("invalid finish type")

	ErrEntryUsersRequired = errors.New("entry needs at least one user")
	ErrEntryTooManyUsers  = errors.New("entry exceeds the team size")
	ErrEntryUserInactive  = errors.New("entry references an inactive user")
	ErrTooFewEntries      = errors.New("event needs at least two entries")

	ErrTeamNameRequired = errors.New("team name is required")
	ErrTeamNameConflict = errors.New("team name already exists")
	ErrUserNameRequired = errors.New("user name is required")
	ErrInvalidPartKind  = errors.New("invalid part kind")

	ErrNoCurrentMatch  = errors.New("no current match to score")
	ErrMatchNotStarted = errors.New("match has not been started")

	ErrAuthInvalidCredentials = errors.New("invalid operator credentials")
)
