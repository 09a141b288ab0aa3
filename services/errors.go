package services

import "errors"

var (
	// Scheduling lifecycle.
	ErrScheduleNotDraft   = errors.New("competition schedule has no draft matches")
	ErrSeedingInvalid     = errors.New("seeding order does not match the enrolled roster")
	ErrCompetitionStarted = errors.New("competition already has completed matches")

	// Result entry and advancement.
	ErrMatchSlotsIncomplete = errors.New("match does not have both slots filled")
	ErrMatchAlreadyDecided  = errors.New("match already has a recorded result")
	ErrEliminationDraw      = errors.New("elimination match cannot end in a draw")

	// Standings.
	ErrStandingsClubsOnly = errors.New("standings are only maintained for club competitions")

	// Auth.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
