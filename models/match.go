package models

import "time"

type MatchStatus string

const (
	MatchStatusDraft      MatchStatus = "DRAFT"
	MatchStatusScheduled  MatchStatus = "SCHEDULED"
	MatchStatusInProgress MatchStatus = "IN_PROGRESS"
	MatchStatusCompleted  MatchStatus = "COMPLETED"
	MatchStatusPostponed  MatchStatus = "POSTPONED"
)

// BracketType distinguishes winner and loser brackets in double elimination.
type BracketType string

const (
	BracketWinner BracketType = "WINNER"
	BracketLoser  BracketType = "LOSER"
)

// Match belongs to exactly one competition. Entity slots are nullable: a nil
// slot means TBD (to be filled by winner advancement) or a bye position.
// Which pair of slots is in play depends on the competition's participant type.
type Match struct {
	ID                  int          `json:"id" db:"id"`
	CompetitionID       int          `json:"competition_id" db:"competition_id"`
	HomeClubID          *int         `json:"home_club_id,omitempty" db:"home_club_id"`
	AwayClubID          *int         `json:"away_club_id,omitempty" db:"away_club_id"`
	HomeParticipantID   *int         `json:"home_participant_id,omitempty" db:"home_participant_id"`
	AwayParticipantID   *int         `json:"away_participant_id,omitempty" db:"away_participant_id"`
	ScheduledTime       *time.Time   `json:"scheduled_time,omitempty" db:"scheduled_time"`
	Status              MatchStatus  `json:"status" db:"status"`
	RoundNumber         *int         `json:"round_number,omitempty" db:"round_number"`
	GroupNumber         *int         `json:"group_number,omitempty" db:"group_number"`
	BracketType         *BracketType `json:"bracket_type,omitempty" db:"bracket_type"`
	WinnerClubID        *int         `json:"winner_club_id,omitempty" db:"winner_club_id"`
	WinnerParticipantID *int         `json:"winner_participant_id,omitempty" db:"winner_participant_id"`
	CreatedAt           time.Time    `json:"created_at" db:"created_at"`
}

// HomeEntityID returns the home slot for the given participant mode.
func (m *Match) HomeEntityID(pt ParticipantType) *int {
	if pt == ParticipantTypeParticipants {
		return m.HomeParticipantID
	}
	return m.HomeClubID
}

// AwayEntityID returns the away slot for the given participant mode.
func (m *Match) AwayEntityID(pt ParticipantType) *int {
	if pt == ParticipantTypeParticipants {
		return m.AwayParticipantID
	}
	return m.AwayClubID
}
