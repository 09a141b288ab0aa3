package models

import "time"

type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLoss Outcome = "LOSS"
	OutcomeDraw Outcome = "DRAW"
	OutcomeTBD  Outcome = "TBD"
)

// MatchResult stores one side's result for a match. Exactly one of ClubID or
// ParticipantID is set, matching the competition's participant type. A match
// with results recorded for both of its sides is considered complete.
type MatchResult struct {
	ID            int       `json:"id" db:"id"`
	MatchID       int       `json:"match_id" db:"match_id"`
	ClubID        *int      `json:"club_id,omitempty" db:"club_id"`
	ParticipantID *int      `json:"participant_id,omitempty" db:"participant_id"`
	Outcome       Outcome   `json:"outcome" db:"outcome"`
	Score         *int      `json:"score,omitempty" db:"score"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
