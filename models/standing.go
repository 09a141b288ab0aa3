package models

import "time"

// Standing is the recomputed win/draw/loss aggregate for one club in one
// competition. It is rebuilt from completed matches, never maintained
// incrementally. Club competitions only.
type Standing struct {
	ID            int       `json:"id" db:"id"`
	CompetitionID int       `json:"competition_id" db:"competition_id"`
	ClubID        int       `json:"club_id" db:"club_id"`
	Points        int       `json:"points" db:"points"`
	Played        int       `json:"played" db:"played"`
	Wins          int       `json:"wins" db:"wins"`
	Draws         int       `json:"draws" db:"draws"`
	Losses        int       `json:"losses" db:"losses"`
	GoalsFor      int       `json:"goals_for" db:"goals_for"`
	GoalsAgainst  int       `json:"goals_against" db:"goals_against"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

func (s *Standing) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}
