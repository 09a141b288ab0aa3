package models

import "time"

// ParticipantType selects which entity kind competes in a competition.
type ParticipantType string

const (
	ParticipantTypeClubs        ParticipantType = "CLUBS"
	ParticipantTypeParticipants ParticipantType = "PARTICIPANTS"
)

// Frequency is the scheduling-day policy for a competition window.
type Frequency string

const (
	FrequencyAllDays Frequency = "ALL_DAYS"
	FrequencyWeekday Frequency = "WEEKDAY"
	FrequencyWeekend Frequency = "WEEKEND"
	FrequencyCustom  Frequency = "CUSTOM"
)

// Competition owns the scheduling configuration for one competition.
type Competition struct {
	ID                  int             `json:"id" db:"id"`
	Name                string          `json:"name" db:"name"`
	FormatID            int             `json:"format_id" db:"format_id"`
	ParticipantType     ParticipantType `json:"participant_type" db:"participant_type"`
	PlannedClubs        *int            `json:"number_of_clubs,omitempty" db:"number_of_clubs"`
	PlannedParticipants *int            `json:"number_of_participants,omitempty" db:"number_of_participants"`
	IsLeagueWithGroups  bool            `json:"is_league_with_groups" db:"is_league_with_groups"`
	NumberOfGroups      *int            `json:"number_of_groups,omitempty" db:"number_of_groups"`
	ClubsPerGroup       *int            `json:"clubs_per_group,omitempty" db:"clubs_per_group"`
	Frequency           Frequency       `json:"frequency_day" db:"frequency_day"`
	StartDate           *time.Time      `json:"start_date,omitempty" db:"start_date"`
	EndDate             *time.Time      `json:"end_date,omitempty" db:"end_date"`
	SportType           string          `json:"sport_type" db:"sport_type"`
	HasThirdPlaceMatch  bool            `json:"has_third_place_match" db:"has_third_place_match"`
	CreatedAt           time.Time       `json:"created_at" db:"created_at"`

	// Populated by services, not mapped directly.
	Format     *CompetitionFormat `json:"format,omitempty" db:"-"`
	CustomDays []CustomDay        `json:"custom_days,omitempty" db:"-"`
}

// PlannedCount returns the planned entity count for the active participant mode.
func (c *Competition) PlannedCount() *int {
	if c.ParticipantType == ParticipantTypeParticipants {
		return c.PlannedParticipants
	}
	return c.PlannedClubs
}

// CustomDay is one allowed scheduling date for a CUSTOM frequency competition.
type CustomDay struct {
	ID            int       `json:"id" db:"id"`
	CompetitionID int       `json:"competition_id" db:"competition_id"`
	Date          time.Time `json:"date" db:"date"`
	Description   string    `json:"description" db:"description"`
}
