package models

// FormatType identifies a competition format family.
type FormatType string

const (
	FormatSingleElimination FormatType = "SINGLE_ELIMINATION"
	FormatDoubleElimination FormatType = "DOUBLE_ELIMINATION"
	FormatLeague            FormatType = "LEAGUE"
	FormatRoundRobin        FormatType = "ROUND_ROBIN"
	FormatSwissSystem       FormatType = "SWISS_SYSTEM"
	FormatKnockout          FormatType = "KNOCKOUT"
	FormatOther             FormatType = "OTHER"
)

type FormatStatus string

const (
	FormatStatusActive     FormatStatus = "ACTIVE"
	FormatStatusComingSoon FormatStatus = "COMING_SOON"
)

// CompetitionFormat is the master record for a format family.
type CompetitionFormat struct {
	ID          int          `json:"id" db:"id"`
	Name        string       `json:"name" db:"name"`
	Description *string      `json:"description,omitempty" db:"description"`
	Type        FormatType   `json:"format_type" db:"format_type"`
	Status      FormatStatus `json:"status" db:"status"`
}

// IsElimination reports whether the format family builds a bracket.
func (t FormatType) IsElimination() bool {
	return t == FormatSingleElimination || t == FormatDoubleElimination || t == FormatKnockout
}

// IsLeagueFamily reports whether the format family is league/round-robin.
func (t FormatType) IsLeagueFamily() bool {
	return t == FormatLeague || t == FormatRoundRobin
}

// DefaultStatus returns the status a format gets when none is set explicitly:
// the four fully supported families are active, the rest are coming soon.
func (t FormatType) DefaultStatus() FormatStatus {
	switch t {
	case FormatSingleElimination, FormatDoubleElimination, FormatLeague, FormatRoundRobin:
		return FormatStatusActive
	default:
		return FormatStatusComingSoon
	}
}
