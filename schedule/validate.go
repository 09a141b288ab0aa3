package schedule

import (
	"errors"
	"fmt"

	"github.com/gms-project/gms-backend/models"
)

// ErrInvalidConfiguration is the sentinel matched by errors.Is for every
// pre-flight validation failure.
var ErrInvalidConfiguration = errors.New("invalid competition configuration")

// ConfigurationError carries the human-readable reason a competition cannot be
// scheduled. It is surfaced verbatim to the caller.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string { return e.Reason }

func (e *ConfigurationError) Is(target error) bool { return target == ErrInvalidConfiguration }

func configErrorf(format string, args ...interface{}) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// ValidateForScheduling is the gate run before any generator. It checks format
// activity, planned-count sanity, group arithmetic, the league minimum, the
// enrolled-vs-planned match, and the date range. The enrollment count check
// always runs here, at generation time, so late roster mutations cannot slip
// past it. Elimination formats with a non-power-of-two roster pass: byes are
// the accepted mitigation.
func ValidateForScheduling(comp *models.Competition, format *models.CompetitionFormat, enrolled int) error {
	if format == nil {
		return configErrorf("competition %d has no format configured", comp.ID)
	}
	if format.Status == models.FormatStatusComingSoon {
		return configErrorf("format %q is coming soon and not available for scheduling", format.Name)
	}

	entity := "clubs"
	if comp.ParticipantType == models.ParticipantTypeParticipants {
		entity = "participants"
	}

	if planned := comp.PlannedCount(); planned != nil && *planned < 2 {
		return configErrorf("at least 2 %s must be planned, got %d", entity, *planned)
	}

	if format.Type.IsLeagueFamily() && enrolled < 2 {
		return configErrorf("format %q requires at least 2 %s, currently %d enrolled", format.Name, entity, enrolled)
	}

	if comp.IsLeagueWithGroups {
		if comp.NumberOfGroups == nil || *comp.NumberOfGroups < 1 {
			return configErrorf("number of groups must be at least 1 for a league with groups")
		}
		if comp.ClubsPerGroup == nil || *comp.ClubsPerGroup < 2 {
			return configErrorf("clubs per group must be at least 2 for a league with groups")
		}
		expected := *comp.NumberOfGroups * *comp.ClubsPerGroup
		if planned := comp.PlannedCount(); planned != nil && *planned != expected {
			return configErrorf("league with %d groups of %d expects %d %s planned, got %d",
				*comp.NumberOfGroups, *comp.ClubsPerGroup, expected, entity, *planned)
		}
		if enrolled != expected {
			return configErrorf("league with %d groups of %d expects %d %s enrolled, got %d",
				*comp.NumberOfGroups, *comp.ClubsPerGroup, expected, entity, enrolled)
		}
	}

	if planned := comp.PlannedCount(); planned != nil && *planned > 0 && enrolled != *planned {
		return configErrorf("expected %d %s to be enrolled, but %d are enrolled", *planned, entity, enrolled)
	}

	if comp.StartDate != nil && comp.EndDate != nil && comp.StartDate.After(*comp.EndDate) {
		return configErrorf("start date (%s) cannot be after end date (%s)",
			comp.StartDate.Format("2006-01-02"), comp.EndDate.Format("2006-01-02"))
	}

	return nil
}
