package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gms-project/gms-backend/models"
)

func validLeague(planned int) (*models.Competition, *models.CompetitionFormat) {
	format := &models.CompetitionFormat{
		ID:     2,
		Name:   "League",
		Type:   models.FormatLeague,
		Status: models.FormatStatusActive,
	}
	comp := &models.Competition{
		ID:              3,
		Name:            "Premier",
		ParticipantType: models.ParticipantTypeClubs,
		PlannedClubs:    &planned,
		Frequency:       models.FrequencyAllDays,
		Format:          format,
	}
	return comp, format
}

func TestValidateForSchedulingPasses(t *testing.T) {
	comp, format := validLeague(4)
	assert.NoError(t, ValidateForScheduling(comp, format, 4))
}

func TestValidateNilFormat(t *testing.T) {
	comp, _ := validLeague(4)
	err := ValidateForScheduling(comp, nil, 4)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestValidateComingSoonFormat(t *testing.T) {
	comp, format := validLeague(4)
	format.Status = models.FormatStatusComingSoon
	err := ValidateForScheduling(comp, format, 4)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "coming soon")
}

func TestValidatePlannedBelowMinimum(t *testing.T) {
	comp, format := validLeague(1)
	err := ValidateForScheduling(comp, format, 1)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestValidateLeagueRequiresTwoEnrolled(t *testing.T) {
	comp, format := validLeague(4)
	comp.PlannedClubs = nil
	err := ValidateForScheduling(comp, format, 1)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestValidateEnrollmentMismatch(t *testing.T) {
	comp, format := validLeague(6)
	err := ValidateForScheduling(comp, format, 4)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "expected 6")
}

func TestValidateGroupArithmetic(t *testing.T) {
	comp, format := validLeague(6)
	comp.IsLeagueWithGroups = true
	groups := 2
	perGroup := 3
	comp.NumberOfGroups = &groups
	comp.ClubsPerGroup = &perGroup

	assert.NoError(t, ValidateForScheduling(comp, format, 6))

	badPerGroup := 4
	comp.ClubsPerGroup = &badPerGroup
	err := ValidateForScheduling(comp, format, 6)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	onePerGroup := 1
	comp.ClubsPerGroup = &onePerGroup
	err = ValidateForScheduling(comp, format, 6)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestValidateInvertedDates(t *testing.T) {
	comp, format := validLeague(4)
	start := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	comp.StartDate = &start
	comp.EndDate = &end

	err := ValidateForScheduling(comp, format, 4)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestValidateEliminationAcceptsNonPowerOfTwo(t *testing.T) {
	planned := 5
	format := &models.CompetitionFormat{
		ID:     1,
		Name:   "Single Elimination",
		Type:   models.FormatSingleElimination,
		Status: models.FormatStatusActive,
	}
	comp := &models.Competition{
		ID:              4,
		Name:            "Open Cup",
		ParticipantType: models.ParticipantTypeClubs,
		PlannedClubs:    &planned,
		Frequency:       models.FrequencyAllDays,
		Format:          format,
	}

	assert.NoError(t, ValidateForScheduling(comp, format, 5))
}

func TestConfigurationErrorUnwrapsToSentinel(t *testing.T) {
	err := configErrorf("bad setup: %d", 7)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	assert.Equal(t, "bad setup: 7", err.Error())
}
