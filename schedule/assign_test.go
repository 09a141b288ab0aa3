package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gms-project/gms-backend/models"
)

func draftMatch(id, round int) *models.Match {
	return &models.Match{
		ID:          id,
		RoundNumber: &round,
		Status:      models.MatchStatusDraft,
	}
}

func TestAssignDatesPerRoundForElimination(t *testing.T) {
	comp := eliminationCompetition(day(2025, time.June, 1), day(2025, time.June, 30))

	matches := []*models.Match{
		draftMatch(1, 1), draftMatch(2, 1),
		draftMatch(3, 2),
	}

	assigned := AssignDates(comp, matches, day(2025, time.June, 1))
	require.Len(t, assigned, 3)

	require.NotNil(t, assigned[0].ScheduledTime)
	require.NotNil(t, assigned[1].ScheduledTime)
	require.NotNil(t, assigned[2].ScheduledTime)
	assert.Equal(t, *assigned[0].ScheduledTime, *assigned[1].ScheduledTime)
	assert.True(t, assigned[1].ScheduledTime.Before(*assigned[2].ScheduledTime))
}

func TestAssignDatesPerMatchForLeague(t *testing.T) {
	comp := leagueCompetition(day(2025, time.June, 1), day(2025, time.June, 30))

	matches := []*models.Match{
		draftMatch(1, 1), draftMatch(2, 1), draftMatch(3, 1),
	}

	assigned := AssignDates(comp, matches, day(2025, time.June, 1))
	for i := 1; i < len(assigned); i++ {
		require.NotNil(t, assigned[i].ScheduledTime)
		assert.True(t, assigned[i-1].ScheduledTime.Before(*assigned[i].ScheduledTime))
	}
}

func TestAssignDatesNilsOutPastWindow(t *testing.T) {
	comp := leagueCompetition(day(2025, time.June, 1), day(2025, time.June, 2))

	matches := []*models.Match{
		draftMatch(1, 1), draftMatch(2, 1), draftMatch(3, 1), draftMatch(4, 1),
	}

	assigned := AssignDates(comp, matches, day(2025, time.June, 1))
	assert.NotNil(t, assigned[0].ScheduledTime)
	assert.NotNil(t, assigned[1].ScheduledTime)
	assert.Nil(t, assigned[2].ScheduledTime)
	assert.Nil(t, assigned[3].ScheduledTime)
}
