package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gms-project/gms-backend/models"
)

func eliminationCompetition(start, end time.Time) *models.Competition {
	return &models.Competition{
		ID:              1,
		Name:            "Spring Cup",
		ParticipantType: models.ParticipantTypeClubs,
		Frequency:       models.FrequencyAllDays,
		StartDate:       &start,
		EndDate:         &end,
		Format: &models.CompetitionFormat{
			ID:     1,
			Name:   "Single Elimination",
			Type:   models.FormatSingleElimination,
			Status: models.FormatStatusActive,
		},
	}
}

func roster(n int) []Entity {
	entities := make([]Entity, 0, n)
	for i := 1; i <= n; i++ {
		entities = append(entities, Entity{ID: i, Name: string(rune('A' + i - 1))})
	}
	return entities
}

func TestSingleEliminationPowerOfTwo(t *testing.T) {
	comp := eliminationCompetition(day(2025, time.June, 1), day(2025, time.June, 30))
	gen := NewSingleEliminationGenerator()

	specs, err := gen.Generate(context.Background(), Params{
		Competition: comp,
		Roster:      roster(8),
		Now:         day(2025, time.June, 1),
	})
	require.NoError(t, err)

	// 8 entrants: 4 + 2 + 1 matches.
	require.Len(t, specs, 7)

	byRound := map[int]int{}
	for _, spec := range specs {
		byRound[spec.Round]++
	}
	assert.Equal(t, 4, byRound[1])
	assert.Equal(t, 2, byRound[2])
	assert.Equal(t, 1, byRound[3])

	// Round 1 has all slots known, later rounds are fully TBD.
	for _, spec := range specs {
		if spec.Round == 1 {
			assert.NotNil(t, spec.HomeID)
			assert.NotNil(t, spec.AwayID)
		} else {
			assert.Nil(t, spec.HomeID)
			assert.Nil(t, spec.AwayID)
		}
	}
}

func TestSingleEliminationWithByes(t *testing.T) {
	comp := eliminationCompetition(day(2025, time.June, 1), day(2025, time.June, 30))
	gen := NewSingleEliminationGenerator()

	specs, err := gen.Generate(context.Background(), Params{
		Competition: comp,
		Roster:      roster(5),
		Now:         day(2025, time.June, 1),
	})
	require.NoError(t, err)

	// Bracket of 8 with 3 byes: entrants 1-4 play round 1, entrant 5
	// auto-advances past its bye, the remaining bye pair collapses.
	byRound := map[int][]*MatchSpec{}
	for _, spec := range specs {
		byRound[spec.Round] = append(byRound[spec.Round], spec)
	}

	require.Len(t, byRound[1], 2)
	require.Len(t, byRound[2], 1)
	require.Len(t, byRound[3], 1)
	require.Len(t, specs, 4)

	// Round 2 is the semifinal of the two round-1 winners.
	round2 := byRound[2][0]
	assert.Nil(t, round2.HomeID)
	assert.Nil(t, round2.AwayID)

	// Entrant 5 rides its byes into the final.
	final := byRound[3][0]
	assert.Nil(t, final.HomeID)
	require.NotNil(t, final.AwayID)
	assert.Equal(t, 5, *final.AwayID)
}

func TestSingleEliminationRoundsShareDate(t *testing.T) {
	comp := eliminationCompetition(day(2025, time.June, 1), day(2025, time.June, 30))
	gen := NewSingleEliminationGenerator()

	specs, err := gen.Generate(context.Background(), Params{
		Competition: comp,
		Roster:      roster(8),
		Now:         day(2025, time.June, 1),
	})
	require.NoError(t, err)

	timesByRound := map[int]time.Time{}
	for _, spec := range specs {
		require.NotNil(t, spec.ScheduledAt)
		if existing, ok := timesByRound[spec.Round]; ok {
			assert.Equal(t, existing, *spec.ScheduledAt, "round %d matches must share a date", spec.Round)
		} else {
			timesByRound[spec.Round] = *spec.ScheduledAt
		}
	}

	assert.True(t, timesByRound[1].Before(timesByRound[2]))
	assert.True(t, timesByRound[2].Before(timesByRound[3]))
}

func TestSingleEliminationDraftUsesPlaceholder(t *testing.T) {
	comp := eliminationCompetition(day(2025, time.June, 1), day(2025, time.June, 30))
	gen := NewSingleEliminationGenerator()

	specs, err := gen.Generate(context.Background(), Params{
		Competition: comp,
		Roster:      roster(4),
		Draft:       true,
		Now:         day(2025, time.June, 1),
	})
	require.NoError(t, err)
	require.Len(t, specs, 3)

	placeholder := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	for _, spec := range specs {
		assert.Equal(t, models.MatchStatusDraft, spec.Status)
		require.NotNil(t, spec.ScheduledAt)
		assert.Equal(t, placeholder, *spec.ScheduledAt)
	}
}

func TestSingleEliminationStopsAtWindowExhaustion(t *testing.T) {
	// Two-day window cannot hold three rounds.
	comp := eliminationCompetition(day(2025, time.June, 1), day(2025, time.June, 2))
	gen := NewSingleEliminationGenerator()

	specs, err := gen.Generate(context.Background(), Params{
		Competition: comp,
		Roster:      roster(8),
		Now:         day(2025, time.June, 1),
	})
	require.NoError(t, err)

	maxRound := 0
	for _, spec := range specs {
		if spec.Round > maxRound {
			maxRound = spec.Round
		}
	}
	assert.Equal(t, 2, maxRound)
	assert.Len(t, specs, 6)
}

func TestSingleEliminationTinyRoster(t *testing.T) {
	comp := eliminationCompetition(day(2025, time.June, 1), day(2025, time.June, 30))
	gen := NewSingleEliminationGenerator()

	specs, err := gen.Generate(context.Background(), Params{
		Competition: comp,
		Roster:      roster(1),
		Now:         day(2025, time.June, 1),
	})
	require.NoError(t, err)
	assert.Empty(t, specs)
}
