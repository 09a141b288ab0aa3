package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gms-project/gms-backend/models"
)

func TestDoubleEliminationOpeningRound(t *testing.T) {
	comp := eliminationCompetition(day(2025, time.June, 1), day(2025, time.June, 30))
	comp.Format.Type = models.FormatDoubleElimination

	gen := NewDoubleEliminationGenerator()
	specs, err := gen.Generate(context.Background(), Params{
		Competition: comp,
		Roster:      roster(8),
		Now:         day(2025, time.June, 1),
	})
	require.NoError(t, err)

	require.Len(t, specs, 4)
	for _, spec := range specs {
		assert.Equal(t, 1, spec.Round)
		require.NotNil(t, spec.BracketType)
		assert.Equal(t, models.BracketWinner, *spec.BracketType)
		require.NotNil(t, spec.HomeID)
		require.NotNil(t, spec.AwayID)
	}
}

func TestDoubleEliminationOddRosterSkipsByePairs(t *testing.T) {
	comp := eliminationCompetition(day(2025, time.June, 1), day(2025, time.June, 30))
	comp.Format.Type = models.FormatDoubleElimination

	gen := NewDoubleEliminationGenerator()
	specs, err := gen.Generate(context.Background(), Params{
		Competition: comp,
		Roster:      roster(5),
		Now:         day(2025, time.June, 1),
	})
	require.NoError(t, err)

	// Slots 1-4 pair off, entrant 5 sits against padding.
	require.Len(t, specs, 2)
	assert.Equal(t, 1, *specs[0].HomeID)
	assert.Equal(t, 2, *specs[0].AwayID)
	assert.Equal(t, 3, *specs[1].HomeID)
	assert.Equal(t, 4, *specs[1].AwayID)
}
