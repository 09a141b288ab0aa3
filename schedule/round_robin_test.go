package schedule

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gms-project/gms-backend/models"
)

func leagueCompetition(start, end time.Time) *models.Competition {
	return &models.Competition{
		ID:              2,
		Name:            "City League",
		ParticipantType: models.ParticipantTypeClubs,
		Frequency:       models.FrequencyAllDays,
		StartDate:       &start,
		EndDate:         &end,
		Format: &models.CompetitionFormat{
			ID:     2,
			Name:   "League",
			Type:   models.FormatLeague,
			Status: models.FormatStatusActive,
		},
	}
}

func pairKey(spec *MatchSpec) string {
	a, b := *spec.HomeID, *spec.AwayID
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d-%d", a, b)
}

func TestRoundRobinAllPairsOnce(t *testing.T) {
	comp := leagueCompetition(day(2025, time.June, 1), day(2025, time.June, 30))
	gen := NewRoundRobinGenerator()

	specs, err := gen.Generate(context.Background(), Params{
		Competition: comp,
		Roster:      roster(5),
		Now:         day(2025, time.June, 1),
	})
	require.NoError(t, err)

	// C(5,2) pairs.
	require.Len(t, specs, 10)

	seen := map[string]bool{}
	for _, spec := range specs {
		require.NotNil(t, spec.HomeID)
		require.NotNil(t, spec.AwayID)
		key := pairKey(spec)
		assert.False(t, seen[key], "pair %s scheduled twice", key)
		seen[key] = true
		assert.Equal(t, 1, spec.Round)
	}
}

func TestRoundRobinDatesAdvancePerMatch(t *testing.T) {
	comp := leagueCompetition(day(2025, time.June, 1), day(2025, time.June, 30))
	gen := NewRoundRobinGenerator()

	specs, err := gen.Generate(context.Background(), Params{
		Competition: comp,
		Roster:      roster(4),
		Now:         day(2025, time.June, 1),
	})
	require.NoError(t, err)
	require.Len(t, specs, 6)

	for i := 1; i < len(specs); i++ {
		require.NotNil(t, specs[i].ScheduledAt)
		assert.True(t, specs[i-1].ScheduledAt.Before(*specs[i].ScheduledAt),
			"match %d should be later than match %d", i, i-1)
	}
}

func TestRoundRobinWindowExhaustionTruncates(t *testing.T) {
	// Three-day window for six pairs.
	comp := leagueCompetition(day(2025, time.June, 1), day(2025, time.June, 3))
	gen := NewRoundRobinGenerator()

	specs, err := gen.Generate(context.Background(), Params{
		Competition: comp,
		Roster:      roster(4),
		Now:         day(2025, time.June, 1),
	})
	require.NoError(t, err)
	assert.Len(t, specs, 3)
}

func TestRoundRobinGroupsPartitionRoster(t *testing.T) {
	comp := leagueCompetition(day(2025, time.June, 1), day(2025, time.August, 30))
	comp.IsLeagueWithGroups = true
	groups := 2
	perGroup := 3
	comp.NumberOfGroups = &groups
	comp.ClubsPerGroup = &perGroup

	gen := NewRoundRobinGenerator()
	specs, err := gen.Generate(context.Background(), Params{
		Competition: comp,
		Roster:      roster(6),
		Rand:        rand.New(rand.NewSource(42)),
		Now:         day(2025, time.June, 1),
	})
	require.NoError(t, err)

	// Two groups of three: C(3,2) pairs each.
	require.Len(t, specs, 6)

	membership := map[int]int{}
	countByGroup := map[int]int{}
	for _, spec := range specs {
		require.NotNil(t, spec.GroupNumber)
		countByGroup[*spec.GroupNumber]++
		for _, id := range []int{*spec.HomeID, *spec.AwayID} {
			if g, ok := membership[id]; ok {
				assert.Equal(t, g, *spec.GroupNumber, "club %d appears in two groups", id)
			} else {
				membership[id] = *spec.GroupNumber
			}
		}
	}
	assert.Equal(t, 3, countByGroup[1])
	assert.Equal(t, 3, countByGroup[2])
	assert.Len(t, membership, 6)
}

func TestRoundRobinGroupDrawIsDeterministicWithSeed(t *testing.T) {
	build := func() []*MatchSpec {
		comp := leagueCompetition(day(2025, time.June, 1), day(2025, time.August, 30))
		comp.IsLeagueWithGroups = true
		groups := 2
		perGroup := 2
		comp.NumberOfGroups = &groups
		comp.ClubsPerGroup = &perGroup

		specs, err := NewRoundRobinGenerator().Generate(context.Background(), Params{
			Competition: comp,
			Roster:      roster(4),
			Rand:        rand.New(rand.NewSource(7)),
			Now:         day(2025, time.June, 1),
		})
		require.NoError(t, err)
		return specs
	}

	first := build()
	second := build()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, *first[i].HomeID, *second[i].HomeID)
		assert.Equal(t, *first[i].AwayID, *second[i].AwayID)
	}
}

func TestBasicGeneratorFallsBackToPairwise(t *testing.T) {
	comp := leagueCompetition(day(2025, time.June, 1), day(2025, time.June, 30))
	comp.Format.Type = models.FormatSwissSystem

	gen := ForFormat(comp.Format.Type)
	assert.Equal(t, "Basic", gen.Name())

	specs, err := gen.Generate(context.Background(), Params{
		Competition: comp,
		Roster:      roster(4),
		Now:         day(2025, time.June, 1),
	})
	require.NoError(t, err)
	assert.Len(t, specs, 6)
}

func TestForFormatDispatch(t *testing.T) {
	assert.Equal(t, "SingleElimination", ForFormat(models.FormatSingleElimination).Name())
	assert.Equal(t, "DoubleElimination", ForFormat(models.FormatDoubleElimination).Name())
	assert.Equal(t, "RoundRobin", ForFormat(models.FormatLeague).Name())
	assert.Equal(t, "RoundRobin", ForFormat(models.FormatRoundRobin).Name())
	assert.Equal(t, "Basic", ForFormat(models.FormatKnockout).Name())
	assert.Equal(t, "Basic", ForFormat(models.FormatOther).Name())
}
