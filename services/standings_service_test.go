package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gms-project/gms-backend/models"
)

func intp(v int) *int { return &v }

func resultPair(matchID, homeClub, homeScore, awayClub, awayScore int) []*models.MatchResult {
	homeOutcome := models.OutcomeDraw
	awayOutcome := models.OutcomeDraw
	switch {
	case homeScore > awayScore:
		homeOutcome, awayOutcome = models.OutcomeWin, models.OutcomeLoss
	case awayScore > homeScore:
		homeOutcome, awayOutcome = models.OutcomeLoss, models.OutcomeWin
	}
	return []*models.MatchResult{
		{MatchID: matchID, ClubID: intp(homeClub), Outcome: homeOutcome, Score: intp(homeScore)},
		{MatchID: matchID, ClubID: intp(awayClub), Outcome: awayOutcome, Score: intp(awayScore)},
	}
}

func TestComputeStandingsPoints(t *testing.T) {
	var results []*models.MatchResult
	results = append(results, resultPair(1, 10, 2, 11, 0)...) // 10 beats 11
	results = append(results, resultPair(2, 10, 1, 12, 1)...) // 10 draws 12
	results = append(results, resultPair(3, 11, 3, 12, 2)...) // 11 beats 12

	standings := computeStandings(5, results)
	require.Len(t, standings, 3)

	byClub := map[int]*models.Standing{}
	for _, s := range standings {
		byClub[s.ClubID] = s
	}

	club10 := byClub[10]
	require.NotNil(t, club10)
	assert.Equal(t, 4, club10.Points)
	assert.Equal(t, 2, club10.Played)
	assert.Equal(t, 1, club10.Wins)
	assert.Equal(t, 1, club10.Draws)
	assert.Equal(t, 0, club10.Losses)
	assert.Equal(t, 3, club10.GoalsFor)
	assert.Equal(t, 1, club10.GoalsAgainst)
	assert.Equal(t, 2, club10.GoalDifference())

	club11 := byClub[11]
	require.NotNil(t, club11)
	assert.Equal(t, 3, club11.Points)
	assert.Equal(t, 1, club11.Wins)
	assert.Equal(t, 1, club11.Losses)

	club12 := byClub[12]
	require.NotNil(t, club12)
	assert.Equal(t, 1, club12.Points)
	assert.Equal(t, 2, club12.Played)
}

func TestComputeStandingsIdempotent(t *testing.T) {
	var results []*models.MatchResult
	results = append(results, resultPair(1, 10, 2, 11, 2)...)
	results = append(results, resultPair(2, 10, 0, 12, 1)...)

	first := computeStandings(5, results)
	second := computeStandings(5, results)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, *first[i], *second[i])
	}
}

func TestComputeStandingsIgnoresIncompleteMatches(t *testing.T) {
	results := []*models.MatchResult{
		{MatchID: 1, ClubID: intp(10), Outcome: models.OutcomeWin, Score: intp(1)},
	}

	standings := computeStandings(5, results)
	assert.Empty(t, standings)
}

func TestComputeStandingsEmptyInput(t *testing.T) {
	assert.Empty(t, computeStandings(5, nil))
}
