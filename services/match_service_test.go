package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gms-project/gms-backend/models"
	"github.com/gms-project/gms-backend/schedule"
)

func clubEntities() []schedule.Entity {
	return []schedule.Entity{
		{ID: 1, Name: "Ajax"},
		{ID: 2, Name: "Benfica"},
		{ID: 3, Name: "Chelsea"},
	}
}

func TestOutcomes(t *testing.T) {
	home, away := outcomes(ResultInput{HomeScore: 2, AwayScore: 1})
	assert.Equal(t, models.OutcomeWin, home)
	assert.Equal(t, models.OutcomeLoss, away)

	home, away = outcomes(ResultInput{HomeScore: 0, AwayScore: 3})
	assert.Equal(t, models.OutcomeLoss, home)
	assert.Equal(t, models.OutcomeWin, away)

	home, away = outcomes(ResultInput{HomeScore: 1, AwayScore: 1})
	assert.Equal(t, models.OutcomeDraw, home)
	assert.Equal(t, models.OutcomeDraw, away)
}

func TestResultRowRoutesEntitySlot(t *testing.T) {
	clubRow := resultRow(1, models.ParticipantTypeClubs, intp(10), models.OutcomeWin, 2)
	assert.NotNil(t, clubRow.ClubID)
	assert.Nil(t, clubRow.ParticipantID)
	assert.Equal(t, 10, *clubRow.ClubID)

	participantRow := resultRow(1, models.ParticipantTypeParticipants, intp(20), models.OutcomeLoss, 0)
	assert.Nil(t, participantRow.ClubID)
	assert.NotNil(t, participantRow.ParticipantID)
	assert.Equal(t, 20, *participantRow.ParticipantID)
}

func TestPickAdvancementSlot(t *testing.T) {
	pt := models.ParticipantTypeClubs
	matches := []*models.Match{
		{ID: 1, HomeClubID: intp(10), AwayClubID: intp(11)},
		{ID: 2, HomeClubID: nil, AwayClubID: intp(12)},
		{ID: 3, HomeClubID: nil, AwayClubID: nil},
	}

	target, fillHome := pickAdvancementSlot(matches, pt)
	assert.Equal(t, 2, target.ID, "first open home slot wins")
	assert.True(t, fillHome)

	matches[1].HomeClubID = intp(13)
	matches[2].HomeClubID = intp(14)
	target, fillHome = pickAdvancementSlot(matches, pt)
	assert.Equal(t, 3, target.ID, "falls back to first open away slot")
	assert.False(t, fillHome)

	matches[2].AwayClubID = intp(15)
	target, _ = pickAdvancementSlot(matches, pt)
	assert.Nil(t, target, "fully populated round has no slot")
}

func TestApplySeedingHintLenient(t *testing.T) {
	roster := clubEntities()

	// Partial hint: mentioned ids lead, the rest follow in natural order.
	seeded := applySeedingHint(roster, []int{3})
	assert.Equal(t, 3, seeded[0].ID)
	assert.Equal(t, 1, seeded[1].ID)
	assert.Equal(t, 2, seeded[2].ID)

	// Unknown and duplicate ids are ignored.
	seeded = applySeedingHint(roster, []int{9, 2, 2})
	assert.Equal(t, 2, seeded[0].ID)
	assert.Len(t, seeded, 3)
}

func TestApplySeedingPermutationChecks(t *testing.T) {
	roster := clubEntities()

	seeded, ok := applySeeding(roster, []int{3, 1, 2})
	assert.True(t, ok)
	assert.Equal(t, 3, seeded[0].ID)

	_, ok = applySeeding(roster, []int{1, 2})
	assert.False(t, ok)

	_, ok = applySeeding(roster, []int{1, 2, 9})
	assert.False(t, ok)

	_, ok = applySeeding(roster, []int{1, 1, 2})
	assert.False(t, ok)
}
