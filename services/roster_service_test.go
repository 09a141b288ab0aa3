package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gms-project/gms-backend/cache"
	"github.com/gms-project/gms-backend/models"
)

type fakeCompetitionRepo struct {
	clubs        []*models.Club
	participants []*models.Participant
}

func (f *fakeCompetitionRepo) Create(ctx context.Context, comp *models.Competition) error { return nil }
func (f *fakeCompetitionRepo) GetByID(ctx context.Context, id int) (*models.Competition, error) {
	return &models.Competition{ID: id}, nil
}
func (f *fakeCompetitionRepo) List(ctx context.Context) ([]*models.Competition, error) {
	return nil, nil
}
func (f *fakeCompetitionRepo) Update(ctx context.Context, comp *models.Competition) error { return nil }
func (f *fakeCompetitionRepo) Delete(ctx context.Context, id int) error                   { return nil }
func (f *fakeCompetitionRepo) CountEnrolled(ctx context.Context, competitionID int, pt models.ParticipantType) (int, error) {
	if pt == models.ParticipantTypeParticipants {
		return len(f.participants), nil
	}
	return len(f.clubs), nil
}
func (f *fakeCompetitionRepo) ListEnrolledClubs(ctx context.Context, competitionID int) ([]*models.Club, error) {
	return f.clubs, nil
}
func (f *fakeCompetitionRepo) ListEnrolledParticipants(ctx context.Context, competitionID int) ([]*models.Participant, error) {
	return f.participants, nil
}
func (f *fakeCompetitionRepo) ListCustomDays(ctx context.Context, competitionID int) ([]models.CustomDay, error) {
	return nil, nil
}

func clubRoster() *fakeCompetitionRepo {
	return &fakeCompetitionRepo{
		clubs: []*models.Club{
			{ID: 10, Name: "Arsenal"},
			{ID: 11, Name: "Bayern"},
			{ID: 12, Name: "Celtic"},
		},
	}
}

func TestRosterNaturalOrder(t *testing.T) {
	provider := NewRosterService(clubRoster(), cache.NewMemorySeedingCache(0), time.Minute)

	roster, err := provider.Roster(context.Background(), &models.Competition{ID: 1})
	require.NoError(t, err)
	require.Len(t, roster, 3)
	assert.Equal(t, "Arsenal", roster[0].Name)
	assert.Equal(t, "Bayern", roster[1].Name)
	assert.Equal(t, "Celtic", roster[2].Name)
}

func TestRosterAppliesSavedSeeding(t *testing.T) {
	provider := NewRosterService(clubRoster(), cache.NewMemorySeedingCache(0), time.Minute)
	comp := &models.Competition{ID: 1}

	require.NoError(t, provider.SaveSeeding(context.Background(), comp, []int{12, 10, 11}))

	roster, err := provider.Roster(context.Background(), comp)
	require.NoError(t, err)
	require.Len(t, roster, 3)
	assert.Equal(t, 12, roster[0].ID)
	assert.Equal(t, 10, roster[1].ID)
	assert.Equal(t, 11, roster[2].ID)
}

func TestSaveSeedingRejectsBadOrder(t *testing.T) {
	provider := NewRosterService(clubRoster(), cache.NewMemorySeedingCache(0), time.Minute)
	comp := &models.Competition{ID: 1}

	assert.ErrorIs(t, provider.SaveSeeding(context.Background(), comp, []int{10, 11}), ErrSeedingInvalid)
	assert.ErrorIs(t, provider.SaveSeeding(context.Background(), comp, []int{10, 11, 99}), ErrSeedingInvalid)
	assert.ErrorIs(t, provider.SaveSeeding(context.Background(), comp, []int{10, 10, 11}), ErrSeedingInvalid)
}

func TestRosterAppendsEntitiesMissingFromSeeding(t *testing.T) {
	repo := clubRoster()
	seedingCache := cache.NewMemorySeedingCache(0)
	provider := NewRosterService(repo, seedingCache, time.Minute)
	comp := &models.Competition{ID: 1}

	require.NoError(t, provider.SaveSeeding(context.Background(), comp, []int{12, 10, 11}))

	// Enrollment changes after the seeding was saved: the newcomer is
	// appended after the seeded entries, a withdrawn id would be skipped.
	repo.clubs = append(repo.clubs, &models.Club{ID: 13, Name: "Dynamo"})

	roster, err := provider.Roster(context.Background(), comp)
	require.NoError(t, err)
	require.Len(t, roster, 4)
	assert.Equal(t, []int{12, 10, 11, 13}, []int{roster[0].ID, roster[1].ID, roster[2].ID, roster[3].ID})
}

func TestRosterClearSeeding(t *testing.T) {
	seedingCache := cache.NewMemorySeedingCache(0)
	provider := NewRosterService(clubRoster(), seedingCache, time.Minute)
	comp := &models.Competition{ID: 1}

	require.NoError(t, provider.SaveSeeding(context.Background(), comp, []int{11, 12, 10}))
	provider.ClearSeeding(1)

	roster, err := provider.Roster(context.Background(), comp)
	require.NoError(t, err)
	assert.Equal(t, 10, roster[0].ID)
}

func TestRosterParticipantsUseFullName(t *testing.T) {
	repo := &fakeCompetitionRepo{
		participants: []*models.Participant{
			{ID: 20, FirstName: "Ada", LastName: "Lovelace"},
			{ID: 21, FirstName: "Grace", LastName: "Hopper"},
		},
	}
	provider := NewRosterService(repo, cache.NewMemorySeedingCache(0), time.Minute)

	roster, err := provider.Roster(context.Background(), &models.Competition{
		ID:              2,
		ParticipantType: models.ParticipantTypeParticipants,
	})
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "Ada Lovelace", roster[0].Name)
}
