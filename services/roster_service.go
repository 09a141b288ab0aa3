package services

import (
	"context"
	"fmt"
	"time"

	"github.com/gms-project/gms-backend/cache"
	"github.com/gms-project/gms-backend/models"
	"github.com/gms-project/gms-backend/repositories"
	"github.com/gms-project/gms-backend/schedule"
)

// RosterProvider resolves the ordered entity roster a generator pairs from.
// The natural order is alphabetical; a saved seeding overrides it for as long
// as the seeding entry lives in the cache.
type RosterProvider interface {
	Roster(ctx context.Context, comp *models.Competition) ([]schedule.Entity, error)
	SaveSeeding(ctx context.Context, comp *models.Competition, order []int) error
	ClearSeeding(competitionID int)
}

type rosterService struct {
	competitionRepo repositories.CompetitionRepository
	seedingCache    cache.SeedingCache
	seedingTTL      time.Duration
}

func NewRosterService(competitionRepo repositories.CompetitionRepository, seedingCache cache.SeedingCache, seedingTTL time.Duration) RosterProvider {
	return &rosterService{
		competitionRepo: competitionRepo,
		seedingCache:    seedingCache,
		seedingTTL:      seedingTTL,
	}
}

// Roster loads the enrolled entities in natural order and applies the cached
// seeding when one exists. The seeding is treated as a hint: entities it omits
// are appended in natural order and withdrawn ids are skipped.
func (s *rosterService) Roster(ctx context.Context, comp *models.Competition) ([]schedule.Entity, error) {
	natural, err := s.naturalRoster(ctx, comp)
	if err != nil {
		return nil, err
	}

	order, ok := s.seedingCache.GetSeeding(comp.ID)
	if !ok {
		return natural, nil
	}
	return applySeedingHint(natural, order), nil
}

// SaveSeeding validates that the order is an exact permutation of the enrolled
// entity ids before storing it.
func (s *rosterService) SaveSeeding(ctx context.Context, comp *models.Competition, order []int) error {
	natural, err := s.naturalRoster(ctx, comp)
	if err != nil {
		return err
	}
	if _, ok := applySeeding(natural, order); !ok {
		return ErrSeedingInvalid
	}
	s.seedingCache.SetSeeding(comp.ID, order, s.seedingTTL)
	return nil
}

func (s *rosterService) ClearSeeding(competitionID int) {
	s.seedingCache.DeleteSeeding(competitionID)
}

func (s *rosterService) naturalRoster(ctx context.Context, comp *models.Competition) ([]schedule.Entity, error) {
	if comp.ParticipantType == models.ParticipantTypeParticipants {
		participants, err := s.competitionRepo.ListEnrolledParticipants(ctx, comp.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load enrolled participants: %w", err)
		}
		roster := make([]schedule.Entity, 0, len(participants))
		for _, p := range participants {
			roster = append(roster, schedule.Entity{ID: p.ID, Name: p.FullName()})
		}
		return roster, nil
	}

	clubs, err := s.competitionRepo.ListEnrolledClubs(ctx, comp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load enrolled clubs: %w", err)
	}
	roster := make([]schedule.Entity, 0, len(clubs))
	for _, c := range clubs {
		roster = append(roster, schedule.Entity{ID: c.ID, Name: c.Name})
	}
	return roster, nil
}

// applySeeding reorders the roster by the given id order. It reports false when
// the order is not an exact permutation of the roster ids. Used to validate a
// seeding before it is saved.
func applySeeding(roster []schedule.Entity, order []int) ([]schedule.Entity, bool) {
	if len(order) != len(roster) {
		return nil, false
	}
	byID := make(map[int]schedule.Entity, len(roster))
	for _, e := range roster {
		byID[e.ID] = e
	}
	seeded := make([]schedule.Entity, 0, len(order))
	seen := make(map[int]bool, len(order))
	for _, id := range order {
		e, ok := byID[id]
		if !ok || seen[id] {
			return nil, false
		}
		seen[id] = true
		seeded = append(seeded, e)
	}
	return seeded, true
}

// applySeedingHint is the lenient read-side variant: ids in the hint come
// first, entities the hint does not mention follow in natural order, and ids
// that no longer exist in the roster are ignored. Enrollment drift after a
// seeding was saved therefore degrades gracefully instead of failing.
func applySeedingHint(roster []schedule.Entity, order []int) []schedule.Entity {
	byID := make(map[int]schedule.Entity, len(roster))
	for _, e := range roster {
		byID[e.ID] = e
	}

	seeded := make([]schedule.Entity, 0, len(roster))
	placed := make(map[int]bool, len(order))
	for _, id := range order {
		e, ok := byID[id]
		if !ok || placed[id] {
			continue
		}
		placed[id] = true
		seeded = append(seeded, e)
	}
	for _, e := range roster {
		if !placed[e.ID] {
			seeded = append(seeded, e)
		}
	}
	return seeded
}
