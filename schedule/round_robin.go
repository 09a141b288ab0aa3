package schedule

import (
	"context"
	"math/rand"
	"time"
)

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() Generator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) Name() string { return "RoundRobin" }

// Generate produces every unordered pair exactly once, either over the whole
// roster or within each group when the competition partitions into groups.
func (g *RoundRobinGenerator) Generate(ctx context.Context, params Params) ([]*MatchSpec, error) {
	return pairwiseSchedule(params)
}

// pairwiseSchedule is the shared league/round-robin/basic algorithm. All
// matches carry round number 1; pairing order follows roster positions, so the
// seeding fully determines enumeration order. The date cursor advances per
// match and the exhaustion sentinel halts emission, leaving any remaining
// pairs unscheduled.
func pairwiseSchedule(params Params) ([]*MatchSpec, error) {
	roster := params.Roster
	if len(roster) < 2 {
		return []*MatchSpec{}, nil
	}

	comp := params.Competition
	w := resolveWindow(comp, params.Now)
	custom := customDates(comp)

	groups := [][]Entity{roster}
	withGroups := comp.IsLeagueWithGroups && comp.ClubsPerGroup != nil && *comp.ClubsPerGroup >= 2
	if withGroups {
		groups = partitionIntoGroups(roster, *comp.ClubsPerGroup, params.Rand)
	}

	specs := make([]*MatchSpec, 0)
	cursor := w.start
	order := 0

	for gi, group := range groups {
		if len(group) < 2 {
			continue
		}
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if !params.Draft && Exhausted(cursor, w.end) {
					return specs, nil
				}

				order++
				spec := &MatchSpec{
					Round:        1,
					OrderInRound: order,
					HomeID:       intPtr(group[i].ID),
					AwayID:       intPtr(group[j].ID),
					Status:       matchStatus(params.Draft),
					ScheduledAt:  roundTime(params.Draft, w, cursor),
				}
				if withGroups {
					spec.GroupNumber = intPtr(gi + 1)
				}
				specs = append(specs, spec)

				if !params.Draft {
					cursor = NextAvailableDate(cursor, comp.Frequency, w.start, w.end, custom)
				}
			}
		}
	}

	return specs, nil
}

// partitionIntoGroups shuffles a copy of the roster and chunks it into groups
// of the configured size. The shuffle source is injectable so callers needing
// reproducible draws can pass a seeded Rand; a nil source falls back to a
// time-seeded one.
func partitionIntoGroups(roster []Entity, perGroup int, rnd *rand.Rand) [][]Entity {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	shuffled := make([]Entity, len(roster))
	copy(shuffled, roster)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	groups := make([][]Entity, 0, (len(shuffled)+perGroup-1)/perGroup)
	for i := 0; i < len(shuffled); i += perGroup {
		end := i + perGroup
		if end > len(shuffled) {
			end = len(shuffled)
		}
		groups = append(groups, shuffled[i:end])
	}
	return groups
}
