package schedule

import (
	"context"

	"github.com/gms-project/gms-backend/models"
)

type DoubleEliminationGenerator struct{}

func NewDoubleEliminationGenerator() Generator {
	return &DoubleEliminationGenerator{}
}

func (g *DoubleEliminationGenerator) Name() string { return "DoubleElimination" }

// Generate builds only the opening winner-bracket round: the roster is padded
// to the next power of two and every real-vs-real pairing becomes a WINNER
// bracket match. Loser-bracket construction is intentionally not done here;
// see the open question recorded in DESIGN.md before extending this.
func (g *DoubleEliminationGenerator) Generate(ctx context.Context, params Params) ([]*MatchSpec, error) {
	roster := params.Roster
	if len(roster) < 2 {
		return []*MatchSpec{}, nil
	}

	comp := params.Competition
	w := resolveWindow(comp, params.Now)
	custom := customDates(comp)

	size := NextPowerOfTwo(len(roster))
	slots := make([]*Entity, size)
	for i := range roster {
		slots[i] = &roster[i]
	}

	bracket := models.BracketWinner
	specs := make([]*MatchSpec, 0, size/2)
	cursor := w.start
	order := 0

	for i := 0; i+1 < len(slots); i += 2 {
		home, away := slots[i], slots[i+1]
		if home == nil || away == nil {
			continue
		}
		if !params.Draft && Exhausted(cursor, w.end) {
			break
		}

		order++
		specs = append(specs, &MatchSpec{
			Round:        1,
			OrderInRound: order,
			HomeID:       intPtr(home.ID),
			AwayID:       intPtr(away.ID),
			BracketType:  &bracket,
			Status:       matchStatus(params.Draft),
			ScheduledAt:  roundTime(params.Draft, w, cursor),
		})

		if !params.Draft {
			cursor = NextAvailableDate(cursor, comp.Frequency, w.start, w.end, custom)
		}
	}

	return specs, nil
}
