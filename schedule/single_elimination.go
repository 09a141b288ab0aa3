package schedule

import (
	"context"
	"time"
)

// node is one bracket slot while building a round. Exactly one state applies:
// a known entity, a bye placeholder from roster padding, or the still-unknown
// winner of an earlier match.
type node struct {
	entity *Entity
	isBye  bool
	isTBD  bool
}

type SingleEliminationGenerator struct{}

func NewSingleEliminationGenerator() Generator {
	return &SingleEliminationGenerator{}
}

func (g *SingleEliminationGenerator) Name() string { return "SingleElimination" }

// Generate builds the complete single elimination bracket round by round.
// The roster is padded with bye placeholders up to the next power of two;
// a pairing of one real entity and a bye auto-advances the entity without a
// match. Pairings involving future winners produce matches with open slots,
// filled later by winner advancement. In immediate mode every match of a round
// shares the round's cursor date; in draft mode matches get DRAFT status and a
// placeholder time inside the window.
func (g *SingleEliminationGenerator) Generate(ctx context.Context, params Params) ([]*MatchSpec, error) {
	roster := params.Roster
	if len(roster) < 2 {
		return []*MatchSpec{}, nil
	}

	comp := params.Competition
	w := resolveWindow(comp, params.Now)
	custom := customDates(comp)

	size := NextPowerOfTwo(len(roster))
	current := make([]node, 0, size)
	for i := range roster {
		current = append(current, node{entity: &roster[i]})
	}
	for i := len(roster); i < size; i++ {
		current = append(current, node{isBye: true})
	}

	specs := make([]*MatchSpec, 0, size-1)
	round := 1
	cursor := w.start

	for len(current) > 1 {
		if !params.Draft && Exhausted(cursor, w.end) {
			break
		}

		next := make([]node, 0, len(current)/2)
		order := 0

		for i := 0; i < len(current); i += 2 {
			a := current[i]
			b := current[i+1]

			switch {
			case a.isBye && b.isBye:
				// Two padding slots meet: the bye itself advances.
				next = append(next, node{isBye: true})
			case a.entity != nil && b.isBye:
				next = append(next, a)
			case b.entity != nil && a.isBye:
				next = append(next, b)
			case a.isTBD && b.isBye:
				// The pending winner advances without playing.
				next = append(next, a)
			case b.isTBD && a.isBye:
				next = append(next, b)
			default:
				// At least one side is real or a pending winner: a match exists.
				order++
				spec := &MatchSpec{
					Round:        round,
					OrderInRound: order,
					Status:       matchStatus(params.Draft),
					ScheduledAt:  roundTime(params.Draft, w, cursor),
				}
				if a.entity != nil {
					spec.HomeID = intPtr(a.entity.ID)
				}
				if b.entity != nil {
					spec.AwayID = intPtr(b.entity.ID)
				}
				specs = append(specs, spec)
				next = append(next, node{isTBD: true})
			}
		}

		if !params.Draft {
			cursor = NextAvailableDate(cursor, comp.Frequency, w.start, w.end, custom)
		}
		current = next
		round++
	}

	return specs, nil
}

func roundTime(draft bool, w window, cursor time.Time) *time.Time {
	var t time.Time
	if draft {
		t = draftPlaceholderTime(w)
	} else {
		t = matchTimeOn(cursor)
	}
	return &t
}
