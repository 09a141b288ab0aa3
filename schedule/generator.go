package schedule

import (
	"context"
	"math/rand"
	"time"

	"github.com/gms-project/gms-backend/models"
)

// Entity is an opaque competing unit (a club or an individual participant).
// Generators never care which concrete kind is in play.
type Entity struct {
	ID   int
	Name string
}

// MatchSpec is a pure description of one match to be created. Generators emit
// specs only; persistence happens in a single batch in the service layer.
type MatchSpec struct {
	Round        int
	OrderInRound int
	GroupNumber  *int
	HomeID       *int // nil = TBD slot or bye position
	AwayID       *int
	BracketType  *models.BracketType
	Status       models.MatchStatus
	ScheduledAt  *time.Time
}

// Params carries everything a generator needs. Roster order is significant:
// pairing order follows roster positions, so a reseed changes the generated
// pairings deterministically. Rand drives the group shuffle for league formats;
// Now anchors the window when the competition has no explicit dates.
type Params struct {
	Competition *models.Competition
	Roster      []Entity
	Draft       bool
	Rand        *rand.Rand
	Now         time.Time
}

// Generator builds the full match list for one format family.
type Generator interface {
	Generate(ctx context.Context, params Params) ([]*MatchSpec, error)
	Name() string
}

// ForFormat resolves the generator for a format family once, so no string or
// type comparison leaks into the generators themselves.
func ForFormat(t models.FormatType) Generator {
	switch t {
	case models.FormatSingleElimination:
		return NewSingleEliminationGenerator()
	case models.FormatDoubleElimination:
		return NewDoubleEliminationGenerator()
	case models.FormatLeague, models.FormatRoundRobin:
		return NewRoundRobinGenerator()
	default:
		// SWISS_SYSTEM, KNOCKOUT and OTHER fall back to the basic schedule.
		return NewBasicGenerator()
	}
}

// window is the resolved scheduling range for a competition.
type window struct {
	start time.Time
	end   time.Time
}

// resolveWindow applies the defaulting rules: start falls back to today, end to
// start+30d, and an inverted range is repaired the same way.
func resolveWindow(comp *models.Competition, now time.Time) window {
	if now.IsZero() {
		now = time.Now()
	}
	start := dateOnly(now)
	if comp.StartDate != nil {
		start = dateOnly(*comp.StartDate)
	}
	end := start.AddDate(0, 0, 30)
	if comp.EndDate != nil {
		end = dateOnly(*comp.EndDate)
	}
	if start.After(end) {
		end = start.AddDate(0, 0, 30)
	}
	return window{start: start, end: end}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// matchTimeOn is the default kickoff used for cursor-driven scheduling.
func matchTimeOn(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 10, 0, 0, 0, date.Location())
}

// draftPlaceholderTime keeps draft matches inside the competition window so
// downstream validation accepts them until real dates are assigned.
func draftPlaceholderTime(w window) time.Time {
	return time.Date(w.start.Year(), w.start.Month(), w.start.Day(), 9, 0, 0, 0, w.start.Location())
}

func customDates(comp *models.Competition) []time.Time {
	if len(comp.CustomDays) == 0 {
		return nil
	}
	dates := make([]time.Time, 0, len(comp.CustomDays))
	for _, d := range comp.CustomDays {
		dates = append(dates, dateOnly(d.Date))
	}
	return dates
}

func matchStatus(draft bool) models.MatchStatus {
	if draft {
		return models.MatchStatusDraft
	}
	return models.MatchStatusScheduled
}

func intPtr(v int) *int { return &v }
