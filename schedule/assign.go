package schedule

import (
	"time"

	"github.com/gms-project/gms-backend/models"
)

// AssignDates walks the date cursor over an already generated match list,
// in round-then-creation order as returned by the repository. Elimination
// formats share one date per round; every other format advances per match.
// Matches falling past the window get a nil time and are left untouched by
// the caller. Statuses are not changed here.
func AssignDates(comp *models.Competition, matches []*models.Match, now time.Time) []*models.Match {
	if len(matches) == 0 {
		return matches
	}

	w := resolveWindow(comp, now)
	custom := customDates(comp)

	perRound := comp.Format != nil && comp.Format.Type.IsElimination()
	cursor := w.start
	lastRound := 0

	for i, match := range matches {
		advance := i > 0
		if perRound {
			round := 0
			if match.RoundNumber != nil {
				round = *match.RoundNumber
			}
			advance = i > 0 && round != lastRound
			lastRound = round
		}
		if advance {
			cursor = NextAvailableDate(cursor, comp.Frequency, w.start, w.end, custom)
		}

		if Exhausted(cursor, w.end) {
			match.ScheduledTime = nil
			continue
		}
		t := matchTimeOn(cursor)
		match.ScheduledTime = &t
	}
	return matches
}
