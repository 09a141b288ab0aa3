package schedule

import (
	"sort"
	"time"

	"github.com/gms-project/gms-backend/models"
)

// NextAvailableDate computes the next scheduling date after current under the
// given frequency policy. Any returned date strictly after rangeEnd is the
// exhaustion sentinel: callers must stop emitting matches for that branch.
func NextAvailableDate(current time.Time, frequency models.Frequency, rangeStart, rangeEnd time.Time, custom []time.Time) time.Time {
	current = dateOnly(current)
	rangeEnd = dateOnly(rangeEnd)

	var next time.Time
	switch frequency {
	case models.FrequencyWeekday:
		next = current.AddDate(0, 0, 1)
		for isWeekend(next) {
			next = next.AddDate(0, 0, 1)
		}
	case models.FrequencyWeekend:
		next = current.AddDate(0, 0, 1)
		for !isWeekend(next) {
			next = next.AddDate(0, 0, 1)
		}
	case models.FrequencyCustom:
		return nextCustomDate(current, rangeStart, rangeEnd, custom)
	default: // ALL_DAYS
		next = current.AddDate(0, 0, 1)
	}

	if next.After(rangeEnd) {
		return exhausted(rangeEnd)
	}
	return next
}

// Exhausted reports whether a cursor date signals that the window has no more
// slots.
func Exhausted(date, rangeEnd time.Time) bool {
	return dateOnly(date).After(dateOnly(rangeEnd))
}

func nextCustomDate(current, rangeStart, rangeEnd time.Time, custom []time.Time) time.Time {
	inRange := make([]time.Time, 0, len(custom))
	for _, d := range custom {
		d = dateOnly(d)
		if !d.Before(dateOnly(rangeStart)) && !d.After(rangeEnd) {
			inRange = append(inRange, d)
		}
	}
	sort.Slice(inRange, func(i, j int) bool { return inRange[i].Before(inRange[j]) })

	for _, d := range inRange {
		if d.After(current) {
			return d
		}
	}
	return exhausted(rangeEnd)
}

func exhausted(rangeEnd time.Time) time.Time {
	return dateOnly(rangeEnd).AddDate(0, 0, 1)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
