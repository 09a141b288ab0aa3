package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gms-project/gms-backend/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextAvailableDateAllDays(t *testing.T) {
	start := day(2025, time.June, 2) // Monday
	end := day(2025, time.June, 30)

	next := NextAvailableDate(start, models.FrequencyAllDays, start, end, nil)
	assert.Equal(t, day(2025, time.June, 3), next)
}

func TestNextAvailableDateWeekdaySkipsWeekend(t *testing.T) {
	friday := day(2025, time.June, 6)
	end := day(2025, time.June, 30)

	next := NextAvailableDate(friday, models.FrequencyWeekday, friday, end, nil)
	assert.Equal(t, day(2025, time.June, 9), next, "should skip to Monday")
}

func TestNextAvailableDateWeekendSkipsWeekdays(t *testing.T) {
	sunday := day(2025, time.June, 8)
	end := day(2025, time.June, 30)

	next := NextAvailableDate(sunday, models.FrequencyWeekend, sunday, end, nil)
	assert.Equal(t, day(2025, time.June, 14), next, "should skip to Saturday")
}

func TestNextAvailableDateExhaustionSentinel(t *testing.T) {
	end := day(2025, time.June, 10)
	next := NextAvailableDate(end, models.FrequencyAllDays, day(2025, time.June, 1), end, nil)

	assert.True(t, next.After(end))
	assert.True(t, Exhausted(next, end))
	assert.Equal(t, end.AddDate(0, 0, 1), next)
}

func TestNextAvailableDateCustom(t *testing.T) {
	start := day(2025, time.June, 1)
	end := day(2025, time.June, 30)
	custom := []time.Time{
		day(2025, time.June, 20),
		day(2025, time.June, 5),
		day(2025, time.July, 3), // outside range, ignored
		day(2025, time.June, 12),
	}

	first := NextAvailableDate(start, models.FrequencyCustom, start, end, custom)
	require.Equal(t, day(2025, time.June, 5), first)

	second := NextAvailableDate(first, models.FrequencyCustom, start, end, custom)
	assert.Equal(t, day(2025, time.June, 12), second)

	third := NextAvailableDate(second, models.FrequencyCustom, start, end, custom)
	assert.Equal(t, day(2025, time.June, 20), third)

	exhaustedDate := NextAvailableDate(third, models.FrequencyCustom, start, end, custom)
	assert.True(t, Exhausted(exhaustedDate, end))
}

func TestNextAvailableDateCustomEmptyListExhausts(t *testing.T) {
	start := day(2025, time.June, 1)
	end := day(2025, time.June, 30)

	next := NextAvailableDate(start, models.FrequencyCustom, start, end, nil)
	assert.True(t, Exhausted(next, end))
}
