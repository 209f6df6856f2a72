package scanner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReminderWindow_CoversWholeOfTomorrow(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 30, 45, 0, time.UTC)

	window := ReminderWindow(now)

	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2025, 3, 16, 23, 59, 59, int(999*time.Millisecond), time.UTC), window.End)
}

func TestReminderWindow_MonthRollover(t *testing.T) {
	now := time.Date(2025, 1, 31, 9, 0, 0, 0, time.UTC)

	window := ReminderWindow(now)

	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.February, window.End.Month())
	assert.Equal(t, 1, window.End.Day())
}

func TestOverdueWindow_EndsAtStartOfToday(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 30, 45, 0, time.UTC)

	window := OverdueWindow(now)

	assert.Equal(t, time.Unix(0, 0), window.Start)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), window.End)
}

func TestOverdueWindow_ExcludesTasksDueLaterToday(t *testing.T) {
	now := time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)
	dueThisEvening := time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)

	window := OverdueWindow(now)

	assert.True(t, dueThisEvening.After(window.End))
}
