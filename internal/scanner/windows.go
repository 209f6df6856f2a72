package scanner

import (
	"time"

	"github.com/markwayne24/todo-app/internal/entity"
)

// ReminderWindow covers the full calendar day after "today" in the server's
// timezone, both boundaries inclusive.
func ReminderWindow(now time.Time) entity.DateRange {
	tomorrow := now.AddDate(0, 0, 1)
	return entity.DateRange{
		Start: startOfDay(tomorrow),
		End:   endOfDay(tomorrow),
	}
}

// OverdueWindow covers everything from the epoch up to the start of today.
func OverdueWindow(now time.Time) entity.DateRange {
	return entity.DateRange{
		Start: time.Unix(0, 0),
		End:   startOfDay(now),
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}
