// Package schedule holds the display ordering for weekly timetable slots.
// Ordering is a derived view and is never written back to storage.
package schedule

import (
	"sort"

	"github.com/campushub/campus-hub/internal/models"
)

var days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayIndex returns the Monday-first position of a day name, or len(days)
// for anything unrecognized so malformed slots sort last.
func DayIndex(day string) int {
	for i, d := range days {
		if d == day {
			return i
		}
	}
	return len(days)
}

// ValidDay reports whether day names one of the seven weekdays.
func ValidDay(day string) bool {
	return DayIndex(day) < len(days)
}

// Sorted returns a copy of slots ordered by day (Monday first), then start
// time. The sort is stable, so equal slots keep their stored order.
func Sorted(slots []models.Slot) []models.Slot {
	out := make([]models.Slot, len(slots))
	copy(out, slots)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := DayIndex(out[i].Day), DayIndex(out[j].Day)
		if di != dj {
			return di < dj
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// RemoveAt drops the slot at position i, preserving the relative order of
// the rest. Out-of-range positions return the input unchanged.
func RemoveAt(slots []models.Slot, i int) []models.Slot {
	if i < 0 || i >= len(slots) {
		return slots
	}
	out := make([]models.Slot, 0, len(slots)-1)
	out = append(out, slots[:i]...)
	return append(out, slots[i+1:]...)
}
