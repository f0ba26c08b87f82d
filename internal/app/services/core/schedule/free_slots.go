package schedule

import (
	"slices"
)

// CalculateFreeSlots returns the gaps inside window not covered by occupied,
// in chronological order. The input slice is left untouched and the result is
// never nil.
func CalculateFreeSlots(window WorkdayWindow, occupied []TimeInterval) []TimeInterval {
	sorted := slices.Clone(occupied)
	slices.SortStableFunc(sorted, func(a, b TimeInterval) int {
		return a.Start.Compare(b.Start)
	})

	free := make([]TimeInterval, 0, len(sorted)+1)
	cursor := window.Start
	for _, slot := range sorted {
		// zero-length slots occupy nothing
		if !slot.End.After(slot.Start) {
			continue
		}

		gapEnd := slot.Start
		if gapEnd.After(window.End) {
			gapEnd = window.End
		}
		if cursor.Before(gapEnd) {
			free = append(free, TimeInterval{Start: cursor, End: gapEnd})
		}
		if slot.End.After(cursor) {
			cursor = slot.End
		}
	}

	if cursor.Before(window.End) {
		free = append(free, TimeInterval{Start: cursor, End: window.End})
	}

	return free
}
