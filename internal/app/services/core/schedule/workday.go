package schedule

import "time"

// NextWorkday returns midnight UTC of the first Monday-to-Friday date strictly
// after the UTC date of t.
func NextWorkday(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	next := time.Date(year, month, day+1, 0, 0, 0, 0, time.UTC)
	for isWeekend(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func isWeekend(t time.Time) bool {
	weekday := t.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// DayStart truncates t to midnight of its UTC calendar date.
func DayStart(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
