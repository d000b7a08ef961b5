package utils

import "time"

// DayStart returns midnight of t's local calendar date.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayEnd returns the first instant of the next day. Ranges are [start, end).
func DayEnd(t time.Time) time.Time {
	return DayStart(t).AddDate(0, 0, 1)
}

// SameDay reports whether a and b fall on the same local calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
