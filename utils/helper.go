package utils

import "time"

// WeekStart returns the Monday of the week containing t, truncated to a date.
func WeekStart(t time.Time) time.Time {
	day := t
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset = 6 // Sunday
	}
	day = day.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}

func DereferencePtr[T any](ptr *T, def T) T {
	if ptr == nil {
		return def
	}
	return *ptr
}
