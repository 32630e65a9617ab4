package validator

import (
	"time"
	"unicode/utf8"
)

func EventTitle(title string) bool {
	return utf8.RuneCountInString(title) >= 3 && utf8.RuneCountInString(title) <= 80
}

func EventDescription(description string) bool {
	return utf8.RuneCountInString(description) <= 500
}

// EventWindow requires the event to end after it starts.
func EventWindow(start, end time.Time) bool {
	return end.After(start)
}

func MaxAttendees(maxAttendees int) bool {
	return maxAttendees >= 0
}

// RefundCutoff must fall before the event starts when set.
func RefundCutoff(cutoff *time.Time, start time.Time) bool {
	return cutoff == nil || cutoff.Before(start)
}
