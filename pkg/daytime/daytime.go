// Package daytime converts between calendar dates and the day-granularity
// instants the core service uses as date keys. A day instant is 00:00:00 UTC
// of a calendar day, transmitted as int64 nanoseconds since the Unix epoch.
package daytime

import "time"

const (
	inputLayout   = "2006-01-02"
	clockLayout   = "15:04"
	displayLayout = "Monday, 2 Jan 2006"
)

// DayStart truncates t to midnight UTC of its UTC calendar day.
// Applying it twice yields the same instant as applying it once.
func DayStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ToNanos returns the day instant for t as wire nanoseconds.
func ToNanos(t time.Time) int64 {
	return DayStart(t).UnixNano()
}

// FromNanos converts wire nanoseconds back to a UTC time.
func FromNanos(ns int64) time.Time {
	return time.Unix(0, ns).UTC()
}

// FormatClock renders an instant as HH:MM for display.
func FormatClock(t time.Time) string {
	return t.UTC().Format(clockLayout)
}

// FormatInput renders a day as YYYY-MM-DD, the form used in query
// parameters and date inputs.
func FormatInput(t time.Time) string {
	return DayStart(t).Format(inputLayout)
}

// ParseInput parses a YYYY-MM-DD string into a day instant.
func ParseInput(s string) (time.Time, error) {
	t, err := time.Parse(inputLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// FormatDisplay renders a day for page headers, e.g. "Monday, 2 Mar 2026".
func FormatDisplay(t time.Time) string {
	return DayStart(t).Format(displayLayout)
}
