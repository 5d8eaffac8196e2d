package types

import (
	"fmt"
	"time"
)

// DateFormat is the canonical wire format for calendar dates
const DateFormat = "2006-01-02"

// timestampLayouts are the accepted shapes for DateFromTimestamp, tried in
// order. Layouts without a zone are interpreted as local time.
var timestampLayouts = []string{
	DateFormat,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// DateOnly truncates t to midnight, preserving the location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay returns true if both values fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateFromTimestamp derives the local calendar date from a date or timestamp
// string. A zone-aware timestamp is first converted to local time, and the
// date is taken from the resulting wall-clock components. The date is never
// derived by slicing the string: near midnight that silently shifts the day
// for any input whose offset differs from local.
func DateFromTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, raw, time.Local)
		if err != nil {
			continue
		}
		return DateOnly(t.Local()), nil
	}
	return time.Time{}, fmt.Errorf("types: unsupported date format: %q", raw)
}
