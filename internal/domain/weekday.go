package domain

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is the single day-of-week representation used across the service,
// Monday-first (Monday=0 .. Sunday=6). Collaborators speak two other dialects:
// Go's time.Weekday is Sunday-first, and the legacy front-desk client sends
// both day names and Sunday-first indexes. All of them are converted to this
// type at the boundary; no other numbering is carried through the core.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// String returns the full English day name
func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Valid returns true for Monday..Sunday
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// InRange reports whether d falls within [from, to] treated as a circular
// range over the week. A range like Friday..Monday wraps across the week
// boundary and covers Friday, Saturday, Sunday and Monday.
func (d Weekday) InRange(from, to Weekday) bool {
	if !d.Valid() || !from.Valid() || !to.Valid() {
		return false
	}
	if from <= to {
		return d >= from && d <= to
	}
	return d >= from || d <= to
}

// WeekdayFromTime converts Go's Sunday-first time.Weekday
func WeekdayFromTime(wd time.Weekday) Weekday {
	// time.Sunday is 0; shift so Monday becomes 0
	return Weekday((int(wd) + 6) % 7)
}

// WeekdayOfDate returns the Weekday of a calendar date
func WeekdayOfDate(date time.Time) Weekday {
	return WeekdayFromTime(date.Weekday())
}

// ParseWeekday parses a day name ("Mon", "monday") into a Weekday
func ParseWeekday(s string) (Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, full := range weekdayNames {
		lower := strings.ToLower(full)
		if name == lower || (len(name) == 3 && name == lower[:3]) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("domain: unknown weekday name %q", s)
}
