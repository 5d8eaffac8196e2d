package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString represents a wall-clock time of day in canonical "HH:MM" form.
// All times in the system are naive local values: no timezone model exists,
// and none is implied. Stored and transferred as a plain string.
type TimeString string

const minutesPerDay = 24 * 60

// ErrInvalidTimeString is returned by strict parsing for malformed input
var ErrInvalidTimeString = errors.New("types: invalid time string format")

// NewTimeString creates a TimeString from the wall-clock components of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromMinutes creates a TimeString from minutes since midnight,
// wrapping at 24 hours
func NewTimeStringFromMinutes(m int) TimeString {
	m %= minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

// NewTimeStringFromString parses "HH:MM" (a single-digit hour is accepted and
// normalized). Returns ErrInvalidTimeString for anything else. This is the
// strict constructor: service-internal data must go through it.
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// ParseTimeLenient is the compatibility shim for ragged legacy input
// ("9:0", "09:00:00", trailing garbage in the minute group). It never fails:
// unrecoverable input degrades to "00:00". Use it only at collaborator
// boundaries; everything inside the service goes through the strict
// constructor.
func ParseTimeLenient(raw string) TimeString {
	parts := strings.Split(raw, ":")

	hour := 0
	if len(parts) > 0 {
		if h, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil && h >= 0 && h <= 23 {
			hour = h
		}
	}

	minute := 0
	if len(parts) > 1 {
		// Seconds and any further groups are discarded; non-digit characters
		// in the minute group are stripped before parsing.
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, parts[1])
		if m, err := strconv.Atoi(digits); err == nil && m >= 0 && m <= 59 {
			minute = m
		}
	}

	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute))
}

// Validate checks that the value is a canonical "HH:MM" time
func (t TimeString) Validate() error {
	normalized, err := NewTimeStringFromString(string(t))
	if err != nil {
		return err
	}
	if normalized != t {
		return fmt.Errorf("%w: %q is not canonical", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero returns true for the empty value
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the canonical "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns minutes since midnight. A malformed value yields 0.
func (t TimeString) Minutes() int {
	normalized, err := NewTimeStringFromString(string(t))
	if err != nil {
		return 0
	}
	hour, _ := strconv.Atoi(string(normalized)[:2])
	minute, _ := strconv.Atoi(string(normalized)[3:])
	return hour*60 + minute
}

// Compare returns -1, 0 or 1 ordering by minutes since midnight
func (t TimeString) Compare(other TimeString) int {
	a, b := t.Minutes(), other.Minutes()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IsBefore returns true if t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Compare(other) < 0
}

// IsAfter returns true if t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Compare(other) > 0
}

// AddMinutes returns the time m minutes later, wrapping at 24 hours.
// Day wrap detection is the caller's concern; schedules in this system never
// cross midnight.
func (t TimeString) AddMinutes(m int) TimeString {
	return NewTimeStringFromMinutes(t.Minutes() + m)
}
