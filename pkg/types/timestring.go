package types

import (
	"errors"
	"fmt"
	"time"
)

const timeLayout = "15:04"

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString is returned when a string cannot be parsed as HH:MM
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOverflow is returned when an arithmetic result crosses midnight
	ErrTimeOverflow = errors.New("time overflow past midnight")
)

// TimeString represents a time of day as a zero-padded "HH:MM" string.
// The zero-padded form makes lexicographic comparison equivalent to
// chronological comparison, which IsBefore/IsAfter rely on.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and normalizes an HH:MM string.
// Accepts a missing leading zero ("9:00") and normalizes it to "09:00".
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(parsed.Format(timeLayout)), nil
}

// NewTimeStringFromMinutes creates a TimeString from minutes since midnight
func NewTimeStringFromMinutes(m int) (TimeString, error) {
	if m < 0 || m >= minutesPerDay {
		return "", ErrTimeOverflow
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// Validate checks that the value is a parseable HH:MM string
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the raw HH:MM representation
func (t TimeString) String() string {
	return string(t)
}

// TotalMinutes returns the number of minutes since midnight
func (t TimeString) TotalMinutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Both values must be normalized (zero-padded), which the constructors guarantee.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes returns a new TimeString shifted forward by m minutes.
// Returns ErrTimeOverflow if the result would cross midnight.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.TotalMinutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(total + m)
}

// OnDate anchors the time of day to a concrete calendar date in date's location
func (t TimeString) OnDate(date time.Time) (time.Time, error) {
	total, err := t.TotalMinutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), total/60, total%60, 0, 0, date.Location()), nil
}
