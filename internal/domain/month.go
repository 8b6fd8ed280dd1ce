package domain

import (
	"fmt"
	"time"
)

// monthLayout is the YYYY-MM month-key format used for grouping and
// lookups throughout the aggregate.
const monthLayout = "2006-01"

// MonthKey identifies a calendar month as a YYYY-MM string.
type MonthKey string

// Time parses the key as the first day of its month.
func (m MonthKey) Time() (time.Time, error) {
	t, err := time.Parse(monthLayout, string(m))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q: %w", m, err)
	}
	return t, nil
}

// Valid reports whether the key is a well-formed YYYY-MM string.
func (m MonthKey) Valid() bool {
	_, err := m.Time()
	return err == nil
}

// FirstDay returns the YYYY-MM-DD date string for the first day of the
// month, the date assigned to materialized recurring expenses.
func (m MonthKey) FirstDay() string {
	return string(m) + "-01"
}

// NotAfter reports whether m falls on or before other in calendar
// order. Both keys are parsed as the first day of their month before
// comparing, so malformed keys never slip through on a lucky string
// ordering; a malformed key compares as never-started.
func (m MonthKey) NotAfter(other MonthKey) bool {
	a, err := m.Time()
	if err != nil {
		return false
	}
	b, err := other.Time()
	if err != nil {
		return false
	}
	return !a.After(b)
}

// MonthOf returns the month key for a point in time.
func MonthOf(t time.Time) MonthKey {
	return MonthKey(t.Format(monthLayout))
}
