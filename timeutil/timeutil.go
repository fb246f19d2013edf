// Package timeutil has small date and time helpers shared across the
// trading packages.
package timeutil

import "time"

// AddUTCOffset shifts a UTC time by a market's offset in hours.
// Fractional offsets (e.g. India's +5.5) are supported.
func AddUTCOffset(t time.Time, hours float64) time.Time {
	return t.Add(time.Duration(hours * float64(time.Hour)))
}

// IsValidDate reports whether s is a valid calendar date in
// YYYY-MM-DD form. Empty strings are not valid.
func IsValidDate(s string) bool {
	if s == "" {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
