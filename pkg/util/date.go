package util

import (
	"fmt"
	"time"
)

// ISODate is the calendar-day layout used by the HTTP API.
const ISODate = "2006-01-02"

// ParseISODate parses a YYYY-MM-DD date. Returns (t, true) on success.
func ParseISODate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ResolveRange resolves an optional explicit date range against now.
// If both bounds are supplied they are used literally; if either is
// missing the range defaults to windowDays ending yesterday. Supplying
// both bounds with a malformed date is an error.
func ResolveRange(startStr, endStr string, now time.Time, windowDays int) (time.Time, time.Time, error) {
	if startStr == "" || endStr == "" {
		end := now.AddDate(0, 0, -1)
		start := end.AddDate(0, 0, -windowDays)
		return start, end, nil
	}

	start, ok := ParseISODate(startStr)
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date %q: want YYYY-MM-DD", startStr)
	}
	end, ok := ParseISODate(endStr)
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date %q: want YYYY-MM-DD", endStr)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date %s before start_date %s", endStr, startStr)
	}
	return start, end, nil
}
