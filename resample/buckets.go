package resample

import (
	"fmt"
	"strings"
	"time"
)

// Granularity selects the calendar bucket size for resampling.
type Granularity string

const (
	Week    Granularity = "Week"
	Month   Granularity = "Month"
	Quarter Granularity = "Quarter"
	Year    Granularity = "Year"
)

// All returns the supported granularities in ascending bucket size.
func All() []Granularity {
	return []Granularity{Week, Month, Quarter, Year}
}

// Parse matches a granularity name case-insensitively.
func Parse(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "week", "weekly":
		return Week, nil
	case "month", "monthly":
		return Month, nil
	case "quarter", "quarterly":
		return Quarter, nil
	case "year", "annual", "yearly":
		return Year, nil
	}
	return "", fmt.Errorf("unsupported granularity %q", s)
}

// BucketEnd returns the end date of the bucket containing d: the following
// Sunday for weeks (d itself when d is a Sunday), otherwise the last day of
// the calendar month, quarter or year.
func BucketEnd(d time.Time, g Granularity) time.Time {
	d = midnightUTC(d)
	switch g {
	case Week:
		return d.AddDate(0, 0, (7-int(d.Weekday()))%7)
	case Month:
		return monthEnd(d.Year(), d.Month())
	case Quarter:
		q := (int(d.Month())-1)/3*3 + 3
		return monthEnd(d.Year(), time.Month(q))
	case Year:
		return time.Date(d.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	}
	return d
}

func monthEnd(year int, month time.Month) time.Time {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}

func midnightUTC(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
