// Package dates holds the small calendar helpers used across the app.
// Dates are passed around as YYYY-MM-DD strings everywhere.
package dates

import "time"

const ISO = "2006-01-02"

// ToISO formats a time as a date-only ISO string.
func ToISO(t time.Time) string {
	return t.Format(ISO)
}

// AddDays shifts an ISO date by the given number of days. An unparseable
// input is returned unchanged.
func AddDays(date string, days int) string {
	d, err := time.Parse(ISO, date)
	if err != nil {
		return date
	}
	return d.AddDate(0, 0, days).Format(ISO)
}

// EachDayBetween enumerates every date from start to end inclusive, in
// ascending order. Returns an empty slice when start is after end or either
// date is unparseable.
func EachDayBetween(start, end string) []string {
	s, err := time.Parse(ISO, start)
	if err != nil {
		return []string{}
	}
	e, err := time.Parse(ISO, end)
	if err != nil {
		return []string{}
	}

	result := []string{}
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		result = append(result, d.Format(ISO))
	}
	return result
}

// Min returns the earlier of two ISO dates. ISO dates sort lexicographically,
// so a plain string comparison is enough.
func Min(a, b string) string {
	if a <= b {
		return a
	}
	return b
}

// WeekStart returns the Monday of the week containing the given date. Used as
// the upsert key for weekly reflections.
func WeekStart(date string) string {
	d, err := time.Parse(ISO, date)
	if err != nil {
		return date
	}
	// time.Weekday is Sunday-based; shift so Monday is day 0.
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset).Format(ISO)
}
