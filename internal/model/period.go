package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// WeekID returns the ISO week identifier for t, e.g. "2025-W43".
func WeekID(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// MonthID returns the month identifier for t, e.g. "2025-10".
func MonthID(t time.Time) string {
	return t.Format("2006-01")
}

// PeriodID returns the identifier of the period of the given kind containing t.
func PeriodID(kind string, t time.Time) string {
	if kind == PeriodMonthly {
		return MonthID(t)
	}
	return WeekID(t)
}

// IsWeekID reports whether id uses the ISO week format (YYYY-Www).
func IsWeekID(id string) bool {
	return strings.Contains(id, "-W")
}

// WeekStart returns the Monday that begins the ISO week id, in UTC.
func WeekStart(weekID string) (time.Time, error) {
	var year, week int
	n, err := fmt.Sscanf(weekID, "%d-W%d", &year, &week)
	if err != nil || n != 2 || week < 1 || week > 53 {
		return time.Time{}, fmt.Errorf("invalid week id %q", weekID)
	}

	// January 4th always falls inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -((int(jan4.Weekday()) + 6) % 7))
	return monday.AddDate(0, 0, (week-1)*7), nil
}

// MonthStart returns the first instant of the month id, in UTC.
func MonthStart(monthID string) (time.Time, error) {
	t, err := time.Parse("2006-01", monthID)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month id %q", monthID)
	}
	return t, nil
}

// PeriodBounds returns the start (inclusive) and end (exclusive) of a period id.
func PeriodBounds(id string) (time.Time, time.Time, error) {
	if IsWeekID(id) {
		start, err := WeekStart(id)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return start, start.AddDate(0, 0, 7), nil
	}

	start, err := MonthStart(id)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 1, 0), nil
}

// PeriodsBetween returns the number of whole periods from id "from" to id "to".
// The result is negative when "to" precedes "from". Both ids must share a kind.
func PeriodsBetween(from, to string) (int, error) {
	if IsWeekID(from) != IsWeekID(to) {
		return 0, fmt.Errorf("mismatched period kinds %q and %q", from, to)
	}

	if IsWeekID(from) {
		a, err := WeekStart(from)
		if err != nil {
			return 0, err
		}
		b, err := WeekStart(to)
		if err != nil {
			return 0, err
		}
		return int(b.Sub(a).Hours() / (24 * 7)), nil
	}

	a, err := MonthStart(from)
	if err != nil {
		return 0, err
	}
	b, err := MonthStart(to)
	if err != nil {
		return 0, err
	}
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month()), nil
}
