package times

import (
	"fmt"
	"time"
)

const (
	YearMonthDayLayout = "2006-01-02"
	YearMonthLayout    = "2006-01"
)

const (
	DayDuration = 24 * time.Hour
)

// CurrentDayUTC returns the current day in the UTC time zone.
func CurrentDayUTC() time.Time {
	return time.Now().UTC().Truncate(DayDuration)
}

// DayUTC normalizes a timestamp to its UTC calendar day.
func DayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthStartUTC returns the first day of the timestamp's month in UTC.
func MonthStartUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEndUTC returns the last day of the timestamp's month in UTC.
func MonthEndUTC(t time.Time) time.Time {
	return MonthStartUTC(t).AddDate(0, 1, -1)
}

// ParseYearMonth parses a "YYYY-MM" input into the first day of that month in UTC.
func ParseYearMonth(input string) (time.Time, error) {
	t, err := time.Parse(YearMonthLayout, input)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", input, err)
	}

	return MonthStartUTC(t), nil
}

// SameYearMonth reports whether both timestamps fall in the same UTC calendar month.
func SameYearMonth(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// IsLastDayOfMonthUTC reports whether the timestamp falls on the last day of its month.
func IsLastDayOfMonthUTC(timestamp time.Time) bool {
	day := timestamp.Truncate(DayDuration)
	lockTime := time.Date(day.Year(), day.Month()+1, 1, 0, 0, 0, 0, time.UTC).Add(time.Hour * -24).Add(time.Millisecond * -1)

	return timestamp.After(lockTime)
}
