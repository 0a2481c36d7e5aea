package finder

import (
	"fmt"
	"time"
)

// DateLayout is the only accepted textual form of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar date. Two dates are equal when year, month and day match.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses s as YYYY-MM-DD. Out-of-range months or days are rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w %q: use YYYY-MM-DD", ErrInvalidDate, s)
	}
	return DateIn(t, time.UTC), nil
}

// Today returns the current local calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// DateOf returns the local calendar date of t.
func DateOf(t time.Time) Date {
	return DateIn(t, time.Local)
}

// DateIn returns the calendar date of t as observed in loc.
func DateIn(t time.Time, loc *time.Location) Date {
	y, m, d := t.In(loc).Date()
	return Date{Year: y, Month: m, Day: d}
}

// ModDate extracts the local calendar date from a modification time.
// A zero time means the timestamp could not be read and reports false.
func ModDate(modTime time.Time) (Date, bool) {
	if modTime.IsZero() {
		return Date{}, false
	}
	return DateOf(modTime), true
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
