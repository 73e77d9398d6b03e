// Package calendar works with zone-less calendar days in the YYYY-MM-DD form
// used for habit entries and streak bookkeeping.
package calendar

import (
	"fmt"
	"time"
)

const Layout = "2006-01-02"

type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Parse reads a YYYY-MM-DD string. Out of range days are rejected.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing calendar date %q: %w", s, err)
	}
	return Of(t), nil
}

// Of returns the calendar day of t in t's own location.
func Of(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the calendar day of now as seen in loc. A nil loc means UTC.
func Today(now time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return Of(now.In(loc))
}

func (d Date) AddDays(n int) Date {
	// Noon UTC keeps the arithmetic clear of any DST edge.
	t := time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
	return Of(t.AddDate(0, 0, n))
}

func (d Date) Yesterday() Date {
	return d.AddDays(-1)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
