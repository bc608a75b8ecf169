// Package report is the violation reporting and aggregation core. It is
// pure computation over rows supplied by a Source: a period resolver, a
// filter compiler, three aggregate derivations and two export renderers.
// Nothing in this package writes anywhere or keeps state between calls.
package report

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPeriod marks a malformed year/month pair. Callers get it
// before any store access happens.
var ErrInvalidPeriod = errors.New("invalid report period")

// Period is an inclusive UTC calendar-month window: Start is the first
// instant of the month, End is one second before the next month begins.
type Period struct {
	Start time.Time
	End   time.Time
}

// ResolvePeriod builds the window for (year, month). Month outside 1..12
// or a non-positive year is rejected rather than producing a wrapped or
// empty range.
func ResolvePeriod(year, month int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month %d out of range", ErrInvalidPeriod, month)
	}
	if year < 1 {
		return Period{}, fmt.Errorf("%w: year %d out of range", ErrInvalidPeriod, year)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return Period{Start: start, End: end}, nil
}

// Label formats the period as "YYYY-MM".
func (p Period) Label() string {
	return p.Start.Format("2006-01")
}

// Contains reports whether t falls inside the window, boundaries included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}
