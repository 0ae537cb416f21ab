package date

import (
	"fmt"
	"time"
)

// Range is an inclusive range of days.
type Range struct{ From, To Date }

// NewRange returns the standard period containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// MonthRange returns the range of a "YYYY-MM" month key.
func MonthRange(key string) (Range, error) {
	first, err := ParseMonth(key)
	if err != nil {
		return Range{}, err
	}
	return NewRange(first, Monthly), nil
}

// YearRange returns the range covering a whole year.
func YearRange(year int) Range {
	return NewRange(New(year, time.January, 1), Yearly)
}

// Contains reports whether day is within the range, boundaries included.
func (r Range) Contains(day Date) bool { return !day.Before(r.From) && !day.After(r.To) }

// Period returns the period of this range if it is a standard one.
func (r Range) Period() (p Period, ok bool) {
	switch {
	case r.From == r.To:
		return Daily, true
	case r.From.Weekday() == time.Monday && r.From.EndOf(Weekly) == r.To:
		return Weekly, true
	case r.From.Day() == 1 && r.From.EndOf(Monthly) == r.To:
		return Monthly, true
	case r.From.StartOf(Yearly) == r.From && r.From.EndOf(Yearly) == r.To:
		return Yearly, true
	default:
		return Daily, false
	}
}

// Identifier returns a short unique name for the range: a day key, "2025-W02",
// a month key, a year, or "from_to" for non standard ranges.
func (r Range) Identifier() string {
	p, ok := r.Period()
	if !ok {
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
	switch p {
	case Daily:
		return r.From.String()
	case Weekly:
		year, week := r.From.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case Monthly:
		return r.From.MonthKey()
	default:
		return fmt.Sprintf("%04d", r.From.Year())
	}
}

func (r Range) String() string { return r.Identifier() }
