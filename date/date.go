// Package date handles calendar days as timezone-stable keys.
//
// A day is identified by its "YYYY-MM-DD" key in the caller's local
// calendar. Keys are fixed-width and zero-padded so plain string comparison
// orders them chronologically.
package date

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// KeyFormat is the canonical layout of a day key.
const KeyFormat = "2006-01-02"

// MonthFormat is the canonical layout of a month key.
const MonthFormat = "2006-01"

// ErrInvalidDateKey is returned for keys that are not canonical "YYYY-MM-DD" days.
var ErrInvalidDateKey = errors.New("invalid date key")

// Date represents a calendar day with no time of day and no location.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// New returns a normalized Date for the given year, month, and day.
// Overflowing days or months roll over, so New(2024, 1, 32) is February 1st.
func New(year int, month time.Month, day int) Date {
	// Only the calendar fields are normalized here, no instant is involved:
	// UTC has no DST gap that could swallow a midnight.
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{y, m, d}
}

// Today returns the current day in the local calendar.
func Today() Date { return Of(time.Now()) }

// Of returns the calendar day of t, read in t's own location.
func Of(t time.Time) Date { return New(t.Date()) }

// Year returns the year.
func (d Date) Year() int { return d.y }

// Month returns the month.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// ISOWeek returns the ISO 8601 year and week number in which d occurs.
func (d Date) ISOWeek() (year, week int) { return d.Time().ISOWeek() }

// Time returns the local midnight starting that day.
func (d Date) Time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.Local) }

// String returns the day key.
func (d Date) String() string { return fmt.Sprintf("%04d-%02d-%02d", d.y, d.m, d.d) }

// MonthKey returns the "YYYY-MM" key of the month containing d.
func (d Date) MonthKey() string { return fmt.Sprintf("%04d-%02d", d.y, d.m) }

// Add returns the day i days after d (i may be negative).
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// AddMonth returns the same day i months later, normalized.
func (d Date) AddMonth(i int) Date { return New(d.y, d.m+time.Month(i), d.d) }

// Sub returns the number of days from x to d, negative if d is before x.
func (d Date) Sub(x Date) int {
	a := time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
	b := time.Date(x.y, x.m, x.d, 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b).Hours() / 24)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after x.
func (d Date) Compare(x Date) int {
	switch {
	case d.y != x.y:
		return cmpInt(d.y, x.y)
	case d.m != x.m:
		return cmpInt(int(d.m), int(x.m))
	default:
		return cmpInt(d.d, x.d)
	}
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Before reports whether d is before x.
func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }

// After reports whether d is after x.
func (d Date) After(x Date) bool { return d.Compare(x) > 0 }

// daysIn returns the number of days of a month.
func daysIn(year int, month time.Month) int { return New(year, month+1, 0).d }

// Parse parses a canonical day key.
// Unlike New it never normalizes: "2024-02-30" is rejected.
func Parse(key string) (Date, error) {
	if len(key) != len(KeyFormat) || key[4] != '-' || key[7] != '-' {
		return Date{}, fmt.Errorf("%w: %q want format %q", ErrInvalidDateKey, key, KeyFormat)
	}
	y, ok1 := digits(key[0:4])
	m, ok2 := digits(key[5:7])
	d, ok3 := digits(key[8:10])
	if !ok1 || !ok2 || !ok3 {
		return Date{}, fmt.Errorf("%w: %q want format %q", ErrInvalidDateKey, key, KeyFormat)
	}
	if m < 1 || m > 12 {
		return Date{}, fmt.Errorf("%w: %q month out of range", ErrInvalidDateKey, key)
	}
	if d < 1 || d > daysIn(y, time.Month(m)) {
		return Date{}, fmt.Errorf("%w: %q day out of range", ErrInvalidDateKey, key)
	}
	return Date{y, time.Month(m), d}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(key string) Date {
	d, err := Parse(key)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// ParseMonth parses a "YYYY-MM" month key and returns the first day of that month.
func ParseMonth(key string) (Date, error) {
	d, err := Parse(key + "-01")
	if err != nil || len(key) != len(MonthFormat) {
		return Date{}, fmt.Errorf("%w: month %q want format %q", ErrInvalidDateKey, key, MonthFormat)
	}
	return d, nil
}

func digits(s string) (int, bool) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// ToKey returns the day key of t in t's own location.
// t is never converted to UTC, so a late evening stays on its local day.
func ToKey(t time.Time) string { return Of(t).String() }

// FromKey parses key and returns local midnight of that day.
func FromKey(key string) (time.Time, error) {
	d, err := Parse(key)
	if err != nil {
		return time.Time{}, err
	}
	return d.Time(), nil
}

// AddDays returns the key n days after key.
func AddDays(key string, n int) (string, error) {
	d, err := Parse(key)
	if err != nil {
		return "", err
	}
	return d.Add(n).String(), nil
}

// UnmarshalJSON reads a day key. It is strict, as it is meant for data files.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	v, err := Parse(str)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON writes the day key.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
