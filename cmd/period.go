package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/moneytracker/date"
)

// rangeFlags selects a range of days from the command line: a standard
// period containing a day, or an explicit start up to a day.
type rangeFlags struct {
	period string
	start  string
	date   string
}

// SetFlags declares -p, -s and -d. def is the default period, "" for all
// time.
func (r *rangeFlags) SetFlags(f *flag.FlagSet, def string) {
	f.StringVar(&r.period, "p", def, "Period containing the date: day, week, month or year.")
	f.StringVar(&r.start, "s", "", "Start date of a custom range. Overrides -p.")
	f.StringVar(&r.date, "d", "", "Date in the period, or end of the custom range. Defaults to today.")
}

// Range returns the selected range. all is true when nothing was selected.
func (r *rangeFlags) Range() (rng date.Range, all bool, err error) {
	if r.period == "" && r.start == "" && r.date == "" {
		return date.Range{}, true, nil
	}
	end, err := parseDay(r.date)
	if err != nil {
		return date.Range{}, false, fmt.Errorf("parsing date: %w", err)
	}
	if r.start != "" {
		start, err := parseDay(r.start)
		if err != nil {
			return date.Range{}, false, fmt.Errorf("parsing start date: %w", err)
		}
		if start.After(end) {
			return date.Range{}, false, fmt.Errorf("start date %s is after %s", start, end)
		}
		return date.Range{From: start, To: end}, false, nil
	}
	name := r.period
	if name == "" {
		name = "month"
	}
	period, err := date.ParsePeriod(name)
	if err != nil {
		return date.Range{}, false, err
	}
	return date.NewRange(end, period), false, nil
}
