package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/moneytracker/date"
	"github.com/etnz/moneytracker/renderer"
	"github.com/google/subcommands"
)

type monthCmd struct{}

func (*monthCmd) Name() string     { return "month" }
func (*monthCmd) Synopsis() string { return "show the calendar of a month" }
func (*monthCmd) Usage() string {
	return `mt month [<YYYY-MM>]

  Shows the totals, categories and daily balances of a month, the selected
  month by default (see 'mt select').
`
}

func (*monthCmd) SetFlags(f *flag.FlagSet) {}

func (*monthCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		v, cur := s.view()
		key := v.Snapshot().SelectedMonth
		if f.NArg() > 0 {
			key = f.Arg(0)
		}
		mv, err := v.Month(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		printMarkdown(renderer.MonthMarkdown(mv, v.Notes, cur))
		return subcommands.ExitSuccess
	})
}

type balanceCmd struct {
	date string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "print the balance at the end of a day" }
func (*balanceCmd) Usage() string {
	return `mt balance [-d <date>]

  Prints the accumulated balance, all income minus all expenses, up to and
  including the day.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day of the balance, defaults to today.")
}

func (c *balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		v, cur := s.view()
		fmt.Fprintf(stdout, "%s %s\n", on, v.Balance(on).Format(cur))
		return subcommands.ExitSuccess
	})
}

type monthsCmd struct{}

func (*monthsCmd) Name() string     { return "months" }
func (*monthsCmd) Synopsis() string { return "list the months with transactions" }
func (*monthsCmd) Usage() string {
	return `mt months

  Lists the months with at least one transaction, most recent first. The
  selected month is marked with a star.
`
}

func (*monthsCmd) SetFlags(f *flag.FlagSet) {}

func (*monthsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		v, _ := s.view()
		selected := v.Snapshot().SelectedMonth
		for _, m := range v.Months() {
			mark := " "
			if m == selected {
				mark = "*"
			}
			fmt.Fprintf(stdout, "%s %s\n", mark, m)
		}
		return subcommands.ExitSuccess
	})
}

type selectCmd struct{}

func (*selectCmd) Name() string     { return "select" }
func (*selectCmd) Synopsis() string { return "select the month shown by default" }
func (*selectCmd) Usage() string {
	return `mt select <YYYY-MM | next | prev | today>

  Selects the month used by 'mt month' and 'mt budget'.
`
}

func (*selectCmd) SetFlags(f *flag.FlagSet) {}

func (*selectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: select takes a single month.")
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		key := f.Arg(0)
		current, err := date.ParseMonth(s.Snapshot().SelectedMonth)
		if err != nil {
			current = today()
		}
		switch strings.ToLower(key) {
		case "next":
			key = current.AddMonth(1).MonthKey()
		case "prev":
			key = current.AddMonth(-1).MonthKey()
		case "today":
			key = today().MonthKey()
		}
		if err := s.SelectMonth(key); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		fmt.Fprintf(stdout, "Selected %s\n", key)
		return s.persisted()
	})
}
