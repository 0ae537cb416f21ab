package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/date"
	"github.com/etnz/moneytracker/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	period rangeFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "report the totals and transactions of a period" }
func (*summaryCmd) Usage() string {
	return `mt summary [-p <period> | -s <start>] [-d <date>]

  Reports the income, expenses and transactions of a period, the current
  month by default, and where the goals stand.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) { c.period.SetFlags(f, "month") }

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, _, err := c.period.Range()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		v, cur := s.view()
		printMarkdown(renderer.ReportMarkdown(v.Report(r), v.Notes, cur))
		return subcommands.ExitSuccess
	})
}

type yearlyCmd struct {
	year int
}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "review a whole year" }
func (*yearlyCmd) Usage() string {
	return `mt yearly [-y <year>]

  Reviews a year month by month: income, expenses, savings, the dominant
  mood and the first reflections.
`
}

func (c *yearlyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", 0, "Year to review, defaults to the current year.")
}

func (c *yearlyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	year := c.year
	if year == 0 {
		year = today().Year()
	}
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		v, cur := s.view()
		printMarkdown(renderer.YearCloseMarkdown(v.YearClose(year), cur))
		return subcommands.ExitSuccess
	})
}

type trendCmd struct {
	period string
	last   int
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "show income and expenses period after period" }
func (*trendCmd) Usage() string {
	return `mt trend [-p <period>] [-last <n>]

  Shows income, expenses and net for each period with transactions.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Bucket size: day, week, month or year.")
	f.IntVar(&c.last, "last", 12, "Show only the last N periods, 0 for all.")
}

func (c *trendCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		v, cur := s.view()
		points := moneytracker.Trend(v.Snapshot().Transactions, period)
		if c.last > 0 && len(points) > c.last {
			points = points[len(points)-c.last:]
		}
		printMarkdown(renderer.TrendMarkdown(points, cur))
		return subcommands.ExitSuccess
	})
}
