package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/renderer"
	"github.com/google/subcommands"
)

type budgetCmd struct {
	plan   string
	income string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "split an income into needs, wants and savings" }
func (*budgetCmd) Usage() string {
	return `mt budget [-plan <balanced|conservative|aggressive>] [-income <amount>]

  Distributes an income according to a budget plan, every plan when none is
  given. The income defaults to the income of the selected month.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.plan, "plan", "", "Budget plan, every plan by default.")
	f.StringVar(&c.income, "income", "", "Income to distribute.")
}

func (c *budgetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plans := moneytracker.Plans
	if c.plan != "" {
		p, err := moneytracker.ParsePlan(c.plan)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		plans = []moneytracker.Plan{p}
	}
	var income moneytracker.Amount
	if c.income != "" {
		var err error
		if income, err = moneytracker.ParseAmount(c.income); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		v, cur := s.view()
		if c.income == "" {
			mv, err := v.SelectedMonth()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			income = mv.Summary.Income
		}
		var b strings.Builder
		for _, p := range plans {
			b.WriteString(renderer.BudgetMarkdown(p.Distribute(income), cur))
		}
		printMarkdown(b.String())
		return subcommands.ExitSuccess
	})
}
