package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/renderer"
	"github.com/google/subcommands"
)

type categoriesCmd struct {
	period rangeFlags
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "show the totals per category" }
func (*categoriesCmd) Usage() string {
	return `mt categories [-p <period> | -s <start>] [-d <date>]

  Shows income, expense and net per category, for all time unless a period
  is selected.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) { c.period.SetFlags(f, "") }

func (c *categoriesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, all, err := c.period.Range()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		v, cur := s.view()
		records := v.Snapshot().Transactions
		if !all {
			records = moneytracker.FilterRange(records, r)
		}
		printMarkdown(renderer.CategoriesMarkdown(v.Breakdown(records), cur))
		return subcommands.ExitSuccess
	})
}

type categoryCmd struct {
	color  string
	remove bool
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "define or remove a category color" }
func (*categoryCmd) Usage() string {
	return `mt category [-color <#rrggbb>] [-rm] <name>

  Defines a category and its display color, or removes its definition.
  Categories without a color take one from the default palette.
`
}

func (c *categoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.color, "color", "", "Display color, #rrggbb.")
	f.BoolVar(&c.remove, "rm", false, "Remove the category definition.")
}

func (c *categoryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: category takes a single name, quote it if it has spaces.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)
	if c.remove {
		return withStore(ctx, func(s *session) subcommands.ExitStatus {
			if err := s.DeleteCategory(name); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			return s.persisted()
		})
	}
	cat, err := moneytracker.NewCategory(name, c.color)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		if err := s.PutCategory(cat); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return s.persisted()
	})
}
