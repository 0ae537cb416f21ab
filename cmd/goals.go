package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/date"
	"github.com/etnz/moneytracker/renderer"
	"github.com/google/subcommands"
)

type goalCmd struct {
	emoji    string
	currency string
	deadline string
	favorite bool
	initial  string
	remove   bool
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "create or delete a savings goal" }
func (*goalCmd) Usage() string {
	return `mt goal [-emoji <e>] [-currency <code>] [-deadline <date>] [-favorite] [-initial <amount>] <target> <title>...
mt goal -rm <id>

  Creates a savings goal, or deletes one with -rm.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.emoji, "emoji", "", "Emoji shown with the goal, "+moneytracker.DefaultGoalEmoji+" by default.")
	f.StringVar(&c.currency, "currency", "", "ISO 4217 currency of the goal, the display currency by default.")
	f.StringVar(&c.deadline, "deadline", "", "Day the goal should be reached by.")
	f.BoolVar(&c.favorite, "favorite", false, "Mark the goal as a favorite.")
	f.StringVar(&c.initial, "initial", "", "Amount already saved, recorded as a first contribution.")
	f.BoolVar(&c.remove, "rm", false, "Delete the goal with the given id.")
}

func (c *goalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.remove {
		if f.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "Error: goal -rm takes a single id.")
			return subcommands.ExitUsageError
		}
		return withStore(ctx, func(s *session) subcommands.ExitStatus {
			if err := s.DeleteGoal(f.Arg(0)); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			return s.persisted()
		})
	}

	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: goal takes a target amount and a title.")
		return subcommands.ExitUsageError
	}
	target, err := moneytracker.ParseAmount(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	opts := moneytracker.GoalOptions{Emoji: c.emoji, Favorite: c.favorite, On: today()}
	if c.deadline != "" {
		if opts.Deadline, err = parseDay(c.deadline); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing deadline: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.initial != "" {
		if opts.Initial, err = moneytracker.ParseAmount(c.initial); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		opts.Currency = c.currency
		if opts.Currency == "" {
			_, opts.Currency = s.view()
		}
		g, err := moneytracker.NewGoal(strings.Join(f.Args()[1:], " "), target, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := s.AddGoal(g); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "%s %s, %s to save [%s]\n", g.Emoji, g.Title, g.Target.Format(g.Currency), g.ID[:8])
		return s.persisted()
	})
}

type contributeCmd struct {
	date string
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "add money to a goal" }
func (*contributeCmd) Usage() string {
	return `mt contribute [-d <date>] <id> <amount>

  Records a contribution to a goal.
`
}

func (c *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day of the contribution, defaults to today.")
}

func (c *contributeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: contribute takes a goal id and an amount.")
		return subcommands.ExitUsageError
	}
	amount, err := moneytracker.ParseAmount(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var on date.Date
	if c.date != "" {
		if on, err = parseDay(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		g, err := s.Contribute(f.Arg(0), amount, on)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "%s %s: %s of %s (%d%%)\n", g.Emoji, g.Title, g.Saved.Format(g.Currency), g.Target.Format(g.Currency), moneytracker.GoalProgress(g))
		if g.Reached() && !g.Completed {
			fmt.Fprintf(stdout, "Target reached! Mark it done with 'mt complete %s'.\n", g.ID[:8])
		}
		return s.persisted()
	})
}

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "show the savings goals" }
func (*goalsCmd) Usage() string {
	return `mt goals

  Shows the highlighted goals, the favorites or else the closest deadlines,
  then every goal.
`
}

func (*goalsCmd) SetFlags(f *flag.FlagSet) {}

func (*goalsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		v, cur := s.view()
		printMarkdown(renderer.GoalsMarkdown(v.GoalsOverview(), cur))
		return subcommands.ExitSuccess
	})
}

// toggleCmd flips a boolean attribute of a goal.
type toggleCmd struct {
	name, synopsis, what string
	toggle               func(s *session, id string) (moneytracker.Goal, error)
	state                func(g moneytracker.Goal) bool
}

func (c *toggleCmd) Name() string     { return c.name }
func (c *toggleCmd) Synopsis() string { return c.synopsis }
func (c *toggleCmd) Usage() string {
	return fmt.Sprintf("mt %s <id>\n\n  Toggles whether a goal is %s.\n", c.name, c.what)
}

func (*toggleCmd) SetFlags(f *flag.FlagSet) {}

func (c *toggleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: %s takes a single goal id.\n", c.name)
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		g, err := c.toggle(s, f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		not := ""
		if !c.state(g) {
			not = "not "
		}
		fmt.Fprintf(stdout, "%s %s is %s%s\n", g.Emoji, g.Title, not, c.what)
		return s.persisted()
	})
}

func newCompleteCmd() *toggleCmd {
	return &toggleCmd{
		name: "complete", synopsis: "mark a goal as done, or not", what: "completed",
		toggle: func(s *session, id string) (moneytracker.Goal, error) { return s.ToggleGoalCompleted(id) },
		state:  func(g moneytracker.Goal) bool { return g.Completed },
	}
}

func newFavoriteCmd() *toggleCmd {
	return &toggleCmd{
		name: "favorite", synopsis: "mark a goal as a favorite, or not", what: "a favorite",
		toggle: func(s *session, id string) (moneytracker.Goal, error) { return s.ToggleGoalFavorite(id) },
		state:  func(g moneytracker.Goal) bool { return g.Favorite },
	}
}
