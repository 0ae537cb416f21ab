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

type reflectCmd struct {
	mood   string
	remove bool
}

func (*reflectCmd) Name() string     { return "reflect" }
func (*reflectCmd) Synopsis() string { return "write a reflection in the journal" }
func (*reflectCmd) Usage() string {
	return `mt reflect [-mood <mood>] <text>...
mt reflect -rm <id>

  Writes a dated reflection, optionally with a mood, or deletes one with -rm.
  Moods: Happy, Sad, Angry, Relaxed, Anxious, Motivated, Creative, Tired.
`
}

func (c *reflectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mood, "mood", "", "Mood of the moment.")
	f.BoolVar(&c.remove, "rm", false, "Delete the reflection with the given id.")
}

func (c *reflectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.remove {
		if f.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "Error: reflect -rm takes a single id.")
			return subcommands.ExitUsageError
		}
		return withStore(ctx, func(s *session) subcommands.ExitStatus {
			if err := s.DeleteReflection(f.Arg(0)); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			return s.persisted()
		})
	}

	mood, err := moneytracker.ParseMood(c.mood)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	text := strings.Join(f.Args(), " ")
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		r, err := s.AddReflection(text, mood)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		fmt.Fprintf(stdout, "Reflection saved [%s]\n", r.ID[:8])
		return s.persisted()
	})
}

type reflectionsCmd struct {
	n    int
	mood string
}

func (*reflectionsCmd) Name() string     { return "reflections" }
func (*reflectionsCmd) Synopsis() string { return "read the journal" }
func (*reflectionsCmd) Usage() string {
	return `mt reflections [-n <count>] [-mood <mood>]

  Shows the reflections, newest first.
`
}

func (c *reflectionsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 10, "Show at most N reflections, 0 for all.")
	f.StringVar(&c.mood, "mood", "", "Only show reflections with this mood.")
}

func (c *reflectionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	mood, err := moneytracker.ParseMood(c.mood)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		var shown []moneytracker.Reflection
		for _, r := range s.Snapshot().Reflections {
			if mood != "" && r.Mood != mood {
				continue
			}
			shown = append(shown, r)
		}
		if c.n > 0 && len(shown) > c.n {
			shown = shown[:c.n]
		}
		printMarkdown(renderer.ReflectionsMarkdown(shown))
		return subcommands.ExitSuccess
	})
}
