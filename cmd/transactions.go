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

// splitTags splits a comma separated list of tags.
func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

type addCmd struct {
	date     string
	category string
	note     string
	tags     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or an expense" }
func (*addCmd) Usage() string {
	return `mt add [-d <date>] [-c <category>] [-n <note>] [-t <tag,tag>] <income|expense> <amount>

  Records a transaction. The amount must be positive, it is rounded to cents.
  A blank category defaults to "Income" or "Expense".
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Day of the transaction, defaults to today. See 'mt topic dates'.")
	f.StringVar(&c.category, "c", "", "Category of the transaction.")
	f.StringVar(&c.note, "n", "", "Free text note.")
	f.StringVar(&c.tags, "t", "", "Comma separated tags.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: add takes a kind and an amount.")
		return subcommands.ExitUsageError
	}
	kind, err := moneytracker.ParseKind(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := moneytracker.ParseAmount(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	tx, err := moneytracker.NewTransaction(kind, amount, c.category, c.note, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	tx = tx.WithTags(splitTags(c.tags)...)

	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		if err := s.AddTransaction(tx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		_, cur := s.view()
		fmt.Fprintf(stdout, "%s [%s]\n", renderer.Transaction(tx, cur), tx.ID[:8])
		return s.persisted()
	})
}

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete transactions" }
func (*rmCmd) Usage() string {
	return `mt rm <id>...

  Deletes transactions and their notes. An id can be shortened to any
  unique prefix of at least 4 characters.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (*rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: rm takes at least one id.")
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		for _, id := range f.Args() {
			if err := s.DeleteTransaction(id); err != nil {
				fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", id, err)
				return subcommands.ExitFailure
			}
		}
		return s.persisted()
	})
}

type tagCmd struct {
	replace bool
}

func (*tagCmd) Name() string     { return "tag" }
func (*tagCmd) Synopsis() string { return "tag a transaction" }
func (*tagCmd) Usage() string {
	return `mt tag [-replace] <id> <tag>...

  Adds tags to a transaction. With -replace the tags replace the existing
  ones, no tag at all clears them.
`
}

func (c *tagCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.replace, "replace", false, "Replace the tags instead of adding to them.")
}

func (c *tagCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 || (f.NArg() == 1 && !c.replace) {
		fmt.Fprintln(os.Stderr, "Error: tag takes an id and tags.")
		return subcommands.ExitUsageError
	}
	id, tags := f.Arg(0), f.Args()[1:]
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		var err error
		if c.replace {
			err = s.ReplaceTags(id, tags...)
		} else {
			err = s.AddTags(id, tags...)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return s.persisted()
	})
}

type noteCmd struct {
	clear bool
}

func (*noteCmd) Name() string     { return "note" }
func (*noteCmd) Synopsis() string { return "attach a note to a transaction" }
func (*noteCmd) Usage() string {
	return `mt note [-clear] <id> [<text>...]

  Appends a note to a transaction, or removes all its notes with -clear.
`
}

func (c *noteCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.clear, "clear", false, "Remove every note of the transaction.")
}

func (c *noteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 || (f.NArg() == 1 && !c.clear) {
		fmt.Fprintln(os.Stderr, "Error: note takes an id and a text.")
		return subcommands.ExitUsageError
	}
	id, text := f.Arg(0), strings.Join(f.Args()[1:], " ")
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		var err error
		if c.clear {
			err = s.ReplaceNotes(id, nil)
		} else {
			err = s.AddNote(id, text)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return s.persisted()
	})
}

type lsCmd struct {
	period   rangeFlags
	category string
	tag      string
	head     int
	tail     int
}

func (*lsCmd) Name() string     { return "ls" }
func (*lsCmd) Synopsis() string { return "list transactions" }
func (*lsCmd) Usage() string {
	return `mt ls [-p <period> | -s <start>] [-d <date>] [-c <category>] [-tag <tag>] [-head <n>] [-tail <n>]

  Lists transactions by day, all of them unless a period is selected.
`
}

func (c *lsCmd) SetFlags(f *flag.FlagSet) {
	c.period.SetFlags(f, "")
	f.StringVar(&c.category, "c", "", "Only list this category, case insensitive.")
	f.StringVar(&c.tag, "tag", "", "Only list transactions with this tag.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *lsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
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
		var kept []moneytracker.Transaction
		for _, tx := range records {
			if c.category != "" && !strings.EqualFold(tx.Category, c.category) {
				continue
			}
			if c.tag != "" && !hasTag(tx, c.tag) {
				continue
			}
			kept = append(kept, tx)
		}
		moneytracker.Sort(kept)
		if c.head > 0 && len(kept) > c.head {
			kept = kept[:c.head]
		}
		if c.tail > 0 && len(kept) > c.tail {
			kept = kept[len(kept)-c.tail:]
		}
		printMarkdown(renderer.TransactionsMarkdown(kept, v.Notes, cur))
		return subcommands.ExitSuccess
	})
}

func hasTag(tx moneytracker.Transaction, tag string) bool {
	for _, t := range tx.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a JSONL file" }
func (*importCmd) Usage() string {
	return `mt import <file.jsonl>

  Adds every transaction of a file written by 'mt export -format jsonl'.
  Transactions whose id is already known are skipped.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (*importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import takes a single file.")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()
	records, err := moneytracker.DecodeJSONL(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		known := make(map[string]bool)
		for _, tx := range s.Snapshot().Transactions {
			known[tx.ID] = true
		}
		var added []moneytracker.Transaction
		for _, tx := range records {
			if known[tx.ID] {
				continue
			}
			if err := s.AddTransaction(tx); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			added = append(added, tx)
		}
		_, cur := s.view()
		renderer.WriteTransactions(stdout, added, cur)
		fmt.Fprintf(stdout, "Imported %d of %d transactions.\n", len(added), len(records))
		return s.persisted()
	})
}
