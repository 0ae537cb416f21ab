package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/moneytracker"
	"github.com/google/subcommands"
)

// ExportFormats are the formats 'mt export' can write.
var ExportFormats = []string{"json", "csv", "jsonl"}

type exportCmd struct {
	format string
	output string
	period rangeFlags
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export transactions as json, csv or jsonl" }
func (*exportCmd) Usage() string {
	return `mt export [-format <json|csv|jsonl>] [-o <file>] [-p <period> | -s <start>] [-d <date>]

  Writes transactions, sorted by day, to stdout or to a file. Every
  transaction is exported unless a period is selected.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "Output format: json, csv or jsonl.")
	f.StringVar(&c.output, "o", "", "Output file, stdout by default.")
	c.period.SetFlags(f, "")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var export func(io.Writer, []moneytracker.Transaction) error
	switch c.format {
	case "json":
		export = moneytracker.ExportJSON
	case "csv":
		export = moneytracker.ExportCSV
	case "jsonl":
		export = moneytracker.EncodeJSONL
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, want one of %v\n", c.format, ExportFormats)
		return subcommands.ExitUsageError
	}
	r, all, err := c.period.Range()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		records := s.Snapshot().Transactions
		if !all {
			records = moneytracker.FilterRange(records, r)
		}
		moneytracker.Sort(records)

		w := stdout
		if c.output != "" {
			file, err := os.Create(c.output)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			defer file.Close()
			w = file
		}
		if err := export(w, records); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing export: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	})
}
