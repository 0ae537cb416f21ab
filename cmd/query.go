package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression on the stored data" }
func (*queryCmd) Usage() string {
	return `mt query <jsonpath>

  Evaluates a JSONPath expression against the stored document and prints
  the result as JSON, for instance:

    mt query '$.transactions[?(@.kind=="expense")].amount'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (*queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query takes a single expression.")
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		got, err := query(s.Snapshot(), f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, got)
		return subcommands.ExitSuccess
	})
}

// query evaluates expr on the JSON document of v and returns the result
// as indented JSON.
func query(v any, expr string) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return "", err
	}
	result, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", fmt.Errorf("evaluating %q: %w", expr, err)
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
