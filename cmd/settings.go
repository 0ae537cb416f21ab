package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type currencyCmd struct{}

func (*currencyCmd) Name() string     { return "currency" }
func (*currencyCmd) Synopsis() string { return "print or set the display currency" }
func (*currencyCmd) Usage() string {
	return `mt currency [<code>]

  Prints the display currency, or sets it to an ISO 4217 code like MXN,
  USD or EUR.
`
}

func (*currencyCmd) SetFlags(f *flag.FlagSet) {}

func (*currencyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		if f.NArg() == 0 {
			_, cur := s.view()
			fmt.Fprintln(stdout, cur)
			return subcommands.ExitSuccess
		}
		if err := s.SetCurrency(f.Arg(0)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		return s.persisted()
	})
}
