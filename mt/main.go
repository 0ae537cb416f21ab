package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/moneytracker/cmd"
	"github.com/etnz/moneytracker/logger"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	cmd.Complete(commander)
	flag.Parse()

	if name := flag.Arg(0); name != "" && !cmd.IsCommand(commander, name) {
		if ok, code := cmd.RunExtension(name, flag.Args()[1:], os.Stdout, os.Stderr); ok {
			os.Exit(code)
		}
	}

	ctx := logger.WithContext(context.Background(), logger.New(zerolog.WarnLevel))
	os.Exit(int(commander.Execute(ctx)))
}
