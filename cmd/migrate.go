package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/storage"
	"github.com/google/subcommands"
)

type migrateCmd struct {
	to     string
	toPath string
	force  bool
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "copy the stored data to another storage backend" }
func (*migrateCmd) Usage() string {
	return `mt migrate -to <memory|dir|sqlite> [-to-path <dir>] [-force]

  Copies the data of the current storage into another one, upgraded to the
  current format. The target is left untouched if it already holds data,
  unless -force is given.
`
}

func (c *migrateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.to, "to", "", "Target storage backend: memory, dir or sqlite.")
	f.StringVar(&c.toPath, "to-path", "", "Directory of the target, the current storage path by default.")
	f.BoolVar(&c.force, "force", false, "Overwrite the data of the target.")
}

func (c *migrateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.to == "" {
		fmt.Fprintln(os.Stderr, "Error: migrate needs a -to backend.")
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		if s.State() == moneytracker.Unavailable {
			fmt.Fprintf(os.Stderr, "Error: %v\n", s.Err())
			return subcommands.ExitFailure
		}
		path := c.toPath
		if path == "" {
			path = s.cfg.StoragePath
		}
		if c.to == s.cfg.Storage && filepath.Clean(path) == filepath.Clean(s.cfg.StoragePath) {
			fmt.Fprintln(os.Stderr, "Error: the target is the current storage.")
			return subcommands.ExitUsageError
		}

		backend, err := storage.Open(c.to, path, s.log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %s storage: %v\n", c.to, err)
			return subcommands.ExitFailure
		}
		defer backend.Close()

		target := moneytracker.NewStore(backend, s.log)
		target.Now = now
		target.Load()
		switch {
		case target.State() == moneytracker.Unavailable:
			fmt.Fprintf(os.Stderr, "Error: %s storage at %s: %v\n", c.to, path, target.Err())
			return subcommands.ExitFailure
		case target.State() == moneytracker.Loaded && !c.force:
			fmt.Fprintf(os.Stderr, "Error: %s storage at %s already holds data, use -force to overwrite it.\n", c.to, path)
			return subcommands.ExitFailure
		}

		snap := s.Snapshot()
		target.Save(snap)
		if err := target.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "Copied %d transactions, %d goals and %d reflections to %s storage.\n",
			len(snap.Transactions), len(snap.Goals), len(snap.Reflections), c.to)
		return subcommands.ExitSuccess
	})
}

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "report the state of the storage" }
func (*checkCmd) Usage() string {
	return `mt check

  Loads the stored data and reports what was found. Records that could not
  be read are reported as warnings with -v, they are dropped on the next
  change.
`
}

func (*checkCmd) SetFlags(f *flag.FlagSet) {}

func (*checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, func(s *session) subcommands.ExitStatus {
		snap := s.Snapshot()
		fmt.Fprintf(stdout, "storage:      %s\n", s.cfg.Storage)
		if s.cfg.Storage != storage.MemoryBackend {
			fmt.Fprintf(stdout, "path:         %s\n", s.cfg.StoragePath)
		}
		fmt.Fprintf(stdout, "state:        %s\n", s.State())
		fmt.Fprintf(stdout, "transactions: %d\n", len(snap.Transactions))
		fmt.Fprintf(stdout, "goals:        %d\n", len(snap.Goals))
		fmt.Fprintf(stdout, "reflections:  %d\n", len(snap.Reflections))
		fmt.Fprintf(stdout, "categories:   %d\n", len(snap.Categories))
		if err := s.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	})
}
