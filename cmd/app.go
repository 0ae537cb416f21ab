// Package cmd implements the mt command line application.
//
// A main package calls Register to install the subcommands, then executes
// the one selected by the user. Every command opens the store, applies
// its change or renders its view, and exits.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/config"
	"github.com/etnz/moneytracker/date"
	"github.com/etnz/moneytracker/logger"
	"github.com/etnz/moneytracker/storage"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	for _, g := range groups {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

type group struct {
	name     string
	commands []subcommands.Command
}

var groups = []group{
	{"transactions", []subcommands.Command{&addCmd{}, &rmCmd{}, &tagCmd{}, &noteCmd{}, &lsCmd{}, &importCmd{}}},
	{"calendar", []subcommands.Command{&monthCmd{}, &balanceCmd{}, &monthsCmd{}, &selectCmd{}}},
	{"categories", []subcommands.Command{&categoriesCmd{}, &categoryCmd{}}},
	{"reports", []subcommands.Command{&summaryCmd{}, &yearlyCmd{}, &trendCmd{}, &budgetCmd{}, &exportCmd{}, &queryCmd{}}},
	{"goals", []subcommands.Command{&goalCmd{}, &contributeCmd{}, &goalsCmd{}, newCompleteCmd(), newFavoriteCmd()}},
	{"journal", []subcommands.Command{&reflectCmd{}, &reflectionsCmd{}}},
	{"settings", []subcommands.Command{&currencyCmd{}, &migrateCmd{}, &checkCmd{}}},
	{"help", []subcommands.Command{&topicCmd{}}},
}

// stdout is where commands print.
var stdout io.Writer = os.Stdout

// Run executes the command line args, global flags included, and prints
// plain markdown to w. Global flags set by args stay set.
func Run(ctx context.Context, w io.Writer, args ...string) subcommands.ExitStatus {
	fs := flag.NewFlagSet("mt", flag.ContinueOnError)
	flag.CommandLine.VisitAll(func(f *flag.Flag) { fs.Var(f.Value, f.Name, f.Usage) })
	c := subcommands.NewCommander(fs, "mt")
	Register(c)
	if err := fs.Parse(args); err != nil {
		return subcommands.ExitUsageError
	}

	defer func(out io.Writer, p bool) { stdout, *plain = out, p }(stdout, *plain)
	stdout, *plain = w, true
	return c.Execute(ctx)
}

// Commands returns every subcommand Register installs.
func Commands() []subcommands.Command {
	var all []subcommands.Command
	for _, g := range groups {
		all = append(all, g.commands...)
	}
	return all
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	storageFlag = flag.String("storage", "", "Storage backend: memory, dir or sqlite. Overrides "+EnvStorage+".")
	pathFlag    = flag.String("storage-path", "", "Directory of the dir and sqlite backends. Overrides "+EnvStoragePath+".")
	plain       = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal.")
	Verbose     = flag.Bool("v", false, "Log debug information to stderr.")
)

const (
	EnvStorage     = "MT_STORAGE"
	EnvStoragePath = "MT_STORAGE_PATH"
	EnvLogLevel    = "MT_LOG_LEVEL"
	// EnvTestingNow freezes the clock, "2006-01-02 15:04:05" in local time.
	EnvTestingNow = "MT_TESTING_NOW"
)

func now() time.Time {
	if v := os.Getenv(EnvTestingNow); v != "" {
		if t, err := time.ParseInLocation(time.DateTime, v, time.Local); err == nil {
			return t
		}
	}
	return time.Now()
}

func today() date.Date { return date.Of(now()) }

// parseDay parses a day typed on the command line.
func parseDay(s string) (date.Date, error) { return date.ParseInputFrom(s, today()) }

// session is an opened store with the settings it was opened with.
type session struct {
	*moneytracker.Store
	cfg     *config.Config
	backend storage.Backend
	log     zerolog.Logger
}

// settings returns the configuration with the global flags applied.
func settings() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if *storageFlag != "" {
		cfg.Storage = *storageFlag
	}
	if *pathFlag != "" {
		cfg.StoragePath = *pathFlag
	}
	if *Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore opens and loads the configured store. The logger in ctx is
// used at the configured level.
func openStore(ctx context.Context) (*session, error) {
	cfg, err := settings()
	if err != nil {
		return nil, err
	}
	level, _ := logger.ParseLevel(cfg.LogLevel)
	log := logger.FromContext(ctx).Level(level)

	backend, err := storage.Open(cfg.Storage, cfg.StoragePath, log)
	if err != nil {
		return nil, fmt.Errorf("opening %s storage: %w", cfg.Storage, err)
	}
	s := &session{
		Store:   moneytracker.NewStore(backend, log),
		cfg:     cfg,
		backend: backend,
		log:     log,
	}
	s.Now = now
	s.Currency = cfg.Currency
	s.Load()
	log.Debug().Str("storage", cfg.Storage).Str("path", cfg.StoragePath).Stringer("state", s.State()).Msg("store opened")
	return s, nil
}

func (s *session) Close() error { return s.backend.Close() }

// view returns the current view and its display currency.
func (s *session) view() (*moneytracker.View, string) {
	v := s.View()
	return v, v.Currency()
}

// persisted reports a store error after a change, if any.
func (s *session) persisted() subcommands.ExitStatus {
	if err := s.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: the change was not saved: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// withStore opens the store, runs fn and closes the store.
func withStore(ctx context.Context, fn func(s *session) subcommands.ExitStatus) subcommands.ExitStatus {
	s, err := openStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()
	return fn(s)
}

// printMarkdown renders md for the terminal, or prints it as is with -plain.
func printMarkdown(md string) {
	if *plain {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprint(stdout, md)
}
