package cmd

import (
	"flag"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/docs"
	"github.com/etnz/moneytracker/storage"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// argsPredictor is implemented by commands whose positional arguments can
// be completed.
type argsPredictor interface {
	PredictArgs() complete.Predictor
}

// flagPredictors complete the values of well known flags.
var flagPredictors = map[string]complete.Predictor{
	"p":            predict.Set{"day", "week", "month", "year"},
	"plan":         predictPlans(),
	"mood":         predictMoods(),
	"format":       predict.Set(ExportFormats),
	"o":            predict.Files("*"),
	"storage":      predict.Set(storage.Backends),
	"storage-path": predict.Dirs("*"),
	"to":           predict.Set(storage.Backends),
	"to-path":      predict.Dirs("*"),
}

func predictPlans() predict.Set {
	var names predict.Set
	for _, p := range moneytracker.Plans {
		names = append(names, p.Name)
	}
	return names
}

func predictMoods() predict.Set {
	var names predict.Set
	for _, m := range moneytracker.Moods {
		names = append(names, string(m))
	}
	return names
}

func (*addCmd) PredictArgs() complete.Predictor {
	return predict.Set{string(moneytracker.Income), string(moneytracker.Expense)}
}

func (*importCmd) PredictArgs() complete.Predictor { return predict.Files("*.jsonl") }

func (*selectCmd) PredictArgs() complete.Predictor { return predict.Set{"next", "prev", "today"} }

func (*topicCmd) PredictArgs() complete.Predictor {
	topics, _ := docs.GetAllTopics()
	return predict.Set(topics)
}

// flagsOf returns the completion of every flag set. Boolean flags take
// no value, their predictor is nil.
func flagsOf(set func(*flag.FlagSet)) map[string]complete.Predictor {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	set(fs)
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = nil
			return
		}
		if p, ok := flagPredictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}

// Completion returns the shell completion of the commands registered in c.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub: make(map[string]*complete.Command),
		Flags: flagsOf(func(fs *flag.FlagSet) {
			c.VisitAll(func(f *flag.Flag) { fs.Var(f.Value, f.Name, f.Usage) })
		}),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		sub := &complete.Command{Flags: flagsOf(cmd.SetFlags)}
		if p, ok := cmd.(argsPredictor); ok {
			sub.Args = p.PredictArgs()
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

// Complete answers a shell completion request and exits, or returns
// immediately when the process was not started for completion. Run
// 'COMP_INSTALL=1 mt' to install the completion in the shell.
func Complete(c *subcommands.Commander) {
	Completion(c).Complete("mt")
}
