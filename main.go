package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rcv/ballotfile"
	"rcv/config"
	"rcv/logger"
	"rcv/report"
	"rcv/tally"
)

func usage(w io.Writer, prog string) {
	fmt.Fprintf(w, "Usage: %s [-log N] <votes_file>\n", prog)
}

// run executes one election and returns the process exit code. Ties and
// tally errors are reported outcomes and still exit 0.
func run(args []string, stdout io.Writer) int {
	prog := filepath.Base(args[0])
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	logFlag := fs.Int("log", 0, "verbosity of trace output")
	configFlag := fs.String("config", "", "path of a YAML run configuration")
	if err := fs.Parse(args[1:]); err != nil || fs.NArg() != 1 {
		usage(stdout, prog)
		return 1
	}

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fmt.Fprintf(stdout, "ERROR: %v\n", err)
			return 1
		}
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "log" {
			cfg.Verbosity = *logFlag
		}
	})

	if err := logger.CreateLogger(cfg.Log); err != nil {
		fmt.Fprintf(stdout, "ERROR: %v\n", err)
		return 1
	}
	lg := logger.Logger().With(zap.String("run", uuid.NewString()))
	defer lg.Sync()

	opts := tally.Options{Verbosity: tally.Verbosity(cfg.Verbosity), Logger: lg}
	t, err := ballotfile.Load(fs.Arg(0), opts)
	if err != nil {
		lg.Error("load votes file", zap.Error(err))
		fmt.Fprintln(stdout, "Could not load votes file. Exiting with error code 1")
		return 1
	}
	defer t.Release()

	p := report.NewPrinter(stdout)
	outcome := tally.NewElection(t, p).Run()
	p.Outcome(outcome)
	if outcome.Err != nil {
		lg.Warn("election ended in error", zap.Error(outcome.Err), zap.Int("rounds", outcome.Rounds))
	}
	if err := p.Err(); err != nil {
		lg.Error("write report", zap.Error(err))
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout))
}
