package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mcheck"
	"mcheck/checker"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var errViolation = errors.New("invariant violated")

type rootOptions struct {
	verbose    bool
	configPath string
	report     time.Duration
	export     string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "mcheck",
		Short: "Explicit-state model checker",
		Long: `Explicit-state model checker.

Explores the reachable state graph of a model breadth first and verifies a
safety invariant on every reached state. On violation the shortest
counterexample trace is printed. The exit code is 1 when a violation is
found.

Example:
  mcheck diehard
  mcheck raftlog --unsafe --report 1s`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().DurationVar(&opts.report, "report", 0, "progress report interval (0 disables reporting)")
	cmd.PersistentFlags().StringVar(&opts.export, "export", "", "write the explored state space to this file in Newick format")

	cmd.AddCommand(newDiehardCommand(opts))
	cmd.AddCommand(newRaftlogCommand(opts))
	return cmd
}

// runCheck runs the search on the prepared initial states and prints the
// outcome. A violation is reported through errViolation so that the process
// exits non-zero, like a failing test.
func runCheck[S checker.State[S]](cmd *cobra.Command, opts *rootOptions, cfg *fileConfig, initial []S) error {
	logLevel := slog.LevelInfo
	if opts.verbose {
		logLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))

	checkOpts := []mcheck.CheckOption{mcheck.WithLogger(log)}

	report := opts.report
	if !cmd.Flags().Changed("report") && cfg.Report > 0 {
		report = time.Duration(cfg.Report)
	}
	if report > 0 {
		checkOpts = append(checkOpts, mcheck.WithReport(report))
	}

	export := opts.export
	if !cmd.Flags().Changed("export") && cfg.Export != "" {
		export = cfg.Export
	}
	if export != "" {
		f, err := os.Create(export)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		checkOpts = append(checkOpts, mcheck.Export(f))
	}

	res, err := mcheck.RunCheck(initial, checkOpts...)
	if err != nil {
		return err
	}

	ok, desc := res.Response()
	fmt.Fprintln(cmd.OutOrStdout(), desc)
	if !ok {
		return errViolation
	}
	return nil
}
