// Package mcheck is an explicit-state model checker.
//
// Given a set of initial states and a model implementing the checker.State
// contract, it explores the reachable state graph breadth first, verifies
// the model's safety invariant on every reached state and reconstructs a
// counterexample trace on violation.
package mcheck

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"mcheck/checker"
)

// CheckOption configures the checker used by RunCheck.
type CheckOption interface{}

type reportOption struct{ interval time.Duration }

// WithReport enables a progress reporter that logs the exploration counters
// on the provided interval while the search runs.
func WithReport(interval time.Duration) CheckOption {
	return reportOption{interval: interval}
}

type loggerOption struct{ log *slog.Logger }

// WithLogger configures the logger used for progress and diagnostic output.
//
// Default is slog.Default().
func WithLogger(log *slog.Logger) CheckOption {
	return loggerOption{log: log}
}

type exportOption struct{ w io.Writer }

// Export writes the explored state space to the writer in Newick format once
// the search has completed. Can be applied multiple times to add multiple
// writers.
func Export(w io.Writer) CheckOption {
	return exportOption{w: w}
}

// RunCheck explores the state space reachable from the initial states under
// the model's transition relation and verifies the invariant on every
// reached state.
//
// The search is exhaustive unless the model bounds it through the
// checker.Constrainer interface. The returned result is either an exhausted
// search or a violation with its counterexample trace; both are successful
// outcomes. An error is returned only if the search could not be started.
func RunCheck[S checker.State[S]](initial []S, opts ...CheckOption) (*checker.Result[S], error) {
	var (
		interval time.Duration
		logger   *slog.Logger
		export   []io.Writer
	)

	for _, opt := range opts {
		switch t := opt.(type) {
		case reportOption:
			interval = t.interval
		case loggerOption:
			logger = t.log
		case exportOption:
			export = append(export, t.w)
		}
	}

	c := checker.New[S](logger, interval)
	res, err := c.Run(initial)
	if err != nil {
		return nil, err
	}

	for _, w := range export {
		if err := c.Export(w); err != nil {
			return nil, fmt.Errorf("mcheck: exporting state space: %w", err)
		}
	}
	return res, nil
}
