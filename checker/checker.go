package checker

import (
	"errors"
	"log/slog"
	"time"

	"mcheck/fingerprint"
	"mcheck/queue"
)

var ErrNoInitialStates = errors.New("checker: at least one initial state must be provided to start the search")

// An entry in the seen-state table.
//
// Entries are written once and never mutated or removed. The parent
// fingerprint always refers to a state that was already in the table when
// the entry was inserted, so walking parent links terminates.
type entry[S any] struct {
	state   S
	parent  fingerprint.Fingerprint
	initial bool
}

// A Checker exhaustively explores the state space reachable from a set of
// initial states under the model's transition relation, breadth first, and
// verifies the safety invariant on every state it reaches.
//
// The exploration loop is single threaded and runs to frontier exhaustion or
// to the first invariant violation. The only concurrency is the optional
// progress reporter, which reads the Stats counters on a timer.
type Checker[S State[S]] struct {
	seen     map[fingerprint.Fingerprint]entry[S]
	frontier *queue.Queue[S]
	stats    *Stats

	log            *slog.Logger
	reportInterval time.Duration

	violated  bool
	violation S
}

// New creates a checker.
//
// log is used for progress and diagnostic output; nil means slog.Default().
// reportInterval enables the progress reporter when positive.
func New[S State[S]](log *slog.Logger, reportInterval time.Duration) *Checker[S] {
	if log == nil {
		log = slog.Default()
	}
	return &Checker[S]{
		log:            log,
		reportInterval: reportInterval,
	}
}

// Run explores the state space reachable from the initial states.
//
// The initial states are submitted in order, then states are expanded in
// strict FIFO order, which makes the search breadth first and the first
// counterexample found minimal in step count. Run returns when the frontier
// is exhausted or immediately after the first invariant violation.
//
// Returns an error if no initial state is provided.
func (c *Checker[S]) Run(initial []S) (*Result[S], error) {
	if len(initial) == 0 {
		return nil, ErrNoInitialStates
	}

	// Reset the state of the checker so that it is ready for a new search
	c.seen = make(map[fingerprint.Fingerprint]entry[S])
	c.frontier = queue.New[S]()
	c.stats = &Stats{}
	c.violated = false
	var zero S
	c.violation = zero

	if c.reportInterval > 0 {
		reporter := NewReporter(c.reportInterval, c.log)
		reporter.Start(c.stats)
		defer reporter.Stop()
	}

	for _, s := range initial {
		c.accept(s, 0, true)
		if c.violated {
			return c.result(), nil
		}
	}

	for {
		cur, ok := c.frontier.Pop()
		if !ok {
			break
		}
		c.expand(cur)
		if c.violated {
			break
		}
	}

	res := c.result()
	c.log.Info("search finished",
		"exhausted", res.Exhausted,
		"unique", res.Stats.Unique,
		"generated", res.Stats.Generated,
	)
	return res, nil
}

// expand invokes the transition relation of the state, routing every emitted
// candidate through the accept path with the state as its parent.
func (c *Checker[S]) expand(cur S) {
	parent := cur.Fingerprint()
	b := NewBranch(cur, func(next S) {
		// Candidates emitted after a violation are not counted
		if c.violated {
			return
		}
		c.accept(next, parent, false)
	})
	cur.Generate(b)
}

// accept routes a candidate state: deduplicate, record, verify the
// invariant, then let the constraint gate frontier insertion.
func (c *Checker[S]) accept(s S, parent fingerprint.Fingerprint, initial bool) {
	c.stats.generated.Add(1)

	fp := s.Fingerprint()
	if prev, ok := c.seen[fp]; ok {
		// Already visited: discard without re-evaluating anything.
		if !prev.state.Equals(s) {
			c.log.Warn("fingerprint collision: two distinct states share a fingerprint, treating them as one",
				"fingerprint", fp,
			)
		}
		return
	}
	c.seen[fp] = entry[S]{state: s, parent: parent, initial: initial}
	c.stats.unique.Add(1)
	c.stats.states.Add(1)

	if !s.SatisfyInvariant() {
		c.violated = true
		c.violation = s
		return
	}
	// A state failing the constraint stays recorded as visited but is
	// never expanded.
	if !satisfyConstraint(s) {
		return
	}
	c.frontier.Push(s)
}

// trace reconstructs the path from an initial state to end by walking the
// parent fingerprints in the seen-state table.
func (c *Checker[S]) trace(end S) []S {
	out := []S{end}
	e := c.seen[end.Fingerprint()]
	for !e.initial {
		e = c.seen[e.parent]
		out = append(out, e.state)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func (c *Checker[S]) result() *Result[S] {
	res := &Result[S]{
		Exhausted: !c.violated,
		Stats:     c.stats.Snapshot(),
	}
	if c.violated {
		res.Violation = c.violation
		res.Trace = c.trace(c.violation)
	}
	return res
}
