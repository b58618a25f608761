package checker

import "mcheck/fingerprint"

// State is the contract a model state must implement to be checked.
//
// A state is a value: the checker stores it, clones it and passes it around
// by value. All methods observe the semantic fields only; the checker tracks
// lineage (the parent fingerprint) outside of the state itself.
type State[S any] interface {
	// Fingerprint returns a deterministic hash of the semantic fields.
	// Equal states must return equal fingerprints.
	Fingerprint() fingerprint.Fingerprint

	// Equals reports whether the receiver and the argument have the same
	// semantic fields.
	Equals(S) bool

	// Clone returns a copy of the state sharing no mutable data with the
	// receiver.
	Clone() S

	// SatisfyInvariant reports whether the safety invariant holds for the
	// state. A state for which it returns false aborts the search and is
	// reported with its counterexample trace.
	SatisfyInvariant() bool

	// Generate declares the successor candidates of the state by calling
	// the Branch emitter zero or more times. Calling it zero times marks
	// the state as terminal.
	Generate(*Branch[S])
}

// Constrainer is an optional upgrade of the State contract that bounds the
// search.
//
// A newly accepted state for which SatisfyConstraint returns false is
// recorded as visited but never expanded. Models with unbounded growth use
// this to trade completeness for termination. States that do not implement
// Constrainer are always expanded.
type Constrainer interface {
	SatisfyConstraint() bool
}

func satisfyConstraint[S any](s S) bool {
	if c, ok := any(s).(Constrainer); ok {
		return c.SatisfyConstraint()
	}
	return true
}
