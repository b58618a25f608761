// Package diehard models the two-jug water puzzle.
//
// Two jugs of fixed capacity can be filled, emptied and poured into each
// other. The invariant states that the big jug never holds the target
// amount; the checker finding a counterexample is the solution of the
// puzzle.
package diehard

import (
	"fmt"

	"mcheck/checker"
	"mcheck/fingerprint"
)

// Spec parameterizes the puzzle.
type Spec struct {
	// BigCap and SmallCap are the jug capacities.
	BigCap   int8
	SmallCap int8
	// Target is the amount the big jug must never hold.
	Target int8
}

// DefaultSpec is the classic puzzle: jugs of capacity 5 and 3, measure 4.
func DefaultSpec() Spec {
	return Spec{
		BigCap:   5,
		SmallCap: 3,
		Target:   4,
	}
}

// State is the content of the two jugs. The spec is constant across the
// search and excluded from fingerprinting and equality.
type State struct {
	Big   int8
	Small int8

	spec Spec
}

// Initial returns the initial state with both jugs empty.
func Initial(spec Spec) State {
	return State{
		Big:   0,
		Small: 0,
		spec:  spec,
	}
}

func (s State) Fingerprint() fingerprint.Fingerprint {
	h := fingerprint.New()
	h.WriteInt(int(s.Big))
	h.WriteInt(int(s.Small))
	return h.Sum()
}

func (s State) Equals(o State) bool {
	return s.Big == o.Big && s.Small == o.Small
}

func (s State) Clone() State {
	return s
}

func (s State) SatisfyInvariant() bool {
	return s.Big != s.spec.Target
}

// Generate declares the six puzzle moves.
func (s State) Generate(b *checker.Branch[State]) {
	// FillSmallJug
	b.Either(func(next *State) {
		next.Small = next.spec.SmallCap
	})
	// FillBigJug
	b.Either(func(next *State) {
		next.Big = next.spec.BigCap
	})
	// EmptySmallJug
	b.Either(func(next *State) {
		next.Small = 0
	})
	// EmptyBigJug
	b.Either(func(next *State) {
		next.Big = 0
	})
	// SmallToBig: pour until the small jug is empty or the big jug is full
	b.Either(func(next *State) {
		n := min(next.Small, next.spec.BigCap-next.Big)
		next.Big += n
		next.Small -= n
	})
	// BigToSmall
	b.Either(func(next *State) {
		n := min(next.Big, next.spec.SmallCap-next.Small)
		next.Small += n
		next.Big -= n
	})
}

func (s State) String() string {
	return fmt.Sprintf("[big: %v, small: %v]", s.Big, s.Small)
}
