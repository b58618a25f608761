package checker

import (
	"fmt"
	"strconv"

	"mcheck/fingerprint"
)

// counterState is a test model counting upward by one.
//
// limit stops the chain (no successors at or beyond it), bad breaks the
// invariant at one value and bound prunes expansion through the constraint.
// Negative values disable bad and bound.
type counterState struct {
	n int

	limit int
	bad   int
	bound int
}

func (s counterState) Fingerprint() fingerprint.Fingerprint {
	return fingerprint.Fingerprint(uint64(s.n))
}

func (s counterState) Equals(o counterState) bool {
	return s.n == o.n
}

func (s counterState) Clone() counterState {
	return s
}

func (s counterState) SatisfyInvariant() bool {
	return s.bad < 0 || s.n != s.bad
}

func (s counterState) SatisfyConstraint() bool {
	return s.bound < 0 || s.n < s.bound
}

func (s counterState) Generate(b *Branch[counterState]) {
	if s.n >= s.limit {
		return
	}
	b.Either(func(next *counterState) {
		next.n++
	})
}

func (s counterState) String() string {
	return fmt.Sprintf("[n: %v]", s.n)
}

// diamondState is a test model exploring a four-state diamond:
// 0 -> {1, 2}, 1 -> 3, 2 -> 3. State 3 is reached on two paths.
//
// It does not implement Constrainer. The expanded slice records the order in
// which states were expanded.
type diamondState struct {
	id       int
	expanded *[]int
}

func (s diamondState) Fingerprint() fingerprint.Fingerprint {
	return fingerprint.Fingerprint(uint64(s.id))
}

func (s diamondState) Equals(o diamondState) bool {
	return s.id == o.id
}

func (s diamondState) Clone() diamondState {
	return s
}

func (s diamondState) SatisfyInvariant() bool {
	return true
}

func (s diamondState) Generate(b *Branch[diamondState]) {
	*s.expanded = append(*s.expanded, s.id)
	switch s.id {
	case 0:
		b.Either(func(next *diamondState) { next.id = 1 })
		b.Either(func(next *diamondState) { next.id = 2 })
	case 1, 2:
		b.Either(func(next *diamondState) { next.id = 3 })
	}
}

func (s diamondState) String() string {
	return strconv.Itoa(s.id)
}

// collideState is a test model whose fingerprint is intentionally constant,
// simulating a fingerprint collision between distinct states.
type collideState struct {
	id int
}

func (s collideState) Fingerprint() fingerprint.Fingerprint {
	return fingerprint.Fingerprint(7)
}

func (s collideState) Equals(o collideState) bool {
	return s.id == o.id
}

func (s collideState) Clone() collideState {
	return s
}

func (s collideState) SatisfyInvariant() bool {
	return true
}

func (s collideState) Generate(b *Branch[collideState]) {}
