package checker

// A Branch emits the nondeterministic successor candidates of a single state
// under expansion.
//
// Every Either call starts from the same base snapshot: the mutation is
// applied to a fresh clone of the base, so sibling branches never observe
// each other's writes and no revert step is needed.
type Branch[S any] struct {
	base  S
	clone func(S) S
	emit  func(S)
}

// NewBranch creates a branch emitter rooted at base that forwards every
// candidate to emit. Used to drive a transition relation outside of a
// search, e.g. when enumerating the successors of a single state in model
// tests.
func NewBranch[S State[S]](base S, emit func(S)) *Branch[S] {
	return &Branch[S]{
		base:  base,
		clone: func(s S) S { return s.Clone() },
		emit:  emit,
	}
}

// Either declares one alternative successor of the base state.
//
// The mutation is applied to a clone of the base and the resulting candidate
// is handed to the checker by value. The base is left untouched.
func (b *Branch[S]) Either(mutate func(*S)) {
	next := b.clone(b.base)
	mutate(&next)
	b.emit(next)
}

// Derive returns a sub-branch whose base is a mutated clone of this branch's
// base. Choices declared on the sub-branch compose with mutate: each terminal
// combination of choices yields one candidate.
//
// The intermediate state is not emitted by itself; call Either with the same
// mutation if it should also be a successor.
func (b *Branch[S]) Derive(mutate func(*S)) *Branch[S] {
	next := b.clone(b.base)
	mutate(&next)
	return &Branch[S]{
		base:  next,
		clone: b.clone,
		emit:  b.emit,
	}
}
