// Package raftlog models rollback safety of a replicated log.
//
// A fixed set of nodes holds append-only logs of entry terms. One node at a
// time is primary for the current term; entries are replicated between
// nodes, divergent suffixes are rolled back, elections advance the term and
// a primary marks its newest entry committed once a majority of nodes holds
// it. The invariant states that a committed entry is always present on a
// majority of logs.
//
// With the commit rule restricted to entries of the current term the model
// is safe within the configured bound. With UnsafeCommit set, committing an
// entry from an earlier term is allowed and the checker finds the classic
// rollback counterexample.
package raftlog

import (
	"fmt"

	"golang.org/x/exp/slices"

	"mcheck/checker"
	"mcheck/fingerprint"
)

// Role of a node in the current term.
type Role uint8

const (
	Secondary Role = iota
	Primary
)

func (r Role) String() string {
	if r == Primary {
		return "P"
	}
	return "S"
}

// Spec parameterizes the model.
type Spec struct {
	// Nodes is the number of replicas.
	Nodes int
	// MaxTerm bounds the search: states beyond this term are recorded but
	// not expanded.
	MaxTerm uint8
	// MaxLogLen bounds the search: states where any log reached this
	// length are recorded but not expanded.
	MaxLogLen int
	// UnsafeCommit drops the requirement that a committed entry carries
	// the current term.
	UnsafeCommit bool
}

// DefaultSpec bounds the model at 3 nodes, term 3 and log length 3.
func DefaultSpec() Spec {
	return Spec{
		Nodes:     3,
		MaxTerm:   3,
		MaxLogLen: 3,
	}
}

// A Committed entry: the log position (1-based) and term of a write that a
// primary acknowledged to the client after majority replication.
type Committed struct {
	Index int
	Term  uint8
}

// State of the replica set. Log entries record the term of the primary that
// wrote them. The spec is constant across the search and excluded from
// fingerprinting and equality.
type State struct {
	Term      uint8
	Roles     []Role
	Logs      [][]uint8
	Committed []Committed

	spec Spec
}

// Initial returns the initial state: term 1, node 0 primary, all logs empty.
func Initial(spec Spec) State {
	roles := make([]Role, spec.Nodes)
	roles[0] = Primary
	logs := make([][]uint8, spec.Nodes)
	for i := range logs {
		logs[i] = []uint8{}
	}
	return State{
		Term:      1,
		Roles:     roles,
		Logs:      logs,
		Committed: []Committed{},
		spec:      spec,
	}
}

func (s State) Fingerprint() fingerprint.Fingerprint {
	h := fingerprint.New()
	h.WriteUint64(uint64(s.Term))
	h.WriteInt(len(s.Roles))
	for _, r := range s.Roles {
		h.WriteUint64(uint64(r))
	}
	h.WriteInt(len(s.Logs))
	for _, log := range s.Logs {
		h.WriteBytes(log)
	}
	h.WriteInt(len(s.Committed))
	for _, c := range s.Committed {
		h.WriteInt(c.Index)
		h.WriteUint64(uint64(c.Term))
	}
	return h.Sum()
}

func (s State) Equals(o State) bool {
	if s.Term != o.Term {
		return false
	}
	if !slices.Equal(s.Roles, o.Roles) {
		return false
	}
	if len(s.Logs) != len(o.Logs) {
		return false
	}
	for i := range s.Logs {
		if !slices.Equal(s.Logs[i], o.Logs[i]) {
			return false
		}
	}
	return slices.Equal(s.Committed, o.Committed)
}

func (s State) Clone() State {
	logs := make([][]uint8, len(s.Logs))
	for i, log := range s.Logs {
		logs[i] = slices.Clone(log)
	}
	return State{
		Term:      s.Term,
		Roles:     slices.Clone(s.Roles),
		Logs:      logs,
		Committed: slices.Clone(s.Committed),
		spec:      s.spec,
	}
}

// SatisfyInvariant requires every committed entry to be present, at its
// index with its term, on a majority of logs.
func (s State) SatisfyInvariant() bool {
	for _, c := range s.Committed {
		n := 0
		for _, log := range s.Logs {
			if len(log) >= c.Index && log[c.Index-1] == c.Term {
				n++
			}
		}
		if n < s.majority() {
			return false
		}
	}
	return true
}

// SatisfyConstraint bounds the search at the configured term and log length.
func (s State) SatisfyConstraint() bool {
	if s.Term > s.spec.MaxTerm {
		return false
	}
	for _, log := range s.Logs {
		if len(log) >= s.spec.MaxLogLen {
			return false
		}
	}
	return true
}

// Generate declares the model's transitions.
func (s State) Generate(b *checker.Branch[State]) {
	for recv := range s.Logs {
		for send := range s.Logs {
			if recv == send {
				continue
			}
			if s.canReplicate(recv, send) {
				b.Either(func(next *State) {
					next.replicate(recv, send)
				})
			}
			if s.canRollback(recv, send) {
				b.Either(func(next *State) {
					next.rollback(recv)
				})
			}
		}
	}
	for n := range s.Logs {
		if s.canElect(n) {
			b.Either(func(next *State) {
				next.elect(n)
			})
		}
		if s.Roles[n] != Primary {
			continue
		}
		b.Either(func(next *State) {
			next.clientWrite(n)
		})
		if c, ok := s.commitCandidate(n); ok {
			b.Either(func(next *State) {
				next.commit(c)
			})
		}
	}
}

func lastTerm(log []uint8) uint8 {
	if len(log) == 0 {
		return 0
	}
	return log[len(log)-1]
}

func (s State) majority() int {
	return len(s.Logs)/2 + 1
}

// canReplicate requires the receiver's log to be a shorter prefix-compatible
// copy of the sender's: the receiver's last entry must match the sender's
// entry at the same position.
func (s State) canReplicate(recv, send int) bool {
	rlog, slog := s.Logs[recv], s.Logs[send]
	if len(rlog) >= len(slog) {
		return false
	}
	return len(rlog) == 0 || slog[len(rlog)-1] == rlog[len(rlog)-1]
}

func (s *State) replicate(recv, send int) {
	next := s.Logs[send][len(s.Logs[recv])]
	s.Logs[recv] = append(s.Logs[recv], next)
}

// canRollback requires the receiver's log to end in an older term than the
// sender's and to diverge from it: either the receiver's log is longer than
// the sender's, or the entries at the receiver's last position differ.
func (s State) canRollback(recv, send int) bool {
	rlog, slog := s.Logs[recv], s.Logs[send]
	if len(rlog) == 0 || len(slog) == 0 {
		return false
	}
	if lastTerm(rlog) >= lastTerm(slog) {
		return false
	}
	if len(rlog) > len(slog) {
		return true
	}
	return slog[len(rlog)-1] != rlog[len(rlog)-1]
}

func (s *State) rollback(recv int) {
	s.Logs[recv] = s.Logs[recv][:len(s.Logs[recv])-1]
}

// canElect requires a majority of voters whose logs are no newer than the
// candidate's, compared by last term, then length. The candidate votes for
// itself.
func (s State) canElect(cand int) bool {
	votes := 0
	for n := range s.Logs {
		if s.notBehind(cand, n) {
			votes++
		}
	}
	return votes >= s.majority()
}

func (s State) notBehind(cand, voter int) bool {
	ct, vt := lastTerm(s.Logs[cand]), lastTerm(s.Logs[voter])
	if ct != vt {
		return ct > vt
	}
	return len(s.Logs[cand]) >= len(s.Logs[voter])
}

func (s *State) elect(cand int) {
	s.Term++
	for n := range s.Roles {
		s.Roles[n] = Secondary
	}
	s.Roles[cand] = Primary
}

func (s *State) clientWrite(primary int) {
	s.Logs[primary] = append(s.Logs[primary], s.Term)
}

// commitCandidate reports whether the primary's newest entry can be marked
// committed: it must be replicated on a majority of nodes, must not already
// be committed and, unless UnsafeCommit is set, must carry the current term.
func (s State) commitCandidate(primary int) (Committed, bool) {
	log := s.Logs[primary]
	if len(log) == 0 {
		return Committed{}, false
	}
	c := Committed{Index: len(log), Term: log[len(log)-1]}
	if !s.spec.UnsafeCommit && c.Term != s.Term {
		return Committed{}, false
	}
	if slices.Contains(s.Committed, c) {
		return Committed{}, false
	}
	n := 0
	for _, l := range s.Logs {
		if len(l) >= c.Index && l[c.Index-1] == c.Term {
			n++
		}
	}
	if n < s.majority() {
		return Committed{}, false
	}
	return c, true
}

func (s *State) commit(c Committed) {
	s.Committed = append(s.Committed, c)
	// Canonical order keeps fingerprints independent of commit order
	slices.SortFunc(s.Committed, func(a, b Committed) bool {
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.Term < b.Term
	})
}

func (s State) String() string {
	return fmt.Sprintf("[term: %v, roles: %v, logs: %v, committed: %v]",
		s.Term, s.Roles, s.Logs, s.Committed)
}
