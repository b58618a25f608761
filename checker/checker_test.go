package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcheck/fingerprint"
)

func TestRunNoInitialStates(t *testing.T) {
	c := New[counterState](nil, 0)
	_, err := c.Run(nil)
	require.ErrorIs(t, err, ErrNoInitialStates)
}

func TestExhaustiveSearch(t *testing.T) {
	c := New[counterState](nil, 0)
	res, err := c.Run([]counterState{{n: 0, limit: 10, bad: -1, bound: -1}})
	require.NoError(t, err)

	assert.True(t, res.Exhausted)
	assert.Nil(t, res.Trace)
	// The chain 0..10 has 11 states and every candidate is unique
	assert.Equal(t, uint64(11), res.Stats.Unique)
	assert.Equal(t, uint64(11), res.Stats.Generated)
	assert.Equal(t, res.Stats.Unique, res.Stats.States)
	assert.Equal(t, 11, len(c.seen))
}

// Every entry in the seen-state table must reach an initial entry by
// following parent fingerprints, within table-size many hops.
func TestParentLinksTerminate(t *testing.T) {
	c := New[counterState](nil, 0)
	_, err := c.Run([]counterState{{n: 0, limit: 25, bad: -1, bound: -1}})
	require.NoError(t, err)

	for fp, e := range c.seen {
		hops := 0
		for !e.initial {
			var ok bool
			e, ok = c.seen[e.parent]
			require.True(t, ok, "dangling parent link from fingerprint %v", fp)
			hops++
			require.LessOrEqual(t, hops, len(c.seen), "parent links from fingerprint %v do not terminate", fp)
		}
	}
}

func TestViolationTrace(t *testing.T) {
	c := New[counterState](nil, 0)
	res, err := c.Run([]counterState{{n: 0, limit: 100, bad: 5, bound: -1}})
	require.NoError(t, err)

	require.False(t, res.Exhausted)
	assert.Equal(t, 5, res.Violation.n)

	// The trace runs from the initial state to the violation and every
	// adjacent pair is one counter step
	require.Len(t, res.Trace, 6)
	assert.Equal(t, 0, res.Trace[0].n)
	for i := 1; i < len(res.Trace); i++ {
		assert.Equal(t, res.Trace[i-1].n+1, res.Trace[i].n)
	}
	// The invariant holds on every trace state but the last
	for _, s := range res.Trace[:len(res.Trace)-1] {
		assert.True(t, s.SatisfyInvariant())
	}
	assert.False(t, res.Trace[len(res.Trace)-1].SatisfyInvariant())

	// The search stopped at the violation instead of draining the chain
	assert.Equal(t, uint64(6), res.Stats.Unique)
}

func TestInitialStateViolation(t *testing.T) {
	c := New[counterState](nil, 0)
	res, err := c.Run([]counterState{{n: 5, limit: 100, bad: 5, bound: -1}})
	require.NoError(t, err)

	require.False(t, res.Exhausted)
	require.Len(t, res.Trace, 1)
	assert.Equal(t, 5, res.Trace[0].n)
}

func TestConstraintGatesExpansion(t *testing.T) {
	// The constraint stops expansion at n == 5: state 5 is still accepted
	// and counted but its successors are never generated
	c := New[counterState](nil, 0)
	res, err := c.Run([]counterState{{n: 0, limit: 100, bad: -1, bound: 5}})
	require.NoError(t, err)

	assert.True(t, res.Exhausted)
	assert.Equal(t, uint64(6), res.Stats.Unique)
	_, ok := c.seen[5]
	assert.True(t, ok)
	_, ok = c.seen[6]
	assert.False(t, ok)
}

func TestDuplicatesDiscarded(t *testing.T) {
	expanded := []int{}
	c := New[diamondState](nil, 0)
	res, err := c.Run([]diamondState{{id: 0, expanded: &expanded}})
	require.NoError(t, err)

	assert.True(t, res.Exhausted)
	// Four unique states, with state 3 generated twice
	assert.Equal(t, uint64(4), res.Stats.Unique)
	assert.Equal(t, uint64(5), res.Stats.Generated)
	// Each state left the frontier exactly once, in breadth-first order
	assert.Equal(t, []int{0, 1, 2, 3}, expanded)
}

func TestDeterministicRerun(t *testing.T) {
	run := func() *Result[counterState] {
		c := New[counterState](nil, 0)
		res, err := c.Run([]counterState{{n: 0, limit: 100, bad: 42, bound: -1}})
		require.NoError(t, err)
		return res
	}
	first := run()
	second := run()

	assert.Equal(t, first.Stats.Unique, second.Stats.Unique)
	assert.Equal(t, first.Stats.Generated, second.Stats.Generated)
	require.Equal(t, len(first.Trace), len(second.Trace))
	for i := range first.Trace {
		assert.True(t, first.Trace[i].Equals(second.Trace[i]))
	}
}

func TestTerminalInitialState(t *testing.T) {
	// A transition relation emitting zero candidates is a legitimate
	// terminal state, not an error
	c := New[counterState](nil, 0)
	res, err := c.Run([]counterState{{n: 0, limit: 0, bad: -1, bound: -1}})
	require.NoError(t, err)

	assert.True(t, res.Exhausted)
	assert.Equal(t, uint64(1), res.Stats.Unique)
	assert.Equal(t, uint64(1), res.Stats.Generated)
}

func TestMultipleInitialStates(t *testing.T) {
	c := New[counterState](nil, 0)
	res, err := c.Run([]counterState{
		{n: 0, limit: 3, bad: -1, bound: -1},
		{n: 100, limit: 102, bad: -1, bound: -1},
	})
	require.NoError(t, err)

	assert.True(t, res.Exhausted)
	// 0..3 and 100..102
	assert.Equal(t, uint64(7), res.Stats.Unique)

	for _, fp := range []uint64{0, 100} {
		e, ok := c.seen[fingerprint.Fingerprint(fp)]
		require.True(t, ok)
		assert.True(t, e.initial)
	}
}

func TestFingerprintCollisionTreatedAsVisited(t *testing.T) {
	c := New[collideState](nil, 0)
	res, err := c.Run([]collideState{{id: 1}, {id: 2}})
	require.NoError(t, err)

	// The colliding state is silently treated as already visited
	assert.True(t, res.Exhausted)
	assert.Equal(t, uint64(2), res.Stats.Generated)
	assert.Equal(t, uint64(1), res.Stats.Unique)
}

func TestCheckerReusableAcrossRuns(t *testing.T) {
	c := New[counterState](nil, 0)

	res, err := c.Run([]counterState{{n: 0, limit: 100, bad: 3, bound: -1}})
	require.NoError(t, err)
	require.False(t, res.Exhausted)

	// A second run starts from a clean table and frontier
	res, err = c.Run([]counterState{{n: 0, limit: 4, bad: -1, bound: -1}})
	require.NoError(t, err)
	assert.True(t, res.Exhausted)
	assert.Equal(t, uint64(5), res.Stats.Unique)
}
