package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFifoOrder(t *testing.T) {
	q := New[int]()
	for i := 0; i < 10; i++ {
		q.Push(i)
	}
	require.Equal(t, 10, q.Len())

	for i := 0; i < 10; i++ {
		v, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, 0, q.Len())
}

func TestQueuePopEmpty(t *testing.T) {
	q := New[string]()
	v, ok := q.Pop()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestQueueInterleavedAcrossCompaction(t *testing.T) {
	// Interleave pushes and pops well past the compaction threshold and
	// verify that FIFO order survives the internal copy.
	q := New[int]()
	next := 0
	expected := 0
	for round := 0; round < 100; round++ {
		for i := 0; i < 3; i++ {
			q.Push(next)
			next++
		}
		for i := 0; i < 2; i++ {
			v, ok := q.Pop()
			require.True(t, ok)
			require.Equal(t, expected, v)
			expected++
		}
	}
	for {
		v, ok := q.Pop()
		if !ok {
			break
		}
		require.Equal(t, expected, v)
		expected++
	}
	assert.Equal(t, next, expected)
}
