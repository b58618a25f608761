package checker

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateSpaceChain(t *testing.T) {
	c := New[counterState](nil, 0)
	_, err := c.Run([]counterState{{n: 0, limit: 3, bad: -1, bound: -1}})
	require.NoError(t, err)

	forest := c.StateSpace()
	require.Len(t, forest, 1)
	assert.Equal(t, 4, forest[0].Len())
	assert.Equal(t, `((("[n: 3]")"[n: 2]")"[n: 1]")"[n: 0]";`, forest[0].Newick())
}

func TestStateSpaceSpanningTree(t *testing.T) {
	// State 3 is reachable via 1 and 2 but appears once, under the parent
	// that discovered it first. Children are ordered by fingerprint.
	expanded := []int{}
	c := New[diamondState](nil, 0)
	_, err := c.Run([]diamondState{{id: 0, expanded: &expanded}})
	require.NoError(t, err)

	forest := c.StateSpace()
	require.Len(t, forest, 1)
	assert.Equal(t, 4, forest[0].Len())
	assert.Equal(t, `(("3")"1","2")"0";`, forest[0].Newick())
}

func TestExportForest(t *testing.T) {
	c := New[counterState](nil, 0)
	_, err := c.Run([]counterState{
		{n: 0, limit: 1, bad: -1, bound: -1},
		{n: 100, limit: 101, bad: -1, bound: -1},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Export(&buf))
	want := `("[n: 1]")"[n: 0]";` + "\n" + `("[n: 101]")"[n: 100]";` + "\n"
	assert.Equal(t, want, buf.String())
}
