package checker

import (
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"mcheck/fingerprint"
	"mcheck/tree"
)

// StateSpace returns the explored states as a spanning forest.
//
// Each tree is rooted at an initial state and every edge is the first
// discovered transition to the child state. Children are ordered by
// fingerprint so the forest is deterministic for a deterministic model.
// Only meaningful after Run has returned.
func (c *Checker[S]) StateSpace() []*tree.Tree[S] {
	children := make(map[fingerprint.Fingerprint][]fingerprint.Fingerprint)
	roots := []fingerprint.Fingerprint{}

	fps := maps.Keys(c.seen)
	slices.Sort(fps)
	for _, fp := range fps {
		e := c.seen[fp]
		if e.initial {
			roots = append(roots, fp)
			continue
		}
		children[e.parent] = append(children[e.parent], fp)
	}

	forest := []*tree.Tree[S]{}
	for _, fp := range roots {
		root := tree.New(c.seen[fp].state)
		c.addChildren(root, fp, children)
		forest = append(forest, root)
	}
	return forest
}

func (c *Checker[S]) addChildren(node *tree.Tree[S], fp fingerprint.Fingerprint, children map[fingerprint.Fingerprint][]fingerprint.Fingerprint) {
	for _, childFp := range children[fp] {
		child := node.AddChild(c.seen[childFp].state)
		c.addChildren(child, childFp, children)
	}
}

// Export writes the explored state space to the writer in Newick format,
// one tree per initial state.
func (c *Checker[S]) Export(w io.Writer) error {
	for _, root := range c.StateSpace() {
		if _, err := fmt.Fprintln(w, root.Newick()); err != nil {
			return err
		}
	}
	return nil
}
