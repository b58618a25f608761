package tree

import (
	"fmt"
	"strings"
)

// A Tree node with a payload and an arbitrary number of children.
//
// Used to render the explored state space as a spanning forest rooted at the
// initial states.
type Tree[T any] struct {
	payload  T
	parent   *Tree[T]
	children []*Tree[T]
	depth    int
}

// New creates a new root node with the provided payload.
func New[T any](payload T) *Tree[T] {
	return &Tree[T]{
		payload:  payload,
		parent:   nil,
		children: []*Tree[T]{},
		depth:    0,
	}
}

// AddChild adds a new node with the provided payload as a child of the
// current node and returns it.
func (t *Tree[T]) AddChild(payload T) *Tree[T] {
	node := &Tree[T]{
		payload:  payload,
		parent:   t,
		children: []*Tree[T]{},
		depth:    t.depth + 1,
	}
	t.children = append(t.children, node)
	return node
}

// Len returns the total number of nodes in the subtree rooted at t.
func (t *Tree[T]) Len() int {
	n := 1
	for _, child := range t.children {
		n += child.Len()
	}
	return n
}

func (t *Tree[T]) Payload() T {
	return t.payload
}

func (t *Tree[T]) Parent() *Tree[T] {
	return t.parent
}

func (t *Tree[T]) Children() []*Tree[T] {
	return t.children
}

func (t *Tree[T]) Depth() int {
	return t.depth
}

func (t *Tree[T]) IsRoot() bool {
	return t.parent == nil
}

func (t *Tree[T]) IsLeaf() bool {
	return len(t.children) == 0
}

// String renders the subtree with one payload per line, indented by depth.
func (t *Tree[T]) String() string {
	out := strings.Builder{}
	for i := 0; i < t.depth; i++ {
		out.WriteString("-")
	}
	out.WriteString(fmt.Sprintf("%v\n", t.payload))
	for _, child := range t.children {
		out.WriteString(child.String())
	}
	return out.String()
}

// Newick renders the subtree in Newick tree format.
func (t *Tree[T]) Newick() string {
	out := strings.Builder{}
	if len(t.children) > 0 {
		out.WriteString("(")
		for i, child := range t.children {
			if i > 0 {
				out.WriteString(",")
			}
			out.WriteString(child.Newick())
		}
		out.WriteString(")")
	}
	out.WriteString(fmt.Sprintf("%q", fmt.Sprintf("%v", t.payload)))
	if t.IsRoot() {
		out.WriteString(";")
	}
	return out.String()
}
