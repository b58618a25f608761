package queue

// A Queue is an unbounded FIFO worklist.
//
// Elements leave in exactly the order they were pushed. The queue is backed
// by a slice with a head index; the drained prefix is compacted away once it
// dominates the backing array.
type Queue[T any] struct {
	items []T
	head  int
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		items: make([]T, 0),
		head:  0,
	}
}

// Push appends an element to the back of the queue.
func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
}

// Pop removes and returns the element at the front of the queue.
// The second return value is false if the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	if q.head >= len(q.items) {
		var zero T
		return zero, false
	}
	v := q.items[q.head]
	// Release the reference so drained elements can be collected
	var zero T
	q.items[q.head] = zero
	q.head++

	// Compact once more than half of the backing array is drained
	if q.head > 32 && q.head > len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return v, true
}

// Len returns the number of elements currently in the queue.
func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}
