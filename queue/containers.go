package queue

import (
	"github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// FIFO is a first-in-first-out Queue.
type FIFO[T any] struct {
	q *arrayqueue.Queue
}

// NewFIFO returns an empty FIFO queue.
func NewFIFO[T any]() *FIFO[T] {
	return &FIFO[T]{q: arrayqueue.New()}
}

// Enter appends item at the back.
func (f *FIFO[T]) Enter(item T) { f.q.Enqueue(item) }

// Leave removes the oldest item.
func (f *FIFO[T]) Leave() (T, bool) { return unwrap[T](f.q.Dequeue()) }

// Peek returns the oldest item.
func (f *FIFO[T]) Peek() (T, bool) { return unwrap[T](f.q.Peek()) }

// DiscardTop drops the oldest item.
func (f *FIFO[T]) DiscardTop() bool {
	_, ok := f.q.Dequeue()
	return ok
}

// Len returns the number of queued items.
func (f *FIFO[T]) Len() int { return f.q.Size() }

// IsEmpty reports whether the queue holds nothing.
func (f *FIFO[T]) IsEmpty() bool { return f.q.Empty() }

// LIFO is a last-in-first-out Queue (a stack).
type LIFO[T any] struct {
	s *arraystack.Stack
}

// NewLIFO returns an empty LIFO queue.
func NewLIFO[T any]() *LIFO[T] {
	return &LIFO[T]{s: arraystack.New()}
}

// Enter pushes item on top.
func (l *LIFO[T]) Enter(item T) { l.s.Push(item) }

// Leave pops the newest item.
func (l *LIFO[T]) Leave() (T, bool) { return unwrap[T](l.s.Pop()) }

// Peek returns the newest item.
func (l *LIFO[T]) Peek() (T, bool) { return unwrap[T](l.s.Peek()) }

// DiscardTop drops the newest item.
func (l *LIFO[T]) DiscardTop() bool {
	_, ok := l.s.Pop()
	return ok
}

// Len returns the number of queued items.
func (l *LIFO[T]) Len() int { return l.s.Size() }

// IsEmpty reports whether the stack holds nothing.
func (l *LIFO[T]) IsEmpty() bool { return l.s.Empty() }

// unwrap converts a gods (interface{}, ok) pair back into T.
func unwrap[T any](v interface{}, ok bool) (T, bool) {
	var zero T
	if !ok {
		return zero, false
	}

	return v.(T), true
}

var (
	_ Queue[int] = (*FIFO[int])(nil)
	_ Queue[int] = (*LIFO[int])(nil)
)
