// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package queue provides generic, single-owner queues.
package queue

import "iter"

// A FIFO is a first-in-first-out queue. The zero value is an empty queue ready
// for use. It is not thread safe.
type FIFO[T any] struct {
	l list[T]
}

// Len returns the number of elements in the queue.
func (f *FIFO[T]) Len() int {
	return f.l.len()
}

// Enqueue adds `x` to the back of the queue.
func (f *FIFO[T]) Enqueue(x T) {
	f.l.append(x)
}

// Dequeue removes and returns the element at the front of the queue. If the
// queue is empty it returns the zero value and false.
func (f *FIFO[T]) Dequeue() (T, bool) {
	return f.l.popFront()
}

// Peek returns the element that the next call to [FIFO.Dequeue] would return,
// without removing it.
func (f *FIFO[T]) Peek() (T, bool) {
	return f.l.front()
}

// All returns an iterator over the queue's elements, front to back. The queue
// MUST NOT be modified during iteration.
func (f *FIFO[T]) All() iter.Seq[T] {
	return f.l.all()
}

// Grow increases the queue's allocated buffer to hold up to `n` items. This
// does not place a limit on the size of the queue, but pre-allocates memory.
func (f *FIFO[T]) Grow(n int) {
	f.l.grow(n)
}
