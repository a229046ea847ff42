// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import "iter"

// A list is a ring buffer with constant-time removal from either end and
// amortised constant-time appending. It backs both [FIFO] and [Priority].
type list[T any] struct {
	ring  []T // len(ring) MUST == cap(ring)
	start int // 0 <= start < len(ring), or 0 if the ring is empty
	n     int // 0 <= n <= len(ring)
}

func (l *list[T]) cap() int {
	return len(l.ring)
}

func (l *list[T]) len() int {
	return l.n
}

// ringIndex maps the logical index `i` onto the ring. The list MUST have
// non-zero capacity.
func (l *list[T]) ringIndex(i int) int {
	return (l.start + i) % l.cap()
}

// append places `x` after the last element, doubling the capacity (or setting
// it to 1) if the list is full.
func (l *list[T]) append(x T) {
	if l.n == l.cap() {
		l.grow(max(2*l.cap(), 1))
	}
	l.ring[l.ringIndex(l.n)] = x
	l.n++
}

// front returns the first element, if any, without removing it.
func (l *list[T]) front() (T, bool) {
	if l.n == 0 {
		var zero T
		return zero, false
	}
	return l.ring[l.start], true
}

// at returns the i'th element. The returned value is undefined if `i` is not
// in `[0,l.len())`.
func (l *list[T]) at(i int) T {
	return l.ring[l.ringIndex(i)]
}

func (l *list[T]) clearAt(i int) {
	var zero T
	l.ring[l.ringIndex(i)] = zero
}

// popFront removes and returns the first element, if any. The vacated slot is
// zeroed so the list doesn't keep the value reachable.
func (l *list[T]) popFront() (T, bool) {
	x, ok := l.front()
	if !ok {
		return x, false
	}
	l.clearAt(0)
	l.start = l.ringIndex(1)
	l.n--
	return x, true
}

// popBack removes and returns the last element. It panics if the list is
// empty.
func (l *list[T]) popBack() T {
	if l.n == 0 {
		panic("pop from back of empty list")
	}
	i := l.n - 1
	x := l.at(i)
	l.clearAt(i)
	l.n--
	return x
}

func (l *list[T]) swap(i, j int) {
	i, j = l.ringIndex(i), l.ringIndex(j)
	l.ring[i], l.ring[j] = l.ring[j], l.ring[i]
}

// all yields every element from front to back.
func (l *list[T]) all() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range l.n {
			if !yield(l.at(i)) {
				return
			}
		}
	}
}

// grow increases the list's capacity to n, if necessary. It is O(l.len()).
func (l *list[T]) grow(n int) {
	if n <= l.cap() {
		return
	}
	b := make([]T, n)
	for i := range l.n {
		b[i] = l.at(i)
	}
	l.ring = b
	l.start = 0
}
