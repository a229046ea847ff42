// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import "container/heap"

// A LessThan implementation has a strict ordering.
type LessThan[T any] interface {
	LessThan(T) bool
}

// A Priority is a priority queue, popping the least element first. The zero
// value is valid. It wraps a [heap.Interface] and exposes methods with the same
// semantics and complexity as the [heap] package's functions.
type Priority[T LessThan[T]] struct {
	p priority[T]
}

// Len returns the number of items in the queue.
func (p *Priority[T]) Len() int {
	return p.p.Len()
}

// Push adds an item to the queue.
func (p *Priority[T]) Push(x T) {
	heap.Push(&p.p, x)
}

// Peek returns the least item in the queue without removing it, or false if
// the queue is empty.
func (p *Priority[T]) Peek() (T, bool) {
	return p.p.front()
}

// Pop removes and returns the least item in the queue. It panics if the queue
// is empty.
func (p *Priority[T]) Pop() T {
	return heap.Pop(&p.p).(T)
}

// Grow increase's the queue's allocated buffer to hold up to `n` items.
func (p *Priority[T]) Grow(n int) {
	p.p.grow(n)
}

// priority implements [heap.Interface].
type priority[T LessThan[T]] struct {
	list[T]
}

func (p *priority[T]) Len() int           { return p.len() }
func (p *priority[T]) Less(i, j int) bool { return p.at(i).LessThan(p.at(j)) }
func (p *priority[T]) Swap(i, j int)      { p.swap(i, j) }
func (p *priority[T]) Push(x any)         { p.append(x.(T)) }
func (p *priority[T]) Pop() any           { return p.popBack() }
