// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pop

import "github.com/ava-labs/playgrounds/queue"

// A Score has an integer value and a strict ordering, from which all other
// comparisons are derived.
type Score[S any] interface {
	Value() int
	queue.LessThan[S]
}

// A RacingScore is ordered by its value.
type RacingScore int

var _ Score[RacingScore] = RacingScore(0)

// Value returns `s` as an int.
func (s RacingScore) Value() int { return int(s) }

// LessThan reports whether `s < t`.
func (s RacingScore) LessThan(t RacingScore) bool { return s < t }

// Less reports whether `a < b`.
func Less[T queue.LessThan[T]](a, b T) bool { return a.LessThan(b) }

// Greater reports whether `a > b`.
func Greater[T queue.LessThan[T]](a, b T) bool { return b.LessThan(a) }

// LessOrEqual reports whether `a <= b`.
func LessOrEqual[T queue.LessThan[T]](a, b T) bool { return !b.LessThan(a) }

// GreaterOrEqual reports whether `a >= b`.
func GreaterOrEqual[T queue.LessThan[T]](a, b T) bool { return !a.LessThan(b) }

// Equivalent reports whether neither of `a` and `b` is less than the other.
func Equivalent[T queue.LessThan[T]](a, b T) bool {
	return !a.LessThan(b) && !b.LessThan(a)
}

// Compare returns -1, 0, or +1, with the same semantics as [cmp.Compare], for
// use with [slices.SortFunc] and friends.
func Compare[T queue.LessThan[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}

// descending inverts the ordering of a [Score] so a [queue.Priority] pops the
// greatest first.
type descending[S Score[S]] struct {
	s S
}

func (d descending[S]) LessThan(e descending[S]) bool {
	return e.s.LessThan(d.s)
}

// Podium returns the `n` greatest scores, greatest first. If there are fewer
// than `n` scores, all of them are returned. Equivalent scores are returned in
// an unspecified order.
func Podium[S Score[S]](scores []S, n int) []S {
	var pq queue.Priority[descending[S]]
	pq.Grow(len(scores))
	for _, s := range scores {
		pq.Push(descending[S]{s})
	}

	n = min(n, pq.Len())
	if n <= 0 {
		return nil
	}
	out := make([]S, n)
	for i := range out {
		out[i] = pq.Pop().s
	}
	return out
}
