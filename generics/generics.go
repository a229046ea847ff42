// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package generics provides free functions parameterised over the capabilities
// of their type arguments: comparability, ordering and addition.
package generics

import (
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/exp/constraints"
)

// A Pair is a single key-value entry of a map.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Pairs returns one [Pair] per entry of `m`. The order of the returned pairs is
// unspecified and MUST NOT be relied upon; it may differ between calls. Use
// [OrderedPairs] if order matters.
func Pairs[K comparable, V any](m map[K]V) []Pair[K, V] {
	out := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, Pair[K, V]{Key: k, Value: v})
	}
	return out
}

// OrderedPairs returns one [Pair] per entry of `m`, in insertion order.
func OrderedPairs[K comparable, V any](m *orderedmap.OrderedMap[K, V]) []Pair[K, V] {
	out := make([]Pair[K, V], 0, m.Len())
	for p := m.Oldest(); p != nil; p = p.Next() {
		out = append(out, Pair[K, V]{Key: p.Key, Value: p.Value})
	}
	return out
}

// Mid returns the median of `vals`, taking the lower of the two middle values
// when `len(vals)` is even. It returns false iff `vals` is empty. The slice is
// not modified.
func Mid[T constraints.Ordered](vals []T) (T, bool) {
	if len(vals) == 0 {
		var zero T
		return zero, false
	}
	sorted := slices.Clone(vals)
	slices.Sort(sorted)
	return sorted[(len(sorted)-1)/2], true
}

// Summable types support the `+` operator.
type Summable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// Add returns `x + y`. Strings are concatenated.
func Add[T Summable](x, y T) T {
	return x + y
}

// An Adder is a user-defined type that can be summed with another of its kind.
// It is the method equivalent of [Summable] as Go operators can't be defined
// on new types.
type Adder[T any] interface {
	Plus(T) T
}

// AddWith returns `x.Plus(y)`.
func AddWith[T Adder[T]](x, y T) T {
	return x.Plus(y)
}
