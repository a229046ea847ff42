// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !prod && !nocmpopts

package cmputils

import (
	"github.com/google/go-cmp/cmp"

	"github.com/ava-labs/playgrounds/pop"
	"github.com/ava-labs/playgrounds/reward"
)

// Rewards returns a [cmp.Comparer] for [reward.Reward] values, equating them
// iff they are the same variant and, for treasure chests, hold equal
// treasure.
func Rewards[T comparable]() cmp.Option {
	return cmp.Comparer(func(r, s reward.Reward[T]) bool {
		rt, rok := r.Treasure()
		st, sok := s.Treasure()
		return rok == sok && rt == st
	})
}

// Motorcycles returns a [cmp.Comparer] for [pop.Motorcycle] pointers, equating
// them by name and speed.
func Motorcycles() cmp.Option {
	return ComparerWithNilCheck(func(m, n *pop.Motorcycle) bool {
		return m.Name() == n.Name() && m.Speed() == n.Speed()
	})
}

// Racers returns a set of [cmp.Options] for comparing [pop.Racers]. Birds are
// compared field by field.
func Racers() cmp.Option {
	return cmp.Options{
		cmp.AllowUnexported(pop.FlappyBird{}, pop.Penguin{}, pop.SwiftBird{}),
		// Without the [IfIn] filter, any other use of [Motorcycles] would result
		// in ambiguous comparers.
		IfIn[pop.Racers](Motorcycles()),
	}
}
