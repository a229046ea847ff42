// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package reward implements a tagged variant carrying an associated value.
package reward

import "fmt"

type kind uint8

const (
	medal kind = iota // zero value
	treasureChest
)

// A Reward is either a treasure chest holding a T, or a medal. The zero value
// is a medal.
type Reward[T any] struct {
	kind     kind
	treasure T
}

// TreasureChest returns a chest filled with `treasure`.
func TreasureChest[T any](treasure T) Reward[T] {
	return Reward[T]{
		kind:     treasureChest,
		treasure: treasure,
	}
}

// Medal returns a medal.
func Medal[T any]() Reward[T] {
	return Reward[T]{kind: medal}
}

// Treasure returns the contents of a treasure chest, or false if `r` is a
// medal.
func (r Reward[T]) Treasure() (T, bool) {
	return r.treasure, r.kind == treasureChest
}

// IsMedal reports whether `r` is a medal.
func (r Reward[T]) IsMedal() bool {
	return r.kind == medal
}

// Message describes the reward to its recipient.
func (r Reward[T]) Message() string {
	switch r.kind {
	case treasureChest:
		return fmt.Sprintf("You got a chest filled with %v.", r.treasure)
	case medal:
		return "Stand proud, you earned a medal!"
	default:
		panic(fmt.Sprintf("unknown reward kind %d", r.kind))
	}
}

func (r Reward[T]) String() string {
	switch r.kind {
	case treasureChest:
		return fmt.Sprintf("treasureChest(%v)", r.treasure)
	case medal:
		return "medal"
	default:
		return fmt.Sprintf("Reward(%d)", r.kind)
	}
}
