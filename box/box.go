// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package box specialises a generic container by composition. Each specialised
// box embeds the more general one, inheriting its methods and optionally
// shadowing them.
package box

// A Box can hold at most one T. The zero value is an empty box.
type Box[T any] struct {
	item T
	full bool
}

// Put places `x` in the box, replacing anything already there.
func (b *Box[T]) Put(x T) {
	b.item = x
	b.full = true
}

// Contents returns the item in the box, if any.
func (b *Box[T]) Contents() (T, bool) {
	return b.item, b.full
}

// Empty removes and returns the item in the box, if any.
func (b *Box[T]) Empty() (T, bool) {
	x, ok := b.item, b.full
	*b = Box[T]{}
	return x, ok
}

// A Wrapper describes how it is gift wrapped.
type Wrapper interface {
	Wrap() string
}

// A Gift is a [Box] with wrapping paper.
type Gift[T any] struct {
	Box[T]
}

var _ Wrapper = (*Gift[Rose])(nil)

// Wrap returns the default wrapping for all gifts.
func (*Gift[T]) Wrap() string {
	return "Wrap with plain white paper."
}

// A Rose is a flower with a smell.
type Rose struct {
	Smell string
}

// A ValentinesBox is a [Gift] of a [Rose], wrapped differently.
type ValentinesBox struct {
	Gift[Rose]
}

var _ Wrapper = (*ValentinesBox)(nil)

// Wrap shadows [Gift.Wrap].
func (*ValentinesBox) Wrap() string {
	return "Wrap with ♥♥♥ paper."
}

// Footwear is anything that fits in a [ShoeBox].
type Footwear interface {
	ShoeSize() int
}

// A Shoe is regular footwear.
type Shoe struct {
	Size int
}

var _ Footwear = Shoe{}

// ShoeSize returns `s.Size`.
func (s Shoe) ShoeSize() int { return s.Size }

// A GlassSlipper is a single [Shoe], destined for a princess. It is [Footwear]
// through the promoted [Shoe.ShoeSize].
type GlassSlipper struct {
	Shoe
	Owner string
}

var _ Footwear = GlassSlipper{}

// A ShoeBox is a [Box] that can contain any [Footwear], glass slippers
// included.
type ShoeBox struct {
	Box[Footwear]
}

// WrapAll returns the wrapping of each [Wrapper], in order.
func WrapAll(ws ...Wrapper) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Wrap()
	}
	return out
}
