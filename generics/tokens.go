// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package generics

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Tokens is an unsigned 256-bit amount. The zero value is zero tokens.
type Tokens struct {
	v uint256.Int
}

var _ Adder[Tokens] = Tokens{}

// NewTokens returns `n` tokens.
func NewTokens(n uint64) Tokens {
	var t Tokens
	t.v.SetUint64(n)
	return t
}

// ParseTokens parses a base-10 amount.
func ParseTokens(s string) (Tokens, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Tokens{}, fmt.Errorf("parsing %q as tokens: %w", s, err)
	}
	return Tokens{v: *v}, nil
}

// Plus returns `t + u`, wrapping around on overflow of 256 bits.
func (t Tokens) Plus(u Tokens) Tokens {
	var sum Tokens
	sum.v.Add(&t.v, &u.v)
	return sum
}

// Equal reports whether `t == u`.
func (t Tokens) Equal(u Tokens) bool {
	return t.v.Eq(&u.v)
}

func (t Tokens) String() string {
	return t.v.ToBig().String()
}
