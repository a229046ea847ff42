// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package playground assembles the generics and protocol-oriented
// walkthroughs as named, runnable examples.
package playground

import (
	"errors"
	"fmt"
)

// Playground names.
const (
	GenericsName  = "generics"
	ProtocolsName = "protocols"
)

// ErrUnknownPlayground is returned when looking up a playground that doesn't
// exist.
var ErrUnknownPlayground = errors.New("unknown playground")

// An Example computes a single value to be printed.
type Example struct {
	Name string
	Run  func() (any, error)
}

// value returns an [Example.Run] function that can't fail.
func value[T any](fn func() T) func() (any, error) {
	return func() (any, error) {
		return fn(), nil
	}
}

// A Playground is an ordered walkthrough of examples. Later examples MAY
// depend on state changed by earlier ones so they MUST be run in order, and
// only once. Constructors return a fresh Playground on every call.
type Playground struct {
	Name     string
	Examples []Example
}

// Names returns the names of all playgrounds, in the order returned by [All].
func Names() []string {
	return []string{GenericsName, ProtocolsName}
}

// All returns every playground.
func All() []Playground {
	return []Playground{Generics(), Protocols()}
}

// Lookup returns the named playground.
func Lookup(name string) (Playground, error) {
	switch name {
	case GenericsName:
		return Generics(), nil
	case ProtocolsName:
		return Protocols(), nil
	default:
		return Playground{}, fmt.Errorf("%w %q", ErrUnknownPlayground, name)
	}
}
