// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pop demonstrates interface-oriented polymorphism: small capability
// interfaces, default behaviour supplied by helpers that implementations opt
// into, and generic functions constrained by those capabilities.
package pop

import (
	"fmt"
	"strconv"
	"strings"
)

// A Bird has a name and may or may not be able to fly.
type Bird interface {
	Name() string
	CanFly() bool
	fmt.Stringer
}

// A Flyable has an airspeed.
type Flyable interface {
	AirspeedVelocity() float64
}

// FlightCapable is the default implementation of [Bird.CanFly]: a bird can fly
// iff it is [Flyable]. Implementations delegate to it unless they know better.
func FlightCapable(b any) bool {
	_, ok := b.(Flyable)
	return ok
}

// Describe is the default implementation of [Bird.String].
func Describe(b Bird) string {
	if b.CanFly() {
		return "I can fly"
	}
	return "Guess I'll just sit here :["
}

var (
	_ interface {
		Bird
		Flyable
		Racer
	} = FlappyBird{}
	_ interface {
		Bird
		Flyable
		Racer
	} = SwiftBird{}
	_ interface {
		Bird
		Flyable
		Racer
	} = African
	_ interface {
		Bird
		Racer
	} = Penguin{}
	_ Cheat = (*SwiftBird)(nil)
)

// A FlappyBird flies by flapping.
type FlappyBird struct {
	name                 string
	amplitude, frequency float64
}

// NewFlappyBird constructs a [FlappyBird].
func NewFlappyBird(name string, amplitude, frequency float64) FlappyBird {
	return FlappyBird{
		name:      name,
		amplitude: amplitude,
		frequency: frequency,
	}
}

func (b FlappyBird) Name() string   { return b.name }
func (b FlappyBird) CanFly() bool   { return FlightCapable(b) }
func (b FlappyBird) String() string { return Describe(b) }
func (b FlappyBird) Speed() float64 { return b.AirspeedVelocity() }

// AirspeedVelocity returns `3 × frequency × amplitude`.
func (b FlappyBird) AirspeedVelocity() float64 {
	return 3 * b.frequency * b.amplitude
}

// A Penguin can't fly.
type Penguin struct {
	name string
}

// NewPenguin constructs a [Penguin].
func NewPenguin(name string) Penguin {
	return Penguin{name: name}
}

func (p Penguin) Name() string   { return p.name }
func (p Penguin) CanFly() bool   { return FlightCapable(p) }
func (p Penguin) String() string { return Describe(p) }

// Speed is a full waddle.
func (Penguin) Speed() float64 { return 42 }

// A SwiftBird gets faster with each version.
type SwiftBird struct {
	version     float64
	speedFactor float64
}

// NewSwiftBird constructs a [SwiftBird] of the specified version.
func NewSwiftBird(version float64) SwiftBird {
	return SwiftBird{
		version:     version,
		speedFactor: 1000,
	}
}

// Name returns "Swift <version>", always including a decimal point.
func (b SwiftBird) Name() string {
	v := strconv.FormatFloat(b.version, 'f', -1, 64)
	if !strings.Contains(v, ".") {
		v += ".0"
	}
	return "Swift " + v
}

func (b SwiftBird) CanFly() bool   { return FlightCapable(b) }
func (b SwiftBird) String() string { return Describe(b) }
func (b SwiftBird) Speed() float64 { return b.AirspeedVelocity() }

// AirspeedVelocity returns `version × speed factor`.
func (b SwiftBird) AirspeedVelocity() float64 {
	return b.version * b.speedFactor
}

// Boost increases the bird's speed factor by `power`.
func (b *SwiftBird) Boost(power float64) {
	b.speedFactor += power
}

// An UnladenSwallow is a [Bird] of known or unknown origin.
type UnladenSwallow uint8

// Unladen swallows.
const (
	African UnladenSwallow = iota
	European
	Unknown
)

// Name returns the swallow's origin.
func (s UnladenSwallow) Name() string {
	switch s {
	case African:
		return "African"
	case European:
		return "European"
	default:
		return "What do you mean? African or European?"
	}
}

// CanFly overrides the [FlightCapable] default; a swallow of unknown origin
// doesn't fly.
func (s UnladenSwallow) CanFly() bool {
	return s != Unknown
}

func (s UnladenSwallow) String() string { return Describe(s) }

// AirspeedVelocity panics if `s` is [Unknown].
func (s UnladenSwallow) AirspeedVelocity() float64 {
	switch s {
	case African:
		return 10
	case European:
		return 9.9
	default:
		panic("You are thrown from the bridge of death!")
	}
}

// Speed is zero for swallows that can't fly.
func (s UnladenSwallow) Speed() float64 {
	if !s.CanFly() {
		return 0
	}
	return s.AirspeedVelocity()
}
