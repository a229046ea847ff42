// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pop

// A Racer has a speed, which is all that racers care about.
type Racer interface {
	Speed() float64
}

// A Motorcycle is a [Racer] without being a [Bird].
type Motorcycle struct {
	name  string
	speed float64
}

var _ Racer = (*Motorcycle)(nil)

// NewMotorcycle constructs a [Motorcycle] with a speed of 200.
func NewMotorcycle(name string) *Motorcycle {
	return &Motorcycle{
		name:  name,
		speed: 200,
	}
}

func (m *Motorcycle) Name() string   { return m.name }
func (m *Motorcycle) Speed() float64 { return m.speed }

// TopSpeed returns the greatest [Racer.Speed] of all `racers`, or 0 if there
// are none.
func TopSpeed[R Racer](racers []R) float64 {
	if len(racers) == 0 {
		return 0
	}
	top := racers[0].Speed()
	for _, r := range racers[1:] {
		top = max(top, r.Speed())
	}
	return top
}

// Racers is a heterogeneous collection of [Racer] values.
type Racers []Racer

// TopSpeed is equivalent to the [TopSpeed] function.
func (rs Racers) TopSpeed() float64 {
	return TopSpeed(rs)
}

// DefaultRacers returns the line-up from the protocol-oriented playground.
func DefaultRacers() Racers {
	return Racers{
		African,
		European,
		Unknown,
		NewPenguin("King Penguin"),
		NewSwiftBird(5.1),
		NewFlappyBird("Felipe", 3, 20),
		NewMotorcycle("Giacomo"),
	}
}
