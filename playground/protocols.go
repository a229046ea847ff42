// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package playground

import (
	"fmt"

	"github.com/ava-labs/playgrounds/pop"
)

// Protocols returns the protocol-oriented playground.
func Protocols() Playground {
	racers := pop.DefaultRacers()
	cheater := pop.NewSwiftBird(5)

	boost := func() float64 {
		var c pop.Cheat = &cheater
		c.Boost(3)
		return cheater.AirspeedVelocity()
	}

	return Playground{
		Name: ProtocolsName,
		Examples: []Example{
			{
				Name: "swift bird can fly",
				Run:  value(pop.NewSwiftBird(1).CanFly),
			},
			{
				Name: "african swallow can fly",
				Run:  value(pop.African.CanFly),
			},
			{
				Name: "unknown swallow can fly",
				Run:  value(pop.Unknown.CanFly),
			},
			{
				Name: "descriptions",
				Run: value(func() []string {
					var out []string
					for _, b := range []pop.Bird{
						pop.NewPenguin("King Penguin"),
						pop.NewFlappyBird("Felipe", 3, 20),
						pop.Unknown,
					} {
						out = append(out, fmt.Sprintf("%s: %v", b.Name(), b))
					}
					return out
				}),
			},
			{
				Name: "top speed",
				Run:  value(func() float64 { return pop.TopSpeed(racers) }),
			},
			{
				Name: "top speed of racers[1:4]",
				Run:  value(func() float64 { return pop.TopSpeed(racers[1:4]) }),
			},
			{
				Name: "racers top speed",
				Run:  value(racers.TopSpeed),
			},
			{
				Name: "racing score 150 >= 130",
				Run: value(func() bool {
					return pop.GreaterOrEqual(pop.RacingScore(150), pop.RacingScore(130))
				}),
			},
			{
				Name: "podium",
				Run: value(func() []pop.RacingScore {
					return pop.Podium([]pop.RacingScore{150, 130, 170, 90, 200}, 3)
				}),
			},
			{Name: "boost 3", Run: value(boost)},
			{Name: "boost 3", Run: value(boost)},
		},
	}
}
