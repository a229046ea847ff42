// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pop

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCanFly(t *testing.T) {
	tests := []struct {
		bird     Bird
		wantName string
		want     bool
	}{
		{NewFlappyBird("Felipe", 3, 20), "Felipe", true},
		{NewSwiftBird(1), "Swift 1.0", true},
		{NewSwiftBird(5.1), "Swift 5.1", true},
		{NewPenguin("King Penguin"), "King Penguin", false},
		{African, "African", true},
		{European, "European", true},
		{Unknown, "What do you mean? African or European?", false},
	}

	for _, tt := range tests {
		require.Equalf(t, tt.wantName, tt.bird.Name(), "%T.Name()", tt.bird)
		require.Equalf(t, tt.want, tt.bird.CanFly(), "%T(%q).CanFly()", tt.bird, tt.bird.Name())

		want := "Guess I'll just sit here :["
		if tt.want {
			want = "I can fly"
		}
		require.Equalf(t, want, tt.bird.String(), "%T(%q).String()", tt.bird, tt.bird.Name())
		require.Equal(t, want, fmt.Sprint(tt.bird), "fmt.Sprint() uses String()")
	}
}

func TestFlightCapableDefault(t *testing.T) {
	require.True(t, FlightCapable(Unknown), "Unknown is Flyable even though it overrides CanFly()")
	require.False(t, Unknown.CanFly())
	require.False(t, FlightCapable(NewMotorcycle("Giacomo")))
}

func TestAirspeedVelocity(t *testing.T) {
	tests := []struct {
		f    Flyable
		want float64
	}{
		{NewFlappyBird("Felipe", 3, 20), 180},
		{NewSwiftBird(1), 1000},
		{African, 10},
		{European, 9.9},
	}
	for _, tt := range tests {
		require.InDeltaf(t, tt.want, tt.f.AirspeedVelocity(), 1e-9, "%T.AirspeedVelocity()", tt.f)
	}

	require.PanicsWithValue(t, "You are thrown from the bridge of death!", func() {
		Unknown.AirspeedVelocity()
	})
	require.Zero(t, Unknown.Speed(), "Unknown.Speed() must not consult AirspeedVelocity()")
}

func TestTopSpeed(t *testing.T) {
	racers := DefaultRacers()

	require.InDelta(t, 5100, TopSpeed(racers), 1e-9, "TopSpeed(all)")
	require.InDelta(t, 42, TopSpeed(racers[1:4]), 1e-9, "TopSpeed(racers[1:4])")
	require.InDelta(t, 5100, racers.TopSpeed(), 1e-9, "Racers.TopSpeed()")
	require.InDelta(t, 42, racers[1:4].TopSpeed(), 1e-9, "Racers[1:4].TopSpeed()")

	require.Zero(t, TopSpeed[Racer](nil), "TopSpeed(nil)")
	require.Zero(t, Racers{}.TopSpeed(), "Racers{}.TopSpeed()")

	// Homogeneous collections needn't be boxed as interfaces.
	penguins := []Penguin{NewPenguin("a"), NewPenguin("b")}
	require.Equal(t, 42.0, TopSpeed(penguins))
	require.Equal(t, 200.0, TopSpeed([]*Motorcycle{NewMotorcycle("Giacomo")}))
}

func TestRacingScoreComparisons(t *testing.T) {
	a, b := RacingScore(150), RacingScore(130)

	require.True(t, GreaterOrEqual(a, b), "150 >= 130")
	require.True(t, Greater(a, b), "150 > 130")
	require.False(t, Less(a, b), "150 < 130")
	require.False(t, LessOrEqual(a, b), "150 <= 130")
	require.False(t, Equivalent(a, b), "150 ~ 130")

	require.True(t, GreaterOrEqual(a, a), "150 >= 150")
	require.True(t, LessOrEqual(a, a), "150 <= 150")
	require.True(t, Equivalent(a, a), "150 ~ 150")
	require.False(t, Less(a, a), "150 < 150")

	require.Equal(t, 1, Compare(a, b))
	require.Equal(t, -1, Compare(b, a))
	require.Equal(t, 0, Compare(a, a))
	require.Equal(t, 150, a.Value())

	scores := []RacingScore{5, 1, 4, 2, 3}
	slices.SortFunc(scores, Compare[RacingScore])
	require.Equal(t, []RacingScore{1, 2, 3, 4, 5}, scores)
}

func TestPodium(t *testing.T) {
	scores := []RacingScore{150, 130, 170, 90, 150, 200}

	tests := []struct {
		n    int
		want []RacingScore
	}{
		{n: 3, want: []RacingScore{200, 170, 150}},
		{n: 4, want: []RacingScore{200, 170, 150, 150}},
		{n: 10, want: []RacingScore{200, 170, 150, 150, 130, 90}},
		{n: 0, want: nil},
		{n: -1, want: nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Podium(scores, tt.n)); diff != "" {
			t.Errorf("Podium(%v, %d) diff (-want +got):\n%s", scores, tt.n, diff)
		}
	}
	require.Equal(t, []RacingScore{150, 130, 170, 90, 150, 200}, scores, "Podium() modified its argument")
	require.Empty(t, Podium[RacingScore](nil, 3), "Podium(nil)")
}

func TestBoost(t *testing.T) {
	bird := NewSwiftBird(5)

	var c Cheat = &bird
	for _, want := range []float64{5015, 5030} {
		c.Boost(3)
		require.InDeltaf(t, want, bird.AirspeedVelocity(), 1e-9, "AirspeedVelocity() after Boost(3)")
		require.InDelta(t, want, bird.Speed(), 1e-9, "Speed() tracks AirspeedVelocity()")
	}

	other := NewSwiftBird(5)
	require.InDelta(t, 5000, other.AirspeedVelocity(), 1e-9, "Boost() must not affect other birds")
}
