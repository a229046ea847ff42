// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package box

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBox(t *testing.T) {
	var b Box[Rose]
	_, ok := b.Contents()
	require.False(t, ok, "Contents() of zero value")

	b.Put(Rose{Smell: "sweet"})
	got, ok := b.Contents()
	require.True(t, ok, "Contents() after Put()")
	require.Equal(t, Rose{Smell: "sweet"}, got)

	b.Put(Rose{Smell: "faint"})
	got, ok = b.Empty()
	require.True(t, ok, "Empty()")
	require.Equal(t, Rose{Smell: "faint"}, got, "Put() replaces contents")

	_, ok = b.Contents()
	require.False(t, ok, "Contents() after Empty()")
}

func TestWrap(t *testing.T) {
	gift := new(Gift[Rose])
	valentines := new(ValentinesBox)

	want := []string{
		"Wrap with plain white paper.",
		"Wrap with ♥♥♥ paper.",
		"Wrap with plain white paper.",
	}
	got := WrapAll(gift, valentines, &valentines.Gift)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WrapAll() diff (-want +got):\n%s", diff)
	}
}

func TestComposedBoxesKeepBoxMethods(t *testing.T) {
	var v ValentinesBox
	v.Put(Rose{Smell: "roses"})
	r, ok := v.Contents()
	require.True(t, ok)
	require.Equal(t, "roses", r.Smell)
}

func TestShoeBoxKeepsFootwear(t *testing.T) {
	tests := []struct {
		name string
		put  Footwear
	}{
		{
			name: "shoe",
			put:  Shoe{Size: 9},
		},
		{
			name: "glass slipper",
			put:  GlassSlipper{Shoe: Shoe{Size: 4}, Owner: "Cinderella"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s ShoeBox
			s.Put(tt.put)
			got, ok := s.Contents()
			require.True(t, ok, "Contents() after Put()")
			require.Equal(t, tt.put, got, "Contents() keeps the concrete footwear")
			require.Equal(t, tt.put.ShoeSize(), got.ShoeSize())

			got, ok = s.Empty()
			require.True(t, ok, "Empty() of full box")
			require.Equal(t, tt.put, got)
			_, ok = s.Contents()
			require.False(t, ok, "Contents() after Empty()")
		})
	}

	var s ShoeBox
	s.Put(GlassSlipper{Shoe: Shoe{Size: 4}, Owner: "Cinderella"})
	got, _ := s.Contents()
	slipper, ok := got.(GlassSlipper)
	require.Truef(t, ok, "%T.Contents() returned %T; want %T", s, got, GlassSlipper{})
	require.Equal(t, "Cinderella", slipper.Owner)
	require.Equal(t, 4, slipper.Size)
}
