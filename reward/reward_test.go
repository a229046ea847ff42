// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reward

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		r    fmt.Stringer
		msg  func() string
		want string
	}{
		{
			r:    TreasureChest("💰"),
			msg:  TreasureChest("💰").Message,
			want: "You got a chest filled with 💰.",
		},
		{
			r:    TreasureChest(42),
			msg:  TreasureChest(42).Message,
			want: "You got a chest filled with 42.",
		},
		{
			r:    Medal[string](),
			msg:  Medal[string]().Message,
			want: "Stand proud, you earned a medal!",
		},
		{
			r:    Reward[int]{},
			msg:  Reward[int]{}.Message,
			want: "Stand proud, you earned a medal!",
		},
	}

	for _, tt := range tests {
		require.Equalf(t, tt.want, tt.msg(), "%v.Message()", tt.r)
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "treasureChest(gold)", TreasureChest("gold").String())
	require.Equal(t, "medal", Medal[int]().String())
}
