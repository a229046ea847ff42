// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pop

// A Cheat can boost its own speed. Implementations need pointer receivers.
type Cheat interface {
	Boost(power float64)
}
