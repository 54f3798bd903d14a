// SPDX-License-Identifier: MIT
// Package: graphstat/builder
//
// id_fn.go - index → NodeID schemes.

package builder

import "github.com/katalvlaran/graphstat/core"

// IDFn maps a constructor-local index to a NodeID. It must be injective.
type IDFn func(idx int) core.NodeID

// DefaultIDFn maps i to NodeID(i).
func DefaultIDFn(idx int) core.NodeID {
	return core.NodeID(idx)
}

// OffsetIDFn maps i to off+i.
func OffsetIDFn(off core.NodeID) IDFn {
	return func(idx int) core.NodeID {
		return off + core.NodeID(idx)
	}
}
