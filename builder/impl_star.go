// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_star.go - Star(n) and Wheel(n) constructors.
//
// Contract:
//   - Star: n ≥ 2; hub "Center" plus leaves idFn(1..n-1); spokes Center→leaf in leaf order.
//   - Wheel: n ≥ 4; ring C_{n-1} over idFn(0..n-2) first, then spokes Center→rim in rim order.
//   - Weight draws follow emission order.
//
// Complexity: O(n).

package builder

import "fmt"

// Star returns a Constructor that builds a star with n nodes (hub included).
// A star is its own unique spanning tree.
func Star(n int) Constructor {
	return func(dst EdgeList, cfg builderConfig) (EdgeList, error) {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return nil, err
		}
		for i := 1; i < n; i++ {
			dst = emit(dst, cfg, CenterVertexID, cfg.idFn(i))
		}

		return dst, nil
	}
}

// Wheel returns a Constructor that builds W_n = C_{n-1} + "Center".
func Wheel(n int) Constructor {
	return func(dst EdgeList, cfg builderConfig) (EdgeList, error) {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return nil, err
		}

		// Outer ring first, from the same cfg so weights stay in one stream.
		dst, err := Cycle(n-1)(dst, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}
		for i := 0; i < n-1; i++ {
			dst = emit(dst, cfg, CenterVertexID, cfg.idFn(i))
		}

		return dst, nil
	}
}
