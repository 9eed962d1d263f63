// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2; emits (i-1, i) for i = 1..n-1.
//   - Cycle: n ≥ 3; emits (i, (i+1) mod n) for i = 0..n-1, closing the ring last.
//   - IDs via cfg.idFn; weights via cfg.weightFn(cfg.rng), one draw per edge in emission order.
//
// Complexity: O(n) time, O(n) extra space for the ID slice.

package builder

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(dst EdgeList, cfg builderConfig) (EdgeList, error) {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return nil, err
		}
		id := ids(cfg, n)
		for i := 1; i < n; i++ {
			dst = emit(dst, cfg, id[i-1], id[i])
		}

		return dst, nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
// Every spanning tree of C_n drops exactly one ring edge.
func Cycle(n int) Constructor {
	return func(dst EdgeList, cfg builderConfig) (EdgeList, error) {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return nil, err
		}
		id := ids(cfg, n)
		for i := 0; i < n; i++ {
			dst = emit(dst, cfg, id[i], id[(i+1)%n])
		}

		return dst, nil
	}
}
