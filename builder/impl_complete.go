// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_complete.go - Complete(n) and Grid(rows, cols) constructors.
//
// Contract:
//   • Complete: n ≥ 2; each unordered pair {i,j}, i<j, exactly once in lexicographic order.
//   • Grid: rows,cols ≥ 1 and rows·cols ≥ 2; fixed "r,c" IDs (idFn is not used);
//     for each cell in row-major order emit Right then Bottom when present.
//
// Complexity:
//   • Complete: O(n²) edges.
//   • Grid: O(rows·cols) edges.

package builder

import "fmt"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(dst EdgeList, cfg builderConfig) (EdgeList, error) {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return nil, err
		}
		id := ids(cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dst = emit(dst, cfg, id[i], id[j])
			}
		}

		return dst, nil
	}
}

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(dst EdgeList, cfg builderConfig) (EdgeList, error) {
		if rows < 1 || cols < 1 || rows*cols < MinGridCells {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (need ≥ %d cells): %w",
				MethodGrid, rows, cols, MinGridCells, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridVertexID(r, c)
				if c+1 < cols {
					dst = emit(dst, cfg, u, gridVertexID(r, c+1))
				}
				if r+1 < rows {
					dst = emit(dst, cfg, u, gridVertexID(r+1, c))
				}
			}
		}

		return dst, nil
	}
}
