// Package builder provides internal helpers shared by the constructors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// emit appends the edge u–v with the next configured weight.
func emit(dst EdgeList, cfg builderConfig, u, v string) EdgeList {
	return append(dst, core.NewEdge(cfg.weight(), u, v))
}

// ids precomputes the first n IDs of the configured scheme.
// Complexity: O(n) time and space.
func ids(cfg builderConfig, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = cfg.idFn(i)
	}

	return out
}

// gridVertexID renders the fixed "r,c" coordinate ID used by Grid.
func gridVertexID(r, c int) string {
	return fmt.Sprintf("%d,%d", r, c)
}
