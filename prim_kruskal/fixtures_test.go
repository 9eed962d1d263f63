package prim_kruskal_test

import (
	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/disjointset"
)

type edge = core.Edge[string, float64]

// e is shorthand for core.NewEdge on the string/float64 fixtures.
func e(w float64, a, b string) edge { return core.NewEdge(w, a, b) }

// routeEdges is the 7-node scenario used throughout these tests.
// Minimum tree: 19 over 6 edges. Maximum tree: 33 over 6 edges.
func routeEdges() []edge {
	return []edge{
		e(2, "R", "E"), e(4, "R", "C"), e(7, "E", "G"),
		e(3, "E", "F"), e(1, "C", "F"), e(5, "C", "D"),
		e(2, "G", "D"), e(8, "F", "B"), e(6, "D", "B"),
	}
}

// buildTriangle returns A-B(1), B-C(2), A-C(3); its minimum tree weighs 3.
func buildTriangle() []edge {
	return []edge{e(1, "A", "B"), e(2, "B", "C"), e(3, "A", "C")}
}

// buildMediumGraph returns a connected multigraph over n nodes with
// edgesCount edges, seeded for reproducibility.
func buildMediumGraph(n, edgesCount int) []edge {
	edges, err := builder.BuildEdges(
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithPrefixIDs("V"), builder.WithUniformWeight(1, 100)},
		builder.RandomConnected(n, edgesCount-(n-1)),
	)
	if err != nil {
		panic(err)
	}

	return edges
}

// isForest replays tree through a fresh DisjointSet and reports whether no
// edge closes a cycle.
func isForest(tree []edge) bool {
	sets := disjointset.New(core.Nodes(tree)...)
	for _, x := range tree {
		joined, err := sets.Union(x.From, x.To)
		if err != nil || !joined {
			return false
		}
	}

	return true
}

// bruteForceTotals enumerates every (|V|-1)-subset of edges and returns the
// lightest and heaviest spanning tree totals. ok is false when none spans.
func bruteForceTotals(edges []edge) (lo, hi float64, ok bool) {
	nodes := core.Nodes(edges)
	k := len(nodes) - 1
	pick := make([]edge, 0, k)

	var walk func(start int)
	walk = func(start int) {
		if len(pick) == k {
			if !isForest(pick) || len(core.Nodes(pick)) != len(nodes) {
				return
			}
			total := core.TotalWeight(pick)
			if !ok || total < lo {
				lo = total
			}
			if !ok || total > hi {
				hi = total
			}
			ok = true
			return
		}
		for i := start; i <= len(edges)-(k-len(pick)); i++ {
			pick = append(pick, edges[i])
			walk(i + 1)
			pick = pick[:len(pick)-1]
		}
	}
	walk(0)

	return lo, hi, ok
}
