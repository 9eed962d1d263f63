// Package spantree computes extremal spanning trees of weighted, undirected
// edge lists: the cheapest (minimum) or heaviest (maximum) set of edges that
// keeps every node reachable, or one such tree per component when the input
// is disconnected.
//
// What is in the box?
//
//	core/          - generic Edge[N, W] triple (weight, from, to), node-set derivation
//	disjointset/   - union-find with path compression and union by size
//	prim_kruskal/  - Kruskal (primary, with observer and options) and Prim (reference)
//	builder/       - deterministic edge-list fixtures: paths, cycles, grids, random graphs
//	edgelist/      - JSON / TOML / YAML documents carrying the edges and the selected tree
//	narrate/       - structured logging of every accept / reject decision
//
// Quick example:
//
//	edges := []core.Edge[string, float64]{
//		core.NewEdge(1.0, "A", "B"),
//		core.NewEdge(2.0, "B", "C"),
//		core.NewEdge(4.0, "A", "C"),
//	}
//	tree, total, err := prim_kruskal.Kruskal(edges)                          // A–B, B–C; 3
//	tree, total, err = prim_kruskal.Kruskal(edges, prim_kruskal.WithMaximize()) // A–C, B–C; 6
//
// Nodes are whatever comparable type the caller uses; weights are any
// integer or float type. The algorithms are pure: they never mutate their
// input, never log and keep no state between calls.
//
//	go get github.com/katalvlaran/spantree
package spantree
