// Package prim_kruskal provides the greedy (Kruskal) spanning forest builder.
// It works on a plain []core.Edge and produces a slice of accepted edges.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/disjointset"
)

// Builder runs Kruskal's algorithm with fixed options and an observer.
// A Builder holds no per-run state: every Build call owns a fresh
// disjoint-set, so one Builder may be reused for many inputs.
type Builder[N comparable, W core.Weight] struct {
	opts     Options
	observer Observer[N, W]
}

// NewBuilder returns a Builder. A nil observer means "no narration".
func NewBuilder[N comparable, W core.Weight](observer Observer[N, W], opts ...Option) *Builder[N, W] {
	if observer == nil {
		observer = NoopObserver[N, W]{}
	}
	if f, ok := observer.(ObserverFunc[N, W]); ok && f == nil {
		observer = NoopObserver[N, W]{}
	}

	return &Builder[N, W]{opts: resolveOptions(opts), observer: observer}
}

// Options returns the resolved options of b.
func (b *Builder[N, W]) Options() Options { return b.opts }

// Build computes the extremal spanning forest of edges.
//
// Steps:
//  1. Validate every edge; any NaN weight or empty label → ErrInvalidEdge (nothing else runs).
//  2. Derive the node set from the endpoints and seed a DisjointSet with it.
//  3. Stable-sort a copy of edges by weight (ascending for Minimum, descending for Maximum).
//  4. For each edge (w, A, B): if Find(A) != Find(B), accept it and Union(A, B);
//     otherwise reject it. Report the decision to the observer.
//  5. Optionally stop once one tree spans all nodes (WithStopWhenSpanning).
//  6. Optionally fail if more than one tree remains (WithRequireConnected).
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func (b *Builder[N, W]) Build(edges []core.Edge[N, W]) (Forest[N, W], error) {
	// 1. Validate before any state exists.
	//    Every bad edge is collected, so the caller sees all offenders at once.
	if err := validateEdges(edges); err != nil {
		return Forest[N, W]{}, err
	}

	// 2. One representative per distinct endpoint.
	nodes := core.Nodes(edges)        // first-appearance order keeps the layout reproducible
	sets := disjointset.New(nodes...) // fresh per run; nothing survives between calls

	// 3. Sort a private copy; the caller's slice keeps its order.
	sorted := core.CloneEdges(edges)
	mode := b.opts.Mode
	// Stable sort: equal weights stay in input order in both modes.
	sort.SliceStable(sorted, func(i, j int) bool {
		return before(mode, sorted[i].Weight, sorted[j].Weight)
	})

	// 4. Greedy walk.
	//    A spanning forest never holds more than |V|-1 edges.
	capacity := len(nodes) - 1
	if capacity < 0 {
		// Empty input: no nodes, no edges.
		capacity = 0
	}
	var (
		tree  = make([]core.Edge[N, W], 0, capacity) // accepted edges, in acceptance order
		total W                                      // running sum of accepted weights
	)
	for _, e := range sorted {
		// 5. A single tree over every node cannot grow further.
		if b.opts.StopWhenSpanning && sets.Count() <= 1 {
			break
		}

		// Look up both representatives (compresses their paths as a side effect).
		rootFrom, err := sets.Find(e.From)
		if err != nil {
			return Forest[N, W]{}, fmt.Errorf("prim_kruskal: find %v: %w", e.From, err)
		}
		rootTo, err := sets.Find(e.To)
		if err != nil {
			return Forest[N, W]{}, fmt.Errorf("prim_kruskal: find %v: %w", e.To, err)
		}

		// Same representative means the edge would close a cycle.
		// Self-loops and parallel copies fall out here too.
		accepted := rootFrom != rootTo
		if accepted {
			// Merge the two trees.
			if _, err = sets.Union(e.From, e.To); err != nil {
				return Forest[N, W]{}, fmt.Errorf("prim_kruskal: union %v-%v: %w", e.From, e.To, err)
			}
			// Keep the edge exactly as given and accumulate its weight.
			tree = append(tree, e)
			total += e.Weight
		}
		// Report after the decision so the observer sees the outcome.
		b.observer.Considered(e, accepted)
	}

	// Components left in the disjoint set are the trees of the forest.
	forest := Forest[N, W]{
		Edges: tree,
		Total: total,
		Nodes: len(nodes),
		Trees: sets.Count(),
	}

	// 6. Strict mode rejects forests.
	if b.opts.RequireConnected && !forest.Spanning() {
		return Forest[N, W]{}, fmt.Errorf("%w: %d components over %d nodes", ErrDisconnected, forest.Trees, forest.Nodes)
	}

	return forest, nil
}

// Kruskal computes the extremal spanning forest of edges and its total weight.
// Options default to DefaultOptions(); see WithMode, WithRequireConnected and
// WithStopWhenSpanning.
//
// Error Conditions:
//   - ErrInvalidEdge  : NaN weight or empty string endpoint (all offenders reported).
//   - ErrDisconnected : WithRequireConnected and more than one component.
func Kruskal[N comparable, W core.Weight](edges []core.Edge[N, W], opts ...Option) ([]core.Edge[N, W], W, error) {
	forest, err := NewBuilder[N, W](nil, opts...).Build(edges)
	if err != nil {
		return nil, 0, err
	}

	return forest.Edges, forest.Total, nil
}

// Build returns the minimum (maximize == false) or maximum (maximize == true)
// spanning forest of edges, in acceptance order. Disconnected input yields one
// tree per component; empty input yields an empty slice and no error.
func Build[N comparable, W core.Weight](edges []core.Edge[N, W], maximize bool) ([]core.Edge[N, W], error) {
	mode := Minimum
	if maximize {
		mode = Maximum
	}
	tree, _, err := Kruskal(edges, WithMode(mode))

	return tree, err
}
