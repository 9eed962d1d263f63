// Package prim_kruskal provides an implementation of Prim's spanning tree algorithm.
// It grows a single tree from a root over an edge list using a binary heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// Prim computes the extremal spanning tree of edges by growing outwards from root.
//
// Only opts.Mode is honored: Prim always builds a single tree, so a root whose
// component does not cover every node is reported as ErrDisconnected.
//
// Error Conditions:
//   - ErrInvalidEdge  : NaN weight or empty string endpoint.
//   - ErrUnknownRoot  : root is not an endpoint of any edge.
//   - ErrDisconnected : the tree from root does not reach every node.
//
// Steps:
//  1. Validate edges; build an adjacency index of half-edges (self-loops skipped).
//  2. Mark root visited and push its incident edges into the heap.
//  3. While the heap is not empty and the tree has < |V|-1 edges:
//     a. Pop the best edge by Mode (ties: input order).
//     b. Skip it if its far endpoint is already visited (it would close a cycle).
//     c. Otherwise accept it, mark the far endpoint, push that endpoint's edges.
//  4. If the tree has < |V|-1 edges → ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim[N comparable, W core.Weight](edges []core.Edge[N, W], root N, opts ...Option) ([]core.Edge[N, W], W, error) {
	o := resolveOptions(opts)

	// 1. Validate and index.
	if err := validateEdges(edges); err != nil {
		return nil, 0, err
	}
	nodes := core.Nodes(edges)
	adjacency := make(map[N][]halfEdge[N], len(nodes))
	for i, e := range edges {
		if e.IsLoop() {
			continue
		}
		adjacency[e.From] = append(adjacency[e.From], halfEdge[N]{index: i, to: e.To})
		adjacency[e.To] = append(adjacency[e.To], halfEdge[N]{index: i, to: e.From})
	}

	known := false
	for _, n := range nodes {
		if n == root {
			known = true
			break
		}
	}
	if !known {
		return nil, 0, fmt.Errorf("%w: %v", ErrUnknownRoot, root)
	}

	n := len(nodes)
	tree := make([]core.Edge[N, W], 0, n-1)
	var total W

	// 2. Seed the heap from root.
	visited := make(map[N]bool, n)
	pq := &edgePQ[N, W]{mode: o.Mode, edges: edges}
	heap.Init(pq)
	visited[root] = true
	for _, h := range adjacency[root] {
		heap.Push(pq, h)
	}

	// 3. Grow the tree.
	for pq.Len() > 0 && len(tree) < n-1 {
		h := heap.Pop(pq).(halfEdge[N])
		if visited[h.to] {
			continue
		}
		visited[h.to] = true
		e := edges[h.index]
		tree = append(tree, e)
		total += e.Weight

		for _, next := range adjacency[h.to] {
			if !visited[next.to] {
				heap.Push(pq, next)
			}
		}
	}

	// 4. One tree must cover all nodes.
	if len(tree) < n-1 {
		return nil, 0, fmt.Errorf("%w: tree from %v reaches %d of %d nodes", ErrDisconnected, root, len(tree)+1, n)
	}

	return tree, total, nil
}

// halfEdge is one direction of an input edge, seen from its near endpoint.
type halfEdge[N comparable] struct {
	index int // position in the input slice; also the tie-breaker
	to    N   // far endpoint
}

// edgePQ implements heap.Interface over half-edges ordered by Mode, then by
// input position so equal weights pop in a deterministic order.
type edgePQ[N comparable, W core.Weight] struct {
	mode  Mode
	edges []core.Edge[N, W]
	items []halfEdge[N]
}

func (pq *edgePQ[N, W]) Len() int { return len(pq.items) }

func (pq *edgePQ[N, W]) Less(i, j int) bool {
	wi, wj := pq.edges[pq.items[i].index].Weight, pq.edges[pq.items[j].index].Weight
	if wi != wj {
		return before(pq.mode, wi, wj)
	}

	return pq.items[i].index < pq.items[j].index
}

func (pq *edgePQ[N, W]) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *edgePQ[N, W]) Push(x any) { pq.items = append(pq.items, x.(halfEdge[N])) }

func (pq *edgePQ[N, W]) Pop() any {
	old := pq.items
	last := old[len(old)-1]
	pq.items = old[:len(old)-1]

	return last
}
