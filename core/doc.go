// Package core defines the data model shared by every spantree package:
// the generic Edge triple, the Weight constraint, and a handful of helpers
// over plain edge slices.
//
// An edge list is the only graph representation spantree needs. A graph is
// an ordered []Edge[N, W]; its node set is implied by the endpoints that
// appear in it. There is no separate vertex registry and no adjacency index:
// algorithms that need one (Prim, for instance) build it locally per call.
//
// Node identifiers:
//
//	N may be any comparable type: string labels, integer IDs, small structs.
//	Identity is the only property an algorithm relies on.
//
// Weights:
//
//	W is any integer or floating-point type (see Weight). Weights must be
//	totally ordered for greedy selection to be meaningful, so NaN weights
//	are rejected by the algorithms that consume edges (see IsNaN).
//
// Orientation:
//
//	Edges are undirected for every algorithm in this module: (w, A, B) and
//	(w, B, A) connect the same pair. The From/To order supplied by the caller
//	is nevertheless preserved verbatim in every result so that display layers
//	can render labels exactly as they were given.
//
// Core helpers:
//
//	NewEdge(w, a, b)      // O(1)
//	Nodes(edges)          // O(E), first-appearance order
//	TotalWeight(edges)    // O(E)
//	CloneEdges(edges)     // O(E), independent copy
package core
