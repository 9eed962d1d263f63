// Package prim_kruskal computes extremal (minimum or maximum total weight)
// spanning trees and forests over an undirected, weighted edge list.
//
// What & Why
//
//   - What is an extremal spanning tree?
//     Given a connected, undirected, weighted graph G = (V, E), a spanning tree
//     T ⊆ E connects all of V with exactly |V|−1 edges and no cycle. The minimum
//     spanning tree minimizes the sum of weights in T; the maximum spanning tree
//     maximizes it.
//
//   - What happens on a disconnected graph?
//     Greedy selection produces one tree per connected component: a spanning
//     forest with |V| − (number of components) edges. This is a valid result,
//     not an error, unless WithRequireConnected is set.
//
//   - Why it matters:
//
//   - Network design: cheapest backbone that still reaches every site.
//
//   - Clustering: cut the heaviest edges of a minimum tree to split clusters.
//
//   - Bottleneck routing: a maximum spanning tree carries the widest path between any two nodes.
//
// Algorithms Provided
//
//   - Kruskal / Build / Builder.Build
//
//   - Strategy: stable-sort a copy of the edges (ascending for Minimum,
//     descending for Maximum), then walk them once. A disjointset.DisjointSet
//     seeded with every endpoint decides each edge: endpoints in different
//     groups → accept and union; same group → reject (it would close a cycle).
//
//   - Self-loops and repeated parallel edges fall out of the same test: their
//     endpoints are already in one group, so they are never accepted.
//
//   - Complexity: O(E log E) for the sort + O(E·α(V)) for the disjoint-set pass.
//     Memory: O(V + E).
//
//   - Prim
//
//   - Strategy: grow a single tree from a root using a binary heap of candidate
//     edges ordered by Mode. Used as an independent second algorithm to
//     cross-check Kruskal totals on connected inputs.
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
// Observing the Walk
//
//	Builder accepts an Observer that is called once per edge considered, in
//	processing order, with the decision taken. The algorithm itself never
//	writes to an output stream; see package narrate for a logging observer.
//
// Determinism
//
//   - Sorting is stable, so among equal weights the input order decides which
//     edge is considered first. Totals never depend on this; the identity of
//     the chosen edge among equal-weight alternatives does.
//   - Accepted edges keep the From/To orientation they were given and are returned
//     in the order they were accepted.
//   - The input slice is never reordered or modified.
//
// Error Conditions
//
//   - ErrInvalidEdge
//
//   - an edge has a NaN weight, or an empty string endpoint. Every offending
//     edge is reported (aggregated with go-multierror) and nothing is computed.
//
//   - ErrDisconnected
//
//   - WithRequireConnected is set and the result has more than one tree, OR
//
//   - Prim's tree from the root does not reach every node.
//
//   - ErrUnknownRoot (Prim only)
//
//   - the root is not an endpoint of any edge.
//
//   - ErrUnknownMode
//
//   - ParseMode received an unrecognized mode name.
//
// GoDoc Summary
//
//   - Build(edges, maximize) ([]core.Edge, error)
//   - Kruskal(edges, opts...) ([]core.Edge, W, error)
//   - NewBuilder(observer, opts...).Build(edges) (Forest, error)
//   - Prim(edges, root, opts...) ([]core.Edge, W, error)
package prim_kruskal
