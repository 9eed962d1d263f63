// Package disjointset provides a generic disjoint-set (union-find) structure
// over a fixed universe of comparable node identifiers.
//
// What & Why
//
//   - A DisjointSet partitions its nodes into groups. Each group is a tree of
//     parent links whose root, the representative, is its own parent.
//   - Find answers "which group is this node in?"; Union merges two groups.
//     Kruskal-style algorithms use the pair to test whether an edge would
//     close a cycle in amortized near-constant time.
//
// Guarantees
//
//   - Find compresses fully: after a lookup every node visited on the way up
//     points directly at the representative.
//   - Find is iterative, so deep parent chains never grow the call stack.
//   - Union attaches the smaller group under the larger one. On equal sizes
//     the representative of the first argument is attached under the
//     representative of the second, which makes merge order deterministic.
//   - The universe is fixed at construction. Querying a node that was never
//     registered is a programming error reported as ErrInvalidNode; the
//     structure is left untouched in that case.
//
// Complexity
//
//   - New: O(V) time and space.
//   - Find / Union / Connected: O(α(V)) amortized.
//   - Sets: O(V).
//
// Concurrency
//
//	A DisjointSet is not safe for concurrent use. Callers own one instance per
//	computation and discard it afterwards.
package disjointset
