package disjointset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNode indicates an operation on a node that was never registered.
var ErrInvalidNode = errors.New("disjointset: node not registered")

// DisjointSet is a union-find forest over nodes of type N.
type DisjointSet[N comparable] struct {
	parent map[N]N   // node → parent; representatives point at themselves
	size   map[N]int // representative → number of nodes in its group
	order  []N       // registration order, for deterministic Sets()
	count  int       // number of disjoint groups
}

// New returns a DisjointSet in which every given node is its own group.
// Duplicate nodes are registered once.
// Complexity: O(V).
func New[N comparable](nodes ...N) *DisjointSet[N] {
	d := &DisjointSet[N]{
		parent: make(map[N]N, len(nodes)),
		size:   make(map[N]int, len(nodes)),
		order:  make([]N, 0, len(nodes)),
	}
	for _, n := range nodes {
		if _, ok := d.parent[n]; ok {
			continue
		}
		d.parent[n] = n
		d.size[n] = 1
		d.order = append(d.order, n)
		d.count++
	}

	return d
}

// Len returns the number of registered nodes.
func (d *DisjointSet[N]) Len() int { return len(d.parent) }

// Count returns the number of disjoint groups.
func (d *DisjointSet[N]) Count() int { return d.count }

// Contains reports whether n was registered.
func (d *DisjointSet[N]) Contains(n N) bool {
	_, ok := d.parent[n]

	return ok
}

// Find returns the representative of n's group.
//
// The first pass walks parent links up to the root; the second pass
// re-points every node on that path straight at the root.
// Complexity: O(α(V)) amortized.
func (d *DisjointSet[N]) Find(n N) (N, error) {
	if _, ok := d.parent[n]; !ok {
		var zero N
		return zero, fmt.Errorf("%w: %v", ErrInvalidNode, n)
	}

	root := n
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// Compress the path.
	for n != root {
		next := d.parent[n]
		d.parent[n] = root
		n = next
	}

	return root, nil
}

// Union merges the groups containing a and b. It returns true if two
// distinct groups were merged and false if a and b were already together.
// If either node is unknown no groups are merged, though the known node's
// path may already have been compressed.
// Complexity: O(α(V)) amortized.
func (d *DisjointSet[N]) Union(a, b N) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}
	if ra == rb {
		return false, nil
	}

	// By default ra goes under rb; swap only when ra's group is strictly larger.
	if d.size[ra] > d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[ra] = rb
	d.size[rb] += d.size[ra]
	delete(d.size, ra)
	d.count--

	return true, nil
}

// Connected reports whether a and b belong to the same group.
func (d *DisjointSet[N]) Connected(a, b N) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// SizeOf returns the number of nodes in n's group.
func (d *DisjointSet[N]) SizeOf(n N) (int, error) {
	root, err := d.Find(n)
	if err != nil {
		return 0, err
	}

	return d.size[root], nil
}

// Sets returns the groups. Groups are ordered by the registration order of
// their first member and members keep registration order within a group.
// Complexity: O(V).
func (d *DisjointSet[N]) Sets() [][]N {
	index := make(map[N]int, d.count)
	out := make([][]N, 0, d.count)
	for _, n := range d.order {
		root, _ := d.Find(n) // every node in order is registered
		i, ok := index[root]
		if !ok {
			i = len(out)
			index[root] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], n)
	}

	return out
}

// String formats the groups as "DisjointSet([a b] [c])".
func (d *DisjointSet[N]) String() string {
	var sb strings.Builder
	sb.WriteString("DisjointSet(")
	for i, set := range d.Sets() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", set)
	}
	sb.WriteByte(')')

	return sb.String()
}
