package core

// Nodes returns the distinct endpoints of edges in first-appearance order
// (From before To within an edge). The order is deterministic for a given
// input, which keeps downstream disjoint-set layouts reproducible.
// Complexity: O(E) time, O(V) space.
func Nodes[N comparable, W Weight](edges []Edge[N, W]) []N {
	seen := make(map[N]struct{}, len(edges))
	nodes := make([]N, 0, len(edges))
	add := func(n N) {
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		nodes = append(nodes, n)
	}
	for _, e := range edges {
		add(e.From)
		add(e.To)
	}

	return nodes
}

// TotalWeight sums the weights of edges. An empty slice weighs zero.
// Complexity: O(E).
func TotalWeight[N comparable, W Weight](edges []Edge[N, W]) W {
	var total W
	for _, e := range edges {
		total += e.Weight
	}

	return total
}

// CloneEdges returns a copy of edges that shares no backing array with the
// input. A nil input yields an empty, non-nil slice.
// Complexity: O(E).
func CloneEdges[N comparable, W Weight](edges []Edge[N, W]) []Edge[N, W] {
	out := make([]Edge[N, W], len(edges))
	copy(out, edges)

	return out
}
