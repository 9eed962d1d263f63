// SPDX-License-Identifier: MIT
// Package builder_test contains functional tests for the edge-list
// constructors: counts, emission order, determinism and validation.
package builder_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/core"
)

// edgeKey identifies an edge by its endpoints as emitted.
type edgeKey struct{ U, V string }

// edgeSet indexes the edges by endpoints.
func edgeSet(edges builder.EdgeList) map[edgeKey]float64 {
	m := make(map[edgeKey]float64, len(edges))
	for _, e := range edges {
		m[edgeKey{U: e.From, V: e.To}] = e.Weight
	}

	return m
}

// mustBuild runs BuildEdges and fails the test on error.
func mustBuild(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) builder.EdgeList {
	t.Helper()
	edges, err := builder.BuildEdges(opts, cons...)
	if err != nil {
		t.Fatalf("BuildEdges: unexpected error: %v", err)
	}

	return edges
}

// TestBuilders_Functional runs table-driven checks for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int // distinct endpoints
		wantE       int
		sampleCheck func(t *testing.T, edges builder.EdgeList)
	}{
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, edges builder.EdgeList) {
				for i := 0; i < 3; i++ {
					want := core.NewEdge(builder.DefaultEdgeWeight, fmt.Sprint(i), fmt.Sprint(i+1))
					if edges[i] != want {
						t.Errorf("Path: edge #%d = %v, want %v", i, edges[i], want)
					}
				}
			},
		},
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, edges builder.EdgeList) {
				last := edges[len(edges)-1]
				if last.From != "4" || last.To != "0" {
					t.Errorf("Cycle: closing edge = %v, want 4→0", last)
				}
			},
		},
		{
			name:  "Star(4)",
			ctor:  builder.Star(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, edges builder.EdgeList) {
				set := edgeSet(edges)
				for i := 1; i < 4; i++ {
					if _, ok := set[edgeKey{builder.CenterVertexID, fmt.Sprint(i)}]; !ok {
						t.Errorf("Star: missing spoke Center→%d", i)
					}
				}
			},
		},
		{
			name:  "Wheel(5)",
			ctor:  builder.Wheel(5),
			wantV: 5, wantE: 8, // 4 ring + 4 spokes
			sampleCheck: func(t *testing.T, edges builder.EdgeList) {
				if edges[0].From != "0" || edges[0].To != "1" {
					t.Errorf("Wheel: ring must come first, got %v", edges[0])
				}
				if edges[4].From != builder.CenterVertexID || edges[4].To != "0" {
					t.Errorf("Wheel: first spoke = %v, want Center→0", edges[4])
				}
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, edges builder.EdgeList) {
				set := edgeSet(edges)
				for _, p := range [][2]string{{"0", "1"}, {"0", "3"}, {"2", "3"}} {
					if _, ok := set[edgeKey{p[0], p[1]}]; !ok {
						t.Errorf("Complete: missing edge %s→%s", p[0], p[1])
					}
				}
			},
		},
		{
			name:  "Grid(2x3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 7, // 2*(3-1) + (2-1)*3
			sampleCheck: func(t *testing.T, edges builder.EdgeList) {
				if edges[0].To != "0,1" || edges[1].To != "1,0" {
					t.Errorf("Grid: want Right then Bottom from 0,0, got %v, %v", edges[0], edges[1])
				}
			},
		},
		{
			name:  "Grid(1x2)",
			ctor:  builder.Grid(1, 2),
			wantV: 2, wantE: 1,
		},
		{
			name:  "RandomSparse_p1(5)",
			ctor:  builder.RandomSparse(5, 1.0),
			wantV: 5, wantE: 10,
		},
		{
			name:  "Loops(3)",
			ctor:  builder.Loops(3),
			wantV: 3, wantE: 3,
			sampleCheck: func(t *testing.T, edges builder.EdgeList) {
				for _, e := range edges {
					if !e.IsLoop() {
						t.Errorf("Loops: %v is not a self-loop", e)
					}
				}
			},
		},
		{
			name:  "Doubled(Path(3))",
			ctor:  builder.Doubled(builder.Path(3)),
			wantV: 3, wantE: 4,
			sampleCheck: func(t *testing.T, edges builder.EdgeList) {
				if edges[1].From != "1" || edges[1].To != "0" {
					t.Errorf("Doubled: copy of 0→1 = %v, want 1→0", edges[1])
				}
			},
		},
		{
			name:  "Component(x, Cycle(3))",
			ctor:  builder.Component("x", builder.Cycle(3)),
			wantV: 3, wantE: 3,
			sampleCheck: func(t *testing.T, edges builder.EdgeList) {
				if edges[0].From != "x0" || edges[0].To != "x1" {
					t.Errorf("Component: first edge = %v, want x0→x1", edges[0])
				}
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			edges := mustBuild(t, nil, tc.ctor)
			if got := len(edges); got != tc.wantE {
				t.Errorf("edges: got %d, want %d", got, tc.wantE)
			}
			if got := len(core.Nodes(edges)); got != tc.wantV {
				t.Errorf("nodes: got %d, want %d", got, tc.wantV)
			}
			for _, e := range edges {
				if e.Weight != builder.DefaultEdgeWeight {
					t.Errorf("edge %v: want default weight %g", e, builder.DefaultEdgeWeight)
				}
			}
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, edges)
			}
		})
	}
}

// TestBuildEdges_Concatenates checks that constructors append in order and
// that components stay disjoint.
func TestBuildEdges_Concatenates(t *testing.T) {
	t.Parallel()

	edges := mustBuild(t, nil,
		builder.Component("a", builder.Path(3)),
		builder.Component("b", builder.Path(2)),
	)
	if len(edges) != 3 {
		t.Fatalf("got %d edges, want 3", len(edges))
	}
	if edges[2].From != "b0" || edges[2].To != "b1" {
		t.Errorf("last edge = %v, want b0→b1", edges[2])
	}
	if got := len(core.Nodes(edges)); got != 5 {
		t.Errorf("nodes: got %d, want 5", got)
	}
}

// TestBuilders_Validation checks sentinel errors for bad parameters.
func TestBuilders_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"Complete(1)", builder.Complete(1), nil, builder.ErrTooFewVertices},
		{"Grid(1x1)", builder.Grid(1, 1), nil, builder.ErrTooFewVertices},
		{"Grid(0x5)", builder.Grid(0, 5), nil, builder.ErrTooFewVertices},
		{"Loops(0)", builder.Loops(0), nil, builder.ErrTooFewVertices},
		{"RandomSparse_p>1", builder.RandomSparse(4, 1.5), nil, builder.ErrInvalidProbability},
		{"RandomSparse_noRNG", builder.RandomSparse(4, 0.5), nil, builder.ErrNeedRandSource},
		{"RandomConnected_noRNG", builder.RandomConnected(4, 2), nil, builder.ErrNeedRandSource},
		{"RandomConnected_negExtra", builder.RandomConnected(4, -1), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"Component(nil)", builder.Component("p", nil), nil, builder.ErrConstructFailed},
		{"Doubled(nil)", builder.Doubled(nil), nil, builder.ErrConstructFailed},
		{"Doubled(Path(0))", builder.Doubled(builder.Path(0)), nil, builder.ErrTooFewVertices},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			edges, err := builder.BuildEdges(tc.opts, tc.ctor)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got err %v, want %v", err, tc.want)
			}
			if edges != nil {
				t.Errorf("want nil edges on error, got %d", len(edges))
			}
		})
	}
}

// TestRandom_Deterministic checks that a fixed seed locks the fixture.
func TestRandom_Deterministic(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(0, 10)}
	a := mustBuild(t, opts, builder.RandomConnected(20, 15), builder.RandomSparse(10, 0.3))
	opts = []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(0, 10)}
	b := mustBuild(t, opts, builder.RandomConnected(20, 15), builder.RandomSparse(10, 0.3))
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different edge lists")
	}
}

// TestRandomConnected_Shape checks the backbone chain and the loop-free extras.
func TestRandomConnected_Shape(t *testing.T) {
	t.Parallel()

	const n, extra = 12, 20
	edges := mustBuild(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomConnected(n, extra))
	if len(edges) != n-1+extra {
		t.Fatalf("got %d edges, want %d", len(edges), n-1+extra)
	}
	for i := 0; i < n-1; i++ {
		if edges[i].From != fmt.Sprint(i) || edges[i].To != fmt.Sprint(i+1) {
			t.Errorf("backbone #%d = %v", i, edges[i])
		}
	}
	for _, e := range edges[n-1:] {
		if e.IsLoop() {
			t.Errorf("extra edge %v is a self-loop", e)
		}
	}
}

// TestRandomSparse_NoEdges checks p=0 yields an empty, non-nil list.
func TestRandomSparse_NoEdges(t *testing.T) {
	t.Parallel()

	edges := mustBuild(t, nil, builder.RandomSparse(6, 0))
	if edges == nil || len(edges) != 0 {
		t.Errorf("want empty non-nil list, got %v", edges)
	}
}

// TestDoubled_FreshWeights checks that the reversed copy draws its own weight.
func TestDoubled_FreshWeights(t *testing.T) {
	t.Parallel()

	edges := mustBuild(t,
		[]builder.BuilderOption{builder.WithWeightSequence(1, 2, 3, 4)},
		builder.Doubled(builder.Path(3)),
	)
	got := []float64{edges[0].Weight, edges[1].Weight, edges[2].Weight, edges[3].Weight}
	// Path draws 1 and 2 first; the copies draw 3 and 4.
	want := []float64{1, 3, 2, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("weights = %v, want %v", got, want)
	}
}
