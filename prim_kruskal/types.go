// Package prim_kruskal defines modes, configuration options, observers and
// sentinel errors for spanning tree computation.
package prim_kruskal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/spantree/core"
)

// ErrInvalidEdge indicates malformed input: a NaN weight or a missing endpoint.
var ErrInvalidEdge = errors.New("prim_kruskal: invalid edge")

// ErrDisconnected indicates that a single spanning tree was required but the
// edges form more than one connected component.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownRoot indicates that Prim's root is not an endpoint of any edge.
var ErrUnknownRoot = errors.New("prim_kruskal: root node not found")

// ErrUnknownMode indicates an unrecognized mode name passed to ParseMode.
var ErrUnknownMode = errors.New("prim_kruskal: unknown mode")

// Mode selects which extremum the greedy walk targets.
type Mode int

const (
	// Minimum builds a minimum-weight spanning forest (ascending edge order).
	Minimum Mode = iota

	// Maximum builds a maximum-weight spanning forest (descending edge order).
	Maximum
)

// String returns "minimum" or "maximum".
func (m Mode) String() string {
	switch m {
	case Minimum:
		return "minimum"
	case Maximum:
		return "maximum"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a case-insensitive name to a Mode.
// Accepted: "", "min", "minimum" → Minimum; "max", "maximum" → Maximum.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "min", "minimum":
		return Minimum, nil
	case "max", "maximum":
		return Maximum, nil
	default:
		return Minimum, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// before reports whether weight a must be considered ahead of weight b.
func before[W core.Weight](m Mode, a, b W) bool {
	if m == Maximum {
		return a > b
	}

	return a < b
}

// Options configures a spanning tree computation.
// Use DefaultOptions() for the zero-surprise setup.
//
// Fields:
//
//	Mode             - Minimum or Maximum.
//	RequireConnected - fail with ErrDisconnected when the result is a forest of more than one tree.
//	StopWhenSpanning - stop once every node is in one tree; later edges are not considered
//	                   (and not reported to the observer).
type Options struct {
	// Mode is the extremum to target.
	Mode Mode

	// RequireConnected turns a multi-tree forest into ErrDisconnected.
	RequireConnected bool

	// StopWhenSpanning ends the walk as soon as |V|−1 edges are accepted.
	StopWhenSpanning bool
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// DefaultOptions returns Options for a minimum spanning forest that scans
// every edge and accepts disconnected inputs.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Mode:             Minimum,
		RequireConnected: false,
		StopWhenSpanning: false,
	}
}

// WithMode returns an Option that sets the extremum to target.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithMaximize is shorthand for WithMode(Maximum).
func WithMaximize() Option {
	return WithMode(Maximum)
}

// WithRequireConnected returns an Option that rejects spanning forests.
func WithRequireConnected() Option {
	return func(o *Options) { o.RequireConnected = true }
}

// WithStopWhenSpanning returns an Option that ends the walk early once the
// tree spans every node.
func WithStopWhenSpanning() Option {
	return func(o *Options) { o.StopWhenSpanning = true }
}

// resolveOptions applies opts in order over DefaultOptions.
func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Observer receives one call per edge considered, in processing order.
type Observer[N comparable, W core.Weight] interface {
	// Considered reports the edge and whether it joined the forest.
	Considered(e core.Edge[N, W], accepted bool)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc[N comparable, W core.Weight] func(e core.Edge[N, W], accepted bool)

// Considered calls f(e, accepted).
func (f ObserverFunc[N, W]) Considered(e core.Edge[N, W], accepted bool) { f(e, accepted) }

// NoopObserver ignores every event.
type NoopObserver[N comparable, W core.Weight] struct{}

// Considered does nothing.
func (NoopObserver[N, W]) Considered(core.Edge[N, W], bool) {}

// Forest is the result of a Builder run.
type Forest[N comparable, W core.Weight] struct {
	// Edges are the accepted edges in acceptance order, endpoints as given.
	Edges []core.Edge[N, W]

	// Total is the sum of the accepted weights.
	Total W

	// Nodes is the number of distinct endpoints in the input.
	Nodes int

	// Trees is the number of trees in the forest (connected components).
	Trees int
}

// Spanning reports whether the forest is a single tree over every node.
// An empty input counts as spanning.
func (f Forest[N, W]) Spanning() bool { return f.Trees <= 1 }
