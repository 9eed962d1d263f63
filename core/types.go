// Package core declares Edge, the Weight constraint, and the sentinel errors
// shared by the spantree packages.
package core

import (
	"errors"
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for edge-level input checks.
var (
	// ErrEmptyNodeID indicates that a string-labelled edge has an empty endpoint.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNaNWeight indicates a floating-point weight that is NaN and therefore unordered.
	ErrNaNWeight = errors.New("core: weight is NaN")
)

// Weight is the set of numeric types usable as edge weights.
// Every member is totally ordered (NaN aside) and closed under addition.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Edge represents one weighted, undirected connection between two nodes.
//
// The field order mirrors the (weight, endpoint, endpoint) triple that edge
// lists are usually written in. From and To carry no direction for the
// algorithms; they are kept as given so results can be displayed verbatim.
type Edge[N comparable, W Weight] struct {
	// Weight is the cost (or benefit, in maximum mode) of the edge.
	Weight W

	// From is the first endpoint as supplied by the caller.
	From N

	// To is the second endpoint as supplied by the caller.
	To N
}

// NewEdge builds an Edge from the (weight, a, b) triple.
// Complexity: O(1).
func NewEdge[N comparable, W Weight](weight W, a, b N) Edge[N, W] {
	return Edge[N, W]{Weight: weight, From: a, To: b}
}

// IsLoop reports whether both endpoints are the same node.
func (e Edge[N, W]) IsLoop() bool { return e.From == e.To }

// Other returns the endpoint opposite to n and true, or the zero value and
// false when n is not an endpoint of e. For a self-loop Other(From) returns From.
func (e Edge[N, W]) Other(n N) (N, bool) {
	switch n {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	}

	var zero N
	return zero, false
}

// Joins reports whether e connects a and b, in either orientation.
func (e Edge[N, W]) Joins(a, b N) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// String renders the edge as "A --(w)--> B".
func (e Edge[N, W]) String() string {
	return fmt.Sprintf("%v --(%v)--> %v", e.From, e.Weight, e.To)
}

// Check reports whether the edge is well formed: its weight must be ordered
// (not NaN) and, for string-labelled nodes, neither endpoint may be empty.
// Errors wrap ErrNaNWeight or ErrEmptyNodeID.
func (e Edge[N, W]) Check() error {
	if IsNaN(e.Weight) {
		return ErrNaNWeight
	}
	if isEmptyLabel(e.From) || isEmptyLabel(e.To) {
		return fmt.Errorf("%v-%v: %w", e.From, e.To, ErrEmptyNodeID)
	}

	return nil
}

// IsNaN reports whether w is a floating-point NaN. It is always false for
// integer weights.
func IsNaN[W Weight](w W) bool {
	// NaN is the only value not equal to itself.
	return w != w
}

// isEmptyLabel reports whether n is an empty string label, including named
// string types such as `type Town string`. Other node types have no notion
// of a missing label, so they are always accepted.
func isEmptyLabel[N comparable](n N) bool {
	v := reflect.ValueOf(n)

	return v.Kind() == reflect.String && v.Len() == 0
}
