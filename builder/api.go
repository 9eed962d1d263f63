// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// api.go - public entry-point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildEdges(bopts, cons...). Resolves cfg once, runs cons in order.
//   - Constructors append to the running edge list; they never reorder what is already there.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical edge lists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// EdgeList is the fixture shape produced by every constructor.
type EdgeList = []core.Edge[string, float64]

// Constructor appends the edges of one topology to dst and returns the
// extended slice. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit edges in a stable, documented order.
//   - Draw weights only through cfg.weightFn(cfg.rng).
type Constructor func(dst EdgeList, cfg builderConfig) (EdgeList, error)

// BuildEdges resolves the builder configuration from bopts and applies all
// constructors in order, concatenating their edges.
// Any constructor error is wrapped with "BuildEdges: %w" and returned
// immediately with a nil list.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildEdges(bopts []BuilderOption, cons ...Constructor) (EdgeList, error) {
	cfg := newBuilderConfig(bopts...)

	out := make(EdgeList, 0)
	var err error
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if out, err = fn(out, cfg); err != nil {
			return nil, fmt.Errorf("BuildEdges: %w", err)
		}
	}

	return out, nil
}
