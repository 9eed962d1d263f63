// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_decorators.go - constructors that shape edge cases around other fixtures.
//
//   - Component(prefix, con): runs con in isolation and prefixes every endpoint,
//     so several components can share one edge list without touching.
//   - Loops(n): one self-loop per node idFn(0..n-1).
//   - Doubled(con): every edge of con followed by a reversed parallel copy with
//     a fresh weight draw.

package builder

import "fmt"

// Component returns a Constructor that namespaces con's nodes with prefix.
func Component(prefix string, con Constructor) Constructor {
	return func(dst EdgeList, cfg builderConfig) (EdgeList, error) {
		if con == nil {
			return nil, fmt.Errorf("%s(%q): nil constructor: %w", MethodComponent, prefix, ErrConstructFailed)
		}
		part, err := con(nil, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s(%q): %w", MethodComponent, prefix, err)
		}
		for _, e := range part {
			e.From = prefix + e.From
			e.To = prefix + e.To
			dst = append(dst, e)
		}

		return dst, nil
	}
}

// Loops returns a Constructor emitting a self-loop on each of n nodes.
func Loops(n int) Constructor {
	return func(dst EdgeList, cfg builderConfig) (EdgeList, error) {
		if err := validateMin(MethodLoops, n, 1); err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			dst = emit(dst, cfg, id, id)
		}

		return dst, nil
	}
}

// Doubled returns a Constructor that emits every edge of con twice.
func Doubled(con Constructor) Constructor {
	return func(dst EdgeList, cfg builderConfig) (EdgeList, error) {
		if con == nil {
			return nil, fmt.Errorf("%s: nil constructor: %w", MethodDoubled, ErrConstructFailed)
		}
		part, err := con(nil, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodDoubled, err)
		}
		for _, e := range part {
			dst = append(dst, e)
			dst = emit(dst, cfg, e.To, e.From)
		}

		return dst, nil
	}
}
