// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_random.go - RandomSparse(n, p) and RandomConnected(n, extra) constructors.
//
// Canonical models:
//   - RandomSparse: Erdős–Rényi-like; each unordered pair {i,j}, i<j, is kept
//     independently with probability p. Nodes that end up with no edge simply do
//     not appear in the list, so the result may be disconnected or even empty.
//   - RandomConnected: a spanning chain 0–1–…–(n-1) guarantees connectivity, then
//     `extra` random non-loop edges are added (parallel edges allowed).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - RandomSparse: 0 ≤ p ≤ 1 (else ErrInvalidProbability); rng required for 0<p<1.
//   - RandomConnected: extra ≥ 0; rng required whenever extra > 0.
//
// Determinism: fixed trial order (i asc, j asc) and one weight draw per emitted
// edge, so outcomes are stable for a fixed seed.

package builder

import "fmt"

// RandomSparse returns a Constructor sampling an Erdős–Rényi-like graph over n nodes.
func RandomSparse(n int, p float64) Constructor {
	return func(dst EdgeList, cfg builderConfig) (EdgeList, error) {
		if err := validateMin(MethodRandomSparse, n, MinRandomNodes); err != nil {
			return nil, err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return nil, err
		}
		// p ∈ {0,1} is deterministic; anything in between needs a source.
		if p > MinProbability && p < MaxProbability {
			if err := validateRand(MethodRandomSparse, cfg); err != nil {
				return nil, err
			}
		}

		id := ids(cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == MaxProbability
				if !keep && p > MinProbability {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					dst = emit(dst, cfg, id[i], id[j])
				}
			}
		}

		return dst, nil
	}
}

// RandomConnected returns a Constructor for a connected multigraph over n nodes
// with n-1+extra edges.
func RandomConnected(n, extra int) Constructor {
	return func(dst EdgeList, cfg builderConfig) (EdgeList, error) {
		if err := validateMin(MethodRandomConnected, n, MinRandomNodes); err != nil {
			return nil, err
		}
		if extra < 0 {
			return nil, fmt.Errorf("%s: extra=%d < 0: %w", MethodRandomConnected, extra, ErrTooFewVertices)
		}
		if extra > 0 {
			if err := validateRand(MethodRandomConnected, cfg); err != nil {
				return nil, err
			}
		}

		id := ids(cfg, n)

		// 1) Backbone chain keeps the graph connected.
		for i := 1; i < n; i++ {
			dst = emit(dst, cfg, id[i-1], id[i])
		}

		// 2) Random extras; loops are redrawn.
		for added := 0; added < extra; {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v {
				continue
			}
			dst = emit(dst, cfg, id[u], id[v])
			added++
		}

		return dst, nil
	}
}
