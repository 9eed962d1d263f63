// Package builder produces deterministic weighted edge lists for tests,
// benchmarks and examples of the spantree algorithms.
//
// Every fixture is a plain []core.Edge[string, float64] (EdgeList). The node
// set of a fixture is implied by its endpoints, exactly as the algorithms
// derive it, so a topology with isolated vertices cannot be expressed and
// every constructor emits at least one edge.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildEdges(bopts, cons...): resolve options once, run constructors in order,
//     concatenate their edges.
//     – Constructor: func(dst EdgeList, cfg builderConfig) (EdgeList, error).
//   - Topologies:
//     – Path, Cycle, Star, Wheel, Complete, Grid.
//     – RandomSparse (Erdős–Rényi), RandomConnected (spanning chain + random extras).
//   - Decorators for edge cases:
//     – Component(prefix, con): namespace a sub-fixture so it forms its own component.
//     – Loops(n): one self-loop per vertex.
//     – Doubled(con): every edge twice (parallel edges, second copy reversed).
//   - Configuration primitives:
//     – BuilderOption, WithSeed / WithRand, WithIDScheme and the IDFn family,
//     WithWeightFn and the WeightFn family.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical edge lists.
//   - Constructors validate parameters and return sentinel errors wrapped with the
//     constructor name; they never panic. Option constructors panic on
//     meaningless values (negative weights, empty ranges).
package builder
