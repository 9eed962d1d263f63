// Package builder provides validation helpers that enforce parameter
// contracts in constructors. Each helper wraps a sentinel with the
// constructor name so callers can branch with errors.Is.
package builder

import "fmt"

// validateMin ensures got ≥ min, otherwise wraps ErrTooFewVertices.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateRand ensures a stochastic constructor has an RNG to draw from.
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}
