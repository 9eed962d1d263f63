package prim_kruskal

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/spantree/core"
)

// validateEdges checks every edge and reports all offenders at once.
// The returned error matches ErrInvalidEdge and the per-edge core cause
// (core.ErrNaNWeight, core.ErrEmptyNodeID) under errors.Is.
func validateEdges[N comparable, W core.Weight](edges []core.Edge[N, W]) error {
	var result *multierror.Error
	for i, e := range edges {
		if err := e.Check(); err != nil {
			result = multierror.Append(result, fmt.Errorf("edge #%d: %w: %w", i, ErrInvalidEdge, err))
		}
	}

	return result.ErrorOrNil()
}
