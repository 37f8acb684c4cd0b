package telemetry

import (
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/subsetdp/metrics"
)

// Span attribute keys.
const (
	AttrSolver = "subsetdp.solver"
	AttrNodes  = "subsetdp.nodes"
	AttrStatus = "subsetdp.status"
	AttrStates = "subsetdp.states"
	AttrCost   = "subsetdp.cost"
)

// SolveAttributes describes the instance a span is about to solve.
func SolveAttributes(solver string, nodes int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrSolver, solver),
		attribute.Int(AttrNodes, nodes),
	}
}

// ResultAttributes describes the outcome of a run. The cost is only
// attached for successful runs.
func ResultAttributes(s metrics.SolveStats) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String(AttrStatus, s.Status),
		attribute.Int64(AttrStates, s.States),
	}
	if s.Status == metrics.StatusOK {
		attrs = append(attrs, attribute.Float64(AttrCost, s.Cost))
	}

	return attrs
}
