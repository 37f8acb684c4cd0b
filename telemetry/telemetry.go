// Package telemetry wraps OpenTelemetry tracing for the subset solvers.
//
// Each Solve run is one span. Solvers obtain their tracer through Tracer and
// bracket the DP with StartSolve/EndSolve; without an explicit provider the
// global one is used, which is a no-op until the application installs an SDK.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/subsetdp/metrics"
)

// TracerName is the instrumentation scope of every span this module starts.
const TracerName = "github.com/katalvlaran/subsetdp"

// Tracer returns the module tracer from tp, or from the global provider when tp is nil.
func Tracer(tp trace.TracerProvider) trace.Tracer {
	if tp == nil {
		return otel.Tracer(TracerName)
	}

	return tp.Tracer(TracerName)
}

// StartSolve opens the span for one Solve run.
func StartSolve(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndSolve records the outcome of a run on span and ends it.
// A non-nil err marks the span as failed.
func EndSolve(span trace.Span, s metrics.SolveStats, err error) {
	span.SetAttributes(ResultAttributes(s)...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
