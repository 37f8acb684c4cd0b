package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/subsetdp/metrics"
	"github.com/katalvlaran/subsetdp/telemetry"
)

func attrMap(kvs []attribute.KeyValue) map[string]attribute.Value {
	out := make(map[string]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[string(kv.Key)] = kv.Value
	}

	return out
}

func TestTracerFallsBackToGlobal(t *testing.T) {
	require.NotNil(t, telemetry.Tracer(nil))
	require.NotNil(t, telemetry.Tracer(noop.NewTracerProvider()))
}

func TestSolveSpanOK(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	_, span := telemetry.StartSolve(context.Background(), telemetry.Tracer(tp), "tsp.Solve",
		telemetry.SolveAttributes(metrics.SolverHeldKarp, 6)...)
	telemetry.EndSolve(span, metrics.SolveStats{Status: metrics.StatusOK, States: 120, Cost: 42}, nil)

	ended := sr.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, "tsp.Solve", ended[0].Name())
	require.Equal(t, codes.Ok, ended[0].Status().Code)
	require.Equal(t, telemetry.TracerName, ended[0].InstrumentationScope().Name)

	attrs := attrMap(ended[0].Attributes())
	require.Equal(t, metrics.SolverHeldKarp, attrs[telemetry.AttrSolver].AsString())
	require.Equal(t, int64(6), attrs[telemetry.AttrNodes].AsInt64())
	require.Equal(t, int64(120), attrs[telemetry.AttrStates].AsInt64())
	require.Equal(t, 42.0, attrs[telemetry.AttrCost].AsFloat64())
}

func TestSolveSpanError(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	_, span := telemetry.StartSolve(context.Background(), telemetry.Tracer(tp), "matching.Solve")
	telemetry.EndSolve(span, metrics.SolveStats{Status: metrics.StatusCanceled}, errors.New("boom"))

	ended := sr.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, codes.Error, ended[0].Status().Code)
	require.Equal(t, "boom", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)

	attrs := attrMap(ended[0].Attributes())
	require.Equal(t, metrics.StatusCanceled, attrs[telemetry.AttrStatus].AsString())
	_, hasCost := attrs[telemetry.AttrCost]
	require.False(t, hasCost)
}
