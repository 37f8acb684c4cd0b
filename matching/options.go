package matching

import (
	"fmt"
	"log/slog"
	"math"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/subsetdp/metrics"
	"github.com/katalvlaran/subsetdp/telemetry"
)

// DefaultSymmetryTolerance bounds |cost[i][j] − cost[j][i]| accepted by New.
const DefaultSymmetryTolerance = 1e-9

// Option configures a Solver. Constructors panic only on nonsensical values.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	observer metrics.Observer
	tracer   trace.Tracer
	symTol   float64
}

func defaultOptions() options {
	return options{
		logger:   slog.New(slog.DiscardHandler),
		observer: metrics.Nop{},
		tracer:   telemetry.Tracer(nil),
		symTol:   DefaultSymmetryTolerance,
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger routes solve lifecycle records (debug level) to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("matching: WithLogger: nil logger")
	}

	return func(o *options) { o.logger = l }
}

// WithObserver reports one metrics.SolveStats per Solve run to obs.
func WithObserver(obs metrics.Observer) Option {
	if obs == nil {
		panic("matching: WithObserver: nil observer")
	}

	return func(o *options) { o.observer = obs }
}

// WithSymmetryTolerance overrides DefaultSymmetryTolerance.
func WithSymmetryTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(fmt.Sprintf("matching: WithSymmetryTolerance: tol must be finite, non-negative, got %g", tol))
	}

	return func(o *options) { o.symTol = tol }
}

// WithTracerProvider starts one span per Solve run on a tracer from tp
// instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("matching: WithTracerProvider: nil provider")
	}

	return func(o *options) { o.tracer = telemetry.Tracer(tp) }
}
