package tsp

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/subsetdp/metrics"
	"github.com/katalvlaran/subsetdp/telemetry"
)

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultStart is the start node used when WithStart is not given.
	DefaultStart = 0

	// DefaultWorkers runs each subset layer on the calling goroutine.
	DefaultWorkers = 1
)

// Option configures a Solver. Constructors panic only on nonsensical values;
// a start outside [0, n) is a data error and is reported by New instead.
type Option func(*options)

type options struct {
	start    int
	workers  int
	logger   *slog.Logger
	observer metrics.Observer
	tracer   trace.Tracer
}

func defaultOptions() options {
	return options{
		start:    DefaultStart,
		workers:  DefaultWorkers,
		logger:   slog.New(slog.DiscardHandler),
		observer: metrics.Nop{},
		tracer:   telemetry.Tracer(nil),
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

// WithStart sets the node the tour starts and ends at.
func WithStart(start int) Option {
	return func(o *options) { o.start = start }
}

// WithWorkers processes each subset layer on up to k goroutines.
// Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("tsp: WithWorkers: k must be ≥ 1, got %d", k))
	}

	return func(o *options) { o.workers = k }
}

// WithLogger routes solve lifecycle records (debug level) to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("tsp: WithLogger: nil logger")
	}

	return func(o *options) { o.logger = l }
}

// WithObserver reports one metrics.SolveStats per Solve run to obs.
func WithObserver(obs metrics.Observer) Option {
	if obs == nil {
		panic("tsp: WithObserver: nil observer")
	}

	return func(o *options) { o.observer = obs }
}

// WithTracerProvider starts one span per Solve run on a tracer from tp
// instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("tsp: WithTracerProvider: nil provider")
	}

	return func(o *options) { o.tracer = telemetry.Tracer(tp) }
}
