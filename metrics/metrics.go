// Package metrics exposes a solve observation hook for the subset solvers.
//
// Solvers report one SolveStats record per completed (or failed) Solve call to
// an Observer. Nop discards them; Prometheus turns them into counters and
// histograms on a caller-supplied registry.
package metrics

import "time"

// Solver names reported in SolveStats.Solver.
const (
	SolverMatching = "matching"
	SolverHeldKarp = "held_karp"
)

// Status values reported in SolveStats.Status.
const (
	StatusOK       = "ok"
	StatusCanceled = "canceled"
	StatusFailed   = "failed"
)

// SolveStats describes a single DP run.
type SolveStats struct {
	Solver   string        // SolverMatching or SolverHeldKarp
	Status   string        // StatusOK, StatusCanceled or StatusFailed
	Nodes    int           // n, the matrix order
	States   int64         // DP cells relaxed during the run
	Cost     float64       // optimum cost; meaningful only when Status == StatusOK
	Duration time.Duration // wall time of the run
}

// Observer receives SolveStats. Implementations must be safe for concurrent use:
// independent solvers may report from different goroutines.
type Observer interface {
	ObserveSolve(SolveStats)
}

// Nop is an Observer that drops every record.
type Nop struct{}

// ObserveSolve implements Observer.
func (Nop) ObserveSolve(SolveStats) {}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(SolveStats)

// ObserveSolve implements Observer.
func (f ObserverFunc) ObserveSolve(s SolveStats) { f(s) }
