package tsp

import (
	"context"
	"errors"
	"math"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/subsetdp/bitset"
	"github.com/katalvlaran/subsetdp/matrix"
	"github.com/katalvlaran/subsetdp/metrics"
	"github.com/katalvlaran/subsetdp/telemetry"
)

// minChunk is the smallest number of subsets handed to one goroutine.
const minChunk = 256

// Solver computes an optimal TSP tour with the Held–Karp algorithm.
// The DP runs once, on the first query or explicit Solve; later queries
// return the cached result. A Solver is safe for concurrent use.
type Solver struct {
	n     int
	start int
	dist  []float64 // row-major n×n copy of the input
	opts  options

	mu     sync.Mutex
	solved bool
	cost   float64
	tour   []int
}

// New validates dist and returns a Solver for it. The matrix is copied;
// later mutations of dist do not affect the Solver.
//
// Errors (all wrap ErrInvalidArgument): ErrNilMatrix, ErrTooSmall,
// ErrNonSquare, ErrStartOutOfRange, ErrTooLarge, ErrInvalidCost.
//
// Complexity: O(n²).
func New(dist matrix.Matrix, opts ...Option) (*Solver, error) {
	o := gatherOptions(opts)
	flat, n, err := validateDist(dist, o.start)
	if err != nil {
		return nil, err
	}

	return &Solver{n: n, start: o.start, dist: flat, opts: o}, nil
}

// NewFromRows is New for a [][]float64 distance matrix.
func NewFromRows(dist [][]float64, opts ...Option) (*Solver, error) {
	m, err := fromRows(dist)
	if err != nil {
		return nil, err
	}

	return New(m, opts...)
}

// N returns the number of nodes.
func (s *Solver) N() int { return s.n }

// Start returns the node the tour begins and ends at.
func (s *Solver) Start() int { return s.start }

// TourCost returns the minimum cost of a Hamiltonian cycle through Start.
// The only possible error is ErrIncompleteGraph.
func (s *Solver) TourCost() (float64, error) {
	if err := s.Solve(context.Background()); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cost, nil
}

// Tour returns the optimal tour: n+1 node indices beginning and ending at
// Start. Every call returns an identical fresh copy.
// The only possible error is ErrIncompleteGraph.
func (s *Solver) Tour() ([]int, error) {
	if err := s.Solve(context.Background()); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.tour), nil
}

// Result returns TourCost and Tour together.
func (s *Solver) Result() (TSResult, error) {
	if err := s.Solve(context.Background()); err != nil {
		return TSResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return TSResult{Tour: slices.Clone(s.tour), Cost: s.cost}, nil
}

// Solve runs the DP unless it already ran successfully. A canceled ctx
// aborts the run and leaves the Solver unsolved. ErrIncompleteGraph is not
// cached: the result is deterministic, so a retry fails the same way.
func (s *Solver) Solve(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.solved {
		return nil
	}

	ctx, span := telemetry.StartSolve(ctx, s.opts.tracer, "tsp.Solve",
		telemetry.SolveAttributes(metrics.SolverHeldKarp, s.n)...)
	started := time.Now()
	s.opts.logger.Debug("tsp: solve started",
		"n", s.n, "start", s.start, "workers", s.opts.workers)

	cost, tour, relaxed, err := s.run(ctx)

	stats := metrics.SolveStats{
		Solver:   metrics.SolverHeldKarp,
		Status:   metrics.StatusOK,
		Nodes:    s.n,
		States:   relaxed,
		Cost:     cost,
		Duration: time.Since(started),
	}
	if err != nil {
		stats.Status = metrics.StatusFailed
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			stats.Status = metrics.StatusCanceled
		}
		s.opts.observer.ObserveSolve(stats)
		telemetry.EndSolve(span, stats, err)
		s.opts.logger.Debug("tsp: solve aborted", "n", s.n, "err", err)

		return err
	}

	s.cost, s.tour, s.solved = cost, tour, true
	s.opts.observer.ObserveSolve(stats)
	telemetry.EndSolve(span, stats, nil)
	s.opts.logger.Debug("tsp: solve finished",
		"n", s.n, "cost", cost, "relaxed", relaxed, "elapsed", stats.Duration)

	return nil
}

// run fills the memo table and extracts the optimum.
//
// memo[node*size + subset] = minimum cost of a path that leaves start,
// visits exactly the nodes of subset and ends at node. +Inf marks an
// unreached state.
func (s *Solver) run(ctx context.Context) (float64, []int, int64, error) {
	var (
		n       = s.n
		start   = s.start
		size    = 1 << n
		end     = bitset.Full(n)
		memo    = make([]float64, n*size)
		relaxed int64
		i       int
	)
	for i = range memo {
		memo[i] = math.Inf(1)
	}

	// Base case: one hop from start.
	for i = 0; i < n; i++ {
		if i == start {
			continue
		}
		memo[i*size+int(bitset.Pair(start, i))] = s.dist[start*n+i]
	}

	var (
		r   int
		cnt int64
		err error
	)
	for r = 3; r <= n; r++ {
		if err = ctx.Err(); err != nil {
			return 0, nil, relaxed, err
		}
		if s.opts.workers > 1 {
			cnt, err = s.relaxLayerParallel(ctx, r, memo)
		} else {
			cnt = s.relaxLayer(r, memo)
		}
		relaxed += cnt
		if err != nil {
			return 0, nil, relaxed, err
		}
		s.opts.logger.Debug("tsp: layer done", "r", r, "relaxed", relaxed)
	}

	// Close the tour back to start.
	best := math.Inf(1)
	for i = 0; i < n; i++ {
		if i == start {
			continue
		}
		if c := memo[i*size+int(end)] + s.dist[i*n+start]; c < best {
			best = c
		}
	}
	if math.IsInf(best, 1) {
		return 0, nil, relaxed, ErrIncompleteGraph
	}

	return best, s.reconstruct(memo), relaxed, nil
}

// relaxLayer fills every subset of size r that contains start, sequentially.
func (s *Solver) relaxLayer(r int, memo []float64) int64 {
	var relaxed int64
	bitset.Combinations(s.n, r, func(subset bitset.Mask) bool {
		if subset.Has(s.start) {
			relaxed += s.relaxSubset(subset, memo)
		}
		return true
	})

	return relaxed
}

// relaxLayerParallel splits the subsets of size r across s.opts.workers goroutines.
// Each subset owns the cells memo[next][subset]; reads touch only layer r−1,
// which is complete, so goroutines never share a written cell.
func (s *Solver) relaxLayerParallel(ctx context.Context, r int, memo []float64) (int64, error) {
	var layer []bitset.Mask
	bitset.Combinations(s.n, r, func(subset bitset.Mask) bool {
		if subset.Has(s.start) {
			layer = append(layer, subset)
		}
		return true
	})

	workers := s.opts.workers
	chunk := max(minChunk, (len(layer)+workers-1)/workers)

	var (
		relaxed atomic.Int64
		g, gctx = errgroup.WithContext(ctx)
	)
	g.SetLimit(workers)
	for lo := 0; lo < len(layer); lo += chunk {
		part := layer[lo:min(lo+chunk, len(layer))]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var local int64
			for _, subset := range part {
				local += s.relaxSubset(subset, memo)
			}
			relaxed.Add(local)

			return nil
		})
	}
	err := g.Wait()

	return relaxed.Load(), err
}

// relaxSubset computes memo[next][subset] for every next ∈ subset \ {start}:
//
//	memo[next][subset] = min over end ∈ subset \ {start, next} of
//	                     memo[end][subset \ {next}] + dist[end][next]
func (s *Solver) relaxSubset(subset bitset.Mask, memo []float64) int64 {
	var (
		n       = s.n
		size    = 1 << n
		start   = s.start
		relaxed int64
	)
	for rest := subset; rest != bitset.Empty; rest &= rest - 1 {
		next := rest.Lowest()
		if next == start {
			continue
		}
		prev := subset.Without(next)
		best := math.Inf(1)
		for ends := prev; ends != bitset.Empty; ends &= ends - 1 {
			e := ends.Lowest()
			if e == start {
				continue
			}
			relaxed++
			if d := memo[e*size+int(prev)] + s.dist[e*n+next]; d < best {
				best = d
			}
		}
		memo[next*size+int(subset)] = best
	}

	return relaxed
}

// reconstruct walks the memo table backwards from the full set, each time
// picking the predecessor j that minimises memo[j][state] + dist[j][last].
// Ties go to the lowest index.
func (s *Solver) reconstruct(memo []float64) []int {
	var (
		n     = s.n
		size  = 1 << n
		start = s.start
		state = bitset.Full(n)
		last  = start
		tour  = make([]int, n+1)
	)
	for i := n - 1; i >= 1; i-- {
		index := -1
		bestDist := math.Inf(1)
		for rest := state; rest != bitset.Empty; rest &= rest - 1 {
			j := rest.Lowest()
			if j == start {
				continue
			}
			d := memo[j*size+int(state)] + s.dist[j*n+last]
			if index == -1 || d < bestDist {
				index, bestDist = j, d
			}
		}
		tour[i] = index
		state = state.Without(index)
		last = index
	}
	tour[0], tour[n] = start, start

	return tour
}
