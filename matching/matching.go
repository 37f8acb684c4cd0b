package matching

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/katalvlaran/subsetdp/bitset"
	"github.com/katalvlaran/subsetdp/matrix"
	"github.com/katalvlaran/subsetdp/metrics"
	"github.com/katalvlaran/subsetdp/telemetry"
)

// ctxCheckEvery controls how often the state loop polls ctx (a power of two minus one).
const ctxCheckEvery = 1<<14 - 1

// Pair is one matched edge with U < V.
type Pair struct {
	U, V int
}

// Solver computes a minimum-weight perfect matching for one cost matrix.
// The DP runs once, on the first query or explicit Solve; later queries
// return the cached result. A Solver is safe for concurrent use.
type Solver struct {
	n    int
	cost []float64 // row-major n×n copy of the input
	opts options

	mu       sync.Mutex
	solved   bool
	minCost  float64
	matching []int
}

// New validates cost and returns a Solver for it. The matrix is copied;
// later mutations of cost do not affect the Solver.
//
// Errors (all wrap ErrInvalidArgument): ErrNilMatrix, ErrEmptyMatrix,
// ErrNonSquare, ErrOddSize, ErrTooLarge, ErrInvalidCost, ErrAsymmetric.
//
// Complexity: O(n²).
func New(cost matrix.Matrix, opts ...Option) (*Solver, error) {
	o := gatherOptions(opts)
	flat, n, err := validateCost(cost, o.symTol)
	if err != nil {
		return nil, err
	}

	return &Solver{n: n, cost: flat, opts: o}, nil
}

// NewFromRows is New for a [][]float64 cost matrix.
func NewFromRows(cost [][]float64, opts ...Option) (*Solver, error) {
	m, err := fromRows(cost)
	if err != nil {
		return nil, err
	}

	return New(m, opts...)
}

// N returns the number of nodes.
func (s *Solver) N() int { return s.n }

// Cost returns the total cost of the minimum-weight perfect matching.
func (s *Solver) Cost() float64 {
	s.mustSolve()
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.minCost
}

// Matching returns the optimal matching as n node indices where positions
// (2i, 2i+1) form pair i. Every call returns an identical fresh copy.
// Pairs are listed in the order the DP added them, so summing their costs
// left to right gives exactly Cost().
//
//	m := s.Matching()
//	for i := 0; i < len(m)/2; i++ {
//		u, v := m[2*i], m[2*i+1]
//		...
//	}
func (s *Solver) Matching() []int {
	s.mustSolve()
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.matching)
}

// Pairs returns the optimal matching as (U,V) pairs with U < V, sorted by U.
func (s *Solver) Pairs() []Pair {
	m := s.Matching()
	out := make([]Pair, 0, len(m)/2)
	for i := 0; i+1 < len(m); i += 2 {
		u, v := m[i], m[i+1]
		if u > v {
			u, v = v, u
		}
		out = append(out, Pair{U: u, V: v})
	}
	slices.SortFunc(out, func(a, b Pair) int { return a.U - b.U })

	return out
}

// mustSolve runs Solve without a deadline. The kernel only fails on ctx
// errors and context.Background is never canceled, so an error here is a
// broken invariant and panics.
func (s *Solver) mustSolve() {
	if err := s.Solve(context.Background()); err != nil {
		panic(fmt.Sprintf("matching: solve without deadline failed: %v", err))
	}
}

// Solve runs the subset DP unless it already ran. A canceled ctx aborts the
// run and leaves the Solver unsolved, so a later call starts over.
func (s *Solver) Solve(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.solved {
		return nil
	}

	ctx, span := telemetry.StartSolve(ctx, s.opts.tracer, "matching.Solve",
		telemetry.SolveAttributes(metrics.SolverMatching, s.n)...)
	started := time.Now()
	s.opts.logger.Debug("matching: solve started", "n", s.n, "states", 1<<s.n)

	minCost, pairing, relaxed, err := solve(ctx, s.n, s.cost)

	stats := metrics.SolveStats{
		Solver:   metrics.SolverMatching,
		Status:   metrics.StatusOK,
		Nodes:    s.n,
		States:   relaxed,
		Cost:     minCost,
		Duration: time.Since(started),
	}
	if err != nil {
		stats.Status = metrics.StatusFailed
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			stats.Status = metrics.StatusCanceled
		}
		s.opts.observer.ObserveSolve(stats)
		telemetry.EndSolve(span, stats, err)
		s.opts.logger.Debug("matching: solve aborted", "n", s.n, "err", err)

		return err
	}

	s.minCost, s.matching, s.solved = minCost, pairing, true
	s.opts.observer.ObserveSolve(stats)
	telemetry.EndSolve(span, stats, nil)
	s.opts.logger.Debug("matching: solve finished",
		"n", s.n, "cost", minCost, "relaxed", relaxed, "elapsed", stats.Duration)

	return nil
}

// solve is the O(n²·2ⁿ) kernel.
//
// dp[state] holds the cheapest perfect matching of exactly the nodes in state;
// +Inf marks a state not reached yet, so a zero-cost edge is an ordinary value.
// history[state] is the predecessor state; state ^ history[state] is the pair
// added last.
//
// States are processed in ascending numeric order. Pushing a disjoint pair
// always produces a numerically larger state (state|pair > state), so every
// state is final before it is read.
func solve(ctx context.Context, n int, cost []float64) (float64, []int, int64, error) {
	var (
		end      = bitset.Full(n)
		size     = 1 << n
		dp       = make([]float64, size)
		history  = make([]bitset.Mask, size)
		numPairs = n * (n - 1) / 2
		pairs    = make([]bitset.Mask, 0, numPairs)
		pairCost = make([]float64, 0, numPairs)
		relaxed  int64
		i, j     int
	)
	for i = range dp {
		dp[i] = math.Inf(1)
	}

	// Singleton pair states are the building blocks; their predecessor is Empty.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			p := bitset.Pair(i, j)
			dp[p] = cost[i*n+j]
			pairs = append(pairs, p)
			pairCost = append(pairCost, cost[i*n+j])
		}
	}

	var (
		state   int
		cur, nc float64
	)
	for state = 0; state < size; state++ {
		if state&ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, nil, relaxed, err
			}
		}
		cur = dp[state]
		if math.IsInf(cur, 1) {
			continue
		}
		m := bitset.Mask(state)
		for k, p := range pairs {
			if m.Overlaps(p) {
				continue
			}
			next := m | p
			nc = cur + pairCost[k]
			relaxed++
			if nc < dp[next] {
				dp[next] = nc
				history[next] = m
			}
		}
	}

	// The walk visits pairs newest first; filling out from the back lists
	// them in the order the DP added them, so summing the pairs left to
	// right reproduces dp[end] exactly.
	out := make([]int, n)
	pos := n
	for st := end; st != bitset.Empty; st = history[st] {
		used := st ^ history[st]
		pos -= 2
		out[pos], out[pos+1] = used.Lowest(), used.Highest()
	}

	return dp[end], out, relaxed, nil
}
