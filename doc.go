// Package subsetdp solves two NP-hard assignment problems exactly by dynamic
// programming over node subsets, for instances of up to 32 nodes.
//
// What is inside?
//
//	matching/  — minimum-weight perfect matching on a symmetric cost matrix
//	tsp/       — Held–Karp optimal tour on a (possibly asymmetric) distance matrix
//	bitset/    — the uint32 node-subset type and r-of-n subset enumeration
//	matrix/    — dense float64 matrix input and shape/numeric validators
//	builder/   — deterministic sample matrices for tests, benchmarks and examples
//	metrics/   — solve observer interface with a Prometheus implementation
//	telemetry/ — one OpenTelemetry span per solve run
//
// Both solvers share one shape: validate and copy the input in New, run the
// O(n²·2ⁿ) DP lazily on the first query (or an explicit Solve(ctx)), cache the
// result, and hand out fresh copies of it.
//
// Quick example:
//
//	s, err := tsp.NewFromRows(dist, tsp.WithStart(0))
//	if err != nil {
//		return err
//	}
//	tour, err := s.Tour()  // e.g. [0 3 2 4 1 5 0]
//	cost, err := s.TourCost()
//
// Memory grows as 2ⁿ (n·2ⁿ float64 for tsp), so n in the low twenties is the
// practical ceiling even though 32 is accepted on 64-bit platforms
// (see matching.MaxNodes and tsp.MaxNodes for 32-bit limits).
package subsetdp
