package tsp_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/subsetdp/builder"
	"github.com/katalvlaran/subsetdp/tsp"
)

// BenchmarkSolve measures the full DP (construction excluded) for growing n,
// sequentially and with one worker per layer chunk.
func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{10, 14, 16} {
		dist, err := builder.Complete(n, builder.UniformWeightFn(1, 100), int64(n))
		if err != nil {
			b.Fatal(err)
		}
		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("n=%d/workers=%d", n, workers), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					s, err := tsp.New(dist, tsp.WithWorkers(workers))
					if err != nil {
						b.Fatal(err)
					}
					if err = s.Solve(context.Background()); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
