package bitset

// Combinations calls yield for every mask over n nodes with exactly r bits set.
// Masks are produced in lexicographic order of their bit positions
// (for n=4, r=2: 0011, 0101, 1001, 0110, 1010, 1100). Enumeration stops as
// soon as yield returns false.
//
// Invalid arguments (r<0, r>n, n>MaxNodes) yield nothing. r==0 yields Empty once.
//
// Complexity: O(C(n,r)) yields; recursion depth ≤ r.
func Combinations(n, r int, yield func(Mask) bool) {
	if r < 0 || n < 0 || r > n || n > MaxNodes {
		return
	}
	combine(Empty, 0, r, n, yield)
}

// combine picks r more positions from [at, n) on top of set.
// It returns false once yield asks to stop.
func combine(set Mask, at, r, n int, yield func(Mask) bool) bool {
	// Not enough positions left to pick r of them.
	if n-at < r {
		return true
	}
	if r == 0 {
		return yield(set)
	}
	for i := at; i < n; i++ {
		if !combine(set.With(i), i+1, r-1, n, yield) {
			return false
		}
	}

	return true
}

// CombinationsOf collects Combinations(n, r) into a slice.
func CombinationsOf(n, r int) []Mask {
	var out []Mask
	Combinations(n, r, func(m Mask) bool {
		out = append(out, m)
		return true
	})

	return out
}
