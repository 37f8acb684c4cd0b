package bitset

import (
	"iter"
	"math/bits"
)

// MaxNodes is the widest subset a Mask can encode.
const MaxNodes = 32

// Mask is a subset of {0..MaxNodes-1}; bit i set means node i is included.
type Mask uint32

// Empty is the subset with no nodes.
const Empty Mask = 0

// Full returns the END_STATE for n nodes: the mask with bits 0..n-1 set.
// n is clamped to [0, MaxNodes].
func Full(n int) Mask {
	switch {
	case n <= 0:
		return Empty
	case n >= MaxNodes:
		return ^Mask(0)
	}

	return Mask(1)<<uint(n) - 1
}

// Single returns the mask holding only node i.
func Single(i int) Mask { return Mask(1) << uint(i) }

// Pair returns the mask holding nodes i and j.
func Pair(i, j int) Mask { return Single(i) | Single(j) }

// Has reports whether node i is in m.
func (m Mask) Has(i int) bool { return m&Single(i) != 0 }

// With returns m ∪ {i}.
func (m Mask) With(i int) Mask { return m | Single(i) }

// Without returns m \ {i}.
func (m Mask) Without(i int) Mask { return m &^ Single(i) }

// Overlaps reports whether m and o share at least one node.
func (m Mask) Overlaps(o Mask) bool { return m&o != 0 }

// Len is the popcount of m.
func (m Mask) Len() int { return bits.OnesCount32(uint32(m)) }

// Lowest returns the index of the lowest set bit, or -1 for Empty.
func (m Mask) Lowest() int {
	if m == Empty {
		return -1
	}

	return bits.TrailingZeros32(uint32(m))
}

// Highest returns the index of the highest set bit, or -1 for Empty.
func (m Mask) Highest() int {
	if m == Empty {
		return -1
	}

	return MaxNodes - 1 - bits.LeadingZeros32(uint32(m))
}

// All yields the set bit positions of m in ascending order.
func (m Mask) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for rest := m; rest != Empty; rest &= rest - 1 {
			if !yield(bits.TrailingZeros32(uint32(rest))) {
				return
			}
		}
	}
}

// Nodes returns the set bit positions of m in ascending order.
func (m Mask) Nodes() []int {
	out := make([]int, 0, m.Len())
	for i := range m.All() {
		out = append(out, i)
	}

	return out
}
