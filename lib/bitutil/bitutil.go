// Package bitutil provides the bit-level primitives the rest of the solver
// builds on: a cell mask is a bitfield with one bit per candidate value
// (value v lives at bit v-1) plus a reserved "given" bit at bit N. Every
// function here is pure, and the mask operations allocate nothing so they
// can sit on the hottest path in the engine (keep_cell_mask, SumGroup
// enumeration, weak-link propagation all call through this package many
// times per board mutation). Values, Combinations, Permutations and
// CombinationMasks return newly allocated slices.
package bitutil

import "math/bits"

// Mask is a cell mask: bits 0..N-1 are candidate values, bit N (for some
// board size N) is the given bit. N is never stored in a Mask itself —
// callers pass it alongside, mirroring the Board's own all_values/given_bit
// fields.
type Mask uint32

// MaxSize is the largest board size a Mask can represent: N candidate bits
// plus one given bit must fit in 32 bits.
const MaxSize = 31

// ValueBit returns the single-bit mask for value v (1-indexed).
func ValueBit(v int) Mask {
	return 1 << uint(v-1)
}

// AllValues returns the mask with bits 0..n-1 set: every candidate for a
// board of size n.
func AllValues(n int) Mask {
	return Mask(1)<<uint(n) - 1
}

// GivenBit returns the reserved given-bit for a board of size n.
func GivenBit(n int) Mask {
	return Mask(1) << uint(n)
}

// PopCount returns the number of set bits (candidates) in m.
func PopCount(m Mask) int {
	return bits.OnesCount32(uint32(m))
}

// IsEmpty reports whether m has no candidate bits set at all (an invalid
// cell mask per the Board's invariant).
func IsEmpty(m Mask) bool {
	return m == 0
}

// FirstValue returns the smallest value (1-indexed) present in m, or 0 if m
// has no candidate bits.
func FirstValue(m Mask) int {
	if m == 0 {
		return 0
	}
	return bits.TrailingZeros32(uint32(m)) + 1
}

// LastValue returns the largest value (1-indexed) present in m, or 0 if m
// has no candidate bits.
func LastValue(m Mask) int {
	if m == 0 {
		return 0
	}
	return 32 - bits.LeadingZeros32(uint32(m))
}

// Values returns every value present in m, ascending.
func Values(m Mask) []int {
	out := make([]int, 0, PopCount(m))
	for m != 0 {
		v := FirstValue(m)
		out = append(out, v)
		m &^= ValueBit(v)
	}
	return out
}

// HasValue reports whether m has the bit for value v set.
func HasValue(m Mask, v int) bool {
	return m&ValueBit(v) != 0
}

// LEMask returns the mask of every value <= k (1-indexed, k may be 0 for
// the empty mask).
func LEMask(k int) Mask {
	if k <= 0 {
		return 0
	}
	return AllValues(k)
}

// LTMask returns the mask of every value < k.
func LTMask(k int) Mask {
	return LEMask(k - 1)
}

// GEMask returns the mask of every value >= k within a board of size n.
func GEMask(n, k int) Mask {
	return AllValues(n) &^ LTMask(k)
}

// GTMask returns the mask of every value > k within a board of size n.
func GTMask(n, k int) Mask {
	return AllValues(n) &^ LEMask(k)
}

// BetweenMask returns the mask of every value v with lo <= v <= hi, within a
// board of size n.
func BetweenMask(n, lo, hi int) Mask {
	return GEMask(n, lo) & LEMask(hi)
}

// Combinations returns every k-element subset of values (ascending order
// preserved within each subset), enumerated lexicographically. Used by
// SumGroup/SumCellsHelper to walk candidate assignments for a cell group.
func Combinations(values []int, k int) [][]int {
	n := len(values)
	if k < 0 || k > n {
		return nil
	}
	if k == 0 {
		return [][]int{{}}
	}

	result := make([][]int, 0)
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		combo := make([]int, k)
		for i, j := range idx {
			combo[i] = values[j]
		}
		result = append(result, combo)

		// advance idx to the next combination, odometer-style from the right
		i := k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}

	return result
}

// Permutations returns every ordering of values. Used sparingly — only for
// small groups (Board.CanPlaceDigitsAnyOrder and SumGroup's sum
// restriction) since it is factorial in len(values).
func Permutations(values []int) [][]int {
	n := len(values)
	if n == 0 {
		return [][]int{{}}
	}

	result := make([][]int, 0)
	current := make([]int, n)
	copy(current, values)

	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			perm := make([]int, n)
			copy(perm, current)
			result = append(result, perm)
			return
		}
		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				current[i], current[k-1] = current[k-1], current[i]
			} else {
				current[0], current[k-1] = current[k-1], current[0]
			}
		}
	}
	generate(n)

	return result
}

// MaskFromValues ORs together the value-bits for every value in vs.
func MaskFromValues(vs []int) Mask {
	var m Mask
	for _, v := range vs {
		m |= ValueBit(v)
	}
	return m
}

// CombinationMasks returns the mask for every k-element subset of the
// values present in m.
func CombinationMasks(m Mask, k int) []Mask {
	values := Values(m)
	combos := Combinations(values, k)
	out := make([]Mask, len(combos))
	for i, c := range combos {
		out[i] = MaskFromValues(c)
	}
	return out
}

// Min returns the smaller of a and b.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
