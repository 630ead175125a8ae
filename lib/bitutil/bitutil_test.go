package bitutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holloway-dev/variantsudoku/lib/bitutil"
)

func TestValueBitAndAllValues(t *testing.T) {
	assert.Equal(t, bitutil.Mask(0b1), bitutil.ValueBit(1))
	assert.Equal(t, bitutil.Mask(0b100000000), bitutil.ValueBit(9))
	assert.Equal(t, bitutil.Mask(0x1FF), bitutil.AllValues(9))
	assert.Equal(t, bitutil.Mask(1<<9), bitutil.GivenBit(9))
}

func TestPopCountAndEmpty(t *testing.T) {
	assert.Equal(t, 0, bitutil.PopCount(0))
	assert.True(t, bitutil.IsEmpty(0))
	assert.Equal(t, 9, bitutil.PopCount(bitutil.AllValues(9)))
	assert.False(t, bitutil.IsEmpty(bitutil.AllValues(9)))
}

func TestFirstLastValue(t *testing.T) {
	m := bitutil.ValueBit(3) | bitutil.ValueBit(7) | bitutil.ValueBit(1)
	assert.Equal(t, 1, bitutil.FirstValue(m))
	assert.Equal(t, 7, bitutil.LastValue(m))
	assert.Equal(t, 0, bitutil.FirstValue(0))
	assert.Equal(t, 0, bitutil.LastValue(0))
}

func TestValuesRoundTrip(t *testing.T) {
	vs := []int{2, 4, 9}
	m := bitutil.MaskFromValues(vs)
	require.Equal(t, vs, bitutil.Values(m))
	for _, v := range vs {
		assert.True(t, bitutil.HasValue(m, v))
	}
	assert.False(t, bitutil.HasValue(m, 5))
}

func TestComparisonMasks(t *testing.T) {
	assert.Equal(t, bitutil.MaskFromValues([]int{1, 2, 3}), bitutil.LEMask(3))
	assert.Equal(t, bitutil.MaskFromValues([]int{1, 2}), bitutil.LTMask(3))
	assert.Equal(t, bitutil.MaskFromValues([]int{4, 5, 6, 7, 8, 9}), bitutil.GEMask(9, 4))
	assert.Equal(t, bitutil.MaskFromValues([]int{5, 6, 7, 8, 9}), bitutil.GTMask(9, 4))
	assert.Equal(t, bitutil.MaskFromValues([]int{3, 4, 5}), bitutil.BetweenMask(9, 3, 5))
	assert.Equal(t, bitutil.Mask(0), bitutil.LEMask(0))
}

func TestCombinations(t *testing.T) {
	combos := bitutil.Combinations([]int{1, 2, 3}, 2)
	assert.ElementsMatch(t, [][]int{{1, 2}, {1, 3}, {2, 3}}, combos)

	empty := bitutil.Combinations([]int{1, 2, 3}, 0)
	require.Len(t, empty, 1)
	assert.Empty(t, empty[0])

	assert.Nil(t, bitutil.Combinations([]int{1, 2}, 3))
}

func TestPermutations(t *testing.T) {
	perms := bitutil.Permutations([]int{1, 2, 3})
	assert.Len(t, perms, 6)
	seen := make(map[[3]int]bool)
	for _, p := range perms {
		seen[[3]int{p[0], p[1], p[2]}] = true
	}
	assert.Len(t, seen, 6)
}

func TestCombinationMasks(t *testing.T) {
	m := bitutil.MaskFromValues([]int{1, 2, 3})
	masks := bitutil.CombinationMasks(m, 2)
	assert.ElementsMatch(t, []bitutil.Mask{
		bitutil.MaskFromValues([]int{1, 2}),
		bitutil.MaskFromValues([]int{1, 3}),
		bitutil.MaskFromValues([]int{2, 3}),
	}, masks)
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 3, bitutil.Min(3, 5))
	assert.Equal(t, 5, bitutil.Max(3, 5))
}
