package lib

import (
	"fmt"
	"sort"
)

// Region asserts that a set of cells must hold pairwise-distinct values.
// Standard rows/cols/boxes/diagonals/disjoint-groups are regions of size N;
// killer cages and other partial-distinctness sets reuse the same
// mechanism with fewer cells.
type Region struct {
	Name           string
	Cells          []int
	Type           string
	FromConstraint string
}

func regionKey(cells []int, regionType string) string {
	sorted := append([]int(nil), cells...)
	sort.Ints(sorted)
	return fmt.Sprintf("%s|%v", regionType, sorted)
}

// AddRegion registers a new distinctness region and adds the pairwise
// same-value weak links that encode it. Duplicate regions (identical
// cell-set and type) are ignored and reported UNCHANGED. Returns INVALID
// when one of the implied weak links leaves a cell empty, for example when
// two cells of the region are already given the same value.
func (b *Board) AddRegion(name string, cells []int, regionType string, fromConstraint string) ConstraintResult {
	key := regionKey(cells, regionType)
	if b.regionKeys[key] {
		return UNCHANGED
	}
	b.regionKeys[key] = true
	b.regions = append(b.regions, &Region{
		Name:           name,
		Cells:          append([]int(nil), cells...),
		Type:           regionType,
		FromConstraint: fromConstraint,
	})

	result := UNCHANGED
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			for v := 1; v <= b.size; v++ {
				a := NewCandidateIndex(cells[i], v, b.size)
				c := NewCandidateIndex(cells[j], v, b.size)
				res := b.AddWeakLink(a, c)
				if res == INVALID {
					return INVALID
				}
				if res == CHANGED {
					result = CHANGED
				}
			}
		}
	}
	return result
}

// Regions returns every region registered on the board.
func (b *Board) Regions() []*Region {
	return b.regions
}

// SplitIntoGroups partitions an arbitrary cell list into the coarsest
// sequence of sub-lists such that every cell within a sub-list shares at
// least one region with every other cell in that sub-list (hence is
// mutually distinct); cells that share no region with any other cell in
// the list form singleton groups. Used by SumGroup/SumCellsHelper to
// decompose a cell list into independently-summable distinctness groups.
func (b *Board) SplitIntoGroups(cells []int) [][]int {
	n := len(cells)
	if n == 0 {
		return nil
	}

	// union-find over positions in `cells`
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(x, y int) {
		rx, ry := find(x), find(y)
		if rx != ry {
			parent[rx] = ry
		}
	}

	shareRegion := func(c1, c2 int) bool {
		for _, r := range b.regions {
			inR1, inR2 := false, false
			for _, c := range r.Cells {
				if c == c1 {
					inR1 = true
				}
				if c == c2 {
					inR2 = true
				}
			}
			if inR1 && inR2 {
				return true
			}
		}
		return false
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// merge two groups only if every cross pair shares a region, so
			// each group stays pairwise distinct
			ok := find(i) != find(j)
			for k := 0; k < n && ok; k++ {
				for l := 0; l < n && ok; l++ {
					if find(k) == find(i) && find(l) == find(j) {
						ok = shareRegion(cells[k], cells[l])
					}
				}
			}
			if ok {
				union(i, j)
			}
		}
	}

	groupOf := make(map[int][]int)
	order := make([]int, 0)
	for i := 0; i < n; i++ {
		root := find(i)
		if _, ok := groupOf[root]; !ok {
			order = append(order, root)
		}
		groupOf[root] = append(groupOf[root], cells[i])
	}

	out := make([][]int, 0, len(order))
	for _, root := range order {
		out = append(out, groupOf[root])
	}
	return out
}
