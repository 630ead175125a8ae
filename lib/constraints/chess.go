package constraints

import (
	"fmt"

	"github.com/holloway-dev/variantsudoku/lib"
)

// ChessConstraint forbids a chess-piece move (knight or king) from sharing
// a value with its origin cell, for every cell/offset pair on the board.
// It reduces entirely to weak links.
type ChessConstraint struct {
	lib.BaseConstraint
	N       int
	Offsets [][2]int
}

// knightOffsets and kingOffsets are the relative (dr, dc) moves checked
// from every cell. kingOffsets holds only the four diagonal king moves, so
// antiking adds no links between orthogonal neighbours.
var knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
var kingOffsets = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// NewAntiKnightConstraint builds the antiknight flag constraint.
func NewAntiKnightConstraint(n int) *ChessConstraint {
	return &ChessConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "Chess", Specific: "Antiknight"},
		N:              n, Offsets: knightOffsets,
	}
}

// NewAntiKingConstraint builds the antiking flag constraint.
func NewAntiKingConstraint(n int) *ChessConstraint {
	return &ChessConstraint{
		BaseConstraint: lib.BaseConstraint{Name: "Chess", Specific: "Antiking"},
		N:              n, Offsets: kingOffsets,
	}
}

func (c *ChessConstraint) Clone() lib.Constraint {
	cp := *c
	cp.Offsets = append([][2]int(nil), c.Offsets...)
	return &cp
}

func (c *ChessConstraint) Init(b *lib.Board) lib.InitResult {
	var pairs []Pair
	for row := 0; row < c.N; row++ {
		for col := 0; col < c.N; col++ {
			cell := row*c.N + col
			for _, off := range c.Offsets {
				dr, dc := off[0], off[1]
				nr, nc := row+dr, col+dc
				if nr < 0 || nr >= c.N || nc < 0 || nc >= c.N {
					continue
				}
				other := nr*c.N + nc
				if other <= cell {
					continue // each unordered pair only once
				}
				pairs = append(pairs, GenerateNEQWeakLinks(c.N, cell, other)...)
			}
		}
	}
	return lib.SelfDelete(c, NewWeakLinksConstraint(c.Specific, pairs))
}

func (c *ChessConstraint) String() string { return fmt.Sprintf("Chess(%s)", c.Specific) }
