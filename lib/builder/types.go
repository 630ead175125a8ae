// Package builder decodes a structured puzzle description into a
// finalized lib.Board, wiring the recognized option names to their
// matching lib/constraints types.
package builder

// CellEntry describes one grid cell of a puzzle description.
type CellEntry struct {
	Value  int `json:"value"` // 0 means no given
	Given  bool `json:"given"`
	Region int `json:"region"` // jigsaw box membership; ignored when the puzzle uses standard boxes
}

// PairRef names a two-cell arithmetic clue on an edge between CellA and
// CellB (difference, ratio, sum, xv).
type PairRef struct {
	CellA int    `json:"cellA"`
	CellB int    `json:"cellB"`
	Kind  string `json:"kind"`
	K     int    `json:"k"`
}

// PuzzleDescription is the builder's input: an N-by-N grid plus one field
// per recognized option name.
type PuzzleDescription struct {
	Size int         `json:"size"`
	Grid []CellEntry `json:"grid"` // row-major, length Size*Size

	Jigsaw bool `json:"jigsaw"` // true when Grid[i].Region carries box membership

	DiagonalPositive bool `json:"diagonal+"`
	DiagonalNegative bool `json:"diagonal-"`
	Antiknight       bool `json:"antiknight"`
	Antiking         bool `json:"antiking"`
	DisjointGroups   bool `json:"disjointgroups"`
	NonConsecutive   bool `json:"nonconsecutive"`

	// Negative is the puzzle-wide negative-constraint list: pair kinds
	// that must NOT hold on any orthogonally adjacent edge lacking an
	// explicit PairRef of that kind. K uses the kind's standard default
	// when left at 0 (difference 1, ratio 2; xv ignores K).
	Negative []NegativeRule `json:"negative"`

	Arrows         []ArrowClue       `json:"arrow"`
	DoubleArrows   []DoubleArrowClue `json:"doublearrow"`
	ZipperLines    [][]int           `json:"zipperline"`
	RegionSumLines [][][]int         `json:"regionsumline"` // each entry is one line pre-split into box segments
	KillerCages    []CageClue        `json:"killercage"`
	LittleKillers  []CageClue        `json:"littlekillersum"`
	Odd            []int             `json:"odd"`
	Even           []int             `json:"even"`
	Minimum        []int             `json:"minimum"`
	Maximum        []int             `json:"maximum"`
	ExtraRegions   [][]int           `json:"extraregion"`
	Thermometers   [][]int           `json:"thermometer"`
	Palindromes    [][]int           `json:"palindrome"`
	Renbans        [][]int           `json:"renban"`
	Whispers       []WhispersClue    `json:"whispers"`
	PairClues      []PairRef         `json:"pairclues"` // merges difference/xv/sum/ratio by Kind
	Clones         []ClonePair       `json:"clone"`
	Quadruples     []QuadrupleClue   `json:"quadruple"`
	BetweenLines   []BetweenLineClue `json:"betweenline"`
	Lockouts       []LockoutClue     `json:"lockout"`
	SandwichSums   []CageClue        `json:"sandwichsum"`
	XSums          []CageClue        `json:"xsum"`
	Skyscrapers    []CageClue        `json:"skyscraper"`
	EntropicLines  [][]int           `json:"entropicline"`
	ModularLines   []ModularClue     `json:"modularline"`
	Nabners        [][]int           `json:"nabner"`
}

// ArrowClue: circle cell plus ordered shaft cells.
type ArrowClue struct {
	Circle int
	Shaft  []int
}

// DoubleArrowClue: two circle cells plus ordered shaft cells between them.
type DoubleArrowClue struct {
	Circles []int
	Shaft   []int
}

// CageClue covers every clue shaped as "cells plus a target sum": killer
// cages, little killers, sandwich sums, X-sums, skyscrapers.
type CageClue struct {
	Cells  []int
	Target int
}

// WhispersClue: cells plus the required minimum gap (classic German
// Whispers is gap 5 on a 9x9 grid).
type WhispersClue struct {
	Cells []int
	Gap   int
}

// ClonePair: two equal-length cell lists required to hold identical
// values position-by-position.
type ClonePair struct {
	CellsA, CellsB []int
}

// QuadrupleClue: the four cells surrounding an intersection plus the
// digits that must appear among them.
type QuadrupleClue struct {
	Cells  []int
	Digits []int
}

// BetweenLineClue: two endpoints plus the cells that must lie strictly
// between their values.
type BetweenLineClue struct {
	EndpointA, EndpointB int
	Middle               []int
}

// LockoutClue: two endpoints (gap required between them) plus the cells
// that must lie strictly outside their span.
type LockoutClue struct {
	Gap                  int
	EndpointA, EndpointB int
	Middle               []int
}

// ModularClue: cells plus the modulus each sliding window must respect.
type ModularClue struct {
	Cells   []int
	Modulus int
}

// NegativeRule names one pair kind that must not hold on any unmarked
// orthogonally adjacent edge.
type NegativeRule struct {
	Kind string
	K    int
}
