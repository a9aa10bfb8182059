package wordsearch

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"wordgrove.com/wordsearch/pkg/primitives"
)

// Grid is a rectangular 2D grid of runes, addressed by (row, column) with row
// increasing downward. Every cell holds exactly one rune; there is no empty
// sentinel.
type Grid struct {
	cells [][]rune
}

// newFilledGrid allocates a numRows x numCols grid with every cell drawn
// independently and uniformly from letters, with replacement.
func newFilledGrid(rng *rand.Rand, numRows, numCols int, letters []rune) Grid {
	cells := make([][]rune, numRows)
	for r := range cells {
		cells[r] = make([]rune, numCols)
		for c := range cells[r] {
			cells[r][c] = letters[rng.IntN(len(letters))]
		}
	}
	return Grid{cells: cells}
}

func (g Grid) NumRows() int {
	return len(g.cells)
}

func (g Grid) NumColumns() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Get returns the rune at (row, col), or false if the coordinate is out of
// range.
func (g Grid) Get(row, col int) (rune, bool) {
	if row < 0 || row >= g.NumRows() || col < 0 || col >= g.NumColumns() {
		return 0, false
	}
	return g.cells[row][col], true
}

func (g Grid) set(c primitives.Coord, r rune) {
	g.cells[c.Row][c.Col] = r
}

// Repr returns the raw grid, one row per line with no separators.
func (g Grid) Repr() string {
	lines := make([]string, g.NumRows())
	for r := range g.cells {
		lines[r] = string(g.cells[r])
	}
	return strings.Join(lines, "\n")
}

func (g Grid) DebugString() string {
	return fmt.Sprintf("Grid{rows: %d, cols: %d, cells: %v}", g.NumRows(), g.NumColumns(), g.cells)
}
