// Package wordsearch generates word-search puzzles: rectangular letter grids
// hiding a list of words along straight lines (horizontal, vertical, or
// diagonal, forward or backward), with every remaining cell filled by a random
// filler letter.
package wordsearch

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"wordgrove.com/wordsearch/internal"
	"wordgrove.com/wordsearch/pkg/primitives"
)

// Config describes the puzzle to generate. It is read once by Generate and
// not retained by the result.
type Config struct {
	NumRows    int
	NumColumns int

	// Words to hide in the grid. Duplicates and empty strings are accepted
	// as-is; no validation is performed.
	Words []string

	// UseOnlyGivenLetters fills non-word cells using only letters that appear
	// somewhere in Words, instead of the full lowercase alphabet.
	UseOnlyGivenLetters bool

	// AllowBackwardWords permits directions read right-to-left or
	// bottom-to-top. When false, only down, right, diagonal-up-right, and
	// diagonal-down-right are used.
	AllowBackwardWords bool
}

// Placement pairs a word with the span it occupies in the grid.
type Placement struct {
	Word string
	Span primitives.Span
}

// WordSearch is a generated puzzle: the final letter grid and where each word
// was placed. It is immutable after construction.
type WordSearch struct {
	grid       Grid
	placements []Placement
}

// Generate builds a puzzle for cfg, using rng for every random choice.
//
// Word placement is a randomized retry search with no iteration cap, so
// configurations whose words barely fit can take arbitrarily long. ctx bounds
// the search: once it is cancelled or past its deadline, Generate returns
// ctx.Err(). The only deterministic feasibility check is the dimension gate;
// passing it does not guarantee the search terminates.
func Generate(ctx context.Context, cfg *Config, rng *rand.Rand) (*WordSearch, error) {
	longest := 0
	for _, word := range cfg.Words {
		if n := len([]rune(word)); n > longest {
			longest = n
		}
	}
	if longest > cfg.NumRows || longest > cfg.NumColumns {
		return nil, &DimensionsTooSmallError{
			NumRows:    cfg.NumRows,
			NumColumns: cfg.NumColumns,
			Words:      slices.Clone(cfg.Words),
		}
	}

	letters := internal.LowercaseAlphabet()
	if cfg.UseOnlyGivenLetters {
		letters = internal.UniqueLetters(cfg.Words)
		if len(letters) == 0 {
			return nil, ErrNoGivenLetters
		}
	}

	grid := newFilledGrid(rng, cfg.NumRows, cfg.NumColumns, letters)

	spans, err := internal.AllocateSpans(ctx, rng, cfg.NumRows, cfg.NumColumns, cfg.Words, cfg.AllowBackwardWords)
	if err != nil {
		return nil, err
	}

	placements := make([]Placement, len(cfg.Words))
	for i, word := range cfg.Words {
		placements[i] = Placement{Word: word, Span: spans[i]}

		indices := spans[i].Indices()
		for j, r := range []rune(word) {
			grid.set(indices[j], r)
		}
	}

	return &WordSearch{grid: grid, placements: placements}, nil
}

// NumRows returns the number of rows in the puzzle grid.
func (ws *WordSearch) NumRows() int {
	return ws.grid.NumRows()
}

// NumColumns returns the number of columns in the puzzle grid.
func (ws *WordSearch) NumColumns() int {
	return ws.grid.NumColumns()
}

// Grid returns a read-only view of the puzzle grid.
func (ws *WordSearch) Grid() Grid {
	return ws.grid
}

// Get returns the rune at (row, col), or false if the coordinate is out of
// range.
func (ws *WordSearch) Get(row, col int) (rune, bool) {
	return ws.grid.Get(row, col)
}

// Placements returns one entry per configured word, in input order.
func (ws *WordSearch) Placements() []Placement {
	return slices.Clone(ws.placements)
}

// String renders the puzzle row by row with space-separated cells, pairing the
// i-th placed word with the i-th row. The pairing is cosmetic; rows past the
// word list show no word.
func (ws *WordSearch) String() string {
	var b strings.Builder

	for r := range ws.grid.NumRows() {
		for c := range ws.grid.NumColumns() {
			ch, _ := ws.grid.Get(r, c)
			b.WriteRune(ch)
			b.WriteByte(' ')
		}

		word := ""
		if r < len(ws.placements) {
			word = ws.placements[r].Word
		}
		fmt.Fprintf(&b, "| %s \n", word)
	}

	return b.String()
}
