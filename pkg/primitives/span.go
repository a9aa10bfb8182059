// Package primitives holds the leaf geometry types used by the word search
// generator: grid coordinates, line directions, and word spans.
package primitives

import (
	"fmt"
	"slices"
)

// Coord identifies a grid cell. Row increases downward.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Span describes where a word sits in the grid: a starting cell, a length,
// and a direction.
type Span struct {
	Begin Coord
	Len   int
	Dir   Direction
}

// Indices returns the cells the span occupies, in traversal order. The first
// element is always Begin. Indices does not bounds-check; placement callers
// must verify InBounds first.
func (s Span) Indices() []Coord {
	dRow, dCol := s.Dir.Delta()

	indices := make([]Coord, s.Len)
	for i := range s.Len {
		indices[i] = Coord{Row: s.Begin.Row + i*dRow, Col: s.Begin.Col + i*dCol}
	}
	return indices
}

// End returns Begin advanced Len steps, one past the last occupied cell.
// It is used only for bounds classification, never for rendering.
func (s Span) End() Coord {
	dRow, dCol := s.Dir.Delta()
	return Coord{Row: s.Begin.Row + s.Len*dRow, Col: s.Begin.Col + s.Len*dCol}
}

// InBounds reports whether the span fits inside a numRows x numCols grid.
// The end coordinate overshoots the last occupied cell by one step, and the
// check requires that overshoot cell to sit strictly inside the grid interior,
// so spans hugging the edge on the overshoot side are rejected. Conservative
// on purpose.
func (s Span) InBounds(numRows, numCols int) bool {
	end := s.End()

	return s.Begin.Row >= 0 && s.Begin.Row < numRows &&
		s.Begin.Col >= 0 && s.Begin.Col < numCols &&
		end.Row > 0 && end.Col > 0 &&
		end.Row < numRows && end.Col < numCols
}

// Intersects reports whether the two spans occupy at least one common cell.
func (s Span) Intersects(other Span) bool {
	otherIndices := other.Indices()
	for _, idx := range s.Indices() {
		if slices.Contains(otherIndices, idx) {
			return true
		}
	}
	return false
}
