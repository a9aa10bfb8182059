package primitives

import "math/rand/v2"

// Direction is the straight line a word follows through the grid.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	DiagonalUpLeft
	DiagonalUpRight
	DiagonalDownLeft
	DiagonalDownRight

	numDirections = 8
)

// forwardDirections are the directions read left-to-right or top-to-bottom,
// the ones a puzzle restricted to non-backward words may use.
var forwardDirections = [...]Direction{Down, Right, DiagonalUpRight, DiagonalDownRight}

// Delta returns the unit step (Δrow, Δcol) for the direction. Rows increase
// downward.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case DiagonalUpLeft:
		return -1, -1
	case DiagonalUpRight:
		return -1, 1
	case DiagonalDownLeft:
		return 1, -1
	case DiagonalDownRight:
		return 1, 1
	}
	panic("unknown direction")
}

// IsForward reports whether the direction reads left-to-right or top-to-bottom.
func (d Direction) IsForward() bool {
	switch d {
	case Down, Right, DiagonalUpRight, DiagonalDownRight:
		return true
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case DiagonalUpLeft:
		return "diagonal-up-left"
	case DiagonalUpRight:
		return "diagonal-up-right"
	case DiagonalDownLeft:
		return "diagonal-down-left"
	case DiagonalDownRight:
		return "diagonal-down-right"
	}
	return "unknown"
}

// RandomDirection returns a uniformly random direction.
func RandomDirection(rng *rand.Rand) Direction {
	return Direction(rng.IntN(numDirections))
}

// RandomForwardDirection returns a uniformly random forward-facing direction.
func RandomForwardDirection(rng *rand.Rand) Direction {
	return forwardDirections[rng.IntN(len(forwardDirections))]
}
