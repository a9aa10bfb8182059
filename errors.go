package wordsearch

import (
	"errors"
	"fmt"
)

// ErrNoGivenLetters is returned when the grid was configured to fill empty
// cells using only letters from the word list, but the word list is empty.
var ErrNoGivenLetters = errors.New("no words were given to take grid filler letters from")

// DimensionsTooSmallError reports that the longest word in the list cannot
// fit inside the configured grid.
type DimensionsTooSmallError struct {
	NumRows    int
	NumColumns int
	Words      []string
}

func (e *DimensionsTooSmallError) Error() string {
	return fmt.Sprintf("grid dimensions %d rows x %d columns are too small for word list %q", e.NumRows, e.NumColumns, e.Words)
}
