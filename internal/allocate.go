package internal

import (
	"context"
	"math/rand/v2"
	"slices"

	"wordgrove.com/wordsearch/pkg/primitives"
)

// AllocateSpans finds one span per word, in input order. Each word is placed
// by sampling a uniformly random start cell and direction until the candidate
// lies in bounds and shares no cell with a previously accepted span.
//
// The retry loop has no iteration cap. Words are never reordered and accepted
// spans are never revisited, so configurations that barely fit their words can
// spin for a long time; ctx is checked every iteration and the search aborts
// with ctx.Err() once it is done. Callers must run the dimension feasibility
// gate before calling.
func AllocateSpans(ctx context.Context, rng *rand.Rand, numRows, numCols int, words []string, allowBackward bool) ([]primitives.Span, error) {
	spans := make([]primitives.Span, 0, len(words))

	for _, word := range words {
		length := len([]rune(word))

		for {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			dir := primitives.RandomForwardDirection(rng)
			if allowBackward {
				dir = primitives.RandomDirection(rng)
			}

			candidate := primitives.Span{
				Begin: primitives.Coord{Row: rng.IntN(numRows), Col: rng.IntN(numCols)},
				Len:   length,
				Dir:   dir,
			}

			if !candidate.InBounds(numRows, numCols) {
				continue
			}
			if slices.ContainsFunc(spans, candidate.Intersects) {
				continue
			}

			spans = append(spans, candidate)
			break
		}
	}

	return spans, nil
}
