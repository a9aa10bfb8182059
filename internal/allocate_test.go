package internal

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"
)

func TestAllocateSpans(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1024))
	words := []string{"lazy", "panic", "search"}

	spans, err := AllocateSpans(t.Context(), rng, 10, 10, words, true)
	if err != nil {
		t.Fatalf("AllocateSpans: %v", err)
	}
	if len(spans) != len(words) {
		t.Fatalf("expected %d spans, got %d", len(words), len(spans))
	}

	for i, span := range spans {
		if span.Len != len(words[i]) {
			t.Errorf("span %d length = %d, want %d", i, span.Len, len(words[i]))
		}
		if !span.InBounds(10, 10) {
			t.Errorf("span %d out of bounds: %+v", i, span)
		}
		for j := i + 1; j < len(spans); j++ {
			if span.Intersects(spans[j]) {
				t.Errorf("spans %d and %d share a cell: %+v vs %+v", i, j, span, spans[j])
			}
		}
	}
}

func TestAllocateSpans_ForwardOnly(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	words := []string{"nap", "sleep", "pillow", "rats"}

	spans, err := AllocateSpans(t.Context(), rng, 12, 12, words, false)
	if err != nil {
		t.Fatalf("AllocateSpans: %v", err)
	}

	for i, span := range spans {
		if !span.Dir.IsForward() {
			t.Errorf("span %d uses backward direction %v", i, span.Dir)
		}
	}
}

func TestAllocateSpans_NoWords(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	spans, err := AllocateSpans(t.Context(), rng, 5, 5, nil, true)
	if err != nil {
		t.Fatalf("AllocateSpans: %v", err)
	}
	if len(spans) != 0 {
		t.Fatalf("expected no spans, got %d", len(spans))
	}
}

func TestAllocateSpans_Cancelled(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AllocateSpans(ctx, rng, 10, 10, []string{"sleep"}, true)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

// A word as long as the grid side passes the dimension gate but can never
// satisfy the conservative bounds check, so only the context stops the search.
func TestAllocateSpans_UnplaceableAbortsOnDeadline(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := AllocateSpans(ctx, rng, 4, 4, []string{"abcd"}, true)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
}
