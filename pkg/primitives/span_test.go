package primitives

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSpan_Indices(t *testing.T) {
	tests := []struct {
		name string
		span Span
		want []Coord
	}{
		{
			name: "right",
			span: Span{Begin: Coord{Row: 2, Col: 3}, Len: 4, Dir: Right},
			want: []Coord{{2, 3}, {2, 4}, {2, 5}, {2, 6}},
		},
		{
			name: "up",
			span: Span{Begin: Coord{Row: 5, Col: 1}, Len: 3, Dir: Up},
			want: []Coord{{5, 1}, {4, 1}, {3, 1}},
		},
		{
			name: "diagonal up left",
			span: Span{Begin: Coord{Row: 5, Col: 5}, Len: 3, Dir: DiagonalUpLeft},
			want: []Coord{{5, 5}, {4, 4}, {3, 3}},
		},
		{
			name: "diagonal down right",
			span: Span{Begin: Coord{Row: 1, Col: 2}, Len: 2, Dir: DiagonalDownRight},
			want: []Coord{{1, 2}, {2, 3}},
		},
		{
			name: "zero length",
			span: Span{Begin: Coord{Row: 1, Col: 1}, Len: 0, Dir: Right},
			want: []Coord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.span.Indices()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Indices() mismatch (-want +got):\n%s", diff)
			}
			if len(got) > 0 && got[0] != tt.span.Begin {
				t.Errorf("first index = %v, want Begin %v", got[0], tt.span.Begin)
			}
		})
	}
}

func TestSpan_End(t *testing.T) {
	tests := []struct {
		name string
		span Span
		want Coord
	}{
		{"right overshoots by one", Span{Begin: Coord{2, 3}, Len: 4, Dir: Right}, Coord{2, 7}},
		{"up overshoots by one", Span{Begin: Coord{5, 2}, Len: 3, Dir: Up}, Coord{2, 2}},
		{"diagonal down left", Span{Begin: Coord{1, 6}, Len: 2, Dir: DiagonalDownLeft}, Coord{3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.End(); got != tt.want {
				t.Errorf("End() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpan_InBounds(t *testing.T) {
	const rows, cols = 10, 10

	tests := []struct {
		name string
		span Span
		want bool
	}{
		{"fits in interior", Span{Begin: Coord{1, 1}, Len: 3, Dir: Right}, true},
		{"end column hits edge", Span{Begin: Coord{1, 6}, Len: 4, Dir: Right}, false},
		{"row zero rejected for horizontal span", Span{Begin: Coord{0, 1}, Len: 3, Dir: Right}, false},
		{"up ending at row one", Span{Begin: Coord{3, 1}, Len: 2, Dir: Up}, true},
		{"up overshoot reaches row zero", Span{Begin: Coord{3, 1}, Len: 3, Dir: Up}, false},
		{"begin row out of range", Span{Begin: Coord{10, 1}, Len: 2, Dir: Up}, false},
		{"begin column negative", Span{Begin: Coord{1, -1}, Len: 2, Dir: Right}, false},
		{"diagonal up left leaves grid", Span{Begin: Coord{2, 2}, Len: 3, Dir: DiagonalUpLeft}, false},
		{"diagonal down right fits", Span{Begin: Coord{1, 1}, Len: 5, Dir: DiagonalDownRight}, true},
		{"diagonal down right overshoots", Span{Begin: Coord{5, 5}, Len: 5, Dir: DiagonalDownRight}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.InBounds(rows, cols); got != tt.want {
				t.Errorf("InBounds(%d, %d) = %v, want %v for %+v", rows, cols, got, tt.want, tt.span)
			}
		})
	}
}

func TestSpan_Intersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{
			name: "crossing spans share a cell",
			a:    Span{Begin: Coord{2, 1}, Len: 5, Dir: Right},
			b:    Span{Begin: Coord{1, 3}, Len: 4, Dir: Down},
			want: true,
		},
		{
			name: "parallel disjoint rows",
			a:    Span{Begin: Coord{2, 1}, Len: 5, Dir: Right},
			b:    Span{Begin: Coord{3, 1}, Len: 5, Dir: Right},
			want: false,
		},
		{
			name: "identical spans",
			a:    Span{Begin: Coord{4, 4}, Len: 3, Dir: DiagonalUpRight},
			b:    Span{Begin: Coord{4, 4}, Len: 3, Dir: DiagonalUpRight},
			want: true,
		},
		{
			name: "collinear adjacent spans do not touch",
			a:    Span{Begin: Coord{2, 1}, Len: 3, Dir: Right},
			b:    Span{Begin: Coord{2, 4}, Len: 3, Dir: Right},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("a.Intersects(b) = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("b.Intersects(a) = %v, want %v", got, tt.want)
			}
		})
	}
}
