package svgkt

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want Summary
	}{
		{
			name: "empty document",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg"></svg>`,
			want: Summary{},
		},
		{
			name: "closed polygon",
			svg: `<svg viewBox="0 0 100 100">` +
				`<path d="M0.000 0.000 L100.000 0.000 100.000 100.000 L0.000 100.000 Z" fill="#000000"/></svg>`,
			want: Summary{Moves: 1, Lines: 3, Closes: 1, Paints: 1},
		},
		{
			name: "horizontal lines",
			svg:  `<svg viewBox="0 0 100 100"><path d="M0.000 0.000 H100.000 50.000" fill="#000000"/></svg>`,
			want: Summary{Moves: 1, Lines: 2, Paints: 1},
		},
		{
			name: "path and circle",
			svg: `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">` +
				`<path d="M0 0 L5 5 C1 1 2 2 3 3 Z"/>` +
				`<circle cx="5" cy="5" r="2"/></svg>`,
			want: Summary{Moves: 1, Lines: 1, Curves: 1, Circles: 1, Closes: 1, Paints: 2},
		},
		{
			name: "rect has no instructions",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg"><rect width="10" height="10"/></svg>`,
			want: Summary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Summarize([]byte(tt.svg))
			if err != nil {
				t.Fatalf("Summarize() error = %v", err)
			}

			if diff := cmp.Diff(&tt.want, got); diff != "" {
				t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSummarize_InvalidUTF8(t *testing.T) {
	summary, err := Summarize([]byte("<svg>\xc3\x28</svg>"))
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("Summarize() error = %v, want %v", err, ErrInvalidUTF8)
	}

	if summary != nil {
		t.Errorf("Summarize() = %v, want nil", summary)
	}
}

func TestSummary_String(t *testing.T) {
	s := &Summary{Moves: 2, Lines: 3, Curves: 1, Closes: 2, Paints: 2}
	if got := s.Total(); got != 10 {
		t.Errorf("Total() = %d, want 10", got)
	}

	want := "10 instructions (move 2, line 3, curve 1, circle 0, close 2, paint 2)"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
