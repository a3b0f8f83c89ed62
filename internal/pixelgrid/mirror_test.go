package pixelgrid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMirror(t *testing.T) {
	got := Mirror(SampleGrid())

	want := Grid{
		{Green, Yellow, Yellow},
		{Black, Blue, Blue},
		{White, Red, Red},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Mirror mismatch (-want +got):\n%s", diff)
	}
}

func TestMirror_Widths(t *testing.T) {
	a, b, c, d := Red, Green, Blue, White

	tests := []struct {
		name string
		row  []Pixel
		want []Pixel
	}{
		{"width 1", []Pixel{a}, []Pixel{a}},
		{"width 2", []Pixel{a, b}, []Pixel{b, a}},
		{"odd width keeps center", []Pixel{a, b, c}, []Pixel{c, b, a}},
		{"even width", []Pixel{a, b, c, d}, []Pixel{d, c, b, a}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mirror(Grid{tt.row})
			if diff := cmp.Diff(tt.want, got[0]); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMirror_SelfInverse(t *testing.T) {
	for _, g := range []Grid{SampleGrid(), createGradientGrid(3, 4), createGradientGrid(6, 5)} {
		if !Mirror(Mirror(g)).Equal(g) {
			t.Errorf("Mirror(Mirror(g)) != g for %dx%d grid", g.Rows(), g.Cols())
		}
	}
}

func TestMirror_PreservesShapeAndInput(t *testing.T) {
	g := createGradientGrid(4, 9)
	original := g.Clone()

	out := Mirror(g)
	if out.Rows() != 4 || out.Cols() != 9 {
		t.Errorf("shape: got %dx%d, want 4x9", out.Rows(), out.Cols())
	}
	if !g.Equal(original) {
		t.Error("Mirror modified its input")
	}
}
