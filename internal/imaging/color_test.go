package imaging

import (
	"testing"

	"github.com/ironsheep/pixelgrid-tools/internal/pixelgrid"
)

func TestSampleColor(t *testing.T) {
	g := pixelgrid.New(10, 10, pixelgrid.Pixel{1.0, 128.0 / 255, 64.0 / 255})

	result, err := SampleColor(g, 5, 5)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB.R != 255 || result.RGB.G != 128 || result.RGB.B != 64 {
		t.Errorf("RGB: got (%d,%d,%d), want (255,128,64)", result.RGB.R, result.RGB.G, result.RGB.B)
	}
	if result.Pure {
		t.Error("Pure: got true, want false")
	}
}

func TestSampleColor_SampleGrid(t *testing.T) {
	g := pixelgrid.SampleGrid()

	tests := []struct {
		name     string
		row, col int
		wantHex  string
		wantHue  int
		wantPure bool
	}{
		{"yellow", 0, 0, "#FFFF00", 60, false},
		{"green", 0, 2, "#00FF00", 120, true},
		{"blue", 1, 0, "#0000FF", 240, true},
		{"black", 1, 2, "#000000", 0, true},
		{"red", 2, 0, "#FF0000", 0, false},
		{"white", 2, 2, "#FFFFFF", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SampleColor(g, tt.row, tt.col)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}

			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.HSL.H != tt.wantHue {
				t.Errorf("Hue: got %d, want %d", result.HSL.H, tt.wantHue)
			}
			if result.Pure != tt.wantPure {
				t.Errorf("Pure: got %v, want %v", result.Pure, tt.wantPure)
			}
			if result.Pixel != g[tt.row][tt.col] {
				t.Errorf("Pixel: got %v, want %v", result.Pixel, g[tt.row][tt.col])
			}
		})
	}
}

func TestSampleColor_OutOfRangeChannels(t *testing.T) {
	g := pixelgrid.Grid{{pixelgrid.Pixel{1.5, -0.5, 0.5}}}

	result, err := SampleColor(g, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF0080" {
		t.Errorf("Hex: got %s, want #FF0080", result.Hex)
	}
	// Raw channels are reported unclamped
	if result.Pixel[0] != 1.5 || result.Pixel[1] != -0.5 {
		t.Errorf("Pixel: got %v, want [1.5 -0.5 0.5]", result.Pixel)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	g := pixelgrid.SampleGrid()

	tests := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 1},
		{"negative col", 1, -1},
		{"row too large", 3, 1},
		{"col too large", 1, 3},
		{"both too large", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(g, tt.row, tt.col); err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestSampleColorsMulti(t *testing.T) {
	points := []LabeledPoint{
		{Row: 0, Col: 2, Label: "green"},
		{Row: 2, Col: 2, Label: "white"},
		{Row: 1, Col: 0},
	}

	result, err := SampleColorsMulti(pixelgrid.SampleGrid(), points)
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}

	if len(result.Samples) != 3 {
		t.Fatalf("Samples: got %d, want 3", len(result.Samples))
	}

	wantHex := []string{"#00FF00", "#FFFFFF", "#0000FF"}
	for i, s := range result.Samples {
		if s.Label != points[i].Label {
			t.Errorf("sample %d Label: got %q, want %q", i, s.Label, points[i].Label)
		}
		if s.Row != points[i].Row || s.Col != points[i].Col {
			t.Errorf("sample %d position: got (%d,%d), want (%d,%d)", i, s.Row, s.Col, points[i].Row, points[i].Col)
		}
		if s.Color.Hex != wantHex[i] {
			t.Errorf("sample %d Hex: got %s, want %s", i, s.Color.Hex, wantHex[i])
		}
	}
}

func TestSampleColorsMulti_OutOfBounds(t *testing.T) {
	points := []LabeledPoint{
		{Row: 0, Col: 0},
		{Row: 9, Col: 9},
	}

	result, err := SampleColorsMulti(pixelgrid.SampleGrid(), points)
	if err == nil {
		t.Error("SampleColorsMulti should fail when any point is out of bounds")
	}
	if result != nil {
		t.Error("no partial results expected on error")
	}
}

func TestDominantColors(t *testing.T) {
	result, err := DominantColors(pixelgrid.SampleGrid(), 3)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	if len(result.Colors) != 3 {
		t.Fatalf("Colors: got %d, want 3", len(result.Colors))
	}

	// Blue, red and yellow each cover 2 of 9 pixels; ties sort by hex
	wantHex := []string{"#0000F0", "#F00000", "#F0F000"}
	for i, c := range result.Colors {
		if c.Hex != wantHex[i] {
			t.Errorf("color %d: got %s, want %s", i, c.Hex, wantHex[i])
		}
		if c.Count != 2 {
			t.Errorf("color %d Count: got %d, want 2", i, c.Count)
		}
		if c.Percentage != 22.22 {
			t.Errorf("color %d Percentage: got %v, want 22.22", i, c.Percentage)
		}
	}
}

func TestDominantColors_AllColors(t *testing.T) {
	result, err := DominantColors(pixelgrid.SampleGrid(), 0)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	// yellow, green, blue, black, red, white
	if len(result.Colors) != 6 {
		t.Errorf("Colors: got %d, want 6", len(result.Colors))
	}

	total := 0.0
	for _, c := range result.Colors {
		total += c.Percentage
	}
	if total < 99.9 || total > 100.1 {
		t.Errorf("percentages should sum to ~100, got %v", total)
	}
}

func TestDominantColors_Empty(t *testing.T) {
	if _, err := DominantColors(pixelgrid.Grid{}, 5); err == nil {
		t.Error("DominantColors should fail for an empty grid")
	}
}
