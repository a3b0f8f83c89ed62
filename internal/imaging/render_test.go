package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/pixelgrid-tools/internal/pixelgrid"
)

// decodeResult decodes the base64 PNG of a render result.
func decodeResult(t *testing.T, result *RenderResult) image.Image {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	return img
}

// rgb8 returns the 8-bit RGB components at (x, y).
func rgb8(img image.Image, x, y int) [3]uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	return [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

func TestRender(t *testing.T) {
	result, err := Render(pixelgrid.SampleGrid(), 1)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if result.Width != 3 || result.Height != 3 {
		t.Errorf("size: got %dx%d, want 3x3", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	img := decodeResult(t, result)
	if got := rgb8(img, 2, 0); got != [3]uint8{0, 255, 0} {
		t.Errorf("pixel (row 0, col 2): got %v, want green", got)
	}
	if got := rgb8(img, 0, 2); got != [3]uint8{255, 0, 0} {
		t.Errorf("pixel (row 2, col 0): got %v, want red", got)
	}
}

func TestRender_Scale(t *testing.T) {
	tests := []struct {
		name      string
		scale     int
		wantScale int
	}{
		{"zero treated as 1", 0, 1},
		{"negative treated as 1", -3, 1},
		{"double", 2, 2},
		{"large", 40, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Render(pixelgrid.SampleGrid(), tt.scale)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}

			if result.Scale != tt.wantScale {
				t.Errorf("Scale: got %d, want %d", result.Scale, tt.wantScale)
			}
			if result.Width != 3*tt.wantScale || result.Height != 3*tt.wantScale {
				t.Errorf("size: got %dx%d, want %dx%d", result.Width, result.Height, 3*tt.wantScale, 3*tt.wantScale)
			}
			if result.Rows != 3 || result.Cols != 3 {
				t.Errorf("grid size: got %dx%d, want 3x3", result.Rows, result.Cols)
			}
		})
	}
}

func TestRender_NearestNeighborBlocks(t *testing.T) {
	result, err := Render(pixelgrid.SampleGrid(), 10)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	img := decodeResult(t, result)

	// Every pixel inside the green cell's block is pure green
	for y := 0; y < 10; y++ {
		for x := 20; x < 30; x++ {
			if got := rgb8(img, x, y); got != [3]uint8{0, 255, 0} {
				t.Fatalf("pixel (%d,%d): got %v, want green", x, y, got)
			}
		}
	}
}

func TestRender_EmptyGrid(t *testing.T) {
	_, err := Render(pixelgrid.Grid{}, 1)
	if !errors.Is(err, pixelgrid.ErrEmptyGrid) {
		t.Errorf("expected ErrEmptyGrid, got %v", err)
	}
}

func TestRender_ScaleTooLarge(t *testing.T) {
	tests := []struct {
		name    string
		grid    pixelgrid.Grid
		scale   int
		wantErr bool
	}{
		{"row at limit", pixelgrid.New(1, MaxRenderSide/8, pixelgrid.Red), 8, false},
		{"row past limit", pixelgrid.New(1, MaxRenderSide/8, pixelgrid.Red), 9, true},
		{"oversized grid at scale 1", pixelgrid.New(1, MaxRenderSide+1, pixelgrid.Red), 1, false},
		{"fixture past limit", pixelgrid.SampleGrid(), MaxRenderSide/3 + 1, true},
		{"overflowing scale", pixelgrid.SampleGrid(), 1 << 30, true},
		{"wide grid", pixelgrid.New(1, MaxRenderSide, pixelgrid.Red), 2, true},
		{"tall grid", pixelgrid.New(MaxRenderSide, 1, pixelgrid.Red), 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderImage(tt.grid, tt.scale)
			if tt.wantErr {
				if !errors.Is(err, ErrScaleTooLarge) {
					t.Errorf("expected ErrScaleTooLarge, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSaveGrid_ScaleTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.png")

	err := SaveGrid(pixelgrid.SampleGrid(), path, 1<<30)
	if !errors.Is(err, ErrScaleTooLarge) {
		t.Fatalf("expected ErrScaleTooLarge, got %v", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("no file should be written when the scale is rejected")
	}
}

func TestSaveGrid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		wantErr bool
	}{
		{"png", "out.png", false},
		{"jpeg", "out.jpg", false},
		{"jpeg long ext", "out.jpeg", false},
		{"unsupported", "out.tiff", true},
		{"no extension", "out", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			err := SaveGrid(pixelgrid.SampleGrid(), path, 4)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("SaveGrid failed: %v", err)
			}

			stat, err := os.Stat(path)
			if err != nil {
				t.Fatalf("output not written: %v", err)
			}
			if stat.Size() == 0 {
				t.Error("output file is empty")
			}
		})
	}
}

func TestSaveGrid_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flag.png")
	flag := pixelgrid.FlagFilter(pixelgrid.SampleGrid())

	if err := SaveGrid(flag, path, 1); err != nil {
		t.Fatalf("SaveGrid failed: %v", err)
	}

	g, err := LoadGrid(NewImageCache(), path)
	if err != nil {
		t.Fatalf("LoadGrid failed: %v", err)
	}
	if !g.Equal(flag) {
		t.Errorf("round trip mismatch: got %v, want %v", g, flag)
	}
}
