// Package display shows a pixel grid in a desktop window.
//
// It is a sink only: nothing drawn here feeds back into the grid library.
package display

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ironsheep/pixelgrid-tools/internal/pixelgrid"
)

// DefaultScale is the on-screen size of one grid pixel when none is given.
const DefaultScale = 64

// maxWindowSide caps the window so large photos still fit on screen.
const maxWindowSide = 1024

// viewer is the ebiten.Game that paints one grid.
type viewer struct {
	src   image.Image
	img   *ebiten.Image
	scale float64
	w, h  int
}

func newViewer(g pixelgrid.Grid, scale int) *viewer {
	w, h := windowSize(g.Cols(), g.Rows(), scale)
	return &viewer{
		src:   pixelgrid.ToImage(g),
		scale: float64(w) / float64(g.Cols()),
		w:     w,
		h:     h,
	}
}

// windowSize returns the window dimensions for a cols×rows grid at scale,
// shrinking the scale until both sides fit within maxWindowSide.
func windowSize(cols, rows, scale int) (int, int) {
	if scale < 1 {
		scale = DefaultScale
	}
	for scale > 1 && (cols*scale > maxWindowSide || rows*scale > maxWindowSide) {
		scale--
	}
	return cols * scale, rows * scale
}

func (v *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	// ebiten images can only be created once the game loop is running.
	if v.img == nil {
		v.img = ebiten.NewImageFromImage(v.src)
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(v.scale, v.scale)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(v.img, &op)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return v.w, v.h
}

// Show opens a window titled title displaying g with each grid pixel drawn as
// a scale×scale block. It blocks until the window is closed or Escape is
// pressed; closing the window is not an error.
func Show(g pixelgrid.Grid, title string, scale int) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if g.Rows() == 0 {
		return fmt.Errorf("cannot display grid: %w", pixelgrid.ErrEmptyGrid)
	}

	v := newViewer(g, scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(v.w, v.h)
	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("display failed: %w", err)
	}
	return nil
}
