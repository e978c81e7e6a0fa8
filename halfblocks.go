package img2ascii

import (
	"fmt"
	"image"

	"github.com/charmbracelet/x/mosaic"
)

// HalfblocksRenderer implements the Renderer interface using mosaic. Each cell
// shows two vertically stacked pixels, always in 24-bit color; the ramp and
// color mode are ignored.
type HalfblocksRenderer struct {
	lastGrid Grid
}

// Style returns the output style
func (r *HalfblocksRenderer) Style() Style {
	return StyleHalfblocks
}

// Grid returns the size of the last rendered output
func (r *HalfblocksRenderer) Grid() Grid {
	return r.lastGrid
}

// Render converts the image to rows of colored half blocks
func (r *HalfblocksRenderer) Render(img image.Image, opts RenderOptions) (string, error) {
	if img == nil {
		return "", fmt.Errorf("image cannot be nil")
	}

	img, err := opts.Adjustments.Apply(img)
	if err != nil {
		return "", err
	}

	grid, err := ComputeGrid(img.Bounds(), opts)
	if err != nil {
		return "", err
	}
	r.lastGrid = grid

	// mosaic samples two source rows per cell, so hand it the grid at
	// double vertical resolution and let it do the pairing
	src := Resample(img, grid.Cols, grid.Rows*2, opts.Filter)

	m := mosaic.New().
		Width(grid.Cols).
		Height(grid.Rows).
		Dither(opts.Dither != DitherNone)

	return m.Render(src), nil
}
