package img2ascii

import (
	"fmt"
	"image"
	"math"
)

// maxGridCells caps Cols*Rows so the resampled buffer stays allocatable
const maxGridCells = 1 << 24

// Grid is the size of the rendered output in character cells
type Grid struct {
	Cols int
	Rows int
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Cols, g.Rows)
}

// ComputeGrid maps the source bounds onto a character grid.
//
// The source aspect ratio is corrected by opts.CellAspect so the output keeps
// the image's proportions on screen. With neither Width nor Height set, the
// width is taken from the terminal (or DefaultWidth when stdout is not one).
func ComputeGrid(bounds image.Rectangle, opts RenderOptions) (Grid, error) {
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return Grid{}, fmt.Errorf("%w: source image is %dx%d", ErrInvalidDimensions, srcW, srcH)
	}
	if opts.Width < 0 || opts.Height < 0 {
		return Grid{}, fmt.Errorf("%w: requested %dx%d", ErrInvalidDimensions, opts.Width, opts.Height)
	}

	aspect := opts.CellAspect
	if aspect == 0 {
		aspect = DefaultCellAspect
	}
	if aspect < 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		return Grid{}, fmt.Errorf("%w: cell aspect %v", ErrInvalidDimensions, opts.CellAspect)
	}

	// Rows per column of output, after correcting for the cell shape
	ratio := float64(srcH) / float64(srcW) * aspect

	if ratio == 0 || math.IsInf(ratio, 0) {
		return Grid{}, fmt.Errorf("%w: cell aspect %v on a %dx%d image", ErrInvalidDimensions, opts.CellAspect, srcW, srcH)
	}

	// Clamped before the int conversion; checkSize rejects anything that large
	cells := func(v float64) int {
		return max(1, int(math.Min(math.Round(v), maxGridCells+1)))
	}
	rowsFor := func(cols int) int {
		return cells(float64(cols) * ratio)
	}
	colsFor := func(rows int) int {
		return cells(float64(rows) / ratio)
	}

	cols, rows := opts.Width, opts.Height

	if opts.ScaleMode == ScaleNone {
		return checkSize(Grid{Cols: srcW, Rows: rowsFor(srcW)})
	}

	if cols == 0 && rows == 0 {
		cols = autoWidth()
	}

	switch {
	case rows == 0:
		rows = rowsFor(cols)
	case cols == 0:
		cols = colsFor(rows)
	case opts.ScaleMode == ScaleFit:
		// Largest grid inside cols x rows that keeps the corrected ratio
		if fit := colsFor(rows); fit <= cols {
			cols = fit
		} else {
			rows = rowsFor(cols)
		}
	}

	return checkSize(Grid{Cols: max(cols, 1), Rows: max(rows, 1)})
}

// checkSize rejects grids with more than maxGridCells cells
func checkSize(g Grid) (Grid, error) {
	if g.Cols > maxGridCells || g.Rows > maxGridCells || g.Cols > maxGridCells/g.Rows {
		return Grid{}, fmt.Errorf("%w: %s grid exceeds %d cells", ErrInvalidDimensions, g, maxGridCells)
	}
	return g, nil
}

// autoWidth returns the terminal width or DefaultWidth
func autoWidth() int {
	if cols, _, ok := TerminalSize(); ok && cols > 0 {
		return cols
	}
	return DefaultWidth
}
