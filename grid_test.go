package img2ascii

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGrid(t *testing.T) {
	tests := []struct {
		name     string
		srcW     int
		srcH     int
		opts     RenderOptions
		wantCols int
		wantRows int
	}{
		{
			name:     "Width only keeps corrected aspect",
			srcW:     100,
			srcH:     50,
			opts:     RenderOptions{Width: 40},
			wantCols: 40,
			wantRows: 10,
		},
		{
			name:     "Height only",
			srcW:     100,
			srcH:     50,
			opts:     RenderOptions{Height: 10},
			wantCols: 40,
			wantRows: 10,
		},
		{
			name:     "Fit limited by height",
			srcW:     100,
			srcH:     100,
			opts:     RenderOptions{Width: 80, Height: 20},
			wantCols: 40,
			wantRows: 20,
		},
		{
			name:     "Fit limited by width",
			srcW:     100,
			srcH:     100,
			opts:     RenderOptions{Width: 20, Height: 100},
			wantCols: 20,
			wantRows: 10,
		},
		{
			name:     "Stretch uses both",
			srcW:     100,
			srcH:     100,
			opts:     RenderOptions{Width: 30, Height: 7, ScaleMode: ScaleStretch},
			wantCols: 30,
			wantRows: 7,
		},
		{
			name:     "None maps one pixel per column",
			srcW:     16,
			srcH:     8,
			opts:     RenderOptions{Width: 100, ScaleMode: ScaleNone},
			wantCols: 16,
			wantRows: 4,
		},
		{
			name:     "Custom cell aspect",
			srcW:     100,
			srcH:     100,
			opts:     RenderOptions{Width: 10, CellAspect: 1},
			wantCols: 10,
			wantRows: 10,
		},
		{
			name:     "Very wide image still has one row",
			srcW:     1000,
			srcH:     1,
			opts:     RenderOptions{Width: 10},
			wantCols: 10,
			wantRows: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := ComputeGrid(image.Rect(0, 0, tt.srcW, tt.srcH), tt.opts)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCols, grid.Cols, "Cols mismatch")
			assert.Equal(t, tt.wantRows, grid.Rows, "Rows mismatch")
		})
	}
}

func TestComputeGridAutoWidth(t *testing.T) {
	// Depends on whether the test binary's stdout is a terminal
	cols := autoWidth()

	grid, err := ComputeGrid(image.Rect(0, 0, 160, 160), RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, cols, grid.Cols)
	assert.Equal(t, max(1, (cols+1)/2), grid.Rows)
}

func TestComputeGridInvalid(t *testing.T) {
	tests := []struct {
		name   string
		bounds image.Rectangle
		opts   RenderOptions
	}{
		{name: "Empty image", bounds: image.Rect(0, 0, 0, 10), opts: RenderOptions{Width: 10}},
		{name: "Negative width", bounds: image.Rect(0, 0, 10, 10), opts: RenderOptions{Width: -1}},
		{name: "Negative height", bounds: image.Rect(0, 0, 10, 10), opts: RenderOptions{Height: -5}},
		{name: "Negative cell aspect", bounds: image.Rect(0, 0, 10, 10), opts: RenderOptions{Width: 10, CellAspect: -0.5}},
		{name: "NaN cell aspect", bounds: image.Rect(0, 0, 10, 10), opts: RenderOptions{Width: 10, CellAspect: math.NaN()}},
		{name: "Infinite cell aspect", bounds: image.Rect(0, 0, 10, 10), opts: RenderOptions{Width: 10, CellAspect: math.Inf(1)}},
		{name: "Negative infinite cell aspect", bounds: image.Rect(0, 0, 10, 10), opts: RenderOptions{Width: 10, CellAspect: math.Inf(-1)}},
		{name: "Huge cell aspect", bounds: image.Rect(0, 0, 10, 10), opts: RenderOptions{Width: 10, CellAspect: 1e13}},
		{name: "Tiny cell aspect by height", bounds: image.Rect(0, 0, 10, 10), opts: RenderOptions{Height: 10, CellAspect: 1e-13}},
		{name: "Huge width", bounds: image.Rect(0, 0, 10, 10), opts: RenderOptions{Width: 1 << 30}},
		{name: "Huge stretch", bounds: image.Rect(0, 0, 10, 10), opts: RenderOptions{Width: 1 << 20, Height: 1 << 20, ScaleMode: ScaleStretch}},
		{name: "Max int width", bounds: image.Rect(0, 0, 10, 10), opts: RenderOptions{Width: math.MaxInt, Height: 1, ScaleMode: ScaleStretch}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeGrid(tt.bounds, tt.opts)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		})
	}
}

func TestComputeGridNeverZero(t *testing.T) {
	for _, w := range []int{1, 2, 3, 7, 80} {
		for _, size := range []image.Rectangle{
			image.Rect(0, 0, 1, 1),
			image.Rect(0, 0, 5000, 3),
			image.Rect(0, 0, 3, 5000),
		} {
			grid, err := ComputeGrid(size, RenderOptions{Width: w})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, grid.Cols, 1)
			assert.GreaterOrEqual(t, grid.Rows, 1)
		}
	}
}

func TestComputeGridAtLimit(t *testing.T) {
	grid, err := ComputeGrid(image.Rect(0, 0, 10, 10), RenderOptions{
		Width:     1 << 12,
		Height:    1 << 12,
		ScaleMode: ScaleStretch,
	})
	require.NoError(t, err)
	assert.Equal(t, maxGridCells, grid.Cols*grid.Rows)
}
