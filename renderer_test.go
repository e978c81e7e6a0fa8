package img2ascii

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRenderer(t *testing.T) {
	tests := []struct {
		name    string
		style   Style
		wantErr bool
	}{
		{name: "ascii", style: StyleASCII, wantErr: false},
		{name: "halfblocks", style: StyleHalfblocks, wantErr: false},
		{name: "invalid", style: Style(99), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer, err := GetRenderer(tt.style)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, renderer)
			} else {
				require.NoError(t, err)
				require.NotNil(t, renderer)
				assert.Equal(t, tt.style, renderer.Style())
			}
		})
	}
}

func TestParseStyle(t *testing.T) {
	for _, s := range []Style{StyleASCII, StyleHalfblocks} {
		parsed, err := ParseStyle(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseStyle("sixel")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestASCIIRendererUniform(t *testing.T) {
	tests := []struct {
		name   string
		color  color.Color
		invert bool
		want   string
	}{
		{name: "black", color: color.Black, want: "          "},
		{name: "white", color: color.White, want: "@@@@@@@@@@"},
		{name: "inverted black", color: color.Black, invert: true, want: "@@@@@@@@@@"},
		{name: "inverted white", color: color.White, invert: true, want: "          "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &ASCIIRenderer{}
			out, err := r.Render(createUniformImage(20, 10, tt.color), RenderOptions{
				Width:  10,
				Filter: FilterNearest,
				Invert: tt.invert,
			})
			require.NoError(t, err)

			// 20x10 source at 10 columns with 0.5 cells: round(10 * 0.5 * 0.5) = 3 rows
			assert.Equal(t, Grid{Cols: 10, Rows: 3}, r.Grid())
			assert.Equal(t, strings.Repeat(tt.want+"\n", 3), out)
		})
	}
}

func TestASCIIRendererCustomRamp(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	for y := range 10 {
		for x := range 20 {
			if x >= 10 {
				img.Set(x, y, color.White)
			} else {
				img.Set(x, y, color.Black)
			}
		}
	}

	r := &ASCIIRenderer{}
	out, err := r.Render(img, RenderOptions{
		Width:  10,
		Height: 2,
		Filter: FilterNearest,
		Ramp:   Ramp(RampBinary),
	})
	require.NoError(t, err)

	// Fit keeps the 10 column width: 2 rows at ratio 0.25 need 8 columns
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, "    ####", line)
	}
}

func TestASCIIRendererRowCount(t *testing.T) {
	src := createTestImage(120, 80)

	sizes := []struct {
		width  int
		height int
	}{
		{width: 40, height: 0},
		{width: 0, height: 12},
		{width: 100, height: 10},
		{width: 7, height: 7},
	}

	for _, sz := range sizes {
		r := &ASCIIRenderer{}
		out, err := r.Render(src, RenderOptions{Width: sz.width, Height: sz.height})
		require.NoError(t, err)

		grid := r.Grid()
		assert.True(t, strings.HasSuffix(out, "\n"))

		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		assert.Len(t, lines, grid.Rows, "size %dx%d", sz.width, sz.height)
		for _, line := range lines {
			assert.Equal(t, grid.Cols, len([]rune(line)))
		}
	}
}

func TestASCIIRendererTrueColor(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}

	r := &ASCIIRenderer{}
	out, err := r.Render(createUniformImage(8, 8, red), RenderOptions{
		Width:     4,
		Filter:    FilterNearest,
		ColorMode: ColorTrueColor,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, r.Grid().Rows)

	glyph := string(DefaultRamp.Glyph(Luminance(red)))
	for _, line := range lines {
		// One color change per row: the color only repeats when it changes
		assert.Equal(t, "\x1b[38;2;255;0;0m"+strings.Repeat(glyph, 4)+"\x1b[0m", line)
	}
}

func TestASCIIRendererANSI256(t *testing.T) {
	r := &ASCIIRenderer{}
	out, err := r.Render(createTestImage(32, 32), RenderOptions{
		Width:     16,
		ColorMode: ColorANSI256,
		Palette:   4,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[38;5;")
	assert.NotContains(t, out, "\x1b[38;2;")
}

func TestASCIIRendererDither(t *testing.T) {
	src := createTestImage(64, 32)

	for _, mode := range []DitherMode{DitherFloydSteinberg, DitherStucki, DitherBayer} {
		t.Run(mode.String(), func(t *testing.T) {
			r := &ASCIIRenderer{}
			out, err := r.Render(src, RenderOptions{
				Width:  32,
				Ramp:   Ramp(RampStandard),
				Dither: mode,
			})
			require.NoError(t, err)

			for _, g := range strings.ReplaceAll(out, "\n", "") {
				assert.Contains(t, RampStandard, string(g))
			}
		})
	}
}

func TestASCIIRendererErrors(t *testing.T) {
	r := &ASCIIRenderer{}

	_, err := r.Render(nil, RenderOptions{Width: 10})
	assert.Error(t, err)

	_, err = r.Render(createTestImage(10, 10), RenderOptions{Width: -1})
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = r.Render(createTestImage(10, 10), RenderOptions{Width: 10, Adjustments: Adjustments{Contrast: 200}})
	assert.ErrorIs(t, err, ErrInvalidAdjustment)

	// Grids too large to allocate are rejected before resampling
	_, err = r.Render(createTestImage(10, 10), RenderOptions{Width: 10, CellAspect: 1e13})
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = (&HalfblocksRenderer{}).Render(createTestImage(10, 10), RenderOptions{Width: 10, CellAspect: 1e13})
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestHalfblocksRenderer(t *testing.T) {
	r := &HalfblocksRenderer{}
	out, err := r.Render(createTestImage(80, 40), RenderOptions{Width: 20})
	require.NoError(t, err)

	assert.NotEmpty(t, out)
	assert.Contains(t, out, "\x1b[", "half blocks are always colored")
	assert.Equal(t, Grid{Cols: 20, Rows: 5}, r.Grid())

	_, err = r.Render(nil, RenderOptions{Width: 20})
	assert.Error(t, err)
}
