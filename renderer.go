package img2ascii

import (
	"fmt"
	"image"
	"strings"
)

// Style selects the kind of text the image is rendered to
type Style int

const (
	// StyleASCII renders one glyph from the ramp per cell
	StyleASCII Style = iota
	// StyleHalfblocks renders two vertical pixels per cell with colored half blocks
	StyleHalfblocks
)

func (s Style) String() string {
	switch s {
	case StyleASCII:
		return "ascii"
	case StyleHalfblocks:
		return "halfblocks"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle parses a style name
func ParseStyle(s string) (Style, error) {
	switch s {
	case "", "ascii":
		return StyleASCII, nil
	case "halfblocks", "blocks":
		return StyleHalfblocks, nil
	default:
		return StyleASCII, fmt.Errorf("%w: style %q", ErrUnknownOption, s)
	}
}

// GetRenderer returns a renderer for the specified style
func GetRenderer(style Style) (Renderer, error) {
	switch style {
	case StyleASCII:
		return &ASCIIRenderer{}, nil
	case StyleHalfblocks:
		return &HalfblocksRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported style: %s", style)
	}
}

// ASCIIRenderer implements the Renderer interface with glyph ramps
type ASCIIRenderer struct {
	lastGrid Grid
}

// Style returns the output style
func (r *ASCIIRenderer) Style() Style {
	return StyleASCII
}

// Grid returns the size of the last rendered output
func (r *ASCIIRenderer) Grid() Grid {
	return r.lastGrid
}

// Render converts the image to lines of glyphs. Every row, including the
// last, ends in a newline. When color is enabled each row ends with a reset.
func (r *ASCIIRenderer) Render(img image.Image, opts RenderOptions) (string, error) {
	if img == nil {
		return "", fmt.Errorf("image cannot be nil")
	}

	cells, grid, err := processImage(img, opts)
	if err != nil {
		return "", err
	}
	r.lastGrid = grid

	ramp := opts.Ramp
	if len(ramp) == 0 {
		ramp = DefaultRamp
	}
	if opts.Invert {
		ramp = ramp.Reverse()
	}

	glyphs := ditherLuminance(cells, len(ramp), opts.Dither)
	glyphAt := ramp.Glyph
	if opts.Dither != DitherNone {
		glyphAt = ramp.Nearest
	}

	mode := opts.ColorMode.Resolve()
	colored := mode != ColorNone
	colors := cells
	if colored {
		colors = reducePalette(cells, opts.Palette)
	}
	profile := mode.profile()

	var b strings.Builder
	perCell := 1
	if colored {
		perCell = 20
	}
	b.Grow((grid.Cols*perCell + 1) * grid.Rows)

	gb, cb := glyphs.Bounds(), colors.Bounds()
	for y := range grid.Rows {
		last := ""
		for x := range grid.Cols {
			if colored {
				if seq := foreground(profile, colors.At(cb.Min.X+x, cb.Min.Y+y)); seq != last {
					b.WriteString(seq)
					last = seq
				}
			}
			b.WriteRune(glyphAt(Luminance(glyphs.At(gb.Min.X+x, gb.Min.Y+y))))
		}
		if last != "" {
			b.WriteString(resetSeq)
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// processImage applies the adjustments and resamples the image to one pixel per cell
func processImage(img image.Image, opts RenderOptions) (image.Image, Grid, error) {
	img, err := opts.Adjustments.Apply(img)
	if err != nil {
		return nil, Grid{}, err
	}

	grid, err := ComputeGrid(img.Bounds(), opts)
	if err != nil {
		return nil, Grid{}, err
	}

	return Resample(img, grid.Cols, grid.Rows, opts.Filter), grid, nil
}
