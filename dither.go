package img2ascii

import (
	"fmt"
	"image"
	"image/color"

	"github.com/makeworld-the-better-one/dither/v2"
)

// DitherMode defines dithering algorithms for luminance quantization
type DitherMode int

const (
	// DitherNone performs no dithering
	DitherNone DitherMode = iota
	// DitherFloydSteinberg uses Floyd-Steinberg error diffusion
	DitherFloydSteinberg
	// DitherStucki uses Stucki error diffusion
	DitherStucki
	// DitherBayer uses a 4x4 ordered Bayer matrix
	DitherBayer
)

// maxDitherLevels is the largest palette the ditherer accepts
const maxDitherLevels = 256

func (d DitherMode) String() string {
	switch d {
	case DitherNone:
		return "none"
	case DitherFloydSteinberg:
		return "floyd-steinberg"
	case DitherStucki:
		return "stucki"
	case DitherBayer:
		return "bayer"
	default:
		return fmt.Sprintf("DitherMode(%d)", int(d))
	}
}

// ParseDitherMode parses a dither mode name
func ParseDitherMode(s string) (DitherMode, error) {
	switch s {
	case "", "none", "off":
		return DitherNone, nil
	case "floyd-steinberg", "fs", "on":
		return DitherFloydSteinberg, nil
	case "stucki":
		return DitherStucki, nil
	case "bayer", "ordered":
		return DitherBayer, nil
	default:
		return DitherNone, fmt.Errorf("%w: dither mode %q", ErrUnknownOption, s)
	}
}

// grayLevels returns n evenly spaced gray levels from black to white
func grayLevels(n int) []color.Color {
	pal := make([]color.Color, n)
	for i := range n {
		pal[i] = color.Gray{Y: uint8(i * 255 / (n - 1))}
	}
	return pal
}

// ditherLuminance quantizes img to the levels of a ramp with the given
// number of glyphs. The result is a gray image the same size as img.
func ditherLuminance(img image.Image, levels int, mode DitherMode) image.Image {
	if mode == DitherNone || levels < 2 {
		return img
	}
	levels = min(levels, maxDitherLevels)

	d := dither.NewDitherer(grayLevels(levels))
	if d == nil {
		return img
	}

	switch mode {
	case DitherStucki:
		d.Matrix = dither.Stucki
	case DitherBayer:
		d.Mapper = dither.Bayer(4, 4, 1.0)
	default:
		d.Matrix = dither.FloydSteinberg
	}

	return d.DitherCopy(img)
}
