package img2ascii

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/soniakeys/quant/median"
)

// ColorMode selects how glyphs are colored
type ColorMode int

const (
	// ColorNone emits plain text
	ColorNone ColorMode = iota
	// ColorAuto uses the best mode the terminal supports
	ColorAuto
	// ColorANSI uses the 16 basic ANSI colors
	ColorANSI
	// ColorANSI256 uses the xterm 256 color palette
	ColorANSI256
	// ColorTrueColor uses 24-bit RGB colors
	ColorTrueColor
)

var resetSeq = termenv.CSI + termenv.ResetSeq + "m"

func (m ColorMode) String() string {
	switch m {
	case ColorNone:
		return "none"
	case ColorAuto:
		return "auto"
	case ColorANSI:
		return "ansi"
	case ColorANSI256:
		return "ansi256"
	case ColorTrueColor:
		return "truecolor"
	default:
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
}

// ParseColorMode parses a color mode name
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "none", "off", "false":
		return ColorNone, nil
	case "auto":
		return ColorAuto, nil
	case "ansi", "16", "4bit":
		return ColorANSI, nil
	case "ansi256", "256", "8bit":
		return ColorANSI256, nil
	case "truecolor", "24bit", "true", "on":
		return ColorTrueColor, nil
	default:
		return ColorNone, fmt.Errorf("%w: color mode %q", ErrUnknownOption, s)
	}
}

// Resolve turns ColorAuto into the detected terminal mode
func (m ColorMode) Resolve() ColorMode {
	if m == ColorAuto {
		return DetectColorMode()
	}
	return m
}

// profile returns the termenv profile for a resolved mode
func (m ColorMode) profile() termenv.Profile {
	switch m {
	case ColorANSI:
		return termenv.ANSI
	case ColorANSI256:
		return termenv.ANSI256
	case ColorTrueColor:
		return termenv.TrueColor
	default:
		return termenv.Ascii
	}
}

// colorModeFromProfile maps a termenv profile onto a ColorMode
func colorModeFromProfile(p termenv.Profile) ColorMode {
	switch p {
	case termenv.TrueColor:
		return ColorTrueColor
	case termenv.ANSI256:
		return ColorANSI256
	case termenv.ANSI:
		return ColorANSI
	default:
		return ColorNone
	}
}

// foreground returns the escape sequence that sets c as the foreground color
// under profile p, or "" when p has no colors.
func foreground(p termenv.Profile, c color.Color) string {
	if p == termenv.Ascii {
		return ""
	}

	cf, ok := colorful.MakeColor(c)
	if !ok { // fully transparent
		cf = colorful.Color{}
	}

	tc := p.Color(cf.Hex())
	if tc == nil {
		return ""
	}

	seq := tc.Sequence(false)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}

// reducePalette maps img onto an optimized palette of n colors
func reducePalette(img image.Image, n int) image.Image {
	if n <= 0 {
		return img
	}
	n = min(n, 256)

	pal := median.Quantizer(n).Palette(img).ColorPalette()
	if len(pal) == 0 {
		return img
	}

	bounds := img.Bounds()
	dst := image.NewPaletted(bounds, pal)
	draw.Draw(dst, bounds, img, bounds.Min, draw.Src)

	return dst
}
