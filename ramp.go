package img2ascii

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/mattn/go-runewidth"
)

// Ramp is an ordered set of glyphs from lightest (index 0, luminance 0) to
// densest (last index, luminance 1). On a dark terminal background dense
// glyphs read as bright, so bright pixels map to the end of the ramp.
type Ramp []rune

// Built-in ramps
const (
	RampDetailed = " `.-':_,^=;><+!rc*/z?sLTv)J7(|Fi{C}fI31tlu[neoZ5Yxjya]2ESwqkP6h9d4VpOGbUAKXHm8RD#$Bg0MNWQ%&@"
	RampStandard = " .:-=+*#%@"
	RampBlocks   = " ░▒▓█"
	RampBinary   = " #"
)

var ramps = map[string]string{
	"detailed": RampDetailed,
	"standard": RampStandard,
	"blocks":   RampBlocks,
	"binary":   RampBinary,
}

// DefaultRamp is used when no ramp is configured
var DefaultRamp = Ramp(RampDetailed)

// ParseRamp validates a custom ramp. A ramp needs at least two glyphs and
// every glyph must occupy exactly one terminal column.
func ParseRamp(s string) (Ramp, error) {
	r := Ramp(s)
	if len(r) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 glyphs, got %d", ErrInvalidRamp, len(r))
	}
	for _, g := range r {
		if w := runewidth.RuneWidth(g); w != 1 {
			return nil, fmt.Errorf("%w: glyph %q is %d columns wide", ErrInvalidRamp, g, w)
		}
	}
	return r, nil
}

// RampByName returns a built-in ramp
func RampByName(name string) (Ramp, error) {
	s, ok := ramps[name]
	if !ok {
		return nil, fmt.Errorf("%w: ramp %q", ErrUnknownOption, name)
	}
	return Ramp(s), nil
}

// RampNames returns the names of the built-in ramps, sorted
func RampNames() []string {
	names := make([]string, 0, len(ramps))
	for name := range ramps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Glyph maps a luminance in [0, 1] to a glyph
func (r Ramp) Glyph(l float64) rune {
	if len(r) == 0 {
		return ' '
	}
	idx := int(l * float64(len(r)-1))
	return r[min(max(idx, 0), len(r)-1)]
}

// Nearest maps a luminance in [0, 1] to the glyph whose level is closest.
// Used for dithered input, whose values already sit on the ramp levels.
func (r Ramp) Nearest(l float64) rune {
	if len(r) == 0 {
		return ' '
	}
	idx := int(math.Round(l * float64(len(r)-1)))
	return r[min(max(idx, 0), len(r)-1)]
}

// Reverse returns a copy of the ramp in the opposite order
func (r Ramp) Reverse() Ramp {
	out := slices.Clone(r)
	slices.Reverse(out)
	return out
}

func (r Ramp) String() string {
	return string(r)
}
