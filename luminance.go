package img2ascii

import "image/color"

// Luminance returns the Rec. 709 relative luminance of c in [0, 1].
// Channels are taken as decoded, so transparent pixels read as black.
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	// Integer weights sum to 10000 so white is exactly 1
	y := 2126*(r>>8) + 7152*(g>>8) + 722*(b>>8)
	return float64(y) / (10000 * 255)
}
