package img2ascii

import (
	"fmt"
	"image"

	"github.com/disintegration/gift"
)

// Adjustments are optional corrections applied to the source before it is
// resampled. The zero value leaves the image untouched.
type Adjustments struct {
	Brightness float32 // percentage in [-100, 100]
	Contrast   float32 // percentage in [-100, 100]
	Gamma      float32 // 0 disables, otherwise > 0
	Sharpen    bool
	Grayscale  bool
	Edges      bool // replace the image with its Sobel edge map
}

// IsZero reports whether the adjustments are a no-op
func (a Adjustments) IsZero() bool {
	return a == Adjustments{}
}

// Validate checks that every value is in range
func (a Adjustments) Validate() error {
	if a.Brightness < -100 || a.Brightness > 100 {
		return fmt.Errorf("%w: brightness %v not in [-100, 100]", ErrInvalidAdjustment, a.Brightness)
	}
	if a.Contrast < -100 || a.Contrast > 100 {
		return fmt.Errorf("%w: contrast %v not in [-100, 100]", ErrInvalidAdjustment, a.Contrast)
	}
	if a.Gamma < 0 {
		return fmt.Errorf("%w: gamma %v must be positive", ErrInvalidAdjustment, a.Gamma)
	}
	return nil
}

// filters returns the gift filter chain for the adjustments
func (a Adjustments) filters() []gift.Filter {
	var fs []gift.Filter
	if a.Grayscale {
		fs = append(fs, gift.Grayscale())
	}
	if a.Brightness != 0 {
		fs = append(fs, gift.Brightness(a.Brightness))
	}
	if a.Contrast != 0 {
		fs = append(fs, gift.Contrast(a.Contrast))
	}
	if a.Gamma != 0 && a.Gamma != 1 {
		fs = append(fs, gift.Gamma(a.Gamma))
	}
	if a.Sharpen {
		fs = append(fs, gift.UnsharpMask(1, 1, 0))
	}
	if a.Edges {
		fs = append(fs, gift.Sobel())
	}
	return fs
}

// Apply runs the adjustments over img and returns the result
func (a Adjustments) Apply(img image.Image) (image.Image, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	fs := a.filters()
	if len(fs) == 0 {
		return img, nil
	}

	g := gift.New(fs...)
	dst := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)

	return dst, nil
}
