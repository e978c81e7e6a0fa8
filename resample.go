package img2ascii

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
)

// Filter selects the interpolation used when resampling to the grid
type Filter int

const (
	// FilterBilinear uses bilinear interpolation
	FilterBilinear Filter = iota
	// FilterNearest picks the nearest source pixel (fastest)
	FilterNearest
	// FilterCatmullRom uses the Catmull-Rom cubic kernel
	FilterCatmullRom
	// FilterLanczos uses a Lanczos3 kernel (best for large downscales)
	FilterLanczos
)

func (f Filter) String() string {
	switch f {
	case FilterBilinear:
		return "bilinear"
	case FilterNearest:
		return "nearest"
	case FilterCatmullRom:
		return "catmullrom"
	case FilterLanczos:
		return "lanczos"
	default:
		return fmt.Sprintf("Filter(%d)", int(f))
	}
}

// ParseFilter parses a filter name
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "", "bilinear", "linear":
		return FilterBilinear, nil
	case "nearest":
		return FilterNearest, nil
	case "catmullrom", "bicubic":
		return FilterCatmullRom, nil
	case "lanczos":
		return FilterLanczos, nil
	default:
		return FilterBilinear, fmt.Errorf("%w: filter %q", ErrUnknownOption, s)
	}
}

// Resample scales img to exactly cols x rows pixels, one pixel per cell.
// The returned image's bounds start at the origin.
func Resample(img image.Image, cols, rows int, f Filter) image.Image {
	if img == nil || cols <= 0 || rows <= 0 {
		return img
	}

	bounds := img.Bounds()

	// Skip resize if already correct size
	if bounds.Dx() == cols && bounds.Dy() == rows && bounds.Min == (image.Point{}) {
		return img
	}

	if f == FilterLanczos {
		return resize.Resize(uint(cols), uint(rows), img, resize.Lanczos3)
	}

	var interp xdraw.Interpolator
	switch f {
	case FilterNearest:
		interp = xdraw.NearestNeighbor
	case FilterCatmullRom:
		interp = xdraw.CatmullRom
	default:
		interp = xdraw.BiLinear
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols, rows))
	interp.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)

	return dst
}
