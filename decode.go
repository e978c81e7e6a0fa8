package img2ascii

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// StdinPath is the path that makes Open read the image from stdin
const StdinPath = "-"

// Decode decodes an image in any registered format (PNG, JPEG, GIF, BMP,
// TIFF, WebP). Only the first frame of an animated GIF is returned.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, "", fmt.Errorf("%w: image is %dx%d", ErrInvalidDimensions, b.Dx(), b.Dy())
	}

	return img, format, nil
}

// DecodeFile opens and decodes the image at path
func DecodeFile(path string) (image.Image, string, error) {
	if path == "" {
		return nil, "", ErrEmptyPath
	}
	if path == StdinPath {
		return Decode(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %w", ErrSourceNotFound, err)
		}
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// loadImage loads the image from the configured source
func (i *Image) loadImage() (image.Image, error) {
	if i.source != nil {
		return i.source, nil
	}

	var (
		img    image.Image
		format string
		err    error
	)

	switch {
	case i.path != "":
		img, format, err = DecodeFile(i.path)
	case i.reader != nil:
		img, format, err = Decode(i.reader)
	default:
		return nil, ErrNoSource
	}
	if err != nil {
		return nil, err
	}

	i.source = img
	i.format = format
	return img, nil
}
