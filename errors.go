package img2ascii

import "errors"

// Errors returned by the conversion pipeline. Callers match them with errors.Is.
var (
	ErrEmptyPath         = errors.New("path cannot be empty")
	ErrNoSource          = errors.New("no image source configured")
	ErrSourceNotFound    = errors.New("image not found")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrInvalidRamp       = errors.New("invalid glyph ramp")
	ErrInvalidAdjustment = errors.New("invalid image adjustment")
	ErrUnknownOption     = errors.New("unknown option")
)
