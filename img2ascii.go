package img2ascii

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
)

const (
	DefaultWidth      = 80  // columns used when no width is given and stdout is not a terminal
	DefaultCellAspect = 0.5 // terminal cells are roughly twice as tall as they are wide
)

// Image represents an image to convert with a fluent API for configuration
type Image struct {
	source image.Image
	reader io.Reader
	path   string
	format string

	// Configuration
	width      int
	height     int
	scaleMode  ScaleMode
	cellAspect float64
	filter     Filter
	ramp       Ramp
	invert     bool
	colorMode  ColorMode
	palette    int
	dither     DitherMode
	style      Style
	adjust     Adjustments

	// Cached renderer
	renderer Renderer
}

// ScaleMode defines how the image is mapped onto the character grid
type ScaleMode int

const (
	// ScaleFit fits the image within the requested bounds while maintaining aspect ratio
	ScaleFit ScaleMode = iota
	// ScaleStretch uses the requested columns and rows exactly
	ScaleStretch
	// ScaleNone maps one source pixel to one column
	ScaleNone
)

func (s ScaleMode) String() string {
	switch s {
	case ScaleFit:
		return "fit"
	case ScaleStretch:
		return "stretch"
	case ScaleNone:
		return "none"
	default:
		return fmt.Sprintf("ScaleMode(%d)", int(s))
	}
}

// ParseScaleMode parses a scale mode name
func ParseScaleMode(s string) (ScaleMode, error) {
	switch s {
	case "", "fit":
		return ScaleFit, nil
	case "stretch":
		return ScaleStretch, nil
	case "none", "original":
		return ScaleNone, nil
	default:
		return ScaleFit, fmt.Errorf("%w: scale mode %q", ErrUnknownOption, s)
	}
}

// Renderer is the interface that all output styles must satisfy
type Renderer interface {
	// Render converts the image into text
	Render(img image.Image, opts RenderOptions) (string, error)

	// Style returns the output style
	Style() Style
}

// RenderOptions contains all options for converting an image
type RenderOptions struct {
	Width       int // columns; 0 derives it from Height or the terminal
	Height      int // rows; 0 derives it from Width
	ScaleMode   ScaleMode
	CellAspect  float64 // cell width / cell height; 0 means DefaultCellAspect
	Filter      Filter
	Ramp        Ramp // nil means DefaultRamp
	Invert      bool
	ColorMode   ColorMode
	Palette     int // reduce to this many colors before coloring; 0 disables
	Dither      DitherMode
	Adjustments Adjustments
}

// New creates a new Image from an image.Image
func New(img image.Image) *Image {
	if img == nil {
		return nil
	}
	return &Image{
		source:     img,
		cellAspect: DefaultCellAspect,
		filter:     FilterBilinear,
	}
}

// Open creates a new Image from a file path. The path "-" reads stdin.
func Open(path string) (*Image, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return &Image{
		path:       path,
		cellAspect: DefaultCellAspect,
		filter:     FilterBilinear,
	}, nil
}

// From creates a new Image from an io.Reader
func From(r io.Reader) *Image {
	if r == nil {
		return nil
	}
	return &Image{
		reader:     r,
		cellAspect: DefaultCellAspect,
		filter:     FilterBilinear,
	}
}

// Width sets the target width in character cells
func (i *Image) Width(w int) *Image {
	i.width = max(w, 0)
	return i
}

// Height sets the target height in character cells
func (i *Image) Height(h int) *Image {
	i.height = max(h, 0)
	return i
}

// Size sets both width and height in character cells
func (i *Image) Size(w, h int) *Image {
	i.width = max(w, 0)
	i.height = max(h, 0)
	return i
}

// Scale sets the scaling mode
func (i *Image) Scale(mode ScaleMode) *Image {
	i.scaleMode = mode
	return i
}

// CellAspect sets the width/height ratio of one terminal cell
func (i *Image) CellAspect(a float64) *Image {
	i.cellAspect = a
	return i
}

// Filter sets the resampling filter
func (i *Image) Filter(f Filter) *Image {
	i.filter = f
	return i
}

// Ramp sets the glyph ramp
func (i *Image) Ramp(r Ramp) *Image {
	i.ramp = r
	return i
}

// Invert reverses the ramp so dark pixels get dense glyphs
func (i *Image) Invert(v bool) *Image {
	i.invert = v
	return i
}

// Color sets the color mode
func (i *Image) Color(mode ColorMode) *Image {
	i.colorMode = mode
	return i
}

// Palette limits colored output to n colors
func (i *Image) Palette(n int) *Image {
	i.palette = max(n, 0)
	return i
}

// Dither sets the dithering algorithm applied to luminance
func (i *Image) Dither(mode DitherMode) *Image {
	i.dither = mode
	return i
}

// Style sets the output style
func (i *Image) Style(s Style) *Image {
	i.style = s
	i.renderer = nil // Clear cached renderer
	return i
}

// Adjust sets the preprocessing adjustments
func (i *Image) Adjust(a Adjustments) *Image {
	i.adjust = a
	return i
}

// Options returns the RenderOptions built from the Image configuration
func (i *Image) Options() RenderOptions {
	return RenderOptions{
		Width:       i.width,
		Height:      i.height,
		ScaleMode:   i.scaleMode,
		CellAspect:  i.cellAspect,
		Filter:      i.filter,
		Ramp:        i.ramp,
		Invert:      i.invert,
		ColorMode:   i.colorMode,
		Palette:     i.palette,
		Dither:      i.dither,
		Adjustments: i.adjust,
	}
}

// WithOptions replaces the whole configuration with opts
func (i *Image) WithOptions(opts RenderOptions) *Image {
	i.width = max(opts.Width, 0)
	i.height = max(opts.Height, 0)
	i.scaleMode = opts.ScaleMode
	i.cellAspect = opts.CellAspect
	i.filter = opts.Filter
	i.ramp = opts.Ramp
	i.invert = opts.Invert
	i.colorMode = opts.ColorMode
	i.palette = max(opts.Palette, 0)
	i.dither = opts.Dither
	i.adjust = opts.Adjustments
	return i
}

// Load decodes the source if needed and returns it
func (i *Image) Load() (image.Image, error) {
	return i.loadImage()
}

// Grid returns the size of the last render, or the zero Grid before the first one
func (i *Image) Grid() Grid {
	if r, ok := i.renderer.(interface{ Grid() Grid }); ok {
		return r.Grid()
	}
	return Grid{}
}

// Render converts the image to text
func (i *Image) Render() (string, error) {
	img, err := i.loadImage()
	if err != nil {
		return "", err
	}

	renderer, err := i.getRenderer()
	if err != nil {
		return "", err
	}

	return renderer.Render(img, i.Options())
}

// WriteTo renders the image and writes it to w
func (i *Image) WriteTo(w io.Writer) (int64, error) {
	out, err := i.Render()
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(w)
	n, err := bw.WriteString(out)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write output: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return int64(n), fmt.Errorf("failed to write output: %w", err)
	}
	return int64(n), nil
}

// Print outputs the image to stdout
func (i *Image) Print() error {
	_, err := i.WriteTo(os.Stdout)
	return err
}

// Info returns a short description of the source image
func (i *Image) Info() string {
	name := i.path
	switch {
	case name == "" && i.reader != nil:
		name = "<reader>"
	case name == "":
		name = "<image>"
	}

	if i.source == nil {
		return name
	}

	b := i.source.Bounds()
	if i.format != "" {
		return fmt.Sprintf("%s (%s) %dx%d", name, i.format, b.Dx(), b.Dy())
	}
	return fmt.Sprintf("%s %dx%d", name, b.Dx(), b.Dy())
}

// getRenderer returns the renderer for the configured style
func (i *Image) getRenderer() (Renderer, error) {
	if i.renderer != nil {
		return i.renderer, nil
	}

	renderer, err := GetRenderer(i.style)
	if err != nil {
		return nil, err
	}

	i.renderer = renderer
	return renderer, nil
}

// Convenience functions for quick rendering

// Render converts an image with default settings
func Render(img image.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("image cannot be nil")
	}
	return New(img).Render()
}

// RenderFile converts an image file with default settings
func RenderFile(path string) (string, error) {
	img, err := Open(path)
	if err != nil {
		return "", err
	}
	return img.Render()
}

// Print prints an image with default settings
func Print(img image.Image) error {
	if img == nil {
		return fmt.Errorf("image cannot be nil")
	}
	return New(img).Print()
}

// PrintFile prints an image file with default settings
func PrintFile(path string) error {
	img, err := Open(path)
	if err != nil {
		return err
	}
	return img.Print()
}
