/*
Package img2ascii converts images into ASCII art for terminals and text files.

An image is decoded, optionally adjusted (brightness, contrast, gamma,
sharpening, edge detection), resampled onto a grid of character cells and
every cell is mapped to a glyph from a ramp ordered from light to dense.
Glyphs can be colored with 16, 256 or 24-bit terminal colors.

Supported formats are PNG, JPEG, GIF (first frame), BMP, TIFF and WebP.

Basic Usage:

	// Simple one-liner
	img2ascii.PrintFile("image.png")

	// With configuration
	img, err := img2ascii.Open("image.png")
	if err != nil {
	    log.Fatal(err)
	}

	err = img.Width(100).Color(img2ascii.ColorAuto).Print()
	if err != nil {
	    log.Fatal(err)
	}

Fluent API:

	// Chain configuration methods
	art, err := img2ascii.New(src).
	    Width(120).
	    Ramp(img2ascii.Ramp(img2ascii.RampStandard)).
	    Invert(true).
	    Dither(img2ascii.DitherFloydSteinberg).
	    Render()

Grid Sizing:

Terminal cells are about twice as tall as they are wide, so the number of rows
is the image's height/width ratio times the column count times the cell aspect
(0.5 by default). When neither width nor height is set the terminal width is
used, or 80 columns when stdout is not a terminal.

Ramps:

	img2ascii.RampDetailed // 92 glyphs, the default
	img2ascii.RampStandard // " .:-=+*#%@"
	img2ascii.RampBlocks   // " ░▒▓█"

	ramp, err := img2ascii.ParseRamp(" .oO@")

Interactive Preview:

	img, _ := img2ascii.Open("image.png")
	tea.NewProgram(img2ascii.NewViewer(img), tea.WithAltScreen()).Run()
*/
package img2ascii
