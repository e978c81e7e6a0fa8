/*
Copyright © 2024 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/blacktop/go-img2ascii"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var verbose bool
var cfgFile string

// conf holds flags, IMG2ASCII_* environment variables and the config file
var conf = viper.New()

func init() {
	log.SetHandler(clihander.Default)
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.config/img2ascii/config.yaml)")

	// Conversion flags are shared with the view command
	pf := rootCmd.PersistentFlags()
	pf.IntP("width", "w", 0, "Width in characters of the output (0 = terminal width or 80)")
	pf.IntP("height", "H", 0, "Height in characters of the output (0 = keep aspect ratio)")
	pf.StringP("ramp", "r", "detailed", "Glyph ramp: "+strings.Join(img2ascii.RampNames(), ", "))
	pf.String("chars", "", "Custom glyph ramp ordered from light to dense (overrides --ramp)")
	pf.BoolP("invert", "i", false, "Invert the ramp for light backgrounds")
	pf.StringP("color", "C", "auto", "Color mode: none, auto, ansi, ansi256, truecolor (halfblocks are always 24-bit)")
	pf.Int("palette", 0, "Reduce colored output to this many colors (0 = off)")
	pf.StringP("style", "s", "ascii", "Output style: ascii, halfblocks")
	pf.String("filter", "bilinear", "Resampling filter: nearest, bilinear, catmullrom, lanczos")
	pf.String("scale", "fit", "Scale mode: fit, stretch, none")
	pf.Float64("cell-aspect", img2ascii.DefaultCellAspect, "Width/height ratio of a terminal cell")
	pf.String("dither", "none", "Dither luminance: none, floyd-steinberg, stucki, bayer")
	pf.Float32("brightness", 0, "Brightness adjustment in percent [-100, 100]")
	pf.Float32("contrast", 0, "Contrast adjustment in percent [-100, 100]")
	pf.Float32("gamma", 0, "Gamma correction (0 = off)")
	pf.Bool("sharpen", false, "Sharpen the image before converting")
	pf.Bool("grayscale", false, "Convert the image to grayscale first")
	pf.Bool("edges", false, "Convert the image's edge map instead of the image")

	rootCmd.Flags().StringP("output", "o", "", "Write the output to a file instead of stdout")

	if err := conf.BindPFlags(pf); err != nil {
		log.WithError(err).Fatal("failed to bind flags")
	}
	if err := conf.BindPFlags(rootCmd.Flags()); err != nil {
		log.WithError(err).Fatal("failed to bind flags")
	}
	conf.SetEnvPrefix("IMG2ASCII")
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()
}

// initConfig reads the config file if one exists
func initConfig() {
	// Flags are parsed by now, so -V also covers config loading
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	if cfgFile != "" {
		conf.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		conf.AddConfigPath(home + "/.config/img2ascii")
		conf.SetConfigName("config")
		conf.SetConfigType("yaml")
	}

	if err := conf.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			log.WithError(err).Warn("failed to read config file")
		}
		return
	}
	log.Debugf("Using config file: %s", conf.ConfigFileUsed())
}

// optionsFromConfig builds the conversion options from flags, environment and config file
func optionsFromConfig(v *viper.Viper) (img2ascii.RenderOptions, img2ascii.Style, error) {
	var opts img2ascii.RenderOptions

	style, err := img2ascii.ParseStyle(v.GetString("style"))
	if err != nil {
		return opts, style, err
	}

	switch chars, name := v.GetString("chars"), v.GetString("ramp"); {
	case chars != "":
		opts.Ramp, err = img2ascii.ParseRamp(chars)
	case name != "":
		opts.Ramp, err = img2ascii.RampByName(name)
	}
	if err != nil {
		return opts, style, err
	}

	if opts.ColorMode, err = img2ascii.ParseColorMode(v.GetString("color")); err != nil {
		return opts, style, err
	}
	if opts.Filter, err = img2ascii.ParseFilter(v.GetString("filter")); err != nil {
		return opts, style, err
	}
	if opts.ScaleMode, err = img2ascii.ParseScaleMode(v.GetString("scale")); err != nil {
		return opts, style, err
	}
	if opts.Dither, err = img2ascii.ParseDitherMode(v.GetString("dither")); err != nil {
		return opts, style, err
	}

	opts.Width = v.GetInt("width")
	opts.Height = v.GetInt("height")
	if opts.Width < 0 || opts.Height < 0 {
		return opts, style, fmt.Errorf("%w: width and height must not be negative", img2ascii.ErrInvalidDimensions)
	}
	opts.CellAspect = v.GetFloat64("cell-aspect")
	opts.Invert = v.GetBool("invert")
	opts.Palette = v.GetInt("palette")
	opts.Adjustments = img2ascii.Adjustments{
		Brightness: float32(v.GetFloat64("brightness")),
		Contrast:   float32(v.GetFloat64("contrast")),
		Gamma:      float32(v.GetFloat64("gamma")),
		Sharpen:    v.GetBool("sharpen"),
		Grayscale:  v.GetBool("grayscale"),
		Edges:      v.GetBool("edges"),
	}
	if err := opts.Adjustments.Validate(); err != nil {
		return opts, style, err
	}

	return opts, style, nil
}

// convert renders the image at path and writes it to w
func convert(path string, opts img2ascii.RenderOptions, style img2ascii.Style, w io.Writer) error {
	img, err := img2ascii.Open(path)
	if err != nil {
		return err
	}

	img.WithOptions(opts).Style(style)

	if _, err := img.WriteTo(w); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"grid":  img.Grid(),
		"color": opts.ColorMode,
		"style": style,
	}).Debugf("Image Info: %s", img.Info())

	return nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "img2ascii [flags] <image>...",
	Short:         "Convert images to ASCII art",
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, style, err := optionsFromConfig(conf)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if path := conf.GetString("output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f

			// Escape sequences only make sense on a terminal
			if opts.ColorMode == img2ascii.ColorAuto {
				opts.ColorMode = img2ascii.ColorNone
			}
		}

		var failed int
		for _, path := range args {
			if err := convert(path, opts, style, out); err != nil {
				log.WithError(err).WithField("image", path).Error("Failed to convert image")
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("failed to convert %d of %d images", failed, len(args))
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
