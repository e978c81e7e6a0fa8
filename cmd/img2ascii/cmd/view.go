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

	"github.com/apex/log"
	"github.com/blacktop/go-img2ascii"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(viewCmd)
}

// viewCmd previews an image interactively
var viewCmd = &cobra.Command{
	Use:   "view <image>",
	Short: "Preview an image as ASCII art, resizing with the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, _, err := optionsFromConfig(conf)
		if err != nil {
			return err
		}

		img, err := img2ascii.Open(args[0])
		if err != nil {
			return err
		}
		if _, err := img.WithOptions(opts).Load(); err != nil {
			return fmt.Errorf("failed to open image: %w", err)
		}

		log.Debugf("Image Info: %s", img.Info())

		if _, err := tea.NewProgram(img2ascii.NewViewer(img), tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("failed to run viewer: %w", err)
		}

		return nil
	},
}
