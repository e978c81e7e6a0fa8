package img2ascii

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const widthStep = 4 // columns added or removed per +/- key press

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			PaddingLeft(1).
			PaddingRight(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87"))
)

// viewerColorModes is the cycle order of the c key
var viewerColorModes = []ColorMode{ColorNone, ColorANSI, ColorANSI256, ColorTrueColor}

// Viewer is a bubbletea model that previews an image as ASCII art and
// re-renders it to fit the window.
type Viewer struct {
	image *Image

	winWidth  int
	winHeight int
	offset    int // columns added to (or removed from) the fitted width

	rampNames []string
	ramps     []Ramp // built-in ramps, plus the image's own ramp when it is not one of them
	rampIdx   int
	colorIdx  int
	invert    bool

	rendered string
	err      error
}

// NewViewer creates a viewer for img. It starts with the image's ramp and
// color mode; the r key cycles through the built-in ramps.
func NewViewer(img *Image) *Viewer {
	v := &Viewer{image: img}

	start := img.ramp
	if len(start) == 0 {
		start = DefaultRamp
	}
	v.rampIdx = -1
	for _, name := range RampNames() {
		ramp, _ := RampByName(name)
		if ramp.String() == start.String() {
			v.rampIdx = len(v.ramps)
		}
		v.rampNames = append(v.rampNames, name)
		v.ramps = append(v.ramps, ramp)
	}
	if v.rampIdx < 0 {
		v.rampIdx = len(v.ramps)
		v.rampNames = append(v.rampNames, "custom")
		v.ramps = append(v.ramps, start)
	}

	mode := img.colorMode.Resolve()
	for i, m := range viewerColorModes {
		if m == mode {
			v.colorIdx = i
		}
	}
	v.invert = img.invert
	return v
}

// Init implements tea.Model
func (v *Viewer) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.winWidth = msg.Width
		v.winHeight = msg.Height
		v.render()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return v, tea.Quit
		case "+", "=":
			v.offset += widthStep
		case "-", "_":
			v.offset -= widthStep
		case "0":
			v.offset = 0
		case "i":
			v.invert = !v.invert
		case "c":
			v.colorIdx = (v.colorIdx + 1) % len(viewerColorModes)
		case "r":
			v.rampIdx = (v.rampIdx + 1) % len(v.ramps)
		default:
			return v, nil
		}
		v.render()
	}
	return v, nil
}

// View implements tea.Model
func (v *Viewer) View() string {
	if v.winWidth == 0 {
		return "loading..."
	}

	var b strings.Builder
	if v.err != nil {
		b.WriteString(errorStyle.Render(v.err.Error()))
		b.WriteByte('\n')
	} else {
		b.WriteString(v.rendered)
	}
	b.WriteString(v.status())
	return b.String()
}

// status returns the one line status bar
func (v *Viewer) status() string {
	text := fmt.Sprintf("%s | %s | ramp %s | color %s | invert %t | +/- size  i invert  c color  r ramp  q quit",
		v.image.Info(), v.image.Grid(), v.rampNames[v.rampIdx], viewerColorModes[v.colorIdx], v.invert)
	if v.winWidth > 0 {
		text = runewidth.Truncate(text, max(v.winWidth-2, 0), "")
	}
	return statusStyle.Render(text)
}

// render re-renders the image to fit the window minus the status line,
// widened or narrowed by the current offset
func (v *Viewer) render() {
	src, err := v.image.loadImage()
	if err != nil {
		v.err = err
		return
	}

	fit, err := ComputeGrid(src.Bounds(), RenderOptions{
		Width:      max(v.winWidth, 1),
		Height:     max(v.winHeight-1, 1),
		ScaleMode:  ScaleFit,
		CellAspect: v.image.cellAspect,
	})
	if err != nil {
		v.err = err
		return
	}

	v.rendered, v.err = v.image.
		Size(max(fit.Cols+v.offset, 1), 0).
		Scale(ScaleFit).
		Ramp(v.ramps[v.rampIdx]).
		Invert(v.invert).
		Color(viewerColorModes[v.colorIdx]).
		Render()
}
