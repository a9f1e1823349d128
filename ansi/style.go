package ansi

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Intensity is the SGR bold/dim/normal tri-state.
type Intensity int

const (
	IntensityNormal Intensity = iota
	IntensityBold
	IntensityDim
)

// Underline is the SGR underline tri-state.
type Underline int

const (
	UnderlineDisabled Underline = iota
	UnderlineSingle
	UnderlineDouble
)

// Blink is the SGR blink tri-state.
type Blink int

const (
	BlinkOff Blink = iota
	BlinkSlow
	BlinkRapid
)

// ColorKind distinguishes the three ways an SGR color can be expressed.
type ColorKind int

const (
	ColorNamed ColorKind = iota
	ColorFixed
	ColorRGB
)

// NamedColor is one of the 16 basic ANSI colors.
type NamedColor int

const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Color is an SGR color value: a named basic color, a 256-palette index,
// or a 24-bit RGB triple.
type Color struct {
	Kind  ColorKind
	Named NamedColor
	Fixed uint8
	R, G, B uint8
}

// Style is the accumulated SGR (Select Graphic Rendition) record spec.md
// §3 describes. Zero value is "no attributes set" — append-only deltas
// from successive SGR sequences should be merged onto a running Style by
// the caller (the parser itself emits one Style per SGR sequence, mirrors
// the source's "style diff" rather than absolute terminal state).
type Style struct {
	Intensity      Intensity
	Italic         bool
	Underline      Underline
	Blink          Blink
	Reverse        bool
	Hidden         bool
	Strike         bool
	HasForeground  bool
	Foreground     Color
	HasBackground  bool
	Background     Color
	Reset          bool // true when this SGR was parameter 0 (full reset)
}

// Lipgloss converts a parsed SGR style into a lipgloss.Style, the render
// side of the teacher's ui/style.Styles pattern: named colors map to the
// xterm-16 ANSI indices lipgloss.Color accepts, Fixed(n) maps to its
// decimal index, and RGB maps to a "#rrggbb" hex string.
func (s Style) Lipgloss() lipgloss.Style {
	out := lipgloss.NewStyle()
	switch s.Intensity {
	case IntensityBold:
		out = out.Bold(true)
	case IntensityDim:
		out = out.Faint(true)
	}
	if s.Italic {
		out = out.Italic(true)
	}
	if s.Underline != UnderlineDisabled {
		out = out.Underline(true)
	}
	if s.Blink != BlinkOff {
		out = out.Blink(true)
	}
	if s.Reverse {
		out = out.Reverse(true)
	}
	if s.Strike {
		out = out.Strikethrough(true)
	}
	if s.HasForeground {
		out = out.Foreground(s.Foreground.lipglossColor())
	}
	if s.HasBackground {
		out = out.Background(s.Background.lipglossColor())
	}
	return out
}

func (c Color) lipglossColor() lipgloss.Color {
	switch c.Kind {
	case ColorFixed:
		return lipgloss.Color(strconv.Itoa(int(c.Fixed)))
	case ColorRGB:
		hex := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
		return lipgloss.Color(hex)
	default:
		return lipgloss.Color(namedColorIndex(c.Named))
	}
}

var namedColorIndices = [...]string{
	"0", "1", "2", "3", "4", "5", "6", "7",
	"8", "9", "10", "11", "12", "13", "14", "15",
}

func namedColorIndex(n NamedColor) string {
	if int(n) < 0 || int(n) >= len(namedColorIndices) {
		return "7"
	}
	return namedColorIndices[n]
}
