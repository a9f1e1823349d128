package ansi

// parseSGR interprets a semicolon-separated SGR parameter list per the
// table in spec.md §4.4, folding every parameter's effect into a single
// Style delta. The extended-color continuations (38;5;n, 38;2;r;g;b and
// their background equivalents), semicolon-separated like every other
// parameter, are consumed greedily from the slice.
func parseSGR(params []int) Style {
	var s Style
	if len(params) == 0 {
		params = []int{0}
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			s = Style{Reset: true}
		case p == 1:
			s.Intensity = IntensityBold
		case p == 2:
			s.Intensity = IntensityDim
		case p == 22:
			s.Intensity = IntensityNormal
		case p == 3:
			s.Italic = true
		case p == 23:
			s.Italic = false
		case p == 4:
			s.Underline = UnderlineSingle
		case p == 21:
			s.Underline = UnderlineDouble
		case p == 24:
			s.Underline = UnderlineDisabled
		case p == 5:
			s.Blink = BlinkSlow
		case p == 6:
			s.Blink = BlinkRapid
		case p == 25:
			s.Blink = BlinkOff
		case p == 7:
			s.Reverse = true
		case p == 27:
			s.Reverse = false
		case p == 8:
			s.Hidden = true
		case p == 28:
			s.Hidden = false
		case p == 9:
			s.Strike = true
		case p == 29:
			s.Strike = false
		case p == 39:
			s.HasForeground = false
		case p == 49:
			s.HasBackground = false
		case p >= 30 && p <= 37:
			s.HasForeground = true
			s.Foreground = Color{Kind: ColorNamed, Named: NamedColor(p - 30)}
		case p >= 40 && p <= 47:
			s.HasBackground = true
			s.Background = Color{Kind: ColorNamed, Named: NamedColor(p - 40)}
		case p == 90:
			s.HasForeground = true
			s.Foreground = Color{Kind: ColorNamed, Named: NamedColor(p - 90 + 8)}
			s.Intensity = IntensityBold
		case p >= 91 && p <= 97:
			s.HasForeground = true
			s.Foreground = Color{Kind: ColorNamed, Named: NamedColor(p - 90 + 8)}
		case p >= 100 && p <= 107:
			s.HasBackground = true
			s.Background = Color{Kind: ColorNamed, Named: NamedColor(p - 100 + 8)}
		case p == 38 || p == 48:
			color, consumed := parseExtendedColor(params[i+1:])
			if consumed == 0 {
				continue
			}
			if p == 38 {
				s.HasForeground = true
				s.Foreground = color
			} else {
				s.HasBackground = true
				s.Background = color
			}
			i += consumed
		}
	}
	return s
}

// parseExtendedColor parses the "5;n" (256-color) or "2;r;g;b" (24-bit)
// continuation following a 38 or 48 parameter. It returns the color and
// how many additional parameters it consumed.
func parseExtendedColor(rest []int) (Color, int) {
	if len(rest) == 0 {
		return Color{}, 0
	}
	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return Color{}, 0
		}
		return Color{Kind: ColorFixed, Fixed: uint8(clampByte(rest[1]))}, 2
	case 2:
		if len(rest) < 4 {
			return Color{}, 0
		}
		return Color{
			Kind: ColorRGB,
			R:    uint8(clampByte(rest[1])),
			G:    uint8(clampByte(rest[2])),
			B:    uint8(clampByte(rest[3])),
		}, 4
	default:
		return Color{}, 0
	}
}

func clampByte(n int) int {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
