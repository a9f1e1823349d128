package ansi

import (
	"strconv"
	"strings"
)

// EncodeCSI serializes cmd back into its wire form, "ESC [ <params> <final>".
// Unknown CSI commands encode to "" per spec.md §4.4.
func EncodeCSI(cmd CSICommand) string {
	switch v := cmd.(type) {
	case CursorUp:
		return csiOf(v.N, 'A')
	case CursorDown:
		return csiOf(v.N, 'B')
	case CursorForward:
		return csiOf(v.N, 'C')
	case CursorBack:
		return csiOf(v.N, 'D')
	case CursorNextLine:
		return csiOf(v.N, 'E')
	case CursorPreviousLine:
		return csiOf(v.N, 'F')
	case CursorHorizontalAbsolute:
		return csiOf(v.N, 'G')
	case CursorPosition:
		return "\x1b[" + strconv.Itoa(v.Row) + ";" + strconv.Itoa(v.Col) + "H"
	case EraseInDisplay:
		return csiOf(int(v.Mode), 'J')
	case EraseInLine:
		return csiOf(int(v.Mode), 'K')
	case ScrollUp:
		return csiOf(v.N, 'S')
	case ScrollDown:
		return csiOf(v.N, 'T')
	case InsertCharacter:
		return csiOf(v.N, '@')
	case DeleteCharacter:
		return csiOf(v.N, 'P')
	case InsertLine:
		return csiOf(v.N, 'L')
	case DeleteLine:
		return csiOf(v.N, 'M')
	case EraseCharacter:
		return csiOf(v.N, 'X')
	case SaveCursorPosition:
		return "\x1b[s"
	case RestoreCursorPosition:
		return "\x1b[u"
	case DeviceStatusReport:
		return csiOf(v.Param, 'n')
	case SetMode:
		return "\x1b[" + joinParams(v.Params) + "h"
	case ResetMode:
		return "\x1b[" + joinParams(v.Params) + "l"
	case DECPrivateModeSet:
		return "\x1b[?" + joinParams(v.Params) + "h"
	case DECPrivateModeReset:
		return "\x1b[?" + joinParams(v.Params) + "l"
	default:
		return ""
	}
}

func csiOf(n int, final byte) string {
	return "\x1b[" + strconv.Itoa(n) + string(final)
}

func joinParams(params []int) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ";")
}

// EncodeSGR emits the minimal parameter list for s, terminated with 'm'.
func EncodeSGR(s Style) string {
	if s.Reset {
		return "\x1b[0m"
	}
	var params []string
	switch s.Intensity {
	case IntensityBold:
		params = append(params, "1")
	case IntensityDim:
		params = append(params, "2")
	}
	if s.Italic {
		params = append(params, "3")
	}
	switch s.Underline {
	case UnderlineSingle:
		params = append(params, "4")
	case UnderlineDouble:
		params = append(params, "21")
	}
	switch s.Blink {
	case BlinkSlow:
		params = append(params, "5")
	case BlinkRapid:
		params = append(params, "6")
	}
	if s.Reverse {
		params = append(params, "7")
	}
	if s.Hidden {
		params = append(params, "8")
	}
	if s.Strike {
		params = append(params, "9")
	}
	if s.HasForeground {
		params = append(params, encodeColor(s.Foreground, 30, 90, 38)...)
	}
	if s.HasBackground {
		params = append(params, encodeColor(s.Background, 40, 100, 48)...)
	}
	if len(params) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}

func encodeColor(c Color, base, brightBase, extended int) []string {
	switch c.Kind {
	case ColorFixed:
		return []string{strconv.Itoa(extended), "5", strconv.Itoa(int(c.Fixed))}
	case ColorRGB:
		return []string{
			strconv.Itoa(extended), "2",
			strconv.Itoa(int(c.R)), strconv.Itoa(int(c.G)), strconv.Itoa(int(c.B)),
		}
	default:
		if int(c.Named) >= 8 {
			return []string{strconv.Itoa(brightBase + int(c.Named) - 8)}
		}
		return []string{strconv.Itoa(base + int(c.Named))}
	}
}
