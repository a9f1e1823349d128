package ansi

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"
)

// StripANSI removes every escape sequence this parser recognizes, leaving
// only printable text. It is grounded in the teacher's ui/util.StripAnsi
// (a simpler escape-skip scan for scrollback rendering) but runs the full
// Parser so the definition of "escape sequence" stays in exactly one
// place in this module.
func StripANSI(s string) string {
	var out strings.Builder
	p := New()
	for i := 0; i < len(s); i++ {
		seq, err := p.Next(s[i])
		if err != nil {
			continue
		}
		switch v := seq.(type) {
		case CharacterSeq:
			out.WriteRune(v.Char)
		case UnicodeSeq:
			out.WriteRune(v.Char)
		}
	}
	return out.String()
}

// VisibleWidth returns the display column width of s after stripping
// ANSI codes, accounting for East-Asian wide characters via go-runewidth
// — the teacher's rendering path (bubbletea/lipgloss) reasons about
// visible width the same way when laying out scrollback lines.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}
