// Package terminal implements the virtual terminal buffer: cursor, size,
// completed line history, and the current in-progress line, updated from
// ANSI parser events and selected Telnet subnegotiations.
package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/termionix/ansi"
)

// SegmentedString is the minimal append/measure contract the buffer needs
// (spec.md §3): characters, UTF-8 text, style markers, and non-textual
// sequences can all be appended; length can be measured with or without
// ANSI codes; the whole thing can be stripped to plain text. Internal
// layout beyond that is deliberately unspecified, so this keeps two
// parallel accumulators rather than re-deriving one from the other on
// every call.
type SegmentedString struct {
	raw      strings.Builder
	stripped strings.Builder
}

// AppendChar appends a single character, counted in both raw and stripped
// length.
func (s *SegmentedString) AppendChar(c rune) {
	s.raw.WriteRune(c)
	s.stripped.WriteRune(c)
}

// AppendString appends UTF-8 text verbatim.
func (s *SegmentedString) AppendString(text string) {
	s.raw.WriteString(text)
	s.stripped.WriteString(text)
}

// AppendStyle appends an SGR style marker: it contributes to the raw
// (encoded) form but not to the stripped plain-text form.
func (s *SegmentedString) AppendStyle(style ansi.Style) {
	s.raw.WriteString(ansi.EncodeSGR(style))
}

// AppendSegment appends a non-textual ANSI sequence (a control code, CSI,
// OSC, …): encoded into the raw form, invisible to the stripped form.
func (s *SegmentedString) AppendSegment(seq ansi.Sequence) {
	switch v := seq.(type) {
	case ansi.CSISeq:
		s.raw.WriteString(ansi.EncodeCSI(v.Command))
	case ansi.SGRSeq:
		s.raw.WriteString(ansi.EncodeSGR(v.Style))
	case ansi.OSCSeq:
		s.raw.WriteString("\x1b]" + string(v.Payload) + "\x1b\\")
	case ansi.DCSSeq:
		s.raw.WriteString("\x1bP" + string(v.Payload) + "\x1b\\")
	case ansi.ControlSeq:
		s.raw.WriteByte(byte(v.Code))
	}
}

// Len returns the raw length, or the stripped (plain-text) length when
// stripANSI is true.
func (s *SegmentedString) Len(stripANSI bool) int {
	if stripANSI {
		return s.stripped.Len()
	}
	return s.raw.Len()
}

// String returns the raw (ANSI-encoded) contents.
func (s *SegmentedString) String() string {
	return s.raw.String()
}

// Stripped returns the plain-text contents with all ANSI codes removed.
func (s *SegmentedString) Stripped() string {
	return s.stripped.String()
}

// IsEmpty reports whether nothing has been appended yet.
func (s *SegmentedString) IsEmpty() bool {
	return s.raw.Len() == 0
}

// StyledString is a SegmentedString rendered through lipgloss: the render
// side of the contract (spec.md §8.1), used by callers that want
// colorized output. The buffer itself never calls Render — only the
// append/len/strip operations above, which StyledString inherits.
type StyledString struct {
	SegmentedString
	style lipgloss.Style
}

// NewStyledLine wraps text in a lipgloss style for rendering, without
// affecting the plain-text contract the buffer depends on.
func NewStyledLine(text string, style lipgloss.Style) StyledString {
	s := StyledString{style: style}
	s.AppendString(text)
	return s
}

// Render returns the text styled through lipgloss.
func (s StyledString) Render() string {
	return s.style.Render(s.Stripped())
}
