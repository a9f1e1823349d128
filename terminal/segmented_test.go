package terminal

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/termionix/ansi"
)

func TestSegmentedStringStyleInvisibleToStripped(t *testing.T) {
	var s SegmentedString
	s.AppendString("hello ")
	s.AppendStyle(ansi.Style{Intensity: ansi.IntensityBold, HasForeground: true, Foreground: ansi.Color{Kind: ansi.ColorNamed, Named: ansi.Red}})
	s.AppendString("world")
	if s.Stripped() != "hello world" {
		t.Errorf("expected stripped text unaffected by style, got %q", s.Stripped())
	}
	if s.Len(true) != len("hello world") {
		t.Errorf("expected stripped length %d, got %d", len("hello world"), s.Len(true))
	}
	if s.Len(false) <= s.Len(true) {
		t.Error("expected raw length to include the SGR escape bytes")
	}
}

func TestSegmentedStringAppendSegmentControl(t *testing.T) {
	var s SegmentedString
	s.AppendString("a")
	s.AppendSegment(ansi.ControlSeq{Code: ansi.ControlBEL})
	s.AppendString("b")
	if s.Stripped() != "ab" {
		t.Errorf("expected control code invisible to stripped text, got %q", s.Stripped())
	}
}

func TestStyledStringRender(t *testing.T) {
	style := lipgloss.NewStyle().Bold(true)
	line := NewStyledLine("hello", style)
	if line.Stripped() != "hello" {
		t.Errorf("expected stripped \"hello\", got %q", line.Stripped())
	}
	if line.Render() == "" {
		t.Error("expected non-empty rendered output")
	}
}

func TestSegmentedStringIsEmpty(t *testing.T) {
	var s SegmentedString
	if !s.IsEmpty() {
		t.Error("expected new SegmentedString to be empty")
	}
	s.AppendChar('x')
	if s.IsEmpty() {
		t.Error("expected non-empty after AppendChar")
	}
}
