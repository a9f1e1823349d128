package terminal

import "testing"

// spec.md §8 scenario 8a: cursor wraps to the next row when advancing
// past the right edge and another row exists.
func TestBufferCursorWrapsToNextRow(t *testing.T) {
	b := NewTerminalBuffer(5, 3)
	b.SetCursorPosition(4, 0)
	b.AppendChar('!')
	pos := b.CursorPosition()
	if pos.Col != 0 || pos.Row != 1 {
		t.Fatalf("expected (0,1), got (%d,%d)", pos.Col, pos.Row)
	}
}

// spec.md §8 scenario 8b: cursor sticks at the last column when already
// on the last row.
func TestBufferCursorSticksOnLastRow(t *testing.T) {
	b := NewTerminalBuffer(3, 2)
	b.SetCursorPosition(2, 1)
	b.AppendChar('X')
	pos := b.CursorPosition()
	if pos.Col != 2 || pos.Row != 1 {
		t.Fatalf("expected (2,1), got (%d,%d)", pos.Col, pos.Row)
	}
}

func TestBufferCursorClampedOnResize(t *testing.T) {
	b := NewTerminalBuffer(10, 10)
	b.SetCursorPosition(9, 9)
	b.SetSize(3, 3)
	pos := b.CursorPosition()
	if pos.Col != 2 || pos.Row != 2 {
		t.Fatalf("expected clamped (2,2), got (%d,%d)", pos.Col, pos.Row)
	}
}

func TestBufferZeroSizeClampsCursorToZero(t *testing.T) {
	b := NewTerminalBuffer(0, 0)
	pos := b.CursorPosition()
	if pos.Col != 0 || pos.Row != 0 {
		t.Fatalf("expected (0,0), got (%d,%d)", pos.Col, pos.Row)
	}
}

func TestBufferCompleteLineMovesToHistory(t *testing.T) {
	b := NewTerminalBuffer(80, 24)
	b.AppendChar('h')
	b.AppendChar('i')
	b.AppendChar('\n')
	if b.CompletedLineCount() != 1 {
		t.Fatalf("expected 1 completed line, got %d", b.CompletedLineCount())
	}
	if !b.IsCurrentLineEmpty() {
		t.Error("expected current line cleared after LF")
	}
	lines := b.CompletedLines()
	if lines[0].Stripped() != "hi" {
		t.Errorf("expected \"hi\", got %q", lines[0].Stripped())
	}
	if pos := b.CursorPosition(); pos.Col != 0 {
		t.Errorf("expected column reset to 0, got %d", pos.Col)
	}
}

func TestBufferBackspaceErasesLastChar(t *testing.T) {
	b := NewTerminalBuffer(80, 24)
	b.AppendChar('h')
	b.AppendChar('i')
	b.AppendChar('\b')
	if b.CurrentLine().Stripped() != "h" {
		t.Errorf("expected \"h\", got %q", b.CurrentLine().Stripped())
	}
	if pos := b.CursorPosition(); pos.Col != 1 {
		t.Errorf("expected column 1, got %d", pos.Col)
	}
}

func TestBufferTabJumpsToNextMultipleOf8(t *testing.T) {
	b := NewTerminalBuffer(80, 24)
	b.AppendChar('a')
	b.AppendChar('a')
	b.AppendChar('\t')
	if pos := b.CursorPosition(); pos.Col != 8 {
		t.Errorf("expected column 8, got %d", pos.Col)
	}
}

func TestBufferFormFeedClearsHistory(t *testing.T) {
	b := NewTerminalBuffer(80, 24)
	b.AppendChar('a')
	b.AppendChar('\n')
	b.AppendChar('b')
	b.AppendChar('\f')
	if b.CompletedLineCount() != 0 {
		t.Errorf("expected history cleared, got %d lines", b.CompletedLineCount())
	}
}

func TestBufferCarriageReturnResetsColumn(t *testing.T) {
	b := NewTerminalBuffer(80, 24)
	b.AppendChar('a')
	b.AppendChar('b')
	b.AppendChar('\r')
	if pos := b.CursorPosition(); pos.Col != 0 {
		t.Errorf("expected column 0, got %d", pos.Col)
	}
	if b.CurrentLine().Stripped() != "ab" {
		t.Errorf("expected current line preserved, got %q", b.CurrentLine().Stripped())
	}
}

func TestBufferBELIsNoOp(t *testing.T) {
	b := NewTerminalBuffer(80, 24)
	before := b.CursorPosition()
	b.AppendChar('\a')
	after := b.CursorPosition()
	if before != after {
		t.Errorf("expected BEL to be a no-op, cursor moved from %+v to %+v", before, after)
	}
}

func TestBufferTotalLineCount(t *testing.T) {
	b := NewTerminalBuffer(80, 24)
	if b.TotalLineCount() != 0 {
		t.Fatalf("expected 0, got %d", b.TotalLineCount())
	}
	b.AppendChar('x')
	if b.TotalLineCount() != 1 {
		t.Fatalf("expected 1 (current line counts), got %d", b.TotalLineCount())
	}
	b.AppendChar('\n')
	if b.TotalLineCount() != 1 {
		t.Fatalf("expected 1 (now in history, current empty), got %d", b.TotalLineCount())
	}
}

func TestBufferEnvironmentSortedByKey(t *testing.T) {
	b := NewTerminalBuffer(80, 24)
	b.SetEnvironment("ZETA", "1")
	b.SetEnvironment("ALPHA", "2")
	entries := b.Environment()
	if len(entries) != 2 || entries[0].Name != "ALPHA" || entries[1].Name != "ZETA" {
		t.Fatalf("expected sorted [ALPHA, ZETA], got %+v", entries)
	}
}

func TestBufferClearPreservesSizeAndEnvironment(t *testing.T) {
	b := NewTerminalBuffer(80, 24)
	b.SetEnvironment("CHARSET", "UTF-8")
	b.AppendChar('x')
	b.AppendChar('\n')
	b.Clear()
	if b.CompletedLineCount() != 0 {
		t.Error("expected history cleared")
	}
	if v, ok := b.GetEnvironment("CHARSET"); !ok || v != "UTF-8" {
		t.Error("expected environment preserved across Clear")
	}
	if b.Size() != (Size{80, 24}) {
		t.Error("expected size preserved across Clear")
	}
}
