package terminal

import "sort"

// Size is a terminal's column/row dimensions.
type Size struct {
	Cols, Rows int
}

// Cursor is a 0-indexed column/row position.
type Cursor struct {
	Col, Row int
}

// TerminalBuffer is the virtual terminal state updated from ANSI parser
// events and selected Telnet subnegotiations: a cursor, a size, completed
// line history, a partially typed current line, and an environment
// mapping. Grounded on original_source/terminal/src/buffer.rs, translated
// from saturating-arithmetic Rust into Go's clamp-after-compute idiom.
type TerminalBuffer struct {
	size   Size
	cursor Cursor

	currentLine    SegmentedString
	completedLines []*SegmentedString

	environment map[string]string
}

// NewTerminalBuffer creates an empty buffer of the given size. Per
// spec.md §4.5, a cursor is always clamped into [0, max(dim,1)-1].
func NewTerminalBuffer(cols, rows int) *TerminalBuffer {
	b := &TerminalBuffer{environment: make(map[string]string)}
	b.SetSize(cols, rows)
	return b
}

func clampDim(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// clampCursor enforces 0 <= col < max(cols,1) and 0 <= row < max(rows,1).
func (b *TerminalBuffer) clampCursor() {
	maxCol := clampDim(b.size.Cols) - 1
	maxRow := clampDim(b.size.Rows) - 1
	if b.size.Cols <= 0 {
		b.cursor.Col = 0
	} else if b.cursor.Col > maxCol {
		b.cursor.Col = maxCol
	} else if b.cursor.Col < 0 {
		b.cursor.Col = 0
	}
	if b.size.Rows <= 0 {
		b.cursor.Row = 0
	} else if b.cursor.Row > maxRow {
		b.cursor.Row = maxRow
	} else if b.cursor.Row < 0 {
		b.cursor.Row = 0
	}
}

// Size returns the current dimensions.
func (b *TerminalBuffer) Size() Size { return b.size }

// CursorPosition returns the current cursor position.
func (b *TerminalBuffer) CursorPosition() Cursor { return b.cursor }

// SetSize updates the buffer's dimensions, clamping the cursor into range
// if it falls outside the new size. Completed history is preserved in
// full.
func (b *TerminalBuffer) SetSize(cols, rows int) {
	b.size = Size{Cols: cols, Rows: rows}
	b.clampCursor()
}

// Resize is an alias for SetSize, matching the two names spec.md §4.5
// lists for the same operation.
func (b *TerminalBuffer) Resize(cols, rows int) { b.SetSize(cols, rows) }

// SetCursorPosition moves the cursor, clamping into bounds.
func (b *TerminalBuffer) SetCursorPosition(col, row int) {
	b.cursor = Cursor{Col: col, Row: row}
	b.clampCursor()
}

// MoveCursor applies a relative offset, then clamps into bounds.
func (b *TerminalBuffer) MoveCursor(dcol, drow int) {
	b.cursor.Col += dcol
	b.cursor.Row += drow
	b.clampCursor()
}

// CurrentLineLength returns the stripped length of the in-progress line.
func (b *TerminalBuffer) CurrentLineLength() int {
	return b.currentLine.Len(true)
}

// IsCurrentLineEmpty reports whether the current line has no content.
func (b *TerminalBuffer) IsCurrentLineEmpty() bool {
	return b.currentLine.IsEmpty()
}

// CurrentLine returns the in-progress line.
func (b *TerminalBuffer) CurrentLine() *SegmentedString {
	return &b.currentLine
}

// advanceColumn moves the cursor forward one column, wrapping to the next
// row when already at the right edge and another row exists.
func (b *TerminalBuffer) advanceColumn() {
	maxCol := clampDim(b.size.Cols) - 1
	maxRow := clampDim(b.size.Rows) - 1
	if b.cursor.Col >= maxCol {
		if b.cursor.Row < maxRow {
			b.cursor.Col = 0
			b.cursor.Row++
		}
		// else: stays at (cols-1, row), per spec.md §4.5.
		return
	}
	b.cursor.Col++
}

// AppendChar applies one character to the buffer, including the control
// semantics spec.md §4.5 describes for C0/C1 bytes.
func (b *TerminalBuffer) AppendChar(c rune) {
	switch c {
	case '\b', 0x7F: // BS, DEL
		b.EraseCharacter()
		return
	case '\t': // TAB: emit, then jump to next multiple of 8, clamped.
		b.currentLine.AppendChar(c)
		maxCol := clampDim(b.size.Cols) - 1
		next := ((b.cursor.Col / 8) + 1) * 8
		if next > maxCol {
			next = maxCol
		}
		b.cursor.Col = next
		return
	case '\n', '\v': // LF, VT
		b.CompleteLine()
		return
	case '\f': // FF
		b.CompleteLine()
		b.ClearCompletedLines()
		return
	case '\r': // CR
		b.cursor.Col = 0
		return
	case '\a': // BEL: no-op on the buffer.
		return
	}
	if c < 0x20 || (c >= 0x7F && c <= 0x9F) {
		// Other C0/C1 codes are ignored.
		return
	}
	b.currentLine.AppendChar(c)
	b.advanceColumn()
}

// EraseCharacter pops the last character of the current line and moves
// the cursor back one column, wrapping to the end of the previous row if
// the cursor was at column 0.
func (b *TerminalBuffer) EraseCharacter() {
	text := b.currentLine.Stripped()
	if len(text) > 0 {
		runes := []rune(text)
		runes = runes[:len(runes)-1]
		b.currentLine = SegmentedString{}
		b.currentLine.AppendString(string(runes))
	}
	if b.cursor.Col > 0 {
		b.cursor.Col--
		return
	}
	if b.cursor.Row > 0 {
		b.cursor.Row--
		b.cursor.Col = clampDim(b.size.Cols) - 1
	}
}

// CompleteLine moves the current line into completed history and returns
// it, per spec.md §4.5.
func (b *TerminalBuffer) CompleteLine() *SegmentedString {
	line := b.currentLine
	b.currentLine = SegmentedString{}
	b.completedLines = append(b.completedLines, &line)
	b.cursor.Col = 0
	maxRow := clampDim(b.size.Rows) - 1
	if b.cursor.Row < maxRow {
		b.cursor.Row++
	}
	return &line
}

// EraseLine drops the current line and returns the cursor's column to 0.
func (b *TerminalBuffer) EraseLine() {
	b.currentLine = SegmentedString{}
	b.cursor.Col = 0
}

// AppendLine pushes ready-made plain text into completed history without
// touching the current line or the cursor.
func (b *TerminalBuffer) AppendLine(text string) {
	s := &SegmentedString{}
	s.AppendString(text)
	b.completedLines = append(b.completedLines, s)
}

// AppendStyledLine pushes a rendered StyledString into completed history.
func (b *TerminalBuffer) AppendStyledLine(s StyledString) {
	b.completedLines = append(b.completedLines, &s.SegmentedString)
}

// AppendSegmentedLine pushes a SegmentedString into completed history.
func (b *TerminalBuffer) AppendSegmentedLine(s *SegmentedString) {
	b.completedLines = append(b.completedLines, s)
}

// CompletedLineCount returns the number of finished lines.
func (b *TerminalBuffer) CompletedLineCount() int {
	return len(b.completedLines)
}

// CompletedLines returns the completed line history in order.
func (b *TerminalBuffer) CompletedLines() []*SegmentedString {
	return b.completedLines
}

// PopCompletedLine removes and returns the oldest completed line.
func (b *TerminalBuffer) PopCompletedLine() (*SegmentedString, bool) {
	if len(b.completedLines) == 0 {
		return nil, false
	}
	line := b.completedLines[0]
	b.completedLines = b.completedLines[1:]
	return line, true
}

// TakeCompletedLines drains and returns the entire completed history.
func (b *TerminalBuffer) TakeCompletedLines() []*SegmentedString {
	lines := b.completedLines
	b.completedLines = nil
	return lines
}

// ClearCompletedLines discards completed history without touching the
// current line or the cursor.
func (b *TerminalBuffer) ClearCompletedLines() {
	b.completedLines = nil
}

// TotalLineCount is completed_lines.len() plus one if the current line is
// non-empty, per the spec.md §4.5 invariant of the same name.
func (b *TerminalBuffer) TotalLineCount() int {
	if b.currentLine.IsEmpty() {
		return len(b.completedLines)
	}
	return len(b.completedLines) + 1
}

// SetEnvironment sets a string-keyed environment variable.
func (b *TerminalBuffer) SetEnvironment(key, value string) {
	b.environment[key] = value
}

// GetEnvironment retrieves an environment variable.
func (b *TerminalBuffer) GetEnvironment(key string) (string, bool) {
	v, ok := b.environment[key]
	return v, ok
}

// Environment returns the environment mapping as ordered key/value pairs.
func (b *TerminalBuffer) Environment() []EnvironmentEntry {
	keys := make([]string, 0, len(b.environment))
	for k := range b.environment {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]EnvironmentEntry, len(keys))
	for i, k := range keys {
		entries[i] = EnvironmentEntry{Name: k, Value: b.environment[k]}
	}
	return entries
}

// EnvironmentEntry is one name/value pair from Environment.
type EnvironmentEntry struct {
	Name, Value string
}

// Clear drops both the current line and completed history and resets the
// cursor to (0,0). Size and environment are preserved.
func (b *TerminalBuffer) Clear() {
	b.currentLine = SegmentedString{}
	b.completedLines = nil
	b.cursor = Cursor{}
}
