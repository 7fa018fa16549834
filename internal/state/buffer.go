package state

// scrollThreshold is the last cursor row shown before the edit area starts scrolling.
const scrollThreshold = 3

// EditBuffer holds the characters typed in Edit mode.
type EditBuffer struct {
	chars []rune
}

// Cursor locates the end of the buffer inside a text area that wraps at a fixed width.
type Cursor struct {
	Row        int // Row is the wrapped line the cursor sits on
	Col        int // Col is the column within Row
	Offset     int // Offset is the number of wrapped lines scrolled out of view
	DisplayRow int // DisplayRow is Row relative to the first visible line
}

// Push appends one character.
func (b *EditBuffer) Push(r rune) {
	b.chars = append(b.chars, r)
}

// Backspace removes the last character, if any.
func (b *EditBuffer) Backspace() {
	if len(b.chars) > 0 {
		b.chars = b.chars[:len(b.chars)-1]
	}
}

// Clear empties the buffer.
func (b *EditBuffer) Clear() {
	b.chars = b.chars[:0]
}

// Len returns the number of characters.
func (b *EditBuffer) Len() int { return len(b.chars) }

// String concatenates the characters.
func (b *EditBuffer) String() string { return string(b.chars) }

// Position computes the cursor for a text area wrapping at width columns.
//
// The area scrolls once the cursor passes row 3, keeping the cursor on the fourth visible line.
// A width below 1 is treated as 1.
func (b *EditBuffer) Position(width int) Cursor {
	width = max(width, 1)
	n := len(b.chars)

	c := Cursor{Row: n / width, Col: n % width}
	if c.Row > scrollThreshold {
		c.Offset = c.Row - scrollThreshold
	}
	c.DisplayRow = c.Row - c.Offset
	return c
}

// Lines wraps the buffer at width columns. The result always has Position(width).Row+1 lines,
// so the cursor's line exists even when it is empty.
func (b *EditBuffer) Lines(width int) []string {
	width = max(width, 1)
	rows := len(b.chars)/width + 1

	lines := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		start := i * width
		end := min(start+width, len(b.chars))
		lines = append(lines, string(b.chars[start:end]))
	}
	return lines
}

// VisibleLines returns the wrapped lines that remain in view after scrolling.
func (b *EditBuffer) VisibleLines(width int) []string {
	return b.Lines(width)[b.Position(width).Offset:]
}
