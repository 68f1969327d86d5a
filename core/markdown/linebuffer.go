// Package markdown turns a normalized document tree into Markdown text.
//
// Rendering happens in two steps. A Renderer walks the tree and appends one
// logical line per block to a LineBuffer; a PostProcessor then applies
// whole-document fixes to the buffer and flattens it to text.
package markdown

import "strings"

// LineBuffer is an append-only sequence of output lines. Empty lines
// separate blocks.
type LineBuffer struct {
	lines []string
}

// NewLineBuffer returns a buffer holding a copy of lines.
func NewLineBuffer(lines ...string) *LineBuffer {
	b := &LineBuffer{}
	b.lines = append(b.lines, lines...)
	return b
}

// Append adds lines to the end of the buffer.
func (b *LineBuffer) Append(lines ...string) {
	b.lines = append(b.lines, lines...)
}

// Blank appends an empty separator line.
func (b *LineBuffer) Blank() {
	b.lines = append(b.lines, "")
}

// Extend appends every line of other.
func (b *LineBuffer) Extend(other *LineBuffer) {
	if other == nil {
		return
	}
	b.lines = append(b.lines, other.lines...)
}

// Len returns the number of lines.
func (b *LineBuffer) Len() int {
	return len(b.lines)
}

// Lines returns a copy of the buffered lines.
func (b *LineBuffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// String joins the lines with newlines.
func (b *LineBuffer) String() string {
	return strings.Join(b.lines, "\n")
}
