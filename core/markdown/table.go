package markdown

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// minColumnWidth keeps every separator cell a valid "---".
const minColumnWidth = 3

// Table is the cell matrix of one table: a header row and body rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// Layout renders tables as aligned pipe-tables.
type Layout struct {
	// Width measures a cell. It defaults to the rune count.
	Width func(string) int
}

// NewLayout returns a Layout that measures cells by rune count, or by
// terminal display width when displayWidth is set (wide CJK runes count
// as two columns).
func NewLayout(displayWidth bool) Layout {
	if displayWidth {
		return Layout{Width: runewidth.StringWidth}
	}
	return Layout{Width: utf8.RuneCountInString}
}

func (l Layout) width(s string) int {
	if l.Width == nil {
		return utf8.RuneCountInString(s)
	}
	return l.Width(s)
}

// ColumnWidths returns, per header column, the largest of 3, the header
// cell width and every body cell width in that column. Body cells beyond
// the header count are ignored.
func (l Layout) ColumnWidths(t Table) []int {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = max(minColumnWidth, l.width(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			widths[i] = max(widths[i], l.width(cell))
		}
	}
	return widths
}

// Lines renders t as a header line, a separator line and one line per body
// row. A table without header cells renders to nothing.
func (l Layout) Lines(t Table) []string {
	if len(t.Header) == 0 {
		return nil
	}
	widths := l.ColumnWidths(t)

	lines := make([]string, 0, len(t.Rows)+2)
	lines = append(lines, l.row(t.Header, widths))

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	lines = append(lines, "| "+strings.Join(sep, " | ")+" |")

	for _, row := range t.Rows {
		lines = append(lines, l.row(row, widths))
	}
	return lines
}

// row pads or truncates cells to len(widths) and left-justifies each one.
func (l Layout) row(cells []string, widths []int) string {
	padded := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = cell + strings.Repeat(" ", max(0, w-l.width(cell)))
	}
	return "| " + strings.Join(padded, " | ") + " |"
}
