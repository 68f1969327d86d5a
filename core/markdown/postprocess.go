package markdown

import (
	"regexp"
	"strings"
)

// DefaultBadge is the snippet placed under the title line.
const DefaultBadge = "[![License](https://img.shields.io/badge/license-MIT-blue.svg)](LICENSE)"

var blankRun = regexp.MustCompile(`\n{3,}`)

// CollapseBlankLines replaces every run of three or more newlines with two,
// leaving at most one blank line between blocks.
func CollapseBlankLines(text string) string {
	return blankRun.ReplaceAllString(text, "\n\n")
}

// PostProcessor applies whole-document fixes to rendered lines.
type PostProcessor struct {
	// Badge is inserted below the title line. Empty disables it.
	Badge string
}

// NewPostProcessor creates a PostProcessor inserting badge below the title.
func NewPostProcessor(badge string) *PostProcessor {
	return &PostProcessor{Badge: badge}
}

// Process collapses blank lines, separates table blocks from what follows
// them and inserts the badge below the line at index titleLine (negative
// for none). The result ends with a single newline.
func (p *PostProcessor) Process(buf *LineBuffer, titleLine int) string {
	lines, title := collapseLines(buf.Lines(), titleLine)
	lines, title = separateTables(lines, title)
	if p.Badge != "" && title >= 0 {
		lines = insertAfter(lines, title, p.Badge)
	}

	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	if end == 0 {
		return ""
	}
	return strings.Join(lines[:end], "\n") + "\n"
}

// collapseLines drops every empty line that follows another empty line.
// It returns the new index of the line at mark, or -1 if it was dropped.
func collapseLines(lines []string, mark int) ([]string, int) {
	out := make([]string, 0, len(lines))
	newMark := -1
	for i, line := range lines {
		if line == "" && len(out) > 0 && out[len(out)-1] == "" {
			continue
		}
		if i == mark {
			newMark = len(out)
		}
		out = append(out, line)
	}
	return out, newMark
}

// separateTables inserts an empty line after a table row that is directly
// followed by a non-table line.
func separateTables(lines []string, mark int) ([]string, int) {
	out := make([]string, 0, len(lines))
	newMark := -1
	for i, line := range lines {
		if i == mark {
			newMark = len(out)
		}
		out = append(out, line)
		if strings.HasPrefix(line, "|") && i+1 < len(lines) {
			next := lines[i+1]
			if next != "" && !strings.HasPrefix(next, "|") {
				out = append(out, "")
			}
		}
	}
	return out, newMark
}

// insertAfter places snippet after lines[at], framed by one empty line on
// each side.
func insertAfter(lines []string, at int, snippet string) []string {
	if at < 0 || at >= len(lines) {
		return lines
	}
	out := make([]string, 0, len(lines)+3)
	out = append(out, lines[:at+1]...)
	out = append(out, "", snippet)

	rest := lines[at+1:]
	if len(rest) > 0 && rest[0] != "" {
		out = append(out, "")
	}
	return append(out, rest...)
}
