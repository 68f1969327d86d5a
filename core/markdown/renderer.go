package markdown

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gaurav-prasanna/docmd/core/tree"
)

// Renderer walks a normalized tree in document order and emits one line per
// block. It performs no wrapping.
type Renderer struct {
	layout Layout
}

// NewRenderer creates a Renderer that lays out tables with layout.
func NewRenderer(layout Layout) *Renderer {
	return &Renderer{layout: layout}
}

// Render returns the lines for every child of root. The error is always nil;
// it is there so Renderer can stand in for other body renderers.
func (r *Renderer) Render(root *html.Node) (*LineBuffer, error) {
	b := &LineBuffer{}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		r.node(b, c)
	}
	return b, nil
}

func (r *Renderer) node(b *LineBuffer, n *html.Node) {
	switch tree.Classify(n) {
	case tree.KindText:
		if text := fold(n.Data); text != "" {
			b.Append(text)
		}

	case tree.KindHeading:
		if text := flatten(n); text != "" {
			b.Append(strings.Repeat("#", tree.HeadingLevel(n)) + " " + text)
		}

	case tree.KindParagraph:
		if text := flatten(n); text != "" {
			b.Append(text)
			b.Blank()
		}

	case tree.KindLink:
		b.Append("[" + flatten(n) + "](" + tree.Attr(n, "href", "") + ")")

	case tree.KindStrong:
		if text := flatten(n); text != "" {
			b.Append("**" + text + "**")
		}

	case tree.KindEmphasis:
		if text := flatten(n); text != "" {
			b.Append("*" + text + "*")
		}

	case tree.KindList:
		r.list(b, n)

	case tree.KindListItem:
		// An li outside ul/ol only renders as an item when it was marked.
		if marker := tree.Attr(n, tree.MarkerAttr, ""); marker != "" {
			b.Append(marker + flatten(n))
			return
		}
		r.children(b, n)

	case tree.KindTable:
		b.Append(r.layout.Lines(tableOf(n))...)
		b.Blank()

	case tree.KindContainer:
		r.children(b, n)

	case tree.KindImage, tree.KindIgnored:
		// Images are replaced by placeholder text before rendering.
	}
}

func (r *Renderer) children(b *LineBuffer, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.node(b, c)
	}
}

// list emits one line per direct li, then a blank line. The marker comes
// from the normalizer when present, otherwise from the item position.
func (r *Renderer) list(b *LineBuffer, n *html.Node) {
	ordered := n.DataAtom == atom.Ol
	for i, li := range tree.Children(n, atom.Li) {
		fallback := "- "
		if ordered {
			fallback = strconv.Itoa(i+1) + ". "
		}
		b.Append(tree.Attr(li, tree.MarkerAttr, fallback) + flatten(li))
	}
	b.Blank()
}

// tableOf builds the cell matrix of a table node. The first row is the
// header; every later row is a body row.
func tableOf(n *html.Node) Table {
	rows := tree.Rows(n)
	if len(rows) == 0 {
		return Table{}
	}
	t := Table{Header: cellTexts(rows[0])}
	for _, tr := range rows[1:] {
		t.Rows = append(t.Rows, cellTexts(tr))
	}
	return t
}

func cellTexts(tr *html.Node) []string {
	cells := tree.Cells(tr)
	texts := make([]string, len(cells))
	for i, c := range cells {
		texts[i] = escapeCell(flatten(c))
	}
	return texts
}

// escapeCell keeps pipes in a cell out of the column structure.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// flatten returns the text of n on a single line.
func flatten(n *html.Node) string {
	return fold(tree.Text(n))
}

// fold collapses every whitespace run, line breaks included, to one space
// and trims the ends.
func fold(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
