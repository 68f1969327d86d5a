// Package tree classifies and queries the HTML document tree that the
// conversion pipeline operates on.
//
// Every node maps onto a closed set of kinds so that renderers can switch
// on Kind instead of inspecting tag names. Tags outside the recognized
// vocabulary are containers: their own tag contributes nothing, only their
// children do.
package tree

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// MarkdownTableClass marks a table for pipe-table rendering.
	MarkdownTableClass = "markdown-table"

	// MarkerAttr holds the synthesized list marker ("- " or "3. ") of an li.
	MarkerAttr = "data-md-marker"
)

// Kind is the rendering variant of a node.
type Kind int

const (
	KindIgnored Kind = iota
	KindText
	KindHeading
	KindParagraph
	KindLink
	KindStrong
	KindEmphasis
	KindList
	KindListItem
	KindTable
	KindImage
	KindContainer
)

var kindNames = map[Kind]string{
	KindIgnored:   "ignored",
	KindText:      "text",
	KindHeading:   "heading",
	KindParagraph: "paragraph",
	KindLink:      "link",
	KindStrong:    "strong",
	KindEmphasis:  "emphasis",
	KindList:      "list",
	KindListItem:  "list-item",
	KindTable:     "table",
	KindImage:     "image",
	KindContainer: "container",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Classify returns the kind of n.
func Classify(n *html.Node) Kind {
	switch n.Type {
	case html.TextNode:
		return KindText
	case html.DocumentNode:
		return KindContainer
	case html.ElementNode:
	default:
		return KindIgnored
	}

	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return KindHeading
	case atom.P:
		return KindParagraph
	case atom.A:
		return KindLink
	case atom.Strong, atom.B:
		return KindStrong
	case atom.Em, atom.I:
		return KindEmphasis
	case atom.Ul, atom.Ol:
		return KindList
	case atom.Li:
		return KindListItem
	case atom.Table:
		if HasClass(n, MarkdownTableClass) {
			return KindTable
		}
		return KindContainer
	case atom.Img:
		return KindImage
	}
	return KindContainer
}

// HeadingLevel returns the numeric level of an h1..h6 element, or 0.
func HeadingLevel(n *html.Node) int {
	if n.Type != html.ElementNode || len(n.Data) != 2 || n.Data[0] != 'h' {
		return 0
	}
	level := int(n.Data[1] - '0')
	if level < 1 || level > 6 {
		return 0
	}
	return level
}

// Rename changes the tag of an element, keeping DataAtom consistent.
func Rename(n *html.Node, tag string) {
	n.Data = tag
	n.DataAtom = atom.Lookup([]byte(tag))
}

// blockAtoms are elements whose content is a separate run of text.
var blockAtoms = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Br: true, atom.Hr: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Ul: true, atom.Ol: true, atom.Li: true, atom.Dl: true, atom.Dt: true, atom.Dd: true,
	atom.Table: true, atom.Thead: true, atom.Tbody: true, atom.Tfoot: true,
	atom.Tr: true, atom.Th: true, atom.Td: true, atom.Caption: true,
	atom.Section: true, atom.Article: true, atom.Main: true, atom.Aside: true,
	atom.Header: true, atom.Footer: true, atom.Nav: true,
	atom.Blockquote: true, atom.Pre: true, atom.Figure: true, atom.Figcaption: true,
}

// Text returns the concatenated text of all descendant text nodes. Text of
// descendant block elements is set off by spaces so words on either side of
// a block boundary stay apart.
func Text(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return sb.String()
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		block := c.Type == html.ElementNode && blockAtoms[c.DataAtom]
		if block {
			sb.WriteByte(' ')
		}
		collectText(c, sb)
		if block {
			sb.WriteByte(' ')
		}
	}
}

// Attr returns the value of key on n, or fallback when the attribute is absent.
func Attr(n *html.Node, key, fallback string) string {
	return dom.GetAttributeOr(n, key, fallback)
}

// SetAttr sets key on n, replacing an existing value.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// HasClass reports whether the class attribute of n contains class.
func HasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(Attr(n, "class", "")) {
		if c == class {
			return true
		}
	}
	return false
}

// Children returns the direct element children of n whose atom is one of tags.
func Children(n *html.Node, tags ...atom.Atom) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		for _, t := range tags {
			if c.DataAtom == t {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Rows returns the tr elements of table in document order. Rows that
// belong to a nested table are left to that table.
func Rows(table *html.Node) []*html.Node {
	var rows []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Table:
				continue
			case atom.Tr:
				rows = append(rows, c)
			}
			walk(c)
		}
	}
	walk(table)
	return rows
}

// Cells returns the th and td children of a row.
func Cells(tr *html.Node) []*html.Node {
	return Children(tr, atom.Th, atom.Td)
}
