package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/gaurav-prasanna/docmd/core"
)

// JSONRenderer produces structured JSON output from Markdown. Structure is
// read from the goldmark AST, so escaped characters and table syntax are
// handled the way a Markdown viewer would.
type JSONRenderer struct {
	md goldmark.Markdown
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{
		md: goldmark.New(goldmark.WithExtensions(extension.Table)),
	}
}

// Render converts Markdown and metadata into a core.DocumentJSON.
func (r *JSONRenderer) Render(markdown string, meta core.DocumentMetadata) ([]byte, error) {
	src := []byte(markdown)
	root := r.md.Parser().Parse(text.NewReader(src))

	out := core.DocumentJSON{
		Metadata: meta,
		Content: core.DocumentContent{
			Text:     plainText(root, src),
			Markdown: markdown,
			Sections: buildSections(root, src),
		},
		Structure: collectStructure(root, src),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

func collectStructure(root ast.Node, src []byte) core.DocumentStructure {
	s := core.DocumentStructure{
		Headings: []core.Heading{},
		Links:    []core.Link{},
	}

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			s.Headings = append(s.Headings, core.Heading{
				Level: node.Level,
				Text:  plainText(node, src),
			})
		case *ast.Link:
			s.Links = append(s.Links, core.Link{
				Text: plainText(node, src),
				Href: string(node.Destination),
			})
		case *ast.Image:
			s.Images++
		case *ast.ListItem:
			s.Lists++
		case *east.Table:
			s.Tables++
		}
		return ast.WalkContinue, nil
	})
	return s
}

// buildSections splits the top-level blocks at every heading. Content
// before the first heading belongs to no section.
func buildSections(root ast.Node, src []byte) []core.Section {
	var sections []core.Section
	var current *core.Section
	var lines []string

	flush := func() {
		if current == nil {
			return
		}
		current.Text = strings.Join(lines, "\n")
		sections = append(sections, *current)
	}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			flush()
			current = &core.Section{Heading: plainText(h, src), Level: h.Level}
			lines = nil
			continue
		}
		if current != nil {
			if t := plainText(n, src); t != "" {
				lines = append(lines, t)
			}
		}
	}
	flush()
	return sections
}

// plainText returns the text of n without Markdown syntax. Nested blocks end
// with a newline and table cells with a space.
func plainText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			switch {
			case c.Kind() == east.KindTableCell:
				sb.WriteByte(' ')
			case c != n && c.Type() == ast.TypeBlock:
				sb.WriteByte('\n')
			}
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
