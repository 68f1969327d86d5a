package markdown

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"golang.org/x/net/html"
)

// LibraryRenderer renders a normalized tree with html-to-markdown instead of
// the built-in walker. Its output goes through the same post-processing.
type LibraryRenderer struct {
	conv *converter.Converter
}

// NewLibraryRenderer creates a LibraryRenderer with the commonmark and
// table plugins.
func NewLibraryRenderer() *LibraryRenderer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &LibraryRenderer{conv: conv}
}

// Render serializes root back to HTML and converts it.
func (r *LibraryRenderer) Render(root *html.Node) (*LineBuffer, error) {
	var sb strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return nil, fmt.Errorf("serializing tree: %w", err)
		}
	}

	md, err := r.conv.ConvertString(sb.String())
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}

	md = strings.TrimSpace(CollapseBlankLines(md))
	if md == "" {
		return &LineBuffer{}, nil
	}
	return NewLineBuffer(strings.Split(md, "\n")...), nil
}
