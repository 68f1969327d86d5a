// Package render provides the output-format renderers of docmd. Each one
// turns the final Markdown and document metadata into file contents.
package render

import (
	"fmt"

	"github.com/gaurav-prasanna/docmd/core"
)

// New returns the renderer for format.
func New(format string, frontmatter bool) (core.Renderer, error) {
	switch format {
	case core.FormatMarkdown:
		return NewMarkdownRenderer(frontmatter), nil
	case core.FormatJSON:
		return NewJSONRenderer(), nil
	case core.FormatPDF:
		return NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
