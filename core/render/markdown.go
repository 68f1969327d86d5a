package render

import (
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/gaurav-prasanna/docmd/core"
)

// MarkdownRenderer writes Markdown as-is, optionally behind a YAML
// frontmatter block.
type MarkdownRenderer struct {
	Frontmatter bool
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer(frontmatter bool) *MarkdownRenderer {
	return &MarkdownRenderer{Frontmatter: frontmatter}
}

// Render returns the Markdown as bytes.
func (r *MarkdownRenderer) Render(markdown string, meta core.DocumentMetadata) ([]byte, error) {
	if !r.Frontmatter {
		return []byte(markdown), nil
	}

	header, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshaling frontmatter: %w", err)
	}

	out := make([]byte, 0, len(header)+len(markdown)+9)
	out = append(out, "---\n"...)
	out = append(out, header...)
	out = append(out, "---\n\n"...)
	out = append(out, markdown...)
	return out, nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
