// Package source loads input documents into the HTML tree the converter
// works on.
//
// HTML files are parsed directly. DOCX files are read from their OOXML parts
// and translated into equivalent HTML elements (headings, paragraphs, lists,
// tables, links, images) so both inputs share one pipeline.
package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Format identifies an input document type.
type Format string

const (
	FormatDOCX Format = "docx"
	FormatHTML Format = "html"
)

// Detect returns the format of path based on its extension.
func Detect(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return FormatDOCX, nil
	case ".html", ".htm", ".xhtml":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unsupported document type %q", filepath.Ext(path))
	}
}

// Loader implements core.Source for every supported format.
type Loader struct{}

// New creates a Loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the document at path and returns its content tree.
func (l *Loader) Load(path string) (*goquery.Document, error) {
	format, err := Detect(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatDOCX:
		return OpenDOCX(path)
	default:
		return OpenHTML(path)
	}
}

// newDocument wraps nodes in a fresh document root.
func newDocument(nodes ...*html.Node) *goquery.Document {
	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		root.AppendChild(n)
	}
	return goquery.NewDocumentFromNode(root)
}
