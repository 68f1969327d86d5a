// Package core defines the pipeline interfaces and shared types for docmd.
// Each stage of the pipeline is a clean, testable interface.
package core

import "github.com/PuerkitoBio/goquery"

// DocumentMetadata describes one converted document.
type DocumentMetadata struct {
	Title       string `json:"title" yaml:"title"`
	Source      string `json:"source" yaml:"source"`
	ConvertedAt string `json:"converted_at" yaml:"converted_at"` // RFC3339
}

// Section represents a heading-delimited section of content.
type Section struct {
	Heading string `json:"heading"`
	Level   int    `json:"level"`
	Text    string `json:"text"`
}

// Heading represents a single heading found in the content.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link represents a hyperlink found in the content.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// DocumentContent holds the text and structured content of a document.
type DocumentContent struct {
	Text     string    `json:"text"`
	Markdown string    `json:"markdown"`
	Sections []Section `json:"sections"`
}

// DocumentStructure holds structural metadata parsed from the Markdown.
type DocumentStructure struct {
	Headings []Heading `json:"headings"`
	Links    []Link    `json:"links"`
	Tables   int       `json:"tables"`
	Lists    int       `json:"lists"`
	Images   int       `json:"images"`
}

// DocumentJSON is the complete JSON output for a single document.
type DocumentJSON struct {
	Metadata  DocumentMetadata  `json:"metadata"`
	Content   DocumentContent   `json:"content"`
	Structure DocumentStructure `json:"structure"`
}

// Source loads a document file into a parsed HTML tree.
type Source interface {
	Load(path string) (*goquery.Document, error)
}

// Renderer converts Markdown (and metadata) into a final output format.
type Renderer interface {
	Render(markdown string, meta DocumentMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
