package source

import (
	"fmt"
	"io"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// noise matches elements that contribute no document content.
var noise = cascadia.MustCompile("script, style, noscript, template, iframe, svg, canvas, form")

// containers are tried in order; the first match holds the content.
var containers = []string{"main", "article", "body"}

// OpenHTML reads the HTML file at path.
func OpenHTML(path string) (*goquery.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	return ReadHTML(f)
}

// ReadHTML parses r, strips noise elements and returns a document whose
// top-level children are the children of the main content container.
func ReadHTML(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	doc.FindMatcher(noise).Remove()

	var content *goquery.Selection
	for _, tag := range containers {
		if sel := doc.Find(tag); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return nil, fmt.Errorf("no content container found in HTML")
	}

	var children []*html.Node
	for c := content.Get(0).FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return newDocument(children...), nil
}
