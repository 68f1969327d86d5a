// Package normalize rewrites a parsed document tree in place so that the
// Markdown renderer can treat it uniformly: headings are renumbered from
// level one, list items carry explicit markers, tables are marked for
// pipe-table rendering and images become placeholder references.
package normalize

import "github.com/PuerkitoBio/goquery"

// DefaultImageReference is the link target used for image placeholders.
const DefaultImageReference = "image_reference"

// Report summarizes what a normalization pass changed.
type Report struct {
	HeadingShift int // levels subtracted from every heading
	ListItems    int
	Tables       int
	Images       int
}

// Tree runs every normalization pass over doc. The table formatter runs
// first so that header promotion sees the original cell tags.
func Tree(doc *goquery.Document, imageRef string) Report {
	var r Report
	r.Tables = Tables(doc)
	r.HeadingShift = Headings(doc)
	r.ListItems = Lists(doc)
	r.Images = Images(doc, imageRef)
	return r
}
