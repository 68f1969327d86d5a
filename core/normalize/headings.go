package normalize

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/docmd/core/tree"
)

const headingSelector = "h1, h2, h3, h4, h5, h6"

// Headings renumbers every heading relative to the shallowest heading in
// the document, so that it becomes h1. Levels are clamped to 1..6.
// It returns the shift applied; 0 means the tree was already normalized.
func Headings(doc *goquery.Document) int {
	headings := doc.Find(headingSelector)

	minLevel := 0
	headings.Each(func(_ int, s *goquery.Selection) {
		level := tree.HeadingLevel(s.Get(0))
		if level > 0 && (minLevel == 0 || level < minLevel) {
			minLevel = level
		}
	})
	if minLevel == 0 {
		minLevel = 1
	}

	shift := minLevel - 1
	if shift == 0 {
		return 0
	}

	headings.Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		level := clamp(tree.HeadingLevel(n)-shift, 1, 6)
		tree.Rename(n, fmt.Sprintf("h%d", level))
	})
	return shift
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
