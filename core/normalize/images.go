package normalize

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Images replaces every img element with the literal text
// "![alt](ref)". The alt text defaults to "Image" when the attribute is
// absent. Image data is never read.
func Images(doc *goquery.Document, ref string) int {
	if ref == "" {
		ref = DefaultImageReference
	}
	imgs := doc.Find("img")
	imgs.Each(func(_ int, s *goquery.Selection) {
		alt, ok := s.Attr("alt")
		if !ok {
			alt = "Image"
		}
		s.ReplaceWithNodes(&html.Node{
			Type: html.TextNode,
			Data: "![" + alt + "](" + ref + ")",
		})
	})
	return imgs.Length()
}
