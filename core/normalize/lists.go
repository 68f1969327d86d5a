package normalize

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/docmd/core/tree"
)

// Lists records the Markdown marker of every direct li of every list as
// the tree.MarkerAttr attribute: "1. ", "2. ", ... for ordered lists and
// "- " for unordered ones. Nested lists are handled as lists of their own.
//
// The marker is stored as markup rather than text so it is emitted exactly
// once, whichever render path reaches the item.
func Lists(doc *goquery.Document) int {
	count := 0
	doc.Find("ol").Each(func(_ int, ol *goquery.Selection) {
		ol.ChildrenFiltered("li").Each(func(i int, li *goquery.Selection) {
			tree.SetAttr(li.Get(0), tree.MarkerAttr, strconv.Itoa(i+1)+". ")
			count++
		})
	})
	doc.Find("ul").Each(func(_ int, ul *goquery.Selection) {
		ul.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
			tree.SetAttr(li.Get(0), tree.MarkerAttr, "- ")
			count++
		})
	})
	return count
}
