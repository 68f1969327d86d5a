package normalize

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/atom"

	"github.com/gaurav-prasanna/docmd/core/tree"
)

// Tables marks every table for pipe-table rendering. When the first row of
// a table has no th cells, its td cells are promoted to th so the row
// becomes the header.
func Tables(doc *goquery.Document) int {
	count := 0
	doc.Find("table").Each(func(_ int, s *goquery.Selection) {
		s.AddClass(tree.MarkdownTableClass)
		count++

		rows := tree.Rows(s.Get(0))
		if len(rows) == 0 {
			return
		}
		first := rows[0]
		// Cells are direct children of a tr, so a th anywhere else in the
		// row belongs to a nested table.
		if len(tree.Children(first, atom.Th)) > 0 {
			return
		}
		for _, td := range tree.Children(first, atom.Td) {
			tree.Rename(td, "th")
		}
	})
	return count
}
