package markdown

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/docmd/core/normalize"
)

// render parses src, optionally normalizes it and renders the whole tree.
func render(t *testing.T, src string, normalized bool) []string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	require.NoError(t, err)
	if normalized {
		normalize.Tree(doc, normalize.DefaultImageReference)
	}
	buf, err := NewRenderer(NewLayout(false)).Render(doc.Get(0))
	require.NoError(t, err)
	return buf.Lines()
}

func TestRenderer_Blocks(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "heading",
			html: `<h2>  Section  </h2>`,
			want: []string{"## Section"},
		},
		{
			name: "paragraph",
			html: `<p> Some <b>bold</b> text </p>`,
			want: []string{"Some bold text", ""},
		},
		{
			name: "empty paragraph",
			html: `<p>   </p>`,
			want: nil,
		},
		{
			name: "link",
			html: `<a href="https://example.com"> Example </a>`,
			want: []string{"[Example](https://example.com)"},
		},
		{
			name: "link without href",
			html: `<a>anchor</a>`,
			want: []string{"[anchor]()"},
		},
		{
			name: "strong and emphasis",
			html: `<strong>s</strong><b>b</b><em>e</em><i>i</i>`,
			want: []string{"**s**", "**b**", "*e*", "*i*"},
		},
		{
			name: "unordered list",
			html: `<ul><li>A</li><li>B</li></ul>`,
			want: []string{"- A", "- B", ""},
		},
		{
			name: "ordered list",
			html: `<ol><li>A</li><li>B</li></ol>`,
			want: []string{"1. A", "2. B", ""},
		},
		{
			name: "transparent containers",
			html: `<div><section><article><span>inside</span></article></section></div><custom>tag</custom>`,
			want: []string{"inside", "tag"},
		},
		{
			name: "unmarked table is flattened",
			html: `<table><tr><td>a</td><td>b</td></tr></table>`,
			want: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.html, false))
		})
	}
}

func TestRenderer_ListsNormalized(t *testing.T) {
	assert.Equal(t, []string{"- A", "- B", ""}, render(t, `<ul><li>A</li><li>B</li></ul>`, true))
	assert.Equal(t, []string{"1. A", "2. B", ""}, render(t, `<ol><li>A</li><li>B</li></ol>`, true))
}

func TestRenderer_NoDoubledMarkers(t *testing.T) {
	got := render(t, `<wrapper><ul><li>A</li></ul></wrapper><ol><li>x<ol><li>y</li></ol></li></ol>`, true)
	assert.Equal(t, []string{"- A", "", "1. x y", ""}, got)
}

func TestRenderer_MultiLineBlocks(t *testing.T) {
	got := render(t, "<h1>My\nDoc</h1><p>first\n\n\n\nsecond</p>\ntrailing\n\n\ntext", false)
	assert.Equal(t, []string{"# My Doc", "first second", "", "trailing text"}, got)
}

func TestRenderer_NestedBlocksKeepWordBoundaries(t *testing.T) {
	got := render(t, `<ul><li><p>a</p><p>b</p></li><li>c<ul><li>d</li></ul></li></ul>`, true)
	assert.Equal(t, []string{"- a b", "- c d", ""}, got)
}

func TestRenderer_Table(t *testing.T) {
	got := render(t, `<p>Before</p>
		<table>
			<tr><td>Name</td><td>Age</td></tr>
			<tr><td>Bob</td><td>30</td></tr>
		</table>
		<p>After</p>`, true)

	assert.Equal(t, []string{
		"Before", "",
		"| Name | Age |",
		"| ---- | --- |",
		"| Bob  | 30  |",
		"",
		"After", "",
	}, got)
}

func TestRenderer_TableCellsEscaped(t *testing.T) {
	got := render(t, `<table><tr><th>a|b</th></tr><tr><td>line<br>break</td></tr></table>`, true)
	assert.Equal(t, []string{
		`| a\|b` + strings.Repeat(" ", 7) + "|",
		"| ---------- |",
		"| line break |",
		"",
	}, got)
}

func TestRenderer_EmptyTableDropped(t *testing.T) {
	assert.Equal(t, []string{""}, render(t, `<table></table>`, true))
}

func TestRenderer_ImagePlaceholder(t *testing.T) {
	got := render(t, `<p>See <img alt="Chart"> here</p><img src="x.png">`, true)
	assert.Equal(t, []string{"See ![Chart](image_reference) here", "", "![Image](image_reference)"}, got)
}
