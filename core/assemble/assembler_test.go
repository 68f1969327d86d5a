package assemble

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/docmd/core"
	"github.com/gaurav-prasanna/docmd/core/markdown"
	"github.com/gaurav-prasanna/docmd/core/normalize"
	"github.com/gaurav-prasanna/docmd/core/source"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAssembler(t *testing.T, opts core.Options) *Assembler {
	t.Helper()
	a, err := New(opts, quietLogger())
	require.NoError(t, err)
	return a
}

func readHTML(t *testing.T, src string) *goquery.Document {
	t.Helper()
	doc, err := source.ReadHTML(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func noBadge() core.Options {
	opts := core.DefaultOptions()
	opts.Badge = ""
	return opts
}

func TestConvert_BadgeAfterTitle(t *testing.T) {
	a := newAssembler(t, core.DefaultOptions())

	res, err := a.Convert(readHTML(t, `<h1>My Doc</h1><p>Hello</p>`), "ignored.docx")
	require.NoError(t, err)

	want := "# My Doc\n\n" + markdown.DefaultBadge + "\n\n# My Doc\nHello\n"
	assert.Equal(t, want, res.Markdown)
	assert.Equal(t, "My Doc", res.Title)
}

func TestConvert_MultiLineText(t *testing.T) {
	a := newAssembler(t, core.DefaultOptions())

	doc := readHTML(t, "<h1>My\nDoc</h1><p>first\n\n\n\nsecond</p><ul><li>a<ul><li>b</li></ul></li></ul>")
	res, err := a.Convert(doc, "doc.html")
	require.NoError(t, err)

	want := "# My Doc\n\n" + markdown.DefaultBadge + "\n\n# My Doc\nfirst second\n\n- a b\n"
	assert.Equal(t, want, res.Markdown)
	assert.NotContains(t, res.Markdown, "\n\n\n")
}

func TestConvert_TableTitleFromName(t *testing.T) {
	a := newAssembler(t, core.DefaultOptions())

	doc := readHTML(t, `<table><tr><td>Name</td><td>Age</td></tr><tr><td>Bob</td><td>30</td></tr></table>`)
	res, err := a.Convert(doc, filepath.Join("docs", "people.html"))
	require.NoError(t, err)

	want := "# people\n\n" + markdown.DefaultBadge + "\n\n" +
		"| Name | Age |\n" +
		"| ---- | --- |\n" +
		"| Bob  | 30  |\n"
	assert.Equal(t, want, res.Markdown)
	assert.Equal(t, 1, res.Report.Tables)
}

func TestConvert_Lists(t *testing.T) {
	a := newAssembler(t, noBadge())

	doc := readHTML(t, `<h2>Steps</h2><ol><li>one</li><li>two</li></ol><ul><li>x</li></ul>`)
	res, err := a.Convert(doc, "steps.html")
	require.NoError(t, err)

	assert.Equal(t, "# Steps\n\n# Steps\n1. one\n2. two\n\n- x\n", res.Markdown)
	assert.Equal(t, normalize.Report{HeadingShift: 1, ListItems: 3}, res.Report)
}

func TestConvert_ImagePlaceholder(t *testing.T) {
	opts := noBadge()
	opts.ImageReference = "img/placeholder.png"
	a := newAssembler(t, opts)

	res, err := a.Convert(readHTML(t, `<p>See <img src="chart.png" alt="Chart"></p>`), "x.html")
	require.NoError(t, err)
	assert.Equal(t, "# x\n\nSee ![Chart](img/placeholder.png)\n", res.Markdown)
}

func TestConvert_EmptyDocument(t *testing.T) {
	a := newAssembler(t, noBadge())

	res, err := a.Convert(readHTML(t, ``), "blank.html")
	require.NoError(t, err)
	assert.Equal(t, "# blank\n", res.Markdown)
}

func TestConvert_LibraryEngine(t *testing.T) {
	opts := noBadge()
	opts.Engine = core.EngineLibrary
	a := newAssembler(t, opts)

	doc := readHTML(t, `<h2>Intro</h2><p>Some <strong>bold</strong> text</p>`+
		`<table><tr><td>Name</td><td>Age</td></tr><tr><td>Bob</td><td>30</td></tr></table>`)
	res, err := a.Convert(doc, "intro.html")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.Markdown, "# Intro\n\n# Intro\n"))
	assert.Contains(t, res.Markdown, "**bold**")
	assert.Contains(t, res.Markdown, "Bob")
	assert.NotContains(t, res.Markdown, "\n\n\n")
	assert.True(t, strings.HasSuffix(res.Markdown, "\n"))
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		html string
		file string
		want string
	}{
		{name: "first heading", html: `<p>x</p><h3>Deep</h3><h1>Top</h1>`, file: "a.html", want: "Deep"},
		{name: "whitespace folded", html: "<h2>  Multi\n  line </h2>", file: "a.html", want: "Multi line"},
		{name: "empty heading", html: `<h1> </h1>`, file: "dir/report.final.docx", want: "report.final"},
		{name: "no heading", html: `<p>x</p>`, file: "notes.html", want: "notes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(readHTML(t, tt.html), tt.file))
		})
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	opts := core.DefaultOptions()
	opts.Engine = "pandoc"
	_, err := New(opts, quietLogger())
	assert.Error(t, err)
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConvertFile_DefaultPath(t *testing.T) {
	src := writeSource(t, "guide.html", `<body><h1>Guide</h1><p>Read me.</p></body>`)
	a := newAssembler(t, noBadge())

	dst, err := a.ConvertFile(src, "")
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSuffix(src, ".html")+".md", dst)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "# Guide\n\n# Guide\nRead me.\n", string(data))
}

func TestConvertFile_JSON(t *testing.T) {
	src := writeSource(t, "guide.html", `<body><h1>Guide</h1><a href="https://x.y">this</a></body>`)

	opts := noBadge()
	opts.Format = core.FormatJSON
	a := newAssembler(t, opts)
	a.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) }

	dst := filepath.Join(t.TempDir(), "out", "guide.json")
	got, err := a.ConvertFile(src, dst)
	require.NoError(t, err)
	assert.Equal(t, dst, got)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)

	var doc core.DocumentJSON
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, core.DocumentMetadata{
		Title:       "Guide",
		Source:      src,
		ConvertedAt: "2024-05-06T07:08:09Z",
	}, doc.Metadata)
	assert.Equal(t, []core.Link{{Text: "this", Href: "https://x.y"}}, doc.Structure.Links)
}

func TestConvertFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.md")

	a := newAssembler(t, core.DefaultOptions())
	_, err := a.ConvertFile(filepath.Join(dir, "missing.html"), dst)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, statErr := os.Stat(dst)
	assert.True(t, os.IsNotExist(statErr))
}
