// Package assemble runs a document through the whole conversion: tree
// normalization, body rendering, post-processing, output rendering and
// writing.
package assemble

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/docmd/core"
	"github.com/gaurav-prasanna/docmd/core/markdown"
	"github.com/gaurav-prasanna/docmd/core/normalize"
	"github.com/gaurav-prasanna/docmd/core/output"
	"github.com/gaurav-prasanna/docmd/core/render"
	"github.com/gaurav-prasanna/docmd/core/source"
	"github.com/gaurav-prasanna/docmd/internal/logger"
)

// BodyRenderer renders a normalized tree into Markdown lines.
type BodyRenderer interface {
	Render(root *html.Node) (*markdown.LineBuffer, error)
}

// Result is the Markdown produced for one document.
type Result struct {
	Title    string
	Markdown string
	Report   normalize.Report
}

// Assembler converts documents according to a set of Options.
type Assembler struct {
	opts   core.Options
	source core.Source
	body   BodyRenderer
	post   *markdown.PostProcessor
	format core.Renderer
	writer *output.Writer
	log    *slog.Logger
	now    func() time.Time
}

// New creates an Assembler. A nil log uses the package logger.
func New(opts core.Options, log *slog.Logger) (*Assembler, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	format, err := render.New(opts.Format, opts.Frontmatter)
	if err != nil {
		return nil, err
	}

	var body BodyRenderer = markdown.NewRenderer(markdown.NewLayout(opts.DisplayWidth))
	if opts.Engine == core.EngineLibrary {
		body = markdown.NewLibraryRenderer()
	}

	if log == nil {
		log = logger.Logger()
	}

	return &Assembler{
		opts:   opts,
		source: source.New(),
		body:   body,
		post:   markdown.NewPostProcessor(opts.Badge),
		format: format,
		writer: output.New(),
		log:    log,
		now:    time.Now,
	}, nil
}

// Extension returns the file extension of the configured output format.
func (a *Assembler) Extension() string {
	return a.format.Extension()
}

// Convert normalizes doc in place and renders it to Markdown. name is used
// for the title when the document has no heading.
func (a *Assembler) Convert(doc *goquery.Document, name string) (*Result, error) {
	report := normalize.Tree(doc, a.opts.ImageReference)
	a.log.Debug("normalized document",
		"name", name,
		"heading_shift", report.HeadingShift,
		"list_items", report.ListItems,
		"tables", report.Tables,
		"images", report.Images,
	)

	title := Title(doc, name)

	body, err := a.body.Render(doc.Get(0))
	if err != nil {
		return nil, fmt.Errorf("rendering body: %w", err)
	}

	buf := markdown.NewLineBuffer("# "+title, "")
	buf.Extend(body)
	a.log.Debug("rendered body", "engine", a.opts.Engine, "lines", body.Len())

	return &Result{
		Title:    title,
		Markdown: a.post.Process(buf, 0),
		Report:   report,
	}, nil
}

// ConvertFile converts the document at src and writes the configured output
// format to dst. An empty dst derives the path from src. Nothing is written
// unless the whole conversion succeeds. It returns the path written.
func (a *Assembler) ConvertFile(src, dst string) (string, error) {
	a.log.Info("converting document", "source", src)

	doc, err := a.source.Load(src)
	if err != nil {
		return "", fmt.Errorf("loading document: %w", err)
	}

	res, err := a.Convert(doc, src)
	if err != nil {
		return "", err
	}

	meta := core.DocumentMetadata{
		Title:       res.Title,
		Source:      src,
		ConvertedAt: a.now().UTC().Format(time.RFC3339),
	}
	data, err := a.format.Render(res.Markdown, meta)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", a.opts.Format, err)
	}

	if dst == "" {
		dst = output.DefaultPath(src, a.format.Extension())
	}
	if err := a.writer.Write(dst, data); err != nil {
		return "", err
	}

	a.log.Info("converted document", "source", src, "output", dst, "format", a.opts.Format)
	return dst, nil
}

// Title returns the text of the first heading of doc, or the base name of
// name without its extension when there is none.
func Title(doc *goquery.Document, name string) string {
	if h := doc.Find("h1, h2, h3, h4, h5, h6").First(); h.Length() > 0 {
		if text := strings.Join(strings.Fields(h.Text()), " "); text != "" {
			return text
		}
	}
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
