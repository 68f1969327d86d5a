package source

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Package parts read from a DOCX archive.
const (
	partDocument  = "word/document.xml"
	partStyles    = "word/styles.xml"
	partNumbering = "word/numbering.xml"
	partRels      = "word/_rels/document.xml.rels"
)

var errPartMissing = errors.New("part not found")

var headingAtoms = []atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// OpenDOCX reads the DOCX file at path and returns its content as an HTML
// tree. Styles, numbering and relationships are optional parts.
func OpenDOCX(path string) (*goquery.Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening DOCX archive: %w", err)
	}
	defer zr.Close()

	var doc documentXML
	if err := decodePart(zr.File, partDocument, &doc); err != nil {
		return nil, fmt.Errorf("reading %s: %w", partDocument, err)
	}

	b := &docxBuilder{
		rels:      make(map[string]string),
		styles:    make(map[string]styleDefXML),
		numbering: newNumberingResolver(nil),
	}

	var rels relationshipsXML
	if err := decodePart(zr.File, partRels, &rels); err == nil {
		for _, rel := range rels.Relationships {
			b.rels[rel.ID] = rel.Target
		}
	}

	var styles stylesXML
	if err := decodePart(zr.File, partStyles, &styles); err == nil {
		for _, s := range styles.Styles {
			b.styles[s.StyleID] = s
		}
	}

	var numbering numberingXML
	if err := decodePart(zr.File, partNumbering, &numbering); err == nil {
		b.numbering = newNumberingResolver(&numbering)
	}

	return newDocument(b.blocks(doc.Body.Blocks)...), nil
}

// decodePart unmarshals the archive member name into v.
func decodePart(files []*zip.File, name string, v any) error {
	for _, f := range files {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		return xml.NewDecoder(rc).Decode(v)
	}
	return errPartMissing
}

// numberingResolver answers whether a numbered paragraph is a bullet or an
// ordered list item.
type numberingResolver struct {
	abstract map[string]abstractNumXML // abstractNumId -> definition
	nums     map[string]string         // numId -> abstractNumId
}

func newNumberingResolver(n *numberingXML) *numberingResolver {
	nr := &numberingResolver{
		abstract: make(map[string]abstractNumXML),
		nums:     make(map[string]string),
	}
	if n == nil {
		return nr
	}
	for _, an := range n.AbstractNums {
		nr.abstract[an.AbstractNumID] = an
	}
	for _, num := range n.Nums {
		nr.nums[num.NumID] = num.AbstractNumID.Val
	}
	return nr
}

// ordered reports whether level of numID uses a counting format. Unknown
// numbering falls back to bullets.
func (nr *numberingResolver) ordered(numID string, level int) bool {
	an, ok := nr.abstract[nr.nums[numID]]
	if !ok {
		return false
	}
	want := strconv.Itoa(level)
	for _, lvl := range an.Levels {
		if lvl.ILvl != want {
			continue
		}
		switch lvl.NumFmt.Val {
		case "", "bullet", "none":
			return false
		default:
			return true
		}
	}
	return false
}

// docxBuilder turns decoded WordprocessingML into HTML nodes.
type docxBuilder struct {
	rels      map[string]string // relationship ID -> target
	styles    map[string]styleDefXML
	numbering *numberingResolver
}

// listFrame is an open list at one indentation level.
type listFrame struct {
	list    *html.Node
	level   int
	ordered bool
	item    *html.Node // last li appended
}

// blocks converts body blocks in order. Consecutive numbered paragraphs
// form lists, nested by their indentation level.
func (b *docxBuilder) blocks(blocks []blockXML) []*html.Node {
	var out []*html.Node
	var open []listFrame

	for _, blk := range blocks {
		if blk.Table != nil {
			open = nil
			out = append(out, b.table(blk.Table))
			continue
		}

		p := blk.Paragraph
		numID, level, ok := b.numbered(p.Props)
		if !ok {
			open = nil
			if n := b.paragraph(p); n != nil {
				out = append(out, n)
			}
			continue
		}

		ordered := b.numbering.ordered(numID, level)
		for len(open) > 0 {
			top := open[len(open)-1]
			if top.level > level || (top.level == level && top.ordered != ordered) {
				open = open[:len(open)-1]
				continue
			}
			break
		}

		if len(open) == 0 || open[len(open)-1].level < level {
			list := element(atom.Ul)
			if ordered {
				list = element(atom.Ol)
			}
			if len(open) == 0 {
				out = append(out, list)
			} else {
				parent := &open[len(open)-1]
				if parent.item == nil {
					parent.item = element(atom.Li)
					parent.list.AppendChild(parent.item)
				}
				parent.item.AppendChild(list)
			}
			open = append(open, listFrame{list: list, level: level, ordered: ordered})
		}

		top := &open[len(open)-1]
		li := element(atom.Li)
		b.inlines(li, p.Inlines)
		top.list.AppendChild(li)
		top.item = li
	}
	return out
}

// numbered returns the numbering of a paragraph, taken from its own
// properties or from its style.
func (b *docxBuilder) numbered(props paragraphPropsXML) (numID string, level int, ok bool) {
	numPr := props.NumPr
	if numPr == nil {
		if style, found := b.styles[props.Style.Val]; found {
			numPr = style.PPr.NumPr
		}
	}
	if numPr == nil || numPr.NumID.Val == "" || numPr.NumID.Val == "0" {
		return "", 0, false
	}
	level, _ = strconv.Atoi(numPr.ILvl.Val)
	return numPr.NumID.Val, level, true
}

// headingLevel returns the heading level of a paragraph, or 0 for body
// text. Built-in heading style IDs win over outline levels.
func (b *docxBuilder) headingLevel(props paragraphPropsXML) int {
	id := strings.ToLower(props.Style.Val)
	if id == "title" {
		return 1
	}
	if rest, found := strings.CutPrefix(id, "heading"); found {
		if level, err := strconv.Atoi(rest); err == nil && level > 0 {
			return level
		}
	}

	outline := props.OutlineLvl
	if outline == nil {
		if style, found := b.styles[props.Style.Val]; found {
			outline = style.PPr.OutlineLvl
			if outline == nil {
				name := strings.ToLower(style.Name.Val)
				if rest, found := strings.CutPrefix(name, "heading "); found {
					if level, err := strconv.Atoi(rest); err == nil && level > 0 {
						return level
					}
				}
			}
		}
	}
	if outline != nil {
		// Outline levels are 0-based; 9 marks body text.
		if level, err := strconv.Atoi(outline.Val); err == nil && level >= 0 && level < 9 {
			return level + 1
		}
	}
	return 0
}

func (b *docxBuilder) paragraph(p *paragraphXML) *html.Node {
	tag := atom.P
	if level := b.headingLevel(p.Props); level > 0 {
		tag = headingAtoms[min(level, len(headingAtoms))-1]
	}
	n := element(tag)
	b.inlines(n, p.Inlines)
	if n.FirstChild == nil {
		return nil
	}
	return n
}

func (b *docxBuilder) inlines(parent *html.Node, inlines []inlineXML) {
	for _, in := range inlines {
		switch {
		case in.Run != nil:
			b.run(parent, in.Run)
		case in.Hyperlink != nil:
			a := element(atom.A)
			if href := b.href(in.Hyperlink); href != "" {
				a.Attr = append(a.Attr, html.Attribute{Key: "href", Val: href})
			}
			for i := range in.Hyperlink.Runs {
				b.run(a, &in.Hyperlink.Runs[i])
			}
			if a.FirstChild != nil {
				parent.AppendChild(a)
			}
		}
	}
}

func (b *docxBuilder) href(h *hyperlinkXML) string {
	target := b.rels[h.ID]
	if h.Anchor == "" {
		return target
	}
	return target + "#" + h.Anchor
}

// run appends the text and drawings of r. Text keeps the run's bold and
// italic formatting as strong and em.
func (b *docxBuilder) run(parent *html.Node, r *runXML) {
	var sb strings.Builder
	flush := func() {
		if sb.Len() == 0 {
			return
		}
		parent.AppendChild(styled(r.Props, sb.String()))
		sb.Reset()
	}

	for _, c := range r.Content {
		if c.Drawing == nil {
			sb.WriteString(c.Text)
			continue
		}
		flush()
		if img := b.image(c.Drawing); img != nil {
			parent.AppendChild(img)
		}
	}
	flush()
}

func (b *docxBuilder) image(d *drawingXML) *html.Node {
	frame := d.Inline
	if frame == nil {
		frame = d.Anchor
	}
	if frame == nil {
		return nil
	}

	img := element(atom.Img)
	if frame.Blip != nil {
		if target, ok := b.rels[frame.Blip.Embed]; ok {
			img.Attr = append(img.Attr, html.Attribute{Key: "src", Val: target})
		}
	}
	if frame.DocPr.Descr != "" {
		img.Attr = append(img.Attr, html.Attribute{Key: "alt", Val: frame.DocPr.Descr})
	}
	return img
}

// table converts t to table/tr/td. Rows flagged as repeating headers use th
// cells. Cell paragraphs are separated by newlines.
func (b *docxBuilder) table(t *tableXML) *html.Node {
	table := element(atom.Table)
	for _, row := range t.Rows {
		tr := element(atom.Tr)
		cellTag := atom.Td
		if row.Props.Header.on() {
			cellTag = atom.Th
		}
		for _, cell := range row.Cells {
			c := element(cellTag)
			for i := range cell.Paragraphs {
				p := element(atom.P)
				b.inlines(p, cell.Paragraphs[i].Inlines)
				if p.FirstChild == nil {
					continue
				}
				if c.FirstChild != nil {
					c.AppendChild(text("\n"))
				}
				c.AppendChild(p)
			}
			tr.AppendChild(c)
		}
		table.AppendChild(tr)
	}
	return table
}

func styled(props runPropsXML, s string) *html.Node {
	n := text(s)
	if strings.TrimSpace(s) == "" {
		return n
	}
	if props.Italic.on() {
		em := element(atom.Em)
		em.AppendChild(n)
		n = em
	}
	if props.Bold.on() {
		strong := element(atom.Strong)
		strong.AppendChild(n)
		n = strong
	}
	return n
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
