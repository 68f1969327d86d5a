package source

import "encoding/xml"

// The types below mirror the subset of WordprocessingML the converter reads.
// Body, paragraph and run contents keep document order, so they decode with
// hand-written UnmarshalXML methods instead of per-element slices.

type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    bodyXML  `xml:"body"`
}

type bodyXML struct {
	Blocks []blockXML
}

// blockXML is a paragraph or a table.
type blockXML struct {
	Paragraph *paragraphXML
	Table     *tableXML
}

func (b *bodyXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return walk(d, func(t xml.StartElement) (bool, error) {
		switch t.Name.Local {
		case "p":
			p := &paragraphXML{}
			if err := d.DecodeElement(p, &t); err != nil {
				return false, err
			}
			b.Blocks = append(b.Blocks, blockXML{Paragraph: p})
		case "tbl":
			tbl := &tableXML{}
			if err := d.DecodeElement(tbl, &t); err != nil {
				return false, err
			}
			b.Blocks = append(b.Blocks, blockXML{Table: tbl})
		case "sdt", "sdtContent", "customXml":
			return true, nil
		default:
			return false, d.Skip()
		}
		return false, nil
	})
}

type paragraphXML struct {
	Props   paragraphPropsXML
	Inlines []inlineXML
}

// inlineXML is a run or a hyperlink.
type inlineXML struct {
	Run       *runXML
	Hyperlink *hyperlinkXML
}

func (p *paragraphXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return walk(d, func(t xml.StartElement) (bool, error) {
		switch t.Name.Local {
		case "pPr":
			return false, d.DecodeElement(&p.Props, &t)
		case "r":
			r := &runXML{}
			if err := d.DecodeElement(r, &t); err != nil {
				return false, err
			}
			p.Inlines = append(p.Inlines, inlineXML{Run: r})
		case "hyperlink":
			h := &hyperlinkXML{}
			if err := d.DecodeElement(h, &t); err != nil {
				return false, err
			}
			p.Inlines = append(p.Inlines, inlineXML{Hyperlink: h})
		case "ins", "smartTag", "sdt", "sdtContent", "fldSimple", "customXml":
			return true, nil
		default:
			return false, d.Skip()
		}
		return false, nil
	})
}

type paragraphPropsXML struct {
	Style      valXML             `xml:"pStyle"`
	NumPr      *numberingPropsXML `xml:"numPr"`
	OutlineLvl *valXML            `xml:"outlineLvl"`
}

type numberingPropsXML struct {
	ILvl  valXML `xml:"ilvl"`
	NumID valXML `xml:"numId"`
}

type valXML struct {
	Val string `xml:"val,attr"`
}

// onOffXML is a toggle property such as <w:b/> or <w:b w:val="0"/>.
type onOffXML struct {
	Val string `xml:"val,attr"`
}

func (o *onOffXML) on() bool {
	if o == nil {
		return false
	}
	switch o.Val {
	case "false", "0", "off":
		return false
	}
	return true
}

type runXML struct {
	Props   runPropsXML
	Content []runContent
}

// runContent is a piece of text or a drawing inside a run.
type runContent struct {
	Text    string
	Drawing *drawingXML
}

type breakXML struct {
	Type string `xml:"type,attr"`
}

func (r *runXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return walk(d, func(t xml.StartElement) (bool, error) {
		switch t.Name.Local {
		case "rPr":
			return false, d.DecodeElement(&r.Props, &t)
		case "t":
			var text string
			if err := d.DecodeElement(&text, &t); err != nil {
				return false, err
			}
			r.Content = append(r.Content, runContent{Text: text})
		case "tab":
			r.Content = append(r.Content, runContent{Text: "\t"})
			return false, d.Skip()
		case "br", "cr":
			var br breakXML
			if err := d.DecodeElement(&br, &t); err != nil {
				return false, err
			}
			if br.Type != "page" {
				r.Content = append(r.Content, runContent{Text: " "})
			}
		case "drawing":
			dr := &drawingXML{}
			if err := d.DecodeElement(dr, &t); err != nil {
				return false, err
			}
			r.Content = append(r.Content, runContent{Drawing: dr})
		default:
			return false, d.Skip()
		}
		return false, nil
	})
}

type runPropsXML struct {
	Bold   *onOffXML `xml:"b"`
	Italic *onOffXML `xml:"i"`
}

type drawingXML struct {
	Inline *graphicFrameXML `xml:"inline"`
	Anchor *graphicFrameXML `xml:"anchor"`
}

type graphicFrameXML struct {
	DocPr docPrXML `xml:"docPr"`
	Blip  *blipXML `xml:"graphic>graphicData>pic>blipFill>blip"`
}

type docPrXML struct {
	Name  string `xml:"name,attr"`
	Descr string `xml:"descr,attr"` // alt text
}

type blipXML struct {
	Embed string `xml:"embed,attr"` // relationship ID
}

type hyperlinkXML struct {
	ID     string   `xml:"id,attr"`
	Anchor string   `xml:"anchor,attr"`
	Runs   []runXML `xml:"r"`
}

type tableXML struct {
	Rows []tableRowXML `xml:"tr"`
}

type tableRowXML struct {
	Props rowPropsXML    `xml:"trPr"`
	Cells []tableCellXML `xml:"tc"`
}

type rowPropsXML struct {
	Header *onOffXML `xml:"tblHeader"`
}

type tableCellXML struct {
	Paragraphs []paragraphXML `xml:"p"`
}

// word/styles.xml

type stylesXML struct {
	Styles []styleDefXML `xml:"style"`
}

type styleDefXML struct {
	StyleID string            `xml:"styleId,attr"`
	Name    valXML            `xml:"name"`
	PPr     paragraphPropsXML `xml:"pPr"`
}

// word/numbering.xml

type numberingXML struct {
	AbstractNums []abstractNumXML `xml:"abstractNum"`
	Nums         []numXML         `xml:"num"`
}

type abstractNumXML struct {
	AbstractNumID string   `xml:"abstractNumId,attr"`
	Levels        []lvlXML `xml:"lvl"`
}

type lvlXML struct {
	ILvl   string `xml:"ilvl,attr"`
	NumFmt valXML `xml:"numFmt"`
}

type numXML struct {
	NumID         string `xml:"numId,attr"`
	AbstractNumID valXML `xml:"abstractNumId"`
}

// word/_rels/document.xml.rels

type relationshipsXML struct {
	Relationships []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Target string `xml:"Target,attr"`
}

// walk feeds every child start element of the current element to visit
// until the element's end tag. When visit returns descend, the child is
// treated as transparent and its own children are visited in turn.
func walk(d *xml.Decoder, visit func(xml.StartElement) (descend bool, err error)) error {
	depth := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			descend, err := visit(t)
			if err != nil {
				return err
			}
			if descend {
				depth++
			}
		case xml.EndElement:
			if depth == 0 {
				return nil
			}
			depth--
		}
	}
}
