package docx

import (
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Alignment — значение w:jc абзаца.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "both"
)

// Underline — словарь подчёркиваний документа.
type Underline int

const (
	UnderlineNone Underline = iota
	UnderlineSingle
	UnderlineDouble
)

func (u Underline) String() string {
	switch u {
	case UnderlineSingle:
		return "single"
	case UnderlineDouble:
		return "double"
	default:
		return "none"
	}
}

// Paragraphs возвращает абзацы верхнего уровня тела документа, по порядку.
// Абзацы внутри таблиц сюда не входят.
func (d *Document) Paragraphs() []*Paragraph {
	els := d.body.SelectElements("w:p")
	out := make([]*Paragraph, len(els))
	for i, el := range els {
		out[i] = &Paragraph{el: el}
	}
	return out
}

// Tables возвращает таблицы верхнего уровня.
func (d *Document) Tables() []*Table {
	els := d.body.SelectElements("w:tbl")
	out := make([]*Table, len(els))
	for i, el := range els {
		out[i] = &Table{el: el}
	}
	return out
}

// AddParagraph добавляет абзац в конец тела (перед w:sectPr), по рану на каждый текст.
func (d *Document) AddParagraph(texts ...string) *Paragraph {
	el := etree.NewElement("w:p")
	pos := len(d.body.Child)
	if sect := d.body.SelectElement("w:sectPr"); sect != nil {
		pos = sect.Index()
	}
	d.body.InsertChildAt(pos, el)
	p := &Paragraph{el: el}
	for _, t := range texts {
		p.AddRun(t)
	}
	return p
}

// textWidth — ширина области текста секции в twips.
func (d *Document) textWidth() int {
	const fallback = 9360
	sect := d.body.SelectElement("w:sectPr")
	if sect == nil {
		return fallback
	}
	w, ok := attrInt(sect.SelectElement("w:pgSz"), "w:w")
	if !ok {
		return fallback
	}
	mar := sect.SelectElement("w:pgMar")
	left, _ := attrInt(mar, "w:left")
	right, _ := attrInt(mar, "w:right")
	if w-left-right <= 0 {
		return fallback
	}
	return w - left - right
}

// Paragraph — абзац w:p.
type Paragraph struct {
	el *etree.Element
}

// Runs возвращает прямые раны абзаца.
func (p *Paragraph) Runs() []*Run {
	els := p.el.SelectElements("w:r")
	out := make([]*Run, len(els))
	for i, el := range els {
		out[i] = &Run{el: el}
	}
	return out
}

// Text — склейка текста всех ранов.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs() {
		sb.WriteString(r.Text())
	}
	return sb.String()
}

// AddRun добавляет ран с текстом в конец абзаца.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{el: p.el.CreateElement("w:r")}
	r.SetText(text)
	return r
}

// Clear удаляет всё содержимое абзаца, кроме w:pPr.
func (p *Paragraph) Clear() {
	for _, c := range p.el.ChildElements() {
		if c.FullTag() != "w:pPr" {
			p.el.RemoveChild(c)
		}
	}
}

func (p *Paragraph) SetAlignment(a Alignment) {
	ensureChild(ensureFirst(p.el, "w:pPr"), "w:jc", nil).CreateAttr("w:val", string(a))
}

func (p *Paragraph) Alignment() Alignment {
	if pPr := p.el.SelectElement("w:pPr"); pPr != nil {
		if jc := pPr.SelectElement("w:jc"); jc != nil {
			return Alignment(attrValue(jc, "w:val"))
		}
	}
	return ""
}

// InsertTableAfter вставляет таблицу сразу после абзаца.
func (p *Paragraph) InsertTableAfter(t *Table) {
	parent := p.el.Parent()
	if parent == nil {
		return
	}
	parent.InsertChildAt(p.el.Index()+1, t.el)
}

// NextTable возвращает таблицу, стоящую сразу за абзацем, или nil.
func (p *Paragraph) NextTable() *Table {
	parent := p.el.Parent()
	if parent == nil {
		return nil
	}
	for _, tok := range parent.Child[p.el.Index()+1:] {
		if el, ok := tok.(*etree.Element); ok {
			if el.FullTag() == "w:tbl" {
				return &Table{el: el}
			}
			return nil
		}
	}
	return nil
}

// Run — ран w:r: кусок текста с одним набором свойств.
type Run struct {
	el *etree.Element
}

// Text склеивает текст рана: w:t как есть, w:tab как "\t", w:br и w:cr как "\n".
func (r *Run) Text() string {
	var sb strings.Builder
	for _, c := range r.el.ChildElements() {
		switch c.FullTag() {
		case "w:t":
			sb.WriteString(c.Text())
		case "w:tab":
			sb.WriteByte('\t')
		case "w:br", "w:cr":
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func isRunContent(el *etree.Element) bool {
	switch el.FullTag() {
	case "w:t", "w:tab", "w:br", "w:cr":
		return true
	}
	return false
}

// SetText заменяет текст рана, собирая w:t, w:tab и w:br заново на месте
// прежнего содержимого. "\t" становится w:tab, "\n" занимает очередной
// прежний перенос (с его атрибутами, например w:type="page") или новый w:br.
// Свойства (w:rPr) и прочие дочерние элементы не трогаются.
func (r *Run) SetText(s string) {
	at := -1
	var breaks []*etree.Element
	for _, c := range r.el.ChildElements() {
		if !isRunContent(c) {
			continue
		}
		if at < 0 {
			at = c.Index()
		}
		if tag := c.FullTag(); tag == "w:br" || tag == "w:cr" {
			breaks = append(breaks, c)
		}
		r.el.RemoveChild(c)
	}
	if at < 0 {
		at = len(r.el.Child)
	}

	insert := func(el *etree.Element) {
		r.el.InsertChildAt(at, el)
		at++
	}
	var buf strings.Builder
	wrote := false
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		t := etree.NewElement("w:t")
		t.CreateAttr("xml:space", "preserve")
		t.SetText(buf.String())
		insert(t)
		buf.Reset()
		wrote = true
	}
	for _, ch := range s {
		switch ch {
		case '\t':
			flush()
			insert(etree.NewElement("w:tab"))
			wrote = true
		case '\n':
			flush()
			if len(breaks) > 0 {
				insert(breaks[0])
				breaks = breaks[1:]
			} else {
				insert(etree.NewElement("w:br"))
			}
			wrote = true
		default:
			buf.WriteRune(ch)
		}
	}
	flush()
	if !wrote {
		t := etree.NewElement("w:t")
		t.CreateAttr("xml:space", "preserve")
		insert(t)
	}
}

func (r *Run) props() *etree.Element { return ensureFirst(r.el, "w:rPr") }

func (r *Run) prop(tag string) *etree.Element {
	rPr := r.el.SelectElement("w:rPr")
	if rPr == nil {
		return nil
	}
	return rPr.SelectElement(tag)
}

func (r *Run) SetFontName(name string) {
	f := ensureChild(r.props(), "w:rFonts", rPrOrder)
	f.CreateAttr("w:ascii", name)
	f.CreateAttr("w:hAnsi", name)
}

func (r *Run) FontName() string {
	return attrValue(r.prop("w:rFonts"), "w:ascii")
}

// SetFontSize задаёт размер в пунктах (в XML хранится в полупунктах).
func (r *Run) SetFontSize(pt float64) {
	sz := ensureChild(r.props(), "w:sz", rPrOrder)
	sz.CreateAttr("w:val", strconv.Itoa(int(math.Round(pt*2))))
}

// FontSize возвращает размер в пунктах; false, если размер не задан.
func (r *Run) FontSize() (float64, bool) {
	half, ok := attrInt(r.prop("w:sz"), "w:val")
	if !ok {
		return 0, false
	}
	return float64(half) / 2, true
}

func (r *Run) SetBold(on bool)   { setOnOff(r.props(), "w:b", on) }
func (r *Run) SetItalic(on bool) { setOnOff(r.props(), "w:i", on) }
func (r *Run) Bold() bool        { return onOff(r.prop("w:b")) }
func (r *Run) Italic() bool      { return onOff(r.prop("w:i")) }

// SetUnderline с UnderlineNone убирает w:u совсем.
func (r *Run) SetUnderline(u Underline) {
	if u == UnderlineNone {
		removeChild(r.el.SelectElement("w:rPr"), "w:u")
		return
	}
	ensureChild(r.props(), "w:u", rPrOrder).CreateAttr("w:val", u.String())
}

func (r *Run) Underline() Underline {
	switch attrValue(r.prop("w:u"), "w:val") {
	case "single":
		return UnderlineSingle
	case "double":
		return UnderlineDouble
	}
	return UnderlineNone
}

// setOnOff пишет <w:b/> либо явное <w:b w:val="0"/>, перекрывающее стиль.
func setOnOff(rPr *etree.Element, tag string, on bool) {
	el := ensureChild(rPr, tag, rPrOrder)
	if on {
		el.RemoveAttr("w:val")
		return
	}
	el.CreateAttr("w:val", "0")
}
