package docx

import (
	"strconv"

	"github.com/beevik/etree"
)

// Side — сторона границы ячейки.
type Side int

const (
	Top Side = iota
	Left
	Bottom
	Right
)

// Sides — все четыре стороны в порядке схемы.
var Sides = []Side{Top, Left, Bottom, Right}

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Left:
		return "left"
	case Bottom:
		return "bottom"
	case Right:
		return "right"
	}
	return "side(" + strconv.Itoa(int(s)) + ")"
}

// Border — линия границы: w:val и толщина w:sz в восьмых долях пункта.
type Border struct {
	Style string
	Size  int
}

// SingleBorder — одинарная тонкая линия.
var SingleBorder = Border{Style: "single", Size: 4}

// Table — таблица w:tbl.
type Table struct {
	el *etree.Element
}

// NewTable создаёт таблицу rows×cols без привязки к месту в документе.
// Ширины колонок делят ширину текста секции поровну.
func (d *Document) NewTable(rows, cols int) *Table {
	width := d.textWidth()
	if cols > 0 {
		width /= cols
	}
	tbl := etree.NewElement("w:tbl")

	tblPr := tbl.CreateElement("w:tblPr")
	tblW := tblPr.CreateElement("w:tblW")
	tblW.CreateAttr("w:w", "0")
	tblW.CreateAttr("w:type", "auto")
	look := tblPr.CreateElement("w:tblLook")
	look.CreateAttr("w:val", "04A0")
	look.CreateAttr("w:firstRow", "1")
	look.CreateAttr("w:lastRow", "0")
	look.CreateAttr("w:firstColumn", "1")
	look.CreateAttr("w:lastColumn", "0")
	look.CreateAttr("w:noHBand", "0")
	look.CreateAttr("w:noVBand", "1")

	grid := tbl.CreateElement("w:tblGrid")
	for c := 0; c < cols; c++ {
		grid.CreateElement("w:gridCol").CreateAttr("w:w", strconv.Itoa(width))
	}
	for r := 0; r < rows; r++ {
		tr := tbl.CreateElement("w:tr")
		for c := 0; c < cols; c++ {
			tc := tr.CreateElement("w:tc")
			tcW := tc.CreateElement("w:tcPr").CreateElement("w:tcW")
			tcW.CreateAttr("w:w", strconv.Itoa(width))
			tcW.CreateAttr("w:type", "dxa")
			tc.CreateElement("w:p")
		}
	}
	return &Table{el: tbl}
}

func (t *Table) Rows() int { return len(t.el.SelectElements("w:tr")) }

// Cols — число колонок по сетке таблицы.
func (t *Table) Cols() int {
	grid := t.el.SelectElement("w:tblGrid")
	if grid == nil {
		return 0
	}
	return len(grid.SelectElements("w:gridCol"))
}

// Cell возвращает ячейку (row, col), считая с нуля, или nil вне диапазона.
func (t *Table) Cell(row, col int) *Cell {
	trs := t.el.SelectElements("w:tr")
	if row < 0 || row >= len(trs) {
		return nil
	}
	tcs := trs[row].SelectElements("w:tc")
	if col < 0 || col >= len(tcs) {
		return nil
	}
	return &Cell{el: tcs[col]}
}

// Cell — ячейка w:tc.
type Cell struct {
	el *etree.Element
}

// SetText заменяет содержимое ячейки одним абзацем с одним раном и возвращает этот ран.
func (c *Cell) SetText(s string) *Run {
	for _, ch := range c.el.ChildElements() {
		if ch.FullTag() != "w:tcPr" {
			c.el.RemoveChild(ch)
		}
	}
	p := &Paragraph{el: c.el.CreateElement("w:p")}
	return p.AddRun(s)
}

func (c *Cell) Paragraphs() []*Paragraph {
	els := c.el.SelectElements("w:p")
	out := make([]*Paragraph, len(els))
	for i, el := range els {
		out[i] = &Paragraph{el: el}
	}
	return out
}

func (c *Cell) Text() string {
	var s string
	for i, p := range c.Paragraphs() {
		if i > 0 {
			s += "\n"
		}
		s += p.Text()
	}
	return s
}

// SetBorder задаёт линию на одной стороне. Все стороны живут в одном w:tcBorders.
func (c *Cell) SetBorder(side Side, b Border) {
	tcPr := ensureFirst(c.el, "w:tcPr")
	borders := ensureChild(tcPr, "w:tcBorders", tcPrOrder)
	el := ensureChild(borders, "w:"+side.String(), tcBordersOrder)
	el.CreateAttr("w:val", b.Style)
	el.CreateAttr("w:sz", strconv.Itoa(b.Size))
}

// Border возвращает линию на стороне; false, если сторона не оформлена.
func (c *Cell) Border(side Side) (Border, bool) {
	tcPr := c.el.SelectElement("w:tcPr")
	if tcPr == nil {
		return Border{}, false
	}
	borders := tcPr.SelectElement("w:tcBorders")
	if borders == nil {
		return Border{}, false
	}
	el := borders.SelectElement("w:" + side.String())
	if el == nil {
		return Border{}, false
	}
	size, _ := attrInt(el, "w:sz")
	return Border{Style: attrValue(el, "w:val"), Size: size}, true
}
