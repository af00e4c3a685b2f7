package docxtemplar

import (
	"github.com/xuri/excelize/v2"

	"github.com/nikitaxru/docxtemplar/docx"
)

// CellStyle — то, что переносится из ячейки книги в ячейку документа.
// Пустое имя шрифта и нулевой размер означают «не задано».
type CellStyle struct {
	FontName  string
	FontSize  float64
	Bold      bool
	Italic    bool
	Underline docx.Underline
	Borders   Borders
}

// Borders — наличие любой линии на стороне. Толщина и узор не переносятся.
type Borders struct {
	Top, Bottom, Left, Right bool
}

// FontSetter — ран документа, принимающий шрифт.
type FontSetter interface {
	SetFontName(string)
	SetFontSize(pt float64)
	SetBold(bool)
	SetItalic(bool)
	SetUnderline(docx.Underline)
}

// BorderSetter — ячейка документа, принимающая границы.
type BorderSetter interface {
	SetBorder(side docx.Side, b docx.Border)
}

// ApplyStyle переносит шрифт на ран и границы на ячейку. Шрифт и границы
// независимы: незаданные атрибуты шрифта не трогаются, сторона без линии
// в источнике остаётся без оформления.
func ApplyStyle(cell BorderSetter, run FontSetter, st CellStyle) {
	if st.FontName != "" {
		run.SetFontName(st.FontName)
	}
	if st.FontSize > 0 {
		run.SetFontSize(st.FontSize)
	}
	run.SetBold(st.Bold)
	run.SetItalic(st.Italic)
	run.SetUnderline(st.Underline)

	for _, side := range docx.Sides {
		if st.Borders.has(side) {
			cell.SetBorder(side, docx.SingleBorder)
		}
	}
}

func (b Borders) has(side docx.Side) bool {
	switch side {
	case docx.Top:
		return b.Top
	case docx.Left:
		return b.Left
	case docx.Bottom:
		return b.Bottom
	case docx.Right:
		return b.Right
	}
	return false
}

func cellStyleFromExcel(st *excelize.Style) CellStyle {
	var out CellStyle
	if st == nil {
		return out
	}
	if f := st.Font; f != nil {
		out.FontName = f.Family
		out.FontSize = f.Size
		out.Bold = f.Bold
		out.Italic = f.Italic
		out.Underline = underlineFromExcel(f.Underline)
	}
	for _, b := range st.Border {
		if b.Style == 0 {
			continue
		}
		switch b.Type {
		case "top":
			out.Borders.Top = true
		case "bottom":
			out.Borders.Bottom = true
		case "left":
			out.Borders.Left = true
		case "right":
			out.Borders.Right = true
		}
	}
	return out
}

// underlineFromExcel: single и double переходят как есть, всё остальное
// (бухгалтерские варианты, none, пусто) дают отсутствие подчёркивания.
func underlineFromExcel(u string) docx.Underline {
	switch u {
	case "single":
		return docx.UnderlineSingle
	case "double":
		return docx.UnderlineDouble
	}
	return docx.UnderlineNone
}
