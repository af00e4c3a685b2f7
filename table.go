package docxtemplar

import (
	"fmt"

	"github.com/nikitaxru/docxtemplar/docx"
)

// SourceSheet — лист, из которого копируются значения и оформление.
// Координаты с нуля.
type SourceSheet interface {
	Value(col, row int) (string, error)
	Style(col, row int) (CellStyle, error)
}

// ExpandTable находит первый абзац с тегом, очищает его и ставит сразу за ним
// таблицу из диапазона startRef:endRef листа sheet. Каждая ячейка получает
// текст источника (выравнивание влево) и его шрифт с границами.
//
// Возвращает false без ошибки, если абзаца с тегом нет. Таблица собирается
// целиком до того, как документ трогается: при ошибке чтения листа документ
// остаётся прежним.
func ExpandTable(doc *docx.Document, sheet SourceSheet, startRef, endRef, tag string) (bool, error) {
	expanded := false
	err := guard(func() error {
		rng, err := newRange("", startRef, endRef)
		if err != nil {
			return err
		}
		anchor := findAnchor(doc, tag)
		if anchor == nil {
			return nil
		}
		tbl, err := buildTable(doc, sheet, rng)
		if err != nil {
			return err
		}
		anchor.Clear()
		anchor.InsertTableAfter(tbl)
		expanded = true
		return nil
	})
	return expanded, err
}

func findAnchor(doc *docx.Document, tag string) *docx.Paragraph {
	m := literalMatcher{token: tag}
	for _, p := range doc.Paragraphs() {
		if m.in(p.Text()) {
			return p
		}
	}
	return nil
}

func buildTable(doc *docx.Document, sheet SourceSheet, rng Range) (*docx.Table, error) {
	tbl := doc.NewTable(rng.Rows(), rng.Cols())
	for i := 0; i < rng.Rows(); i++ {
		for j := 0; j < rng.Cols(); j++ {
			col, row := rng.StartCol+j, rng.StartRow+i
			val, err := sheet.Value(col, row)
			if err != nil {
				return nil, err
			}
			st, err := sheet.Style(col, row)
			if err != nil {
				return nil, err
			}
			cell := tbl.Cell(i, j)
			if cell == nil {
				return nil, fmt.Errorf("ячейка таблицы (%d, %d) вне сетки", i, j)
			}
			run := cell.SetText(val)
			cell.Paragraphs()[0].SetAlignment(docx.AlignLeft)
			ApplyStyle(cell, run, st)
		}
	}
	return tbl, nil
}
