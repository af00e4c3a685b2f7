package docxtemplar_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/nikitaxru/docxtemplar"
	"github.com/nikitaxru/docxtemplar/docx"
)

// TableSuite — разворачивание тега в таблицу из диапазона книги
type TableSuite struct {
	suite.Suite
	f     *excelize.File
	sheet *docxtemplar.Sheet
}

func TestTableSuite(t *testing.T) {
	suite.Run(t, new(TableSuite))
}

func (s *TableSuite) SetupTest() {
	s.f = excelize.NewFile()
	addDataSheet(s.T(), s.f, "Sheet2", [][]interface{}{
		{"Товар", "Кол-во", "Цена"},
		{"Болт", 10, 2.5},
		{"Гайка", nil, 1},
	})
	var err error
	s.sheet, err = docxtemplar.NewWorkbook(s.f).Sheet("Sheet2")
	s.Require().NoError(err)
}

// TestDimensions — A1:C2 даёт 2 строки × 3 колонки, ячейки берутся из соответствующих мест
func (s *TableSuite) TestDimensions() {
	d := docx.New()
	d.AddParagraph("Вступление")
	anchor := d.AddParagraph("{{DATA}}")

	ok, err := docxtemplar.ExpandTable(d, s.sheet, "A1", "C2", "{{DATA}}")
	s.Require().NoError(err)
	s.Require().True(ok)

	tbl := anchor.NextTable()
	s.Require().NotNil(tbl)
	s.Assert().Equal(2, tbl.Rows())
	s.Assert().Equal(3, tbl.Cols())
	s.Assert().Equal("Товар", tbl.Cell(0, 0).Text())
	s.Assert().Equal("Цена", tbl.Cell(0, 2).Text())
	s.Assert().Equal("10", tbl.Cell(1, 1).Text())
	s.Assert().Equal("2.5", tbl.Cell(1, 2).Text())

	// якорь очищен, но остался на месте
	s.Assert().Equal("", anchor.Text())
	s.Assert().Len(d.Paragraphs(), 2)
	s.Assert().Equal("Вступление", d.Paragraphs()[0].Text())
}

// TestOffsetRange — диапазон не от A1
func (s *TableSuite) TestOffsetRange() {
	d := docx.New()
	anchor := d.AddParagraph("{{DATA}}")

	ok, err := docxtemplar.ExpandTable(d, s.sheet, "B2", "C3", "{{DATA}}")
	s.Require().NoError(err)
	s.Require().True(ok)

	tbl := anchor.NextTable()
	s.Require().NotNil(tbl)
	s.Assert().Equal("10", tbl.Cell(0, 0).Text())
	s.Assert().Equal("1", tbl.Cell(1, 1).Text())
}

// TestNullCell — пустая ячейка даёт пустой текст
func (s *TableSuite) TestNullCell() {
	d := docx.New()
	anchor := d.AddParagraph("{{DATA}}")

	_, err := docxtemplar.ExpandTable(d, s.sheet, "B3", "B3", "{{DATA}}")
	s.Require().NoError(err)

	cell := anchor.NextTable().Cell(0, 0)
	s.Assert().Equal("", cell.Text())
	s.Require().Len(cell.Paragraphs(), 1)
	s.Assert().Len(cell.Paragraphs()[0].Runs(), 1, "ран создаётся и для пустой ячейки")
}

// TestCellFormatting — выравнивание влево, шрифт и подчёркивание переносятся
func (s *TableSuite) TestCellFormatting() {
	styleCell(s.T(), s.f, "Sheet2", "A1", &excelize.Style{
		Font: &excelize.Font{Family: "Arial", Size: 14, Bold: true, Italic: true, Underline: "double"},
	})
	styleCell(s.T(), s.f, "Sheet2", "B1", &excelize.Style{
		Font: &excelize.Font{Family: "Arial", Size: 9, Underline: "singleAccounting"},
	})
	d := docx.New()
	anchor := d.AddParagraph("{{DATA}}")

	_, err := docxtemplar.ExpandTable(d, s.sheet, "A1", "B1", "{{DATA}}")
	s.Require().NoError(err)
	tbl := anchor.NextTable()

	a1 := tbl.Cell(0, 0).Paragraphs()[0]
	s.Assert().Equal(docx.AlignLeft, a1.Alignment())
	r := a1.Runs()[0]
	s.Assert().Equal("Arial", r.FontName())
	size, ok := r.FontSize()
	s.Assert().True(ok)
	s.Assert().Equal(14.0, size)
	s.Assert().True(r.Bold())
	s.Assert().True(r.Italic())
	s.Assert().Equal(docx.UnderlineDouble, r.Underline())

	b1 := tbl.Cell(0, 1).Paragraphs()[0].Runs()[0]
	s.Assert().False(b1.Bold())
	s.Assert().Equal(docx.UnderlineNone, b1.Underline(), "бухгалтерское подчёркивание не переносится")
}

// TestBorderPropagation — только верхняя линия в источнике → только верхняя в документе
func (s *TableSuite) TestBorderPropagation() {
	styleCell(s.T(), s.f, "Sheet2", "A1", &excelize.Style{
		Border: []excelize.Border{{Type: "top", Color: "000000", Style: 5}},
	})
	styleCell(s.T(), s.f, "Sheet2", "B1", &excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 2},
			{Type: "top", Color: "000000", Style: 1},
		},
	})
	d := docx.New()
	anchor := d.AddParagraph("{{DATA}}")

	_, err := docxtemplar.ExpandTable(d, s.sheet, "A1", "C1", "{{DATA}}")
	s.Require().NoError(err)
	tbl := anchor.NextTable()

	a1 := tbl.Cell(0, 0)
	for _, side := range docx.Sides {
		b, ok := a1.Border(side)
		if side == docx.Top {
			s.Assert().True(ok)
			s.Assert().Equal(docx.SingleBorder, b, "толстая линия источника становится тонкой одинарной")
			continue
		}
		s.Assert().False(ok, side.String())
	}
	for _, side := range docx.Sides {
		_, ok := tbl.Cell(0, 1).Border(side)
		s.Assert().True(ok, side.String())
		_, ok = tbl.Cell(0, 2).Border(side)
		s.Assert().False(ok, side.String())
	}
}

// TestNoAnchor — без абзаца с тегом ничего не происходит
func (s *TableSuite) TestNoAnchor() {
	d := docx.New()
	d.AddParagraph("просто текст")

	ok, err := docxtemplar.ExpandTable(d, s.sheet, "A1", "B2", "{{DATA}}")
	s.Require().NoError(err)
	s.Assert().False(ok)
	s.Assert().Empty(d.Tables())
	s.Assert().Equal("просто текст", d.Paragraphs()[0].Text())
}

// TestOnlyFirstAnchor — разворачивается только первый абзац с тегом
func (s *TableSuite) TestOnlyFirstAnchor() {
	d := docx.New()
	first := d.AddParagraph("см. {{DATA}}")
	second := d.AddParagraph("{{DATA}}")

	ok, err := docxtemplar.ExpandTable(d, s.sheet, "A1", "A1", "{{DATA}}")
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Assert().NotNil(first.NextTable())
	s.Assert().Nil(second.NextTable())
	s.Assert().Equal("{{DATA}}", second.Text())
	s.Assert().Len(d.Tables(), 1)
}

// TestSourceFault — ошибка чтения листа не трогает документ
func (s *TableSuite) TestSourceFault() {
	for _, panics := range []bool{false, true} {
		d := docx.New()
		anchor := d.AddParagraph("{{DATA}}")
		src := &fakeSheet{values: map[[2]int]string{{0, 0}: "ok"}, failAt: &[2]int{1, 0}, panic: panics}

		ok, err := docxtemplar.ExpandTable(d, src, "A1", "B1", "{{DATA}}")
		s.Assert().Error(err)
		s.Assert().False(ok)
		s.Assert().Equal("{{DATA}}", anchor.Text())
		s.Assert().Empty(d.Tables())
	}
}

// TestInvertedRange — конец раньше начала — ошибка, документ не меняется
func (s *TableSuite) TestInvertedRange() {
	d := docx.New()
	d.AddParagraph("{{DATA}}")

	ok, err := docxtemplar.ExpandTable(d, s.sheet, "C2", "A1", "{{DATA}}")
	s.Assert().ErrorIs(err, docxtemplar.ErrInvalidRange)
	s.Assert().False(ok)
	s.Assert().Empty(d.Tables())
}
