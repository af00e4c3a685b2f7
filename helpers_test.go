package docxtemplar_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nikitaxru/docxtemplar"
	"github.com/nikitaxru/docxtemplar/docx"
)

// directiveRow — строка Sheet1: тег, тип, замена, диапазон
type directiveRow [4]interface{}

// writeDirectives заполняет Sheet1 заголовком и строками директив.
func writeDirectives(t *testing.T, f *excelize.File, rows ...directiveRow) {
	t.Helper()
	for c, h := range []string{"Tag", "Type", "Replacement", "Range"} {
		addr, _ := excelize.CoordinatesToCellName(c+1, 1)
		require.NoError(t, f.SetCellValue("Sheet1", addr, h))
	}
	for i, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			addr, _ := excelize.CoordinatesToCellName(c+1, i+2)
			require.NoError(t, f.SetCellValue("Sheet1", addr, v))
		}
	}
}

// addDataSheet создаёт лист name и заполняет его значениями построчно, начиная с A1.
func addDataSheet(t *testing.T, f *excelize.File, name string, rows [][]interface{}) {
	t.Helper()
	_, err := f.NewSheet(name)
	require.NoError(t, err)
	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			addr, _ := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, f.SetCellValue(name, addr, v))
		}
	}
}

func styleCell(t *testing.T, f *excelize.File, sheet, addr string, st *excelize.Style) {
	t.Helper()
	id, err := f.NewStyle(st)
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, addr, addr, id))
}

func saveWorkbook(t *testing.T, f *excelize.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func saveDocument(t *testing.T, d *docx.Document) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.docx")
	require.NoError(t, d.Save(path))
	return path
}

// fakeSheet — источник для ExpandTable без книги
type fakeSheet struct {
	values map[[2]int]string
	styles map[[2]int]docxtemplar.CellStyle
	failAt *[2]int
	panic  bool
}

func (s *fakeSheet) Value(col, row int) (string, error) {
	if s.failAt != nil && *s.failAt == [2]int{col, row} {
		if s.panic {
			panic("сломанная ячейка")
		}
		return "", fmt.Errorf("ячейка (%d, %d) не читается", col, row)
	}
	return s.values[[2]int{col, row}], nil
}

func (s *fakeSheet) Style(col, row int) (docxtemplar.CellStyle, error) {
	return s.styles[[2]int{col, row}], nil
}
