package docxtemplar

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook — книга с директивами и данными для таблиц.
type Workbook struct {
	f *excelize.File
}

// OpenWorkbook открывает .xlsx.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &Workbook{f: f}, nil
}

// NewWorkbook оборачивает уже открытый excelize.File.
func NewWorkbook(f *excelize.File) *Workbook { return &Workbook{f: f} }

func (w *Workbook) Close() error { return w.f.Close() }

// Sheet ищет лист по точному имени. Отсутствие листа — *MissingSheetError.
func (w *Workbook) Sheet(name string) (*Sheet, error) {
	for _, s := range w.f.GetSheetList() {
		if s == name {
			return &Sheet{f: w.f, name: name}, nil
		}
	}
	return nil, &MissingSheetError{Name: name}
}

// Sheet — лист книги. Координаты в методах считаются с нуля.
type Sheet struct {
	f    *excelize.File
	name string
}

func (s *Sheet) Name() string { return s.name }

func (s *Sheet) Rows() ([][]string, error) { return s.f.GetRows(s.name) }

// Value возвращает отображаемое значение ячейки; пустая ячейка — "".
func (s *Sheet) Value(col, row int) (string, error) {
	addr, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return "", err
	}
	v, err := s.f.GetCellValue(s.name, addr)
	if err != nil {
		return "", fmt.Errorf("%s!%s: %w", s.name, addr, err)
	}
	return v, nil
}

// Style возвращает шрифт и границы ячейки.
func (s *Sheet) Style(col, row int) (CellStyle, error) {
	addr, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return CellStyle{}, err
	}
	id, err := s.f.GetCellStyle(s.name, addr)
	if err != nil {
		return CellStyle{}, fmt.Errorf("%s!%s: %w", s.name, addr, err)
	}
	st, err := s.f.GetStyle(id)
	if err != nil {
		return CellStyle{}, fmt.Errorf("%s!%s: стиль %d: %w", s.name, addr, id, err)
	}
	return cellStyleFromExcel(st), nil
}
