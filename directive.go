package docxtemplar

import (
	"fmt"
	"regexp"

	"github.com/xuri/excelize/v2"
)

// Kind — тип директивы.
type Kind int

const (
	KindUnknown Kind = iota
	KindWord
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindTable:
		return "table"
	}
	return "unknown"
}

// Directive — одна строка управляющей таблицы: A — тег, B — тип,
// C — замена (для word), D — диапазон (для table).
type Directive struct {
	Row         int // номер строки в листе, с единицы
	Tag         string
	Kind        Kind
	Replacement string
	RangeRef    string
}

// ReadDirectives читает директивы с листа sheet, начиная со второй строки.
// Строки без тега или типа пропускаются. Директивы неизвестного типа
// возвращаются с KindUnknown, чтобы попасть в отчёт как пропущенные.
func ReadDirectives(wb *Workbook, sheet string) ([]Directive, error) {
	s, err := wb.Sheet(sheet)
	if err != nil {
		return nil, err
	}
	rows, err := s.Rows()
	if err != nil {
		return nil, fmt.Errorf("чтение директив с листа %s: %w", sheet, err)
	}
	var out []Directive
	for i := 1; i < len(rows); i++ {
		col := func(c int) string {
			if c < len(rows[i]) {
				return rows[i][c]
			}
			return ""
		}
		tag, kind := col(0), col(1)
		if tag == "" || normalizeKind(kind) == "" {
			continue
		}
		out = append(out, Directive{
			Row:         i + 1,
			Tag:         tag,
			Kind:        parseKind(kind),
			Replacement: col(2),
			RangeRef:    col(3),
		})
	}
	return out, nil
}

func parseKind(s string) Kind {
	switch normalizeKind(s) {
	case "word":
		return KindWord
	case "table":
		return KindTable
	}
	return KindUnknown
}

// Range — прямоугольный диапазон листа; индексы с нуля, границы включительно.
type Range struct {
	Sheet    string
	StartCol int
	StartRow int
	EndCol   int
	EndRow   int
}

func (r Range) Rows() int { return r.EndRow - r.StartRow + 1 }
func (r Range) Cols() int { return r.EndCol - r.StartCol + 1 }

// Имя листа: слово (буквы любого алфавита, цифры, _) либо имя в одинарных кавычках.
var rxRangeRef = regexp.MustCompile(`^(?:'((?:[^']|'')+)'|([\p{L}\p{N}_]+))!([A-Z]+[0-9]+):([A-Z]+[0-9]+)$`)

// splitRangeRef разбирает "[=]Лист!A1:B2" на имя листа и две ссылки на ячейки.
func splitRangeRef(ref string) (sheet, start, end string, ok bool) {
	m := rxRangeRef.FindStringSubmatch(normalizeRangeRef(ref))
	if m == nil {
		return "", "", "", false
	}
	sheet = m[2]
	if m[1] != "" {
		sheet = unquoteSheetName(m[1])
	}
	return sheet, m[3], m[4], true
}

// ParseCellRef переводит "C5" в индексы с нуля: колонка 2, строка 4.
func ParseCellRef(ref string) (col, row int, err error) {
	c, r, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		return 0, 0, fmt.Errorf("ссылка на ячейку %q: %w", ref, err)
	}
	return c - 1, r - 1, nil
}

// ParseRange разбирает полную ссылку на диапазон.
func ParseRange(ref string) (Range, error) {
	sheet, start, end, ok := splitRangeRef(ref)
	if !ok {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformedRange, ref)
	}
	return newRange(sheet, start, end)
}

func newRange(sheet, start, end string) (Range, error) {
	sc, sr, err := ParseCellRef(start)
	if err != nil {
		return Range{}, err
	}
	ec, er, err := ParseCellRef(end)
	if err != nil {
		return Range{}, err
	}
	r := Range{Sheet: sheet, StartCol: sc, StartRow: sr, EndCol: ec, EndRow: er}
	if r.Rows() <= 0 || r.Cols() <= 0 {
		return Range{}, fmt.Errorf("%w: %s:%s", ErrInvalidRange, start, end)
	}
	return r, nil
}
