// Package docxtemplar заполняет шаблон .docx по управляющей таблице из .xlsx.
//
// Каждая строка листа Sheet1 — директива: тег, тип (word|table), замена
// и ссылка на диапазон. Директивы word заменяют тег текстом внутри ранов,
// не трогая форматирование; директивы table заменяют абзац с тегом таблицей,
// скопированной из диапазона книги вместе со шрифтами и границами.
// Внешний API: Run (файлы на диске) и Resolve (уже открытые документ и книга).
package docxtemplar

import (
	"fmt"
	"log"

	"github.com/nikitaxru/docxtemplar/docx"
)

// Outcome — итог одной директивы.
type Outcome int

const (
	Applied Outcome = iota
	NoMatch
	Skipped
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case NoMatch:
		return "no-match"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// DirectiveResult — результат применения директивы. Err заполнен для
// Failed, а для Skipped содержит причину пропуска, если она есть.
type DirectiveResult struct {
	Directive    Directive
	Outcome      Outcome
	Replacements int
	Err          error
}

// Report — результаты всех директив в порядке строк.
type Report struct {
	Results []DirectiveResult
}

func (r *Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

func (r *Report) String() string {
	return fmt.Sprintf("применено %d, без совпадений %d, пропущено %d, с ошибками %d",
		r.Count(Applied), r.Count(NoMatch), r.Count(Skipped), r.Count(Failed))
}

// Resolve применяет директивы к документу строго по порядку.
//
// Поздние директивы видят документ уже изменённым ранними. Единственная
// фатальная ошибка: лист из директивы table отсутствует в книге
// (*MissingSheetError): тогда обработка прекращается и возвращается
// частичный отчёт. Все прочие сбои изолированы в своей директиве.
func Resolve(doc *docx.Document, wb *Workbook, directives []Directive) (*Report, error) {
	report := &Report{}
	for _, d := range directives {
		res := DirectiveResult{Directive: d}
		switch d.Kind {
		case KindWord:
			n, err := ReplaceText(doc, d.Tag, d.Replacement)
			res.Replacements = n
			res.Err = err
			switch {
			case n > 0:
				res.Outcome = Applied
			case err != nil:
				res.Outcome = Failed
			default:
				res.Outcome = NoMatch
			}
		case KindTable:
			if err := resolveTable(doc, wb, d, &res); err != nil {
				log.Printf("❌ Строка %d: %v", d.Row, err)
				report.Results = append(report.Results, res)
				return report, err
			}
		default:
			res.Outcome = Skipped
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

func resolveTable(doc *docx.Document, wb *Workbook, d Directive, res *DirectiveResult) error {
	if d.RangeRef == "" {
		res.Outcome = Skipped
		return nil
	}
	sheetName, start, end, ok := splitRangeRef(d.RangeRef)
	if !ok {
		res.Outcome = Skipped
		res.Err = fmt.Errorf("%w: %q", ErrMalformedRange, d.RangeRef)
		return nil
	}
	log.Printf("📐 Строка %d: диапазон таблицы %s %s:%s", d.Row, sheetName, start, end)
	sheet, err := wb.Sheet(sheetName)
	if err != nil {
		res.Outcome = Failed
		res.Err = err
		return err
	}
	expanded, err := ExpandTable(doc, sheet, start, end, d.Tag)
	switch {
	case err != nil:
		log.Printf("⚠️ Строка %d: таблица %q пропущена: %v", d.Row, d.Tag, err)
		res.Outcome = Failed
		res.Err = err
	case expanded:
		res.Outcome = Applied
		res.Replacements = 1
	default:
		res.Outcome = NoMatch
	}
	return nil
}
