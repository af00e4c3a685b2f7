package docxtemplar

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nikitaxru/docxtemplar/docx"
)

// literalMatcher ищет тег как обычную подстроку, с учётом регистра.
// Символы тега ничего не значат: "{{A.B}}" и "[*]" ищутся буквально.
type literalMatcher struct {
	token string
}

func (m literalMatcher) in(s string) bool { return strings.Contains(s, m.token) }

func (m literalMatcher) replace(s, repl string) (string, int) {
	n := strings.Count(s, m.token)
	if n == 0 {
		return s, 0
	}
	return strings.ReplaceAll(s, m.token, repl), n
}

// ReplaceText заменяет tag на replacement во всех абзацах документа и
// возвращает число замен.
//
// Замена делается внутри каждого рана отдельно: тег, разрезанный между
// двумя ранами (например, когда часть тега выделена жирным), не находится.
// Форматирование рана при замене не меняется.
//
// Если replacement сам содержит tag, повторный вызов снова найдёт его:
// операция не идемпотентна.
//
// Сбой в одном абзаце логируется и не прерывает обработку остальных;
// такие сбои возвращаются вместе через errors.Join.
func ReplaceText(doc *docx.Document, tag, replacement string) (int, error) {
	if tag == "" {
		return 0, nil
	}
	m := literalMatcher{token: tag}
	total := 0
	var errs []error
	for i, p := range doc.Paragraphs() {
		var n int
		err := guard(func() error {
			n = paragraphReplacer(p, m, replacement)
			return nil
		})
		if err != nil {
			log.Printf("⚠️ Абзац %d: ошибка замены %q: %v", i+1, tag, err)
			errs = append(errs, fmt.Errorf("абзац %d: %w", i+1, err))
			continue
		}
		total += n
	}
	return total, errors.Join(errs...)
}

var paragraphReplacer = replaceInParagraph

func replaceInParagraph(p *docx.Paragraph, m literalMatcher, repl string) int {
	if !m.in(p.Text()) {
		return 0
	}
	count := 0
	for _, r := range p.Runs() {
		text, n := m.replace(r.Text(), repl)
		if n == 0 {
			continue
		}
		r.SetText(text)
		count += n
	}
	return count
}
