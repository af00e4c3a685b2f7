package docxtemplar

import (
	"strings"
)

// normalizeKind приводит тип директивы к нижнему регистру: "Word", " TABLE " → "word", "table".
func normalizeKind(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeRangeRef приводит ссылку на диапазон к виду Лист!A1:B2:
// - убирает ведущий "=" (ссылка, введённая как формула)
// - убирает маркеры абсолютной адресации "$"
// - обрезает пробелы по краям
func normalizeRangeRef(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "=")
	if i := strings.LastIndex(s, "!"); i >= 0 {
		s = s[:i+1] + strings.ReplaceAll(s[i+1:], "$", "")
	}
	return s
}

// unquoteSheetName: удвоенная кавычка внутри имени листа означает одну.
func unquoteSheetName(s string) string {
	return strings.ReplaceAll(s, "''", "'")
}
