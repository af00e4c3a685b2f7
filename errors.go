package docxtemplar

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound   = errors.New("файл не найден")
	ErrSheetNotFound  = errors.New("лист не найден")
	ErrMalformedRange = errors.New("ссылка на диапазон не похожа на Лист!A1:B2")
	ErrInvalidRange   = errors.New("пустой диапазон: конец раньше начала")
)

// MissingFileError — входной файл (документ или книга) отсутствует.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("файл %s не существует", e.Path)
}

func (e *MissingFileError) Is(target error) bool { return target == ErrFileNotFound }

// MissingSheetError — директива ссылается на лист, которого нет в книге.
// В отличие от прочих сбоев директив, прерывает весь прогон.
type MissingSheetError struct {
	Name string
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("лист %q не найден в книге", e.Name)
}

func (e *MissingSheetError) Is(target error) bool { return target == ErrSheetNotFound }

// guard выполняет fn и превращает панику внутри в обычную ошибку,
// чтобы сбой одного абзаца или директивы не ронял весь прогон.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("паника: %v", r)
		}
	}()
	return fn()
}
