package docxtemplar

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/nikitaxru/docxtemplar/docx"
)

// DefaultDirectiveSheet — лист с управляющей таблицей.
const DefaultDirectiveSheet = "Sheet1"

type options struct {
	directiveSheet string
	outputPath     string
	dryRun         bool
}

// Option настраивает Run.
type Option func(*options)

// WithDirectiveSheet задаёт лист с директивами вместо Sheet1.
func WithDirectiveSheet(name string) Option {
	return func(o *options) {
		if name != "" {
			o.directiveSheet = name
		}
	}
}

// WithOutputPath сохраняет результат в другой файл; по умолчанию документ перезаписывается.
func WithOutputPath(path string) Option {
	return func(o *options) { o.outputPath = path }
}

// WithDryRun применяет директивы в памяти, но ничего не сохраняет.
func WithDryRun() Option {
	return func(o *options) { o.dryRun = true }
}

// Run заполняет документ documentPath по директивам из книги workbookPath
// и сохраняет его. Сохранение — последний шаг: при любой фатальной ошибке
// файл на диске остаётся нетронутым.
//
// Фатальные ошибки: *MissingFileError, *MissingSheetError, а также ошибки
// открытия и сохранения файлов. Сбои отдельных директив попадают в Report.
func Run(documentPath, workbookPath string, opts ...Option) (*Report, error) {
	o := options{directiveSheet: DefaultDirectiveSheet}
	for _, opt := range opts {
		opt(&o)
	}
	dest := documentPath
	if o.outputPath != "" {
		dest = o.outputPath
	}

	log.Printf("📊 Начинаем заполнение документа...")
	log.Printf("📁 Документ: %s", documentPath)
	log.Printf("📁 Книга: %s", workbookPath)

	startTime := time.Now()

	for _, p := range []string{documentPath, workbookPath} {
		if err := checkExists(p); err != nil {
			log.Printf("❌ %v", err)
			return nil, err
		}
	}

	log.Printf("🔄 Загрузка документа...")
	doc, err := docx.Open(documentPath)
	if err != nil {
		log.Printf("❌ Ошибка загрузки документа: %v", err)
		return nil, fmt.Errorf("открытие документа %s: %w", documentPath, err)
	}

	log.Printf("🔄 Загрузка книги...")
	wb, err := OpenWorkbook(workbookPath)
	if err != nil {
		log.Printf("❌ Ошибка загрузки книги: %v", err)
		return nil, fmt.Errorf("открытие книги %s: %w", workbookPath, err)
	}
	defer wb.Close()

	directives, err := ReadDirectives(wb, o.directiveSheet)
	if err != nil {
		log.Printf("❌ Ошибка чтения директив: %v", err)
		return nil, err
	}
	log.Printf("📝 Директив к применению: %d", len(directives))

	log.Printf("🔄 Применение директив...")
	var report *Report
	err = guard(func() error {
		var rerr error
		report, rerr = Resolve(doc, wb, directives)
		return rerr
	})
	if err != nil {
		return report, err
	}
	log.Printf("✅ Директивы применены: %s", report)

	if o.dryRun {
		log.Printf("ℹ️ Пробный прогон: документ не сохраняется")
		return report, nil
	}

	log.Printf("💾 Сохранение файла...")
	if err := doc.Save(dest); err != nil {
		log.Printf("❌ Ошибка сохранения: %v", err)
		return report, fmt.Errorf("сохранение %s: %w", dest, err)
	}

	duration := time.Since(startTime)
	log.Printf("✅ Документ заполнен за %v", duration)
	log.Printf("📄 Результат сохранен в: %s", dest)

	return report, nil
}

func checkExists(path string) error {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &MissingFileError{Path: path}
	}
	return err
}
