// Команда docxtemplar заполняет шаблон .docx по директивам из .xlsx.
//
//	docxtemplar --doc template.docx --xlsx data.xlsx [--sheet Sheet1] [--out result.docx] [--dry-run]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nikitaxru/docxtemplar"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		docPath  string
		xlsxPath string
		sheet    string
		outPath  string
		dryRun   bool
	)
	cmd := &cobra.Command{
		Use:   "docxtemplar",
		Short: "Заполнить шаблон Word значениями и таблицами из Excel",
		Long: `Заполняет документ .docx по управляющей таблице из книги .xlsx.

Лист директив (по умолчанию Sheet1), начиная со второй строки:
  A  тег в документе, например {{CLIENT}}
  B  тип: word или table (регистр не важен)
  C  текст замены (для word)
  D  диапазон (для table), например =Sheet2!A1:C5

Документ перезаписывается на месте, если не указан --out.

Переменные окружения:
  DOCXTEMPLAR_SHEET  лист директив по умолчанию
  DOCXTEMPLAR_OUT    путь результата по умолчанию`,
		Example: `  docxtemplar --doc contract.docx --xlsx contract.xlsx
  docxtemplar --doc contract.docx --xlsx contract.xlsx --out filled.docx`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []docxtemplar.Option{
				docxtemplar.WithDirectiveSheet(sheet),
				docxtemplar.WithOutputPath(outPath),
			}
			if dryRun {
				opts = append(opts, docxtemplar.WithDryRun())
			}
			report, err := docxtemplar.Run(docPath, xlsxPath, opts...)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "❌ Ошибка: %v\n", err)
				return err
			}
			for _, res := range report.Results {
				if res.Outcome == docxtemplar.Failed {
					fmt.Fprintf(cmd.ErrOrStderr(), "⚠️ строка %d (%s): %v\n", res.Directive.Row, res.Directive.Tag, res.Err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Документ успешно заполнен: %s\n", report)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&docPath, "doc", "", "путь к шаблону .docx")
	f.StringVar(&xlsxPath, "xlsx", "", "путь к книге .xlsx с директивами")
	f.StringVar(&sheet, "sheet", getenv("DOCXTEMPLAR_SHEET", docxtemplar.DefaultDirectiveSheet), "лист с директивами")
	f.StringVar(&outPath, "out", getenv("DOCXTEMPLAR_OUT", ""), "куда сохранить результат (по умолчанию — поверх --doc)")
	f.BoolVar(&dryRun, "dry-run", false, "применить директивы без сохранения")
	_ = cmd.MarkFlagRequired("doc")
	_ = cmd.MarkFlagRequired("xlsx")
	return cmd
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
