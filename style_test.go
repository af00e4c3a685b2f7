package docxtemplar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nikitaxru/docxtemplar"
	"github.com/nikitaxru/docxtemplar/docx"
)

// recorder запоминает, какие свойства выставлялись
type recorder struct {
	calls   []string
	borders []docx.Side
}

func (r *recorder) SetFontName(string)                      { r.calls = append(r.calls, "name") }
func (r *recorder) SetFontSize(float64)                     { r.calls = append(r.calls, "size") }
func (r *recorder) SetBold(bool)                            { r.calls = append(r.calls, "bold") }
func (r *recorder) SetItalic(bool)                          { r.calls = append(r.calls, "italic") }
func (r *recorder) SetUnderline(docx.Underline)             { r.calls = append(r.calls, "underline") }
func (r *recorder) SetBorder(side docx.Side, _ docx.Border) { r.borders = append(r.borders, side) }

func TestApplyStyle_AbsentFontAttributesLeftUnset(t *testing.T) {
	rec := &recorder{}
	docxtemplar.ApplyStyle(rec, rec, docxtemplar.CellStyle{})

	assert.NotContains(t, rec.calls, "name")
	assert.NotContains(t, rec.calls, "size")
	assert.Empty(t, rec.borders)
}

func TestApplyStyle_BordersIndependentOfFont(t *testing.T) {
	rec := &recorder{}
	docxtemplar.ApplyStyle(rec, rec, docxtemplar.CellStyle{
		FontName: "Arial",
		FontSize: 10,
		Borders:  docxtemplar.Borders{Bottom: true, Left: true},
	})

	assert.Contains(t, rec.calls, "name")
	assert.Contains(t, rec.calls, "size")
	assert.Equal(t, []docx.Side{docx.Left, docx.Bottom}, rec.borders)
}
