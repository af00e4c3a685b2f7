// Package docx — минимальная привязка к .docx: абзацы, раны, таблицы и границы ячеек.
//
// Пакет держит word/document.xml как DOM (etree) и переписывает только его при
// сохранении; остальные части архива копируются как есть.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
)

const documentPart = "word/document.xml"

type part struct {
	name   string
	method uint16
	data   []byte
}

// Document — открытый документ. Изменяется на месте, без копий.
type Document struct {
	parts []part
	xml   *etree.Document
	body  *etree.Element
}

// Open читает документ с диска целиком в память.
func Open(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Read(bytes.NewReader(content), int64(len(content)))
}

// Read разбирает архив .docx.
func Read(r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("чтение zip: %w", err)
	}
	d := &Document{}
	var main []byte
	for _, f := range zr.File {
		data, err := readZipFile(f)
		if err != nil {
			return nil, fmt.Errorf("часть %s: %w", f.Name, err)
		}
		if f.Name == documentPart {
			main = data
		}
		d.parts = append(d.parts, part{name: f.Name, method: f.Method, data: data})
	}
	if main == nil {
		return nil, fmt.Errorf("не docx: отсутствует %s", documentPart)
	}
	if err := d.parseMain(main); err != nil {
		return nil, err
	}
	return d, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (d *Document) parseMain(data []byte) error {
	x := etree.NewDocument()
	if err := x.ReadFromBytes(data); err != nil {
		return fmt.Errorf("разбор %s: %w", documentPart, err)
	}
	root := x.Root()
	if root == nil {
		return fmt.Errorf("%s: пустой документ", documentPart)
	}
	body := root.SelectElement("w:body")
	if body == nil {
		return fmt.Errorf("%s: нет w:body", documentPart)
	}
	d.xml = x
	d.body = body
	return nil
}

// Write сериализует документ в zip. Порядок частей сохраняется.
func (d *Document) Write(w io.Writer) error {
	main, err := d.xml.WriteToBytes()
	if err != nil {
		return fmt.Errorf("сериализация %s: %w", documentPart, err)
	}
	zw := zip.NewWriter(w)
	for _, p := range d.parts {
		data := p.data
		if p.name == documentPart {
			data = main
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: p.name, Method: p.method})
		if err != nil {
			return err
		}
		if _, err := fw.Write(data); err != nil {
			return err
		}
	}
	return zw.Close()
}

// Save пишет во временный файл рядом с целевым и переименовывает его поверх.
// До переименования файл на диске не трогается. Права существующего файла
// сохраняются, новый файл получает 0644.
func (d *Document) Save(path string) error {
	perm := fs.FileMode(0o644)
	if st, err := os.Stat(path); err == nil {
		perm = st.Mode().Perm()
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".docxtemplar-*.docx")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if err := d.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// New создаёт пустой документ A4 с одной секцией.
func New() *Document {
	d := &Document{parts: []part{
		{name: "[Content_Types].xml", method: zip.Deflate, data: []byte(contentTypesXML)},
		{name: "_rels/.rels", method: zip.Deflate, data: []byte(relsXML)},
		{name: documentPart, method: zip.Deflate},
	}}
	if err := d.parseMain([]byte(emptyDocumentXML)); err != nil {
		panic(err)
	}
	return d
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

const emptyDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body><w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="1134" w:right="850" w:bottom="1134" w:left="1701" w:header="708" w:footer="708" w:gutter="0"/></w:sectPr></w:body></w:document>`
