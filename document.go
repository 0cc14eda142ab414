package procuracao

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/brandquad/procuracao/assets"
)

const (
	DocumentTitle = "Procuração + Contrato de Empréstimo Consignado"
	SectionTitle  = "Dados do cliente"
	ClosingLine   = "Documento gerado automaticamente por Jul.IA."

	DefaultAuthor       = "Jul.IA"
	DefaultHeadingColor = "1F3864"
	DefaultFont         = "Calibri"

	DocxMediaType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	PdfMediaType  = "application/pdf"

	DefaultFilePerm = 0644
)

const (
	styleHeading1 = "Heading1"
	styleHeading2 = "Heading2"
)

// DocumentOptions controls the presentation of the generated document. The
// zero value produces the default look.
type DocumentOptions struct {
	// HeadingColor is six hex digits, as WordprocessingML writes it.
	HeadingColor string
	Font         string
	Author       string
	Created      time.Time
}

func (o *DocumentOptions) defaults() {
	if o.HeadingColor == "" {
		o.HeadingColor = DefaultHeadingColor
	}
	if o.Font == "" {
		o.Font = DefaultFont
	}
	if o.Author == "" {
		o.Author = DefaultAuthor
	}
	if o.Created.IsZero() {
		o.Created = time.Now()
	}
}

type paragraph struct {
	Style string
	Text  string
}

var docxTemplates = template.Must(template.New("docx").
	Funcs(template.FuncMap{"xml": xmlEscape}).
	ParseFS(assets.Docx, "*.tmpl"))

// fixed parts of the package, zip name -> embedded file
var docxStaticParts = []struct {
	name string
	file string
}{
	{"[Content_Types].xml", "content_types.xml"},
	{"_rels/.rels", "package_rels.xml"},
	{"word/_rels/document.xml.rels", "document_rels.xml"},
	{"docProps/app.xml", "app.xml"},
}

func documentParagraphs(fields *Fields) []paragraph {
	paragraphs := []paragraph{
		{Style: styleHeading1, Text: DocumentTitle},
		{Text: "Cliente: " + ExtractClientName(fields)},
		{Style: styleHeading2, Text: SectionTitle},
	}
	if fields != nil {
		for _, f := range fields.Entries() {
			paragraphs = append(paragraphs, paragraph{Text: fmt.Sprintf("%s: %s", Capitalize(f.Label), f.Value)})
		}
	}
	return append(paragraphs,
		paragraph{},
		paragraph{Text: ClosingLine},
	)
}

// WriteDocument renders fields into a .docx at path, replacing any existing
// file. The file appears at path only once it is complete.
func WriteDocument(fields *Fields, path string, opts DocumentOptions) error {
	opts.defaults()

	dir := filepath.Dir(path)
	if err := PrepareFolders(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*.docx")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if err = writeDocx(tmp, fields, opts); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err = os.Chmod(tmpPath, DefaultFilePerm); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err = os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

func writeDocx(w io.Writer, fields *Fields, opts DocumentOptions) error {
	zw := zip.NewWriter(w)

	for _, part := range docxStaticParts {
		data, err := fs.ReadFile(assets.Docx, part.file)
		if err != nil {
			return err
		}
		if err = writePart(zw, part.name, data); err != nil {
			return err
		}
	}

	rendered := []struct {
		name string
		tmpl string
		data any
	}{
		{"word/document.xml", "document.xml.tmpl", struct{ Paragraphs []paragraph }{documentParagraphs(fields)}},
		{"word/styles.xml", "styles.xml.tmpl", struct{ HeadingColor, Font string }{opts.HeadingColor, opts.Font}},
		{"docProps/core.xml", "core.xml.tmpl", struct{ Title, Subject, Author, Created string }{
			Title:   DocumentTitle,
			Subject: ExtractClientName(fields),
			Author:  opts.Author,
			Created: opts.Created.UTC().Format(time.RFC3339),
		}},
	}
	for _, part := range rendered {
		var buf bytes.Buffer
		if err := docxTemplates.ExecuteTemplate(&buf, part.tmpl, part.data); err != nil {
			return err
		}
		if err := writePart(zw, part.name, buf.Bytes()); err != nil {
			return err
		}
	}

	return zw.Close()
}

func writePart(zw *zip.Writer, name string, data []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	return err
}

func xmlEscape(s string) (string, error) {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return "", err
	}
	return b.String(), nil
}
