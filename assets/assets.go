package assets

import (
	"embed"
	"html/template"
	"io/fs"
	"log"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

//go:embed docx
var docxFS embed.FS

// Pages holds index.html, docx.html and pdf.html plus their shared layout.
var Pages *template.Template

// Static is served under /static/.
var Static fs.FS

// Docx holds the fixed parts of the Word package and the templates for the
// variable ones.
var Docx fs.FS

func init() {
	var err error
	Pages, err = template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		log.Fatal(err)
	}
	if Static, err = fs.Sub(staticFS, "static"); err != nil {
		log.Fatal(err)
	}
	if Docx, err = fs.Sub(docxFS, "docx"); err != nil {
		log.Fatal(err)
	}
}
