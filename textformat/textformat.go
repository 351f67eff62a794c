// Package textformat provides the built-in plain-text string-import format:
// imported contents are bound into the document unchanged. Register
// New("txt"), New("text"), or New("md") as needed.
package textformat

import "github.com/vellum-lang/vellum"

// Ensures Format implements the format contract and string import.
var (
	_ vellum.Format         = (*Format)(nil)
	_ vellum.StringImporter = (*Format)(nil)
)

// Format imports raw text under one extension identifier.
type Format struct {
	ext string
}

// New creates a Format registered under ext. Empty ext defaults to "txt".
func New(ext string) *Format {
	if ext == "" {
		ext = "txt"
	}
	return &Format{ext: ext}
}

// Format implements vellum.Format.
func (f *Format) Format() string { return f.ext }

// StringImport binds contents under as, unchanged.
func (f *Format) StringImport(_ string, doc *vellum.Document, _, contents, as string) error {
	doc.SetBinding(as, contents)
	return nil
}
