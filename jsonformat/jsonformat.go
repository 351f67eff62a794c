// Package jsonformat provides the built-in "json" string-import format:
// imported contents are decoded as JSON and bound into the document.
package jsonformat

import (
	"errors"
	"fmt"

	"github.com/vellum-lang/vellum"

	"github.com/goccy/go-json"
)

// ErrInvalidJSON indicates the imported contents are not valid JSON.
var ErrInvalidJSON = errors.New("jsonformat: invalid JSON")

// Ensures Format implements the format contract and string import.
var (
	_ vellum.Format         = Format{}
	_ vellum.StringImporter = Format{}
)

// Format imports JSON text. Registered under the "json" extension.
type Format struct{}

// Format implements vellum.Format.
func (Format) Format() string { return "json" }

// StringImport decodes contents and binds the result under as. The document
// is untouched when decoding fails.
func (Format) StringImport(_ string, doc *vellum.Document, _, contents, as string) error {
	var v any
	if err := json.Unmarshal([]byte(contents), &v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	doc.SetBinding(as, v)
	return nil
}
