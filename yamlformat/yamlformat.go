// Package yamlformat provides the built-in YAML string-import format.
// Register New("yaml") and New("yml") to cover both extensions.
package yamlformat

import (
	"errors"
	"fmt"

	"github.com/vellum-lang/vellum"

	"gopkg.in/yaml.v3"
)

// ErrInvalidYAML indicates the imported contents are not valid YAML.
var ErrInvalidYAML = errors.New("yamlformat: invalid YAML")

// Ensures Format implements the format contract and string import.
var (
	_ vellum.Format         = (*Format)(nil)
	_ vellum.StringImporter = (*Format)(nil)
)

// Format imports YAML text under one extension identifier.
type Format struct {
	ext string
}

// New creates a Format registered under ext. Empty ext defaults to "yaml".
func New(ext string) *Format {
	if ext == "" {
		ext = "yaml"
	}
	return &Format{ext: ext}
}

// Format implements vellum.Format.
func (f *Format) Format() string { return f.ext }

// StringImport decodes contents and binds the result under as. The document
// is untouched when decoding fails.
func (f *Format) StringImport(_ string, doc *vellum.Document, _, contents, as string) error {
	var v any
	if err := yaml.Unmarshal([]byte(contents), &v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}
	doc.SetBinding(as, v)
	return nil
}
