package vellum

import (
	"fmt"
	"sort"
	"sync"
)

// Document is a host-document handle: the format registry, the library
// table, and the bindings imports populate. Formats and libraries loaded into
// a document are visible to all of its scopes from that point forward,
// including nested and future imports.
//
// Registry mutation is a single insert-or-replace guarded by an RWMutex, so
// concurrent imports may read while a registration is in flight. Format
// implementations are expected to be immutable after construction.
type Document struct {
	mu       sync.RWMutex
	formats  map[string]Format
	libs     map[string]Library
	bindings map[string]any
}

// NewDocument creates an empty document with no formats or libraries loaded.
func NewDocument() *Document {
	return &Document{
		formats:  make(map[string]Format),
		libs:     make(map[string]Library),
		bindings: make(map[string]any),
	}
}

// LoadFormat installs f under its identifier, replacing any format already
// registered under the same identifier.
func (d *Document) LoadFormat(f Format) {
	d.mu.Lock()
	d.formats[f.Format()] = f
	d.mu.Unlock()
}

// GetFormat returns the format registered under id.
func (d *Document) GetFormat(id string) (Format, bool) {
	d.mu.RLock()
	f, ok := d.formats[id]
	d.mu.RUnlock()
	return f, ok
}

// Formats returns the registered identifiers, sorted.
func (d *Document) Formats() []string {
	d.mu.RLock()
	ids := make([]string, 0, len(d.formats))
	for id := range d.formats {
		ids = append(ids, id)
	}
	d.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

// LoadLibrary installs l under its scope, replacing any library already
// loaded under the same scope.
func (d *Document) LoadLibrary(l Library) {
	d.mu.Lock()
	d.libs[l.Scope()] = l
	d.mu.Unlock()
}

// GetLibrary returns the library loaded under scope.
func (d *Document) GetLibrary(scope string) (Library, bool) {
	d.mu.RLock()
	l, ok := d.libs[scope]
	d.mu.RUnlock()
	return l, ok
}

// CallLib invokes name in the library loaded under scope. This is the entry
// point for script calls like GitHub.addFormat.
func (d *Document) CallLib(pid, scope, name string, args []Value) (Value, error) {
	lib, ok := d.GetLibrary(scope)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLibraryNotFound, scope)
	}
	return lib.Call(pid, d, name, args)
}

// StringImport parses contents with the format registered under extension
// and binds the result under as. This is the generic dispatcher remote
// formats re-enter after fetching: from here on, fetched text is
// indistinguishable from a local file of that extension.
func (d *Document) StringImport(pid, extension, contents, as string) error {
	f, ok := d.GetFormat(extension)
	if !ok {
		return fmt.Errorf("%w: %q", ErrFormatNotFound, extension)
	}
	imp, ok := f.(StringImporter)
	if !ok {
		return fmt.Errorf("%w: %q has no string import", ErrImportUnsupported, extension)
	}
	return imp.StringImport(pid, d, extension, contents, as)
}

// FileImport dispatches an import statement: resolve the declared format
// identifier (e.g. "github:stof") and hand it the path to import under as.
func (d *Document) FileImport(pid, format, fullPath, extension, as string) error {
	f, ok := d.GetFormat(format)
	if !ok {
		return fmt.Errorf("%w: %q", ErrFormatNotFound, format)
	}
	imp, ok := f.(FileImporter)
	if !ok {
		return fmt.Errorf("%w: %q has no file import", ErrImportUnsupported, format)
	}
	return imp.FileImport(pid, d, format, fullPath, extension, as)
}

// SetBinding stores an imported value under name. The empty name imports
// into the document root: a map payload is merged key by key into the
// existing bindings, later imports winning per key.
func (d *Document) SetBinding(name string, v any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if name == "" {
		if m, ok := v.(map[string]any); ok {
			for k, val := range m {
				d.bindings[k] = val
			}
			return
		}
	}
	d.bindings[name] = v
}

// Binding returns the value bound under name.
func (d *Document) Binding(name string) (any, bool) {
	d.mu.RLock()
	v, ok := d.bindings[name]
	d.mu.RUnlock()
	return v, ok
}
