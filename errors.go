package vellum

import "errors"

// Sentinel errors for document dispatch operations.
// All use prefix "vellum:" for identification. Callers should use errors.Is.
var (
	// ErrFormatNotFound indicates no format is registered under the requested identifier.
	ErrFormatNotFound = errors.New("vellum: no format registered for identifier")
	// ErrLibraryNotFound indicates the requested library scope is not loaded in the document.
	ErrLibraryNotFound = errors.New("vellum: library scope not loaded")
	// ErrImportUnsupported indicates the resolved format does not provide the requested import capability.
	ErrImportUnsupported = errors.New("vellum: format does not support this import")
)
