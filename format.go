package vellum

// Format is an installable content handler. The identifier returned by
// Format is the key the handler is registered under in a Document and the
// name import statements resolve it by (e.g. "json", "yaml", "github:stof").
//
// A Format that only declares its identifier is inert; import behavior comes
// from the optional capability interfaces below, asserted at dispatch time.
type Format interface {
	Format() string
}

// StringImporter is optional. Formats that can parse a string of their kind
// and bind the result into the document implement it; Document.StringImport
// dispatches to it by extension.
type StringImporter interface {
	StringImport(pid string, doc *Document, extension, contents, as string) error
}

// FileImporter is optional. Formats that resolve a file path themselves
// (local or remote) implement it; Document.FileImport dispatches to it by the
// declared format identifier.
//
// format is the identifier the import statement named; most implementations
// ignore it since the registry already resolved it.
type FileImporter interface {
	FileImport(pid string, doc *Document, format, fullPath, extension, as string) error
}

// Library is an installable set of operations callable from a running
// document under a scope name (e.g. "GitHub" for GitHub.addFormat).
type Library interface {
	Scope() string
	Call(pid string, doc *Document, name string, args []Value) (Value, error)
}
