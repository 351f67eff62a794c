// Package vellum provides the core of a small document-data engine: a
// document handle with a runtime-registerable format table, a library table
// for script-callable operations, and a generic string-import dispatcher that
// selects a parser by file extension. Format implementations (JSON, YAML,
// remote repositories) live in subpackages and are loaded into a Document at
// runtime.
package vellum
