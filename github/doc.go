// Package github makes GitHub repositories importable from a vellum
// document. It provides a Library (scope "GitHub") whose addFormat call
// registers a repository-backed Format at runtime, and the Format itself,
// which fetches file contents over the GitHub contents API and re-dispatches
// them through the document's generic string import, selecting the parser by
// file extension:
//
//	doc.LoadLibrary(github.Library{})
//	// from a document: GitHub.addFormat('dev-formata-io', 'stof');
//	// then: import github:stof "web/deno.json" as Import;
package github
