// Package render converts content fragments into output formats.
//
// This package contains renderers for different output formats:
//   - HTMLRenderer: HTML markup
//   - JSONRenderer: JSON key/value fragments
//   - MarkdownRenderer: Markdown built with the nao1215/markdown library
//
// Design decision: We separate rendering from page structure (which lives
// in the page package) so that either side can change on its own. A page
// only knows which fragments it contains and in which order; a renderer only
// knows how to write a single fragment and how to compose rendered fragments
// into a document. Adding a format never touches the page package.
//
// Renderers are stateless. A single instance may be shared by any number of
// pages and goroutines.
//
// Renderers do not escape their input. Callers that render untrusted text
// must sanitize it first.
package render
