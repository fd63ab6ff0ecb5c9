// Package main provides the entry point for the pagebridge CLI.
//
// pagebridge renders catalog pages (simple text pages and product pages)
// into HTML, JSON or Markdown. Page structure and output format are chosen
// independently.
//
// Usage:
//
//	pagebridge demo
//	pagebridge render [page...] --format json
//
// See --help for all available options.
package main

// main is the entry point for pagebridge.
func main() {
	Execute()
}
