// Package model defines the content value objects rendered by pagebridge.
//
// This package contains the following main types:
//   - Product: An immutable product description shown on a product page
//
// Design decision: We keep content types in their own package so that both
// the page package (which lays content out) and the config package (which
// loads content from catalog files) can share them without import cycles.
// Models know nothing about output formats; that is the render package's job.
package model
