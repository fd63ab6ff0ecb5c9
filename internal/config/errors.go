package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and File.Validate() so that
// callers can use errors.Is() while still getting a readable message.
var (
	// ErrInvalidFormat is returned when the requested output format is not a built-in format.
	ErrInvalidFormat = errors.New("invalid format: must be one of html, json, markdown")

	// ErrConflictingFormats is returned when --format and --all are both given.
	ErrConflictingFormats = errors.New("conflicting formats: --format and --all cannot be used together")

	// ErrInvalidConcurrency is returned when the concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrEmptyPageName is returned when a catalog page has no name.
	ErrEmptyPageName = errors.New("page name is required")

	// ErrDuplicatePage is returned when two catalog pages share a name.
	ErrDuplicatePage = errors.New("duplicate page name")

	// ErrUnknownPageKind is returned when a catalog page kind is neither simple nor product.
	ErrUnknownPageKind = errors.New("unknown page kind: must be simple or product")

	// ErrUnknownProduct is returned when a product page refers to a product missing from the catalog.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrUnknownPage is returned when a page name is not in the catalog.
	ErrUnknownPage = errors.New("unknown page")
)
