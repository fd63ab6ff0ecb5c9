package render

import (
	"errors"
	"reflect"
)

// Renderer defines how content fragments are written in one output format.
// Every method is a pure function of its arguments.
type Renderer interface {
	// RenderTitle renders the page title.
	RenderTitle(title string) string

	// RenderTextBlock renders a block of body text.
	RenderTextBlock(text string) string

	// RenderImage renders an image reference.
	RenderImage(url string) string

	// RenderLink renders a hyperlink with the given label.
	RenderLink(url, label string) string

	// RenderHeader renders the opening of a document.
	// Formats without opening markup return an empty string.
	RenderHeader() string

	// RenderFooter renders the closing of a document.
	// Formats without closing markup return an empty string.
	RenderFooter() string

	// RenderParts composes already rendered fragments, in order,
	// into the final document.
	RenderParts(parts []string) string
}

// Named is a Renderer that can be looked up by format name.
type Named interface {
	Renderer

	// Name returns the format name, e.g. "html".
	Name() string
}

// Format is the name of an output format.
type Format string

// Built-in formats.
const (
	// FormatHTML selects HTMLRenderer.
	FormatHTML Format = "html"
	// FormatJSON selects JSONRenderer.
	FormatJSON Format = "json"
	// FormatMarkdown selects MarkdownRenderer.
	FormatMarkdown Format = "markdown"
)

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns the built-in formats in a stable order.
func Formats() []Format {
	return []Format{FormatHTML, FormatJSON, FormatMarkdown}
}

// Rendering errors.
var (
	// ErrNilRenderer is returned when a nil renderer is supplied where one is required.
	ErrNilRenderer = errors.New("renderer is required")

	// ErrEmptyName is returned when registering a renderer whose Name is empty.
	ErrEmptyName = errors.New("renderer name is required")

	// ErrDuplicateFormat is returned when a format name is registered twice.
	ErrDuplicateFormat = errors.New("format already registered")

	// ErrUnknownFormat is returned when no renderer is registered for a format name.
	ErrUnknownFormat = errors.New("unknown format")
)

// IsNil reports whether r is nil, including a typed nil pointer held in the interface.
func IsNil(r Renderer) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
