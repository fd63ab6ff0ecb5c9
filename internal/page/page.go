package page

import (
	"errors"

	"github.com/nao1215/pagebridge/internal/render"
)

// ErrNilRenderer is returned when a page is built with, or switched to, a nil renderer.
// It is the same value as render.ErrNilRenderer so either can be used with errors.Is.
var ErrNilRenderer = render.ErrNilRenderer

// ErrNilProduct is returned when a product page is built without a product.
var ErrNilProduct = errors.New("product is required")

// Page is a renderable page.
type Page interface {
	// View renders the page with the renderer currently attached.
	// Each call renders again; nothing is cached.
	View() string

	// ChangeRenderer attaches a different renderer. Subsequent View calls
	// use it. A nil renderer is rejected and the current one stays attached.
	ChangeRenderer(r render.Renderer) error

	// Renderer returns the renderer currently attached.
	Renderer() render.Renderer
}

// base holds the renderer reference shared by every page kind.
type base struct {
	renderer render.Renderer
}

// newBase creates a base with the given renderer.
func newBase(r render.Renderer) (base, error) {
	if render.IsNil(r) {
		return base{}, ErrNilRenderer
	}
	return base{renderer: r}, nil
}

// ChangeRenderer replaces the attached renderer.
func (b *base) ChangeRenderer(r render.Renderer) error {
	if render.IsNil(r) {
		return ErrNilRenderer
	}
	b.renderer = r
	return nil
}

// Renderer returns the attached renderer.
func (b *base) Renderer() render.Renderer {
	return b.renderer
}

var (
	_ Page = (*SimplePage)(nil)
	_ Page = (*ProductPage)(nil)
)
