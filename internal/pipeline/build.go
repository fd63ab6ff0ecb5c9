package pipeline

import (
	"fmt"

	"github.com/nao1215/pagebridge/internal/config"
	"github.com/nao1215/pagebridge/internal/page"
	"github.com/nao1215/pagebridge/internal/render"
)

// Build creates the page described by entry, rendered with r.
// Product pages look their product up in catalog.
func Build(catalog *config.File, entry config.PageEntry, r render.Renderer) (page.Page, error) {
	switch entry.Kind {
	case config.PageKindSimple:
		p, err := page.NewSimplePage(r, entry.Title, entry.Content)
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", entry.Name, err)
		}
		return p, nil
	case config.PageKindProduct:
		product, err := catalog.Product(entry.Product)
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", entry.Name, err)
		}
		p, err := page.NewProductPage(r, product)
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", entry.Name, err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("page %q: %w (got %q)", entry.Name, config.ErrUnknownPageKind, entry.Kind)
	}
}
