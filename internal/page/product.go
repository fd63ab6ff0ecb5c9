package page

import (
	"github.com/nao1215/pagebridge/internal/model"
	"github.com/nao1215/pagebridge/internal/render"
)

const (
	// DatabankBaseURL is the prefix of the product link. The product ID is appended as is.
	DatabankBaseURL = "https://www.starwars.com/databank"

	// DatabankLinkLabel is the label of the product link.
	DatabankLinkLabel = "Enlace a StarWars databank"
)

// ProductPage is a page describing a single product.
type ProductPage struct {
	base

	product *model.Product
}

// NewProductPage creates a ProductPage for p rendered with r.
func NewProductPage(r render.Renderer, p *model.Product) (*ProductPage, error) {
	b, err := newBase(r)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNilProduct
	}
	return &ProductPage{
		base:    b,
		product: p,
	}, nil
}

// Product returns the product shown on the page.
func (p *ProductPage) Product() *model.Product { return p.product }

// View renders header, title, description, image, databank link and footer.
func (p *ProductPage) View() string {
	r := p.renderer
	return r.RenderParts([]string{
		r.RenderHeader(),
		r.RenderTitle(p.product.Title()),
		r.RenderTextBlock(p.product.Description()),
		r.RenderImage(p.product.ImageURL()),
		r.RenderLink(DatabankBaseURL+p.product.ID(), DatabankLinkLabel),
		r.RenderFooter(),
	})
}
