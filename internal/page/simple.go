package page

import "github.com/nao1215/pagebridge/internal/render"

// SimplePage is a page made of a title and a block of text.
type SimplePage struct {
	base

	title   string
	content string
}

// NewSimplePage creates a SimplePage rendered with r.
func NewSimplePage(r render.Renderer, title, content string) (*SimplePage, error) {
	b, err := newBase(r)
	if err != nil {
		return nil, err
	}
	return &SimplePage{
		base:    b,
		title:   title,
		content: content,
	}, nil
}

// Title returns the page title.
func (p *SimplePage) Title() string { return p.title }

// Content returns the page text.
func (p *SimplePage) Content() string { return p.content }

// View renders header, title, text block and footer.
func (p *SimplePage) View() string {
	r := p.renderer
	return r.RenderParts([]string{
		r.RenderHeader(),
		r.RenderTitle(p.title),
		r.RenderTextBlock(p.content),
		r.RenderFooter(),
	})
}
