package config

import (
	"fmt"

	"github.com/nao1215/pagebridge/internal/model"
)

// Page kinds accepted in a catalog.
const (
	// PageKindSimple is a page with a title and a text block.
	PageKindSimple = "simple"
	// PageKindProduct is a page describing one catalog product.
	PageKindProduct = "product"
)

// ProductEntry is a product as written in the catalog file.
type ProductEntry struct {
	// ID is appended to the databank link. It may be empty.
	ID string `yaml:"id,omitempty"`

	// Title is the product name.
	Title string `yaml:"title"`

	// Description is the product body text.
	Description string `yaml:"description,omitempty"`

	// Image is the product image URL.
	Image string `yaml:"image,omitempty"`

	// Price is the product price.
	Price float64 `yaml:"price,omitempty"`
}

// PageEntry is a page as written in the catalog file.
type PageEntry struct {
	// Name identifies the page on the command line.
	Name string `yaml:"name"`

	// Kind is PageKindSimple or PageKindProduct.
	Kind string `yaml:"kind"`

	// Title and Content are used by simple pages.
	Title   string `yaml:"title,omitempty"`
	Content string `yaml:"content,omitempty"`

	// Product is the key of a product in File.Products, used by product pages.
	Product string `yaml:"product,omitempty"`
}

// File represents the structure of a catalog file.
type File struct {
	// Products maps product keys to product definitions.
	Products map[string]ProductEntry `yaml:"products,omitempty"`

	// Pages lists the pages in render order.
	Pages []PageEntry `yaml:"pages,omitempty"`
}

// Validate checks that page names are unique, kinds are known and every
// product page refers to an existing product.
func (cf *File) Validate() error {
	seen := make(map[string]bool, len(cf.Pages))
	for i, p := range cf.Pages {
		if p.Name == "" {
			return fmt.Errorf("page #%d: %w", i+1, ErrEmptyPageName)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicatePage, p.Name)
		}
		seen[p.Name] = true

		switch p.Kind {
		case PageKindSimple:
		case PageKindProduct:
			if _, ok := cf.Products[p.Product]; !ok {
				return fmt.Errorf("page %q: %w: %q", p.Name, ErrUnknownProduct, p.Product)
			}
		default:
			return fmt.Errorf("page %q: %w (got %q)", p.Name, ErrUnknownPageKind, p.Kind)
		}
	}
	return nil
}

// Product builds the product stored under key.
func (cf *File) Product(key string) (*model.Product, error) {
	e, ok := cf.Products[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProduct, key)
	}
	return model.NewProduct(e.ID, e.Title, e.Description, e.Image, e.Price), nil
}

// Page returns the page entry named name.
func (cf *File) Page(name string) (PageEntry, error) {
	for _, p := range cf.Pages {
		if p.Name == name {
			return p, nil
		}
	}
	return PageEntry{}, fmt.Errorf("%w: %q", ErrUnknownPage, name)
}

// PageNames returns the page names in catalog order.
func (cf *File) PageNames() []string {
	names := make([]string, len(cf.Pages))
	for i, p := range cf.Pages {
		names[i] = p.Name
	}
	return names
}

// DefaultCatalog returns the built-in catalog used when no catalog file is found.
// It holds a welcome page and one product page.
func DefaultCatalog() *File {
	return &File{
		Products: map[string]ProductEntry{
			"episode-1": {
				Title:       "Star Wars, Episodio 1",
				Description: "Hace mucho tiempo en una galaxia muy, muy lejana ...",
				Image:       "https://i1.wp.com/codigoespagueti.com/wp-content/uploads/2021/05/star-wars-logo.jpg",
				Price:       39.95,
			},
		},
		Pages: []PageEntry{
			{
				Name:    "home",
				Kind:    PageKindSimple,
				Title:   "Principal",
				Content: "Bienvenido a nuestro sitio web!",
			},
			{
				Name:    "episode-1",
				Kind:    PageKindProduct,
				Product: "episode-1",
			},
		},
	}
}
