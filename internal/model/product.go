package model

import "fmt"

// Product represents a product shown on a product page.
// All fields are set once by NewProduct and exposed through read-only
// accessors, so a Product can be shared by any number of pages.
type Product struct {
	// id identifies the product. It is appended to the databank link.
	id string

	// title is the product name rendered as the page title.
	title string

	// description is the body text of the product page.
	description string

	// imageURL points to the product image.
	imageURL string

	// price is the product price. It is carried but not rendered.
	price float64
}

// NewProduct creates a Product from its fields.
func NewProduct(id, title, description, imageURL string, price float64) *Product {
	return &Product{
		id:          id,
		title:       title,
		description: description,
		imageURL:    imageURL,
		price:       price,
	}
}

// ID returns the product identifier.
func (p *Product) ID() string { return p.id }

// Title returns the product title.
func (p *Product) Title() string { return p.title }

// Description returns the product description.
func (p *Product) Description() string { return p.description }

// ImageURL returns the URL of the product image.
func (p *Product) ImageURL() string { return p.imageURL }

// Price returns the product price.
func (p *Product) Price() float64 { return p.price }

// String returns a short form suitable for log output.
func (p *Product) String() string {
	return fmt.Sprintf("%s (%q)", p.id, p.title)
}
