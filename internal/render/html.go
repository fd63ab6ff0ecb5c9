package render

import "strings"

// htmlSeparator is placed between rendered HTML fragments.
const htmlSeparator = "<br>"

// HTMLRenderer renders pages as HTML markup.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Name returns "html".
func (HTMLRenderer) Name() string { return FormatHTML.String() }

// RenderTitle renders the title as a level one heading.
func (HTMLRenderer) RenderTitle(title string) string {
	return "<h1>" + title + "</h1>"
}

// RenderTextBlock renders text inside a div with class "text".
func (HTMLRenderer) RenderTextBlock(text string) string {
	return "<div class='text'>" + text + "</div>"
}

// RenderImage renders an img element.
func (HTMLRenderer) RenderImage(url string) string {
	return "<img src='" + url + "'>"
}

// RenderLink renders an anchor element.
func (HTMLRenderer) RenderLink(url, label string) string {
	return "<a href='" + url + "'>" + label + "</a>"
}

// RenderHeader opens the html and body elements.
func (HTMLRenderer) RenderHeader() string {
	return "<html><body>"
}

// RenderFooter closes the body and html elements.
func (HTMLRenderer) RenderFooter() string {
	return "</body></html>"
}

// RenderParts joins every part with <br>.
// Empty parts are kept; HTML fragments are never empty.
func (HTMLRenderer) RenderParts(parts []string) string {
	return strings.Join(parts, htmlSeparator)
}
