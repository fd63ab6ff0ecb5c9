package render

import "strings"

// JSONRenderer renders pages as JSON-like key/value fragments.
//
// Fragments are written verbatim with no quoting of their input, so the
// output is only valid JSON when the content contains no quotes or
// backslashes.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Name returns "json".
func (JSONRenderer) Name() string { return FormatJSON.String() }

// RenderTitle renders a "title" member.
func (JSONRenderer) RenderTitle(title string) string {
	return `"title": "` + title + `"`
}

// RenderTextBlock renders a "text" member.
func (JSONRenderer) RenderTextBlock(text string) string {
	return `"text": "` + text + `"`
}

// RenderImage renders an "img" member.
func (JSONRenderer) RenderImage(url string) string {
	return `"img": "` + url + `"`
}

// RenderLink renders a "link" member holding href and title.
func (JSONRenderer) RenderLink(url, label string) string {
	return `"link": {"href": "` + url + `", "title": "` + label + `"}`
}

// RenderHeader returns an empty string. JSON has no opening markup.
func (JSONRenderer) RenderHeader() string { return "" }

// RenderFooter returns an empty string. JSON has no closing markup.
func (JSONRenderer) RenderFooter() string { return "" }

// RenderParts drops empty parts, joins the rest with ",<br>" and wraps
// the result in braces.
func (JSONRenderer) RenderParts(parts []string) string {
	return "{\n" + strings.Join(nonEmpty(parts), ",<br>") + "<br>}"
}

// nonEmpty returns the parts that are not empty strings, keeping their order.
func nonEmpty(parts []string) []string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return kept
}
