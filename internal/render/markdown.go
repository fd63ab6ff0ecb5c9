package render

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"
)

// imageAltText is the alternative text used for rendered images.
const imageAltText = "image"

// MarkdownRenderer renders pages as GitHub Flavored Markdown.
//
// Design decision: We use the nao1215/markdown library rather than
// concatenating syntax by hand. Each fragment is built on its own builder so
// that fragments stay independent strings, as the Renderer contract requires.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Name returns "markdown".
func (MarkdownRenderer) Name() string { return FormatMarkdown.String() }

// RenderTitle renders the title as a level one heading.
func (MarkdownRenderer) RenderTitle(title string) string {
	return fragment(func(md *markdown.Markdown) { md.H1(title) })
}

// RenderTextBlock renders text as a plain paragraph.
func (MarkdownRenderer) RenderTextBlock(text string) string {
	return fragment(func(md *markdown.Markdown) { md.PlainText(text) })
}

// RenderImage renders an inline image.
func (MarkdownRenderer) RenderImage(url string) string {
	return markdown.Image(imageAltText, url)
}

// RenderLink renders an inline link.
func (MarkdownRenderer) RenderLink(url, label string) string {
	return markdown.Link(label, url)
}

// RenderHeader returns an empty string. Markdown has no document preamble.
func (MarkdownRenderer) RenderHeader() string { return "" }

// RenderFooter returns an empty string.
func (MarkdownRenderer) RenderFooter() string { return "" }

// RenderParts drops empty parts and writes the rest as paragraphs
// separated by blank lines, ending with a newline.
func (MarkdownRenderer) RenderParts(parts []string) string {
	kept := nonEmpty(parts)
	if len(kept) == 0 {
		return ""
	}

	md := markdown.NewMarkdown(io.Discard)
	for i, p := range kept {
		if i > 0 {
			md.PlainText("")
		}
		md.PlainText(p)
	}
	return strings.TrimRight(md.String(), "\r\n") + "\n"
}

// fragment runs build on a fresh builder and returns its output
// without trailing line breaks.
func fragment(build func(md *markdown.Markdown)) string {
	md := markdown.NewMarkdown(io.Discard)
	build(md)
	return strings.TrimRight(md.String(), "\r\n")
}
