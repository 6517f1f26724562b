package docgen

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Fragment is the named-field payload handed to the downstream document
// template: the raw narrative plus its HTML rendering.
type Fragment struct {
	Name string `json:"name"`
	Text string `json:"text"`
	HTML string `json:"html"`
}

// RenderNarrative converts a markdown narrative into the injectable
// document fragment. The field name is fixed by the document template.
func RenderNarrative(name, text string) Fragment {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	rendered := markdown.ToHTML([]byte(text), p, renderer)
	return Fragment{
		Name: name,
		Text: text,
		HTML: string(rendered),
	}
}
