package services

import (
	"html"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

// markdownHint matches headings, emphasis and list markers at line starts.
var markdownHint = regexp.MustCompile(`(?m)^\s{0,3}(#{1,6}\s|[-*+]\s|\d+\.\s)|\*\*[^*]+\*\*`)

// LooksLikeMarkdown reports whether text carries any markdown markers.
func LooksLikeMarkdown(text string) bool {
	return markdownHint.MatchString(text)
}

// htmlRenderer drops raw HTML blocks and inline tags from the source.
var htmlRenderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
	Flags: blackfriday.CommonHTMLFlags | blackfriday.SkipHTML,
})

// RenderMarkdown converts markdown-looking text to HTML and escapes anything else.
// Malformed markup renders as best it can; nothing here fails.
func RenderMarkdown(text string) string {
	if !LooksLikeMarkdown(text) {
		return html.EscapeString(text)
	}
	out := blackfriday.Run([]byte(text),
		blackfriday.WithExtensions(blackfriday.CommonExtensions),
		blackfriday.WithRenderer(htmlRenderer))
	return strings.TrimSpace(string(out))
}
