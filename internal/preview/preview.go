// Package preview renders destination output to browsable HTML so a rendition
// can be reviewed locally before anything leaves the machine.
package preview

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Options tune the markdown engine used for markdown destinations.
type Options struct {
	HardWraps bool
}

// Renderer turns per-destination renditions into standalone HTML pages. The
// renderer is stateless and safe for reuse.
type Renderer struct {
	md goldmark.Markdown
}

// New constructs a preview renderer with GFM extensions enabled.
func New(opts Options) *Renderer {
	rendererOptions := []renderer.Option{gmhtml.WithUnsafe()}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, gmhtml.WithHardWraps())
	}

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(rendererOptions...),
		),
	}
}

// Render converts one rendition into a full HTML page. The note destination
// already carries HTML and passes through untouched; every other destination
// is treated as markdown.
func (r *Renderer) Render(destination, title, rendition string) (string, error) {
	body, err := r.renderBody(destination, rendition)
	if err != nil {
		return "", err
	}
	return page(destination, title, body), nil
}

func (r *Renderer) renderBody(destination, rendition string) (string, error) {
	if destination == "note" {
		return rendition, nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(rendition), &buf); err != nil {
		return "", fmt.Errorf("preview: render %s: %w", destination, err)
	}
	return buf.String(), nil
}

func page(destination, title, body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"ja\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s [%s]</title>\n", html.EscapeString(title), html.EscapeString(destination))
	b.WriteString("<style>body{max-width:48rem;margin:2rem auto;font-family:sans-serif;line-height:1.7;padding:0 1rem}</style>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
