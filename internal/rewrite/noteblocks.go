package rewrite

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// NoteCodePlaceholder replaces fenced code blocks on note, which has no code
// rendering. Readers are pointed at the blog for the full listing.
const NoteCodePlaceholder = "（コードはブログ本文をご覧ください）"

// NoteRenderer re-emits markdown as the note editor's fixed element
// vocabulary. The editor only accepts a small set of block elements, each
// carrying a unique token as both name and id attribute; tokens are generated
// fresh per block and never reused across blocks or Render calls.
//
// Inline policy on note: bold survives, italic degrades to plain text, code
// spans keep their text without markers, links become native hyperlinks.
type NoteRenderer struct {
	md       goldmark.Markdown
	newToken func() string
}

// NewNoteRenderer constructs a renderer with random uuid-derived block
// tokens. The renderer is stateless between calls and safe to reuse.
func NewNoteRenderer() *NoteRenderer {
	return &NoteRenderer{
		md: goldmark.New(goldmark.WithExtensions(extension.Table)),
		newToken: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")
		},
	}
}

// Render parses markdown and emits one note block element per top-level
// markdown block.
func (r *NoteRenderer) Render(markdown string) string {
	source := []byte(markdown)
	doc := r.md.Parser().Parse(text.NewReader(source))

	var out strings.Builder
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		r.renderBlock(&out, node, source)
	}
	return strings.TrimRight(out.String(), "\n")
}

func (r *NoteRenderer) attrs() string {
	token := r.newToken()
	return fmt.Sprintf(`name="%s" id="%s"`, token, token)
}

func (r *NoteRenderer) renderBlock(out *strings.Builder, node ast.Node, source []byte) {
	switch n := node.(type) {
	case *ast.Heading:
		tag := "h4"
		if n.Level <= 2 {
			tag = "h3"
		}
		fmt.Fprintf(out, "<%s %s>", tag, r.attrs())
		r.renderChildren(out, n, source)
		fmt.Fprintf(out, "</%s>\n", tag)

	case *ast.Paragraph:
		if img, ok := soleImage(n); ok {
			r.renderImage(out, img, source)
			return
		}
		fmt.Fprintf(out, "<p %s>", r.attrs())
		r.renderChildren(out, n, source)
		out.WriteString("</p>\n")

	case *ast.TextBlock:
		fmt.Fprintf(out, "<p %s>", r.attrs())
		r.renderChildren(out, n, source)
		out.WriteString("</p>\n")

	case *ast.List:
		tag := "ul"
		if n.IsOrdered() {
			tag = "ol"
		}
		fmt.Fprintf(out, "<%s %s>", tag, r.attrs())
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			out.WriteString("<li>")
			r.renderListItem(out, item, source)
			out.WriteString("</li>")
		}
		fmt.Fprintf(out, "</%s>\n", tag)

	case *ast.Blockquote:
		fmt.Fprintf(out, "<blockquote %s>", r.attrs())
		first := true
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			if !first {
				out.WriteString("<br>")
			}
			r.renderChildren(out, child, source)
			first = false
		}
		out.WriteString("</blockquote>\n")

	case *ast.ThematicBreak:
		fmt.Fprintf(out, "<hr %s>\n", r.attrs())

	case *ast.FencedCodeBlock:
		fmt.Fprintf(out, "<p %s>%s</p>\n", r.attrs(), EscapeText(NoteCodePlaceholder))

	case *ast.CodeBlock:
		fmt.Fprintf(out, "<p %s>%s</p>\n", r.attrs(), EscapeText(NoteCodePlaceholder))

	case *east.Table:
		r.renderTable(out, n, source)

	case *ast.HTMLBlock:
		// raw HTML has no place in the note vocabulary

	default:
		if node.HasChildren() {
			fmt.Fprintf(out, "<p %s>", r.attrs())
			r.renderChildren(out, node, source)
			out.WriteString("</p>\n")
		}
	}
}

// renderTable degrades a table into one paragraph per row: header cells are
// bolded and cells join with a literal " | ". The markdown separator row
// never reaches the AST, so it is dropped by construction.
func (r *NoteRenderer) renderTable(out *strings.Builder, table *east.Table, source []byte) {
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		_, header := row.(*east.TableHeader)

		fmt.Fprintf(out, "<p %s>", r.attrs())
		first := true
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			if !first {
				out.WriteString(" | ")
			}
			if header {
				out.WriteString("<b>")
			}
			r.renderChildren(out, cell, source)
			if header {
				out.WriteString("</b>")
			}
			first = false
		}
		out.WriteString("</p>\n")
	}
}

func (r *NoteRenderer) renderListItem(out *strings.Builder, item ast.Node, source []byte) {
	for child := item.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.List:
			// nested list stays inside the parent block, no fresh token
			tag := "ul"
			if c.IsOrdered() {
				tag = "ol"
			}
			fmt.Fprintf(out, "<%s>", tag)
			for sub := c.FirstChild(); sub != nil; sub = sub.NextSibling() {
				out.WriteString("<li>")
				r.renderListItem(out, sub, source)
				out.WriteString("</li>")
			}
			fmt.Fprintf(out, "</%s>", tag)
		default:
			r.renderChildren(out, child, source)
		}
	}
}

func (r *NoteRenderer) renderImage(out *strings.Builder, img *ast.Image, source []byte) {
	fmt.Fprintf(out, "<img %s src=\"%s\" alt=\"%s\">\n",
		r.attrs(), EscapeAttr(string(img.Destination)), EscapeAttr(plainText(img, source)))
}

func (r *NoteRenderer) renderChildren(out *strings.Builder, node ast.Node, source []byte) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		r.renderInline(out, child, source)
	}
}

func (r *NoteRenderer) renderInline(out *strings.Builder, node ast.Node, source []byte) {
	switch n := node.(type) {
	case *ast.Text:
		out.WriteString(EscapeText(string(n.Segment.Value(source))))
		if n.HardLineBreak() {
			out.WriteString("<br>")
		} else if n.SoftLineBreak() {
			out.WriteString(" ")
		}

	case *ast.String:
		out.WriteString(EscapeText(string(n.Value)))

	case *ast.Emphasis:
		if n.Level >= 2 {
			out.WriteString("<b>")
			r.renderChildren(out, n, source)
			out.WriteString("</b>")
			return
		}
		// italic degrades to plain text on note
		r.renderChildren(out, n, source)

	case *ast.CodeSpan:
		out.WriteString(EscapeText(plainText(n, source)))

	case *ast.Link:
		fmt.Fprintf(out, "<a href=\"%s\">", EscapeAttr(string(n.Destination)))
		r.renderChildren(out, n, source)
		out.WriteString("</a>")

	case *ast.AutoLink:
		url := string(n.URL(source))
		fmt.Fprintf(out, "<a href=\"%s\">%s</a>", EscapeAttr(url), EscapeText(url))

	case *ast.Image:
		fmt.Fprintf(out, "<img src=\"%s\" alt=\"%s\">",
			EscapeAttr(string(n.Destination)), EscapeAttr(plainText(n, source)))

	case *ast.RawHTML:
		// dropped

	default:
		r.renderChildren(out, node, source)
	}
}

// plainText flattens a node's inline subtree into unformatted text.
func plainText(node ast.Node, source []byte) string {
	var out strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			out.Write(n.Segment.Value(source))
		case *ast.String:
			out.Write(n.Value)
		default:
			out.WriteString(plainText(child, source))
		}
	}
	return out.String()
}

func soleImage(paragraph *ast.Paragraph) (*ast.Image, bool) {
	child := paragraph.FirstChild()
	if child == nil || child.NextSibling() != nil {
		return nil, false
	}
	img, ok := child.(*ast.Image)
	return img, ok
}
