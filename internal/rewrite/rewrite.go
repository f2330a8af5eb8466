// Package rewrite holds the stateless markdown rewrites shared by the
// destination converters: conditional block stripping, callout conversion,
// code and diagram handling, and whitespace cleanup. Each function is a pure
// transform; destination converters compose them in a fixed order.
package rewrite

import (
	"regexp"
	"strings"
)

var (
	destBlockPattern = regexp.MustCompile(`(?s)<!-- dest:(\w+) -->\s*(.*?)\s*<!-- enddest -->`)
	fencedCode       = regexp.MustCompile("(?s)```[\\w-]*\n.*?\n```")
	calloutBlock     = regexp.MustCompile(`(?s):::\w+\n(.*?)\n:::`)
	calloutOpener    = regexp.MustCompile(`(?m)^:::\w+(?:\s+\w+)?\s*$`)
	inlineCode       = regexp.MustCompile("`([^`]+)`")
	blankRuns        = regexp.MustCompile(`\n{3,}`)
	trailingRules    = regexp.MustCompile(`(\n---\s*)+$`)

	shareCTAComment = regexp.MustCompile(`<!-- SNS共有の促進 -->\s*`)
	shareCTABold    = regexp.MustCompile(`(?s)\*\*この記事が役に立ったら、ぜひシェアをお願いします.*?\*\*\s*`)
	shareCTATail    = regexp.MustCompile(`あなたのシェアが、同じ悩みを持つ誰かの助けになります。\s*`)
)

// diagramGlyphs are the box-drawing and arrow runes whose presence marks a
// line as part of an ASCII diagram. The scan is deliberately per-line and
// content-blind.
const diagramGlyphs = "┌┐└┘│├┤┬┴┼─═║╔╗╚╝╠╣╦╩╬▶▼►◆→←↑↓"

// StripDestinationBlocks resolves `<!-- dest:X --> ... <!-- enddest -->`
// regions: content is kept (unwrapped) only when X equals keep, and dropped
// for every other destination. Matching is case-sensitive over the shortest
// span; an unterminated opener matches nothing and is left in place.
func StripDestinationBlocks(content, keep string) string {
	return destBlockPattern.ReplaceAllStringFunc(content, func(block string) string {
		match := destBlockPattern.FindStringSubmatch(block)
		if match[1] == keep {
			return match[2]
		}
		return ""
	})
}

// ReplaceCodeBlocks swaps every fenced code block (including mermaid fences)
// for the given replacement text. An empty replacement removes them outright.
func ReplaceCodeBlocks(content, replacement string) string {
	return fencedCode.ReplaceAllString(content, replacement)
}

// DegradeCallouts flattens `:::kind` blocks into a bold paragraph for
// destinations with no admonition support.
func DegradeCallouts(content string) string {
	return calloutBlock.ReplaceAllString(content, "**$1**")
}

// ConvertCalloutsToMessage rewrites callout openers into zenn's `:::message`
// admonition, leaving the body and the closing fence untouched.
func ConvertCalloutsToMessage(content string) string {
	return calloutOpener.ReplaceAllString(content, ":::message")
}

// StripDiagramLines drops every line containing a box-drawing or arrow
// glyph. Destinations that cannot render monospace layout get prose only.
func StripDiagramLines(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.ContainsAny(line, diagramGlyphs) {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// StripInlineCode removes backtick markers while keeping the enclosed text.
func StripInlineCode(content string) string {
	return inlineCode.ReplaceAllString(content, "$1")
}

// StripShareCTA removes the share-prompt boilerplate the source article
// carries at its tail; each destination appends its own footer instead.
func StripShareCTA(content string) string {
	content = shareCTAComment.ReplaceAllString(content, "")
	content = shareCTABold.ReplaceAllString(content, "")
	content = shareCTATail.ReplaceAllString(content, "")
	return content
}

// CollapseBlankLines reduces runs of three or more newlines to a single
// blank line.
func CollapseBlankLines(content string) string {
	return blankRuns.ReplaceAllString(content, "\n\n")
}

// TrimTrailingRules removes trailing whitespace and any horizontal rules
// left dangling at the end of the document, so footers attach cleanly.
func TrimTrailingRules(content string) string {
	trimmed := trailingRules.ReplaceAllString(strings.TrimRight(content, " \t\n"), "")
	return strings.TrimRight(trimmed, " \t\n")
}
