// Package textwidth implements the weighted length rule used by
// length-constrained social networks: wide glyphs count double and URLs cost
// a fixed amount regardless of their actual length, matching the network's
// own link shortening.
package textwidth

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// URLWeight is the fixed cost of a URL token. The network replaces every link
// with a shortened one of this display length.
const URLWeight = 23

var urlPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.\-]*://\S+`)

// Length returns the weighted length of text: 1 per rune, 2 per East Asian
// wide or fullwidth rune, and URLWeight per URL token.
func Length(text string) int {
	total := 0
	walkSegments(text, func(segment string, isURL bool) {
		if isURL {
			total += URLWeight
			return
		}
		for _, r := range segment {
			total += runeWeight(r)
		}
	})
	return total
}

// Truncate walks text left to right accumulating weight and discards the
// remainder as soon as adding the next unit would exceed maxWeight. A URL
// token is included whole or dropped, never split. Text already within budget
// is returned unchanged.
func Truncate(text string, maxWeight int) string {
	if Length(text) <= maxWeight {
		return text
	}

	var out strings.Builder
	used := 0
	done := false
	walkSegments(text, func(segment string, isURL bool) {
		if done {
			return
		}
		if isURL {
			if used+URLWeight > maxWeight {
				done = true
				return
			}
			used += URLWeight
			out.WriteString(segment)
			return
		}
		for _, r := range segment {
			w := runeWeight(r)
			if used+w > maxWeight {
				done = true
				return
			}
			used += w
			out.WriteRune(r)
		}
	})
	return out.String()
}

// TruncateRunes clips text to max runes. Networks without a weighting rule
// use this plain count against their budget.
func TruncateRunes(text string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}

func runeWeight(r rune) int {
	if runewidth.RuneWidth(r) == 2 {
		return 2
	}
	return 1
}

// walkSegments calls fn for every URL token and every stretch of plain text
// between URL tokens, in document order.
func walkSegments(text string, fn func(segment string, isURL bool)) {
	last := 0
	for _, loc := range urlPattern.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			fn(text[last:loc[0]], false)
		}
		fn(text[loc[0]:loc[1]], true)
		last = loc[1]
	}
	if last < len(text) {
		fn(text[last:], false)
	}
}
