// Package sections removes whole heading subtrees from a markdown document
// based on editorial category. The note destination drops technical sections,
// zenn drops story sections; classification is keyword driven.
package sections

import (
	"regexp"
	"strings"
)

// Category names an editorial classification assigned to a heading.
type Category string

const (
	// CategoryTechnical marks implementation-heavy sections: setup, code
	// walkthroughs, API references.
	CategoryTechnical Category = "technical"
	// CategoryStory marks narrative and emotional sections: motivation,
	// lessons learned, before/after.
	CategoryStory Category = "story"
	// CategoryNone is returned for headings that match no keyword list.
	CategoryNone Category = ""
)

var (
	headingPattern = regexp.MustCompile(`^(#{2,6})\s+(.+)$`)
	stepPattern    = regexp.MustCompile(`(?i)^Step\s*\d`)
	emojiPattern   = regexp.MustCompile(`[\x{1F300}-\x{1F9FF}\x{2600}-\x{27BF}]`)
)

// Config carries the immutable keyword tables used for classification.
// Matching is case-sensitive substring matching on the normalized heading
// text.
type Config struct {
	Keywords map[Category][]string
}

// DefaultConfig returns the stock keyword tables.
func DefaultConfig() Config {
	return Config{Keywords: map[Category][]string{
		CategoryTechnical: TechnicalKeywords(),
		CategoryStory:     StoryKeywords(),
	}}
}

// Filter classifies headings and removes subtrees for a requested category.
// A Filter is immutable after construction and safe for concurrent use.
type Filter struct {
	keywords map[Category][]string
}

// New builds a Filter from the supplied keyword tables. The tables are copied
// so later mutation of the config cannot leak into the filter.
func New(cfg Config) *Filter {
	keywords := make(map[Category][]string, len(cfg.Keywords))
	for category, words := range cfg.Keywords {
		keywords[category] = append([]string(nil), words...)
	}
	return &Filter{keywords: keywords}
}

// Classify returns the category of a heading text, or CategoryNone. Emoji are
// stripped before matching so decorated headings classify the same as plain
// ones. A "Step N" heading is always technical regardless of keyword tables.
func (f *Filter) Classify(heading string) Category {
	clean := strings.TrimSpace(emojiPattern.ReplaceAllString(heading, ""))

	if stepPattern.MatchString(clean) {
		return CategoryTechnical
	}
	for _, category := range []Category{CategoryTechnical, CategoryStory} {
		for _, keyword := range f.keywords[category] {
			if strings.Contains(clean, keyword) {
				return category
			}
		}
	}
	return CategoryNone
}

// Remove drops every section classified as the given category: the heading
// line itself plus all content up to the next heading of equal or higher
// level. That boundary heading is evaluated fresh, so adjacent matched
// sections are removed back to back. The level-1 title is never a removal
// candidate.
func (f *Filter) Remove(markdown string, category Category) string {
	if category == CategoryNone {
		return markdown
	}

	type state struct {
		skipping  bool
		skipLevel int
	}
	var st state

	lines := strings.Split(markdown, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if match := headingPattern.FindStringSubmatch(line); match != nil {
			level := len(match[1])
			text := match[2]

			if f.Classify(text) == category {
				st = state{skipping: true, skipLevel: level}
				continue
			}
			if st.skipping && level <= st.skipLevel {
				st = state{}
			}
		}

		if !st.skipping {
			out = append(out, line)
		}
	}

	return strings.Join(out, "\n")
}
