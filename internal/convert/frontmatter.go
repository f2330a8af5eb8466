package convert

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// zennFrontMatter is the key/value header zenn expects at the top of an
// article file. Canonical points search engines at the blog original.
type zennFrontMatter struct {
	Title     string   `yaml:"title"`
	Emoji     string   `yaml:"emoji"`
	Type      string   `yaml:"type"`
	Topics    []string `yaml:"topics"`
	Published bool     `yaml:"published"`
	Canonical string   `yaml:"canonical"`
}

// blogFrontMatter is the Astro content-collection header used by the blog.
type blogFrontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	PubDate     string   `yaml:"pubDate"`
	UpdatedDate string   `yaml:"updatedDate"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	Author      string   `yaml:"author"`
}

func renderFrontMatter(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("convert: render front matter: %w", err)
	}
	return "---\n" + strings.TrimRight(string(data), "\n") + "\n---", nil
}
