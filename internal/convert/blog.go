package convert

import (
	"github.com/secure-auto-lab/crosspost/internal/config"
	"github.com/secure-auto-lab/crosspost/internal/rewrite"
	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

const blogDateLayout = "2006-01-02"

// convertBlog renders for the self-hosted blog: the canonical, full-fidelity
// surface. The body passes through untouched except for destination block
// resolution; only the Astro front matter is added.
func (r *Registry) convertBlog(article *interfaces.Article) (string, error) {
	content := rewrite.StripDestinationBlocks(article.Body, string(DestinationBlog))

	header, err := renderFrontMatter(blogFrontMatter{
		Title:       article.Title,
		Description: article.Description,
		PubDate:     article.CreatedAt.Format(blogDateLayout),
		UpdatedDate: article.UpdatedAt.Format(blogDateLayout),
		Category:    config.ResolveCategory(article.Category),
		Tags:        append([]string(nil), article.Tags...),
		Author:      article.Author,
	})
	if err != nil {
		return "", err
	}

	return header + "\n\n" + content, nil
}
