package convert

import (
	"fmt"

	"github.com/secure-auto-lab/crosspost/internal/rewrite"
	"github.com/secure-auto-lab/crosspost/internal/sections"
	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

const (
	zennMaxTopics       = 5
	zennDefaultEmoji    = "📝"
	zennDefaultArticleT = "tech"
)

const zennFooter = `

---

**この記事の全文（ストーリー・背景解説を含む完全版）はブログで公開しています。**

**[>> ブログで全文を読む](%s)**
`

// convertZenn renders for zenn: a technical surface where code and
// implementation detail stay verbatim and narrative sections are removed.
func (r *Registry) convertZenn(article *interfaces.Article) (string, error) {
	blogURL, err := r.links.Canonical(article.Slug)
	if err != nil {
		return "", err
	}

	content := rewrite.StripDestinationBlocks(article.Body, string(DestinationZenn))
	content = r.filter.Remove(content, sections.CategoryStory)
	content = rewrite.StripShareCTA(content)
	content = rewrite.ConvertCalloutsToMessage(content)
	content = rewrite.CollapseBlankLines(content)
	content = rewrite.TrimTrailingRules(content)
	content += fmt.Sprintf(zennFooter, blogURL)

	header, err := r.zennHeader(article, blogURL)
	if err != nil {
		return "", err
	}
	return header + "\n\n" + content, nil
}

func (r *Registry) zennHeader(article *interfaces.Article, canonical string) (string, error) {
	settings := article.Platforms.Zenn

	emoji := settings.Emoji
	if emoji == "" {
		emoji = zennDefaultEmoji
	}
	articleType := settings.ArticleType
	if articleType == "" {
		articleType = zennDefaultArticleT
	}
	topics := settings.Topics
	if len(topics) > zennMaxTopics {
		topics = topics[:zennMaxTopics]
	}

	return renderFrontMatter(zennFrontMatter{
		Title:     article.Title,
		Emoji:     emoji,
		Type:      articleType,
		Topics:    append([]string(nil), topics...),
		Published: settings.Status == interfaces.StatusPublished,
		Canonical: canonical,
	})
}
