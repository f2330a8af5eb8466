package convert

import (
	"fmt"
	"strings"

	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

const qiitaMaxTags = 5

const qiitaTemplate = `# %s

%s

## この記事について

本記事の全文は以下のブログで公開しています。

**[>> 全文を読む: %s](%s)**

### タグ

%s

---

> この記事は [secure-auto-lab.com](%s) からの要約です。
> 全文・ソースコード・詳細解説はブログ本文をご覧ください。
`

// convertQiita synthesizes a teaser document from title, description, and
// tags rather than reproducing the body: qiita content is non-monetizable, so
// its value proposition is summary plus redirect to the blog.
func (r *Registry) convertQiita(article *interfaces.Article) (string, error) {
	blogURL, err := r.links.Canonical(article.Slug)
	if err != nil {
		return "", err
	}

	tags := article.Tags
	if len(tags) > qiitaMaxTags {
		tags = tags[:qiitaMaxTags]
	}

	return fmt.Sprintf(qiitaTemplate,
		article.Title,
		article.Description,
		article.Title,
		blogURL,
		strings.Join(tags, " / "),
		blogURL,
	), nil
}
