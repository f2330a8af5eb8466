package convert

import (
	"fmt"

	"github.com/secure-auto-lab/crosspost/internal/rewrite"
	"github.com/secure-auto-lab/crosspost/internal/sections"
	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

const noteFooter = `

---

**この記事が気に入ったら「スキ」をお願いします！**

技術的な実装の詳細やソースコードに興味がある方は、ブログで全文を公開しています。

**[>> 詳しい実装はこちら](%s)**
`

// convertNote renders for the note editor: a story-focused surface for
// non-engineers. Technical sections, code, diagrams, and inline code markers
// are removed before the remaining markdown is re-emitted as note's block
// vocabulary.
func (r *Registry) convertNote(article *interfaces.Article) (string, error) {
	blogURL, err := r.links.Canonical(article.Slug)
	if err != nil {
		return "", err
	}

	content := rewrite.StripDestinationBlocks(article.Body, string(DestinationNote))
	content = r.filter.Remove(content, sections.CategoryTechnical)
	content = rewrite.ReplaceCodeBlocks(content, rewrite.NoteCodePlaceholder)
	content = rewrite.StripDiagramLines(content)
	content = rewrite.StripInlineCode(content)
	content = rewrite.DegradeCallouts(content)
	content = rewrite.StripShareCTA(content)
	content = rewrite.CollapseBlankLines(content)
	content = rewrite.TrimTrailingRules(content)
	content += fmt.Sprintf(noteFooter, blogURL)

	return r.note.Render(content), nil
}
