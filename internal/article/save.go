package article

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

// Save serializes an article back to its on-disk form: yaml frontmatter
// followed by the markdown body. Parse(Save(a)) yields an equivalent article.
func Save(a *interfaces.Article) ([]byte, error) {
	env := toEnvelope(a)

	meta, err := yaml.Marshal(&env)
	if err != nil {
		return nil, fmt.Errorf("article: marshal frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(meta)
	buf.WriteString("---\n\n")
	buf.WriteString(a.Body)
	return buf.Bytes(), nil
}

// SaveFile writes the serialized article to path.
func SaveFile(a *interfaces.Article, path string) error {
	data, err := Save(a)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("article: write %s: %w", path, err)
	}
	return nil
}

func toEnvelope(a *interfaces.Article) envelope {
	return envelope{
		Title:       a.Title,
		Slug:        a.Slug,
		Description: a.Description,
		Tags:        a.Tags,
		Category:    a.Category,
		Author:      a.Author,
		CreatedAt:   formatDate(a.CreatedAt),
		UpdatedAt:   formatDate(a.UpdatedAt),
		Platforms: platformsEnvelope{
			Note: noteEnvelope{
				Enabled:      boolPtr(a.Platforms.Note.Enabled),
				Status:       string(a.Platforms.Note.Status),
				Price:        a.Platforms.Note.Price,
				ScheduledAt:  formatOptionalDate(a.Platforms.Note.ScheduledAt),
				PublishedURL: a.Platforms.Note.PublishedURL,
			},
			Zenn: zennEnvelope{
				Enabled:      boolPtr(a.Platforms.Zenn.Enabled),
				Status:       string(a.Platforms.Zenn.Status),
				Emoji:        a.Platforms.Zenn.Emoji,
				Topics:       a.Platforms.Zenn.Topics,
				ArticleType:  a.Platforms.Zenn.ArticleType,
				PublishedURL: a.Platforms.Zenn.PublishedURL,
			},
			Qiita: qiitaEnvelope{
				Enabled:      boolPtr(a.Platforms.Qiita.Enabled),
				Status:       string(a.Platforms.Qiita.Status),
				Private:      a.Platforms.Qiita.Private,
				PublishedURL: a.Platforms.Qiita.PublishedURL,
			},
			Blog: blogEnvelope{
				Enabled:      boolPtr(a.Platforms.Blog.Enabled),
				Status:       string(a.Platforms.Blog.Status),
				PublishedURL: a.Platforms.Blog.PublishedURL,
			},
		},
		Announcement: announcementEnvelope{
			Enabled:         boolPtr(a.Announcement.Enabled),
			Networks:        a.Announcement.Networks,
			MessageTemplate: a.Announcement.MessageTemplate,
		},
		Series: seriesEnvelope{
			Name:  a.Series.Name,
			Part:  a.Series.Part,
			Total: a.Series.Total,
		},
		CanonicalURL: a.CanonicalURL,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func boolPtr(v bool) *bool {
	return &v
}
