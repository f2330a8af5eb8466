// Package article parses the canonical source document: markdown with a
// frontmatter header carrying metadata and per-destination settings.
package article

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

const (
	defaultTitle    = "Untitled"
	defaultSlug     = "untitled"
	defaultCategory = "tech"
	defaultAuthor   = "tinou"
)

var defaultNetworks = []string{"twitter", "bluesky", "misskey"}

type noteEnvelope struct {
	Enabled      *bool  `yaml:"enabled"`
	Status       string `yaml:"status"`
	Price        int    `yaml:"price"`
	ScheduledAt  string `yaml:"scheduled_at"`
	PublishedURL string `yaml:"published_url"`
}

type zennEnvelope struct {
	Enabled      *bool    `yaml:"enabled"`
	Status       string   `yaml:"status"`
	Emoji        string   `yaml:"emoji"`
	Topics       []string `yaml:"topics"`
	ArticleType  string   `yaml:"type"`
	PublishedURL string   `yaml:"published_url"`
}

type qiitaEnvelope struct {
	Enabled      *bool  `yaml:"enabled"`
	Status       string `yaml:"status"`
	Private      bool   `yaml:"private"`
	PublishedURL string `yaml:"published_url"`
}

type blogEnvelope struct {
	Enabled      *bool  `yaml:"enabled"`
	Status       string `yaml:"status"`
	PublishedURL string `yaml:"published_url"`
}

type platformsEnvelope struct {
	Note  noteEnvelope  `yaml:"note"`
	Zenn  zennEnvelope  `yaml:"zenn"`
	Qiita qiitaEnvelope `yaml:"qiita"`
	Blog  blogEnvelope  `yaml:"blog"`
}

type announcementEnvelope struct {
	Enabled         *bool    `yaml:"enabled"`
	Networks        []string `yaml:"platforms"`
	MessageTemplate string   `yaml:"message_template"`
}

type seriesEnvelope struct {
	Name  string `yaml:"name"`
	Part  int    `yaml:"part"`
	Total int    `yaml:"total"`
}

type envelope struct {
	Title        string               `yaml:"title"`
	Slug         string               `yaml:"slug"`
	Description  string               `yaml:"description"`
	Tags         []string             `yaml:"tags"`
	Category     string               `yaml:"category"`
	Author       string               `yaml:"author"`
	CreatedAt    string               `yaml:"created_at"`
	UpdatedAt    string               `yaml:"updated_at"`
	Platforms    platformsEnvelope    `yaml:"platforms"`
	Announcement announcementEnvelope `yaml:"announcement"`
	Series       seriesEnvelope       `yaml:"series"`
	CanonicalURL string               `yaml:"canonical_url"`
}

// Parse reads frontmatter plus markdown body into an Article. Missing
// metadata degrades to defaults; a status outside the lifecycle vocabulary is
// a hard error.
func Parse(source []byte) (*interfaces.Article, error) {
	var env envelope
	body, err := frontmatter.Parse(bytes.NewReader(source), &env)
	if err != nil {
		return nil, fmt.Errorf("article: parse frontmatter: %w", err)
	}
	return fromEnvelope(env, body, "")
}

// ParseFile reads and parses an article from disk, recording the source
// path.
func ParseFile(path string) (*interfaces.Article, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("article: read %s: %w", path, err)
	}

	var env envelope
	body, err := frontmatter.Parse(bytes.NewReader(source), &env)
	if err != nil {
		return nil, fmt.Errorf("article: parse %s: %w", path, err)
	}
	return fromEnvelope(env, body, path)
}

func fromEnvelope(env envelope, body []byte, sourcePath string) (*interfaces.Article, error) {
	now := time.Now()

	noteStatus, err := parseStatus(env.Platforms.Note.Status)
	if err != nil {
		return nil, err
	}
	zennStatus, err := parseStatus(env.Platforms.Zenn.Status)
	if err != nil {
		return nil, err
	}
	qiitaStatus, err := parseStatus(env.Platforms.Qiita.Status)
	if err != nil {
		return nil, err
	}
	blogStatus, err := parseStatus(env.Platforms.Blog.Status)
	if err != nil {
		return nil, err
	}

	article := &interfaces.Article{
		Title:       stringOr(env.Title, defaultTitle),
		Slug:        stringOr(env.Slug, defaultSlug),
		Description: env.Description,
		Body:        string(body),
		Tags:        append([]string(nil), env.Tags...),
		Category:    stringOr(env.Category, defaultCategory),
		Author:      stringOr(env.Author, defaultAuthor),
		CreatedAt:   parseDate(env.CreatedAt, now),
		UpdatedAt:   parseDate(env.UpdatedAt, now),
		Platforms: interfaces.PlatformSettings{
			Note: interfaces.NoteSettings{
				Enabled:      boolOr(env.Platforms.Note.Enabled, true),
				Status:       noteStatus,
				Price:        env.Platforms.Note.Price,
				ScheduledAt:  optionalDate(env.Platforms.Note.ScheduledAt),
				PublishedURL: env.Platforms.Note.PublishedURL,
			},
			Zenn: interfaces.ZennSettings{
				Enabled:      boolOr(env.Platforms.Zenn.Enabled, true),
				Status:       zennStatus,
				Emoji:        env.Platforms.Zenn.Emoji,
				Topics:       append([]string(nil), env.Platforms.Zenn.Topics...),
				ArticleType:  env.Platforms.Zenn.ArticleType,
				PublishedURL: env.Platforms.Zenn.PublishedURL,
			},
			Qiita: interfaces.QiitaSettings{
				Enabled:      boolOr(env.Platforms.Qiita.Enabled, true),
				Status:       qiitaStatus,
				Private:      env.Platforms.Qiita.Private,
				PublishedURL: env.Platforms.Qiita.PublishedURL,
			},
			Blog: interfaces.BlogSettings{
				Enabled:      boolOr(env.Platforms.Blog.Enabled, true),
				Status:       blogStatus,
				PublishedURL: env.Platforms.Blog.PublishedURL,
			},
		},
		Announcement: interfaces.AnnouncementSettings{
			Enabled:         boolOr(env.Announcement.Enabled, true),
			Networks:        networksOr(env.Announcement.Networks),
			MessageTemplate: env.Announcement.MessageTemplate,
		},
		Series: interfaces.SeriesInfo{
			Name:  env.Series.Name,
			Part:  env.Series.Part,
			Total: env.Series.Total,
		},
		CanonicalURL: env.CanonicalURL,
		SourcePath:   sourcePath,
	}
	return article, nil
}

func parseStatus(raw string) (interfaces.PublishStatus, error) {
	switch interfaces.PublishStatus(raw) {
	case "":
		return interfaces.StatusDraft, nil
	case interfaces.StatusDraft, interfaces.StatusScheduled, interfaces.StatusPublished, interfaces.StatusFailed:
		return interfaces.PublishStatus(raw), nil
	default:
		return "", fmt.Errorf("article: invalid publish status %q", raw)
	}
}

// parseDate accepts RFC3339 or date-only values, falling back otherwise.
func parseDate(raw string, fallback time.Time) time.Time {
	if raw == "" {
		return fallback
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}
	return fallback
}

func optionalDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	parsed := parseDate(raw, time.Time{})
	if parsed.IsZero() {
		return nil
	}
	return &parsed
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

func networksOr(networks []string) []string {
	if len(networks) == 0 {
		return append([]string(nil), defaultNetworks...)
	}
	return append([]string(nil), networks...)
}
