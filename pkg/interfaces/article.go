package interfaces

import "time"

// PublishStatus tracks where an article sits in a destination's lifecycle.
type PublishStatus string

const (
	StatusDraft     PublishStatus = "draft"
	StatusScheduled PublishStatus = "scheduled"
	StatusPublished PublishStatus = "published"
	StatusFailed    PublishStatus = "failed"
)

// NoteSettings holds the note destination knobs. Price is 0 for free articles
// or 100-50000 yen for paid ones.
type NoteSettings struct {
	Enabled      bool
	Status       PublishStatus
	Price        int
	ScheduledAt  *time.Time
	PublishedURL string
}

// ZennSettings holds the zenn destination knobs. Topics feed the generated
// front matter; zenn rejects topics containing spaces.
type ZennSettings struct {
	Enabled      bool
	Status       PublishStatus
	Emoji        string
	Topics       []string
	ArticleType  string
	PublishedURL string
}

// QiitaSettings holds the qiita destination knobs. Qiita caps tags at five.
type QiitaSettings struct {
	Enabled      bool
	Status       PublishStatus
	Private      bool
	PublishedURL string
}

// BlogSettings holds the self-hosted blog destination knobs.
type BlogSettings struct {
	Enabled      bool
	Status       PublishStatus
	PublishedURL string
}

// PlatformSettings groups the per-destination configuration owned by an
// Article. Converters treat it as read-only.
type PlatformSettings struct {
	Note  NoteSettings
	Zenn  ZennSettings
	Qiita QiitaSettings
	Blog  BlogSettings
}

// AnnouncementSettings controls which social networks receive a link
// announcement after publishing, in order.
type AnnouncementSettings struct {
	Enabled         bool
	Networks        []string
	MessageTemplate string
}

// SeriesInfo marks an article as part N of a named series.
type SeriesInfo struct {
	Name  string
	Part  int
	Total int
}

// Article is the canonical source document: written once, rendered per
// destination. Instances are immutable after parse; converters never mutate
// them.
type Article struct {
	Title       string
	Slug        string
	Description string
	Body        string

	Tags      []string
	Category  string
	Author    string
	CreatedAt time.Time
	UpdatedAt time.Time

	Platforms    PlatformSettings
	Announcement AnnouncementSettings
	Series       SeriesInfo

	CanonicalURL string
	SourcePath   string
}

// EnabledDestinations returns the destination names enabled for this article
// in the fixed publishing order.
func (a *Article) EnabledDestinations() []string {
	var enabled []string
	if a.Platforms.Note.Enabled {
		enabled = append(enabled, "note")
	}
	if a.Platforms.Zenn.Enabled {
		enabled = append(enabled, "zenn")
	}
	if a.Platforms.Qiita.Enabled {
		enabled = append(enabled, "qiita")
	}
	if a.Platforms.Blog.Enabled {
		enabled = append(enabled, "blog")
	}
	return enabled
}
