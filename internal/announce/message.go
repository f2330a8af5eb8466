// Package announce composes and delivers the short social-network messages
// that point readers at a freshly published article.
package announce

import (
	"errors"
	"fmt"
	"strings"

	"github.com/secure-auto-lab/crosspost/internal/textwidth"
	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

// Network identifies one social network with its own budget and composition
// rules.
type Network string

const (
	NetworkTwitter Network = "twitter"
	NetworkBluesky Network = "bluesky"
	NetworkMisskey Network = "misskey"
)

// ErrUnknownNetwork is returned when a network name has no composition rule.
var ErrUnknownNetwork = errors.New("announce: unknown network")

const (
	twitterMaxWeight = 280
	twitterMaxTags   = 2
	// budget for the description segment inside a twitter post, leaving room
	// for the title and link
	twitterDescWeight = 100

	blueskyMaxRunes = 300
	blueskyDescMax  = 100

	misskeyMaxRunes = 3000
)

// urlPriority is the fixed preference order for the primary announcement
// link. The blog wins because it is the canonical home; the remaining order
// follows reader value. Renaming or adding a destination means updating this
// list in lockstep with the converter registry.
var urlPriority = []string{"blog", "note", "zenn", "qiita"}

// Composer builds per-network announcement text. It is stateless and safe
// for concurrent use.
type Composer struct{}

// NewComposer returns a message composer.
func NewComposer() *Composer {
	return &Composer{}
}

// Compose builds the announcement message for one network from the article
// and the URLs returned by the publishers. The result always fits the
// network's budget.
func (c *Composer) Compose(article *interfaces.Article, network Network, urls map[string]string) (string, error) {
	switch network {
	case NetworkTwitter:
		return c.composeTwitter(article, urls), nil
	case NetworkBluesky:
		return c.composeBluesky(article, urls), nil
	case NetworkMisskey:
		return c.composeMisskey(article, urls), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownNetwork, network)
	}
}

// composeTwitter builds the length-constrained message. Hashtags are
// all-or-nothing: appended only when the whole message stays within the
// weighted budget, dropped entirely otherwise. The base message is
// weighted-truncated as a final safety net.
func (c *Composer) composeTwitter(article *interfaces.Article, urls map[string]string) string {
	var parts []string
	parts = append(parts, "新記事公開", article.Title)
	if desc := textwidth.Truncate(article.Description, twitterDescWeight); desc != "" {
		parts = append(parts, desc)
	}
	if url := primaryURL(urls); url != "" {
		parts = append(parts, url)
	}
	base := strings.Join(parts, "\n\n")

	if hashtags := hashtagLine(article.Tags, twitterMaxTags); hashtags != "" {
		withTags := base + "\n\n" + hashtags
		if textwidth.Length(withTags) <= twitterMaxWeight {
			return withTags
		}
	}
	return textwidth.Truncate(base, twitterMaxWeight)
}

func (c *Composer) composeBluesky(article *interfaces.Article, urls map[string]string) string {
	desc := article.Description
	if len([]rune(desc)) > blueskyDescMax {
		desc = textwidth.TruncateRunes(desc, blueskyDescMax) + "..."
	}

	parts := []string{"新記事を公開しました", article.Title}
	if desc != "" {
		parts = append(parts, desc)
	}
	if url := primaryURL(urls); url != "" {
		parts = append(parts, url)
	}
	return textwidth.TruncateRunes(strings.Join(parts, "\n\n"), blueskyMaxRunes)
}

func (c *Composer) composeMisskey(article *interfaces.Article, urls map[string]string) string {
	parts := []string{"**新記事を公開しました**", "**" + article.Title + "**"}
	if article.Description != "" {
		parts = append(parts, article.Description)
	}
	if url := primaryURL(urls); url != "" {
		parts = append(parts, url)
	}
	if hashtags := hashtagLine(article.Tags, len(article.Tags)); hashtags != "" {
		parts = append(parts, hashtags)
	}
	return textwidth.TruncateRunes(strings.Join(parts, "\n\n"), misskeyMaxRunes)
}

// primaryURL picks the announcement link: first populated entry in the fixed
// priority order, then an arbitrary populated entry, then empty.
func primaryURL(urls map[string]string) string {
	for _, name := range urlPriority {
		if url := urls[name]; url != "" {
			return url
		}
	}
	for _, url := range urls {
		if url != "" {
			return url
		}
	}
	return ""
}

func hashtagLine(tags []string, max int) string {
	if max > len(tags) {
		max = len(tags)
	}
	var out []string
	for _, tag := range tags[:max] {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, "#"+tag)
		}
	}
	return strings.Join(out, " ")
}
