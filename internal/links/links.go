// Package links builds canonical and destination URLs from route templates.
// The blog is the canonical home for every article; other destinations link
// back to it.
package links

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

const articleRoute = "article"

// Options configures the URL builder. Zero values fall back to the
// production blog and the default zenn account.
type Options struct {
	BlogBaseURL  string
	ZennBaseURL  string
	ZennUsername string
}

// Builder resolves article URLs through a go-urlkit route manager.
type Builder struct {
	manager      *urlkit.RouteManager
	zennUsername string
}

// New constructs a Builder from the supplied options.
func New(opts Options) *Builder {
	blogBase := strings.TrimRight(opts.BlogBaseURL, "/")
	if blogBase == "" {
		blogBase = "https://blog.secure-auto-lab.com"
	}
	zennBase := strings.TrimRight(opts.ZennBaseURL, "/")
	if zennBase == "" {
		zennBase = "https://zenn.dev"
	}
	username := strings.TrimSpace(opts.ZennUsername)
	if username == "" {
		username = "tinou"
	}

	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "blog",
				BaseURL: blogBase,
				Paths: map[string]string{
					articleRoute: "/articles/:slug",
				},
			},
			{
				Name:    "zenn",
				BaseURL: zennBase,
				Paths: map[string]string{
					articleRoute: "/:username/articles/:slug",
				},
			},
		},
	})

	return &Builder{manager: manager, zennUsername: username}
}

// Canonical returns the authoritative blog URL for a slug. Every other
// destination's rendering links back to this.
func (b *Builder) Canonical(slug string) (string, error) {
	return b.build("blog", map[string]any{"slug": slug})
}

// ZennArticle returns the public zenn URL for a slug.
func (b *Builder) ZennArticle(slug string) (string, error) {
	return b.build("zenn", map[string]any{
		"username": b.zennUsername,
		"slug":     slug,
	})
}

func (b *Builder) build(group string, params map[string]any) (url string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("links: route group %q not found", group)
		}
	}()

	builder := b.manager.Group(group).Builder(articleRoute)
	for key, value := range params {
		builder.WithParam(key, value)
	}
	return builder.Build()
}
