package crosspost

import (
	"context"

	"github.com/secure-auto-lab/crosspost/internal/announce"
	"github.com/secure-auto-lab/crosspost/internal/article"
	"github.com/secure-auto-lab/crosspost/internal/config"
	"github.com/secure-auto-lab/crosspost/internal/convert"
	"github.com/secure-auto-lab/crosspost/internal/history"
	"github.com/secure-auto-lab/crosspost/internal/links"
	"github.com/secure-auto-lab/crosspost/internal/publish"
	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

// Config exports the runtime configuration for consumers of the crosspost
// package.
type Config = config.Config

// Destination exports the destination identifier type.
type Destination = convert.Destination

// Destination identifiers.
const (
	DestinationNote  = convert.DestinationNote
	DestinationZenn  = convert.DestinationZenn
	DestinationQiita = convert.DestinationQiita
	DestinationBlog  = convert.DestinationBlog
)

// Options configures the module beyond the environment-driven Config.
// Publishers and Announcers supply the transports; History is optional.
type Options struct {
	Config         Config
	Publishers     []interfaces.Publisher
	Announcers     []interfaces.Announcer
	History        *history.Store
	LoggerProvider interfaces.LoggerProvider
}

// Module is the top level cross-publishing runtime façade.
type Module struct {
	links    *links.Builder
	registry *convert.Registry
	publish  *publish.Service
	announce *announce.Service
}

// New constructs a crosspost module from the supplied options.
func New(opts Options) *Module {
	linkBuilder := links.New(links.Options{
		BlogBaseURL:  opts.Config.BlogBaseURL,
		ZennBaseURL:  opts.Config.ZennBaseURL,
		ZennUsername: opts.Config.ZennUsername,
	})
	registry := convert.NewRegistry(convert.Options{Links: linkBuilder})

	return &Module{
		links:    linkBuilder,
		registry: registry,
		publish:  publish.NewService(registry, opts.Publishers, opts.History, opts.LoggerProvider),
		announce: announce.NewService(opts.Announcers, opts.LoggerProvider),
	}
}

// ParseArticle reads a canonical article document.
func ParseArticle(source []byte) (*interfaces.Article, error) {
	return article.Parse(source)
}

// ParseArticleFile reads a canonical article from disk.
func ParseArticleFile(path string) (*interfaces.Article, error) {
	return article.ParseFile(path)
}

// Links exposes the article URL builder.
func (m *Module) Links() *links.Builder {
	return m.links
}

// Convert renders the article for one destination without delivering it.
func (m *Module) Convert(art *interfaces.Article, dest Destination) (string, error) {
	return m.registry.Convert(art, dest)
}

// ConvertEnabled renders the article for every enabled destination.
func (m *Module) ConvertEnabled(art *interfaces.Article) (map[string]string, error) {
	return m.publish.Convert(art)
}

// PublishAll delivers the article to every enabled destination.
func (m *Module) PublishAll(ctx context.Context, art *interfaces.Article) ([]interfaces.PublishResult, error) {
	return m.publish.PublishAll(ctx, art)
}

// AnnounceAll posts announcements to the article's configured networks using
// the URLs gathered from publish results.
func (m *Module) AnnounceAll(ctx context.Context, art *interfaces.Article, results []interfaces.PublishResult) ([]interfaces.AnnounceResult, error) {
	return m.announce.AnnounceAll(ctx, art, publish.URLs(results))
}
