// Package bootstrap wires configuration, logging, and the publishing services
// for the crosspost CLI.
package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/secure-auto-lab/crosspost/internal/announce"
	"github.com/secure-auto-lab/crosspost/internal/config"
	"github.com/secure-auto-lab/crosspost/internal/convert"
	"github.com/secure-auto-lab/crosspost/internal/history"
	"github.com/secure-auto-lab/crosspost/internal/links"
	"github.com/secure-auto-lab/crosspost/internal/logging"
	"github.com/secure-auto-lab/crosspost/internal/logging/gologger"
	"github.com/secure-auto-lab/crosspost/internal/preview"
	"github.com/secure-auto-lab/crosspost/internal/publish"
	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

// Options captures the CLI flags that override environment configuration.
type Options struct {
	OutputDir   string
	HistoryPath string
	LogLevel    string
	LogFormat   string
	WithHistory bool
}

// Module bundles the configured services for one CLI invocation.
type Module struct {
	Config    config.Config
	Provider  interfaces.LoggerProvider
	Logger    interfaces.Logger
	Links     *links.Builder
	Registry  *convert.Registry
	Preview   *preview.Renderer
	Publish   *publish.Service
	Announce  *announce.Service
	History   *history.Store
	OutputDir string
}

// BuildModule constructs the full service graph. Destinations publish to the
// local output directory; swap the publishers to go over the wire.
func BuildModule(ctx context.Context, opts Options) (*Module, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.LogLevel = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogFormat); trimmed != "" {
		cfg.LogFormat = trimmed
	}
	if trimmed := strings.TrimSpace(opts.HistoryPath); trimmed != "" {
		cfg.HistoryPath = trimmed
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("initialise logging: %w", err)
	}

	linkBuilder := links.New(links.Options{
		BlogBaseURL:  cfg.BlogBaseURL,
		ZennBaseURL:  cfg.ZennBaseURL,
		ZennUsername: cfg.ZennUsername,
	})
	registry := convert.NewRegistry(convert.Options{Links: linkBuilder})

	outputDir := strings.TrimSpace(opts.OutputDir)
	if outputDir == "" {
		outputDir = "out"
	}

	var store *history.Store
	if opts.WithHistory {
		store, err = history.Open(ctx, cfg.HistoryPath)
		if err != nil {
			return nil, fmt.Errorf("open history store: %w", err)
		}
	}

	publishers := make([]interfaces.Publisher, 0, len(registry.Destinations()))
	for _, dest := range registry.Destinations() {
		publishers = append(publishers, NewFilePublisher(string(dest), outputDir, linkBuilder))
	}

	announcers := []interfaces.Announcer{
		NewConsoleAnnouncer("twitter"),
		NewConsoleAnnouncer("bluesky"),
		NewConsoleAnnouncer("misskey"),
	}

	return &Module{
		Config:    cfg,
		Provider:  provider,
		Logger:    logging.ModuleLogger(provider, ""),
		Links:     linkBuilder,
		Registry:  registry,
		Preview:   preview.New(preview.Options{}),
		Publish:   publish.NewService(registry, publishers, store, provider),
		Announce:  announce.NewService(announcers, provider),
		History:   store,
		OutputDir: outputDir,
	}, nil
}

// Close releases resources held by the module.
func (m *Module) Close() error {
	if m == nil || m.History == nil {
		return nil
	}
	return m.History.Close()
}
