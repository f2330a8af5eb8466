package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/secure-auto-lab/crosspost/internal/links"
	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

// FilePublisher delivers renditions to the local filesystem under
// <dir>/<destination>/<slug>.<ext>. It stands in for the per-platform
// transports; note and qiita drafts are pasted into their editors by hand.
type FilePublisher struct {
	destination string
	dir         string
	links       *links.Builder
}

// NewFilePublisher builds a file publisher for one destination.
func NewFilePublisher(destination, dir string, linkBuilder *links.Builder) *FilePublisher {
	return &FilePublisher{
		destination: destination,
		dir:         dir,
		links:       linkBuilder,
	}
}

// Destination satisfies interfaces.Publisher.
func (p *FilePublisher) Destination() string { return p.destination }

// Publish writes the rendition and reports the public URL the article will
// live at once the platform picks it up.
func (p *FilePublisher) Publish(ctx context.Context, article *interfaces.Article, rendered string) (interfaces.PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.PublishResult{}, err
	}

	dir := filepath.Join(p.dir, p.destination)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return interfaces.PublishResult{}, fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, article.Slug+p.extension())
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return interfaces.PublishResult{}, fmt.Errorf("write rendition: %w", err)
	}

	url, err := p.publicURL(article.Slug)
	if err != nil {
		return interfaces.PublishResult{}, err
	}
	return interfaces.PublishResult{
		Success:     true,
		Destination: p.destination,
		URL:         url,
	}, nil
}

// extension picks the file suffix: note carries HTML, the rest markdown.
func (p *FilePublisher) extension() string {
	if p.destination == "note" {
		return ".html"
	}
	return ".md"
}

// publicURL is known up front for destinations with deterministic URLs.
func (p *FilePublisher) publicURL(slug string) (string, error) {
	if p.links == nil {
		return "", nil
	}
	switch p.destination {
	case "blog":
		return p.links.Canonical(slug)
	case "zenn":
		return p.links.ZennArticle(slug)
	default:
		return "", nil
	}
}

// ConsoleAnnouncer prints composed announcements to stdout instead of posting
// them, for review before the real social clients go out.
type ConsoleAnnouncer struct {
	network string
}

// NewConsoleAnnouncer builds a stdout announcer for one network.
func NewConsoleAnnouncer(network string) *ConsoleAnnouncer {
	return &ConsoleAnnouncer{network: network}
}

// Network satisfies interfaces.Announcer.
func (a *ConsoleAnnouncer) Network() string { return a.network }

// Post prints the message.
func (a *ConsoleAnnouncer) Post(ctx context.Context, message string) (interfaces.AnnounceResult, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.AnnounceResult{}, err
	}
	fmt.Printf("--- %s ---\n%s\n\n", a.network, message)
	return interfaces.AnnounceResult{
		Success: true,
		Network: a.network,
	}, nil
}
