// Command crosspost projects one canonical markdown article into each
// destination's format, publishes the renditions, and composes the social
// announcements.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/secure-auto-lab/crosspost/cmd/crosspost/internal/bootstrap"
	"github.com/secure-auto-lab/crosspost/internal/announce"
	"github.com/secure-auto-lab/crosspost/internal/article"
	"github.com/secure-auto-lab/crosspost/internal/convert"
	"github.com/secure-auto-lab/crosspost/internal/publish"
	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "convert":
		err = runConvert(os.Args[2:])
	case "preview":
		err = runPreview(os.Args[2:])
	case "publish":
		err = runPublish(os.Args[2:])
	case "announce":
		err = runAnnounce(os.Args[2:])
	case "history":
		err = runHistory(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("crosspost %s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: crosspost <convert|preview|publish|announce|history> [flags]")
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("crosspost-convert", flag.ExitOnError)
	source := fs.String("source", "", "Path to the canonical markdown article")
	dest := fs.String("dest", "", "Render a single destination instead of all enabled ones")
	out := fs.String("out", "", "Directory to write renditions into (stdout when empty)")
	logLevel := fs.String("log-level", "", "Log level override")
	if err := fs.Parse(args); err != nil {
		return err
	}

	module, art, err := loadModule(bootstrap.Options{OutputDir: *out, LogLevel: *logLevel}, *source)
	if err != nil {
		return err
	}
	defer module.Close()

	rendered := map[string]string{}
	if *dest != "" {
		rendition, err := module.Registry.Convert(art, convert.Destination(*dest))
		if err != nil {
			return err
		}
		rendered[*dest] = rendition
	} else {
		if rendered, err = module.Publish.Convert(art); err != nil {
			return err
		}
	}

	if *out == "" {
		for name, rendition := range rendered {
			fmt.Printf("=== %s ===\n%s\n", name, rendition)
		}
		return nil
	}
	for name, rendition := range rendered {
		path, err := writeRendition(*out, name, art.Slug, rendition)
		if err != nil {
			return err
		}
		module.Logger.Info("rendition written", "destination", name, "path", path)
	}
	return nil
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("crosspost-preview", flag.ExitOnError)
	source := fs.String("source", "", "Path to the canonical markdown article")
	dest := fs.String("dest", "blog", "Destination to preview")
	out := fs.String("out", "", "File to write the HTML page to (stdout when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	module, art, err := loadModule(bootstrap.Options{}, *source)
	if err != nil {
		return err
	}
	defer module.Close()

	rendition, err := module.Registry.Convert(art, convert.Destination(*dest))
	if err != nil {
		return err
	}
	page, err := module.Preview.Render(*dest, art.Title, rendition)
	if err != nil {
		return err
	}

	if *out == "" {
		fmt.Print(page)
		return nil
	}
	if err := os.WriteFile(*out, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	return nil
}

func runPublish(args []string) error {
	fs := flag.NewFlagSet("crosspost-publish", flag.ExitOnError)
	source := fs.String("source", "", "Path to the canonical markdown article")
	out := fs.String("out", "out", "Directory renditions are published into")
	historyPath := fs.String("history", "", "History database path override")
	withAnnounce := fs.Bool("announce", false, "Compose and print announcements after publishing")
	logLevel := fs.String("log-level", "", "Log level override")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := bootstrap.Options{
		OutputDir:   *out,
		HistoryPath: *historyPath,
		LogLevel:    *logLevel,
		WithHistory: true,
	}
	module, art, err := loadModule(opts, *source)
	if err != nil {
		return err
	}
	defer module.Close()

	ctx := context.Background()
	results, err := module.Publish.PublishAll(ctx, art)
	if err != nil {
		return err
	}
	for _, result := range results {
		if result.Success {
			fmt.Printf("published %s: %s\n", result.Destination, result.URL)
		} else {
			fmt.Printf("failed %s: %s\n", result.Destination, result.Error)
		}
	}

	if *withAnnounce {
		announcements, err := module.Announce.AnnounceAll(ctx, art, publish.URLs(results))
		if err != nil {
			return err
		}
		for _, result := range announcements {
			if !result.Success {
				fmt.Printf("announce failed %s: %s\n", result.Network, result.Error)
			}
		}
	}
	return nil
}

func runAnnounce(args []string) error {
	fs := flag.NewFlagSet("crosspost-announce", flag.ExitOnError)
	source := fs.String("source", "", "Path to the canonical markdown article")
	network := fs.String("network", "", "Announce to a single network instead of all configured ones")
	if err := fs.Parse(args); err != nil {
		return err
	}

	module, art, err := loadModule(bootstrap.Options{}, *source)
	if err != nil {
		return err
	}
	defer module.Close()

	urls, err := publishedURLs(module, art)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if *network != "" {
		result, err := module.Announce.AnnounceSingle(ctx, art, announce.Network(*network), urls)
		if err != nil {
			return err
		}
		if !result.Success {
			return fmt.Errorf("announce to %s: %s", result.Network, result.Error)
		}
		return nil
	}

	if _, err := module.Announce.AnnounceAll(ctx, art, urls); err != nil {
		return err
	}
	return nil
}

func runHistory(args []string) error {
	fs := flag.NewFlagSet("crosspost-history", flag.ExitOnError)
	slug := fs.String("slug", "", "Slug to list publish records for")
	historyPath := fs.String("history", "", "History database path override")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *slug == "" {
		return fmt.Errorf("slug is required")
	}

	ctx := context.Background()
	module, err := moduleBuilder(ctx, bootstrap.Options{HistoryPath: *historyPath, WithHistory: true})
	if err != nil {
		return err
	}
	defer module.Close()

	entries, err := module.History.ForSlug(ctx, *slug)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Printf("no publish records for %q\n", *slug)
		return nil
	}
	for _, e := range entries {
		status := "ok"
		if !e.Success {
			status = "failed: " + e.Error
		}
		fmt.Printf("%s  %-6s %-8s %s\n", e.PublishedAt.Format("2006-01-02 15:04"), e.Destination, status, e.URL)
	}
	return nil
}

func loadModule(opts bootstrap.Options, source string) (*bootstrap.Module, *interfaces.Article, error) {
	if source == "" {
		return nil, nil, fmt.Errorf("source is required")
	}

	module, err := moduleBuilder(context.Background(), opts)
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap module: %w", err)
	}

	art, err := article.ParseFile(source)
	if err != nil {
		_ = module.Close()
		return nil, nil, err
	}
	return module, art, nil
}

// publishedURLs rebuilds the destination URL map from recorded platform URLs,
// falling back to the deterministic blog and zenn addresses.
func publishedURLs(module *bootstrap.Module, art *interfaces.Article) (map[string]string, error) {
	urls := map[string]string{
		"note":  art.Platforms.Note.PublishedURL,
		"zenn":  art.Platforms.Zenn.PublishedURL,
		"qiita": art.Platforms.Qiita.PublishedURL,
		"blog":  art.Platforms.Blog.PublishedURL,
	}
	if urls["blog"] == "" {
		canonical, err := module.Links.Canonical(art.Slug)
		if err != nil {
			return nil, err
		}
		urls["blog"] = canonical
	}
	if urls["zenn"] == "" && art.Platforms.Zenn.Enabled {
		zennURL, err := module.Links.ZennArticle(art.Slug)
		if err != nil {
			return nil, err
		}
		urls["zenn"] = zennURL
	}
	return urls, nil
}

func writeRendition(dir, destination, slug, rendition string) (string, error) {
	target := filepath.Join(dir, destination)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	ext := ".md"
	if destination == "note" {
		ext = ".html"
	}
	path := filepath.Join(target, slug+ext)
	if err := os.WriteFile(path, []byte(rendition), 0o644); err != nil {
		return "", fmt.Errorf("write rendition: %w", err)
	}
	return path, nil
}
