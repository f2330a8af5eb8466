package publish

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/secure-auto-lab/crosspost/internal/convert"
	"github.com/secure-auto-lab/crosspost/internal/history"
	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

type fakePublisher struct {
	destination string
	fail        bool
	reject      bool
	rendered    []string
}

func (f *fakePublisher) Destination() string { return f.destination }

func (f *fakePublisher) Publish(_ context.Context, _ *interfaces.Article, rendered string) (interfaces.PublishResult, error) {
	f.rendered = append(f.rendered, rendered)
	if f.fail {
		return interfaces.PublishResult{}, errors.New("network down")
	}
	if f.reject {
		return interfaces.PublishResult{Destination: f.destination, Error: "duplicate"}, nil
	}
	return interfaces.PublishResult{
		Success:     true,
		Destination: f.destination,
		URL:         "https://" + f.destination + ".example/" + "a",
	}, nil
}

func publishArticle(tb testing.TB) *interfaces.Article {
	tb.Helper()
	a := &interfaces.Article{
		Title: "T",
		Slug:  "a",
		Body:  "## 概要\n\n本文です。\n",
	}
	a.Platforms.Zenn.Enabled = true
	a.Platforms.Blog.Enabled = true
	return a
}

func TestPublishAllOrderAndResults(t *testing.T) {
	zenn := &fakePublisher{destination: "zenn"}
	blog := &fakePublisher{destination: "blog"}
	svc := NewService(nil, []interfaces.Publisher{blog, zenn}, nil, nil)

	results, err := svc.PublishAll(context.Background(), publishArticle(t))
	if err != nil {
		t.Fatalf("PublishAll: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	// fixed publishing order, not publisher registration order
	if results[0].Destination != "zenn" || results[1].Destination != "blog" {
		t.Fatalf("destination order: %+v", results)
	}
	if len(zenn.rendered) != 1 || !strings.Contains(zenn.rendered[0], "本文です。") {
		t.Fatalf("publisher must receive the rendered article")
	}
}

func TestPublishAllSkipsUnconfiguredDestination(t *testing.T) {
	blog := &fakePublisher{destination: "blog"}
	svc := NewService(nil, []interfaces.Publisher{blog}, nil, nil)

	results, err := svc.PublishAll(context.Background(), publishArticle(t))
	if err != nil {
		t.Fatalf("PublishAll: %v", err)
	}
	if len(results) != 1 || results[0].Destination != "blog" {
		t.Fatalf("expected only blog result: %+v", results)
	}
}

func TestPublishAllRecordsTransportFailure(t *testing.T) {
	zenn := &fakePublisher{destination: "zenn", fail: true}
	blog := &fakePublisher{destination: "blog"}
	svc := NewService(nil, []interfaces.Publisher{zenn, blog}, nil, nil)

	results, err := svc.PublishAll(context.Background(), publishArticle(t))
	if err != nil {
		t.Fatalf("failure must not abort the run: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %+v", results)
	}
	if results[0].Success || results[0].Error == "" {
		t.Fatalf("expected recorded failure: %+v", results[0])
	}
	if !results[1].Success {
		t.Fatalf("later destinations still published: %+v", results[1])
	}
}

func TestPublishAllValidation(t *testing.T) {
	svc := NewService(nil, nil, nil, nil)

	bad := publishArticle(t)
	bad.Slug = "not a slug"
	if _, err := svc.PublishAll(context.Background(), bad); err == nil {
		t.Fatalf("invalid slug must fail before delivery")
	}
}

func TestPublishOneUnconfigured(t *testing.T) {
	svc := NewService(nil, nil, nil, nil)

	_, err := svc.PublishOne(context.Background(), publishArticle(t), convert.DestinationNote)
	if err == nil {
		t.Fatalf("expected error for unconfigured destination")
	}
}

func TestPublishAllWritesHistory(t *testing.T) {
	ctx := context.Background()
	store, err := history.Open(ctx, filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	defer store.Close()

	blog := &fakePublisher{destination: "blog", reject: true}
	svc := NewService(nil, []interfaces.Publisher{blog}, store, nil)

	article := publishArticle(t)
	article.Platforms.Zenn.Enabled = false
	if _, err := svc.PublishAll(ctx, article); err != nil {
		t.Fatalf("PublishAll: %v", err)
	}

	entries, err := store.ForSlug(ctx, article.Slug)
	if err != nil {
		t.Fatalf("ForSlug: %v", err)
	}
	if len(entries) != 1 || entries[0].Success || entries[0].Error != "duplicate" {
		t.Fatalf("history must capture the rejection: %+v", entries)
	}
}

func TestConvertDryRun(t *testing.T) {
	svc := NewService(nil, nil, nil, nil)

	rendered, err := svc.Convert(publishArticle(t))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if len(rendered) != 2 {
		t.Fatalf("expected renditions for zenn and blog, got %v", keys(rendered))
	}
	if _, ok := rendered["zenn"]; !ok {
		t.Fatalf("zenn rendition missing")
	}
}

func TestURLs(t *testing.T) {
	results := []interfaces.PublishResult{
		{Success: true, Destination: "blog", URL: "https://b.example/a"},
		{Success: false, Destination: "note", URL: "https://n.example/a"},
		{Success: true, Destination: "zenn"},
	}
	urls := URLs(results)
	if len(urls) != 1 || urls["blog"] != "https://b.example/a" {
		t.Fatalf("only successful deliveries with URLs: %v", urls)
	}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
