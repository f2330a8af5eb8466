package crosspost

import (
	"context"
	"strings"
	"testing"

	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

type captivePublisher struct {
	destination string
	rendered    map[string]string
}

func (p *captivePublisher) Destination() string { return p.destination }

func (p *captivePublisher) Publish(_ context.Context, art *interfaces.Article, rendered string) (interfaces.PublishResult, error) {
	p.rendered[p.destination] = rendered
	return interfaces.PublishResult{
		Success:     true,
		Destination: p.destination,
		URL:         "https://" + p.destination + ".example/" + art.Slug,
	}, nil
}

const moduleSource = `---
title: "記事"
slug: "facade-test"
platforms:
  note:
    enabled: false
  qiita:
    enabled: false
---

## 概要

本文です。
`

func TestModuleEndToEnd(t *testing.T) {
	art, err := ParseArticle([]byte(moduleSource))
	if err != nil {
		t.Fatalf("ParseArticle: %v", err)
	}

	rendered := map[string]string{}
	module := New(Options{
		Publishers: []interfaces.Publisher{
			&captivePublisher{destination: "zenn", rendered: rendered},
			&captivePublisher{destination: "blog", rendered: rendered},
		},
	})

	results, err := module.PublishAll(context.Background(), art)
	if err != nil {
		t.Fatalf("PublishAll: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %+v", results)
	}
	if !strings.Contains(rendered["zenn"], "本文です。") {
		t.Fatalf("zenn rendition missing body:\n%s", rendered["zenn"])
	}

	announcements, err := module.AnnounceAll(context.Background(), art, results)
	if err != nil {
		t.Fatalf("AnnounceAll: %v", err)
	}
	// default networks are configured on the article but no announcers were
	// supplied, so everything is skipped
	if len(announcements) != 0 {
		t.Fatalf("expected no announcements without announcers: %+v", announcements)
	}
}

func TestModuleConvertSingle(t *testing.T) {
	art, err := ParseArticle([]byte(moduleSource))
	if err != nil {
		t.Fatalf("ParseArticle: %v", err)
	}

	module := New(Options{})
	rendition, err := module.Convert(art, DestinationZenn)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.HasPrefix(rendition, "---\n") {
		t.Fatalf("zenn rendition must carry front matter:\n%s", rendition)
	}
}
