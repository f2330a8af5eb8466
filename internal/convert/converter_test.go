package convert

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

func testArticle(tb testing.TB) *interfaces.Article {
	tb.Helper()

	body := strings.Join([]string{
		"## この記事で得られること",
		"ストーリー部分です。",
		"",
		"## 実装方法",
		"technical body",
		"",
		"```go",
		"func main() {}",
		"```",
		"",
		"## まとめ",
		"共通の本文です。",
		"",
		"<!-- dest:zenn -->",
		"zenn限定の段落",
		"<!-- enddest -->",
		"<!-- dest:note -->",
		"note限定の段落",
		"<!-- enddest -->",
	}, "\n")

	return &interfaces.Article{
		Title:       "自動化の記事",
		Slug:        "automation-article",
		Description: "記事の概要です。",
		Body:        body,
		Tags:        []string{"go", "automation", "ci"},
		Category:    "tech",
		Author:      "tinou",
		CreatedAt:   time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC),
		Platforms: interfaces.PlatformSettings{
			Note: interfaces.NoteSettings{Enabled: true, Status: interfaces.StatusDraft},
			Zenn: interfaces.ZennSettings{
				Enabled: true,
				Status:  interfaces.StatusPublished,
				Emoji:   "🚀",
				Topics:  []string{"go", "cicd"},
			},
			Qiita: interfaces.QiitaSettings{Enabled: true},
			Blog:  interfaces.BlogSettings{Enabled: true},
		},
	}
}

func TestConvertUnknownDestination(t *testing.T) {
	r := NewRegistry(Options{})

	_, err := r.Convert(testArticle(t), "medium")
	if !errors.Is(err, ErrUnknownDestination) {
		t.Fatalf("expected ErrUnknownDestination, got %v", err)
	}
}

func TestConvertZenn(t *testing.T) {
	r := NewRegistry(Options{})
	out, err := r.Convert(testArticle(t), DestinationZenn)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if strings.Contains(out, "ストーリー部分です") {
		t.Fatalf("story section must be removed for zenn:\n%s", out)
	}
	if !strings.Contains(out, "technical body") || !strings.Contains(out, "func main()") {
		t.Fatalf("technical content must survive on zenn:\n%s", out)
	}
	if !strings.Contains(out, "zenn限定の段落") {
		t.Fatalf("own destination block must be kept:\n%s", out)
	}
	if strings.Contains(out, "note限定の段落") {
		t.Fatalf("foreign destination block must be dropped:\n%s", out)
	}
	if !strings.Contains(out, "ブログで全文を読む") {
		t.Fatalf("footer missing:\n%s", out)
	}
}

func TestConvertZennFrontMatterRoundTrip(t *testing.T) {
	r := NewRegistry(Options{})
	article := testArticle(t)

	out, err := r.Convert(article, DestinationZenn)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	var meta struct {
		Title     string   `yaml:"title"`
		Emoji     string   `yaml:"emoji"`
		Topics    []string `yaml:"topics"`
		Published bool     `yaml:"published"`
		Canonical string   `yaml:"canonical"`
	}
	if _, err := frontmatter.Parse(strings.NewReader(out), &meta); err != nil {
		t.Fatalf("re-parse front matter: %v", err)
	}

	if meta.Title != article.Title {
		t.Fatalf("title mismatch: %q", meta.Title)
	}
	if meta.Emoji != "🚀" || !meta.Published {
		t.Fatalf("settings lost: %+v", meta)
	}
	if len(meta.Topics) != 2 || meta.Topics[0] != "go" || meta.Topics[1] != "cicd" {
		t.Fatalf("topics mismatch: %v", meta.Topics)
	}
	if meta.Canonical != "https://blog.secure-auto-lab.com/articles/automation-article" {
		t.Fatalf("canonical mismatch: %q", meta.Canonical)
	}
}

func TestConvertZennCapsTopics(t *testing.T) {
	r := NewRegistry(Options{})
	article := testArticle(t)
	article.Platforms.Zenn.Topics = []string{"a", "b", "c", "d", "e", "f", "g"}

	out, err := r.Convert(article, DestinationZenn)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	var meta struct {
		Topics []string `yaml:"topics"`
	}
	if _, err := frontmatter.Parse(strings.NewReader(out), &meta); err != nil {
		t.Fatalf("re-parse front matter: %v", err)
	}
	if len(meta.Topics) != zennMaxTopics {
		t.Fatalf("expected %d topics, got %v", zennMaxTopics, meta.Topics)
	}
}

func TestConvertNote(t *testing.T) {
	r := NewRegistry(Options{})
	out, err := r.Convert(testArticle(t), DestinationNote)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if strings.Contains(out, "technical body") || strings.Contains(out, "実装方法") {
		t.Fatalf("technical section must be removed for note:\n%s", out)
	}
	if strings.Contains(out, "func main()") {
		t.Fatalf("code must not leak to note:\n%s", out)
	}
	if !strings.Contains(out, "ストーリー部分です") {
		t.Fatalf("story content must survive on note:\n%s", out)
	}
	if !strings.Contains(out, "note限定の段落") {
		t.Fatalf("own destination block must be kept:\n%s", out)
	}
	if strings.Contains(out, "zenn限定の段落") {
		t.Fatalf("foreign destination block must be dropped:\n%s", out)
	}
	if !strings.Contains(out, `href="https://blog.secure-auto-lab.com/articles/automation-article"`) {
		t.Fatalf("canonical link must appear in the footer:\n%s", out)
	}
	if !strings.Contains(out, "name=") || !strings.Contains(out, "id=") {
		t.Fatalf("note blocks must carry identifier attributes:\n%s", out)
	}
}

func TestConvertQiitaSummaryOnly(t *testing.T) {
	r := NewRegistry(Options{})
	article := testArticle(t)

	out, err := r.Convert(article, DestinationQiita)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if strings.Contains(out, "technical body") || strings.Contains(out, "共通の本文です") {
		t.Fatalf("qiita must not reproduce the body:\n%s", out)
	}
	for _, want := range []string{
		"# " + article.Title,
		article.Description,
		"go / automation / ci",
		"https://blog.secure-auto-lab.com/articles/automation-article",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in qiita output:\n%s", want, out)
		}
	}
}

func TestConvertBlogFrontMatterRoundTrip(t *testing.T) {
	r := NewRegistry(Options{})
	article := testArticle(t)

	out, err := r.Convert(article, DestinationBlog)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	var meta struct {
		Title    string   `yaml:"title"`
		PubDate  string   `yaml:"pubDate"`
		Category string   `yaml:"category"`
		Tags     []string `yaml:"tags"`
		Author   string   `yaml:"author"`
	}
	body, err := frontmatter.Parse(strings.NewReader(out), &meta)
	if err != nil {
		t.Fatalf("re-parse front matter: %v", err)
	}

	if meta.Title != article.Title || meta.Author != "tinou" {
		t.Fatalf("front matter mismatch: %+v", meta)
	}
	if meta.PubDate != "2026-08-01" {
		t.Fatalf("pubDate mismatch: %q", meta.PubDate)
	}
	if meta.Category != "dev-tips" {
		t.Fatalf("category alias not resolved: %q", meta.Category)
	}
	if len(meta.Tags) != 3 {
		t.Fatalf("tags mismatch: %v", meta.Tags)
	}

	// the blog keeps both editorial tracks and its own conditional blocks
	text := string(body)
	for _, want := range []string{"ストーリー部分です", "technical body", "func main()"} {
		if !strings.Contains(text, want) {
			t.Fatalf("blog body must keep %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "zenn限定の段落") || strings.Contains(text, "note限定の段落") {
		t.Fatalf("foreign destination blocks must be dropped:\n%s", text)
	}
}

func TestConvertEnabledSkipsDisabled(t *testing.T) {
	r := NewRegistry(Options{})
	article := testArticle(t)
	article.Platforms.Qiita.Enabled = false

	out, err := r.ConvertEnabled(article)
	if err != nil {
		t.Fatalf("ConvertEnabled: %v", err)
	}
	if _, ok := out["qiita"]; ok {
		t.Fatalf("disabled destination rendered")
	}
	for _, name := range []string{"note", "zenn", "blog"} {
		if out[name] == "" {
			t.Fatalf("missing rendering for %s", name)
		}
	}
}

func TestDestinationsSorted(t *testing.T) {
	r := NewRegistry(Options{})
	got := r.Destinations()
	want := []Destination{DestinationBlog, DestinationNote, DestinationQiita, DestinationZenn}
	if len(got) != len(want) {
		t.Fatalf("Destinations() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Destinations() = %v, want %v", got, want)
		}
	}
}
