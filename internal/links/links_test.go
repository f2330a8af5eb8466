package links

import "testing"

func TestCanonical(t *testing.T) {
	b := New(Options{})

	url, err := b.Canonical("my-article")
	if err != nil {
		t.Fatalf("Canonical: %v", err)
	}
	if url != "https://blog.secure-auto-lab.com/articles/my-article" {
		t.Fatalf("Canonical = %q", url)
	}
}

func TestCanonicalCustomBase(t *testing.T) {
	b := New(Options{BlogBaseURL: "https://example.org/"})

	url, err := b.Canonical("post")
	if err != nil {
		t.Fatalf("Canonical: %v", err)
	}
	if url != "https://example.org/articles/post" {
		t.Fatalf("Canonical = %q", url)
	}
}

func TestZennArticle(t *testing.T) {
	b := New(Options{ZennUsername: "writer"})

	url, err := b.ZennArticle("post")
	if err != nil {
		t.Fatalf("ZennArticle: %v", err)
	}
	if url != "https://zenn.dev/writer/articles/post" {
		t.Fatalf("ZennArticle = %q", url)
	}
}
