package article

import (
	"testing"

	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

func validArticle(tb testing.TB) *interfaces.Article {
	tb.Helper()
	return &interfaces.Article{
		Title: "T",
		Slug:  "valid-slug",
		Body:  "body",
		Tags:  []string{"go"},
	}
}

func TestValidateRequiredFields(t *testing.T) {
	if err := Validate(validArticle(t)); err != nil {
		t.Fatalf("valid article rejected: %v", err)
	}

	missing := validArticle(t)
	missing.Title = ""
	if err := Validate(missing); err == nil {
		t.Fatalf("empty title must fail")
	}

	empty := validArticle(t)
	empty.Body = ""
	if err := Validate(empty); err == nil {
		t.Fatalf("empty body must fail")
	}
}

func TestValidateSlugURLSafe(t *testing.T) {
	for _, bad := range []string{"has space", "日本語", "UPPER_case!"} {
		a := validArticle(t)
		a.Slug = bad
		if err := Validate(a); err == nil {
			t.Fatalf("slug %q must be rejected", bad)
		}
	}
}

func TestValidateNotePrice(t *testing.T) {
	cases := []struct {
		price int
		ok    bool
	}{
		{0, true},
		{100, true},
		{50000, true},
		{99, false},
		{50001, false},
		{-1, false},
	}
	for _, tc := range cases {
		a := validArticle(t)
		a.Platforms.Note.Price = tc.price
		err := ValidateForDestination(a, "note")
		if tc.ok && err != nil {
			t.Fatalf("price %d should pass: %v", tc.price, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("price %d should fail", tc.price)
		}
	}
}

func TestValidateZennTopics(t *testing.T) {
	a := validArticle(t)
	a.Platforms.Zenn.Topics = []string{"go", "cli"}
	if err := ValidateForDestination(a, "zenn"); err != nil {
		t.Fatalf("clean topics rejected: %v", err)
	}

	a.Platforms.Zenn.Topics = []string{"go tools"}
	if err := ValidateForDestination(a, "zenn"); err == nil {
		t.Fatalf("topic with a space must fail")
	}
}

func TestValidateQiitaTagCount(t *testing.T) {
	a := validArticle(t)
	a.Tags = []string{"a", "b", "c", "d", "e"}
	if err := ValidateForDestination(a, "qiita"); err != nil {
		t.Fatalf("five tags allowed: %v", err)
	}

	a.Tags = append(a.Tags, "f")
	if err := ValidateForDestination(a, "qiita"); err == nil {
		t.Fatalf("six tags must fail")
	}
}

func TestValidateUnknownDestination(t *testing.T) {
	if err := ValidateForDestination(validArticle(t), "devto"); err == nil {
		t.Fatalf("unknown destination must fail")
	}
}
