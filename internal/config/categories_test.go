package config

import "testing"

func TestResolveCategory(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"security", "security"},
		{"tech", "dev-tips"},
		{"llm", "ai"},
		{"ci/cd", "automation"},
		{"unknown-thing", DefaultCategory},
		{"", DefaultCategory},
	}
	for _, tc := range cases {
		if got := ResolveCategory(tc.in); got != tc.want {
			t.Fatalf("ResolveCategory(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	first := Categories()
	first["security"] = "mutated"

	if Categories()["security"] == "mutated" {
		t.Fatalf("Categories must return a defensive copy")
	}
}
