// Package config carries the fixed editorial tables and the runtime
// configuration for the crosspost pipeline.
package config

// DefaultCategory is used when an article's category resolves to nothing.
const DefaultCategory = "dev-tips"

// blogCategories is the single source of truth for blog categories; keys are
// category slugs, values are human descriptions.
var blogCategories = map[string]string{
	"automation":     "自動化ツール・ワークフロー・CI/CD",
	"ai":             "AI・機械学習・LLM活用",
	"security":       "セキュリティ・認証・暗号化",
	"dev-tips":       "開発Tips・技術解説・API調査",
	"projects":       "プロジェクト紹介・ツール紹介",
	"web":            "Web開発・フロントエンド・バックエンド",
	"infrastructure": "インフラ・クラウド・DevOps",
}

// categoryAliases maps common shorthand to valid categories.
var categoryAliases = map[string]string{
	"tech":     "dev-tips",
	"tutorial": "dev-tips",
	"tool":     "projects",
	"tools":    "projects",
	"project":  "projects",
	"ml":       "ai",
	"llm":      "ai",
	"frontend": "web",
	"backend":  "web",
	"devops":   "infrastructure",
	"cloud":    "infrastructure",
	"cicd":     "automation",
	"ci/cd":    "automation",
	"workflow": "automation",
	"auth":     "security",
	"crypto":   "security",
}

// Categories returns a copy of the category table so callers cannot mutate
// the shared data.
func Categories() map[string]string {
	out := make(map[string]string, len(blogCategories))
	for slug, desc := range blogCategories {
		out[slug] = desc
	}
	return out
}

// ResolveCategory maps a raw category string to a valid blog category,
// passing through known slugs, resolving aliases, and defaulting otherwise.
func ResolveCategory(category string) string {
	if _, ok := blogCategories[category]; ok {
		return category
	}
	if resolved, ok := categoryAliases[category]; ok {
		return resolved
	}
	return DefaultCategory
}
