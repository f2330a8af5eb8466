package article

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"

	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

const (
	notePriceMin = 100
	notePriceMax = 50000
	qiitaMaxTags = 5
)

// Validate checks the article-wide invariants shared by every destination.
func Validate(a *interfaces.Article) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Title, validation.Required),
		validation.Field(&a.Slug, validation.Required, validation.By(urlSafeSlug)),
		validation.Field(&a.Body, validation.Required),
	)
}

// ValidateForDestination layers destination-specific rules on top of the
// shared ones.
func ValidateForDestination(a *interfaces.Article, destination string) error {
	if err := Validate(a); err != nil {
		return err
	}

	switch destination {
	case "note":
		return validateNote(a.Platforms.Note)
	case "zenn":
		return validateZenn(a.Platforms.Zenn)
	case "qiita":
		return validateQiita(a)
	case "blog":
		return nil
	default:
		return validation.NewError("crosspost.article.unknown_destination",
			fmt.Sprintf("unknown destination %q", destination))
	}
}

func urlSafeSlug(value any) error {
	s, _ := value.(string)
	if !slug.IsValid(s) {
		return validation.NewError("crosspost.article.slug_invalid",
			fmt.Sprintf("slug %q is not URL-safe", s))
	}
	return nil
}

// note sells articles free or between 100 and 50000 yen.
func validateNote(settings interfaces.NoteSettings) error {
	if settings.Price == 0 {
		return nil
	}
	if settings.Price < notePriceMin || settings.Price > notePriceMax {
		return validation.NewError("crosspost.article.note_price_range",
			fmt.Sprintf("note price %d must be 0 or between %d and %d", settings.Price, notePriceMin, notePriceMax))
	}
	return nil
}

func validateZenn(settings interfaces.ZennSettings) error {
	for _, topic := range settings.Topics {
		if strings.ContainsRune(topic, ' ') {
			return validation.NewError("crosspost.article.zenn_topic_space",
				fmt.Sprintf("zenn topic %q must not contain spaces", topic))
		}
	}
	return nil
}

func validateQiita(a *interfaces.Article) error {
	if len(a.Tags) > qiitaMaxTags {
		return validation.NewError("crosspost.article.qiita_tag_count",
			fmt.Sprintf("qiita accepts at most %d tags, got %d", qiitaMaxTags, len(a.Tags)))
	}
	return nil
}
