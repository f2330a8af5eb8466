package announce

import (
	"context"

	goerrors "github.com/goliatone/go-errors"

	"github.com/secure-auto-lab/crosspost/internal/logging"
	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

const unknownNetworkCode = "ANNOUNCE_UNKNOWN_NETWORK"

// Service fans a published article out to the configured social networks.
// Delivery transport lives behind the Announcer capability; the service only
// composes messages and sequences calls.
type Service struct {
	composer   *Composer
	announcers map[Network]interfaces.Announcer
	logger     interfaces.Logger
}

// NewService builds an announcement service over the supplied announcers.
func NewService(announcers []interfaces.Announcer, provider interfaces.LoggerProvider) *Service {
	byNetwork := make(map[Network]interfaces.Announcer, len(announcers))
	for _, a := range announcers {
		if a == nil {
			continue
		}
		byNetwork[Network(a.Network())] = a
	}
	return &Service{
		composer:   NewComposer(),
		announcers: byNetwork,
		logger:     logging.AnnounceLogger(provider),
	}
}

// AnnounceAll posts to every network listed in the article's announcement
// settings, in order. Networks without a configured announcer are skipped
// with a warning; delivery failures are recorded in the results rather than
// aborting the run.
func (s *Service) AnnounceAll(ctx context.Context, article *interfaces.Article, urls map[string]string) ([]interfaces.AnnounceResult, error) {
	if !article.Announcement.Enabled {
		s.logger.Info("announcements disabled for article", "slug", article.Slug)
		return nil, nil
	}

	var results []interfaces.AnnounceResult
	for _, name := range article.Announcement.Networks {
		if err := ctx.Err(); err != nil {
			return results, goerrors.Wrap(err, goerrors.CategoryCommand, "announcement run cancelled")
		}

		announcer, ok := s.announcers[Network(name)]
		if !ok {
			s.logger.Warn("announcer not configured", "network", name)
			continue
		}

		result, err := s.post(ctx, announcer, article, Network(name), urls)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// AnnounceSingle composes and posts to one network.
func (s *Service) AnnounceSingle(ctx context.Context, article *interfaces.Article, network Network, urls map[string]string) (interfaces.AnnounceResult, error) {
	announcer, ok := s.announcers[network]
	if !ok {
		return interfaces.AnnounceResult{}, goerrors.Wrap(ErrUnknownNetwork, goerrors.CategoryValidation, "no announcer for network").
			WithTextCode(unknownNetworkCode)
	}
	return s.post(ctx, announcer, article, network, urls)
}

func (s *Service) post(ctx context.Context, announcer interfaces.Announcer, article *interfaces.Article, network Network, urls map[string]string) (interfaces.AnnounceResult, error) {
	message, err := s.composer.Compose(article, network, urls)
	if err != nil {
		return interfaces.AnnounceResult{}, goerrors.Wrap(err, goerrors.CategoryValidation, "compose announcement").
			WithTextCode(unknownNetworkCode)
	}

	result, err := announcer.Post(ctx, message)
	if err != nil {
		s.logger.Error("announcement post failed", "network", network, "error", err)
		return interfaces.AnnounceResult{
			Network: string(network),
			Error:   err.Error(),
		}, nil
	}

	if result.Success {
		s.logger.Info("announced", "network", network, "url", result.URL)
	} else {
		s.logger.Error("announcement rejected", "network", network, "error", result.Error)
	}
	return result, nil
}
