// Package publish orchestrates a full cross-posting run: validate the
// article, render it per destination, hand each rendition to that
// destination's publisher, and record the outcome.
package publish

import (
	"context"
	"fmt"

	"github.com/secure-auto-lab/crosspost/internal/article"
	"github.com/secure-auto-lab/crosspost/internal/convert"
	"github.com/secure-auto-lab/crosspost/internal/history"
	"github.com/secure-auto-lab/crosspost/internal/logging"
	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

// Service sequences conversion and delivery across destinations. Transport
// lives behind the Publisher capability; the service owns ordering,
// validation, and history.
type Service struct {
	registry   *convert.Registry
	publishers map[convert.Destination]interfaces.Publisher
	history    *history.Store
	logger     interfaces.Logger
}

// NewService builds a publish service. The history store is optional; when
// nil, outcomes are logged but not persisted.
func NewService(registry *convert.Registry, publishers []interfaces.Publisher, store *history.Store, provider interfaces.LoggerProvider) *Service {
	if registry == nil {
		registry = convert.NewRegistry(convert.Options{})
	}
	byDest := make(map[convert.Destination]interfaces.Publisher, len(publishers))
	for _, p := range publishers {
		if p == nil {
			continue
		}
		byDest[convert.Destination(p.Destination())] = p
	}
	return &Service{
		registry:   registry,
		publishers: byDest,
		history:    store,
		logger:     logging.PublishLogger(provider),
	}
}

// PublishAll delivers the article to every destination enabled in its
// platform settings, in the fixed publishing order. Destinations without a
// configured publisher are skipped with a warning; delivery failures are
// recorded in the results rather than aborting the remaining destinations.
func (s *Service) PublishAll(ctx context.Context, art *interfaces.Article) ([]interfaces.PublishResult, error) {
	if err := article.Validate(art); err != nil {
		return nil, wrapValidationError(err)
	}

	var results []interfaces.PublishResult
	for _, name := range art.EnabledDestinations() {
		if err := ctx.Err(); err != nil {
			return results, wrapContextError(err)
		}

		dest := convert.Destination(name)
		publisher, ok := s.publishers[dest]
		if !ok {
			s.logger.Warn("publisher not configured", "destination", name)
			continue
		}

		result, err := s.publishOne(ctx, art, dest, publisher)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// PublishOne delivers the article to a single destination regardless of the
// enabled flags.
func (s *Service) PublishOne(ctx context.Context, art *interfaces.Article, dest convert.Destination) (interfaces.PublishResult, error) {
	if err := article.Validate(art); err != nil {
		return interfaces.PublishResult{}, wrapValidationError(err)
	}

	publisher, ok := s.publishers[dest]
	if !ok {
		return interfaces.PublishResult{}, wrapValidationError(
			fmt.Errorf("no publisher configured for destination %q", dest))
	}
	return s.publishOne(ctx, art, dest, publisher)
}

// Convert renders without delivering; the dry-run path.
func (s *Service) Convert(art *interfaces.Article) (map[string]string, error) {
	if err := article.Validate(art); err != nil {
		return nil, wrapValidationError(err)
	}
	rendered, err := s.registry.ConvertEnabled(art)
	if err != nil {
		return nil, wrapConvertError(err)
	}
	return rendered, nil
}

func (s *Service) publishOne(ctx context.Context, art *interfaces.Article, dest convert.Destination, publisher interfaces.Publisher) (interfaces.PublishResult, error) {
	if err := article.ValidateForDestination(art, string(dest)); err != nil {
		return interfaces.PublishResult{}, wrapValidationError(err)
	}

	rendered, err := s.registry.Convert(art, dest)
	if err != nil {
		return interfaces.PublishResult{}, wrapConvertError(err)
	}

	result, err := publisher.Publish(ctx, art, rendered)
	if err != nil {
		s.logger.Error("publish failed", "destination", dest, "slug", art.Slug, "error", err)
		result = interfaces.PublishResult{
			Destination: string(dest),
			Error:       err.Error(),
		}
	} else if result.Success {
		s.logger.Info("published", "destination", dest, "slug", art.Slug, "url", result.URL)
	} else {
		s.logger.Error("publish rejected", "destination", dest, "slug", art.Slug, "error", result.Error)
	}

	s.record(ctx, art, result)
	return result, nil
}

func (s *Service) record(ctx context.Context, art *interfaces.Article, result interfaces.PublishResult) {
	if s.history == nil {
		return
	}
	entry := history.Entry{
		Slug:        art.Slug,
		Destination: result.Destination,
		URL:         result.URL,
		Success:     result.Success,
		Error:       result.Error,
	}
	if err := s.history.Record(ctx, entry); err != nil {
		s.logger.Error("history record failed", "destination", result.Destination, "error", err)
	}
}

// URLs collapses publish results into a destination-to-URL map for the
// announcement composer, keeping only successful deliveries.
func URLs(results []interfaces.PublishResult) map[string]string {
	urls := make(map[string]string, len(results))
	for _, r := range results {
		if r.Success && r.URL != "" {
			urls[r.Destination] = r.URL
		}
	}
	return urls
}
