package logging

import (
	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

const (
	rootModule     = "crosspost"
	articleModule  = "crosspost.article"
	convertModule  = "crosspost.convert"
	publishModule  = "crosspost.publish"
	announceModule = "crosspost.announce"
	historyModule  = "crosspost.history"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as structured context so downstream entries can be filtered
// predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ArticleLogger returns the logger namespace reserved for article parsing.
func ArticleLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, articleModule)
}

// ConvertLogger returns the logger namespace reserved for the converter
// registry.
func ConvertLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, convertModule)
}

// PublishLogger returns the logger namespace reserved for the publish
// orchestrator.
func PublishLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, publishModule)
}

// AnnounceLogger returns the logger namespace reserved for announcements.
func AnnounceLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, announceModule)
}

// HistoryLogger returns the logger namespace reserved for the publish
// history store.
func HistoryLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, historyModule)
}
