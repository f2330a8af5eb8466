package logging

import (
	"context"
	"testing"

	"github.com/secure-auto-lab/crosspost/pkg/interfaces"
)

type recordingLogger struct {
	fields map[string]any
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithContext(context.Context) interfaces.Logger { return r }

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := make(map[string]any, len(r.fields)+len(fields))
	for k, v := range r.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &recordingLogger{fields: merged}
}

type recordingProvider struct {
	requested []string
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	p.requested = append(p.requested, name)
	return &recordingLogger{}
}

func TestModuleLoggerAttachesModuleField(t *testing.T) {
	provider := &recordingProvider{}

	logger := ModuleLogger(provider, convertModule)

	rec, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected fields logger, got %T", logger)
	}
	if rec.fields["module"] != convertModule {
		t.Fatalf("module field missing: %#v", rec.fields)
	}
	if len(provider.requested) != 1 || provider.requested[0] != convertModule {
		t.Fatalf("provider asked for %v", provider.requested)
	}
}

func TestModuleLoggerDefaultsToRoot(t *testing.T) {
	provider := &recordingProvider{}
	ModuleLogger(provider, "")
	if provider.requested[0] != rootModule {
		t.Fatalf("expected root module, got %v", provider.requested)
	}
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, publishModule)
	if logger == nil {
		t.Fatalf("expected a usable logger")
	}
	// must be safe to use without panicking
	logger.Info("noop", "k", "v")
}
