// Package reporting forwards errors to Sentry when a DSN is configured.
package reporting

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/BruksfildServices01/farmergpt/internal/config"
)

// Reporter is a no-op when Sentry is not configured. A nil *Reporter is
// also valid.
type Reporter struct {
	initialized bool
}

func New(cfg *config.Config, log *slog.Logger) *Reporter {
	if cfg.SentryDSN == "" {
		log.Info("SENTRY_DSN not set, Sentry disabled")
		return &Reporter{}
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.SentryEnvironment,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Error("Sentry initialization failed", "error", err)
		return &Reporter{}
	}

	log.Info("Sentry initialized", "environment", cfg.SentryEnvironment)
	return &Reporter{initialized: true}
}

func (r *Reporter) Enabled() bool {
	return r != nil && r.initialized
}

// Capture sends err with the given tags.
func (r *Reporter) Capture(err error, tags map[string]string) {
	if !r.Enabled() || err == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelError)
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}

// Flush waits for buffered events to be sent.
func (r *Reporter) Flush(timeout time.Duration) bool {
	if !r.Enabled() {
		return true
	}
	return sentry.Flush(timeout)
}
