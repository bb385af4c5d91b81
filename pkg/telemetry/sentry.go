package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/produtos-api/pkg/config"
)

const (
	sentrySampleRate  = 0.2
	sentryFlushWindow = 2 * time.Second
)

// SetupSentry initializes the Sentry client when a DSN is configured.
// Without one (local development, CI) it does nothing and every Sentry
// call downstream becomes a no-op.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		TracesSampleRate: sentrySampleRate,
	})
	if err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

// SentryFlush drains buffered events. Deferred in main so a crash report
// sent just before shutdown still makes it out.
func SentryFlush() {
	sentry.Flush(sentryFlushWindow)
}

// SentryMiddleware captures panics and attaches a Sentry hub to the request
// context. Repanic stays on so the recovery middleware further out still
// produces the JSON 500 response.
func SentryMiddleware() func(http.Handler) http.Handler {
	h := sentryhttp.New(sentryhttp.Options{Repanic: true})
	return h.Handle
}
