package httpx

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"
)

const (
	rateLimitPerMinute = 100
	maxRequestBody     = 10 << 20
	handlerTimeout     = 30 * time.Second
	corsMaxAgeSeconds  = 300
	hstsMaxAgeSeconds  = 63072000 // two years
)

// ServerConfig holds the options for NewRouter.
type ServerConfig struct {
	ServiceName   string
	IsDevelopment bool
	// CORSAllowedOrigins is a comma-separated list of allowed origins.
	// "*" (dev only) allows all.
	CORSAllowedOrigins string
}

// NewRouter returns a chi.Mux carrying the shared middleware stack. The
// app-specific middlewares (logger, recovery, sentry, otel) are injected so
// this package stays free of their dependencies.
//
// Ordering matters: recovery wraps everything so the panic that Sentry
// re-raises still turns into a JSON 500; RequestID runs before the otel and
// logger middlewares so both can pick it up; RealIP precedes the per-IP rate
// limiter so the limit keys on the client address rather than the proxy's.
// The body cap and handler timeout sit innermost, closest to the handlers
// they protect, with browser security headers applied last.
func NewRouter(
	cfg ServerConfig,
	loggerMiddleware func(http.Handler) http.Handler,
	recoveryMiddleware func(http.Handler) http.Handler,
	sentryMiddleware func(http.Handler) http.Handler,
	otelMiddleware func(http.Handler) http.Handler,
) *chi.Mux {
	sec := secure.New(secure.Options{
		STSSeconds:            hstsMaxAgeSeconds,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'",
		PermissionsPolicy:     "geolocation=(), microphone=(), camera=(), usb=(), magnetometer=(), gyroscope=()",
		IsDevelopment:         cfg.IsDevelopment,
	})

	r := chi.NewRouter()
	r.Use(
		recoveryMiddleware,
		sentryMiddleware,
		middleware.RequestID,
		otelMiddleware,
		loggerMiddleware,
		middleware.RealIP,
		httprate.LimitByIP(rateLimitPerMinute, time.Minute),
		CORSMiddleware(cfg.CORSAllowedOrigins),
		RequestBodyLimit(maxRequestBody),
		middleware.Timeout(handlerTimeout),
		sec.Handler,
	)
	return r
}

// CORSMiddleware restricts cross-origin requests to the given comma-separated
// origins. Credentials are allowed because the session token travels in a
// cookie; without AllowCredentials the browser would strip it from
// cross-origin calls and every request would come back 401.
func CORSMiddleware(allowedOrigins string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   parseOrigins(allowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           corsMaxAgeSeconds,
	})
}

// parseOrigins splits and trims a comma-separated origins string. An empty
// string falls back to "*" so a missing CORS_ALLOWED_ORIGINS does not lock
// out every client in development.
func parseOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p := strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// RequestBodyLimit caps request bodies at maxBytes via http.MaxBytesReader,
// which makes oversized reads fail and lets the decoding layer answer 413.
func RequestBodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// NewServer returns an *http.Server with timeouts set, so a stalled client
// cannot hold a connection open indefinitely.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
}
