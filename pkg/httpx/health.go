package httpx

import (
	"context"
	"net/http"
	"time"
)

const healthProbeTimeout = 2 * time.Second

// HealthChecker is any dependency with a Ping. The database pool, the Redis
// client, and the event bus all satisfy it.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks names the dependencies the health endpoint probes.
type HealthChecks struct {
	Database HealthChecker
	Redis    HealthChecker
	EventBus HealthChecker
}

// HealthHandler probes every registered dependency and reports each one by
// name. Any failure flips the overall status to "degraded" and the response
// to 503, which is what load balancers key on.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	probes := []struct {
		name string
		dep  HealthChecker
	}{
		{"database", checks.Database},
		{"redis", checks.Redis},
		{"event_bus", checks.EventBus},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
		defer cancel()

		resp := map[string]string{"status": "ok"}
		code := http.StatusOK
		for _, p := range probes {
			if err := p.dep.Ping(ctx); err != nil {
				resp[p.name] = "unreachable"
				resp["status"] = "degraded"
				code = http.StatusServiceUnavailable
			} else {
				resp[p.name] = "ok"
			}
		}
		JSON(w, code, resp)
	}
}
