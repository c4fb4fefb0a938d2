package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	healthResponse      = `{"status":"ok"}`
	unhealthyResponse   = `{"status":"unavailable"}`
	healthCheckDeadline = 2 * time.Second
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// healthHandler answers readiness/liveness checks. When a session store
// pinger is configured an unreachable store reports 503.
func healthHandler(p Pinger, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, body := http.StatusOK, healthResponse
		if p != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthCheckDeadline)
			err := p.Ping(ctx)
			cancel()
			if err != nil {
				if logger != nil {
					logger.WarnContext(r.Context(), "health check failed", "error", err)
				}
				status, body = http.StatusServiceUnavailable, unhealthyResponse
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(status)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = io.WriteString(w, body)
	}
}
