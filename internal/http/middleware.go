package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	domainauth "github.com/jobconnect/jobconnect-web/internal/domain/auth"
	"github.com/jobconnect/jobconnect-web/internal/observability/metrics"
	"github.com/jobconnect/jobconnect-web/internal/observability/statsd"
	"github.com/jobconnect/jobconnect-web/internal/service"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &respWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *respWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *respWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

func (w *respWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// Recover returns the top-level error boundary. A panic anywhere below it is
// logged and, when nothing has been written yet, answered with the
// "Something went wrong" page offering Reload Page and Go Home.
func Recover(logger *slog.Logger, tr *TemplateRenderer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := &respWriter{ResponseWriter: w, status: http.StatusOK}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error("panic",
					slog.Any("error", rec),
					slog.String("path", r.URL.Path),
					slog.String("method", r.Method),
					slog.String("stack", string(debug.Stack())))
				if ww.wroteHeader {
					return
				}
				renderErrorBoundary(w, r, tr)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// errorBoundaryHTML is used when templates are unavailable or fail themselves.
const errorBoundaryHTML = `<!doctype html><html lang="en"><head><meta charset="utf-8"><title>Something went wrong</title></head>` +
	`<body><main class="error-boundary"><h1>Something went wrong</h1>` +
	`<p>An unexpected error occurred. Please try again.</p>` +
	`<p><a class="btn" href="" onclick="location.reload();return false;">Reload Page</a> ` +
	`<a class="btn btn-secondary" href="/">Go Home</a></p></main></body></html>`

func renderErrorBoundary(w http.ResponseWriter, r *http.Request, tr *TemplateRenderer) {
	w.Header().Del("Content-Encoding")
	w.Header().Del("Content-Length")
	if tr != nil {
		data := map[string]any{
			"Title":     "Something went wrong",
			"ReloadURL": safeRedirectPath(r.URL.RequestURI()),
		}
		if err := tr.RenderError(w, http.StatusInternalServerError, data); err == nil {
			return
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(errorBoundaryHTML))
}

// SessionResolver is the subset of service.SessionResolver used by the guard.
type SessionResolver interface {
	ConsumeHandoff(ctx context.Context, sessionID, path string) *domainauth.Identity
	Resolve(ctx context.Context, sessionID string, handoff *domainauth.Identity) (service.Resolution, error)
	Snapshot(ctx context.Context, sessionID string) (domainauth.Identity, bool)
}

var _ SessionResolver = (*service.SessionResolver)(nil)

// GuardOptions configures RequireRoles.
type GuardOptions struct {
	Resolver SessionResolver
	Cookies  SessionCookies
	Metrics  statsd.Sink
	Logger   *slog.Logger
}

// RequireRoles returns the route guard for a subtree of pages. The request
// blocks until the session is resolved; nothing below the guard runs before
// that. Unauthenticated visitors are sent to the login page and visitors
// whose role is not in roles are sent to the default landing page. An empty
// roles list admits any authenticated role.
func RequireRoles(opts GuardOptions, roles ...domainauth.Role) func(http.Handler) http.Handler {
	allowed := domainauth.RoleSet(roles)
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			sid := opts.Cookies.Read(r)

			handoff := opts.Resolver.ConsumeHandoff(ctx, sid, r.URL.Path)
			res, err := opts.Resolver.Resolve(ctx, sid, handoff)
			if err != nil {
				// The client went away; the outcome is discarded.
				if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
					logger.WarnContext(ctx, "session resolution aborted", "error", err)
				}
				return
			}

			decision := domainauth.Decide(res.State, allowed)
			metrics.EmitGuardDecision(opts.Metrics, metrics.GuardMetric{
				Decision: decision.String(),
				Source:   res.Source,
				Duration: res.Duration,
			})

			switch decision {
			case domainauth.DecisionRender:
				ctx = SetPrincipalInContext(ctx, Principal{Identity: res.State.Identity, Token: res.Token})
				next.ServeHTTP(w, r.WithContext(ctx))
			case domainauth.DecisionRedirectLogin, domainauth.DecisionRedirectDefault:
				logger.DebugContext(ctx, "route guard redirect",
					"path", r.URL.Path, "decision", decision.String())
				http.Redirect(w, r, decision.Location(), http.StatusSeeOther)
			default:
				logger.ErrorContext(ctx, "route guard left unresolved", "path", r.URL.Path)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		})
	}
}

// IdentitySnapshot loads the stored identity snapshot for public pages so
// they can offer a link back to the dashboard. It never calls the backend
// and never blocks access.
func IdentitySnapshot(resolver SessionResolver, cookies SessionCookies) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sid := cookies.Read(r); sid != "" && resolver != nil {
				if id, ok := resolver.Snapshot(r.Context(), sid); ok {
					r = r.WithContext(setSnapshotInContext(r.Context(), id))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
