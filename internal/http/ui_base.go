package httpx

import (
	"context"
	"html"
	"log/slog"
	"net/http"

	apperrors "github.com/jobconnect/jobconnect-web/internal/errors"
	"github.com/jobconnect/jobconnect-web/internal/ports"
	"github.com/jobconnect/jobconnect-web/internal/service"
)

const (
	errMsgFixBelow    = "Please fix the errors below."
	errMsgUnavailable = "An unexpected error occurred. Please try again."
)

// Dashboards is the subset of service.DashboardService used by page handlers.
type Dashboards interface {
	JobSeeker(ctx context.Context, token string) (service.JobSeekerDashboard, error)
	Recruiter(ctx context.Context, token, userID string) (service.RecruiterDashboard, error)
	Admin(ctx context.Context, token string) (service.AdminDashboard, error)
	JobApplicants(ctx context.Context, token, jobID string) (service.Applicants, error)
	Messages(ctx context.Context, token, otherUserID string) (service.Inbox, error)
}

var _ Dashboards = (*service.DashboardService)(nil)

// UIHandlers serves browser-facing pages.
type UIHandlers struct {
	T          *TemplateRenderer
	API        ports.MarketplaceAPI
	Dashboards Dashboards
	Flash      *FlashStore
	IsDev      bool
	Logger     *slog.Logger
}

func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta  PageMeta
	Fetch func(ctx context.Context, p Principal, data map[string]any) error
}

// Page builds base data, fetches page data and renders. A failed fetch
// renders the page with an inline error instead of failing the request.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	data := h.pageData(w, r, spec.Meta).Build()
	if spec.Fetch != nil {
		p, _ := PrincipalFromContext(r.Context())
		if err := spec.Fetch(r.Context(), p, data); err != nil {
			if r.Context().Err() != nil {
				return
			}
			h.logger().WarnContext(r.Context(), "page data unavailable",
				"page", spec.Meta.CurrentPage, "error", err)
			markPageError(data, err)
		}
	}
	h.render(w, r, http.StatusOK, data)
}

// pageData starts a builder with layout data and pending flashes.
func (h *UIHandlers) pageData(w http.ResponseWriter, r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return NewTemplateData(r, meta).WithFlashes(h.Flash.Consume(w, r))
}

func (h *UIHandlers) render(w http.ResponseWriter, r *http.Request, status int, data map[string]any) {
	if h.T == nil {
		http.Error(w, "templates unavailable", http.StatusInternalServerError)
		return
	}
	if err := h.T.RenderFull(w, status, data); err != nil {
		h.logAndRenderTemplateError(w, r, err)
	}
}

// markPageError records a user-facing message for a failed fetch.
func markPageError(data map[string]any, err error) {
	data["Error"] = true
	if _, ok := data["ErrorMessage"]; ok {
		return
	}
	data["ErrorMessage"] = userMessage(err, errMsgUnavailable)
}

// userMessage exposes backend messages that are meant for users and hides
// transport and internal failures behind fallback.
func userMessage(err error, fallback string) string {
	switch {
	case apperrors.IsValidation(err), apperrors.IsConflict(err),
		apperrors.IsNotFound(err), apperrors.IsUnauthenticated(err),
		apperrors.IsForbidden(err):
		return apperrors.UserMessage(err, fallback)
	default:
		return fallback
	}
}

// redirectWithFlash queues a notification and navigates with 303.
func (h *UIHandlers) redirectWithFlash(w http.ResponseWriter, r *http.Request, kind, message, to string) {
	h.Flash.Add(w, r, kind, message)
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// NotFound renders the not-found page.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(w, r, PageMeta{Title: "Page not found", CurrentPage: PageNotFound}).Build()
	h.render(w, r, http.StatusNotFound, data)
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger().Error("template rendering failed",
		"error", err,
		"path", r.URL.Path,
		"method", r.Method,
	)

	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<pre class="template-error">` + html.EscapeString(err.Error()) + `</pre>`))
		return
	}
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
