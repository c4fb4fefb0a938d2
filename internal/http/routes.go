package httpx

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"

	jobconnect "github.com/jobconnect/jobconnect-web"
	domainauth "github.com/jobconnect/jobconnect-web/internal/domain/auth"
	"github.com/jobconnect/jobconnect-web/internal/observability/statsd"
	"github.com/jobconnect/jobconnect-web/internal/ports"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Auth       AuthServiceInterface
	Resolver   SessionResolver
	API        ports.MarketplaceAPI
	Dashboards Dashboards
	Flash      *FlashStore
	Cookies    SessionCookies
	// SocialLoginURL is the configured third-party login entry point.
	SocialLoginURL string
	CookieDomain   string
	// CompressionLevel enables gzip (1-9) when positive.
	CompressionLevel int
	Metrics          statsd.Sink
	// Health is pinged by /healthz when set.
	Health Pinger
	// TemplateFS overrides the template source; defaults depend on IsDev.
	TemplateFS fs.FS
	IsDev      bool
	Logger     *slog.Logger
}

// NewRouter creates the HTTP handler with the browser middleware chain:
// error boundary, request logging, compression and CSRF protection.
func NewRouter(services RouterServices) (http.Handler, error) {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if services.Auth == nil || services.Resolver == nil {
		return nil, errors.New("router requires auth service and session resolver")
	}

	templateFS, err := templateSource(services)
	if err != nil {
		return nil, err
	}
	tr, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: templateFS, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("template renderer: %w", err)
	}

	ui := &UIHandlers{
		T:          tr,
		API:        services.API,
		Dashboards: services.Dashboards,
		Flash:      services.Flash,
		IsDev:      services.IsDev,
		Logger:     logger,
	}
	auth := &AuthHandlers{
		Svc:            services.Auth,
		Resolver:       services.Resolver,
		UI:             ui,
		Cookies:        services.Cookies,
		SocialLoginURL: services.SocialLoginURL,
		Logger:         logger,
	}
	guards := guardSet{opts: GuardOptions{
		Resolver: services.Resolver,
		Cookies:  services.Cookies,
		Metrics:  services.Metrics,
		Logger:   logger,
	}}

	mux := http.NewServeMux()
	health := healthHandler(services.Health, logger)
	mux.Handle("GET /healthz", health)
	mux.Handle("HEAD /healthz", health)
	mux.Handle("GET /static/", staticHandler(services.IsDev, logger))

	public := IdentitySnapshot(services.Resolver, services.Cookies)
	registerAuthRoutes(mux, auth, public)
	registerPublicRoutes(mux, ui, public)
	registerJobSeekerRoutes(mux, ui, guards.role(domainauth.RoleJobSeeker))
	registerRecruiterRoutes(mux, ui, guards.role(domainauth.RoleRecruiter))
	registerAdminRoutes(mux, ui, guards.role(domainauth.RoleAdmin))

	var handler http.Handler = &notFoundHandler{mux: mux, ui: ui, public: public}
	handler = CSRFProtection(CSRFConfig{CookieDomain: services.CookieDomain, Skip: skipCSRF})(handler)
	if services.CompressionLevel > 0 {
		handler = Compression(CompressionConfig{Level: services.CompressionLevel, Logger: logger})(handler)
	}
	handler = Logging(logger)(handler)
	handler = Recover(logger, tr)(handler)
	return handler, nil
}

// templateSource picks disk templates in dev mode for live editing and the
// embedded copy otherwise.
func templateSource(services RouterServices) (fs.FS, error) {
	if services.TemplateFS != nil {
		return services.TemplateFS, nil
	}
	if services.IsDev {
		return os.DirFS(TemplatePathFromRoot), nil
	}
	sub, err := fs.Sub(jobconnect.TemplateFS, TemplatePathFromRoot)
	if err != nil {
		return nil, fmt.Errorf("embedded templates: %w", err)
	}
	return sub, nil
}

func skipCSRF(r *http.Request) bool {
	return r.URL.Path == "/healthz" || strings.HasPrefix(r.URL.Path, "/static/")
}

type guardSet struct {
	opts GuardOptions
}

func (g guardSet) role(roles ...domainauth.Role) func(http.Handler) http.Handler {
	return RequireRoles(g.opts, roles...)
}

type wrapFunc = func(http.Handler) http.Handler

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, public wrapFunc) {
	mux.Handle("GET /login", public(http.HandlerFunc(h.LoginPage)))
	mux.HandleFunc("POST /login", h.LoginSubmit)
	mux.Handle("GET /register", public(http.HandlerFunc(h.RegisterPage)))
	mux.HandleFunc("POST /register", h.RegisterSubmit)
	mux.HandleFunc("GET /auth/callback", h.CallbackPage)
	mux.HandleFunc("POST /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}

func registerPublicRoutes(mux *http.ServeMux, h *UIHandlers, public wrapFunc) {
	mux.Handle("GET /{$}", public(http.HandlerFunc(h.Home)))
	mux.Handle("GET /jobs", public(http.HandlerFunc(h.Jobs)))
	mux.Handle("GET /jobs/{id}", public(http.HandlerFunc(h.JobDetail)))
}

func registerJobSeekerRoutes(mux *http.ServeMux, h *UIHandlers, guard wrapFunc) {
	mux.Handle("GET /jobseeker", guard(http.HandlerFunc(h.SeekerDashboard)))
	mux.Handle("GET /jobseeker/search", guard(http.HandlerFunc(h.SeekerSearch)))
	mux.Handle("POST /jobseeker/jobs/{id}/apply", guard(http.HandlerFunc(h.Apply)))
	mux.Handle("GET /jobseeker/applications", guard(http.HandlerFunc(h.SeekerApplications)))
	mux.Handle("GET /jobseeker/messages", guard(http.HandlerFunc(h.Messages)))
	mux.Handle("POST /jobseeker/messages", guard(http.HandlerFunc(h.SendMessage)))
	mux.Handle("GET /jobseeker/profile", guard(http.HandlerFunc(h.SeekerProfile)))
	mux.Handle("POST /jobseeker/profile", guard(http.HandlerFunc(h.SeekerProfileSubmit)))
}

func registerRecruiterRoutes(mux *http.ServeMux, h *UIHandlers, guard wrapFunc) {
	mux.Handle("GET /recruiter", guard(http.HandlerFunc(h.RecruiterDashboard)))
	mux.Handle("GET /recruiter/jobs", guard(http.HandlerFunc(h.RecruiterJobs)))
	mux.Handle("GET /recruiter/post-job", guard(http.HandlerFunc(h.PostJobPage)))
	mux.Handle("POST /recruiter/post-job", guard(http.HandlerFunc(h.PostJobSubmit)))
	mux.Handle("GET /recruiter/jobs/{id}/applicants", guard(http.HandlerFunc(h.JobApplicants)))
	mux.Handle("POST /recruiter/applications/{id}/status", guard(http.HandlerFunc(h.UpdateApplicationStatus)))
	mux.Handle("GET /recruiter/messages", guard(http.HandlerFunc(h.Messages)))
	mux.Handle("POST /recruiter/messages", guard(http.HandlerFunc(h.SendMessage)))
	mux.Handle("GET /recruiter/profile", guard(http.HandlerFunc(h.RecruiterProfile)))
	mux.Handle("POST /recruiter/profile", guard(http.HandlerFunc(h.RecruiterProfileSubmit)))
}

func registerAdminRoutes(mux *http.ServeMux, h *UIHandlers, guard wrapFunc) {
	mux.Handle("GET /admin", guard(http.HandlerFunc(h.AdminDashboard)))
	mux.Handle("GET /admin/users", guard(http.HandlerFunc(h.AdminUsers)))
	mux.Handle("POST /admin/users/{id}/delete", guard(http.HandlerFunc(h.DeleteUser)))
	mux.Handle("GET /admin/jobs", guard(http.HandlerFunc(h.AdminJobs)))
	mux.Handle("POST /admin/jobs/{id}/approve", guard(http.HandlerFunc(h.ApproveJob)))
	mux.Handle("POST /admin/jobs/{id}/reject", guard(http.HandlerFunc(h.RejectJob)))
}

// staticHandler serves /static/* from disk in dev mode and from the
// embedded copy otherwise.
func staticHandler(isDev bool, logger *slog.Logger) http.Handler {
	if isDev {
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))), false)
	}
	sub, err := fs.Sub(jobconnect.StaticFS, "frontend/static")
	if err != nil {
		logger.Error("embedded static assets unavailable, serving from disk", "error", err)
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))), false)
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(sub))), true)
}

func staticWithCacheHeaders(handler http.Handler, cacheable bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cacheable {
			w.Header().Set("Cache-Control", "public, max-age=3600")
		} else {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		}
		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler renders the not-found page for GET requests the mux has
// no route for. Every other miss keeps the mux's plain answer.
type notFoundHandler struct {
	mux    *http.ServeMux
	ui     *UIHandlers
	public wrapFunc
}

func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, pattern := h.mux.Handler(r); pattern == "" &&
		(r.Method == http.MethodGet || r.Method == http.MethodHead) {
		h.public(http.HandlerFunc(h.ui.NotFound)).ServeHTTP(w, r)
		return
	}
	h.mux.ServeHTTP(w, r)
}
