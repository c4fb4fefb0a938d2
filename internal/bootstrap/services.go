package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/jobconnect/jobconnect-web/config"
	"github.com/jobconnect/jobconnect-web/internal/adapters/backend"
	redisadapter "github.com/jobconnect/jobconnect-web/internal/adapters/redis"
	httpx "github.com/jobconnect/jobconnect-web/internal/http"
	"github.com/jobconnect/jobconnect-web/internal/observability/statsd"
	"github.com/jobconnect/jobconnect-web/internal/service"
)

// ServiceDeps contains the infrastructure services are built from.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	// Transport overrides the backend round tripper; http.DefaultTransport when nil.
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// ServiceContainer holds the wired application services.
type ServiceContainer struct {
	Backend    *backend.Client
	Sessions   *redisadapter.SessionStore
	Resolver   *service.SessionResolver
	Auth       *service.AuthService
	Dashboards *service.DashboardService
	Flash      *httpx.FlashStore
	Metrics    *statsd.Client
}

// NewServices wires the backend client, session store and services.
func NewServices(deps *ServiceDeps) (*ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return nil, errors.New("service deps require config")
	}
	if deps.RedisClient == nil {
		return nil, errors.New("service deps require a redis client")
	}
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Observability.Metrics.IsEnabled(),
		Address: cfg.Observability.Metrics.StatsdAddress,
		Prefix:  cfg.Observability.Metrics.Prefix,
		Logger:  logger,
	})
	if err != nil {
		// Metrics are optional; keep serving without them.
		logger.Warn("statsd client unavailable, metrics disabled", "error", err)
		metrics = nil
	}

	client, err := backend.NewClient(backend.Config{
		BaseURL:   cfg.Backend.URL,
		Timeout:   cfg.Backend.Timeout,
		UserAgent: cfg.Backend.UserAgent,
		Transport: deps.Transport,
		Metrics:   sinkOrNil(metrics),
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("backend client: %w", err)
	}

	sessions := redisadapter.NewSessionStoreWithPrefix(deps.RedisClient, cfg.Redis.KeyPrefix)

	return &ServiceContainer{
		Backend:  client,
		Sessions: sessions,
		Resolver: service.NewSessionResolver(service.SessionResolverOptions{
			Identity: client,
			Sessions: sessions,
			Logger:   logger,
		}),
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Identity:         client,
			Sessions:         sessions,
			SessionTTL:       cfg.Auth.SessionTTL,
			HandoffTTL:       cfg.Auth.HandoffTTL,
			CredentialExpiry: backend.CredentialExpiry,
			Metrics:          sinkOrNil(metrics),
			Logger:           logger,
		}),
		Dashboards: service.NewDashboardService(service.DashboardServiceOptions{API: client, Logger: logger}),
		Flash: httpx.NewFlashStore(httpx.FlashOptions{
			Secret: []byte(cfg.Auth.FlashSecret),
			Domain: cfg.HTTP.CookieDomain,
			Logger: logger,
		}),
		Metrics: metrics,
	}, nil
}

// RouterServices maps the container onto the HTTP router's dependencies.
func (s *ServiceContainer) RouterServices(cfg *config.AppConfig, logger *slog.Logger) httpx.RouterServices {
	level := 0
	if cfg.HTTP.CompressionEnabled {
		level = cfg.HTTP.CompressionLevel
	}
	return httpx.RouterServices{
		Auth:             s.Auth,
		Resolver:         s.Resolver,
		API:              s.Backend,
		Dashboards:       s.Dashboards,
		Flash:            s.Flash,
		Cookies:          httpx.SessionCookies{Name: cfg.Auth.CookieName, Domain: cfg.HTTP.CookieDomain},
		SocialLoginURL:   cfg.Auth.SocialLoginURL,
		CookieDomain:     cfg.HTTP.CookieDomain,
		CompressionLevel: level,
		Metrics:          sinkOrNil(s.Metrics),
		Health:           s.Sessions,
		IsDev:            cfg.IsDev,
		Logger:           logger,
	}
}

// Close releases resources owned by the container.
func (s *ServiceContainer) Close() error {
	if s == nil || s.Metrics == nil {
		return nil
	}
	return s.Metrics.Close()
}

// sinkOrNil avoids handing out a typed nil inside the Sink interface.
//
//nolint:ireturn // callers accept the statsd.Sink port.
func sinkOrNil(c *statsd.Client) statsd.Sink {
	if c == nil {
		return nil
	}
	return c
}
