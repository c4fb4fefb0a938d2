// Package backend is the REST API client used by every page handler. It
// attaches the caller's bearer credential and maps failures onto the
// application error taxonomy.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	apperrors "github.com/jobconnect/jobconnect-web/internal/errors"
	"github.com/jobconnect/jobconnect-web/internal/observability/metrics"
	"github.com/jobconnect/jobconnect-web/internal/observability/statsd"
)

const maxErrorBody = 64 << 10

// Config configures a Client.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// Transport is the base round tripper; http.DefaultTransport when nil.
	Transport http.RoundTripper
	Metrics   statsd.Sink
	Logger    *slog.Logger
}

// Client talks to the marketplace REST API.
type Client struct {
	baseURL   string
	timeout   time.Duration
	userAgent string
	transport http.RoundTripper
	metrics   statsd.Sink
	logger    *slog.Logger
}

// NewClient validates cfg and builds a Client.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend base url %q", cfg.BaseURL)
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:   base,
		timeout:   cfg.Timeout,
		userAgent: cfg.UserAgent,
		transport: transport,
		metrics:   cfg.Metrics,
		logger:    logger,
	}, nil
}

// call describes one request.
type call struct {
	method   string
	path     string
	query    url.Values
	body     any
	token    string
	header   http.Header
	endpoint string
}

// httpClient returns a client that authenticates as token. An empty token
// sends no Authorization header.
func (c *Client) httpClient(token string) *http.Client {
	rt := c.transport
	if token != "" {
		rt = &oauth2.Transport{
			Base:   c.transport,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
		}
	}
	return &http.Client{Transport: rt, Timeout: c.timeout}
}

func (c *Client) do(ctx context.Context, cl call, out any) (err error) {
	start := time.Now()
	status := 0
	defer func() {
		metrics.EmitBackendCall(c.metrics, metrics.BackendMetric{
			Endpoint: cl.endpoint,
			Status:   status,
			Duration: time.Since(start),
			Err:      err,
		})
	}()

	req, err := c.newRequest(ctx, cl)
	if err != nil {
		return err
	}

	resp, err := c.httpClient(cl.token).Do(req)
	if err != nil {
		return apperrors.Transport(err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
		return apperrors.Wrapf(decodeErr, apperrors.ErrCodeInternal, "malformed %s response", cl.endpoint)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, cl call) (*http.Request, error) {
	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		data, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", cl.endpoint, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", cl.endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for k, vs := range cl.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return req, nil
}

// decodeError maps a non-2xx response to an AppError carrying the API's
// "detail" message when it is a plain string.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	detail := errorDetail(raw)

	switch code := resp.StatusCode; {
	case code == http.StatusUnauthorized:
		return apperrors.Unauthenticated(fallback(detail, "Not authenticated"))
	case code == http.StatusForbidden:
		return apperrors.Forbidden(fallback(detail, "Access denied"))
	case code == http.StatusNotFound:
		return apperrors.NotFound(fallback(detail, "Not found"))
	case code == http.StatusConflict:
		return apperrors.Conflict(fallback(detail, "Conflict"))
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return apperrors.Validation(fallback(detail, "Invalid request"))
	case code >= 500:
		return apperrors.Transport(fmt.Errorf("backend returned %d", code))
	default:
		return apperrors.Internal(fallback(detail, fmt.Sprintf("unexpected backend status %d", code)))
	}
}

func errorDetail(raw []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(body.Detail, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func escape(id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", apperrors.ValidationField("id", "identifier is required")
	}
	return url.PathEscape(id), nil
}
