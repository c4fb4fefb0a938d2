package backend

import (
	"context"
	"net/http"
	"strings"

	domainauth "github.com/jobconnect/jobconnect-web/internal/domain/auth"
	apperrors "github.com/jobconnect/jobconnect-web/internal/errors"
	"github.com/jobconnect/jobconnect-web/internal/ports"
)

var _ ports.IdentityAPI = (*Client)(nil)

type tokenResponse struct {
	Token string              `json:"token"`
	User  domainauth.Identity `json:"user"`
}

type sessionResponse struct {
	SessionToken string              `json:"session_token"`
	User         domainauth.Identity `json:"user"`
}

func checkIdentity(id domainauth.Identity) error {
	if strings.TrimSpace(id.UserID) == "" {
		return apperrors.Internal("backend returned an identity without user_id")
	}
	return nil
}

func authResult(token string, id domainauth.Identity) (ports.AuthResult, error) {
	if strings.TrimSpace(token) == "" {
		return ports.AuthResult{}, apperrors.Internal("backend returned no credential")
	}
	if err := checkIdentity(id); err != nil {
		return ports.AuthResult{}, err
	}
	return ports.AuthResult{Token: token, Identity: id}, nil
}

// Me asks the backend who owns token.
func (c *Client) Me(ctx context.Context, token string) (domainauth.Identity, error) {
	var id domainauth.Identity
	if err := c.do(ctx, call{method: http.MethodGet, path: "/auth/me", token: token, endpoint: "auth_me"}, &id); err != nil {
		return domainauth.Identity{}, err
	}
	if err := checkIdentity(id); err != nil {
		return domainauth.Identity{}, err
	}
	return id, nil
}

// ExchangeSession trades the one-time session id for a session credential.
func (c *Client) ExchangeSession(ctx context.Context, sessionID string) (ports.AuthResult, error) {
	if strings.TrimSpace(sessionID) == "" {
		return ports.AuthResult{}, apperrors.MalformedCallback("missing session_id")
	}
	var resp sessionResponse
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/auth/session",
		header:   http.Header{"X-Session-ID": []string{sessionID}},
		endpoint: "auth_session",
	}, &resp)
	if err != nil {
		return ports.AuthResult{}, err
	}
	return authResult(resp.SessionToken, resp.User)
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (ports.AuthResult, error) {
	var resp tokenResponse
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/auth/login",
		body:     map[string]string{"email": email, "password": password},
		endpoint: "auth_login",
	}, &resp)
	if err != nil {
		return ports.AuthResult{}, err
	}
	return authResult(resp.Token, resp.User)
}

// Register creates an account and signs it in.
func (c *Client) Register(ctx context.Context, in ports.RegisterInput) (ports.AuthResult, error) {
	var resp tokenResponse
	err := c.do(ctx, call{method: http.MethodPost, path: "/auth/register", body: in, endpoint: "auth_register"}, &resp)
	if err != nil {
		return ports.AuthResult{}, err
	}
	return authResult(resp.Token, resp.User)
}

// sessionTokenCookie is the backend cookie that carries OAuth session tokens.
const sessionTokenCookie = "session_token"

// Logout invalidates token on the backend. The backend only reads OAuth
// sessions from its session cookie, so the token is sent there as well.
func (c *Client) Logout(ctx context.Context, token string) error {
	cl := call{method: http.MethodPost, path: "/auth/logout", token: token, endpoint: "auth_logout"}
	if token != "" {
		cookie := &http.Cookie{Name: sessionTokenCookie, Value: token}
		cl.header = http.Header{"Cookie": {cookie.String()}}
	}
	return c.do(ctx, cl, nil)
}
