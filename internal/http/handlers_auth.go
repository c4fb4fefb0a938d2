package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	domainauth "github.com/jobconnect/jobconnect-web/internal/domain/auth"
	apperrors "github.com/jobconnect/jobconnect-web/internal/errors"
	"github.com/jobconnect/jobconnect-web/internal/ports"
	"github.com/jobconnect/jobconnect-web/internal/service"
)

// Messages shown by the auth flows.
const (
	msgAuthFailed   = "Authentication failed"
	msgLoginFailed  = "Login failed"
	msgLoginOK      = "Login successful!"
	msgRegisterFail = "Registration failed"
	msgRegisterOK   = "Registration successful!"
	msgLoggedOut    = "Logged out successfully"
)

// AuthServiceInterface defines the auth operations the handlers need.
type AuthServiceInterface interface {
	Login(ctx context.Context, in service.LoginInput) (*service.SignInResult, error)
	Register(ctx context.Context, in service.RegisterInput) (*service.SignInResult, error)
	CompleteCallback(ctx context.Context, in service.CallbackInput) (*service.SignInResult, error)
	Logout(ctx context.Context, sessionID string) error
}

var _ AuthServiceInterface = (*service.AuthService)(nil)

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc      AuthServiceInterface
	Resolver SessionResolver
	UI       *UIHandlers
	Cookies  SessionCookies
	// SocialLoginURL is rendered verbatim; the button is hidden when empty.
	SocialLoginURL string
	Logger         *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// LoginPage renders the login form.
// GET /login.
func (h *AuthHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, "", "")
}

func (h *AuthHandlers) renderLogin(w http.ResponseWriter, r *http.Request, email, errMsg string) {
	b := h.UI.pageData(w, r, PageMeta{Title: "Sign in", CurrentPage: PageLogin}).
		With("Email", email).
		With("SocialLoginURL", h.SocialLoginURL)
	if errMsg != "" {
		b.WithError(errMsg)
	}
	h.UI.render(w, r, http.StatusOK, b.Build())
}

// LoginSubmit authenticates with email and password.
// POST /login.
func (h *AuthHandlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.PostFormValue("email"))
	res, err := h.Svc.Login(r.Context(), service.LoginInput{
		Email:             email,
		Password:          r.PostFormValue("password"),
		PreviousSessionID: h.Cookies.Read(r),
	})
	if err != nil {
		if r.Context().Err() != nil {
			return
		}
		h.logger().InfoContext(r.Context(), "login rejected", "error", err)
		h.renderLogin(w, r, email, authErrorMessage(err, msgLoginFailed))
		return
	}
	h.completeSignIn(w, r, res, msgLoginOK)
}

// RegisterPage renders the registration form.
// GET /register.
func (h *AuthHandlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.renderRegister(w, r, registerForm{Role: string(domainauth.RoleJobSeeker)}, "", nil)
}

type registerForm struct {
	Name  string
	Email string
	Role  string
}

func (h *AuthHandlers) renderRegister(w http.ResponseWriter, r *http.Request, form registerForm, errMsg string, fieldErrs map[string]string) {
	b := h.UI.pageData(w, r, PageMeta{Title: "Create account", CurrentPage: PageRegister}).
		With("Form", form).
		With("SocialLoginURL", h.SocialLoginURL).
		WithFieldErrors(fieldErrs)
	if errMsg != "" {
		b.WithError(errMsg)
	}
	h.UI.render(w, r, http.StatusOK, b.Build())
}

// RegisterSubmit creates an account and signs it in.
// POST /register.
func (h *AuthHandlers) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	form := registerForm{
		Name:  strings.TrimSpace(r.PostFormValue("name")),
		Email: strings.TrimSpace(r.PostFormValue("email")),
		Role:  strings.TrimSpace(r.PostFormValue("role")),
	}
	res, err := h.Svc.Register(r.Context(), service.RegisterInput{
		RegisterInput: ports.RegisterInput{
			Email:    form.Email,
			Password: r.PostFormValue("password"),
			Name:     form.Name,
			Role:     domainauth.Role(form.Role),
		},
		PreviousSessionID: h.Cookies.Read(r),
	})
	if err != nil {
		if r.Context().Err() != nil {
			return
		}
		h.logger().InfoContext(r.Context(), "registration rejected", "error", err)
		var fieldErrs map[string]string
		if field := apperrors.FieldOf(err); field != "" {
			fieldErrs = map[string]string{field: apperrors.UserMessage(err, msgRegisterFail)}
		}
		h.renderRegister(w, r, form, authErrorMessage(err, msgRegisterFail), fieldErrs)
		return
	}
	h.completeSignIn(w, r, res, msgRegisterOK)
}

// CallbackPage is the landing page for the third-party login redirect. The
// one-time session id travels in the URL fragment, which never reaches the
// server, so the page posts it back to Callback.
// GET /auth/callback.
func (h *AuthHandlers) CallbackPage(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, PageMeta{Title: "Completing authentication…", CurrentPage: PageCallback}).Build()
	h.UI.render(w, r, http.StatusOK, data)
}

// Callback exchanges the posted fragment's session_id for a stored session.
// Every outcome ends in a navigation.
// POST /auth/callback.
func (h *AuthHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	res, err := h.Svc.CompleteCallback(r.Context(), service.CallbackInput{
		Fragment:          r.PostFormValue("fragment"),
		PreviousSessionID: h.Cookies.Read(r),
	})
	if err != nil {
		if r.Context().Err() != nil {
			return
		}
		h.logger().InfoContext(r.Context(), "authentication callback failed", "error", err)
		h.UI.redirectWithFlash(w, r, FlashError, msgAuthFailed, domainauth.LoginPath)
		return
	}
	h.completeSignIn(w, r, res, "")
}

// completeSignIn sets the rotated session cookie and navigates to the role's
// landing page, where the handoff lets the guard skip the backend lookup.
func (h *AuthHandlers) completeSignIn(w http.ResponseWriter, r *http.Request, res *service.SignInResult, flash string) {
	h.Cookies.Set(w, r, res.Session)
	if flash != "" {
		h.UI.Flash.Add(w, r, FlashSuccess, flash)
	}
	http.Redirect(w, r, res.Redirect, http.StatusSeeOther)
}

// Logout clears the local session whatever the backend answers.
// POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Logout(r.Context(), h.Cookies.Read(r)); err != nil {
		h.logger().WarnContext(r.Context(), "logout failed", "error", err)
	}
	h.Cookies.Clear(w, r)
	h.UI.Flash.Add(w, r, FlashSuccess, msgLoggedOut)

	if wantsJSON(r) {
		WriteJSON(w, http.StatusOK, map[string]string{
			"status":      "success",
			"redirect_to": domainauth.LoginPath,
		})
		return
	}
	http.Redirect(w, r, domainauth.LoginPath, http.StatusSeeOther)
}

// Status reports the current authentication state.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	res, err := h.Resolver.Resolve(r.Context(), h.Cookies.Read(r), nil)
	if err != nil {
		return
	}
	if res.State.Status != domainauth.GuardAuthenticated {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          res.State.Identity,
	})
}

// authErrorMessage surfaces the backend's explanation for rejected
// credentials or input; anything else gets fallback.
func authErrorMessage(err error, fallback string) string {
	if apperrors.IsUnauthenticated(err) || apperrors.IsValidation(err) || apperrors.IsConflict(err) {
		return apperrors.UserMessage(err, fallback)
	}
	return fallback
}

// safeRedirectPath ensures the redirect is a same-origin relative path.
// Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	return candidate
}
