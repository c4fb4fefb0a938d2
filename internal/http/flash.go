package httpx

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
)

// FlashCookieName names the signed cookie carrying one-shot notifications.
const FlashCookieName = "jc_flash"

// Flash kinds, used as CSS modifiers by the toast partial.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

//nolint:gochecknoglobals // fixed render order
var flashKinds = []string{FlashError, FlashSuccess, FlashInfo}

// Flash is a single notification shown once on the next rendered page.
type Flash struct {
	Kind    string
	Message string
}

// FlashOptions configures FlashStore.
type FlashOptions struct {
	// Secret signs the cookie; at least 32 bytes.
	Secret []byte
	Domain string
	Logger *slog.Logger
}

// FlashStore keeps flash messages in a signed cookie so they survive the
// redirect that usually follows an action.
type FlashStore struct {
	store  *sessions.CookieStore
	logger *slog.Logger
}

// NewFlashStore constructs a FlashStore.
func NewFlashStore(opts FlashOptions) *FlashStore {
	store := sessions.NewCookieStore(opts.Secret)
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   opts.Domain,
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &FlashStore{store: store, logger: logger}
}

// Add queues a message. It must be called before the response headers are written.
func (f *FlashStore) Add(w http.ResponseWriter, r *http.Request, kind, message string) {
	if f == nil || message == "" {
		return
	}
	sess := f.session(r)
	sess.AddFlash(message, kind)
	f.save(w, r, sess)
}

// Consume returns and clears pending messages.
func (f *FlashStore) Consume(w http.ResponseWriter, r *http.Request) []Flash {
	if f == nil {
		return nil
	}
	if _, err := r.Cookie(FlashCookieName); err != nil {
		return nil
	}
	sess := f.session(r)
	var out []Flash
	for _, kind := range flashKinds {
		for _, v := range sess.Flashes(kind) {
			if msg, ok := v.(string); ok && msg != "" {
				out = append(out, Flash{Kind: kind, Message: msg})
			}
		}
	}
	f.save(w, r, sess)
	return out
}

func (f *FlashStore) session(r *http.Request) *sessions.Session {
	// A tampered or stale cookie yields a fresh session alongside the error.
	sess, err := f.store.Get(r, FlashCookieName)
	if err != nil {
		f.logger.DebugContext(r.Context(), "discarding unreadable flash cookie", "error", err)
	}
	return sess
}

func (f *FlashStore) save(w http.ResponseWriter, r *http.Request, sess *sessions.Session) {
	sess.Options.Secure = isSecureRequest(r)
	if err := sess.Save(r, w); err != nil {
		f.logger.WarnContext(r.Context(), "failed to save flash cookie", "error", err)
	}
}
