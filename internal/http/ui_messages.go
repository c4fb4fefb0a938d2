package httpx

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/jobconnect/jobconnect-web/internal/domain/marketplace"
	"github.com/jobconnect/jobconnect-web/internal/http/validation"
)

const (
	msgSendFailed    = "Failed to send message"
	maxMessageLength = 5000
)

// Messages renders the inbox shared by job seekers and recruiters. The
// ?with= query selects the open thread.
// GET /jobseeker/messages, GET /recruiter/messages.
func (h *UIHandlers) Messages(w http.ResponseWriter, r *http.Request) {
	with := strings.TrimSpace(r.URL.Query().Get("with"))
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Messages", CurrentPage: PageMessages},
		Fetch: func(ctx context.Context, p Principal, data map[string]any) error {
			data["MessagesPath"] = r.URL.Path
			data["ApplicationID"] = r.URL.Query().Get("application_id")
			inbox, err := h.Dashboards.Messages(ctx, p.Token, with)
			if err != nil {
				return err
			}
			data["Inbox"] = inbox
			for _, c := range inbox.Conversations {
				if c.User.UserID == with {
					data["OtherUser"] = c.User
					break
				}
			}
			return nil
		},
	})
}

// SendMessage posts a message and returns to the thread.
// POST /jobseeker/messages, POST /recruiter/messages.
func (h *UIHandlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFromContext(r.Context())
	in := marketplace.MessageInput{
		ReceiverID:    strings.TrimSpace(r.PostFormValue("receiver_id")),
		Content:       strings.TrimSpace(r.PostFormValue("content")),
		ApplicationID: strings.TrimSpace(r.PostFormValue("application_id")),
	}
	back := r.URL.Path
	if in.ReceiverID != "" {
		back += "?with=" + url.QueryEscape(in.ReceiverID)
	}

	errs := validation.New().
		Validate("receiver_id", in.ReceiverID, validation.Required("Recipient", 100)).
		Validate("content", in.Content, validation.Required("Message", maxMessageLength)).
		Errors()
	for _, field := range []string{"receiver_id", "content"} {
		if msg, ok := errs[field]; ok {
			h.redirectWithFlash(w, r, FlashError, msg, back)
			return
		}
	}

	if _, err := h.API.SendMessage(r.Context(), p.Token, in); err != nil {
		if r.Context().Err() != nil {
			return
		}
		h.logger().WarnContext(r.Context(), "message send failed", "error", err)
		h.redirectWithFlash(w, r, FlashError, userMessage(err, msgSendFailed), back)
		return
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}
