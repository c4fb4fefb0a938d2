package httpx

import (
	"context"
	"net/http"

	"github.com/jobconnect/jobconnect-web/internal/domain/marketplace"
)

const (
	msgUserDeleted     = "User deleted"
	msgUserDeleteFail  = "Failed to delete user"
	msgCannotDeleteYou = "You cannot delete your own account"
	msgJobApproved     = "Job approved"
	msgJobRejected     = "Job rejected"
	msgModerationFail  = "Failed to update job"
)

// AdminDashboard renders platform analytics and the moderation queue.
// GET /admin.
func (h *UIHandlers) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Analytics", CurrentPage: PageAdminDashboard},
		Fetch: func(ctx context.Context, p Principal, data map[string]any) error {
			d, err := h.Dashboards.Admin(ctx, p.Token)
			if err != nil {
				return err
			}
			data["Dashboard"] = d
			return nil
		},
	})
}

// AdminUsers lists every account.
// GET /admin/users.
func (h *UIHandlers) AdminUsers(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Users", CurrentPage: PageAdminUsers},
		Fetch: func(ctx context.Context, p Principal, data map[string]any) error {
			users, err := h.API.Users(ctx, p.Token)
			if err != nil {
				return err
			}
			data["Users"] = users
			return nil
		},
	})
}

// DeleteUser removes an account. Admins cannot delete themselves.
// POST /admin/users/{id}/delete.
func (h *UIHandlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFromContext(r.Context())
	id := r.PathValue("id")
	if id == p.Identity.UserID {
		h.redirectWithFlash(w, r, FlashError, msgCannotDeleteYou, "/admin/users")
		return
	}
	if err := h.API.DeleteUser(r.Context(), p.Token, id); err != nil {
		if r.Context().Err() != nil {
			return
		}
		h.logger().WarnContext(r.Context(), "user deletion failed", "user_id", id, "error", err)
		h.redirectWithFlash(w, r, FlashError, userMessage(err, msgUserDeleteFail), "/admin/users")
		return
	}
	h.logger().InfoContext(r.Context(), "user deleted", "user_id", id, "admin_id", p.Identity.UserID)
	h.redirectWithFlash(w, r, FlashSuccess, msgUserDeleted, "/admin/users")
}

// moderationStatuses are the tabs of the moderation page.
var moderationStatuses = []marketplace.JobStatus{
	marketplace.JobPending,
	marketplace.JobApproved,
	marketplace.JobRejected,
}

// AdminJobs lists jobs by moderation status, pending by default.
// GET /admin/jobs.
func (h *UIHandlers) AdminJobs(w http.ResponseWriter, r *http.Request) {
	status := marketplace.JobStatus(r.URL.Query().Get("status"))
	switch status {
	case marketplace.JobPending, marketplace.JobApproved, marketplace.JobRejected:
	default:
		status = marketplace.JobPending
	}
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Job moderation", CurrentPage: PageAdminJobs},
		Fetch: func(ctx context.Context, p Principal, data map[string]any) error {
			data["Status"] = status
			data["Statuses"] = moderationStatuses
			jobs, err := h.API.ModerationJobs(ctx, p.Token, status)
			if err != nil {
				return err
			}
			data["Jobs"] = jobs
			return nil
		},
	})
}

// ApproveJob publishes a pending job.
// POST /admin/jobs/{id}/approve.
func (h *UIHandlers) ApproveJob(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, true)
}

// RejectJob rejects a pending job.
// POST /admin/jobs/{id}/reject.
func (h *UIHandlers) RejectJob(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, false)
}

func (h *UIHandlers) moderate(w http.ResponseWriter, r *http.Request, approve bool) {
	p, _ := PrincipalFromContext(r.Context())
	id := r.PathValue("id")
	if err := h.API.ModerateJob(r.Context(), p.Token, id, approve); err != nil {
		if r.Context().Err() != nil {
			return
		}
		h.logger().WarnContext(r.Context(), "job moderation failed", "job_id", id, "approve", approve, "error", err)
		h.redirectWithFlash(w, r, FlashError, userMessage(err, msgModerationFail), "/admin/jobs")
		return
	}
	msg := msgJobRejected
	if approve {
		msg = msgJobApproved
	}
	h.redirectWithFlash(w, r, FlashSuccess, msg, "/admin/jobs")
}
