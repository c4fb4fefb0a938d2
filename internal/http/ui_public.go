package httpx

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/jobconnect/jobconnect-web/internal/domain/marketplace"
)

// Home renders the public landing page.
// GET /{$}.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{Meta: PageMeta{Title: "Find your next role", CurrentPage: PageHome}})
}

// Jobs lists approved jobs matching the query filters.
// GET /jobs.
func (h *UIHandlers) Jobs(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, h.jobSearchSpec(r, PageMeta{Title: "Browse jobs", CurrentPage: PageJobs}))
}

// jobSearchSpec is shared by the public listing and the job seeker search.
func (h *UIHandlers) jobSearchSpec(r *http.Request, meta PageMeta) PageSpec {
	filter := jobFilterFromQuery(r)
	return PageSpec{
		Meta: meta,
		Fetch: func(ctx context.Context, p Principal, data map[string]any) error {
			data["Filter"] = filter
			data["JobTypes"] = marketplace.JobTypes
			jobs, err := h.API.ListJobs(ctx, p.Token, filter)
			if err != nil {
				return err
			}
			data["Jobs"] = jobs
			return nil
		},
	}
}

// jobFilterFromQuery reads listing filters. Only approved jobs are listed.
func jobFilterFromQuery(r *http.Request) marketplace.JobFilter {
	q := r.URL.Query()
	f := marketplace.JobFilter{
		Status:   marketplace.JobApproved,
		Location: strings.TrimSpace(q.Get("location")),
		Skills:   strings.TrimSpace(q.Get("skills")),
	}
	if jt := marketplace.JobType(q.Get("job_type")); jt.Valid() {
		f.JobType = jt
	}
	if n, err := strconv.Atoi(strings.TrimSpace(q.Get("salary_min"))); err == nil && n > 0 {
		f.SalaryMin = n
	}
	return f
}

// JobDetail renders a single job.
// GET /jobs/{id}.
func (h *UIHandlers) JobDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Job details", CurrentPage: PageJob},
		Fetch: func(ctx context.Context, p Principal, data map[string]any) error {
			job, err := h.API.GetJob(ctx, p.Token, id)
			if err != nil {
				return err
			}
			data["Job"] = job
			data["Title"] = job.Title
			return nil
		},
	})
}
