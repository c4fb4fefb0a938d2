package httpx

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/jobconnect/jobconnect-web/internal/domain/marketplace"
	apperrors "github.com/jobconnect/jobconnect-web/internal/errors"
	"github.com/jobconnect/jobconnect-web/internal/http/validation"
)

const (
	msgJobPosted     = "Job posted successfully! It will be visible once approved."
	msgJobPostFailed = "Failed to post job"
	msgStatusUpdated = "Application status updated"
	msgStatusFailed  = "Failed to update application status"
	msgInvalidStatus = "Invalid application status"
)

// RecruiterDashboard renders the recruiter landing page.
// GET /recruiter.
func (h *UIHandlers) RecruiterDashboard(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Dashboard", CurrentPage: PageRecruiterDashboard},
		Fetch: func(ctx context.Context, p Principal, data map[string]any) error {
			d, err := h.Dashboards.Recruiter(ctx, p.Token, p.Identity.UserID)
			if err != nil {
				return err
			}
			data["Dashboard"] = d
			return nil
		},
	})
}

// RecruiterJobs lists the recruiter's postings.
// GET /recruiter/jobs.
func (h *UIHandlers) RecruiterJobs(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "My jobs", CurrentPage: PageRecruiterJobs},
		Fetch: func(ctx context.Context, p Principal, data map[string]any) error {
			jobs, err := h.API.MyJobs(ctx, p.Token)
			if err != nil {
				return err
			}
			data["Jobs"] = jobs
			return nil
		},
	})
}

// jobForm mirrors the post-job form as submitted.
type jobForm struct {
	Title              string
	Description        string
	CompanyName        string
	Location           string
	SalaryMin          string
	SalaryMax          string
	JobType            string
	RequiredSkills     string
	ExperienceRequired string
}

func (f jobForm) validate() map[string]string {
	fv := validation.New().
		Validate("title", f.Title, validation.Required("Title", 200)).
		Validate("description", f.Description, validation.Required("Description", 10000)).
		Validate("company_name", f.CompanyName, validation.Required("Company name", 200)).
		Validate("location", f.Location, validation.Required("Location", 200)).
		Validate("salary_min", f.SalaryMin, validation.NonNegativeInt("Minimum salary")).
		Validate("salary_max", f.SalaryMax, validation.NonNegativeInt("Maximum salary")).
		Validate("job_type", f.JobType, validation.OneOf("Job type", jobTypeOptions()...)).
		Validate("required_skills", f.RequiredSkills, validation.Optional("Skills", 500)).
		Validate("experience_required", f.ExperienceRequired, validation.NonNegativeInt("Experience"))
	errs := fv.Errors()
	if _, ok := errs["salary_max"]; !ok {
		lo, hi := optionalInt(f.SalaryMin), optionalInt(f.SalaryMax)
		if lo != nil && hi != nil && *lo > *hi {
			errs["salary_max"] = "Maximum salary must be at least the minimum."
		}
	}
	return errs
}

func (f jobForm) input() marketplace.JobInput {
	exp, _ := strconv.Atoi(strings.TrimSpace(f.ExperienceRequired))
	return marketplace.JobInput{
		Title:              strings.TrimSpace(f.Title),
		Description:        strings.TrimSpace(f.Description),
		CompanyName:        strings.TrimSpace(f.CompanyName),
		Location:           strings.TrimSpace(f.Location),
		SalaryMin:          optionalInt(f.SalaryMin),
		SalaryMax:          optionalInt(f.SalaryMax),
		JobType:            marketplace.JobType(strings.TrimSpace(f.JobType)),
		RequiredSkills:     marketplace.SplitSkills(f.RequiredSkills),
		ExperienceRequired: exp,
	}
}

// PostJobPage renders the post-job form, prefilled with the company name.
// GET /recruiter/post-job.
func (h *UIHandlers) PostJobPage(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Post a job", CurrentPage: PageRecruiterPostJob},
		Fetch: func(ctx context.Context, p Principal, data map[string]any) error {
			form := jobForm{JobType: string(marketplace.JobFullTime), ExperienceRequired: "0"}
			data["Form"] = form
			data["JobTypes"] = marketplace.JobTypes
			profile, err := h.API.RecruiterProfile(ctx, p.Token, p.Identity.UserID)
			if err != nil {
				// A missing profile only loses the prefill.
				h.logger().DebugContext(ctx, "recruiter profile unavailable", "error", err)
				return nil
			}
			form.CompanyName = profile.CompanyName
			data["Form"] = form
			return nil
		},
	})
}

// PostJobSubmit creates a job posting pending moderation.
// POST /recruiter/post-job.
func (h *UIHandlers) PostJobSubmit(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFromContext(r.Context())
	form := jobForm{
		Title:              r.PostFormValue("title"),
		Description:        r.PostFormValue("description"),
		CompanyName:        r.PostFormValue("company_name"),
		Location:           r.PostFormValue("location"),
		SalaryMin:          r.PostFormValue("salary_min"),
		SalaryMax:          r.PostFormValue("salary_max"),
		JobType:            r.PostFormValue("job_type"),
		RequiredSkills:     r.PostFormValue("required_skills"),
		ExperienceRequired: r.PostFormValue("experience_required"),
	}

	rerender := func(errMsg string, fieldErrs map[string]string) {
		data := h.pageData(w, r, PageMeta{Title: "Post a job", CurrentPage: PageRecruiterPostJob}).
			With("Form", form).
			With("JobTypes", marketplace.JobTypes).
			WithFieldErrors(fieldErrs).
			WithError(errMsg).
			Build()
		h.render(w, r, http.StatusUnprocessableEntity, data)
	}

	if errs := form.validate(); len(errs) > 0 {
		rerender(errMsgFixBelow, errs)
		return
	}
	in := form.input()
	if err := in.Validate(); err != nil {
		rerender(errMsgFixBelow, nil)
		return
	}
	if _, err := h.API.CreateJob(r.Context(), p.Token, in); err != nil {
		if r.Context().Err() != nil {
			return
		}
		h.logger().WarnContext(r.Context(), "job creation failed", "error", err)
		rerender(userMessage(err, msgJobPostFailed), nil)
		return
	}
	h.redirectWithFlash(w, r, FlashSuccess, msgJobPosted, "/recruiter/jobs")
}

// JobApplicants lists applications to one of the recruiter's jobs.
// GET /recruiter/jobs/{id}/applicants.
func (h *UIHandlers) JobApplicants(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("id")
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Applicants", CurrentPage: PageRecruiterApplicants},
		Fetch: func(ctx context.Context, p Principal, data map[string]any) error {
			a, err := h.Dashboards.JobApplicants(ctx, p.Token, jobID)
			if err != nil {
				return err
			}
			data["Job"] = a.Job
			data["Applications"] = a.Applications
			data["Statuses"] = []marketplace.ApplicationStatus{
				marketplace.ApplicationPending,
				marketplace.ApplicationShortlisted,
				marketplace.ApplicationRejected,
				marketplace.ApplicationAccepted,
			}
			return nil
		},
	})
}

// UpdateApplicationStatus moves an application through review.
// POST /recruiter/applications/{id}/status.
func (h *UIHandlers) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFromContext(r.Context())
	appID := r.PathValue("id")
	back := safeRedirectPath(r.PostFormValue("return_to"))
	if back == "/" {
		back = "/recruiter/jobs"
	}

	status, ok := marketplace.ParseApplicationStatus(r.PostFormValue("status"))
	if !ok {
		h.redirectWithFlash(w, r, FlashError, msgInvalidStatus, back)
		return
	}
	if err := h.API.UpdateApplicationStatus(r.Context(), p.Token, appID, status); err != nil {
		if r.Context().Err() != nil {
			return
		}
		h.logger().WarnContext(r.Context(), "application status update failed",
			"application_id", appID, "error", err)
		h.redirectWithFlash(w, r, FlashError, userMessage(err, msgStatusFailed), back)
		return
	}
	h.redirectWithFlash(w, r, FlashSuccess, msgStatusUpdated, back)
}

type recruiterProfileForm struct {
	CompanyName        string
	CompanyWebsite     string
	CompanyDescription string
}

// RecruiterProfile renders the company profile form.
// GET /recruiter/profile.
func (h *UIHandlers) RecruiterProfile(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Company profile", CurrentPage: PageRecruiterProfile},
		Fetch: func(ctx context.Context, p Principal, data map[string]any) error {
			data["Form"] = recruiterProfileForm{}
			profile, err := h.API.RecruiterProfile(ctx, p.Token, p.Identity.UserID)
			if err != nil {
				if apperrors.IsNotFound(err) {
					return nil
				}
				return err
			}
			data["Profile"] = profile
			data["Form"] = recruiterProfileForm{
				CompanyName:        profile.CompanyName,
				CompanyWebsite:     profile.CompanyWebsite,
				CompanyDescription: profile.CompanyDescription,
			}
			return nil
		},
	})
}

// RecruiterProfileSubmit saves the company profile.
// POST /recruiter/profile.
func (h *UIHandlers) RecruiterProfileSubmit(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFromContext(r.Context())
	form := recruiterProfileForm{
		CompanyName:        strings.TrimSpace(r.PostFormValue("company_name")),
		CompanyWebsite:     strings.TrimSpace(r.PostFormValue("company_website")),
		CompanyDescription: strings.TrimSpace(r.PostFormValue("company_description")),
	}

	rerender := func(errMsg string, fieldErrs map[string]string) {
		data := h.pageData(w, r, PageMeta{Title: "Company profile", CurrentPage: PageRecruiterProfile}).
			With("Form", form).
			WithFieldErrors(fieldErrs).
			WithError(errMsg).
			Build()
		h.render(w, r, http.StatusUnprocessableEntity, data)
	}

	errs := validation.New().
		Validate("company_name", form.CompanyName, validation.Required("Company name", 200)).
		Validate("company_website", form.CompanyWebsite, validation.OptionalURL("Company website")).
		Validate("company_description", form.CompanyDescription, validation.Optional("Description", 5000)).
		Errors()
	if len(errs) > 0 {
		rerender(errMsgFixBelow, errs)
		return
	}

	err := h.API.UpdateRecruiterProfile(r.Context(), p.Token, marketplace.RecruiterProfile{
		UserID:             p.Identity.UserID,
		CompanyName:        form.CompanyName,
		CompanyWebsite:     form.CompanyWebsite,
		CompanyDescription: form.CompanyDescription,
	})
	if err != nil {
		if r.Context().Err() != nil {
			return
		}
		h.logger().WarnContext(r.Context(), "recruiter profile update failed", "error", err)
		rerender(userMessage(err, msgProfileFailed), nil)
		return
	}
	h.redirectWithFlash(w, r, FlashSuccess, msgProfileSaved, "/recruiter/profile")
}
