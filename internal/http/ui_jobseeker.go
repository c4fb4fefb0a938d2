package httpx

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/jobconnect/jobconnect-web/internal/domain/marketplace"
	"github.com/jobconnect/jobconnect-web/internal/http/validation"
)

const (
	msgApplied        = "Application submitted successfully!"
	msgApplyFailed    = "Failed to submit application"
	msgProfileSaved   = "Profile updated successfully!"
	msgProfileFailed  = "Failed to update profile"
	maxCoverLetterLen = 5000
)

// SeekerDashboard renders the job seeker landing page.
// GET /jobseeker.
func (h *UIHandlers) SeekerDashboard(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Dashboard", CurrentPage: PageSeekerDashboard},
		Fetch: func(ctx context.Context, p Principal, data map[string]any) error {
			d, err := h.Dashboards.JobSeeker(ctx, p.Token)
			if err != nil {
				return err
			}
			data["Dashboard"] = d
			return nil
		},
	})
}

// SeekerSearch is the job listing inside the job seeker area.
// GET /jobseeker/search.
func (h *UIHandlers) SeekerSearch(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, h.jobSearchSpec(r, PageMeta{Title: "Search jobs", CurrentPage: PageSeekerSearch}))
}

// Apply submits an application with an optional cover letter.
// POST /jobseeker/jobs/{id}/apply.
func (h *UIHandlers) Apply(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFromContext(r.Context())
	jobID := r.PathValue("id")
	back := safeRedirectPath(r.PostFormValue("return_to"))
	if back == "/" {
		back = "/jobs/" + jobID
	}

	cover := strings.TrimSpace(r.PostFormValue("cover_letter"))
	if msg := validation.Optional("Cover letter", maxCoverLetterLen)(cover); msg != "" {
		h.redirectWithFlash(w, r, FlashError, msg, back)
		return
	}

	if _, err := h.API.Apply(r.Context(), p.Token, jobID, cover); err != nil {
		if r.Context().Err() != nil {
			return
		}
		h.logger().InfoContext(r.Context(), "application rejected", "job_id", jobID, "error", err)
		h.redirectWithFlash(w, r, FlashError, userMessage(err, msgApplyFailed), back)
		return
	}
	h.redirectWithFlash(w, r, FlashSuccess, msgApplied, "/jobseeker/applications")
}

// SeekerApplications lists the job seeker's applications.
// GET /jobseeker/applications.
func (h *UIHandlers) SeekerApplications(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "My applications", CurrentPage: PageSeekerApplications},
		Fetch: func(ctx context.Context, p Principal, data map[string]any) error {
			apps, err := h.API.MyApplications(ctx, p.Token)
			if err != nil {
				return err
			}
			data["Applications"] = apps
			return nil
		},
	})
}

// seekerProfileForm mirrors the profile form fields as submitted.
type seekerProfileForm struct {
	Skills            string
	ExperienceYears   string
	Location          string
	ResumeURL         string
	PreferredJobTypes []string
	SalaryMin         string
	SalaryMax         string
	Bio               string
}

func seekerFormFromProfile(p marketplace.JobSeekerProfile) seekerProfileForm {
	f := seekerProfileForm{
		Skills:          strings.Join(p.Skills, ", "),
		ExperienceYears: strconv.Itoa(p.ExperienceYears),
		Location:        p.Location,
		ResumeURL:       p.ResumeURL,
		SalaryMin:       intString(p.PreferredSalaryMin),
		SalaryMax:       intString(p.PreferredSalaryMax),
		Bio:             p.Bio,
	}
	for _, jt := range p.PreferredJobTypes {
		f.PreferredJobTypes = append(f.PreferredJobTypes, string(jt))
	}
	return f
}

func (f seekerProfileForm) validate() map[string]string {
	fv := validation.New().
		Validate("skills", f.Skills, validation.Optional("Skills", 500)).
		Validate("experience_years", f.ExperienceYears, validation.NonNegativeInt("Experience")).
		Validate("location", f.Location, validation.Optional("Location", 200)).
		Validate("resume_url", f.ResumeURL, validation.OptionalURL("Resume URL")).
		Validate("preferred_salary_min", f.SalaryMin, validation.NonNegativeInt("Minimum salary")).
		Validate("preferred_salary_max", f.SalaryMax, validation.NonNegativeInt("Maximum salary")).
		Validate("bio", f.Bio, validation.Optional("Bio", 2000))
	for _, jt := range f.PreferredJobTypes {
		fv.Validate("preferred_job_types", jt, validation.OneOf("Job type", jobTypeOptions()...))
	}
	return fv.Errors()
}

func (f seekerProfileForm) profile(userID string) marketplace.JobSeekerProfile {
	exp, _ := strconv.Atoi(strings.TrimSpace(f.ExperienceYears))
	p := marketplace.JobSeekerProfile{
		UserID:             userID,
		Skills:             marketplace.SplitSkills(f.Skills),
		ExperienceYears:    exp,
		Location:           strings.TrimSpace(f.Location),
		ResumeURL:          strings.TrimSpace(f.ResumeURL),
		PreferredSalaryMin: optionalInt(f.SalaryMin),
		PreferredSalaryMax: optionalInt(f.SalaryMax),
		Bio:                strings.TrimSpace(f.Bio),
	}
	for _, jt := range f.PreferredJobTypes {
		p.PreferredJobTypes = append(p.PreferredJobTypes, marketplace.JobType(jt))
	}
	return p
}

// SeekerProfile renders the job seeker profile form.
// GET /jobseeker/profile.
func (h *UIHandlers) SeekerProfile(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Profile", CurrentPage: PageSeekerProfile},
		Fetch: func(ctx context.Context, p Principal, data map[string]any) error {
			data["JobTypes"] = marketplace.JobTypes
			profile, err := h.API.JobSeekerProfile(ctx, p.Token, p.Identity.UserID)
			if err != nil {
				data["Form"] = seekerProfileForm{}
				return err
			}
			data["Form"] = seekerFormFromProfile(profile)
			return nil
		},
	})
}

// SeekerProfileSubmit saves the job seeker profile.
// POST /jobseeker/profile.
func (h *UIHandlers) SeekerProfileSubmit(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, FlashError, msgProfileFailed, "/jobseeker/profile")
		return
	}
	form := seekerProfileForm{
		Skills:            r.PostForm.Get("skills"),
		ExperienceYears:   r.PostForm.Get("experience_years"),
		Location:          r.PostForm.Get("location"),
		ResumeURL:         r.PostForm.Get("resume_url"),
		PreferredJobTypes: r.PostForm["preferred_job_types"],
		SalaryMin:         r.PostForm.Get("preferred_salary_min"),
		SalaryMax:         r.PostForm.Get("preferred_salary_max"),
		Bio:               r.PostForm.Get("bio"),
	}

	rerender := func(errMsg string, fieldErrs map[string]string) {
		data := h.pageData(w, r, PageMeta{Title: "Profile", CurrentPage: PageSeekerProfile}).
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
	if err := h.API.UpdateJobSeekerProfile(r.Context(), p.Token, form.profile(p.Identity.UserID)); err != nil {
		if r.Context().Err() != nil {
			return
		}
		h.logger().WarnContext(r.Context(), "profile update failed", "error", err)
		rerender(userMessage(err, msgProfileFailed), nil)
		return
	}
	h.redirectWithFlash(w, r, FlashSuccess, msgProfileSaved, "/jobseeker/profile")
}

func jobTypeOptions() []string {
	out := make([]string, len(marketplace.JobTypes))
	for i, jt := range marketplace.JobTypes {
		out[i] = string(jt)
	}
	return out
}

func optionalInt(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

func intString(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
