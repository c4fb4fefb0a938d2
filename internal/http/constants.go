package httpx

// CurrentPage identifiers used by templates and navigation.
const (
	PageHome     = "home"
	PageLogin    = "login"
	PageRegister = "register"
	PageCallback = "callback"
	PageNotFound = "not-found"

	// Public job board.
	PageJobs = "jobs"
	PageJob  = "job"

	// Job seeker pages.
	PageSeekerDashboard    = "jobseeker-dashboard"
	PageSeekerSearch       = "jobseeker-search"
	PageSeekerApplications = "jobseeker-applications"
	PageSeekerProfile      = "jobseeker-profile"

	// Recruiter pages.
	PageRecruiterDashboard  = "recruiter-dashboard"
	PageRecruiterJobs       = "recruiter-jobs"
	PageRecruiterPostJob    = "recruiter-post-job"
	PageRecruiterApplicants = "recruiter-applicants"
	PageRecruiterProfile    = "recruiter-profile"

	// Shared by job seekers and recruiters.
	PageMessages = "messages"

	// Admin pages.
	PageAdminDashboard = "admin-dashboard"
	PageAdminUsers     = "admin-users"
	PageAdminJobs      = "admin-jobs"
)

// Template paths used for loading templates in tests and dev mode.
const (
	TemplatePathFromRoot = "frontend/templates"
	TemplatePathFromTest = "../../frontend/templates"
)

//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageHome:                "home-content",
	PageLogin:               "login-content",
	PageRegister:            "register-content",
	PageCallback:            "callback-content",
	PageNotFound:            "not-found-content",
	PageJobs:                "jobs-content",
	PageJob:                 "job-content",
	PageSeekerDashboard:     "jobseeker-dashboard-content",
	PageSeekerSearch:        "jobs-content",
	PageSeekerApplications:  "jobseeker-applications-content",
	PageSeekerProfile:       "jobseeker-profile-content",
	PageRecruiterDashboard:  "recruiter-dashboard-content",
	PageRecruiterJobs:       "recruiter-jobs-content",
	PageRecruiterPostJob:    "recruiter-post-job-content",
	PageRecruiterApplicants: "recruiter-applicants-content",
	PageRecruiterProfile:    "recruiter-profile-content",
	PageMessages:            "messages-content",
	PageAdminDashboard:      "admin-dashboard-content",
	PageAdminUsers:          "admin-users-content",
	PageAdminJobs:           "admin-jobs-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Unknown pages fall back to the not-found content.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "not-found-content"
}
