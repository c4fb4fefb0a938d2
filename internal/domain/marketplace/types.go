// Package marketplace holds the recruiting marketplace records exchanged with
// the REST API. The backend owns these; the web tier only reads and submits them.
package marketplace

import (
	"errors"
	"strings"
	"time"

	"github.com/jobconnect/jobconnect-web/internal/domain/auth"
)

// JobStatus is the moderation state of a job posting.
type JobStatus string

const (
	JobPending  JobStatus = "pending"
	JobApproved JobStatus = "approved"
	JobRejected JobStatus = "rejected"
	JobClosed   JobStatus = "closed"
)

// JobType classifies the engagement.
type JobType string

const (
	JobFullTime   JobType = "full-time"
	JobPartTime   JobType = "part-time"
	JobContract   JobType = "contract"
	JobInternship JobType = "internship"
)

// JobTypes lists the selectable job types.
var JobTypes = []JobType{JobFullTime, JobPartTime, JobContract, JobInternship}

// Valid reports whether t is a known job type.
func (t JobType) Valid() bool {
	for _, known := range JobTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Job is a posting.
type Job struct {
	JobID              string    `json:"job_id"`
	RecruiterID        string    `json:"recruiter_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	CompanyName        string    `json:"company_name"`
	Location           string    `json:"location"`
	SalaryMin          *int      `json:"salary_min,omitempty"`
	SalaryMax          *int      `json:"salary_max,omitempty"`
	JobType            JobType   `json:"job_type"`
	RequiredSkills     []string  `json:"required_skills"`
	ExperienceRequired int       `json:"experience_required"`
	Status             JobStatus `json:"status"`
	PostedAt           time.Time `json:"posted_at"`
}

// JobInput is the payload for creating a job.
type JobInput struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	CompanyName        string   `json:"company_name"`
	Location           string   `json:"location"`
	SalaryMin          *int     `json:"salary_min,omitempty"`
	SalaryMax          *int     `json:"salary_max,omitempty"`
	JobType            JobType  `json:"job_type"`
	RequiredSkills     []string `json:"required_skills"`
	ExperienceRequired int      `json:"experience_required"`
}

// ErrInvalidJob is returned by JobInput.Validate.
var ErrInvalidJob = errors.New("invalid job")

// Validate checks required fields before the job is submitted.
func (in JobInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.CompanyName) == "" || strings.TrimSpace(in.Location) == "" {
		return ErrInvalidJob
	}
	if !in.JobType.Valid() {
		return ErrInvalidJob
	}
	if in.ExperienceRequired < 0 {
		return ErrInvalidJob
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		return ErrInvalidJob
	}
	return nil
}

// JobFilter narrows a job listing. Zero values are omitted.
type JobFilter struct {
	Status    JobStatus
	Location  string
	JobType   JobType
	Skills    string
	SalaryMin int
}

// ApplicationStatus is the recruiter-side state of an application.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationAccepted    ApplicationStatus = "accepted"
)

// ParseApplicationStatus validates a submitted status.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	st := ApplicationStatus(strings.TrimSpace(s))
	switch st {
	case ApplicationPending, ApplicationShortlisted, ApplicationRejected, ApplicationAccepted:
		return st, true
	}
	return "", false
}

// Application is a job seeker's application to a job.
type Application struct {
	ApplicationID string            `json:"application_id"`
	JobID         string            `json:"job_id"`
	JobSeekerID   string            `json:"job_seeker_id"`
	RecruiterID   string            `json:"recruiter_id"`
	Status        ApplicationStatus `json:"status"`
	CoverLetter   string            `json:"cover_letter,omitempty"`
	AppliedAt     time.Time         `json:"applied_at"`
	Job           *Job              `json:"job,omitempty"`
	JobSeeker     *auth.Identity    `json:"job_seeker,omitempty"`
	Profile       *JobSeekerProfile `json:"profile,omitempty"`
}

// Message is a direct message between two users.
type Message struct {
	MessageID     string    `json:"message_id"`
	SenderID      string    `json:"sender_id"`
	ReceiverID    string    `json:"receiver_id"`
	Content       string    `json:"content"`
	ApplicationID string    `json:"application_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Read          bool      `json:"read"`
}

// MessageInput is the payload for sending a message.
type MessageInput struct {
	ReceiverID    string `json:"receiver_id"`
	Content       string `json:"content"`
	ApplicationID string `json:"application_id,omitempty"`
}

// Conversation summarises a thread with another user.
type Conversation struct {
	User        auth.Identity `json:"user"`
	LastMessage Message       `json:"last_message"`
}

// JobSeekerProfile is the job seeker's public profile.
type JobSeekerProfile struct {
	UserID             string    `json:"user_id"`
	Skills             []string  `json:"skills"`
	ExperienceYears    int       `json:"experience_years"`
	Location           string    `json:"location"`
	ResumeURL          string    `json:"resume_url,omitempty"`
	PreferredJobTypes  []JobType `json:"preferred_job_types"`
	PreferredSalaryMin *int      `json:"preferred_salary_min,omitempty"`
	PreferredSalaryMax *int      `json:"preferred_salary_max,omitempty"`
	Bio                string    `json:"bio,omitempty"`
}

// RecruiterProfile is the recruiter's company profile. Subscription fields
// are read-only here; billing is handled elsewhere.
type RecruiterProfile struct {
	UserID              string     `json:"user_id"`
	CompanyName         string     `json:"company_name"`
	CompanyWebsite      string     `json:"company_website,omitempty"`
	CompanyDescription  string     `json:"company_description,omitempty"`
	SubscriptionPlan    string     `json:"subscription_plan,omitempty"`
	SubscriptionStatus  string     `json:"subscription_status,omitempty"`
	SubscriptionEnd     *time.Time `json:"subscription_end,omitempty"`
	JobsPostedThisMonth int        `json:"jobs_posted_this_month"`
}

// User is an account as listed by the admin API.
type User struct {
	auth.Identity
	CreatedAt time.Time `json:"created_at"`
}

// Analytics is the admin dashboard summary.
type Analytics struct {
	Users struct {
		Total      int `json:"total"`
		JobSeekers int `json:"job_seekers"`
		Recruiters int `json:"recruiters"`
	} `json:"users"`
	Jobs struct {
		Total    int `json:"total"`
		Approved int `json:"approved"`
		Pending  int `json:"pending"`
	} `json:"jobs"`
	Applications struct {
		Total   int `json:"total"`
		Pending int `json:"pending"`
	} `json:"applications"`
}

// SplitSkills turns a comma separated form value into a trimmed skill list.
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
