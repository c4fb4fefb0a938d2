package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jobconnect/jobconnect-web/internal/domain/marketplace"
	"github.com/jobconnect/jobconnect-web/internal/ports"
)

var _ ports.MarketplaceAPI = (*Client)(nil)

// ListJobs lists jobs matching f. An empty status lists approved jobs.
func (c *Client) ListJobs(ctx context.Context, token string, f marketplace.JobFilter) ([]marketplace.Job, error) {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Location != "" {
		q.Set("location", f.Location)
	}
	if f.JobType != "" {
		q.Set("job_type", string(f.JobType))
	}
	if f.Skills != "" {
		q.Set("skills", f.Skills)
	}
	if f.SalaryMin > 0 {
		q.Set("salary_min", strconv.Itoa(f.SalaryMin))
	}

	var jobs []marketplace.Job
	err := c.do(ctx, call{method: http.MethodGet, path: "/jobs", query: q, token: token, endpoint: "jobs_list"}, &jobs)
	return jobs, err
}

// GetJob fetches one job.
func (c *Client) GetJob(ctx context.Context, token, jobID string) (marketplace.Job, error) {
	id, err := escape(jobID)
	if err != nil {
		return marketplace.Job{}, err
	}
	var job marketplace.Job
	err = c.do(ctx, call{method: http.MethodGet, path: "/jobs/" + id, token: token, endpoint: "jobs_get"}, &job)
	return job, err
}

// CreateJob posts a new job for moderation.
func (c *Client) CreateJob(ctx context.Context, token string, in marketplace.JobInput) (marketplace.Job, error) {
	var job marketplace.Job
	err := c.do(ctx, call{method: http.MethodPost, path: "/jobs", body: in, token: token, endpoint: "jobs_create"}, &job)
	return job, err
}

// MyJobs lists the calling recruiter's jobs.
func (c *Client) MyJobs(ctx context.Context, token string) ([]marketplace.Job, error) {
	var jobs []marketplace.Job
	err := c.do(ctx, call{method: http.MethodGet, path: "/jobs/recruiter/my-jobs", token: token, endpoint: "jobs_mine"}, &jobs)
	return jobs, err
}

// Recommendations returns jobs matched to the calling job seeker's profile.
func (c *Client) Recommendations(ctx context.Context, token string) ([]marketplace.Job, error) {
	var jobs []marketplace.Job
	err := c.do(ctx, call{method: http.MethodGet, path: "/ai/job-recommendations", token: token, endpoint: "jobs_recommendations"}, &jobs)
	return jobs, err
}

// Apply submits an application. The backend rejects duplicates.
func (c *Client) Apply(ctx context.Context, token, jobID, coverLetter string) (marketplace.Application, error) {
	if _, err := escape(jobID); err != nil {
		return marketplace.Application{}, err
	}
	body := map[string]any{"job_id": jobID}
	if coverLetter != "" {
		body["cover_letter"] = coverLetter
	}
	var app marketplace.Application
	err := c.do(ctx, call{method: http.MethodPost, path: "/applications", body: body, token: token, endpoint: "applications_create"}, &app)
	return app, err
}

// MyApplications lists the calling job seeker's applications, newest first.
func (c *Client) MyApplications(ctx context.Context, token string) ([]marketplace.Application, error) {
	var apps []marketplace.Application
	err := c.do(ctx, call{method: http.MethodGet, path: "/applications/my-applications", token: token, endpoint: "applications_mine"}, &apps)
	return apps, err
}

// JobApplications lists applicants for one of the recruiter's jobs.
func (c *Client) JobApplications(ctx context.Context, token, jobID string) ([]marketplace.Application, error) {
	id, err := escape(jobID)
	if err != nil {
		return nil, err
	}
	var apps []marketplace.Application
	err = c.do(ctx, call{method: http.MethodGet, path: "/applications/job/" + id, token: token, endpoint: "applications_job"}, &apps)
	return apps, err
}

// UpdateApplicationStatus moves an application to status.
func (c *Client) UpdateApplicationStatus(ctx context.Context, token, applicationID string, status marketplace.ApplicationStatus) error {
	id, err := escape(applicationID)
	if err != nil {
		return err
	}
	return c.do(ctx, call{
		method:   http.MethodPut,
		path:     "/applications/" + id + "/status",
		query:    url.Values{"status": []string{string(status)}},
		token:    token,
		endpoint: "applications_status",
	}, nil)
}

// Conversations lists the caller's message threads.
func (c *Client) Conversations(ctx context.Context, token string) ([]marketplace.Conversation, error) {
	var convs []marketplace.Conversation
	err := c.do(ctx, call{method: http.MethodGet, path: "/messages/conversations", token: token, endpoint: "messages_conversations"}, &convs)
	return convs, err
}

// Conversation returns the thread with otherUserID, oldest first.
func (c *Client) Conversation(ctx context.Context, token, otherUserID string) ([]marketplace.Message, error) {
	id, err := escape(otherUserID)
	if err != nil {
		return nil, err
	}
	var msgs []marketplace.Message
	err = c.do(ctx, call{method: http.MethodGet, path: "/messages/conversation/" + id, token: token, endpoint: "messages_thread"}, &msgs)
	return msgs, err
}

// SendMessage sends a direct message.
func (c *Client) SendMessage(ctx context.Context, token string, in marketplace.MessageInput) (marketplace.Message, error) {
	var msg marketplace.Message
	err := c.do(ctx, call{method: http.MethodPost, path: "/messages", body: in, token: token, endpoint: "messages_send"}, &msg)
	return msg, err
}

// JobSeekerProfile fetches a job seeker's profile.
func (c *Client) JobSeekerProfile(ctx context.Context, token, userID string) (marketplace.JobSeekerProfile, error) {
	id, err := escape(userID)
	if err != nil {
		return marketplace.JobSeekerProfile{}, err
	}
	var p marketplace.JobSeekerProfile
	err = c.do(ctx, call{method: http.MethodGet, path: "/profile/job-seeker/" + id, token: token, endpoint: "profile_job_seeker"}, &p)
	return p, err
}

// UpdateJobSeekerProfile saves the caller's job seeker profile.
func (c *Client) UpdateJobSeekerProfile(ctx context.Context, token string, p marketplace.JobSeekerProfile) error {
	return c.do(ctx, call{method: http.MethodPut, path: "/profile/job-seeker", body: p, token: token, endpoint: "profile_job_seeker_update"}, nil)
}

// RecruiterProfile fetches a recruiter's profile.
func (c *Client) RecruiterProfile(ctx context.Context, token, userID string) (marketplace.RecruiterProfile, error) {
	id, err := escape(userID)
	if err != nil {
		return marketplace.RecruiterProfile{}, err
	}
	var p marketplace.RecruiterProfile
	err = c.do(ctx, call{method: http.MethodGet, path: "/profile/recruiter/" + id, token: token, endpoint: "profile_recruiter"}, &p)
	return p, err
}

// UpdateRecruiterProfile saves the caller's recruiter profile.
func (c *Client) UpdateRecruiterProfile(ctx context.Context, token string, p marketplace.RecruiterProfile) error {
	return c.do(ctx, call{method: http.MethodPut, path: "/profile/recruiter", body: p, token: token, endpoint: "profile_recruiter_update"}, nil)
}

// Users lists every account.
func (c *Client) Users(ctx context.Context, token string) ([]marketplace.User, error) {
	var users []marketplace.User
	err := c.do(ctx, call{method: http.MethodGet, path: "/admin/users", token: token, endpoint: "admin_users"}, &users)
	return users, err
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, token, userID string) error {
	id, err := escape(userID)
	if err != nil {
		return err
	}
	return c.do(ctx, call{method: http.MethodDelete, path: "/admin/users/" + id, token: token, endpoint: "admin_users_delete"}, nil)
}

// ModerationJobs lists jobs in the given moderation state; empty lists all.
func (c *Client) ModerationJobs(ctx context.Context, token string, status marketplace.JobStatus) ([]marketplace.Job, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}
	var jobs []marketplace.Job
	err := c.do(ctx, call{method: http.MethodGet, path: "/admin/jobs", query: q, token: token, endpoint: "admin_jobs"}, &jobs)
	return jobs, err
}

// ModerateJob approves or rejects a pending job.
func (c *Client) ModerateJob(ctx context.Context, token, jobID string, approve bool) error {
	id, err := escape(jobID)
	if err != nil {
		return err
	}
	action := "reject"
	if approve {
		action = "approve"
	}
	return c.do(ctx, call{method: http.MethodPut, path: "/admin/jobs/" + id + "/" + action, token: token, endpoint: "admin_jobs_" + action}, nil)
}

// Analytics returns platform totals.
func (c *Client) Analytics(ctx context.Context, token string) (marketplace.Analytics, error) {
	var a marketplace.Analytics
	err := c.do(ctx, call{method: http.MethodGet, path: "/admin/analytics", token: token, endpoint: "admin_analytics"}, &a)
	return a, err
}
