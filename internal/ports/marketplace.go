package ports

import (
	"context"

	"github.com/jobconnect/jobconnect-web/internal/domain/marketplace"
)

// JobsAPI reads and creates job postings.
type JobsAPI interface {
	ListJobs(ctx context.Context, token string, f marketplace.JobFilter) ([]marketplace.Job, error)
	GetJob(ctx context.Context, token, jobID string) (marketplace.Job, error)
	CreateJob(ctx context.Context, token string, in marketplace.JobInput) (marketplace.Job, error)
	MyJobs(ctx context.Context, token string) ([]marketplace.Job, error)
	Recommendations(ctx context.Context, token string) ([]marketplace.Job, error)
}

// ApplicationsAPI manages job applications.
type ApplicationsAPI interface {
	Apply(ctx context.Context, token, jobID, coverLetter string) (marketplace.Application, error)
	MyApplications(ctx context.Context, token string) ([]marketplace.Application, error)
	JobApplications(ctx context.Context, token, jobID string) ([]marketplace.Application, error)
	UpdateApplicationStatus(ctx context.Context, token, applicationID string, status marketplace.ApplicationStatus) error
}

// MessagesAPI reads and sends direct messages.
type MessagesAPI interface {
	Conversations(ctx context.Context, token string) ([]marketplace.Conversation, error)
	Conversation(ctx context.Context, token, otherUserID string) ([]marketplace.Message, error)
	SendMessage(ctx context.Context, token string, in marketplace.MessageInput) (marketplace.Message, error)
}

// ProfilesAPI reads and updates role profiles.
type ProfilesAPI interface {
	JobSeekerProfile(ctx context.Context, token, userID string) (marketplace.JobSeekerProfile, error)
	UpdateJobSeekerProfile(ctx context.Context, token string, p marketplace.JobSeekerProfile) error
	RecruiterProfile(ctx context.Context, token, userID string) (marketplace.RecruiterProfile, error)
	UpdateRecruiterProfile(ctx context.Context, token string, p marketplace.RecruiterProfile) error
}

// AdminAPI is the moderation surface available to admins.
type AdminAPI interface {
	Users(ctx context.Context, token string) ([]marketplace.User, error)
	DeleteUser(ctx context.Context, token, userID string) error
	ModerationJobs(ctx context.Context, token string, status marketplace.JobStatus) ([]marketplace.Job, error)
	ModerateJob(ctx context.Context, token, jobID string, approve bool) error
	Analytics(ctx context.Context, token string) (marketplace.Analytics, error)
}

// MarketplaceAPI groups every data surface page handlers consume.
type MarketplaceAPI interface {
	JobsAPI
	ApplicationsAPI
	MessagesAPI
	ProfilesAPI
	AdminAPI
}
