package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jobconnect/jobconnect-web/internal/domain/marketplace"
	"github.com/jobconnect/jobconnect-web/internal/ports"
)

const recentApplications = 5

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	API    ports.MarketplaceAPI
	Logger *slog.Logger
}

// DashboardService assembles pages that need several backend resources,
// fetching them concurrently.
type DashboardService struct {
	api    ports.MarketplaceAPI
	logger *slog.Logger
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{api: opts.API, logger: logger}
}

// JobSeekerDashboard is the job seeker landing page.
type JobSeekerDashboard struct {
	Recommendations []marketplace.Job
	Applications    []marketplace.Application
	TotalApplied    int
	Shortlisted     int
}

// JobSeeker loads recommendations and recent applications. Recommendations
// are best effort: a failure there leaves the list empty.
func (d *DashboardService) JobSeeker(ctx context.Context, token string) (JobSeekerDashboard, error) {
	var out JobSeekerDashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		recs, err := d.api.Recommendations(gctx, token)
		if err != nil {
			d.logger.DebugContext(gctx, "recommendations unavailable", "error", err)
			return nil
		}
		out.Recommendations = recs
		return nil
	})
	g.Go(func() error {
		apps, err := d.api.MyApplications(gctx, token)
		if err != nil {
			return err
		}
		out.TotalApplied = len(apps)
		for _, a := range apps {
			if a.Status == marketplace.ApplicationShortlisted {
				out.Shortlisted++
			}
		}
		if len(apps) > recentApplications {
			apps = apps[:recentApplications]
		}
		out.Applications = apps
		return nil
	})

	if err := g.Wait(); err != nil {
		return JobSeekerDashboard{}, err
	}
	return out, nil
}

// RecruiterDashboard is the recruiter landing page.
type RecruiterDashboard struct {
	Profile     marketplace.RecruiterProfile
	Jobs        []marketplace.Job
	ActiveJobs  int
	PendingJobs int
}

// Recruiter loads the recruiter's profile and jobs.
func (d *DashboardService) Recruiter(ctx context.Context, token, userID string) (RecruiterDashboard, error) {
	var out RecruiterDashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := d.api.RecruiterProfile(gctx, token, userID)
		if err != nil {
			return err
		}
		out.Profile = p
		return nil
	})
	g.Go(func() error {
		jobs, err := d.api.MyJobs(gctx, token)
		if err != nil {
			return err
		}
		out.Jobs = jobs
		for _, j := range jobs {
			switch j.Status {
			case marketplace.JobApproved:
				out.ActiveJobs++
			case marketplace.JobPending:
				out.PendingJobs++
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return RecruiterDashboard{}, err
	}
	return out, nil
}

// AdminDashboard is the admin landing page.
type AdminDashboard struct {
	Analytics   marketplace.Analytics
	PendingJobs []marketplace.Job
}

// Admin loads platform analytics and the moderation queue.
func (d *DashboardService) Admin(ctx context.Context, token string) (AdminDashboard, error) {
	var out AdminDashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a, err := d.api.Analytics(gctx, token)
		if err != nil {
			return err
		}
		out.Analytics = a
		return nil
	})
	g.Go(func() error {
		jobs, err := d.api.ModerationJobs(gctx, token, marketplace.JobPending)
		if err != nil {
			return err
		}
		out.PendingJobs = jobs
		return nil
	})

	if err := g.Wait(); err != nil {
		return AdminDashboard{}, err
	}
	return out, nil
}

// Applicants is a job together with its applications.
type Applicants struct {
	Job          marketplace.Job
	Applications []marketplace.Application
}

// JobApplicants loads a recruiter's job and its applicants.
func (d *DashboardService) JobApplicants(ctx context.Context, token, jobID string) (Applicants, error) {
	var out Applicants
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		job, err := d.api.GetJob(gctx, token, jobID)
		if err != nil {
			return err
		}
		out.Job = job
		return nil
	})
	g.Go(func() error {
		apps, err := d.api.JobApplications(gctx, token, jobID)
		if err != nil {
			return err
		}
		out.Applications = apps
		return nil
	})

	if err := g.Wait(); err != nil {
		return Applicants{}, err
	}
	return out, nil
}

// Inbox is the conversation list plus the open thread, if any.
type Inbox struct {
	Conversations []marketplace.Conversation
	Thread        []marketplace.Message
	OtherUserID   string
}

// Messages loads the caller's conversations and, when otherUserID is set,
// the thread with that user.
func (d *DashboardService) Messages(ctx context.Context, token, otherUserID string) (Inbox, error) {
	out := Inbox{OtherUserID: otherUserID}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		convs, err := d.api.Conversations(gctx, token)
		if err != nil {
			return err
		}
		out.Conversations = convs
		return nil
	})
	if otherUserID != "" {
		g.Go(func() error {
			msgs, err := d.api.Conversation(gctx, token, otherUserID)
			if err != nil {
				return err
			}
			out.Thread = msgs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Inbox{}, err
	}
	return out, nil
}
