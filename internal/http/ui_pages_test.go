package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/jobconnect/jobconnect-web/internal/domain/auth"
	"github.com/jobconnect/jobconnect-web/internal/domain/marketplace"
	apperrors "github.com/jobconnect/jobconnect-web/internal/errors"
)

// flashesOf decodes the flash cookie set on rec.
func flashesOf(t *testing.T, rec *httptest.ResponseRecorder) []Flash {
	t.Helper()
	cookie := responseCookie(rec, FlashCookieName)
	require.NotNil(t, cookie, "expected a flash cookie")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	return NewFlashStore(FlashOptions{Secret: []byte(testFlashSecret)}).Consume(httptest.NewRecorder(), req)
}

func anonymous(env *testEnv) {
	env.Identity.MeFunc = func(context.Context, string) (domainauth.Identity, error) {
		return domainauth.Identity{}, apperrors.Unauthenticated("Not authenticated")
	}
}

func TestApply_SuccessFlashesAndListsApplications(t *testing.T) {
	env := newTestEnv(t)
	sid := env.signIn(t, testSeeker)
	env.API.EXPECT().
		Apply(gomock.Any(), "token-u-seeker", "j1", "I am keen").
		Return(marketplace.Application{ApplicationID: "a1"}, nil)

	rec := env.do(http.MethodPost, "/jobseeker/jobs/j1/apply",
		url.Values{"cover_letter": {"  I am keen  "}}, sessionCookie(sid))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/jobseeker/applications", rec.Header().Get("Location"))
	assert.Equal(t, []Flash{{Kind: FlashSuccess, Message: msgApplied}}, flashesOf(t, rec))
}

func TestApply_BackendMessageReturnsToJob(t *testing.T) {
	env := newTestEnv(t)
	sid := env.signIn(t, testSeeker)
	env.API.EXPECT().
		Apply(gomock.Any(), "token-u-seeker", "j1", "").
		Return(marketplace.Application{}, apperrors.Conflict("You have already applied to this job"))

	rec := env.do(http.MethodPost, "/jobseeker/jobs/j1/apply", url.Values{}, sessionCookie(sid))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/jobs/j1", rec.Header().Get("Location"))
	assert.Equal(t, []Flash{{Kind: FlashError, Message: "You have already applied to this job"}}, flashesOf(t, rec))
}

func TestApply_RecruiterIsSentHome(t *testing.T) {
	env := newTestEnv(t)
	sid := env.signIn(t, testRecruiter)

	rec := env.do(http.MethodPost, "/jobseeker/jobs/j1/apply", url.Values{}, sessionCookie(sid))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestPostJob_InvalidFormRerenders(t *testing.T) {
	env := newTestEnv(t)
	sid := env.signIn(t, testRecruiter)

	rec := env.do(http.MethodPost, "/recruiter/post-job", url.Values{
		"description":  {"Build things"},
		"company_name": {"Acme"},
		"location":     {"Remote"},
		"job_type":     {"full-time"},
		"salary_min":   {"90000"},
		"salary_max":   {"50000"},
	}, sessionCookie(sid))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.True(t, ContainsAll(body, []string{
		"Title is required.",
		"Maximum salary must be at least the minimum.",
		`value="Acme"`,
	}), body)
}

func TestPostJob_CreatesAndRedirects(t *testing.T) {
	env := newTestEnv(t)
	sid := env.signIn(t, testRecruiter)
	env.API.EXPECT().
		CreateJob(gomock.Any(), "token-u-recruiter", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, in marketplace.JobInput) (marketplace.Job, error) {
			assert.Equal(t, "Go Engineer", in.Title)
			assert.Equal(t, marketplace.JobContract, in.JobType)
			assert.Equal(t, []string{"go", "redis"}, in.RequiredSkills)
			require.NotNil(t, in.SalaryMin)
			assert.Equal(t, 50000, *in.SalaryMin)
			assert.Nil(t, in.SalaryMax)
			return marketplace.Job{JobID: "j2"}, nil
		})

	rec := env.do(http.MethodPost, "/recruiter/post-job", url.Values{
		"title":           {"Go Engineer"},
		"description":     {"Build things"},
		"company_name":    {"Acme"},
		"location":        {"Remote"},
		"job_type":        {"contract"},
		"salary_min":      {"50000"},
		"required_skills": {"go, redis,"},
	}, sessionCookie(sid))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/recruiter/jobs", rec.Header().Get("Location"))
	assert.Equal(t, []Flash{{Kind: FlashSuccess, Message: msgJobPosted}}, flashesOf(t, rec))
}

func TestUpdateApplicationStatus_RejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	sid := env.signIn(t, testRecruiter)

	rec := env.do(http.MethodPost, "/recruiter/applications/a1/status", url.Values{
		"status":    {"hired"},
		"return_to": {"/recruiter/jobs/j1/applicants"},
	}, sessionCookie(sid))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/recruiter/jobs/j1/applicants", rec.Header().Get("Location"))
	assert.Equal(t, []Flash{{Kind: FlashError, Message: msgInvalidStatus}}, flashesOf(t, rec))
}

func TestUpdateApplicationStatus_OffsiteReturnIgnored(t *testing.T) {
	env := newTestEnv(t)
	sid := env.signIn(t, testRecruiter)
	env.API.EXPECT().
		UpdateApplicationStatus(gomock.Any(), "token-u-recruiter", "a1", marketplace.ApplicationShortlisted).
		Return(nil)

	rec := env.do(http.MethodPost, "/recruiter/applications/a1/status", url.Values{
		"status":    {"shortlisted"},
		"return_to": {"//evil.example.com"},
	}, sessionCookie(sid))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/recruiter/jobs", rec.Header().Get("Location"))
}

func TestAdmin_CannotDeleteSelf(t *testing.T) {
	env := newTestEnv(t)
	sid := env.signIn(t, testAdmin)

	rec := env.do(http.MethodPost, "/admin/users/u-admin/delete", url.Values{}, sessionCookie(sid))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/users", rec.Header().Get("Location"))
	assert.Equal(t, []Flash{{Kind: FlashError, Message: msgCannotDeleteYou}}, flashesOf(t, rec))
}

func TestAdmin_ApproveJob(t *testing.T) {
	env := newTestEnv(t)
	sid := env.signIn(t, testAdmin)
	env.API.EXPECT().ModerateJob(gomock.Any(), "token-u-admin", "j9", true).Return(nil)

	rec := env.do(http.MethodPost, "/admin/jobs/j9/approve", url.Values{}, sessionCookie(sid))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/jobs", rec.Header().Get("Location"))
	assert.Equal(t, []Flash{{Kind: FlashSuccess, Message: msgJobApproved}}, flashesOf(t, rec))
}

func TestAdmin_JobsDefaultsToPending(t *testing.T) {
	env := newTestEnv(t)
	sid := env.signIn(t, testAdmin)
	env.API.EXPECT().
		ModerationJobs(gomock.Any(), "token-u-admin", marketplace.JobPending).
		Return([]marketplace.Job{{JobID: "j9", Title: "Data Analyst", CompanyName: "Acme"}}, nil)

	rec := env.do(http.MethodGet, "/admin/jobs?status=bogus", nil, sessionCookie(sid))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Data Analyst")
}

func TestSendMessage_RedirectsToThread(t *testing.T) {
	env := newTestEnv(t)
	sid := env.signIn(t, testSeeker)
	env.API.EXPECT().
		SendMessage(gomock.Any(), "token-u-seeker", marketplace.MessageInput{
			ReceiverID: "u-recruiter", Content: "Hello", ApplicationID: "a1",
		}).
		Return(marketplace.Message{MessageID: "m1"}, nil)

	rec := env.do(http.MethodPost, "/jobseeker/messages", url.Values{
		"receiver_id":    {"u-recruiter"},
		"content":        {" Hello "},
		"application_id": {"a1"},
	}, sessionCookie(sid))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/jobseeker/messages?with=u-recruiter", rec.Header().Get("Location"))
}

func TestSendMessage_EmptyContentNeverSent(t *testing.T) {
	env := newTestEnv(t)
	sid := env.signIn(t, testRecruiter)

	rec := env.do(http.MethodPost, "/recruiter/messages", url.Values{
		"receiver_id": {"u-seeker"},
		"content":     {"   "},
	}, sessionCookie(sid))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/recruiter/messages?with=u-seeker", rec.Header().Get("Location"))
	assert.Equal(t, []Flash{{Kind: FlashError, Message: "Message is required."}}, flashesOf(t, rec))
}

func TestPublicJobs_ListsApprovedOnly(t *testing.T) {
	env := newTestEnv(t)
	anonymous(env)
	env.API.EXPECT().
		ListJobs(gomock.Any(), "", marketplace.JobFilter{
			Status:    marketplace.JobApproved,
			Location:  "Remote",
			SalaryMin: 40000,
		}).
		Return([]marketplace.Job{{JobID: "j1", Title: "Go Engineer", CompanyName: "Acme", JobType: marketplace.JobFullTime}}, nil)

	rec := env.do(http.MethodGet, "/jobs?location=Remote&job_type=bogus&salary_min=40000&status=pending", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Go Engineer")
}

func TestPublicJobs_BackendFailureShowsPageError(t *testing.T) {
	env := newTestEnv(t)
	anonymous(env)
	env.API.EXPECT().
		ListJobs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Transport(context.DeadlineExceeded))

	rec := env.do(http.MethodGet, "/jobs", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), errMsgUnavailable)
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	env := newTestEnv(t)
	anonymous(env)

	rec := env.do(http.MethodGet, "/no/such/page", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}
