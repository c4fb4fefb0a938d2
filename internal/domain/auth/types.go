package auth

// Package auth contains domain-level types for authentication, roles and
// route gating. It is pure and free of framework/adapter concerns.

import (
	"errors"
	"strings"
	"time"
)

// Well-known navigation targets.
const (
	DefaultPath = "/"
	LoginPath   = "/login"
)

// Role is the marketplace role of an authenticated user.
// The zero value is not a valid role.
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// AllRoles lists every valid role.
var AllRoles = []Role{RoleJobSeeker, RoleRecruiter, RoleAdmin}

// ParseRole maps a wire value to a Role. Unknown values report false.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.TrimSpace(s))
	return r, r.Valid()
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleJobSeeker, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// LandingPath is where a user with this role lands after signing in.
// Invalid roles land on DefaultPath.
func (r Role) LandingPath() string {
	switch r {
	case RoleJobSeeker:
		return "/jobseeker"
	case RoleRecruiter:
		return "/recruiter"
	case RoleAdmin:
		return "/admin"
	}
	return DefaultPath
}

// Label is a human-readable role name.
func (r Role) Label() string {
	switch r {
	case RoleJobSeeker:
		return "Job Seeker"
	case RoleRecruiter:
		return "Recruiter"
	case RoleAdmin:
		return "Admin"
	}
	return "Unknown"
}

// NavItem is a single sidebar entry.
type NavItem struct {
	Label string
	Path  string
}

// Navigation returns the sidebar entries for the role's dashboard.
func (r Role) Navigation() []NavItem {
	switch r {
	case RoleJobSeeker:
		return []NavItem{
			{Label: "Dashboard", Path: "/jobseeker"},
			{Label: "Search Jobs", Path: "/jobseeker/search"},
			{Label: "My Applications", Path: "/jobseeker/applications"},
			{Label: "Messages", Path: "/jobseeker/messages"},
			{Label: "Profile", Path: "/jobseeker/profile"},
		}
	case RoleRecruiter:
		return []NavItem{
			{Label: "Dashboard", Path: "/recruiter"},
			{Label: "My Jobs", Path: "/recruiter/jobs"},
			{Label: "Post Job", Path: "/recruiter/post-job"},
			{Label: "Messages", Path: "/recruiter/messages"},
			{Label: "Profile", Path: "/recruiter/profile"},
		}
	case RoleAdmin:
		return []NavItem{
			{Label: "Analytics", Path: "/admin"},
			{Label: "Users", Path: "/admin/users"},
			{Label: "Job Moderation", Path: "/admin/jobs"},
		}
	}
	return nil
}

// ErrInvalidIdentity is returned when an identity lacks a user id or a valid role.
var ErrInvalidIdentity = errors.New("invalid identity")

// Identity is the authenticated principal as reported by the backend.
type Identity struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    Role   `json:"role"`
	Picture string `json:"picture,omitempty"`
}

// Validate checks the fields the guard depends on.
func (i Identity) Validate() error {
	if strings.TrimSpace(i.UserID) == "" || !i.Role.Valid() {
		return ErrInvalidIdentity
	}
	return nil
}

// DisplayName prefers the user's name and falls back to the email.
func (i Identity) DisplayName() string {
	if n := strings.TrimSpace(i.Name); n != "" {
		return n
	}
	return i.Email
}

// Session is the per-browser record we persist: the bearer credential issued
// by the backend plus a snapshot of the identity it belongs to. Both are
// written and cleared together.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"-"`
	Identity  Identity  `json:"identity"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Handoff carries a freshly authenticated identity to the next guarded
// request so it can render without a second backend round trip.
// It is consumed on first read and only honoured for Target.
type Handoff struct {
	Identity  Identity  `json:"identity"`
	Target    string    `json:"target"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Matches reports whether the handoff applies to the given request path.
func (h Handoff) Matches(path string) bool {
	return h.Target != "" && h.Target == path && h.Identity.Validate() == nil
}
