package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, r := range AllRoles {
		got, ok := ParseRole(string(r))
		assert.True(t, ok, "role %q", r)
		assert.Equal(t, r, got)
	}

	_, ok := ParseRole("superuser")
	assert.False(t, ok)
	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestRole_LandingPath(t *testing.T) {
	assert.Equal(t, "/jobseeker", RoleJobSeeker.LandingPath())
	assert.Equal(t, "/recruiter", RoleRecruiter.LandingPath())
	assert.Equal(t, "/admin", RoleAdmin.LandingPath())
	assert.Equal(t, DefaultPath, Role("moderator").LandingPath())
}

func TestRole_NavigationCoversEveryRole(t *testing.T) {
	for _, r := range AllRoles {
		nav := r.Navigation()
		if assert.NotEmpty(t, nav, "role %q", r) {
			assert.Equal(t, r.LandingPath(), nav[0].Path, "first entry is the landing page")
		}
	}
	assert.Nil(t, Role("").Navigation())
}

func TestIdentity_Validate(t *testing.T) {
	assert.NoError(t, Identity{UserID: "u1", Role: RoleAdmin}.Validate())
	assert.ErrorIs(t, Identity{UserID: " ", Role: RoleAdmin}.Validate(), ErrInvalidIdentity)
	assert.ErrorIs(t, Identity{UserID: "u1", Role: "guest"}.Validate(), ErrInvalidIdentity)
}

func TestIdentity_DisplayName(t *testing.T) {
	assert.Equal(t, "Ada", Identity{Name: "Ada", Email: "ada@example.com"}.DisplayName())
	assert.Equal(t, "ada@example.com", Identity{Email: "ada@example.com"}.DisplayName())
}

func TestHandoff_Matches(t *testing.T) {
	h := Handoff{Identity: Identity{UserID: "u1", Role: RoleRecruiter}, Target: "/recruiter"}
	assert.True(t, h.Matches("/recruiter"))
	assert.False(t, h.Matches("/admin"))
	assert.False(t, Handoff{Target: "/recruiter"}.Matches("/recruiter"))
}
