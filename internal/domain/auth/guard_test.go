package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	seeker := Identity{UserID: "u1", Role: RoleJobSeeker}
	admin := Identity{UserID: "u2", Role: RoleAdmin}

	tests := []struct {
		name    string
		state   GuardState
		allowed RoleSet
		want    Decision
	}{
		{name: "unresolved waits", state: GuardState{}, allowed: RoleSet{RoleJobSeeker}, want: DecisionWait},
		{name: "unresolved waits with empty set", state: GuardState{}, want: DecisionWait},
		{name: "unauthenticated goes to login", state: Unauthenticated(), allowed: RoleSet{RoleAdmin}, want: DecisionRedirectLogin},
		{name: "permitted role renders", state: Authenticated(seeker), allowed: RoleSet{RoleJobSeeker}, want: DecisionRender},
		{name: "wrong role goes home", state: Authenticated(seeker), allowed: RoleSet{RoleAdmin}, want: DecisionRedirectDefault},
		{name: "empty set admits any role", state: Authenticated(admin), want: DecisionRender},
		{name: "invalid role never renders", state: Authenticated(Identity{UserID: "u3", Role: "root"}), want: DecisionRedirectDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.state, tt.allowed))
		})
	}
}

func TestDecide_NeverRendersOutsideAllowList(t *testing.T) {
	for _, allowed := range []RoleSet{{RoleJobSeeker}, {RoleRecruiter}, {RoleAdmin}, {RoleRecruiter, RoleAdmin}} {
		for _, r := range AllRoles {
			d := Decide(Authenticated(Identity{UserID: "u", Role: r}), allowed)
			if d == DecisionRender {
				assert.True(t, allowed.Permits(r), "rendered %q for %v", r, allowed)
			}
		}
	}
}

func TestDecision_Location(t *testing.T) {
	assert.Equal(t, LoginPath, DecisionRedirectLogin.Location())
	assert.Equal(t, DefaultPath, DecisionRedirectDefault.Location())
	assert.Empty(t, DecisionRender.Location())
	assert.Empty(t, DecisionWait.Location())
}
