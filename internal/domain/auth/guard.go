package auth

// GuardStatus is the resolution state of a route guard.
type GuardStatus int

const (
	GuardUnresolved GuardStatus = iota
	GuardAuthenticated
	GuardUnauthenticated
)

func (s GuardStatus) String() string {
	switch s {
	case GuardAuthenticated:
		return "authenticated"
	case GuardUnauthenticated:
		return "unauthenticated"
	default:
		return "unresolved"
	}
}

// GuardState is the outcome of session resolution for one guarded request.
// Identity is only meaningful when Status is GuardAuthenticated.
type GuardState struct {
	Status   GuardStatus
	Identity Identity
}

// Authenticated builds a resolved state for id.
func Authenticated(id Identity) GuardState {
	return GuardState{Status: GuardAuthenticated, Identity: id}
}

// Unauthenticated builds a resolved anonymous state.
func Unauthenticated() GuardState {
	return GuardState{Status: GuardUnauthenticated}
}

// RoleSet is a guard's allow-list. An empty set admits any valid role.
type RoleSet []Role

// Permits reports whether r may pass a guard configured with s.
func (s RoleSet) Permits(r Role) bool {
	if !r.Valid() {
		return false
	}
	if len(s) == 0 {
		return true
	}
	for _, allowed := range s {
		if allowed == r {
			return true
		}
	}
	return false
}

// Decision is what a guard does with a request.
type Decision int

const (
	// DecisionWait means resolution has not finished; nothing may render.
	DecisionWait Decision = iota
	DecisionRender
	DecisionRedirectLogin
	DecisionRedirectDefault
)

func (d Decision) String() string {
	switch d {
	case DecisionRender:
		return "render"
	case DecisionRedirectLogin:
		return "redirect_login"
	case DecisionRedirectDefault:
		return "redirect_default"
	default:
		return "wait"
	}
}

// Decide applies the guard table to a resolution state.
func Decide(state GuardState, allowed RoleSet) Decision {
	switch state.Status {
	case GuardUnauthenticated:
		return DecisionRedirectLogin
	case GuardAuthenticated:
		if !allowed.Permits(state.Identity.Role) {
			return DecisionRedirectDefault
		}
		return DecisionRender
	default:
		return DecisionWait
	}
}

// Location returns the redirect target for a redirect decision.
func (d Decision) Location() string {
	switch d {
	case DecisionRedirectLogin:
		return LoginPath
	case DecisionRedirectDefault:
		return DefaultPath
	}
	return ""
}
