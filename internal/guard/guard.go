// Package guard decides what a role-gated screen should do with the current
// session: render, wait, or redirect.
package guard

import (
	"strings"

	"github.com/okul/schoolhub/internal/app/models"
	"github.com/okul/schoolhub/internal/session"
)

// Action is the outcome of a guard check.
type Action int

const (
	// ShowLoading means the session is still resolving; render nothing yet.
	ShowLoading Action = iota
	// RedirectLogin means no authenticated user exists.
	RedirectLogin
	// RedirectHome means the user is authenticated but lacks the required
	// role; send them to their own home.
	RedirectHome
	// Allow means the screen may render.
	Allow
)

// Decision pairs an action with the redirect target when one applies.
type Decision struct {
	Action Action
	Target string
}

// LoginPath is where unauthenticated users are sent.
const LoginPath = "/login"

// HomePath returns the landing route for a role. Unknown roles fall back to
// the login screen.
func HomePath(role models.Role) string {
	switch role {
	case models.RoleDeveloper:
		return "/developer"
	case models.RolePrincipal:
		return "/principal"
	case models.RoleTeacher:
		return "/teacher"
	case models.RoleStudent:
		return "/student"
	case models.RoleParent:
		return "/parent"
	default:
		return LoginPath
	}
}

// Decide evaluates a role-gated screen against the session snapshot. An
// empty required list means any authenticated user may enter. Required
// roles match case-insensitively, since the backend reports roles in
// uppercase.
func Decide(snap session.Snapshot, required ...models.Role) Decision {
	if snap.State == session.StateUnknown || snap.Loading {
		return Decision{Action: ShowLoading}
	}
	if snap.State != session.StateAuthenticated || snap.User == nil {
		return Decision{Action: RedirectLogin, Target: LoginPath}
	}
	if len(required) == 0 {
		return Decision{Action: Allow}
	}

	have := strings.ToLower(string(snap.User.Role))
	for _, r := range required {
		if strings.ToLower(string(r)) == have {
			return Decision{Action: Allow}
		}
	}
	return Decision{Action: RedirectHome, Target: HomePath(snap.User.Role)}
}
