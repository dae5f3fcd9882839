// Package models defines the typed records mirrored from the School LMS
// backend. Relationships between records are foreign-key references by id,
// resolved server side; the client holds no invariants over them beyond the
// declared types.
package models

import (
	"strings"

	"github.com/okul/schoolhub/internal/pkg/apperrors"
)

// Role defines the user role type. The backend emits roles in upper case and
// the web routes use lower case; the client normalizes to lower case at the
// decode boundary so comparisons never need to care.
type Role string

const (
	RoleDeveloper Role = "developer"
	RolePrincipal Role = "principal"
	RoleTeacher   Role = "teacher"
	RoleStudent   Role = "student"
	RoleParent    Role = "parent"
)

// NormalizeRole canonicalizes a role string to its lower-case form.
func NormalizeRole(raw string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(raw))); r {
	case RoleDeveloper, RolePrincipal, RoleTeacher, RoleStudent, RoleParent:
		return r, nil
	default:
		return "", apperrors.ErrInvalidRole
	}
}

// String returns the canonical role string.
func (r Role) String() string {
	return string(r)
}

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	_, err := NormalizeRole(string(r))
	return err == nil
}
