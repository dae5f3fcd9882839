package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/okul/schoolhub/internal/pkg/apperrors"
)

func TestNormalizeRole(t *testing.T) {
	cases := map[string]Role{
		"TEACHER":   RoleTeacher,
		"teacher":   RoleTeacher,
		" Student ": RoleStudent,
		"PRINCIPAL": RolePrincipal,
		"developer": RoleDeveloper,
		"Parent":    RoleParent,
	}
	for raw, want := range cases {
		got, err := NormalizeRole(raw)
		if err != nil {
			t.Fatalf("NormalizeRole(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("NormalizeRole(%q) = %q, want %q", raw, got, want)
		}
	}

	for _, raw := range []string{"", "admin", "SUPERUSER"} {
		if _, err := NormalizeRole(raw); !errors.Is(err, apperrors.ErrInvalidRole) {
			t.Fatalf("NormalizeRole(%q): expected ErrInvalidRole, got %v", raw, err)
		}
	}
}

func TestUserUnmarshalNormalizesRole(t *testing.T) {
	var u User
	err := json.Unmarshal([]byte(`{"id":"u-1","role":"TEACHER","first_name":"Jane","last_name":"Doe"}`), &u)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.Role != RoleTeacher {
		t.Fatalf("role = %q", u.Role)
	}
}

func TestUserFullName(t *testing.T) {
	u := User{FirstName: "Jane", LastName: "Doe", Username: "jdoe"}
	if got := u.FullName(); got != "Jane Doe" {
		t.Fatalf("FullName = %q", got)
	}
	u = User{Username: "jdoe"}
	if got := u.FullName(); got != "jdoe" {
		t.Fatalf("FullName fallback = %q", got)
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleParent.Valid() {
		t.Error("parent should be valid")
	}
	if Role("ADMIN").Valid() {
		t.Error("admin is not part of the role set")
	}
	if Role("TEACHER").Valid() != true {
		t.Error("validity check must be case insensitive")
	}
}
