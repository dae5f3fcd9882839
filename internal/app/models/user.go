package models

import (
	"encoding/json"
	"strings"
	"time"
)

// User defines the authenticated account record
type User struct {
	ID        string          `json:"id" example:"6f1f9a0e-8f50-4f5e-9d3a-1b2c3d4e5f60"` // UUID issued by the backend
	Username  string          `json:"username" example:"jdoe"`
	Email     string          `json:"email" example:"jdoe@school.edu"`
	FirstName string          `json:"first_name" example:"John"`
	LastName  string          `json:"last_name" example:"Doe"`
	Role      Role            `json:"role" example:"teacher"`
	IsActive  bool            `json:"is_active" example:"true"`
	Phone     string          `json:"phone,omitempty"`
	Address   string          `json:"address,omitempty"`
	Bio       string          `json:"bio,omitempty"`
	Profile   json.RawMessage `json:"profile,omitempty"` // Role-specific profile blob, shape varies per role
	CreatedAt *time.Time      `json:"created_at,omitempty"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

// UnmarshalJSON decodes a user and canonicalizes the role casing in one
// step, so no other layer ever sees a mixed-case role.
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if role, err := NormalizeRole(string(raw.Role)); err == nil {
		raw.Role = role
	} else {
		raw.Role = Role(strings.ToLower(string(raw.Role)))
	}
	*u = User(raw)
	return nil
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// StudentProfile defines the student-side profile record
type StudentProfile struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user"`
	StudentID  string   `json:"student_id"`
	FullName   string   `json:"full_name"`
	School     string   `json:"school"`
	RollNumber string   `json:"roll_number,omitempty"`
	Sections   []string `json:"sections,omitempty"`
}

// TeacherProfile defines the teacher-side profile record
type TeacherProfile struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user"`
	EmployeeID string   `json:"employee_id"`
	FullName   string   `json:"full_name"`
	School     string   `json:"school"`
	Subjects   []string `json:"subjects,omitempty"`
}

// ParentProfile defines the parent-side profile record
type ParentProfile struct {
	ID       string   `json:"id"`
	UserID   string   `json:"user"`
	FullName string   `json:"full_name"`
	School   string   `json:"school"`
	Children []string `json:"children,omitempty"` // Student ids
}
