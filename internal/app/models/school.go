package models

// School defines the school/institution record
type School struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
	Principal *User  `json:"principal,omitempty"`
}

// Class defines a class (grade level) within a school
type Class struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SchoolID   string `json:"school"`
	GradeLevel int    `json:"grade_level,omitempty"`
	IsActive   bool   `json:"is_active,omitempty"`
}

// Section defines a section (A, B, C) within a class
type Section struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	ClassID        string   `json:"class_ref"`
	ClassTeacherID string   `json:"class_teacher,omitempty"`
	StudentIDs     []string `json:"students,omitempty"`
	MaxCapacity    int      `json:"max_capacity,omitempty"`
}

// Subject defines a taught subject
type Subject struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}
