package models

import "time"

// Assignment defines a piece of classwork set by a teacher
type Assignment struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	ClassID       string     `json:"class_assigned"`
	SubjectID     string     `json:"subject"`
	TeacherID     string     `json:"teacher"`
	AssignedDate  time.Time  `json:"assigned_date"`
	DueDate       time.Time  `json:"due_date"`
	MaxMarks      int        `json:"max_marks"`
	Status        string     `json:"status"` // draft, published, closed
	Instructions  string     `json:"instructions,omitempty"`
	AttachmentURL string     `json:"attachment,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// Submission defines a student's answer to an assignment
type Submission struct {
	ID              string     `json:"id"`
	AssignmentID    string     `json:"assignment"`
	StudentID       string     `json:"student"`
	SubmissionText  string     `json:"submission_text,omitempty"`
	AttachmentURL   string     `json:"attachment,omitempty"`
	SubmittedAt     *time.Time `json:"submitted_at,omitempty"`
	Status          string     `json:"status"` // submitted, graded, late
	MarksObtained   *int       `json:"marks_obtained,omitempty"`
	TeacherFeedback string     `json:"teacher_feedback,omitempty"`
	GradedAt        *time.Time `json:"graded_at,omitempty"`
	GradedByID      string     `json:"graded_by,omitempty"`
}

// AssignmentStatistics defines the aggregate returned per assignment.
type AssignmentStatistics struct {
	AssignmentID    string  `json:"assignment_id"`
	TotalStudents   int     `json:"total_students"`
	SubmittedCount  int     `json:"submitted_count"`
	GradedCount     int     `json:"graded_count"`
	PendingCount    int     `json:"pending_count"`
	AverageMarks    float64 `json:"average_marks"`
	SubmissionRate  float64 `json:"submission_rate"`
}
