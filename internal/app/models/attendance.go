package models

import "time"

// AttendanceStatus is the per-day marking for a student.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// AttendanceRecord defines one student's marking for one date
type AttendanceRecord struct {
	ID         string           `json:"id"`
	StudentID  string           `json:"student"`
	ClassID    string           `json:"class_session"`
	SubjectID  string           `json:"subject,omitempty"`
	Date       string           `json:"date"` // YYYY-MM-DD
	Status     AttendanceStatus `json:"status"`
	MarkedByID string           `json:"marked_by"`
	Remarks    string           `json:"remarks,omitempty"`
	CreatedAt  *time.Time       `json:"created_at,omitempty"`
}

// AttendanceStatistics defines the aggregate returned by the statistics
// endpoint for one student.
type AttendanceStatistics struct {
	StudentID            string  `json:"student_id"`
	TotalDays            int     `json:"total_days"`
	PresentDays          int     `json:"present_days"`
	AbsentDays           int     `json:"absent_days"`
	LateDays             int     `json:"late_days"`
	ExcusedDays          int     `json:"excused_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// ClassAttendanceReport defines the per-class aggregate report row.
type ClassAttendanceReport struct {
	ClassID              string  `json:"class_id"`
	ClassName            string  `json:"class_name"`
	Date                 string  `json:"date"`
	TotalStudents        int     `json:"total_students"`
	PresentCount         int     `json:"present_count"`
	AbsentCount          int     `json:"absent_count"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}
