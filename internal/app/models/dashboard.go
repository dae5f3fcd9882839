package models

// DashboardStats defines the role-scoped aggregate shown on every role's
// landing page. The backend fills the counters appropriate to the caller's
// role and leaves the rest at zero.
type DashboardStats struct {
	TotalStudents        int     `json:"total_students"`
	TotalTeachers        int     `json:"total_teachers"`
	TotalClasses         int     `json:"total_classes"`
	TotalNotices         int     `json:"total_notices"`
	PendingAssignments   int     `json:"pending_assignments"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// AuditLog defines one recorded administrative action
type AuditLog struct {
	ID        string `json:"id"`
	UserID    string `json:"user"`
	Action    string `json:"action"`
	Details   string `json:"details,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
