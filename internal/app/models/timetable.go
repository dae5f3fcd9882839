package models

// TimeSlot defines a recurring period boundary within the school day
type TimeSlot struct {
	ID        string `json:"id"`
	SchoolID  string `json:"school"`
	StartTime string `json:"start_time"` // HH:MM:SS
	EndTime   string `json:"end_time"`
	IsBreak   bool   `json:"is_break"`
	BreakName string `json:"break_name,omitempty"`
	Order     int    `json:"order"`
}

// TimetableEntry defines one scheduled lesson cell
type TimetableEntry struct {
	ID         string `json:"id"`
	SchoolID   string `json:"school"`
	ClassID    string `json:"class_assigned"`
	SubjectID  string `json:"subject,omitempty"`
	TeacherID  string `json:"teacher,omitempty"`
	DayOfWeek  string `json:"day_of_week"` // monday .. sunday
	TimeSlotID string `json:"time_slot"`
	RoomNumber string `json:"room_number,omitempty"`
	IsActive   bool   `json:"is_active"`
}

// WeeklySchedule defines the expanded per-day view of one timetable.
type WeeklySchedule struct {
	TimetableID string                      `json:"timetable_id"`
	ClassID     string                      `json:"class_id"`
	Days        map[string][]TimetableEntry `json:"days"` // keyed by day_of_week
}
