package models

import "time"

// Notice defines a published announcement
type Notice struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Priority      string     `json:"priority"` // low, medium, high
	SchoolID      string     `json:"school"`
	TargetClasses []string   `json:"target_classes,omitempty"`
	AttachmentURL string     `json:"attachment,omitempty"`
	CreatedByID   string     `json:"created_by"`
	IsActive      bool       `json:"is_active"`
	PublishDate   time.Time  `json:"publish_date"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	IsRead        bool       `json:"is_read,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// NoticeCategory defines a notice grouping
type NoticeCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// BehaviorLog defines one recorded behavior incident
type BehaviorLog struct {
	ID             string     `json:"id"`
	StudentID      string     `json:"student"`
	BehaviorType   string     `json:"behavior_type"` // positive, negative, neutral
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	DateRecorded   string     `json:"date_recorded"`
	ReportedByID   string     `json:"reported_by"`
	ActionTaken    string     `json:"action_taken,omitempty"`
	ParentNotified bool       `json:"parent_notified"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// BehaviorCategory defines a behavior grouping
type BehaviorCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// BehaviorSummary defines the per-student behavior aggregate.
type BehaviorSummary struct {
	StudentID     string `json:"student_id"`
	PositiveCount int    `json:"positive_count"`
	NegativeCount int    `json:"negative_count"`
	NeutralCount  int    `json:"neutral_count"`
	TotalLogs     int    `json:"total_logs"`
}
