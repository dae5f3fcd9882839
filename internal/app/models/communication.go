package models

import "time"

// Message defines a direct message between users
type Message struct {
	ID            string     `json:"id"`
	SenderID      string     `json:"sender"`
	RecipientIDs  []string   `json:"recipients"`
	Subject       string     `json:"subject"`
	Content       string     `json:"content"`
	MessageType   string     `json:"message_type,omitempty"`
	Priority      string     `json:"priority,omitempty"`
	AttachmentURL string     `json:"attachment,omitempty"`
	IsUrgent      bool       `json:"is_urgent"`
	SentAt        *time.Time `json:"sent_at,omitempty"`
	ReadCount     int        `json:"read_count,omitempty"`
}

// ChatRoom defines a persistent group conversation
type ChatRoom struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	RoomType    string     `json:"room_type"` // class, staff, direct
	MemberIDs   []string   `json:"members"`
	CreatedByID string     `json:"created_by"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// ChatMessage defines one message within a chat room
type ChatMessage struct {
	ID            string     `json:"id"`
	RoomID        string     `json:"room"`
	SenderID      string     `json:"sender"`
	Content       string     `json:"content"`
	AttachmentURL string     `json:"attachment,omitempty"`
	ReplyToID     string     `json:"reply_to,omitempty"`
	SentAt        *time.Time `json:"sent_at,omitempty"`
}

// Meeting defines a scheduled parent-teacher meeting
type Meeting struct {
	ID              string    `json:"id"`
	TeacherID       string    `json:"teacher"`
	ParentID        string    `json:"parent"`
	StudentID       string    `json:"student"`
	Subject         string    `json:"subject"`
	Description     string    `json:"description,omitempty"`
	ScheduledDate   time.Time `json:"scheduled_date"`
	DurationMinutes int       `json:"duration_minutes"`
	MeetingLink     string    `json:"meeting_link,omitempty"`
	MeetingRoom     string    `json:"meeting_room,omitempty"`
	Status          string    `json:"status"` // requested, confirmed, completed, cancelled
	Notes           string    `json:"notes,omitempty"`
}
