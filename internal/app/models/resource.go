package models

import "time"

// Resource defines an uploaded study material or external link
type Resource struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	ResourceType string     `json:"resource_type"` // document, video, link, other
	FileURL      string     `json:"file,omitempty"`
	ExternalLink string     `json:"external_link,omitempty"`
	ClassID      string     `json:"class_assigned,omitempty"`
	SubjectID    string     `json:"subject"`
	UploadedByID string     `json:"uploaded_by"`
	IsPublic     bool       `json:"is_public"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// ResourceCategory defines a resource grouping
type ResourceCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
