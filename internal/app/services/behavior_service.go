package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/okul/schoolhub/internal/app/models"
	"github.com/okul/schoolhub/internal/app/models/dto"
	"github.com/okul/schoolhub/internal/client"
)

// BehaviorService handles the /behavior/* endpoint group.
type BehaviorService struct {
	client *client.Client
}

// NewBehaviorService creates a new BehaviorService
func NewBehaviorService(c *client.Client) *BehaviorService {
	return &BehaviorService{client: c}
}

// ListLogs lists behavior log entries, optionally filtered.
func (s *BehaviorService) ListLogs(ctx context.Context, params dto.ListParams) ([]models.BehaviorLog, error) {
	var out []models.BehaviorLog
	if err := s.client.Get(ctx, "/behavior/logs/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLog records a behavior log entry.
func (s *BehaviorService) CreateLog(ctx context.Context, payload map[string]interface{}) (*models.BehaviorLog, error) {
	var out models.BehaviorLog
	if err := s.client.Post(ctx, "/behavior/logs/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves one behavior log entry.
func (s *BehaviorService) Get(ctx context.Context, id string) (*models.BehaviorLog, error) {
	var out models.BehaviorLog
	if err := s.client.Get(ctx, fmt.Sprintf("/behavior/logs/%s/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update patches one behavior log entry.
func (s *BehaviorService) Update(ctx context.Context, id string, patch map[string]interface{}) (*models.BehaviorLog, error) {
	var out models.BehaviorLog
	if err := s.client.Patch(ctx, fmt.Sprintf("/behavior/logs/%s/", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes one behavior log entry.
func (s *BehaviorService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, fmt.Sprintf("/behavior/logs/%s/", id))
}

// StudentSummary aggregates a student's behavior records.
func (s *BehaviorService) StudentSummary(ctx context.Context, studentID string) (*models.BehaviorSummary, error) {
	q := url.Values{}
	q.Set("student_id", studentID)

	var out models.BehaviorSummary
	if err := s.client.Get(ctx, "/behavior/logs/student_summary/", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCategories lists the behavior categories.
func (s *BehaviorService) ListCategories(ctx context.Context) ([]models.BehaviorCategory, error) {
	var out []models.BehaviorCategory
	if err := s.client.Get(ctx, "/behavior/categories/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
