package services

import (
	"context"
	"fmt"

	"github.com/okul/schoolhub/internal/app/models"
	"github.com/okul/schoolhub/internal/app/models/dto"
	"github.com/okul/schoolhub/internal/client"
)

// NoticeService handles the /notices/* endpoint group.
type NoticeService struct {
	client *client.Client
}

// NewNoticeService creates a new NoticeService
func NewNoticeService(c *client.Client) *NoticeService {
	return &NoticeService{client: c}
}

// List lists notices visible to the caller, optionally filtered.
func (s *NoticeService) List(ctx context.Context, params dto.ListParams) ([]models.Notice, error) {
	var out []models.Notice
	if err := s.client.Get(ctx, "/notices/notices/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create publishes a notice.
func (s *NoticeService) Create(ctx context.Context, payload map[string]interface{}) (*models.Notice, error) {
	var out models.Notice
	if err := s.client.Post(ctx, "/notices/notices/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves one notice.
func (s *NoticeService) Get(ctx context.Context, id string) (*models.Notice, error) {
	var out models.Notice
	if err := s.client.Get(ctx, fmt.Sprintf("/notices/notices/%s/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update patches one notice.
func (s *NoticeService) Update(ctx context.Context, id string, patch map[string]interface{}) (*models.Notice, error) {
	var out models.Notice
	if err := s.client.Patch(ctx, fmt.Sprintf("/notices/notices/%s/", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes one notice.
func (s *NoticeService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, fmt.Sprintf("/notices/notices/%s/", id))
}

// UploadAttachment attaches a file to an existing notice.
func (s *NoticeService) UploadAttachment(ctx context.Context, id string, file client.File) error {
	if file.Field == "" {
		file.Field = "attachment"
	}
	path := fmt.Sprintf("/notices/notices/%s/upload_attachment/", id)
	return s.client.PostMultipart(ctx, path, nil, []client.File{file}, nil)
}

// MarkRead records that the caller has read the notice.
func (s *NoticeService) MarkRead(ctx context.Context, id string) error {
	return s.client.Post(ctx, fmt.Sprintf("/notices/notices/%s/mark_read/", id), nil, nil)
}

// ListCategories lists the notice categories.
func (s *NoticeService) ListCategories(ctx context.Context) ([]models.NoticeCategory, error) {
	var out []models.NoticeCategory
	if err := s.client.Get(ctx, "/notices/categories/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
