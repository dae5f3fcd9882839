package services

import (
	"context"
	"fmt"

	"github.com/okul/schoolhub/internal/app/models"
	"github.com/okul/schoolhub/internal/app/models/dto"
	"github.com/okul/schoolhub/internal/client"
)

// CreateResourceRequest carries the multipart fields for uploading a study
// resource. Exactly one of File or ExternalLink should be set.
type CreateResourceRequest struct {
	Title        string
	Description  string
	ResourceType string
	CategoryID   string
	ClassID      string
	SubjectID    string
	ExternalLink string
	IsPublic     bool
	File         *client.File
}

// ResourceService handles the /resources/* endpoint group, including the
// binary download of a stored file.
type ResourceService struct {
	client *client.Client
}

// NewResourceService creates a new ResourceService
func NewResourceService(c *client.Client) *ResourceService {
	return &ResourceService{client: c}
}

// List lists study resources, optionally filtered.
func (s *ResourceService) List(ctx context.Context, params dto.ListParams) ([]models.Resource, error) {
	var out []models.Resource
	if err := s.client.Get(ctx, "/resources/resources/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create uploads a resource as multipart form data.
func (s *ResourceService) Create(ctx context.Context, req CreateResourceRequest) (*models.Resource, error) {
	fields := map[string]string{
		"title":          req.Title,
		"description":    req.Description,
		"resource_type":  req.ResourceType,
		"category":       req.CategoryID,
		"class_assigned": req.ClassID,
		"subject":        req.SubjectID,
		"external_link":  req.ExternalLink,
	}
	if req.IsPublic {
		fields["is_public"] = "true"
	}
	var files []client.File
	if req.File != nil {
		files = append(files, *req.File)
	}

	var out models.Resource
	if err := s.client.PostMultipart(ctx, "/resources/resources/", fields, files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves one resource.
func (s *ResourceService) Get(ctx context.Context, id string) (*models.Resource, error) {
	var out models.Resource
	if err := s.client.Get(ctx, fmt.Sprintf("/resources/resources/%s/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update patches one resource.
func (s *ResourceService) Update(ctx context.Context, id string, patch map[string]interface{}) (*models.Resource, error) {
	var out models.Resource
	if err := s.client.Patch(ctx, fmt.Sprintf("/resources/resources/%s/", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes one resource.
func (s *ResourceService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, fmt.Sprintf("/resources/resources/%s/", id))
}

// Download fetches the stored file bytes and their content type.
func (s *ResourceService) Download(ctx context.Context, id string) ([]byte, string, error) {
	return s.client.Download(ctx, fmt.Sprintf("/resources/resources/%s/download/", id))
}

// ListCategories lists the resource categories.
func (s *ResourceService) ListCategories(ctx context.Context) ([]models.ResourceCategory, error) {
	var out []models.ResourceCategory
	if err := s.client.Get(ctx, "/resources/categories/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCategory creates a resource category.
func (s *ResourceService) CreateCategory(ctx context.Context, payload map[string]interface{}) (*models.ResourceCategory, error) {
	var out models.ResourceCategory
	if err := s.client.Post(ctx, "/resources/categories/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
