package services

import (
	"context"
	"fmt"

	"github.com/okul/schoolhub/internal/app/models"
	"github.com/okul/schoolhub/internal/app/models/dto"
	"github.com/okul/schoolhub/internal/client"
)

// CreateAssignmentRequest carries the multipart fields for creating an
// assignment; Attachment may be nil for an assignment without a file.
type CreateAssignmentRequest struct {
	Title        string
	Description  string
	ClassID      string
	SubjectID    string
	AssignedDate string
	DueDate      string
	MaxMarks     string
	Status       string
	Instructions string
	Attachment   *client.File
}

// SubmitRequest carries the multipart fields for a student submission.
type SubmitRequest struct {
	AssignmentID   string
	SubmissionText string
	Attachment     *client.File
}

// GradeRequest grades one submission.
type GradeRequest struct {
	MarksObtained   int    `json:"marks_obtained"`
	TeacherFeedback string `json:"teacher_feedback,omitempty"`
}

// AssignmentService handles the /assignments/* endpoint group. Creation and
// submission build multipart bodies because both may carry a file.
type AssignmentService struct {
	client *client.Client
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(c *client.Client) *AssignmentService {
	return &AssignmentService{client: c}
}

// List lists assignments, optionally filtered.
func (s *AssignmentService) List(ctx context.Context, params dto.ListParams) ([]models.Assignment, error) {
	var out []models.Assignment
	if err := s.client.Get(ctx, "/assignments/assignments/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create publishes an assignment, attaching a file when provided.
func (s *AssignmentService) Create(ctx context.Context, req CreateAssignmentRequest) (*models.Assignment, error) {
	fields := map[string]string{
		"title":          req.Title,
		"description":    req.Description,
		"class_assigned": req.ClassID,
		"subject":        req.SubjectID,
		"assigned_date":  req.AssignedDate,
		"due_date":       req.DueDate,
		"max_marks":      req.MaxMarks,
		"status":         req.Status,
		"instructions":   req.Instructions,
	}
	var files []client.File
	if req.Attachment != nil {
		files = append(files, *req.Attachment)
	}

	var out models.Assignment
	if err := s.client.PostMultipart(ctx, "/assignments/assignments/", fields, files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get retrieves one assignment.
func (s *AssignmentService) Get(ctx context.Context, id string) (*models.Assignment, error) {
	var out models.Assignment
	if err := s.client.Get(ctx, fmt.Sprintf("/assignments/assignments/%s/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update patches one assignment.
func (s *AssignmentService) Update(ctx context.Context, id string, patch map[string]interface{}) (*models.Assignment, error) {
	var out models.Assignment
	if err := s.client.Patch(ctx, fmt.Sprintf("/assignments/assignments/%s/", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadResource attaches an extra file to an existing assignment.
func (s *AssignmentService) UploadResource(ctx context.Context, id string, file client.File) error {
	if file.Field == "" {
		file.Field = "file"
	}
	path := fmt.Sprintf("/assignments/assignments/%s/upload_resource/", id)
	return s.client.PostMultipart(ctx, path, nil, []client.File{file}, nil)
}

// Submissions lists the submissions for one assignment.
func (s *AssignmentService) Submissions(ctx context.Context, id string) ([]models.Submission, error) {
	var out []models.Submission
	if err := s.client.Get(ctx, fmt.Sprintf("/assignments/assignments/%s/submissions/", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Statistics fetches the submission aggregate for one assignment.
func (s *AssignmentService) Statistics(ctx context.Context, id string) (*models.AssignmentStatistics, error) {
	var out models.AssignmentStatistics
	if err := s.client.Get(ctx, fmt.Sprintf("/assignments/assignments/%s/statistics/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSubmissions lists submissions across assignments, optionally filtered.
func (s *AssignmentService) ListSubmissions(ctx context.Context, params dto.ListParams) ([]models.Submission, error) {
	var out []models.Submission
	if err := s.client.Get(ctx, "/assignments/submissions/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Submit files a student submission, attaching a file when provided.
func (s *AssignmentService) Submit(ctx context.Context, req SubmitRequest) (*models.Submission, error) {
	fields := map[string]string{
		"assignment":      req.AssignmentID,
		"submission_text": req.SubmissionText,
	}
	var files []client.File
	if req.Attachment != nil {
		files = append(files, *req.Attachment)
	}

	var out models.Submission
	if err := s.client.PostMultipart(ctx, "/assignments/submissions/", fields, files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Grade records marks and feedback for one submission.
func (s *AssignmentService) Grade(ctx context.Context, submissionID string, req GradeRequest) (*models.Submission, error) {
	var out models.Submission
	if err := s.client.Post(ctx, fmt.Sprintf("/assignments/submissions/%s/grade/", submissionID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
