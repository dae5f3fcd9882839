package services

import (
	"context"
	"net/url"

	"github.com/okul/schoolhub/internal/app/models"
	"github.com/okul/schoolhub/internal/app/models/dto"
	"github.com/okul/schoolhub/internal/client"
)

// BulkMarkEntry is one student's mark inside a bulk attendance call.
type BulkMarkEntry struct {
	StudentID string                  `json:"student_id"`
	Status    models.AttendanceStatus `json:"status"`
	Remarks   string                  `json:"remarks,omitempty"`
}

// BulkMarkRequest marks a whole section's attendance in one call.
type BulkMarkRequest struct {
	ClassID string          `json:"class_id"`
	Date    string          `json:"date"`
	Records []BulkMarkEntry `json:"records"`
}

// AttendanceService handles the /attendance/* endpoint group.
type AttendanceService struct {
	client *client.Client
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(c *client.Client) *AttendanceService {
	return &AttendanceService{client: c}
}

// ListRecords lists attendance records, optionally filtered.
func (s *AttendanceService) ListRecords(ctx context.Context, params dto.ListParams) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	if err := s.client.Get(ctx, "/attendance/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRecord marks one student for one date.
func (s *AttendanceService) CreateRecord(ctx context.Context, record models.AttendanceRecord) (*models.AttendanceRecord, error) {
	var out models.AttendanceRecord
	if err := s.client.Post(ctx, "/attendance/", record, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BulkMark marks a whole class in one call.
func (s *AttendanceService) BulkMark(ctx context.Context, req BulkMarkRequest) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	if err := s.client.Post(ctx, "/attendance/bulk_mark/", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Statistics fetches one student's attendance aggregate, optionally scoped
// by the params' date range.
func (s *AttendanceService) Statistics(ctx context.Context, studentID string, params dto.ListParams) (*models.AttendanceStatistics, error) {
	query := params.Values()
	query.Set("student_id", studentID)

	var out models.AttendanceStatistics
	if err := s.client.Get(ctx, "/attendance/statistics/", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClassReport fetches the per-class attendance report.
func (s *AttendanceService) ClassReport(ctx context.Context, params dto.ListParams) ([]models.ClassAttendanceReport, error) {
	var out []models.ClassAttendanceReport
	if err := s.client.Get(ctx, "/attendance/class_report/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListStatuses lists the attendance statuses the backend accepts.
func (s *AttendanceService) ListStatuses(ctx context.Context) ([]string, error) {
	var out []string
	if err := s.client.Get(ctx, "/attendance/statuses/", url.Values{}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
