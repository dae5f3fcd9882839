package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/okul/schoolhub/internal/app/models"
	"github.com/okul/schoolhub/internal/app/models/dto"
	"github.com/okul/schoolhub/internal/client"
)

// TimetableService handles the /timetable/* endpoint group.
type TimetableService struct {
	client *client.Client
}

// NewTimetableService creates a new TimetableService
func NewTimetableService(c *client.Client) *TimetableService {
	return &TimetableService{client: c}
}

// ListTimeSlots lists the school's period time slots.
func (s *TimetableService) ListTimeSlots(ctx context.Context) ([]models.TimeSlot, error) {
	var out []models.TimeSlot
	if err := s.client.Get(ctx, "/timetable/time-slots/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTimeSlot creates a period time slot.
func (s *TimetableService) CreateTimeSlot(ctx context.Context, payload map[string]interface{}) (*models.TimeSlot, error) {
	var out models.TimeSlot
	if err := s.client.Post(ctx, "/timetable/time-slots/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEntries lists timetable entries, optionally filtered by class or
// teacher.
func (s *TimetableService) ListEntries(ctx context.Context, params dto.ListParams) ([]models.TimetableEntry, error) {
	var out []models.TimetableEntry
	if err := s.client.Get(ctx, "/timetable/timetables/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEntry creates a timetable entry.
func (s *TimetableService) CreateEntry(ctx context.Context, payload map[string]interface{}) (*models.TimetableEntry, error) {
	var out models.TimetableEntry
	if err := s.client.Post(ctx, "/timetable/timetables/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEntry patches one timetable entry.
func (s *TimetableService) UpdateEntry(ctx context.Context, id string, patch map[string]interface{}) (*models.TimetableEntry, error) {
	var out models.TimetableEntry
	if err := s.client.Patch(ctx, fmt.Sprintf("/timetable/timetables/%s/", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEntry removes one timetable entry.
func (s *TimetableService) DeleteEntry(ctx context.Context, id string) error {
	return s.client.Delete(ctx, fmt.Sprintf("/timetable/timetables/%s/", id))
}

// WeeklySchedule fetches entries grouped by weekday for a class or teacher.
func (s *TimetableService) WeeklySchedule(ctx context.Context, classID, teacherID string) (*models.WeeklySchedule, error) {
	q := url.Values{}
	if classID != "" {
		q.Set("class_id", classID)
	}
	if teacherID != "" {
		q.Set("teacher_id", teacherID)
	}

	var out models.WeeklySchedule
	if err := s.client.Get(ctx, "/timetable/timetables/weekly_schedule/", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
