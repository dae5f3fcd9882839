package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/okul/schoolhub/internal/app/models"
	"github.com/okul/schoolhub/internal/app/models/dto"
	"github.com/okul/schoolhub/internal/client"
)

// AcademicService handles the /academic/* endpoint group: exams, marks,
// academic years and class-subject assignments.
type AcademicService struct {
	client *client.Client
}

// NewAcademicService creates a new AcademicService
func NewAcademicService(c *client.Client) *AcademicService {
	return &AcademicService{client: c}
}

// ListExamTypes lists exam categories.
func (s *AcademicService) ListExamTypes(ctx context.Context) ([]models.ExamType, error) {
	var out []models.ExamType
	if err := s.client.Get(ctx, "/academic/exam-types/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateExamType creates an exam category.
func (s *AcademicService) CreateExamType(ctx context.Context, et models.ExamType) (*models.ExamType, error) {
	var out models.ExamType
	if err := s.client.Post(ctx, "/academic/exam-types/", et, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListExams lists exams, optionally filtered.
func (s *AcademicService) ListExams(ctx context.Context, params dto.ListParams) ([]models.Exam, error) {
	var out []models.Exam
	if err := s.client.Get(ctx, "/academic/exams/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateExam schedules an exam.
func (s *AcademicService) CreateExam(ctx context.Context, exam models.Exam) (*models.Exam, error) {
	var out models.Exam
	if err := s.client.Post(ctx, "/academic/exams/", exam, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetExam retrieves one exam.
func (s *AcademicService) GetExam(ctx context.Context, id string) (*models.Exam, error) {
	var out models.Exam
	if err := s.client.Get(ctx, fmt.Sprintf("/academic/exams/%s/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateExam patches one exam.
func (s *AcademicService) UpdateExam(ctx context.Context, id string, patch map[string]interface{}) (*models.Exam, error) {
	var out models.Exam
	if err := s.client.Patch(ctx, fmt.Sprintf("/academic/exams/%s/", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMarks lists marks, optionally filtered.
func (s *AcademicService) ListMarks(ctx context.Context, params dto.ListParams) ([]models.Mark, error) {
	var out []models.Mark
	if err := s.client.Get(ctx, "/academic/marks/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMark records one student's result.
func (s *AcademicService) CreateMark(ctx context.Context, mark models.Mark) (*models.Mark, error) {
	var out models.Mark
	if err := s.client.Post(ctx, "/academic/marks/", mark, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StudentPerformance fetches the aggregated mark report for one student.
func (s *AcademicService) StudentPerformance(ctx context.Context, studentID string) (*models.StudentPerformance, error) {
	query := url.Values{"student_id": {studentID}}
	var out models.StudentPerformance
	if err := s.client.Get(ctx, "/academic/marks/student_performance/", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAcademicYears lists academic years.
func (s *AcademicService) ListAcademicYears(ctx context.Context) ([]models.AcademicYear, error) {
	var out []models.AcademicYear
	if err := s.client.Get(ctx, "/academic/academic-years/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAcademicYear creates an academic year.
func (s *AcademicService) CreateAcademicYear(ctx context.Context, year models.AcademicYear) (*models.AcademicYear, error) {
	var out models.AcademicYear
	if err := s.client.Post(ctx, "/academic/academic-years/", year, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListClassSessions lists scheduled class sittings, optionally filtered by
// class or date range.
func (s *AcademicService) ListClassSessions(ctx context.Context, params dto.ListParams) ([]models.ClassSession, error) {
	var out []models.ClassSession
	if err := s.client.Get(ctx, "/academic/class-sessions/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateClassSession schedules a class sitting.
func (s *AcademicService) CreateClassSession(ctx context.Context, session models.ClassSession) (*models.ClassSession, error) {
	var out models.ClassSession
	if err := s.client.Post(ctx, "/academic/class-sessions/", session, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListClassSubjects lists subject-to-class assignments.
func (s *AcademicService) ListClassSubjects(ctx context.Context) ([]models.ClassSubject, error) {
	var out []models.ClassSubject
	if err := s.client.Get(ctx, "/academic/class-subjects/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateClassSubject assigns a subject (and teacher) to a class.
func (s *AcademicService) CreateClassSubject(ctx context.Context, cs models.ClassSubject) (*models.ClassSubject, error) {
	var out models.ClassSubject
	if err := s.client.Post(ctx, "/academic/class-subjects/", cs, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListGradingSchemes lists grading schemes.
func (s *AcademicService) ListGradingSchemes(ctx context.Context) ([]models.GradingScheme, error) {
	var out []models.GradingScheme
	if err := s.client.Get(ctx, "/academic/grading-schemes/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
