package services

import (
	"context"
	"fmt"

	"github.com/okul/schoolhub/internal/app/models"
	"github.com/okul/schoolhub/internal/app/models/dto"
	"github.com/okul/schoolhub/internal/client"
)

// CoreService handles the /core/* endpoint group: users, schools, classes,
// sections, subjects and the role-scoped dashboard.
type CoreService struct {
	client *client.Client
}

// NewCoreService creates a new CoreService
func NewCoreService(c *client.Client) *CoreService {
	return &CoreService{client: c}
}

// ListUsers lists users, optionally filtered by role.
func (s *CoreService) ListUsers(ctx context.Context, params dto.ListParams) ([]models.User, error) {
	var out []models.User
	if err := s.client.Get(ctx, "/core/users/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser creates a user account.
func (s *CoreService) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	var out models.User
	if err := s.client.Post(ctx, "/core/users/", user, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser retrieves one user by id.
func (s *CoreService) GetUser(ctx context.Context, id string) (*models.User, error) {
	var out models.User
	if err := s.client.Get(ctx, fmt.Sprintf("/core/users/%s/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser patches one user.
func (s *CoreService) UpdateUser(ctx context.Context, id string, patch map[string]interface{}) (*models.User, error) {
	var out models.User
	if err := s.client.Patch(ctx, fmt.Sprintf("/core/users/%s/", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes one user.
func (s *CoreService) DeleteUser(ctx context.Context, id string) error {
	return s.client.Delete(ctx, fmt.Sprintf("/core/users/%s/", id))
}

// ListSchools lists schools.
func (s *CoreService) ListSchools(ctx context.Context) ([]models.School, error) {
	var out []models.School
	if err := s.client.Get(ctx, "/core/schools/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSchool creates a school.
func (s *CoreService) CreateSchool(ctx context.Context, school models.School) (*models.School, error) {
	var out models.School
	if err := s.client.Post(ctx, "/core/schools/", school, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSchool retrieves one school.
func (s *CoreService) GetSchool(ctx context.Context, id string) (*models.School, error) {
	var out models.School
	if err := s.client.Get(ctx, fmt.Sprintf("/core/schools/%s/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSchool patches one school.
func (s *CoreService) UpdateSchool(ctx context.Context, id string, patch map[string]interface{}) (*models.School, error) {
	var out models.School
	if err := s.client.Patch(ctx, fmt.Sprintf("/core/schools/%s/", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListClasses lists classes.
func (s *CoreService) ListClasses(ctx context.Context) ([]models.Class, error) {
	var out []models.Class
	if err := s.client.Get(ctx, "/core/classes/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateClass creates a class.
func (s *CoreService) CreateClass(ctx context.Context, class models.Class) (*models.Class, error) {
	var out models.Class
	if err := s.client.Post(ctx, "/core/classes/", class, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetClass retrieves one class.
func (s *CoreService) GetClass(ctx context.Context, id string) (*models.Class, error) {
	var out models.Class
	if err := s.client.Get(ctx, fmt.Sprintf("/core/classes/%s/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateClass patches one class.
func (s *CoreService) UpdateClass(ctx context.Context, id string, patch map[string]interface{}) (*models.Class, error) {
	var out models.Class
	if err := s.client.Patch(ctx, fmt.Sprintf("/core/classes/%s/", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClassSections lists the sections belonging to one class.
func (s *CoreService) ClassSections(ctx context.Context, classID string) ([]models.Section, error) {
	var out []models.Section
	if err := s.client.Get(ctx, fmt.Sprintf("/core/classes/%s/sections/", classID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSections lists sections.
func (s *CoreService) ListSections(ctx context.Context) ([]models.Section, error) {
	var out []models.Section
	if err := s.client.Get(ctx, "/core/sections/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSection creates a section.
func (s *CoreService) CreateSection(ctx context.Context, section models.Section) (*models.Section, error) {
	var out models.Section
	if err := s.client.Post(ctx, "/core/sections/", section, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SectionStudents lists the students enrolled in one section.
func (s *CoreService) SectionStudents(ctx context.Context, sectionID string) ([]models.StudentProfile, error) {
	var out []models.StudentProfile
	if err := s.client.Get(ctx, fmt.Sprintf("/core/sections/%s/students/", sectionID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSubjects lists subjects.
func (s *CoreService) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	var out []models.Subject
	if err := s.client.Get(ctx, "/core/subjects/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSubject creates a subject.
func (s *CoreService) CreateSubject(ctx context.Context, subject models.Subject) (*models.Subject, error) {
	var out models.Subject
	if err := s.client.Post(ctx, "/core/subjects/", subject, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DashboardStats fetches the role-scoped dashboard counters for the
// current user.
func (s *CoreService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := s.client.Get(ctx, "/core/dashboard/stats/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAuditLogs lists administrative audit entries. Audit logs grow without
// bound, so this endpoint paginates where the other lists return arrays.
func (s *CoreService) ListAuditLogs(ctx context.Context, params dto.ListParams) (*dto.Page[models.AuditLog], error) {
	var out dto.Page[models.AuditLog]
	if err := s.client.Get(ctx, "/core/audit-logs/", params.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
