package service

import (
	"context"

	"github.com/s2s-school/s2s-api/internal/models"
	appErrors "github.com/s2s-school/s2s-api/pkg/errors"
)

type courseStore interface {
	Courses() []models.Course
	Course(id string) (*models.Course, bool)
	CoursesByCategory(category string) []models.Course
	CoursesBySubject(subject string) []models.Course
}

// CourseService serves read-only catalog course lookups.
type CourseService struct {
	store courseStore
}

// NewCourseService creates a new course service.
func NewCourseService(st courseStore) *CourseService {
	return &CourseService{store: st}
}

// List returns all catalog courses in load order.
func (s *CourseService) List(_ context.Context) ([]models.Course, error) {
	return s.store.Courses(), nil
}

// Get returns a course by identifier.
func (s *CourseService) Get(_ context.Context, id string) (*models.Course, error) {
	course, ok := s.store.Course(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return course, nil
}

// ByCategory returns courses with an exact category match.
func (s *CourseService) ByCategory(_ context.Context, category string) ([]models.Course, error) {
	return s.store.CoursesByCategory(category), nil
}

// BySubject returns courses with an exact subject match.
func (s *CourseService) BySubject(_ context.Context, subject string) ([]models.Course, error) {
	return s.store.CoursesBySubject(subject), nil
}
