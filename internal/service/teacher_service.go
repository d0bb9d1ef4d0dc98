package service

import (
	"context"

	"github.com/s2s-school/s2s-api/internal/models"
	appErrors "github.com/s2s-school/s2s-api/pkg/errors"
)

type teacherStore interface {
	Teachers() []models.Teacher
	Teacher(id string) (*models.Teacher, bool)
}

// TeacherService serves read-only catalog teacher lookups.
type TeacherService struct {
	store teacherStore
}

// NewTeacherService creates a new teacher service.
func NewTeacherService(st teacherStore) *TeacherService {
	return &TeacherService{store: st}
}

// List returns all catalog teachers in load order.
func (s *TeacherService) List(_ context.Context) ([]models.Teacher, error) {
	return s.store.Teachers(), nil
}

// Get returns a teacher by identifier.
func (s *TeacherService) Get(_ context.Context, id string) (*models.Teacher, error) {
	teacher, ok := s.store.Teacher(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	return teacher, nil
}
