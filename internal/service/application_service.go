package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/s2s-school/s2s-api/internal/models"
	appErrors "github.com/s2s-school/s2s-api/pkg/errors"
)

type applicationStore interface {
	User(id string) (*models.User, bool)
	Course(id string) (*models.Course, bool)
	CreateApplication(userID, courseID uuid.UUID) *models.Application
	Application(id string) (*models.Application, bool)
	Applications() []models.Application
}

// ApplicationService handles course application submission and lookups.
type ApplicationService struct {
	store     applicationStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewApplicationService creates a new application service.
func NewApplicationService(st applicationStore, validate *validator.Validate, logger *zap.Logger) *ApplicationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplicationService{store: st, validator: validate, logger: logger}
}

// Create submits an application after verifying that the referenced user and
// course exist. The store itself does not run these checks.
func (s *ApplicationService) Create(_ context.Context, req models.InsertApplication) (*models.Application, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid application payload")
	}

	if _, ok := s.store.User(req.UserID.String()); !ok {
		return nil, appErrors.Clone(appErrors.ErrInvalidReference, "user does not exist")
	}
	if _, ok := s.store.Course(req.CourseID.String()); !ok {
		return nil, appErrors.Clone(appErrors.ErrInvalidReference, "course does not exist")
	}

	app := s.store.CreateApplication(req.UserID, req.CourseID)
	s.logger.Sugar().Infow("application created", "application_id", app.ID, "user_id", app.UserID, "course_id", app.CourseID)
	return app, nil
}

// Get returns an application by identifier.
func (s *ApplicationService) Get(_ context.Context, id string) (*models.Application, error) {
	app, ok := s.store.Application(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "application not found")
	}
	return app, nil
}

// List returns all submitted applications.
func (s *ApplicationService) List(_ context.Context) ([]models.Application, error) {
	return s.store.Applications(), nil
}
