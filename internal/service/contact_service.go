package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/s2s-school/s2s-api/internal/models"
	"github.com/s2s-school/s2s-api/internal/store"
	appErrors "github.com/s2s-school/s2s-api/pkg/errors"
)

// ContactNotifier schedules the operator notification for an accepted form.
// Implementations must never block on delivery or surface delivery errors.
type ContactNotifier interface {
	Notify(form models.ContactForm)
}

// ContactService persists contact forms and triggers the notification.
type ContactService struct {
	store     store.ContactFormStore
	notifier  ContactNotifier
	validator *validator.Validate
	logger    *zap.Logger
}

// NewContactService creates a new contact-form service.
func NewContactService(st store.ContactFormStore, n ContactNotifier, validate *validator.Validate, logger *zap.Logger) *ContactService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{store: st, notifier: n, validator: validate, logger: logger}
}

// Create persists the form, then schedules the notification. The response is
// independent of notification delivery: a dead mailer never fails the request.
func (s *ContactService) Create(ctx context.Context, req models.InsertContactForm) (*models.ContactForm, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid contact form payload")
	}

	form, err := s.store.CreateContactForm(ctx, req)
	if err != nil {
		s.logger.Sugar().Errorw("failed to persist contact form", "error", err)
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to save contact form")
	}

	if s.notifier != nil {
		s.notifier.Notify(*form)
	}

	return form, nil
}

// List returns all stored contact forms.
func (s *ContactService) List(ctx context.Context) ([]models.ContactForm, error) {
	forms, err := s.store.ContactForms(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to load contact forms")
	}
	return forms, nil
}
