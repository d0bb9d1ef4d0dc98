package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/s2s-school/s2s-api/internal/models"
	"github.com/s2s-school/s2s-api/internal/store"
	appErrors "github.com/s2s-school/s2s-api/pkg/errors"
)

type userStore interface {
	CreateUser(insert models.InsertUser) (*models.User, error)
	User(id string) (*models.User, bool)
	Users() []models.User
}

// UserService handles user registration and lookups.
type UserService struct {
	store     userStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService creates a new user service.
func NewUserService(st userStore, validate *validator.Validate, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{store: st, validator: validate, logger: logger}
}

// Create registers a new user. The duplicate-username check happens inside
// the store, atomically with the insertion.
func (s *UserService) Create(_ context.Context, req models.InsertUser) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload")
	}

	user, err := s.store.CreateUser(req)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			return nil, appErrors.Clone(appErrors.ErrUsernameTaken, "username already taken")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create user")
	}

	s.logger.Sugar().Infow("user created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Get returns a user by identifier.
func (s *UserService) Get(_ context.Context, id string) (*models.User, error) {
	user, ok := s.store.User(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	return user, nil
}

// List returns all registered users.
func (s *UserService) List(_ context.Context) ([]models.User, error) {
	return s.store.Users(), nil
}
