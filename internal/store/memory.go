// Package store owns all mutable runtime state. It is the only component
// that generates entity identities or appends to collections.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/s2s-school/s2s-api/internal/catalog"
	"github.com/s2s-school/s2s-api/internal/models"
)

// ErrUsernameTaken is returned by CreateUser when the username is already in
// use. The check runs under the same lock as the insertion, so concurrent
// submissions of the same username cannot both succeed.
var ErrUsernameTaken = errors.New("username already taken")

// Memory holds users, applications and contact forms for the lifetime of the
// process, and serves read-only catalog lookups. All collections are
// append-only; nothing is ever updated in place or deleted.
type Memory struct {
	catalog *catalog.Catalog

	mu           sync.RWMutex
	users        []models.User
	applications []models.Application
	contactForms []models.ContactForm
}

// NewMemory builds an empty store over a loaded catalog.
func NewMemory(cat *catalog.Catalog) *Memory {
	return &Memory{catalog: cat}
}

// CreateUser assigns a fresh id and appends the user. Username uniqueness is
// enforced here, atomically with the insertion.
func (s *Memory) CreateUser(insert models.InsertUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Username == insert.Username {
			return nil, ErrUsernameTaken
		}
	}

	user := models.User{
		ID:       uuid.New(),
		Username: insert.Username,
		FullName: insert.FullName,
	}
	s.users = append(s.users, user)
	return &user, nil
}

// User looks up a user by its string id. A malformed id behaves exactly like
// an absent one.
func (s *Memory) User(id string) (*models.User, bool) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == uid {
			u := s.users[i]
			return &u, true
		}
	}
	return nil, false
}

// UserByUsername returns the first user with the given username in insertion
// order.
func (s *Memory) UserByUsername(username string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Username == username {
			u := s.users[i]
			return &u, true
		}
	}
	return nil, false
}

// Users returns a snapshot of all users in insertion order.
func (s *Memory) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Courses returns all catalog courses in load order.
func (s *Memory) Courses() []models.Course {
	return s.catalog.Courses()
}

// Course looks up a catalog course by its string id.
func (s *Memory) Course(id string) (*models.Course, bool) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return nil, false
	}
	return s.catalog.Course(cid)
}

// CoursesByCategory returns courses whose category matches exactly,
// case-sensitive. No match yields an empty slice, never an error.
func (s *Memory) CoursesByCategory(category string) []models.Course {
	out := make([]models.Course, 0)
	for _, course := range s.catalog.Courses() {
		if course.Category == category {
			out = append(out, course)
		}
	}
	return out
}

// CoursesBySubject returns courses whose subject matches exactly,
// case-sensitive.
func (s *Memory) CoursesBySubject(subject string) []models.Course {
	out := make([]models.Course, 0)
	for _, course := range s.catalog.Courses() {
		if course.Subject == subject {
			out = append(out, course)
		}
	}
	return out
}

// Teachers returns all catalog teachers in load order.
func (s *Memory) Teachers() []models.Teacher {
	return s.catalog.Teachers()
}

// Teacher looks up a catalog teacher by its string id.
func (s *Memory) Teacher(id string) (*models.Teacher, bool) {
	tid, err := uuid.Parse(id)
	if err != nil {
		return nil, false
	}
	return s.catalog.Teacher(tid)
}

// CreateApplication assigns a fresh id and a UTC timestamp. It does not
// verify that the referenced user and course exist; callers run that check
// before invoking it.
func (s *Memory) CreateApplication(userID, courseID uuid.UUID) *models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	app := models.Application{
		ID:        uuid.New(),
		UserID:    userID,
		CourseID:  courseID,
		CreatedAt: time.Now().UTC(),
	}
	s.applications = append(s.applications, app)
	return &app
}

// Application looks up an application by its string id.
func (s *Memory) Application(id string) (*models.Application, bool) {
	aid, err := uuid.Parse(id)
	if err != nil {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.applications {
		if s.applications[i].ID == aid {
			a := s.applications[i]
			return &a, true
		}
	}
	return nil, false
}

// Applications returns a snapshot of all applications in insertion order.
func (s *Memory) Applications() []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Application, len(s.applications))
	copy(out, s.applications)
	return out
}

// CreateContactForm assigns a fresh id and appends the form. Pure data
// capture: the email notification is a separate step owned by the caller.
func (s *Memory) CreateContactForm(_ context.Context, insert models.InsertContactForm) (*models.ContactForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	form := models.ContactForm{
		ID:            uuid.New(),
		FullName:      insert.FullName,
		Phone:         insert.Phone,
		Email:         insert.Email,
		AgreedToTerms: insert.AgreedToTerms,
		CreatedAt:     time.Now().UTC(),
	}
	s.contactForms = append(s.contactForms, form)
	return &form, nil
}

// ContactForms returns a snapshot of all contact forms in insertion order.
func (s *Memory) ContactForms(_ context.Context) ([]models.ContactForm, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ContactForm, len(s.contactForms))
	copy(out, s.contactForms)
	return out, nil
}
