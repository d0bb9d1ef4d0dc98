package models

import (
	"time"

	"github.com/google/uuid"
)

// Application is a course enrollment request submitted by a user.
type Application struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CourseID  uuid.UUID `json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}

// InsertApplication carries the fields accepted when submitting an
// application. Referential checks against users and courses happen in the
// service layer before the store is called.
type InsertApplication struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	CourseID uuid.UUID `json:"course_id" validate:"required"`
}
