package models

import "github.com/google/uuid"

// Course represents a single catalog course. Courses are loaded from the
// catalog file at startup and are immutable for the lifetime of the process.
type Course struct {
	ID            uuid.UUID `json:"id" validate:"required"`
	Title         string    `json:"title" validate:"required"`
	Description   string    `json:"description" validate:"required"`
	Subject       string    `json:"subject" validate:"required"`
	Category      string    `json:"category" validate:"required"`
	Duration      string    `json:"duration" validate:"required"`
	Lessons       int       `json:"lessons" validate:"gt=0"`
	Grades        string    `json:"grades" validate:"required"`
	Features      []string  `json:"features" validate:"required,min=1,dive,required"`
	OriginalPrice float64   `json:"original_price" validate:"gte=0"`
	CurrentPrice  float64   `json:"current_price" validate:"gte=0"`
	IsPopular     bool      `json:"is_popular"`
}
