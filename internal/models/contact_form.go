package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactForm is a submitted contact request from the marketing site.
type ContactForm struct {
	ID            uuid.UUID `json:"id" db:"id"`
	FullName      string    `json:"full_name" db:"full_name"`
	Phone         string    `json:"phone" db:"phone"`
	Email         string    `json:"email" db:"email"`
	AgreedToTerms bool      `json:"agreed_to_terms" db:"agreed_to_terms"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// InsertContactForm carries the fields accepted from the contact form.
// AgreedToTerms is recorded as sent; false is a valid value.
type InsertContactForm struct {
	FullName      string `json:"full_name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	AgreedToTerms bool   `json:"agreed_to_terms"`
}
