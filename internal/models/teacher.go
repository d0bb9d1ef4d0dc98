package models

import "github.com/google/uuid"

// Achievement is a single icon + text pair rendered on a teacher card.
type Achievement struct {
	Icon string `json:"icon" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// Teacher represents a catalog teacher profile, immutable after load.
type Teacher struct {
	ID           uuid.UUID     `json:"id" validate:"required"`
	Name         string        `json:"name" validate:"required"`
	Subject      string        `json:"subject" validate:"required"`
	Achievements []Achievement `json:"achievements" validate:"required,min=1,dive"`
	Quote        string        `json:"quote" validate:"required"`
	ImageURL     *string       `json:"imageUrl,omitempty"`
}
