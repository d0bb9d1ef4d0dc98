package models

import "github.com/google/uuid"

// User is a registered site visitor. Users are append-only: there is no
// update or delete path.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName *string   `json:"full_name"`
}

// InsertUser carries the fields accepted when registering a user.
type InsertUser struct {
	Username string  `json:"username" validate:"required"`
	FullName *string `json:"full_name"`
}
