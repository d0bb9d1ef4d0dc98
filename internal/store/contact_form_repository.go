package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/s2s-school/s2s-api/internal/models"
)

// ContactFormStore is the persistence contract for contact forms. The memory
// store covers the default deployment; ContactFormRepository is the durable
// Postgres-backed alternative. A deployment uses exactly one of them.
type ContactFormStore interface {
	CreateContactForm(ctx context.Context, insert models.InsertContactForm) (*models.ContactForm, error)
	ContactForms(ctx context.Context) ([]models.ContactForm, error)
}

// ContactFormRepository persists contact forms in the contact_forms table.
type ContactFormRepository struct {
	db *sqlx.DB
}

// NewContactFormRepository creates a new repository instance.
func NewContactFormRepository(db *sqlx.DB) *ContactFormRepository {
	return &ContactFormRepository{db: db}
}

// EnsureSchema creates the contact_forms table when it does not exist yet.
func (r *ContactFormRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS contact_forms (
		id UUID PRIMARY KEY,
		full_name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL,
		agreed_to_terms BOOLEAN NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
	return err
}

// CreateContactForm assigns a fresh id and inserts the form.
func (r *ContactFormRepository) CreateContactForm(ctx context.Context, insert models.InsertContactForm) (*models.ContactForm, error) {
	form := models.ContactForm{
		ID:            uuid.New(),
		FullName:      insert.FullName,
		Phone:         insert.Phone,
		Email:         insert.Email,
		AgreedToTerms: insert.AgreedToTerms,
		CreatedAt:     time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contact_forms (id, full_name, phone, email, agreed_to_terms, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		form.ID, form.FullName, form.Phone, form.Email, form.AgreedToTerms, form.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &form, nil
}

// ContactForms returns all persisted forms, oldest first.
func (r *ContactFormRepository) ContactForms(ctx context.Context) ([]models.ContactForm, error) {
	forms := []models.ContactForm{}
	err := r.db.SelectContext(ctx, &forms,
		`SELECT id, full_name, phone, email, agreed_to_terms, created_at FROM contact_forms ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	return forms, nil
}
