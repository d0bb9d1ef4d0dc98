package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s2s-school/s2s-api/internal/models"
	appErrors "github.com/s2s-school/s2s-api/pkg/errors"
)

type contactStoreMock struct {
	createErr error
	listResp  []models.ContactForm
	listErr   error
}

func (m *contactStoreMock) CreateContactForm(_ context.Context, insert models.InsertContactForm) (*models.ContactForm, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &models.ContactForm{
		ID:            uuid.New(),
		FullName:      insert.FullName,
		Phone:         insert.Phone,
		Email:         insert.Email,
		AgreedToTerms: insert.AgreedToTerms,
	}, nil
}

func (m *contactStoreMock) ContactForms(_ context.Context) ([]models.ContactForm, error) {
	return m.listResp, m.listErr
}

type notifierMock struct {
	notified []models.ContactForm
}

func (m *notifierMock) Notify(form models.ContactForm) {
	m.notified = append(m.notified, form)
}

func validInsert() models.InsertContactForm {
	return models.InsertContactForm{
		FullName:      "Иван Иванов",
		Phone:         "+79001234567",
		Email:         "ivan@example.com",
		AgreedToTerms: true,
	}
}

func TestContactServiceCreateNotifies(t *testing.T) {
	notif := &notifierMock{}
	svc := NewContactService(&contactStoreMock{}, notif, nil, nil)

	form, err := svc.Create(context.Background(), validInsert())
	require.NoError(t, err)
	assert.Equal(t, "Иван Иванов", form.FullName)
	require.Len(t, notif.notified, 1)
	assert.Equal(t, form.ID, notif.notified[0].ID)
}

func TestContactServiceCreateRejectsBadEmail(t *testing.T) {
	notif := &notifierMock{}
	svc := NewContactService(&contactStoreMock{}, notif, nil, nil)

	req := validInsert()
	req.Email = "not-an-email"
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Empty(t, notif.notified)
}

func TestContactServiceCreatePersistenceFailure(t *testing.T) {
	notif := &notifierMock{}
	svc := NewContactService(&contactStoreMock{createErr: errors.New("db down")}, notif, nil, nil)

	_, err := svc.Create(context.Background(), validInsert())
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrPersistence.Code, appErr.Code)
	assert.Equal(t, 500, appErr.Status)
	assert.Empty(t, notif.notified)
}

func TestContactServiceCreateWithoutNotifier(t *testing.T) {
	svc := NewContactService(&contactStoreMock{}, nil, nil, nil)

	_, err := svc.Create(context.Background(), validInsert())
	require.NoError(t, err)
}
