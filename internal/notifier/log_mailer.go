package notifier

import (
	"context"

	"go.uber.org/zap"

	"github.com/s2s-school/s2s-api/internal/models"
)

// LogMailer stands in for the SMTP mailer when mail delivery is disabled.
// Submissions are logged so developers still see them locally.
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer builds a logging-only mailer.
func NewLogMailer(logger *zap.Logger) *LogMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogMailer{logger: logger}
}

// Send logs the would-be notification and reports success.
func (m *LogMailer) Send(_ context.Context, form models.ContactForm) error {
	m.logger.Sugar().Infow("mail disabled, skipping notification",
		"form_id", form.ID, "full_name", form.FullName, "email", form.Email)
	return nil
}
