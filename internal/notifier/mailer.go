package notifier

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/s2s-school/s2s-api/internal/models"
	"github.com/s2s-school/s2s-api/pkg/config"
)

// Mailer delivers a single contact-form notification message.
type Mailer interface {
	Send(ctx context.Context, form models.ContactForm) error
}

// SMTPMailer sends notifications to the operator address over SMTP.
type SMTPMailer struct {
	cfg config.MailConfig
}

// NewSMTPMailer builds a mailer from the mail config.
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send composes and delivers the notification. The message goes to the
// configured sender address, which doubles as the operator inbox.
func (m *SMTPMailer) Send(ctx context.Context, form models.ContactForm) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(m.cfg.From); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	msg.Subject("Новая заявка на курс!")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Имя: %s\nТелефон: %s\nEmail: %s\n",
		form.FullName, form.Phone, form.Email,
	))

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTimeout(m.cfg.SendTimeout),
	}
	if m.cfg.SSLTLS {
		opts = append(opts, mail.WithSSL())
	} else if m.cfg.StartTLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, msg)
}
