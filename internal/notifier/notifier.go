// Package notifier sends the operator email triggered by contact-form
// submissions. Delivery is fire-and-forget: the HTTP response never waits for
// it and delivery failures never propagate back to the client.
package notifier

import (
	"context"

	"go.uber.org/zap"

	"github.com/s2s-school/s2s-api/internal/models"
	"github.com/s2s-school/s2s-api/pkg/config"
	"github.com/s2s-school/s2s-api/pkg/jobs"
)

const jobTypeContactForm = "contact_form_email"

// Metrics counts notification attempts by result.
type Metrics interface {
	IncNotification(result string)
}

// Notifier schedules notification sends on a background worker queue with
// bounded retries and a per-send timeout.
type Notifier struct {
	queue  *jobs.Queue
	logger *zap.Logger
}

// New wires a notifier around the given mailer. metrics may be nil.
func New(mailer Mailer, cfg config.MailConfig, logger *zap.Logger, metrics Metrics) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}

	n := &Notifier{logger: logger}
	handler := func(ctx context.Context, job jobs.Job) error {
		form, ok := job.Payload.(models.ContactForm)
		if !ok {
			logger.Sugar().Errorw("unexpected notification payload", "job_id", job.ID, "type", job.Type)
			return nil
		}
		err := mailer.Send(ctx, form)
		if metrics != nil {
			if err != nil {
				metrics.IncNotification("failure")
			} else {
				metrics.IncNotification("success")
			}
		}
		return err
	}

	n.queue = jobs.NewQueue("notifications", handler, jobs.QueueConfig{
		Workers:    1,
		MaxRetries: cfg.MaxRetries,
		JobTimeout: cfg.SendTimeout,
		Logger:     logger,
	})
	return n
}

// Start launches the delivery workers.
func (n *Notifier) Start(ctx context.Context) {
	n.queue.Start(ctx)
}

// Stop waits for in-flight deliveries to finish.
func (n *Notifier) Stop() {
	n.queue.Stop()
}

// Notify enqueues a notification for the given form. Enqueue failures are
// logged and swallowed; the triggering request must not observe them.
func (n *Notifier) Notify(form models.ContactForm) {
	err := n.queue.Enqueue(jobs.Job{
		ID:      form.ID.String(),
		Type:    jobTypeContactForm,
		Payload: form,
	})
	if err != nil {
		n.logger.Sugar().Warnw("failed to enqueue notification", "form_id", form.ID, "error", err)
	}
}
