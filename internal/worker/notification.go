// Package worker contains the River workers that run the background jobs of
// the backend: notification delivery, quote e-mails and quote expiry.
package worker

import (
	"context"

	"qcscargo/internal/jobs"
	"qcscargo/pkg/domain"
	"qcscargo/pkg/logger"
	"qcscargo/pkg/notify"
	"qcscargo/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// NotificationWorker renders a notification template and delivers it on the
// job's channel. E-mails go through the EmailSender, SMS and WhatsApp through
// the SMSSender.
//
// When a provider rate limits a send, the channel is paused for the
// Retry-After hint and every job for that channel is snoozed until then
// without reaching the provider. Rejected messages and templates missing
// data are cancelled; other failures are left to River's retry policy.
type NotificationWorker struct {
	river.WorkerDefaults[jobs.NotificationArgs]

	email notify.EmailSender
	sms   notify.SMSSender
	gate  *ChannelGate
}

// NewNotificationWorker constructs a NotificationWorker. A nil gate gives the
// worker a gate of its own.
func NewNotificationWorker(email notify.EmailSender, sms notify.SMSSender, gate *ChannelGate) *NotificationWorker {
	if gate == nil {
		gate = NewChannelGate()
	}

	return &NotificationWorker{
		email: email,
		sms:   sms,
		gate:  gate,
	}
}

// Work delivers a single notification.
func (w *NotificationWorker) Work(ctx context.Context, job *river.Job[jobs.NotificationArgs]) error {
	channel := job.Args.Channel
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("channel", string(channel)),
		zap.String("template", string(job.Args.Template)))

	if wait := w.gate.wait(channel); wait > 0 {
		logger.Debug(ctx, "channel paused, snoozing notification", zap.Duration("snooze", wait))

		return river.JobSnooze(wait) //nolint: wrapcheck
	}

	rendered, err := notify.Render(job.Args.Template, job.Args.Data)
	if err != nil {
		logger.Error(ctx, "could not render notification", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}

	var providerID string
	switch channel {
	case domain.ChannelEmail:
		providerID, err = w.email.SendEmail(ctx, notify.Email{
			To:      []string{job.Args.Recipient},
			Subject: rendered.Subject,
			HTML:    rendered.HTML,
			Text:    rendered.Text,
		})
	case domain.ChannelSMS, domain.ChannelWhatsApp:
		providerID, err = w.sms.SendSMS(ctx, notify.Message{
			To:       job.Args.Recipient,
			Body:     rendered.Text,
			WhatsApp: channel == domain.ChannelWhatsApp,
		})
	default:
		return river.JobCancel(serrors.With(serrors.ErrBadRequest, "unknown channel %q", channel)) //nolint: wrapcheck
	}
	if err != nil {
		return w.gate.deliveryError(ctx, channel, err)
	}

	logger.Info(ctx, "notification sent", zap.String("providerID", providerID))

	return nil
}
