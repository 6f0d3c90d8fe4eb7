package notify

import (
	"context"
	"errors"

	"qcscargo/pkg/logger"
	"qcscargo/pkg/metrics"
	"qcscargo/pkg/resilience"
	"qcscargo/pkg/serrors"

	"go.uber.org/zap"
)

// Resilience holds the retry policy and the circuit breaker guarding a sender.
type Resilience struct {
	// Policy bounds the in-process retries of one send. A Retry-After hint
	// longer than the policy or the caller's deadline allows ends the
	// retries and is returned to the caller.
	Policy resilience.Policy
	// Breaker is optional. When set every attempt goes through it.
	Breaker *resilience.Breaker
}

func (r Resilience) call(ctx context.Context, channel string, op func(ctx context.Context) error) error {
	err := resilience.Retry(ctx, r.Policy, func(ctx context.Context) error {
		if r.Breaker == nil {
			return op(ctx)
		}

		return r.Breaker.Execute(ctx, op)
	})

	metrics.Notifications.WithLabelValues(channel, outcome(err)).Inc()

	return err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "sent"
	case errors.Is(err, serrors.ErrBadRequest):
		return "rejected"
	case errors.Is(err, serrors.ErrRateLimited):
		return "rate_limited"
	default:
		return "failed"
	}
}

type resilientEmail struct {
	next EmailSender
	r    Resilience
}

// ResilientEmail decorates next with retries and a circuit breaker.
func ResilientEmail(next EmailSender, r Resilience) EmailSender {
	return &resilientEmail{next: next, r: r}
}

func (s *resilientEmail) SendEmail(ctx context.Context, email Email) (string, error) {
	var id string
	err := s.r.call(ctx, "email", func(ctx context.Context) error {
		var err error
		id, err = s.next.SendEmail(ctx, email)

		return err //nolint: wrapcheck
	})
	if err != nil {
		return "", err
	}
	logger.Debug(ctx, "e-mail sent", zap.String("messageID", id), zap.Strings("to", email.To))

	return id, nil
}

type resilientSMS struct {
	next SMSSender
	r    Resilience
}

// ResilientSMS decorates next with retries and a circuit breaker.
func ResilientSMS(next SMSSender, r Resilience) SMSSender {
	return &resilientSMS{next: next, r: r}
}

func (s *resilientSMS) SendSMS(ctx context.Context, msg Message) (string, error) {
	channel := "sms"
	if msg.WhatsApp {
		channel = "whatsapp"
	}

	var id string
	err := s.r.call(ctx, channel, func(ctx context.Context) error {
		var err error
		id, err = s.next.SendSMS(ctx, msg)

		return err //nolint: wrapcheck
	})
	if err != nil {
		return "", err
	}
	logger.Debug(ctx, "text message sent", zap.String("messageID", id), zap.String("channel", channel))

	return id, nil
}
