package notify

import (
	"context"

	"qcscargo/pkg/logger"

	"github.com/rs/xid"
	"go.uber.org/zap"
)

// LogSender writes messages to the log instead of delivering them. It stands
// in for a provider that has no credentials configured.
type LogSender struct{}

var (
	_ EmailSender = LogSender{}
	_ SMSSender   = LogSender{}
)

func (LogSender) SendEmail(ctx context.Context, email Email) (string, error) {
	id := xid.New().String()
	logger.Info(ctx, "e-mail delivery disabled, logging message",
		zap.String("messageID", id),
		zap.Strings("to", email.To),
		zap.String("subject", email.Subject),
		zap.Int("attachments", len(email.Attachments)))

	return id, nil
}

func (LogSender) SendSMS(ctx context.Context, msg Message) (string, error) {
	id := xid.New().String()
	logger.Info(ctx, "SMS delivery disabled, logging message",
		zap.String("messageID", id),
		zap.String("to", msg.To),
		zap.Bool("whatsApp", msg.WhatsApp),
		zap.String("body", msg.Body))

	return id, nil
}
