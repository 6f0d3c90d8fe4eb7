// Package notify defines the outbound notification channels: e-mail through
// an HTTP e-mail API and SMS or WhatsApp through a Twilio style API.
// Providers map their responses onto serrors kinds so callers can decide
// whether to retry: 429 is ErrRateLimited, other 4xx ErrBadRequest, 5xx and
// transport failures ErrUnavailable.
package notify

import (
	"context"
)

// Attachment is a file attached to an e-mail.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Email is a message sent through an EmailSender.
type Email struct {
	To          []string
	Subject     string
	HTML        string
	Text        string
	ReplyTo     string
	Attachments []Attachment
}

// Message is a short text sent through an SMSSender.
type Message struct {
	// To is an E.164 phone number.
	To   string
	Body string
	// WhatsApp sends the message over WhatsApp instead of SMS.
	WhatsApp bool
}

// EmailSender delivers e-mails and returns the provider message id.
//
//go:generate mockgen -package mocknotify -source=notify.go -destination=mock/mocknotify.go *
type EmailSender interface {
	SendEmail(ctx context.Context, email Email) (string, error)
}

// SMSSender delivers text messages and returns the provider message id.
type SMSSender interface {
	SendSMS(ctx context.Context, msg Message) (string, error)
}
