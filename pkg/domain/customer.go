package domain

import (
	"time"

	"github.com/google/uuid"
)

// CustomerID uniquely identifies a customer profile.
type CustomerID uuid.UUID

// String returns the canonical UUID representation.
func (id CustomerID) String() string { return uuid.UUID(id).String() }

// Channel is a notification channel a customer can be reached on.
type Channel string

const (
	ChannelEmail    Channel = "EMAIL"
	ChannelSMS      Channel = "SMS"
	ChannelWhatsApp Channel = "WHATSAPP"
)

// Valid reports whether c is a known channel.
func (c Channel) Valid() bool {
	switch c {
	case ChannelEmail, ChannelSMS, ChannelWhatsApp:
		return true
	default:
		return false
	}
}

// Customer is the profile bound to an authenticated user. Packages received
// at the warehouse are matched to customers by MailboxNumber.
type Customer struct {
	ID     CustomerID `json:"id"`
	UserID UserID     `json:"userId"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	// MailboxNumber is the customer's suite number at the US warehouse, e.g. "QCS-100231".
	MailboxNumber string `json:"mailboxNumber"`
	// PreferredChannel is used for package notifications. E-mail is always used for quotes.
	PreferredChannel Channel `json:"preferredChannel"`
	// Destination is the default destination country (ISO 3166-1 alpha-2).
	Destination string `json:"destination,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
