// Package jobs declares the River job arguments shared by the services that
// enqueue them and the workers that run them.
package jobs

import (
	"context"
	"fmt"

	"qcscargo/pkg/domain"
	"qcscargo/pkg/notify"
	"qcscargo/pkg/storage"

	"github.com/riverqueue/river"
)

const (
	// QueueNotifications is the queue outbound e-mails and text messages run on.
	QueueNotifications = "notifications"

	notificationMaxAttempts = 8
)

// NotificationArgs asks the notification worker to render a template and
// deliver it on a channel.
type NotificationArgs struct {
	Channel domain.Channel `json:"channel"`
	// Recipient is an e-mail address for ChannelEmail and a phone number otherwise.
	Recipient string            `json:"recipient"`
	Template  notify.Template   `json:"template"`
	Data      map[string]string `json:"data"`
}

// Kind returns the River job kind of notification jobs.
func (NotificationArgs) Kind() string { return "send_notification" }

// InsertOpts routes notifications to their own queue.
func (NotificationArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueNotifications,
		MaxAttempts: notificationMaxAttempts,
	}
}

// QuoteEmailArgs asks the quote worker to render the PDF of a quote and
// e-mail it to the requester.
type QuoteEmailArgs struct {
	QuoteID domain.QuoteID `json:"quoteId"`
}

// Kind returns the River job kind of quote e-mail jobs.
func (QuoteEmailArgs) Kind() string { return "send_quote" }

// InsertOpts makes sure a quote is e-mailed once.
func (QuoteEmailArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueNotifications,
		MaxAttempts: notificationMaxAttempts,
		UniqueOpts:  river.UniqueOpts{ByArgs: true},
	}
}

// ExpireQuotesArgs runs the periodic quote expiry.
type ExpireQuotesArgs struct{}

// Kind returns the River job kind of the quote expiry job.
func (ExpireQuotesArgs) Kind() string { return "expire_quotes" }

// Recipient returns the address a customer is reached on for channel.
// Customers without a phone number fall back to e-mail.
func Recipient(customer domain.Customer, channel domain.Channel) (domain.Channel, string) {
	if channel != domain.ChannelEmail && customer.Phone != "" {
		return channel, customer.Phone
	}

	return domain.ChannelEmail, customer.Email
}

// Notify enqueues template for customer on their preferred channel. jobs is
// normally the transaction the announced change is written in.
func Notify(ctx context.Context,
	jobs storage.JobStorage,
	customer domain.Customer,
	template notify.Template,
	data map[string]string) error {
	channel, recipient := Recipient(customer, customer.PreferredChannel)
	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["name"]; !ok {
		data["name"] = customer.Name
	}

	if _, err := jobs.AddJob(ctx, NotificationArgs{
		Channel:   channel,
		Recipient: recipient,
		Template:  template,
		Data:      data,
	}, nil); err != nil {
		return fmt.Errorf("could not enqueue %s notification: %w", template, err)
	}

	return nil
}
