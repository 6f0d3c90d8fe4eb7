// Package twilio provides a notify.SMSSender backed by the Twilio Programmable
// Messaging REST API. The same endpoint delivers SMS and WhatsApp messages.
package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"qcscargo/pkg/notify"
	"qcscargo/pkg/serrors"
)

const (
	provider       = "SMS API"
	whatsAppPrefix = "whatsapp:"
)

// Options configures a Client.
type Options struct {
	BaseURL      string
	AccountSID   string
	AuthToken    string
	From         string
	WhatsAppFrom string
	// DefaultCountryCode is used for numbers given without an international prefix.
	DefaultCountryCode string
}

// Client sends SMS and WhatsApp messages. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	opts       Options
}

var _ notify.SMSSender = (*Client)(nil)

// SendSMS sends msg and returns the message SID.
func (c *Client) SendSMS(ctx context.Context, msg notify.Message) (string, error) {
	to, err := notify.NormalizePhone(msg.To, c.opts.DefaultCountryCode)
	if err != nil {
		return "", err //nolint: wrapcheck
	}
	if strings.TrimSpace(msg.Body) == "" {
		return "", serrors.With(serrors.ErrBadRequest, "message body is empty")
	}

	from := c.opts.From
	if msg.WhatsApp {
		if c.opts.WhatsAppFrom == "" {
			return "", serrors.With(serrors.ErrBadRequest, "WhatsApp sender is not configured")
		}
		to = whatsAppPrefix + to
		from = whatsAppPrefix + strings.TrimPrefix(c.opts.WhatsAppFrom, whatsAppPrefix)
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", from)
	form.Set("Body", msg.Body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.opts.BaseURL, url.PathEscape(c.opts.AccountSID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.opts.AccountSID, c.opts.AuthToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", notify.TransportError(provider, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnavailable, err, "could not read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", notify.StatusError(provider, resp, b)
	}

	var sendResp struct {
		SID string `json:"sid"`
	}
	if err := json.Unmarshal(b, &sendResp); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}

	return sendResp.SID, nil
}

// New creates a Client.
func New(httpClient *http.Client, opts Options) *Client {
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.DefaultCountryCode == "" {
		opts.DefaultCountryCode = "1"
	}

	return &Client{httpClient: httpClient, opts: opts}
}
