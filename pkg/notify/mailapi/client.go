// Package mailapi provides a notify.EmailSender backed by an HTTP JSON e-mail
// API authenticated with a bearer key (Resend compatible request shape).
package mailapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"qcscargo/pkg/notify"
	"qcscargo/pkg/serrors"
)

const provider = "email API"

// Client sends e-mails through the API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	from       string
}

var _ notify.EmailSender = (*Client)(nil)

type attachment struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"`
	ContentType string `json:"content_type,omitempty"`
}

type sendReq struct {
	From        string       `json:"from"`
	To          []string     `json:"to"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html,omitempty"`
	Text        string       `json:"text,omitempty"`
	ReplyTo     string       `json:"reply_to,omitempty"`
	Attachments []attachment `json:"attachments,omitempty"`
}

// SendEmail posts email to the API and returns the provider message id.
func (c *Client) SendEmail(ctx context.Context, email notify.Email) (string, error) {
	if len(email.To) == 0 {
		return "", serrors.With(serrors.ErrBadRequest, "e-mail has no recipients")
	}

	body := sendReq{
		From:    c.from,
		To:      email.To,
		Subject: email.Subject,
		HTML:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
	}
	for _, a := range email.Attachments {
		body.Attachments = append(body.Attachments, attachment{
			Filename:    a.Filename,
			Content:     base64.StdEncoding.EncodeToString(a.Content),
			ContentType: a.ContentType,
		})
	}
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

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
		ID string `json:"id"`
	}
	if err := json.Unmarshal(b, &sendResp); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}

	return sendResp.ID, nil
}

// New creates an API client. baseURL is the API root without a trailing
// slash, from the sender address used for every e-mail.
func New(httpClient *http.Client, baseURL, apiKey, from string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		from:       from,
	}
}
