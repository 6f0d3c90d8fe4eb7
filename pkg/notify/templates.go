package notify

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"qcscargo/pkg/serrors"

	"github.com/dustin/go-humanize"
)

// Template names a notification template.
type Template string

const (
	TemplatePackageReceived  Template = "package_received"
	TemplatePackageShipped   Template = "package_shipped"
	TemplatePackageDelivered Template = "package_delivered"
	TemplateBookingConfirmed Template = "booking_confirmed"
	TemplateBookingCancelled Template = "booking_cancelled"
	TemplateQuoteIssued      Template = "quote_issued"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Rendered is a template rendered for every channel. Text doubles as the SMS
// and WhatsApp body and as the plain text part of e-mails.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

type parsed struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

var templates = mustParse( //nolint: gochecknoglobals
	TemplatePackageReceived,
	TemplatePackageShipped,
	TemplatePackageDelivered,
	TemplateBookingConfirmed,
	TemplateBookingCancelled,
	TemplateQuoteIssued,
)

func mustParse(names ...Template) map[Template]parsed {
	out := make(map[Template]parsed, len(names))
	for _, name := range names {
		html := htmltemplate.Must(htmltemplate.New(string(name)).
			Option("missingkey=error").
			ParseFS(templateFS, "templates/layout.html.tmpl", "templates/"+string(name)+".html.tmpl"))
		text := texttemplate.Must(texttemplate.New(string(name)).
			Option("missingkey=error").
			ParseFS(templateFS, "templates/"+string(name)+".txt.tmpl"))
		out[name] = parsed{html: html, text: text}
	}

	return out
}

// Valid reports whether t names a known template.
func (t Template) Valid() bool {
	_, ok := templates[t]

	return ok
}

// Render executes template t with data. A missing key or an unknown template
// is a bad request: retrying cannot fix it.
func Render(t Template, data map[string]string) (Rendered, error) {
	p, ok := templates[t]
	if !ok {
		return Rendered{}, serrors.With(serrors.ErrBadRequest, "unknown template %q", t)
	}

	var subject, text, html bytes.Buffer
	if err := p.text.ExecuteTemplate(&subject, "subject", data); err != nil {
		return Rendered{}, serrors.Wrap(serrors.ErrBadRequest, err, "could not render %s subject", t)
	}
	if err := p.text.ExecuteTemplate(&text, "body", data); err != nil {
		return Rendered{}, serrors.Wrap(serrors.ErrBadRequest, err, "could not render %s text", t)
	}
	if err := p.html.ExecuteTemplate(&html, "layout", data); err != nil {
		return Rendered{}, serrors.Wrap(serrors.ErrBadRequest, err, "could not render %s html", t)
	}

	return Rendered{
		Subject: strings.TrimSpace(subject.String()),
		HTML:    html.String(),
		Text:    strings.TrimSpace(text.String()),
	}, nil
}

// FormatCents formats an amount in cents as US dollars.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(cents/100), cents%100)
}
