package worker

import (
	"context"
	"fmt"

	"qcscargo/internal/jobs"
	"qcscargo/internal/quote"
	"qcscargo/pkg/domain"
	"qcscargo/pkg/logger"
	"qcscargo/pkg/notify"
	"qcscargo/pkg/serrors"
	"qcscargo/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

const quoteDateLayout = "January 2, 2006"

// QuoteEmailWorker e-mails an issued quote to its requester with the quote
// PDF attached. Quotes that were accepted or expired before the job ran are
// skipped.
type QuoteEmailWorker struct {
	river.WorkerDefaults[jobs.QuoteEmailArgs]

	quotes storage.QuoteStorage
	email  notify.EmailSender
	gate   *ChannelGate
}

// NewQuoteEmailWorker constructs a QuoteEmailWorker. A nil gate gives the
// worker a gate of its own.
func NewQuoteEmailWorker(quotes storage.QuoteStorage, email notify.EmailSender, gate *ChannelGate) *QuoteEmailWorker {
	if gate == nil {
		gate = NewChannelGate()
	}

	return &QuoteEmailWorker{
		quotes: quotes,
		email:  email,
		gate:   gate,
	}
}

// Work sends the quote e-mail of a single job.
func (w *QuoteEmailWorker) Work(ctx context.Context, job *river.Job[jobs.QuoteEmailArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Stringer("quoteID", job.Args.QuoteID))

	if wait := w.gate.wait(domain.ChannelEmail); wait > 0 {
		return river.JobSnooze(wait) //nolint: wrapcheck
	}

	q, err := w.quotes.QuoteByID(ctx, job.Args.QuoteID)
	if err != nil {
		return fmt.Errorf("could not get quote: %w", err)
	}
	if q == nil {
		return river.JobCancel(serrors.With(serrors.ErrNotFound, "quote %s does not exist", job.Args.QuoteID)) //nolint: wrapcheck
	}
	if q.Status != domain.QuoteStatusIssued {
		logger.Info(ctx, "quote is no longer issued, skipping e-mail", zap.String("status", string(q.Status)))

		return nil
	}

	pdf, err := quote.RenderPDF(*q)
	if err != nil {
		return fmt.Errorf("could not render quote pdf: %w", err)
	}

	rendered, err := notify.Render(notify.TemplateQuoteIssued, map[string]string{
		"name":         q.Name,
		"quoteID":      q.ID.String(),
		"destination":  q.Destination,
		"serviceLevel": quote.ServiceLevelName(q.ServiceLevel),
		"total":        notify.FormatCents(q.TotalCents),
		"expiresAt":    q.ExpiresAt.UTC().Format(quoteDateLayout),
	})
	if err != nil {
		return river.JobCancel(err) //nolint: wrapcheck
	}

	providerID, err := w.email.SendEmail(ctx, notify.Email{
		To:      []string{q.Email},
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
		Attachments: []notify.Attachment{{
			Filename:    quote.PDFFileName(*q),
			ContentType: "application/pdf",
			Content:     pdf,
		}},
	})
	if err != nil {
		return w.gate.deliveryError(ctx, domain.ChannelEmail, err)
	}

	logger.Info(ctx, "quote e-mailed", zap.String("providerID", providerID))

	return nil
}
