package worker_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"qcscargo/internal/jobs"
	"qcscargo/internal/worker"
	"qcscargo/pkg/domain"
	"qcscargo/pkg/logger"
	"qcscargo/pkg/notify"
	mocknotify "qcscargo/pkg/notify/mock"
	"qcscargo/pkg/resilience"
	"qcscargo/pkg/serrors"
	mockstorage "qcscargo/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob[T river.JobArgs](id int64, args T) *river.Job[T] {
	return &river.Job[T]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   args,
	}
}

func receivedArgs(channel domain.Channel, recipient string) jobs.NotificationArgs {
	return jobs.NotificationArgs{
		Channel:   channel,
		Recipient: recipient,
		Template:  notify.TemplatePackageReceived,
		Data: map[string]string{
			"name":           "Tanya",
			"trackingNumber": "1Z999AA10123456784",
			"carrier":        "UPS",
			"weightKg":       "2.5",
			"mailbox":        "QCS-10001",
		},
	}
}

func TestNotificationWorker_Email(t *testing.T) {
	ctrl := gomock.NewController(t)
	email := mocknotify.NewMockEmailSender(ctrl)
	sms := mocknotify.NewMockSMSSender(ctrl)
	w := worker.NewNotificationWorker(email, sms, nil)

	email.EXPECT().SendEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e notify.Email) (string, error) {
			require.Equal(t, []string{"tanya@example.com"}, e.To)
			require.Equal(t, "Package received: 1Z999AA10123456784", e.Subject)
			require.Contains(t, e.Text, "QCS-10001")
			require.NotEmpty(t, e.HTML)

			return "msg-1", nil
		})

	require.NoError(t, w.Work(context.Background(), makeJob(1, receivedArgs(domain.ChannelEmail, "tanya@example.com"))))
}

func TestNotificationWorker_WhatsApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	email := mocknotify.NewMockEmailSender(ctrl)
	sms := mocknotify.NewMockSMSSender(ctrl)
	w := worker.NewNotificationWorker(email, sms, nil)

	sms.EXPECT().SendSMS(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m notify.Message) (string, error) {
			require.Equal(t, "+18765550100", m.To)
			require.True(t, m.WhatsApp)
			require.Contains(t, m.Body, "1Z999AA10123456784")

			return "SM1", nil
		})

	require.NoError(t, w.Work(context.Background(), makeJob(2, receivedArgs(domain.ChannelWhatsApp, "+18765550100"))))
}

func TestNotificationWorker_MissingDataCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := worker.NewNotificationWorker(mocknotify.NewMockEmailSender(ctrl), mocknotify.NewMockSMSSender(ctrl), nil)

	args := receivedArgs(domain.ChannelEmail, "tanya@example.com")
	delete(args.Data, "trackingNumber")

	err := w.Work(context.Background(), makeJob(3, args))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestNotificationWorker_ProviderRejectionCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	sms := mocknotify.NewMockSMSSender(ctrl)
	w := worker.NewNotificationWorker(mocknotify.NewMockEmailSender(ctrl), sms, nil)

	sms.EXPECT().SendSMS(gomock.Any(), gomock.Any()).
		Return("", serrors.With(serrors.ErrBadRequest, "invalid number"))

	err := w.Work(context.Background(), makeJob(4, receivedArgs(domain.ChannelSMS, "+18765550100")))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestNotificationWorker_RateLimitedPausesChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	email := mocknotify.NewMockEmailSender(ctrl)
	sms := mocknotify.NewMockSMSSender(ctrl)
	w := worker.NewNotificationWorker(email, sms, nil)

	rlErr := resilience.WithRetryAfter(serrors.With(serrors.ErrRateLimited, "slow down"), 2*time.Second)
	email.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return("", rlErr).Times(1)

	err := w.Work(context.Background(), makeJob(5, receivedArgs(domain.ChannelEmail, "a@example.com")))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, 2*time.Second, snoozeErr.Duration)

	// the second e-mail is snoozed without reaching the provider
	err = w.Work(context.Background(), makeJob(6, receivedArgs(domain.ChannelEmail, "b@example.com")))
	require.ErrorAs(t, err, &snoozeErr)
	require.Greater(t, snoozeErr.Duration, time.Duration(0))
	require.LessOrEqual(t, snoozeErr.Duration, 2*time.Second)

	// other channels are not affected
	sms.EXPECT().SendSMS(gomock.Any(), gomock.Any()).Return("SM2", nil)
	require.NoError(t, w.Work(context.Background(), makeJob(7, receivedArgs(domain.ChannelSMS, "+18765550100"))))
}

func TestNotificationWorker_LongRetryAfterSnoozesThroughRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	email := mocknotify.NewMockEmailSender(ctrl)
	resilient := notify.ResilientEmail(email, notify.Resilience{
		Policy: resilience.Policy{
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
			MaxElapsedTime:  time.Minute,
			MaxAttempts:     5,
		},
	})
	w := worker.NewNotificationWorker(resilient, mocknotify.NewMockSMSSender(ctrl), nil)

	rlErr := resilience.WithRetryAfter(serrors.With(serrors.ErrRateLimited, "slow down"), 2*time.Minute)
	email.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return("", rlErr).Times(1)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	err := w.Work(ctx, makeJob(10, receivedArgs(domain.ChannelEmail, "a@example.com")))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, 2*time.Minute, snoozeErr.Duration)
	require.NoError(t, ctx.Err())
}

func TestWorkers_SharedGatePausesQuoteEmails(t *testing.T) {
	ctrl := gomock.NewController(t)
	email := mocknotify.NewMockEmailSender(ctrl)
	st := mockstorage.NewMockAllStorage(ctrl)
	gate := worker.NewChannelGate()
	notifications := worker.NewNotificationWorker(email, mocknotify.NewMockSMSSender(ctrl), gate)
	quotes := worker.NewQuoteEmailWorker(st, email, gate)

	rlErr := resilience.WithRetryAfter(serrors.With(serrors.ErrRateLimited, "slow down"), 30*time.Second)
	email.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return("", rlErr).Times(1)

	err := notifications.Work(context.Background(), makeJob(11, receivedArgs(domain.ChannelEmail, "a@example.com")))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)

	// neither the quote nor the provider is touched while e-mail is paused
	err = quotes.Work(context.Background(), makeJob(12, jobs.QuoteEmailArgs{QuoteID: issuedQuote().ID}))
	require.ErrorAs(t, err, &snoozeErr)
	require.Greater(t, snoozeErr.Duration, time.Duration(0))
	require.LessOrEqual(t, snoozeErr.Duration, 30*time.Second)
}

func TestNotificationWorker_UnavailableSnoozes(t *testing.T) {
	ctrl := gomock.NewController(t)
	email := mocknotify.NewMockEmailSender(ctrl)
	w := worker.NewNotificationWorker(email, mocknotify.NewMockSMSSender(ctrl), nil)

	email.EXPECT().SendEmail(gomock.Any(), gomock.Any()).
		Return("", serrors.With(serrors.ErrUnavailable, "mail api is unavailable"))

	err := w.Work(context.Background(), makeJob(8, receivedArgs(domain.ChannelEmail, "a@example.com")))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, time.Minute, snoozeErr.Duration)
}

func TestNotificationWorker_GenericErrorRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	email := mocknotify.NewMockEmailSender(ctrl)
	w := worker.NewNotificationWorker(email, mocknotify.NewMockSMSSender(ctrl), nil)

	email.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return("", errors.New("boom"))

	err := w.Work(context.Background(), makeJob(9, receivedArgs(domain.ChannelEmail, "a@example.com")))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr)
}

func TestNotificationWorker_ConcurrentJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	email := mocknotify.NewMockEmailSender(ctrl)
	w := worker.NewNotificationWorker(email, mocknotify.NewMockSMSSender(ctrl), nil)

	email.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return("ok", nil).Times(10)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, w.Work(context.Background(),
				makeJob(int64(100+i), receivedArgs(domain.ChannelEmail, "a@example.com"))))
		}()
	}
	wg.Wait()
}

func issuedQuote() domain.Quote {
	return domain.Quote{
		ID:                 domain.QuoteID(uuid.MustParse("5f0c2a4e-9d7b-4c1e-8a32-6b1f0e9d2c11")),
		Name:               "Tanya Brown",
		Email:              "tanya@example.com",
		Origin:             "US-FL",
		Destination:        "JM",
		ServiceLevel:       domain.ServiceLevelAirStandard,
		Pieces:             []domain.Piece{{LengthCm: 40, WidthCm: 30, HeightCm: 20, WeightKg: 4}},
		ActualWeightKg:     4,
		VolumetricWeightKg: 4.8,
		ChargeableWeightKg: 4.8,
		Lines: []domain.QuoteLine{
			{Code: "FREIGHT", Description: "Air freight 4.8 kg", AmountCents: 3360},
		},
		TotalCents:     3360,
		Currency:       "USD",
		TransitDaysMin: 3,
		TransitDaysMax: 5,
		Status:         domain.QuoteStatusIssued,
		ExpiresAt:      time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:      time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
	}
}

func TestQuoteEmailWorker_SendsPDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockAllStorage(ctrl)
	email := mocknotify.NewMockEmailSender(ctrl)
	w := worker.NewQuoteEmailWorker(st, email, nil)

	q := issuedQuote()
	st.EXPECT().QuoteByID(gomock.Any(), q.ID).Return(&q, nil)
	email.EXPECT().SendEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e notify.Email) (string, error) {
			require.Equal(t, []string{"tanya@example.com"}, e.To)
			require.Equal(t, "Your QCS Cargo quote to JM", e.Subject)
			require.Contains(t, e.Text, "$33.60")
			require.Contains(t, e.Text, "November 15, 2026")
			require.Len(t, e.Attachments, 1)
			require.Equal(t, "qcs-quote-5f0c2a4e.pdf", e.Attachments[0].Filename)
			require.Equal(t, "application/pdf", e.Attachments[0].ContentType)
			require.True(t, bytes.HasPrefix(e.Attachments[0].Content, []byte("%PDF")))

			return "msg-2", nil
		})

	require.NoError(t, w.Work(context.Background(), makeJob(20, jobs.QuoteEmailArgs{QuoteID: q.ID})))
}

func TestQuoteEmailWorker_SkipsAcceptedQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockAllStorage(ctrl)
	w := worker.NewQuoteEmailWorker(st, mocknotify.NewMockEmailSender(ctrl), nil)

	q := issuedQuote()
	q.Status = domain.QuoteStatusAccepted
	st.EXPECT().QuoteByID(gomock.Any(), q.ID).Return(&q, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(21, jobs.QuoteEmailArgs{QuoteID: q.ID})))
}

func TestQuoteEmailWorker_MissingQuoteCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockAllStorage(ctrl)
	w := worker.NewQuoteEmailWorker(st, mocknotify.NewMockEmailSender(ctrl), nil)

	id := domain.QuoteID(uuid.New())
	st.EXPECT().QuoteByID(gomock.Any(), id).Return(nil, nil)

	err := w.Work(context.Background(), makeJob(22, jobs.QuoteEmailArgs{QuoteID: id}))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestQuoteEmailWorker_StorageErrorRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockAllStorage(ctrl)
	w := worker.NewQuoteEmailWorker(st, mocknotify.NewMockEmailSender(ctrl), nil)

	id := domain.QuoteID(uuid.New())
	st.EXPECT().QuoteByID(gomock.Any(), id).Return(nil, errors.New("connection reset"))

	err := w.Work(context.Background(), makeJob(23, jobs.QuoteEmailArgs{QuoteID: id}))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
}

func TestExpireQuotesWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockAllStorage(ctrl)
	w := worker.NewExpireQuotesWorker(st)

	st.EXPECT().ExpireQuotes(gomock.Any(), gomock.Any()).Return(int64(3), nil)
	require.NoError(t, w.Work(context.Background(), makeJob(30, jobs.ExpireQuotesArgs{})))

	st.EXPECT().ExpireQuotes(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("boom"))
	require.Error(t, w.Work(context.Background(), makeJob(31, jobs.ExpireQuotesArgs{})))
}

func TestPeriodicJobs(t *testing.T) {
	periodic := worker.PeriodicJobs(worker.Options{QuoteExpiryInterval: 15 * time.Minute})
	require.Len(t, periodic, 1)
}
