package notify_test

import (
	"context"
	"testing"
	"time"

	"qcscargo/pkg/notify"
	mocknotify "qcscargo/pkg/notify/mock"
	"qcscargo/pkg/resilience"
	"qcscargo/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fastResilience(name string) notify.Resilience {
	return notify.Resilience{
		Policy: resilience.Policy{
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
			MaxElapsedTime:  time.Second,
			MaxAttempts:     3,
		},
		Breaker: resilience.NewBreaker(resilience.BreakerOptions{
			Name:             name,
			FailureThreshold: 10,
			OpenTimeout:      time.Minute,
		}),
	}
}

func TestResilientEmail_RetriesTransientFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocknotify.NewMockEmailSender(ctrl)
	email := notify.Email{To: []string{"ann@example.com"}, Subject: "hi"}

	gomock.InOrder(
		next.EXPECT().SendEmail(gomock.Any(), email).Return("", serrors.With(serrors.ErrUnavailable, "503")),
		next.EXPECT().SendEmail(gomock.Any(), email).Return("msg-1", nil),
	)

	id, err := notify.ResilientEmail(next, fastResilience("email-retry")).SendEmail(context.Background(), email)
	require.NoError(t, err)
	require.Equal(t, "msg-1", id)
}

func TestResilientEmail_BadRequestIsNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocknotify.NewMockEmailSender(ctrl)

	next.EXPECT().SendEmail(gomock.Any(), gomock.Any()).
		Return("", serrors.With(serrors.ErrBadRequest, "invalid address")).
		Times(1)

	_, err := notify.ResilientEmail(next, fastResilience("email-bad")).
		SendEmail(context.Background(), notify.Email{To: []string{"x"}})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestResilientSMS_GivesUpAfterMaxAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocknotify.NewMockSMSSender(ctrl)

	next.EXPECT().SendSMS(gomock.Any(), gomock.Any()).
		Return("", serrors.With(serrors.ErrUnavailable, "502")).
		Times(3)

	_, err := notify.ResilientSMS(next, fastResilience("sms-exhaust")).
		SendSMS(context.Background(), notify.Message{To: "+13055550142", Body: "hi", WhatsApp: true})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestLogSender(t *testing.T) {
	id, err := notify.LogSender{}.SendEmail(context.Background(), notify.Email{To: []string{"a@b.c"}})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	id, err = notify.LogSender{}.SendSMS(context.Background(), notify.Message{To: "+13055550142", Body: "hi"})
	require.NoError(t, err)
	require.NotEmpty(t, id)
}
