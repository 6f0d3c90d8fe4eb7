package jobs_test

import (
	"context"
	"testing"

	"qcscargo/internal/jobs"
	"qcscargo/pkg/domain"
	"qcscargo/pkg/notify"
	mockstorage "qcscargo/pkg/storage/mock"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRecipient(t *testing.T) {
	c := domain.Customer{Email: "ann@example.com", Phone: "+13055550142"}

	ch, to := jobs.Recipient(c, domain.ChannelWhatsApp)
	require.Equal(t, domain.ChannelWhatsApp, ch)
	require.Equal(t, "+13055550142", to)

	ch, to = jobs.Recipient(c, domain.ChannelEmail)
	require.Equal(t, domain.ChannelEmail, ch)
	require.Equal(t, "ann@example.com", to)

	c.Phone = ""
	ch, to = jobs.Recipient(c, domain.ChannelSMS)
	require.Equal(t, domain.ChannelEmail, ch)
	require.Equal(t, "ann@example.com", to)
}

func TestNotify(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockAllStorage(ctrl)
	customer := domain.Customer{Name: "Ann", Email: "ann@example.com", Phone: "+13055550142", PreferredChannel: domain.ChannelSMS}

	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			n, ok := args.(jobs.NotificationArgs)
			require.True(t, ok)
			require.Equal(t, domain.ChannelSMS, n.Channel)
			require.Equal(t, "+13055550142", n.Recipient)
			require.Equal(t, notify.TemplatePackageShipped, n.Template)
			require.Equal(t, map[string]string{"name": "Ann", "trackingNumber": "TBA1"}, n.Data)

			return true, nil
		})

	err := jobs.Notify(context.Background(), st, customer, notify.TemplatePackageShipped,
		map[string]string{"trackingNumber": "TBA1"})
	require.NoError(t, err)
}

func TestInsertOpts(t *testing.T) {
	require.Equal(t, jobs.QueueNotifications, jobs.NotificationArgs{}.InsertOpts().Queue)
	require.True(t, jobs.QuoteEmailArgs{}.InsertOpts().UniqueOpts.ByArgs)
}
