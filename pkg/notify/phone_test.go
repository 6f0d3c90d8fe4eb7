package notify_test

import (
	"testing"

	"qcscargo/pkg/notify"
	"qcscargo/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"(305) 555-0142", "+13055550142"},
		{"305.555.0142", "+13055550142"},
		{"1 305 555 0142", "+13055550142"},
		{"+1 876 555 0100", "+18765550100"},
		{"00441632960961", "+441632960961"},
		{"whatsapp:+18765550100", "+18765550100"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := notify.NormalizePhone(tc.in, "1")
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizePhone_Invalid(t *testing.T) {
	for _, in := range []string{"", "555-0142", "+1 305 abc 0142", "+0123456789", "+1234567890123456"} {
		t.Run(in, func(t *testing.T) {
			_, err := notify.NormalizePhone(in, "1")
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}
