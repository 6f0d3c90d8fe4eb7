package controller_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"qcscargo/pkg/controller"
	"qcscargo/pkg/serrors"
)

func TestWriteError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"not found", serrors.With(serrors.ErrNotFound, "booking not found"), http.StatusNotFound, "NOT_FOUND", "booking not found"},
		{"conflict", serrors.KindOnly(serrors.ErrConflict), http.StatusConflict, "CONFLICT", "conflict"},
		{"internal hidden", errors.New("pq: connection refused"), http.StatusInternalServerError, "INTERNAL", "internal error"},
		{"too large", serrors.With(serrors.ErrPayloadTooLarge, "file exceeds the 10 MiB limit"),
			http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "file exceeds the 10 MiB limit"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			controller.WriteError(context.Background(), rec, tc.err)

			require.Equal(t, tc.status, rec.Code)
			require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

			var body controller.ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tc.code, body.Code)
			require.Equal(t, tc.message, body.Message)
		})
	}
}
