package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"qcscargo/pkg/logger"
	"qcscargo/pkg/serrors"

	"go.uber.org/zap"
)

// ErrorBody is the JSON envelope of every error response.
type ErrorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// NewError classifies err into a status code and an error envelope. Internal
// errors are logged and reported without their details.
func NewError(ctx context.Context, err error) (int, ErrorBody) {
	status, kind, msg := serrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return status, ErrorBody{
		Code:      kind.Error(),
		Message:   msg,
		RequestID: RequestID(ctx),
	}
}

// WriteError writes the error envelope of err.
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	status, body := NewError(ctx, err)
	WriteJSON(ctx, w, status, body)
}
