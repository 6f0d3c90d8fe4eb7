package controller

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"qcscargo/pkg/logger"

	"github.com/rs/xid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = "X-Request-Id"

	maxRequestIDLength = 128
)

// responseRecorder captures the status code and body size written by the
// downstream handler.
type responseRecorder struct {
	http.ResponseWriter

	status      int
	bytes       int
	wroteHeader bool
}

func (rec *responseRecorder) WriteHeader(code int) {
	if !rec.wroteHeader {
		rec.status = code
		rec.wroteHeader = true
	}
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *responseRecorder) Write(b []byte) (int, error) {
	rec.wroteHeader = true
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n

	return n, err //nolint: wrapcheck
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rec *responseRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

// GetClientIP returns the originating client address: the first
// X-Forwarded-For entry, then X-Real-IP, then the connection's remote host.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}

type requestIDKey struct{}

// RequestID returns the request ID stored in ctx by WithLogger.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

// accessFields collects fields that handlers deeper in the chain want on the
// access log line, e.g. the authenticated caller.
type accessFields struct {
	mu     sync.Mutex
	fields []zapcore.Field
}

type accessFieldsKey struct{}

// AddAccessLogFields attaches fields to the access log line of the request
// in ctx. The fields are added to the request logger as well. Outside
// WithLogger it only returns the enriched context.
func AddAccessLogFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	if af, ok := ctx.Value(accessFieldsKey{}).(*accessFields); ok {
		af.mu.Lock()
		af.fields = append(af.fields, fields...)
		af.mu.Unlock()
	}

	return logger.WithFields(ctx, fields...)
}

// WithLogger assigns every request an ID (kept from X-Request-Id when the
// client sent a sane one), attaches a request-scoped logger and writes one
// access log line once the handler returns. Server errors are logged at
// warn level.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = xid.New().String()
		}
		w.Header().Set(RequestIDHeader, requestID)

		af := &accessFields{}
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		ctx = context.WithValue(ctx, accessFieldsKey{}, af)
		ctx = logger.WithFields(ctx, zap.String("request_id", requestID))

		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		af.mu.Lock()
		fields := append([]zapcore.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status_code", rec.status),
			zap.Int("bytes", rec.bytes),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", GetClientIP(r)),
			zap.String("user_agent", r.UserAgent()),
		}, af.fields...)
		af.mu.Unlock()

		if rec.status >= http.StatusInternalServerError {
			logger.Warn(ctx, "access log", fields...)

			return
		}
		logger.Info(ctx, "access log", fields...)
	})
}
