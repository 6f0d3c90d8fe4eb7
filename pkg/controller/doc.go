// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for allowed origins and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithMetrics: Observes request latency per chi route pattern.
//   - WithRateLimit: Limits requests per client IP.
//
// Provided helpers:
//   - WriteJSON and WriteError: JSON responses and the error envelope.
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
