// Package resilience wraps outbound calls with retries and circuit breaking.
//
// Retry runs an operation with exponential backoff and jitter, retrying only
// errors classified retryable by serrors.IsRetryable. A Retry-After hint
// attached with WithRetryAfter lengthens the next wait. Breaker fails fast
// with serrors.ErrUnavailable while a dependency keeps failing.
package resilience
