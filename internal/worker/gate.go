package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"qcscargo/pkg/domain"
	"qcscargo/pkg/logger"
	"qcscargo/pkg/resilience"
	"qcscargo/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

const (
	// defaultRateLimitPause is used when a provider rate limits without a
	// Retry-After hint.
	defaultRateLimitPause = 30 * time.Second
	// defaultUnavailablePause is how long a job waits after a provider outage
	// or an open circuit.
	defaultUnavailablePause = time.Minute
)

// ChannelGate remembers until when a provider asked us to stop sending on a
// channel. Concurrent jobs for a paused channel are snoozed without calling
// the provider, so a 429 from one job holds back every job of that channel.
// Workers sending on the same provider share one ChannelGate; a 429 seen by
// the notification worker also holds back quote e-mails.
//
// All state is guarded by mu.
type ChannelGate struct {
	mu           sync.Mutex
	blockedUntil map[domain.Channel]time.Time
	now          func() time.Time
}

// NewChannelGate creates a ChannelGate with no paused channel.
func NewChannelGate() *ChannelGate {
	return &ChannelGate{
		blockedUntil: map[domain.Channel]time.Time{},
		now:          time.Now,
	}
}

// wait returns how long channel is still paused for, or zero.
func (g *ChannelGate) wait(channel domain.Channel) time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()

	until, ok := g.blockedUntil[channel]
	if !ok {
		return 0
	}

	d := until.Sub(g.now())
	if d <= 0 {
		delete(g.blockedUntil, channel)

		return 0
	}

	return d
}

// pause blocks channel for d. A shorter pause never shortens a longer one.
func (g *ChannelGate) pause(ctx context.Context, channel domain.Channel, d time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	until := g.now().Add(d)
	if current, ok := g.blockedUntil[channel]; ok && current.After(until) {
		return
	}

	g.blockedUntil[channel] = until
	logger.Debug(ctx, "pausing notification channel",
		zap.String("channel", string(channel)),
		zap.Time("until", until))
}

// deliveryError maps a provider error onto a River action:
//
//   - serrors.ErrBadRequest cancels the job, the provider will never accept it.
//   - serrors.ErrRateLimited pauses the channel and snoozes the job for the
//     Retry-After hint, or defaultRateLimitPause without one. Snoozing does
//     not consume one of the job's attempts.
//   - serrors.ErrUnavailable (outage or open circuit) snoozes the job for the
//     hint, or defaultUnavailablePause.
//   - Any other error is returned and River retries the job with its own
//     backoff until MaxAttempts is reached.
func (g *ChannelGate) deliveryError(ctx context.Context, channel domain.Channel, err error) error {
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		logger.Error(ctx, "notification rejected by provider", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	case errors.Is(err, serrors.ErrRateLimited):
		dur := resilience.RetryAfter(err)
		if dur <= 0 {
			dur = defaultRateLimitPause
		}
		g.pause(ctx, channel, dur)
		logger.Warn(ctx, "provider rate limited notification", zap.Duration("snooze", dur))

		return river.JobSnooze(dur) //nolint: wrapcheck
	case errors.Is(err, serrors.ErrUnavailable):
		dur := resilience.RetryAfter(err)
		if dur <= 0 {
			dur = defaultUnavailablePause
		}
		logger.Warn(ctx, "notification provider unavailable", zap.Error(err), zap.Duration("snooze", dur))

		return river.JobSnooze(dur) //nolint: wrapcheck
	default:
		logger.Error(ctx, "could not deliver notification", zap.Error(err))

		return fmt.Errorf("could not deliver notification: %w", err)
	}
}
