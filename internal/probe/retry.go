package probe

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"hello-samples/internal/config"
)

// RetryConfig configures retry behavior for the outbound probe
type RetryConfig struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	JitterEnabled bool
}

// DefaultRetryConfig returns a single-attempt policy: the probe is never retried
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:   1,
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      2 * time.Second,
		BackoffFactor: 2.0,
		JitterEnabled: true,
	}
}

// NewRetryConfig builds the retry policy from the checkip configuration.
// Unset (zero) fields keep their defaults.
func NewRetryConfig(cfg config.CheckIPConfig) *RetryConfig {
	rc := DefaultRetryConfig()
	if cfg.MaxAttempts > 0 {
		rc.MaxAttempts = cfg.MaxAttempts
	}
	if cfg.InitialDelay > 0 {
		rc.InitialDelay = cfg.InitialDelay
	}
	if cfg.MaxDelay > 0 {
		rc.MaxDelay = cfg.MaxDelay
	}
	return rc
}

// RetryableOperation represents an operation that can be retried
type RetryableOperation func(ctx context.Context) error

// WithRetry runs op until it succeeds, fails with a non-retryable error or
// MaxAttempts is spent. op runs at least once. Every retry is logged at warn
// level on log (which may be nil); the final error is returned unchanged.
func WithRetry(ctx context.Context, config *RetryConfig, log logrus.FieldLogger, op RetryableOperation) error {
	if config == nil {
		config = DefaultRetryConfig()
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := op(ctx)
		if err == nil || attempt >= config.MaxAttempts || !IsRetryable(err) {
			return err
		}

		delay := config.backoff(attempt)
		if log != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"attempt":      attempt,
				"max_attempts": config.MaxAttempts,
				"retry_in_ms":  delay.Milliseconds(),
			}).Warn("Checkip attempt failed, retrying")
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// backoff returns the wait after the given failed attempt: InitialDelay grown
// by BackoffFactor per attempt, capped at MaxDelay, plus up to 10% jitter
func (c *RetryConfig) backoff(attempt int) time.Duration {
	delay := c.InitialDelay
	for i := 1; i < attempt && delay < c.MaxDelay; i++ {
		delay = time.Duration(float64(delay) * c.BackoffFactor)
	}
	if delay > c.MaxDelay {
		delay = c.MaxDelay
	}

	if c.JitterEnabled && delay > 0 {
		delay += time.Duration(rand.Int63n(int64(delay)/10 + 1))
	}

	return delay
}
