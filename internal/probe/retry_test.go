package probe

import (
	"context"
	"errors"
	"testing"
	"time"

	"hello-samples/internal/config"
)

func TestRetryConfig(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		config := DefaultRetryConfig()

		if config.MaxAttempts != 1 {
			t.Errorf("Expected MaxAttempts=1, got %d", config.MaxAttempts)
		}
		if config.BackoffFactor != 2.0 {
			t.Errorf("Expected BackoffFactor=2.0, got %f", config.BackoffFactor)
		}
	})

	t.Run("FromCheckIPConfig", func(t *testing.T) {
		rc := NewRetryConfig(config.CheckIPConfig{
			MaxAttempts:  4,
			InitialDelay: 20 * time.Millisecond,
			MaxDelay:     time.Second,
		})

		if rc.MaxAttempts != 4 {
			t.Errorf("Expected MaxAttempts=4, got %d", rc.MaxAttempts)
		}
		if rc.InitialDelay != 20*time.Millisecond {
			t.Errorf("Expected InitialDelay=20ms, got %v", rc.InitialDelay)
		}
		if rc.MaxDelay != time.Second {
			t.Errorf("Expected MaxDelay=1s, got %v", rc.MaxDelay)
		}
	})

	t.Run("ZeroFieldsKeepDefaults", func(t *testing.T) {
		rc := NewRetryConfig(config.CheckIPConfig{})
		def := DefaultRetryConfig()

		if rc.MaxAttempts != def.MaxAttempts {
			t.Errorf("Expected MaxAttempts=%d, got %d", def.MaxAttempts, rc.MaxAttempts)
		}
		if rc.InitialDelay != def.InitialDelay {
			t.Errorf("Expected InitialDelay=%v, got %v", def.InitialDelay, rc.InitialDelay)
		}
		if rc.MaxDelay != def.MaxDelay {
			t.Errorf("Expected MaxDelay=%v, got %v", def.MaxDelay, rc.MaxDelay)
		}
	})
}

func TestBackoff(t *testing.T) {
	config := &RetryConfig{
		InitialDelay:  10 * time.Millisecond,
		MaxDelay:      25 * time.Millisecond,
		BackoffFactor: 2.0,
	}

	if d := config.backoff(1); d != 10*time.Millisecond {
		t.Errorf("Expected 10ms, got %v", d)
	}
	if d := config.backoff(2); d != 20*time.Millisecond {
		t.Errorf("Expected 20ms, got %v", d)
	}
	if d := config.backoff(3); d != 25*time.Millisecond {
		t.Errorf("Expected delay capped at 25ms, got %v", d)
	}
}

func TestWithRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("SuccessOnFirstAttempt", func(t *testing.T) {
		attempts := 0
		op := func(ctx context.Context) error {
			attempts++
			return nil
		}

		config := &RetryConfig{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffFactor: 2.0,
		}

		if err := WithRetry(ctx, config, nil, op); err != nil {
			t.Fatalf("WithRetry failed: %v", err)
		}
		if attempts != 1 {
			t.Errorf("Expected 1 attempt, got %d", attempts)
		}
	})

	t.Run("SuccessOnSecondAttempt", func(t *testing.T) {
		attempts := 0
		op := func(ctx context.Context) error {
			attempts++
			if attempts == 1 {
				return NewProbeError("request", "http://example.test", ErrNetworkError, true)
			}
			return nil
		}

		config := &RetryConfig{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			MaxDelay:      time.Second,
			BackoffFactor: 2.0,
		}

		if err := WithRetry(ctx, config, nil, op); err != nil {
			t.Fatalf("WithRetry failed: %v", err)
		}
		if attempts != 2 {
			t.Errorf("Expected 2 attempts, got %d", attempts)
		}
	})

	t.Run("FailAfterMaxAttemptsReturnsLastError", func(t *testing.T) {
		attempts := 0
		var last error
		op := func(ctx context.Context) error {
			attempts++
			last = NewProbeError("request", "http://example.test", ErrTimeout, true)
			return last
		}

		config := &RetryConfig{
			MaxAttempts:   2,
			InitialDelay:  10 * time.Millisecond,
			MaxDelay:      time.Second,
			BackoffFactor: 2.0,
		}

		err := WithRetry(ctx, config, nil, op)
		if err == nil {
			t.Fatal("WithRetry should have failed")
		}
		if err != last {
			t.Errorf("Expected the last attempt's error to be returned unchanged, got %v", err)
		}
		if attempts != 2 {
			t.Errorf("Expected 2 attempts, got %d", attempts)
		}
	})

	t.Run("NonRetryableError", func(t *testing.T) {
		attempts := 0
		op := func(ctx context.Context) error {
			attempts++
			return NewProbeError("request", "http://example.test", ErrUnexpectedStatus, false)
		}

		config := &RetryConfig{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffFactor: 2.0,
		}

		if err := WithRetry(ctx, config, nil, op); err == nil {
			t.Fatal("WithRetry should have failed")
		}
		if attempts != 1 {
			t.Errorf("Expected 1 attempt, got %d", attempts)
		}
	})

	t.Run("ZeroMaxAttemptsRunsOnce", func(t *testing.T) {
		attempts := 0
		err := WithRetry(ctx, &RetryConfig{}, nil, func(ctx context.Context) error {
			attempts++
			return NewProbeError("request", "http://example.test", ErrNetworkError, true)
		})
		if err == nil {
			t.Fatal("WithRetry should have failed")
		}
		if attempts != 1 {
			t.Errorf("Expected 1 attempt, got %d", attempts)
		}
	})

	t.Run("CancelledContext", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		attempts := 0
		err := WithRetry(cancelled, DefaultRetryConfig(), nil, func(ctx context.Context) error {
			attempts++
			return nil
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
		if attempts != 0 {
			t.Errorf("Expected 0 attempts, got %d", attempts)
		}
	})
}
