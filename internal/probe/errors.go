package probe

import (
	"errors"
	"fmt"
)

// Common probe failure causes
var (
	ErrNetworkError     = errors.New("network error")
	ErrTimeout          = errors.New("operation timeout")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrBodyTooLarge     = errors.New("response body too large")
)

// ProbeError represents a failed outbound probe with additional context
type ProbeError struct {
	Op        string // Step that failed (e.g., "request", "read body")
	URL       string // Probe target
	Err       error  // Underlying error
	Retryable bool   // Whether the probe can be retried
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("checkip %s failed for %s: %v", e.Op, e.URL, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// IsRetryable returns true if the error indicates a retryable condition
func (e *ProbeError) IsRetryable() bool {
	return e.Retryable
}

// NewProbeError creates a new ProbeError
func NewProbeError(op, url string, err error, retryable bool) *ProbeError {
	return &ProbeError{
		Op:        op,
		URL:       url,
		Err:       err,
		Retryable: retryable,
	}
}

// IsRetryable returns true if the error indicates a retryable condition
func IsRetryable(err error) bool {
	var probeErr *ProbeError
	if errors.As(err, &probeErr) {
		return probeErr.IsRetryable()
	}

	return errors.Is(err, ErrNetworkError) ||
		errors.Is(err, ErrTimeout)
}

// IsTimeout returns true if the probe failed because it ran out of time
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
