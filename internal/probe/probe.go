// Package probe performs the outbound call that discovers the caller's public IP.
package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"hello-samples/internal/config"
)

// maxBodySize bounds the echo response; a longer body is rejected, never truncated
const maxBodySize = 1024

// Prober returns the public IP address of the caller
type Prober interface {
	Probe(ctx context.Context) (string, error)
}

// HTTPProber asks a plain-text echo endpoint for the caller's IP
type HTTPProber struct {
	url    string
	client *http.Client
	retry  *RetryConfig
	log    logrus.FieldLogger
}

// NewHTTPProber creates a prober with an explicit per-attempt timeout and retry policy.
// Retries are logged on log, which may be nil.
func NewHTTPProber(cfg config.CheckIPConfig, log logrus.FieldLogger) *HTTPProber {
	return &HTTPProber{
		url:    cfg.URL,
		client: &http.Client{Timeout: cfg.Timeout},
		retry:  NewRetryConfig(cfg),
		log:    log,
	}
}

// Probe implements Prober
func (p *HTTPProber) Probe(ctx context.Context) (string, error) {
	var ip string
	err := WithRetry(ctx, p.retry, p.log, func(ctx context.Context) error {
		result, err := p.fetch(ctx)
		if err != nil {
			return err
		}
		ip = result
		return nil
	})
	if err != nil {
		return "", err
	}
	return ip, nil
}

func (p *HTTPProber) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return "", NewProbeError("build request", p.url, err, false)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", NewProbeError("request", p.url, classify(err), true)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", NewProbeError("request", p.url,
			fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status),
			retryableStatus(resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return "", NewProbeError("read body", p.url, classify(err), true)
	}
	if len(body) > maxBodySize {
		return "", NewProbeError("read body", p.url,
			fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, maxBodySize), false)
	}

	return normalize(string(body)), nil
}

// classify tags a transport error with ErrTimeout or ErrNetworkError, keeping the original in the chain
func classify(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrNetworkError, err)
}

func retryableStatus(code int) bool {
	return code >= 500 || code == http.StatusTooManyRequests
}

// normalize removes the newline the echo endpoint appends
func normalize(body string) string {
	return strings.TrimRight(strings.ReplaceAll(body, "\n", ""), "\r")
}
