package razor

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"
)

// RetryConfig controls retry behavior for API reads.
type RetryConfig struct {
	MaxAttempts       int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
	BackoffMultiplier float64
}

var DefaultRetryConfig = RetryConfig{
	MaxAttempts:       3,
	InitialBackoff:    200 * time.Millisecond,
	MaxBackoff:        2 * time.Second,
	BackoffMultiplier: 2.0,
}

// shouldRetry classifies transient errors: server-side failures, throttling
// and dropped connections. Context errors are never retried.
func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError ||
			apiErr.StatusCode == http.StatusTooManyRequests
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	s := strings.ToLower(err.Error())
	for _, needle := range []string{"connection reset", "broken pipe", "eof", "temporarily unavailable"} {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}

// WithRetry runs fn with exponential backoff respecting context cancellation.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if cfg.MaxAttempts <= 0 {
		cfg = DefaultRetryConfig
	}
	backoff := cfg.InitialBackoff
	for attempt := 1; ; attempt++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		if !shouldRetry(err) || attempt >= cfg.MaxAttempts {
			return zero, err
		}

		wait := backoff
		if cfg.MaxBackoff > 0 && wait > cfg.MaxBackoff {
			wait = cfg.MaxBackoff
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
		if cfg.BackoffMultiplier > 1 {
			backoff = time.Duration(float64(backoff) * cfg.BackoffMultiplier)
		}
	}
}
