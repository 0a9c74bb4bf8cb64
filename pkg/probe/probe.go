package probe

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"xmrtdash/pkg/log"
	"xmrtdash/pkg/models"
)

const defaultTimeout = 5 * time.Second

// Prober performs single-attempt bounded health checks against external
// services. One check is one request: no retries, no backoff. A check never
// blocks longer than the configured timeout.
type Prober struct {
	client  *http.Client
	timeout time.Duration
}

// New creates a Prober with the given per-check timeout.
func New(timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Prober{
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// Timeout returns the per-check timeout.
func (p *Prober) Timeout() time.Duration {
	return p.timeout
}

// Check issues one GET against baseURL+path and classifies the outcome:
// HTTP 200 is healthy, any other status is unhealthy, and any transport
// fault (refused, timeout, DNS failure) is unreachable.
func (p *Prober) Check(ctx context.Context, baseURL, path string) models.Status {
	reqCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, baseURL+path, nil)
	if err != nil {
		log.Warn().Err(err).Str("url", baseURL+path).Msg("Health check request could not be built")
		return models.StatusUnreachable
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("url", baseURL+path).Msg("Health check transport fault")
		return models.StatusUnreachable
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("Failed to close health check response body")
		}
	}()

	// Drain so the connection can be reused between polls
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusOK {
		return models.StatusHealthy
	}
	return models.StatusUnhealthy
}

// IsTimeoutOrConnectionError reports whether err is a transport-level fault
// (timeout, refused connection, DNS failure) rather than an HTTP-level error.
func IsTimeoutOrConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		var opErr *net.OpError
		if errors.As(urlErr.Err, &opErr) {
			return true
		}
		return urlErr.Timeout()
	}

	var opErr *net.OpError
	return errors.As(err, &opErr)
}
