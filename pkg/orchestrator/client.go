// Package orchestrator is the outbound client for the agent orchestrator
// API. The dashboard uses it to list live agents and to forward agent
// creation; when the orchestrator is down the caller falls back to fixture
// data, so every method here reports faults instead of hiding them.
package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"xmrtdash/pkg/log"
	"xmrtdash/pkg/models"
)

const (
	defaultRetryMax       = 2
	defaultRetryWaitMin   = 100 * time.Millisecond
	defaultRetryWaitMax   = 1 * time.Second
	defaultRequestTimeout = 5 * time.Second

	agentsPath = "/api/agents"
)

// Client talks to the agent orchestrator.
type Client struct {
	baseURL        string
	client         *retryablehttp.Client
	requestTimeout time.Duration
}

// New creates an orchestrator client for the given base URL.
func New(baseURL string) *Client {
	client := retryablehttp.NewClient()
	client.RetryMax = defaultRetryMax
	client.RetryWaitMin = defaultRetryWaitMin
	client.RetryWaitMax = defaultRetryWaitMax
	client.Logger = nil // Disable retryablehttp logging
	// Retry only on connection/timeout errors. HTTP errors are the
	// orchestrator's answer and must be forwarded, not retried.
	client.CheckRetry = transportFaultRetryPolicy

	return &Client{
		baseURL:        baseURL,
		client:         client,
		requestTimeout: defaultRequestTimeout,
	}
}

// ListAgents fetches the live agent roster from the orchestrator.
func (c *Client) ListAgents(ctx context.Context) ([]models.AgentSummary, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	req, err := retryablehttp.NewRequestWithContext(reqCtx, http.MethodGet, c.baseURL+agentsPath, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("Failed to close agent list response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	var agents []models.AgentSummary
	if err := json.NewDecoder(resp.Body).Decode(&agents); err != nil {
		return nil, fmt.Errorf("decode agent list: %w", err)
	}
	return agents, nil
}

// CreateAgent forwards an agent creation to the orchestrator. A 2xx answer
// is acceptance; any 4xx is an explicit rejection surfaced as UpstreamError.
func (c *Client) CreateAgent(ctx context.Context, name, agentType string, config map[string]any) error {
	body, err := json.Marshal(map[string]any{
		"name":   name,
		"type":   agentType,
		"config": config,
	})
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	req, err := retryablehttp.NewRequestWithContext(reqCtx, http.MethodPost, c.baseURL+agentsPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("Failed to close agent creation response body")
		}
	}()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}
	return &UpstreamError{StatusCode: resp.StatusCode}
}

// UpstreamError is a non-success HTTP answer from the orchestrator.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return "orchestrator returned status " + http.StatusText(e.StatusCode)
}

// Rejected reports whether the orchestrator explicitly refused the request,
// as opposed to failing on its side.
func (e *UpstreamError) Rejected() bool {
	return e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError
}

// transportFaultRetryPolicy retries only when no response was received.
// Responses, including 4xx and 5xx, are forwarded as-is.
func transportFaultRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if resp != nil {
		return false, nil
	}
	if err != nil {
		return true, nil //nolint:nilerr // retryablehttp reports the final error itself
	}
	return false, nil
}
