package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"xmrtdash/pkg/models"
)

// ClientTestSuite tests the orchestrator client
type ClientTestSuite struct {
	suite.Suite
}

// TestListAgents tests decoding a live agent roster
func (s *ClientTestSuite) TestListAgents() {
	roster := []models.AgentSummary{
		{
			ID:             "governance-agent-001",
			Name:           "Governance Agent",
			Type:           "governance",
			Status:         "active",
			LastActivity:   "2025-06-01T11:55:00Z",
			TasksCompleted: 42,
			SuccessRate:    0.95,
		},
	}

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		s.Equal("/api/agents", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		s.NoError(json.NewEncoder(w).Encode(roster))
	}))
	defer upstream.Close()

	client := New(upstream.URL)
	agents, err := client.ListAgents(context.Background())
	s.Require().NoError(err)
	s.Equal(roster, agents)
}

// TestListAgentsUpstreamError tests that a non-200 answer is an UpstreamError
func (s *ClientTestSuite) TestListAgentsUpstreamError() {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	client := New(upstream.URL)
	_, err := client.ListAgents(context.Background())

	var upstreamErr *UpstreamError
	s.Require().ErrorAs(err, &upstreamErr)
	s.Equal(http.StatusInternalServerError, upstreamErr.StatusCode)
	s.False(upstreamErr.Rejected())
}

// TestListAgentsDeadUpstream tests transport faults from a dead upstream
func (s *ClientTestSuite) TestListAgentsDeadUpstream() {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := upstream.URL
	upstream.Close()

	client := New(deadURL)
	_, err := client.ListAgents(context.Background())
	s.Error(err)
}

// TestCreateAgentAccepted tests a successful upstream creation
func (s *ClientTestSuite) TestCreateAgentAccepted() {
	var received map[string]any
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.NoError(json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer upstream.Close()

	client := New(upstream.URL)
	err := client.CreateAgent(context.Background(), "Test", "governance", map[string]any{"quorum": 3.0})
	s.Require().NoError(err)

	s.Equal("Test", received["name"])
	s.Equal("governance", received["type"])
	s.Equal(map[string]any{"quorum": 3.0}, received["config"])
}

// TestCreateAgentRejected tests that a 4xx answer reports as a rejection
func (s *ClientTestSuite) TestCreateAgentRejected() {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer upstream.Close()

	client := New(upstream.URL)
	err := client.CreateAgent(context.Background(), "Test", "governance", map[string]any{})

	var upstreamErr *UpstreamError
	s.Require().ErrorAs(err, &upstreamErr)
	s.True(upstreamErr.Rejected())
}

// TestNoRetryOnHTTPError tests that HTTP errors are forwarded, not retried
func (s *ClientTestSuite) TestNoRetryOnHTTPError() {
	attempts := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	client := New(upstream.URL)
	_, err := client.ListAgents(context.Background())
	s.Error(err)
	s.Equal(1, attempts)
}

// TestRetryPolicy tests the transport-fault-only retry decision
func (s *ClientTestSuite) TestRetryPolicy() {
	ctx := context.Background()

	retry, err := transportFaultRetryPolicy(ctx, &http.Response{StatusCode: http.StatusBadGateway}, nil)
	s.NoError(err)
	s.False(retry)

	retry, err = transportFaultRetryPolicy(ctx, nil, errors.New("connection refused"))
	s.NoError(err)
	s.True(retry)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	retry, err = transportFaultRetryPolicy(cancelled, nil, errors.New("connection refused"))
	s.Error(err)
	s.False(retry)
}

// TestRequestTimeoutBounded tests that a hung upstream cannot block past the timeout
func (s *ClientTestSuite) TestRequestTimeoutBounded() {
	release := make(chan struct{})
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		upstream.Close()
	}()

	client := New(upstream.URL)
	client.requestTimeout = 100 * time.Millisecond

	start := time.Now()
	_, err := client.ListAgents(context.Background())
	s.Error(err)
	s.Less(time.Since(start), 5*time.Second)
}

// TestClientSuite runs the orchestrator client test suite
func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
