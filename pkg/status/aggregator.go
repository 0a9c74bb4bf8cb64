// Package status folds individual backend probes into one SystemStatus
// record. Probe failures are data, never errors: an unreachable backend is
// reported as such while the remaining backends are still classified.
package status

import (
	"context"
	"errors"
	"time"

	"xmrtdash/pkg/cache"
	"xmrtdash/pkg/log"
	"xmrtdash/pkg/models"
	"xmrtdash/pkg/probe"
	"xmrtdash/pkg/provider"
)

const (
	agentHealthPath = "/health"
	meshStatusPath  = "/status"
)

// Backends holds the base URLs of the services the aggregator reports on.
// Populated once at startup and never mutated.
type Backends struct {
	AgentAPIURL string
	MeshAPIURL  string
}

// TreasuryProber reports blockchain connectivity. None is wired today; the
// hook exists so chain probing can be added without touching the fold.
type TreasuryProber interface {
	CheckTreasury(ctx context.Context) models.Status
}

// Aggregator produces SystemStatus snapshots. The cache flag is fixed at
// construction time from a single ping: cache liveness is deliberately not
// re-checked per request, so the flag can go stale until restart.
type Aggregator struct {
	backends    Backends
	prober      *probe.Prober
	treasury    TreasuryProber
	clock       provider.Clock
	cacheStatus models.Status
}

// New builds an Aggregator. pinger may be nil when Redis was unreachable at
// startup; the cache is then reported as disconnected for the process
// lifetime.
func New(ctx context.Context, backends Backends, prober *probe.Prober, pinger cache.Pinger, clock provider.Clock) (*Aggregator, error) {
	if backends.AgentAPIURL == "" || backends.MeshAPIURL == "" {
		return nil, errors.New("aggregator requires agent and mesh backend URLs")
	}
	if prober == nil {
		return nil, errors.New("aggregator requires a prober")
	}
	if clock == nil {
		clock = provider.SystemClock{}
	}

	cacheStatus := models.StatusDisconnected
	if pinger != nil {
		if err := pinger.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis ping failed at startup")
		} else {
			cacheStatus = models.StatusConnected
		}
	}

	return &Aggregator{
		backends:    backends,
		prober:      prober,
		clock:       clock,
		cacheStatus: cacheStatus,
	}, nil
}

// WithTreasuryProber attaches a treasury connectivity check.
func (a *Aggregator) WithTreasuryProber(tp TreasuryProber) *Aggregator {
	a.treasury = tp
	return a
}

// CacheStatus returns the startup cache connectivity flag.
func (a *Aggregator) CacheStatus() models.Status {
	return a.cacheStatus
}

// Snapshot classifies every backend in a fixed order: api, mesh, treasury,
// cache. Each probe is independent; one backend failing never masks the
// classification of another.
func (a *Aggregator) Snapshot(ctx context.Context) (models.SystemStatus, error) {
	now := a.clock.Now()
	if now.IsZero() {
		return models.SystemStatus{}, errors.New("clock returned zero instant")
	}

	st := models.SystemStatus{
		Timestamp:      now.UTC().Format(time.RFC3339),
		APIStatus:      models.StatusUnknown,
		AgentsStatus:   models.StatusUnknown,
		TreasuryStatus: models.StatusUnknown,
		MeshStatus:     models.StatusUnknown,
		RedisStatus:    a.cacheStatus,
	}

	st.APIStatus = a.prober.Check(ctx, a.backends.AgentAPIURL, agentHealthPath)
	st.MeshStatus = a.prober.Check(ctx, a.backends.MeshAPIURL, meshStatusPath)

	if a.treasury != nil {
		st.TreasuryStatus = a.treasury.CheckTreasury(ctx)
	} else {
		// Placeholder until chain connectivity is wired
		st.TreasuryStatus = models.StatusHealthy
	}

	return st, nil
}
