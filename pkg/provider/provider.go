// Package provider serves fixture data for every dashboard surface that is
// not yet wired to a live backend. Each function is pure in the injected
// clock: same instant in, same records out. The field names and types form
// the response contract real backends must honor when they replace these.
package provider

import (
	"fmt"
	"strings"
	"time"

	"xmrtdash/pkg/models"
)

const (
	// Synthetic log feed never yields more than this many entries.
	maxLogEntries = 20

	// DefaultLogLimit applies when /api/logs has no limit parameter.
	DefaultLogLimit = 100

	// DefaultLogLevel applies when /api/logs has no level parameter.
	DefaultLogLevel = "INFO"
)

// Agents returns the active agent roster.
func Agents(clock Clock) []models.AgentSummary {
	now := clock.Now()
	return []models.AgentSummary{
		{
			ID:             "governance-agent-001",
			Name:           "Governance Agent",
			Type:           "governance",
			Status:         "active",
			LastActivity:   stamp(now.Add(-5 * time.Minute)),
			TasksCompleted: 42,
			SuccessRate:    0.95,
		},
		{
			ID:             "treasury-agent-001",
			Name:           "Treasury Agent",
			Type:           "treasury",
			Status:         "active",
			LastActivity:   stamp(now.Add(-2 * time.Minute)),
			TasksCompleted: 28,
			SuccessRate:    0.98,
		},
		{
			ID:             "mining-coordinator-001",
			Name:           "Mining Coordinator",
			Type:           "mining",
			Status:         "idle",
			LastActivity:   stamp(now.Add(-1 * time.Hour)),
			TasksCompleted: 156,
			SuccessRate:    0.92,
		},
	}
}

// Treasury returns the treasury holdings snapshot.
func Treasury(clock Clock) models.TreasurySnapshot {
	now := clock.Now()
	return models.TreasurySnapshot{
		TotalValueLocked: 1250000.50,
		XMRTBalance:      850000.25,
		ETHBalance:       125.75,
		USDCBalance:      275000.00,
		RecentTransactions: []models.TreasuryTransaction{
			{
				Hash:      "0x1234...5678",
				Type:      "reward_distribution",
				Amount:    5000.00,
				Timestamp: stamp(now.Add(-2 * time.Hour)),
			},
			{
				Hash:      "0x9876...4321",
				Type:      "fee_collection",
				Amount:    125.50,
				Timestamp: stamp(now.Add(-6 * time.Hour)),
			},
		},
	}
}

// Workflows returns the automation workflow roster.
func Workflows(clock Clock) []models.WorkflowSummary {
	now := clock.Now()
	return []models.WorkflowSummary{
		{
			ID:            "proposal-processing",
			Name:          "Proposal Processing Workflow",
			Status:        "active",
			Executions:    15,
			SuccessRate:   0.93,
			LastExecution: stamp(now.Add(-2 * time.Hour)),
		},
		{
			ID:            "reward-distribution",
			Name:          "Reward Distribution Workflow",
			Status:        "scheduled",
			Executions:    8,
			SuccessRate:   1.0,
			LastExecution: stamp(now.Add(-24 * time.Hour)),
		},
	}
}

// Activities returns the recent-activity feed for the dashboard page.
func Activities(clock Clock) []models.ActivityRecord {
	now := clock.Now()
	return []models.ActivityRecord{
		{
			Timestamp:   stamp(now.Add(-5 * time.Minute)),
			Type:        "agent_action",
			Description: "Governance Agent processed proposal #42",
			Status:      "success",
		},
		{
			Timestamp:   stamp(now.Add(-15 * time.Minute)),
			Type:        "treasury_action",
			Description: "Reward distribution completed",
			Status:      "success",
		},
		{
			Timestamp:   stamp(now.Add(-1 * time.Hour)),
			Type:        "system_event",
			Description: "New mining cluster formed",
			Status:      "info",
		},
	}
}

// Logs returns up to limit synthetic log entries, newest first, spaced five
// minutes apart. The feed tops out at maxLogEntries regardless of limit.
func Logs(clock Clock, limit int, level string) []models.LogEntry {
	if limit > maxLogEntries {
		limit = maxLogEntries
	}
	if limit < 0 {
		limit = 0
	}
	if level == "" {
		level = DefaultLogLevel
	}

	now := clock.Now()
	logs := make([]models.LogEntry, 0, limit)
	for i := 0; i < limit; i++ {
		logs = append(logs, models.LogEntry{
			Timestamp: stamp(now.Add(-time.Duration(i) * 5 * time.Minute)),
			Level:     level,
			Component: "dashboard",
			Message:   fmt.Sprintf("Sample log message %d", i+1),
			Details:   map[string]any{},
		})
	}
	return logs
}

// AgentID composes the identifier for a newly created agent from its type
// and the creation instant: <type>-agent-YYYYMMDDHHMMSS.
func AgentID(clock Clock, agentType string) string {
	return strings.ToLower(agentType) + "-agent-" + clock.Now().UTC().Format("20060102150405")
}
