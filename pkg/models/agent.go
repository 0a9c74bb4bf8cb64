package models

// AgentSummary describes one agent known to the orchestrator.
type AgentSummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Status         string  `json:"status"`
	LastActivity   string  `json:"last_activity"`
	TasksCompleted int     `json:"tasks_completed"`
	SuccessRate    float64 `json:"success_rate"`
}

// CreateAgentRequest is the body of POST /api/agents. Config is kept as a
// raw map because agent configuration schemas are owned by the orchestrator.
type CreateAgentRequest struct {
	Name   *string        `json:"name"`
	Type   *string        `json:"type"`
	Config map[string]any `json:"config"`
}

// CreateAgentResponse reports the outcome of an agent creation.
type CreateAgentResponse struct {
	Success bool   `json:"success"`
	AgentID string `json:"agent_id,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
