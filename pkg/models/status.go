package models

// Status classifies the reachability of a single backend.
type Status string

const (
	StatusHealthy      Status = "healthy"
	StatusUnhealthy    Status = "unhealthy"
	StatusUnreachable  Status = "unreachable"
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
	StatusUnknown      Status = "unknown"
)

// SystemStatus is a point-in-time view of every backend the dashboard
// reports on. Built fresh per request, never persisted.
type SystemStatus struct {
	Timestamp      string `json:"timestamp"`
	APIStatus      Status `json:"api_status"`
	AgentsStatus   Status `json:"agents_status"`
	TreasuryStatus Status `json:"treasury_status"`
	MeshStatus     Status `json:"mesh_status"`
	RedisStatus    Status `json:"redis_status"`
}
