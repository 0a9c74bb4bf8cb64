package models

// ActivityRecord is one entry in the recent-activity feed on the dashboard.
type ActivityRecord struct {
	Timestamp   string `json:"timestamp"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// LogEntry is one synthetic system log line served by /api/logs.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Component string         `json:"component"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details"`
}
