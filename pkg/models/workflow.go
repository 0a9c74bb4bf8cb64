package models

// WorkflowSummary describes one automation workflow and its execution record.
type WorkflowSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Status        string  `json:"status"`
	Executions    int     `json:"executions"`
	SuccessRate   float64 `json:"success_rate"`
	LastExecution string  `json:"last_execution"`
}
