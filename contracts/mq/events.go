package mq

// Routing keys on the events exchange.
const (
	RoutingKeyTaskCreated    = "task.created"
	RoutingKeyContextCreated = "context.created"
)

// TaskCreatedPayload is published when a task is created and needs analysis.
type TaskCreatedPayload struct {
	TaskID int `json:"task_id"`
	UserID int `json:"user_id"`
}

// ContextCreatedPayload is published when a context entry is created.
type ContextCreatedPayload struct {
	ContextEntryID int `json:"context_entry_id"`
	UserID         int `json:"user_id"`
}
