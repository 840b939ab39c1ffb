package tasks

import "context"

// Task represents a schedulable maintenance task run by the cron service
type Task interface {
	// Execute runs the task with the given context
	Execute(ctx context.Context) error

	// Name returns a human-readable name for the task
	Name() string

	// Schedule returns the cron schedule expression for this task
	// Format: "minute hour day month weekday" or "@every duration"
	// Examples: "0 6 * * *" (daily at 06:00), "@every 5m" (every 5 minutes)
	Schedule() string
}

// TaskManager manages and schedules multiple tasks
type TaskManager interface {
	// RegisterTask adds a task to the manager
	RegisterTask(task Task) error

	// Start begins executing all registered tasks according to their schedules
	Start()

	// Stop gracefully shuts down the task manager
	Stop()

	// GetTasks returns all registered tasks
	GetTasks() []Task
}
