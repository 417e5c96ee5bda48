package tasks

import "context"

// TaskStore defines the read interface for task data.
// Tasks are created and mutated by external collaborators; this service
// only queries them by attributed user.
type TaskStore interface {
	ListTasksByUserID(ctx context.Context, userID int64) ([]*Task, error)
}

// TaskManager defines the interface for task query operations
type TaskManager interface {
	ListTasksByUserID(ctx context.Context, userID int64) ([]*Task, error)
}
