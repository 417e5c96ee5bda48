package tasks

import (
	"time"

	"github.com/uptrace/bun"
)

// Task represents a unit of work attributed to a user, either directly or
// through the project it belongs to.
type Task struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	UserID      int64     `json:"user_id"`
	ProjectID   *int64    `json:"project_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskSchema represents the tasks table schema in PostgreSQL
type TaskSchema struct {
	bun.BaseModel `bun:"table:tasks,alias:t"`

	ID          int64     `bun:"id,pk" json:"id"`
	Description string    `bun:"description,notnull" json:"description"`
	UserID      int64     `bun:"user_id,notnull" json:"user_id"`
	ProjectID   *int64    `bun:"project_id" json:"project_id,omitempty"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// TaskIndexes are created at startup alongside the tables
var TaskIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON tasks (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project_id ON tasks (project_id)`,
}

// TaskRepresentation is the wire shape of a task
type TaskRepresentation struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	UserID      int64  `json:"user_id"`
	ProjectID   *int64 `json:"project_id,omitempty"`
}

// Helper conversion functions
func TaskSchemaToTask(schema TaskSchema) *Task {
	return &Task{
		ID:          schema.ID,
		Description: schema.Description,
		UserID:      schema.UserID,
		ProjectID:   schema.ProjectID,
		CreatedAt:   schema.CreatedAt,
		UpdatedAt:   schema.UpdatedAt,
	}
}

// TaskToRepresentation converts a task entity to its wire shape
func TaskToRepresentation(task *Task) TaskRepresentation {
	return TaskRepresentation{
		ID:          task.ID,
		Description: task.Description,
		UserID:      task.UserID,
		ProjectID:   task.ProjectID,
	}
}

// TasksToRepresentations converts a list of tasks element-wise, preserving order
func TasksToRepresentations(tasks []*Task) []TaskRepresentation {
	reps := make([]TaskRepresentation, len(tasks))
	for i, task := range tasks {
		reps[i] = TaskToRepresentation(task)
	}
	return reps
}
