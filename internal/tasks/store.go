package tasks

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// PostgresStore implements TaskStore interface using PostgreSQL
type PostgresStore struct {
	db *bun.DB
}

// NewPostgresStore creates a new PostgreSQL task store
func NewPostgresStore(db *bun.DB) TaskStore {
	return &PostgresStore{db: db}
}

// ListTasksByUserID retrieves all tasks attributed to the given user ID.
// A task matches either through its direct user reference or through a
// project owned by that user.
func (s *PostgresStore) ListTasksByUserID(ctx context.Context, userID int64) ([]*Task, error) {
	ownedProjects := s.db.NewSelect().
		Table("projects").
		Column("id").
		Where("owner_id = ?", userID)

	var schemas []TaskSchema
	err := s.db.NewSelect().
		Model(&schemas).
		Where("user_id = ?", userID).
		WhereOr("project_id IN (?)", ownedProjects).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for user %d: %w", userID, err)
	}

	tasks := make([]*Task, len(schemas))
	for i, schema := range schemas {
		tasks[i] = TaskSchemaToTask(schema)
	}
	return tasks, nil
}
