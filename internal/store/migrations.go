package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/taskhub/taskhub/internal/projects"
	"github.com/taskhub/taskhub/internal/tasks"
	"github.com/taskhub/taskhub/internal/users"
)

// CreateTables creates all necessary tables for the service
func CreateTables(ctx context.Context, db *bun.DB) error {
	models := []interface{}{
		(*users.UserSchema)(nil),
		(*projects.ProjectSchema)(nil),
		(*tasks.TaskSchema)(nil),
	}

	for _, model := range models {
		_, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create table for model %T: %w", model, err)
		}
	}

	return nil
}

// CreateIndexes creates all necessary indexes for the service
func CreateIndexes(ctx context.Context, db *bun.DB) error {
	allIndexes := append(users.UserIndexes, projects.ProjectIndexes...)
	allIndexes = append(allIndexes, tasks.TaskIndexes...)

	for _, indexSQL := range allIndexes {
		_, err := db.ExecContext(ctx, indexSQL)
		if err != nil {
			return fmt.Errorf("failed to create index with SQL %q: %w", indexSQL, err)
		}
	}

	return nil
}

// Migrate runs table creation and index creation in order
func Migrate(ctx context.Context, db *bun.DB) error {
	if err := CreateTables(ctx, db); err != nil {
		return err
	}
	if err := CreateIndexes(ctx, db); err != nil {
		return err
	}
	return nil
}
