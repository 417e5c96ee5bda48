package projects

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// PostgresStore implements ProjectStore interface using PostgreSQL
type PostgresStore struct {
	db *bun.DB
}

// NewPostgresStore creates a new PostgreSQL project store
func NewPostgresStore(db *bun.DB) ProjectStore {
	return &PostgresStore{db: db}
}

// ListProjectsByOwnerID retrieves all projects owned by the given user ID.
// An unknown owner yields an empty list, not an error.
func (s *PostgresStore) ListProjectsByOwnerID(ctx context.Context, ownerID int64) ([]*Project, error) {
	var schemas []ProjectSchema
	err := s.db.NewSelect().
		Model(&schemas).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects for owner %d: %w", ownerID, err)
	}

	projects := make([]*Project, len(schemas))
	for i, schema := range schemas {
		projects[i] = ProjectSchemaToProject(schema)
	}
	return projects, nil
}
