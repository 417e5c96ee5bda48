package projects

import (
	"time"

	"github.com/uptrace/bun"
)

// Project represents a body of work owned by exactly one user.
// Ownership is a back-reference by ID; user operations never change it.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	OwnerID     int64     `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectSchema represents the projects table schema in PostgreSQL
type ProjectSchema struct {
	bun.BaseModel `bun:"table:projects,alias:p"`

	ID          int64     `bun:"id,pk" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Description *string   `bun:"description" json:"description,omitempty"`
	OwnerID     int64     `bun:"owner_id,notnull" json:"owner_id"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// ProjectIndexes are created at startup alongside the tables
var ProjectIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_projects_owner_id ON projects (owner_id)`,
}

// ProjectRepresentation is the wire shape of a project
type ProjectRepresentation struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	OwnerID     int64  `json:"owner_id"`
}

// Helper conversion functions
func ProjectSchemaToProject(schema ProjectSchema) *Project {
	project := &Project{
		ID:        schema.ID,
		Name:      schema.Name,
		OwnerID:   schema.OwnerID,
		CreatedAt: schema.CreatedAt,
		UpdatedAt: schema.UpdatedAt,
	}

	if schema.Description != nil {
		project.Description = *schema.Description
	}

	return project
}

// ProjectToRepresentation converts a project entity to its wire shape
func ProjectToRepresentation(project *Project) ProjectRepresentation {
	return ProjectRepresentation{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		OwnerID:     project.OwnerID,
	}
}

// ProjectsToRepresentations converts a list of projects element-wise, preserving order
func ProjectsToRepresentations(projects []*Project) []ProjectRepresentation {
	reps := make([]ProjectRepresentation, len(projects))
	for i, project := range projects {
		reps[i] = ProjectToRepresentation(project)
	}
	return reps
}
