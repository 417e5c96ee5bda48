package projects

import "context"

// ProjectStore defines the read interface for project data.
// Projects are created and mutated by external collaborators; this
// service only queries them by owning user.
type ProjectStore interface {
	ListProjectsByOwnerID(ctx context.Context, ownerID int64) ([]*Project, error)
}
