package users

import (
	"context"
	"fmt"

	"github.com/taskhub/taskhub/internal/projects"
)

// Service implements the UserManager interface
type Service struct {
	store        UserStore
	projectStore projects.ProjectStore
}

// NewService creates a new user service
func NewService(store UserStore, projectStore projects.ProjectStore) *Service {
	return &Service{
		store:        store,
		projectStore: projectStore,
	}
}

// CreateUser persists the candidate user unless its login name is already
// taken. The duplicate case returns false without side effects - it is an
// expected outcome, not an error. The uniqueness check is atomic with the
// insert; it rides the unique constraint on the login name column.
func (s *Service) CreateUser(ctx context.Context, user *User) (bool, error) {
	if user == nil {
		return false, fmt.Errorf("user is required")
	}
	if user.ID <= 0 {
		return false, fmt.Errorf("user ID must be a positive integer")
	}
	if user.LoginName == "" {
		return false, fmt.Errorf("login name is required")
	}
	return s.store.CreateUser(ctx, user)
}

// GetUser retrieves a user by ID. An absent ID fails with a not_found
// *UserError; callers convert that into a not-found response.
func (s *Service) GetUser(ctx context.Context, userID int64) (*User, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("user ID must be a positive integer")
	}
	return s.store.GetUser(ctx, userID)
}

// ListUsers returns all persisted users in ascending ID order
func (s *Service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.store.ListUsers(ctx)
}

// UpdateUser replaces the mutable fields of the stored user matching the
// given ID. Replacement is whole-record: zero-valued fields in the input
// overwrite prior values. Returns false when no such ID exists.
func (s *Service) UpdateUser(ctx context.Context, user *User) (bool, error) {
	if user == nil {
		return false, fmt.Errorf("user is required")
	}
	if user.ID <= 0 {
		return false, fmt.Errorf("user ID must be a positive integer")
	}
	if user.LoginName == "" {
		return false, fmt.Errorf("login name is required")
	}
	return s.store.UpdateUser(ctx, user)
}

// DeleteUser removes the user with the given ID, returning false when
// absent. Owned projects and tasks are not cascade-deleted.
func (s *Service) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	if userID <= 0 {
		return false, fmt.Errorf("user ID must be a positive integer")
	}
	return s.store.DeleteUser(ctx, userID)
}

// ListProjectsByUserID returns all projects owned by the given user ID.
// User existence is not re-validated here: an unknown ID degrades to an
// empty list.
func (s *Service) ListProjectsByUserID(ctx context.Context, userID int64) ([]*projects.Project, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("user ID must be a positive integer")
	}
	return s.projectStore.ListProjectsByOwnerID(ctx, userID)
}
