package users

import (
	"context"

	"github.com/taskhub/taskhub/internal/projects"
)

// UserStore defines the interface for user data persistence.
// Create returns false instead of an error when the login name is already
// taken, and update/delete return false when no row matched - these are
// expected outcomes, not failures.
type UserStore interface {
	CreateUser(ctx context.Context, user *User) (bool, error)
	GetUser(ctx context.Context, userID int64) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateUser(ctx context.Context, user *User) (bool, error)
	DeleteUser(ctx context.Context, userID int64) (bool, error)
}

// UserManager defines the interface for user management operations
type UserManager interface {
	CreateUser(ctx context.Context, user *User) (bool, error)
	GetUser(ctx context.Context, userID int64) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateUser(ctx context.Context, user *User) (bool, error)
	DeleteUser(ctx context.Context, userID int64) (bool, error)
	ListProjectsByUserID(ctx context.Context, userID int64) ([]*projects.Project, error)
}
