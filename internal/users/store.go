package users

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
)

// PostgresStore implements the UserStore interface using PostgreSQL
type PostgresStore struct {
	db *bun.DB
}

// NewPostgresStore creates a new PostgreSQL user store
func NewPostgresStore(db *bun.DB) UserStore {
	return &PostgresStore{db: db}
}

// CreateUser inserts a new user. The unique constraint on login_name makes
// the duplicate check atomic with the insert: a concurrent create of the
// same login name cannot slip past it.
func (s *PostgresStore) CreateUser(ctx context.Context, user *User) (bool, error) {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	userSchema := UserToUserSchema(user)

	_, err := s.db.NewInsert().
		Model(&userSchema).
		Exec(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return false, nil
		}
		return false, fmt.Errorf("failed to create user: %w", err)
	}

	return true, nil
}

// GetUser retrieves a user by ID from storage
func (s *PostgresStore) GetUser(ctx context.Context, userID int64) (*User, error) {
	var userSchema UserSchema
	err := s.db.NewSelect().
		Model(&userSchema).
		Where("id = ?", userID).
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, NewUserNotFoundError(userID)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return UserSchemaToUser(userSchema), nil
}

// ListUsers retrieves all users ordered by ID
func (s *PostgresStore) ListUsers(ctx context.Context) ([]*User, error) {
	var schemas []UserSchema
	err := s.db.NewSelect().
		Model(&schemas).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*User, len(schemas))
	for i, schema := range schemas {
		users[i] = UserSchemaToUser(schema)
	}
	return users, nil
}

// UpdateUser replaces the mutable columns of the row matching the user's ID.
// Returns false when no row matched.
func (s *PostgresStore) UpdateUser(ctx context.Context, user *User) (bool, error) {
	user.UpdatedAt = time.Now()
	userSchema := UserToUserSchema(user)

	result, err := s.db.NewUpdate().
		Model(&userSchema).
		Column("name", "login_name", "credential_ref", "updated_at").
		Where("id = ?", user.ID).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// DeleteUser removes a user from storage, returning false when no row matched
func (s *PostgresStore) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	result, err := s.db.NewDelete().
		Model((*UserSchema)(nil)).
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}
