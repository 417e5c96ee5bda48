package auth

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/taskhub/taskhub/internal/users"
)

// PostgresStore implements PrincipalStore by projecting principals out of
// the users table
type PostgresStore struct {
	db *bun.DB
}

// NewPostgresStore creates a new PostgreSQL principal store
func NewPostgresStore(db *bun.DB) PrincipalStore {
	return &PostgresStore{db: db}
}

// FindPrincipalByLoginName looks up the user row matching the login name
// and projects it into a principal
func (s *PostgresStore) FindPrincipalByLoginName(ctx context.Context, loginName string) (*Principal, error) {
	var userSchema users.UserSchema
	err := s.db.NewSelect().
		Model(&userSchema).
		Column("login_name", "credential_ref").
		Where("login_name = ?", loginName).
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, NewPrincipalNotFoundError(loginName)
		}
		return nil, fmt.Errorf("failed to look up principal: %w", err)
	}

	return &Principal{
		LoginName:     userSchema.LoginName,
		CredentialRef: userSchema.CredentialRef,
	}, nil
}
