package users

import (
	"time"

	"github.com/uptrace/bun"
)

// User represents a registered account in the system.
// Related projects and tasks reference it by ID only.
type User struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name,omitempty"`
	LoginName     string    `json:"login_name"`
	CredentialRef string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UserSchema represents the users table schema in PostgreSQL
type UserSchema struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID            int64     `bun:"id,pk" json:"id"`
	Name          *string   `bun:"name" json:"name,omitempty"`
	LoginName     string    `bun:"login_name,notnull,unique" json:"login_name"`
	CredentialRef string    `bun:"credential_ref,notnull" json:"credential_ref"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// UserIndexes are created at startup alongside the tables
var UserIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_login_name ON users (login_name)`,
}

// Helper conversion functions
func UserSchemaToUser(schema UserSchema) *User {
	user := &User{
		ID:            schema.ID,
		LoginName:     schema.LoginName,
		CredentialRef: schema.CredentialRef,
		CreatedAt:     schema.CreatedAt,
		UpdatedAt:     schema.UpdatedAt,
	}

	if schema.Name != nil {
		user.Name = *schema.Name
	}

	return user
}

func UserToUserSchema(user *User) UserSchema {
	var name *string
	if user.Name != "" {
		name = &user.Name
	}

	return UserSchema{
		ID:            user.ID,
		Name:          name,
		LoginName:     user.LoginName,
		CredentialRef: user.CredentialRef,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}
