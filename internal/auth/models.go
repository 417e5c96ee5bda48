package auth

import (
	"errors"
	"fmt"
)

// Principal is the read-only projection of a user consumed by the
// authentication layer during login. It is derived on lookup and never
// persisted on its own.
type Principal struct {
	LoginName     string `json:"login_name"`
	CredentialRef string `json:"-"`
}

// PrincipalNotFoundError indicates that no user matched the attempted
// login identifier. It carries the identifier for logging by the caller.
type PrincipalNotFoundError struct {
	LoginName string
}

func (e *PrincipalNotFoundError) Error() string {
	return fmt.Sprintf("no principal found for login name %q", e.LoginName)
}

// NewPrincipalNotFoundError creates an error for a failed principal lookup
func NewPrincipalNotFoundError(loginName string) *PrincipalNotFoundError {
	return &PrincipalNotFoundError{LoginName: loginName}
}

// IsPrincipalNotFound reports whether err is a failed principal lookup
func IsPrincipalNotFound(err error) bool {
	var notFound *PrincipalNotFoundError
	return errors.As(err, &notFound)
}
