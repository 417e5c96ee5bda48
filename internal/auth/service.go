package auth

import (
	"context"
	"fmt"
)

// Service implements the PrincipalResolver interface
type Service struct {
	store PrincipalStore
}

// NewService creates a new principal resolution service
func NewService(store PrincipalStore) *Service {
	return &Service{store: store}
}

// ResolvePrincipal looks up the principal for the given login identifier.
// There are exactly two outcomes: a principal, or a *PrincipalNotFoundError
// carrying the attempted identifier. No retry, no fallback.
func (s *Service) ResolvePrincipal(ctx context.Context, loginName string) (*Principal, error) {
	if loginName == "" {
		return nil, fmt.Errorf("login name is required")
	}
	return s.store.FindPrincipalByLoginName(ctx, loginName)
}
