package auth

import "context"

// PrincipalStore defines the lookup interface backing principal resolution
type PrincipalStore interface {
	FindPrincipalByLoginName(ctx context.Context, loginName string) (*Principal, error)
}

// PrincipalResolver defines the contract consumed by the authentication
// layer during login flows. It is never called by the user service.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, loginName string) (*Principal, error)
}
