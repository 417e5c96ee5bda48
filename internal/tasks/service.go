package tasks

import (
	"context"
	"fmt"
)

// Service implements the TaskManager interface
type Service struct {
	store TaskStore
}

// NewService creates a new task query service
func NewService(store TaskStore) *Service {
	return &Service{store: store}
}

// ListTasksByUserID returns all tasks attributed to the given user ID,
// directly or through project ownership. An unknown ID degrades to an
// empty list, never an error. This is a pure read and is safe to call
// concurrently with user mutations.
func (s *Service) ListTasksByUserID(ctx context.Context, userID int64) ([]*Task, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("user ID must be a positive integer")
	}
	return s.store.ListTasksByUserID(ctx, userID)
}
