package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTaskStore struct {
	byUser map[int64][]*Task
}

func (s *fakeTaskStore) ListTasksByUserID(ctx context.Context, userID int64) ([]*Task, error) {
	result := s.byUser[userID]
	if result == nil {
		result = []*Task{}
	}
	return result, nil
}

func TestListTasksByUserID(t *testing.T) {
	ctx := context.Background()
	projectID := int64(20)
	store := &fakeTaskStore{byUser: map[int64][]*Task{
		1: {
			{ID: 100, Description: "write report", UserID: 1},
			{ID: 101, Description: "review design", UserID: 1, ProjectID: &projectID},
		},
	}}
	svc := NewService(store)

	t.Run("UserWithTasks", func(t *testing.T) {
		result, err := svc.ListTasksByUserID(ctx, 1)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "write report", result[0].Description)
		require.NotNil(t, result[1].ProjectID)
		assert.Equal(t, projectID, *result[1].ProjectID)
	})

	t.Run("UnknownUserYieldsEmptyList", func(t *testing.T) {
		result, err := svc.ListTasksByUserID(ctx, 999)
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("NonPositiveID", func(t *testing.T) {
		_, err := svc.ListTasksByUserID(ctx, 0)
		assert.Error(t, err)
	})
}

func TestTasksToRepresentationsPreservesOrder(t *testing.T) {
	input := []*Task{
		{ID: 2, Description: "second", UserID: 1},
		{ID: 1, Description: "first", UserID: 1},
	}

	reps := TasksToRepresentations(input)
	require.Len(t, reps, 2)
	assert.Equal(t, int64(2), reps[0].ID)
	assert.Equal(t, int64(1), reps[1].ID)
}
