package users

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub/internal/projects"
)

// fakeUserStore is an in-memory UserStore with the same outcome semantics
// as the PostgreSQL implementation
type fakeUserStore struct {
	users map[int64]*User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*User)}
}

func (s *fakeUserStore) CreateUser(ctx context.Context, user *User) (bool, error) {
	for _, existing := range s.users {
		if existing.LoginName == user.LoginName {
			return false, nil
		}
	}
	copied := *user
	s.users[user.ID] = &copied
	return true, nil
}

func (s *fakeUserStore) GetUser(ctx context.Context, userID int64) (*User, error) {
	user, ok := s.users[userID]
	if !ok {
		return nil, NewUserNotFoundError(userID)
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) ListUsers(ctx context.Context) ([]*User, error) {
	ids := make([]int64, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]*User, len(ids))
	for i, id := range ids {
		copied := *s.users[id]
		result[i] = &copied
	}
	return result, nil
}

func (s *fakeUserStore) UpdateUser(ctx context.Context, user *User) (bool, error) {
	if _, ok := s.users[user.ID]; !ok {
		return false, nil
	}
	copied := *user
	s.users[user.ID] = &copied
	return true, nil
}

func (s *fakeUserStore) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	if _, ok := s.users[userID]; !ok {
		return false, nil
	}
	delete(s.users, userID)
	return true, nil
}

// fakeProjectStore serves a fixed owner-to-projects mapping
type fakeProjectStore struct {
	byOwner map[int64][]*projects.Project
}

func (s *fakeProjectStore) ListProjectsByOwnerID(ctx context.Context, ownerID int64) ([]*projects.Project, error) {
	result := s.byOwner[ownerID]
	if result == nil {
		result = []*projects.Project{}
	}
	return result, nil
}

func newTestService() (*Service, *fakeUserStore, *fakeProjectStore) {
	userStore := newFakeUserStore()
	projectStore := &fakeProjectStore{byOwner: make(map[int64][]*projects.Project)}
	return NewService(userStore, projectStore), userStore, projectStore
}

func TestCreateUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	candidate := &User{ID: 1, Name: "Alice", LoginName: "alice", CredentialRef: "secret-ref"}

	created, err := svc.CreateUser(ctx, candidate)
	require.NoError(t, err)
	require.True(t, created)

	got, err := svc.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, candidate.ID, got.ID)
	assert.Equal(t, candidate.Name, got.Name)
	assert.Equal(t, candidate.LoginName, got.LoginName)
	assert.Equal(t, candidate.CredentialRef, got.CredentialRef)
}

func TestCreateUserDuplicateLoginName(t *testing.T) {
	ctx := context.Background()
	svc, userStore, _ := newTestService()

	created, err := svc.CreateUser(ctx, &User{ID: 1, LoginName: "alice"})
	require.NoError(t, err)
	require.True(t, created)

	// Same login name, different ID: expected outcome, not an error
	created, err = svc.CreateUser(ctx, &User{ID: 2, LoginName: "alice"})
	require.NoError(t, err)
	assert.False(t, created)

	// Persisted state is unchanged by the rejected create
	all, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, "alice", all[0].LoginName)
	assert.Len(t, userStore.users, 1)
}

func TestCreateUserValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	t.Run("NilUser", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, nil)
		assert.Error(t, err)
	})

	t.Run("NonPositiveID", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, &User{ID: 0, LoginName: "bob"})
		assert.Error(t, err)
	})

	t.Run("EmptyLoginName", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, &User{ID: 3})
		assert.Error(t, err)
	})
}

func TestGetUserNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.GetUser(ctx, 42)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestUpdateUserReplacesRecord(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	created, err := svc.CreateUser(ctx, &User{ID: 1, Name: "Alice", LoginName: "alice", CredentialRef: "old-ref"})
	require.NoError(t, err)
	require.True(t, created)

	// Whole-record replacement: the omitted name overwrites the prior value
	updated, err := svc.UpdateUser(ctx, &User{ID: 1, LoginName: "alice2", CredentialRef: "new-ref"})
	require.NoError(t, err)
	require.True(t, updated)

	got, err := svc.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "", got.Name)
	assert.Equal(t, "alice2", got.LoginName)
	assert.Equal(t, "new-ref", got.CredentialRef)
}

func TestUpdateUserNonexistentID(t *testing.T) {
	ctx := context.Background()
	svc, userStore, _ := newTestService()

	updated, err := svc.UpdateUser(ctx, &User{ID: 99, LoginName: "ghost"})
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Empty(t, userStore.users)
}

func TestDeleteUserThenGet(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	created, err := svc.CreateUser(ctx, &User{ID: 1, LoginName: "alice"})
	require.NoError(t, err)
	require.True(t, created)

	deleted, err := svc.DeleteUser(ctx, 1)
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = svc.GetUser(ctx, 1)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	// A second delete reports the absence, not an error
	deleted, err = svc.DeleteUser(ctx, 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListProjectsByUserID(t *testing.T) {
	ctx := context.Background()
	svc, _, projectStore := newTestService()

	projectStore.byOwner[1] = []*projects.Project{
		{ID: 10, Name: "Apollo", OwnerID: 1},
		{ID: 11, Name: "Borealis", OwnerID: 1},
	}

	t.Run("OwnerWithProjects", func(t *testing.T) {
		result, err := svc.ListProjectsByUserID(ctx, 1)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, int64(10), result[0].ID)
		assert.Equal(t, int64(11), result[1].ID)
	})

	t.Run("UnknownOwnerYieldsEmptyList", func(t *testing.T) {
		result, err := svc.ListProjectsByUserID(ctx, 999)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

// TestUserLifecycleScenario walks the full create/duplicate/list/delete flow
func TestUserLifecycleScenario(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	created, err := svc.CreateUser(ctx, &User{ID: 1, LoginName: "alice"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.CreateUser(ctx, &User{ID: 2, LoginName: "alice"})
	require.NoError(t, err)
	assert.False(t, created)

	all, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, "alice", all[0].LoginName)

	deleted, err := svc.DeleteUser(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.GetUser(ctx, 1)
	assert.True(t, IsNotFound(err))
}
