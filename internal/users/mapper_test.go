package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepresentationRoundTrip(t *testing.T) {
	user := &User{ID: 7, Name: "Dana", LoginName: "dana", CredentialRef: "ref-7"}

	rep := UserToRepresentation(user)
	assert.Equal(t, int64(7), rep.ID)
	assert.Equal(t, "dana", rep.LoginName)
	assert.Equal(t, "ref-7", rep.Password)

	back, err := RepresentationToUser(rep)
	require.NoError(t, err)
	assert.Equal(t, user.ID, back.ID)
	assert.Equal(t, user.Name, back.Name)
	assert.Equal(t, user.LoginName, back.LoginName)
	assert.Equal(t, user.CredentialRef, back.CredentialRef)
}

func TestRepresentationToUserMalformed(t *testing.T) {
	t.Run("MissingID", func(t *testing.T) {
		_, err := RepresentationToUser(UserRepresentation{LoginName: "dana"})
		require.Error(t, err)
		var mappingErr *MappingError
		require.ErrorAs(t, err, &mappingErr)
		assert.Equal(t, "id", mappingErr.Field)
	})

	t.Run("MissingLoginName", func(t *testing.T) {
		_, err := RepresentationToUser(UserRepresentation{ID: 7})
		require.Error(t, err)
		var mappingErr *MappingError
		require.ErrorAs(t, err, &mappingErr)
		assert.Equal(t, "login_name", mappingErr.Field)
	})
}

func TestUsersToRepresentationsPreservesOrder(t *testing.T) {
	input := []*User{
		{ID: 3, LoginName: "carol"},
		{ID: 1, LoginName: "alice"},
		{ID: 2, LoginName: "bob"},
	}

	reps := UsersToRepresentations(input)
	require.Len(t, reps, 3)
	assert.Equal(t, "carol", reps[0].LoginName)
	assert.Equal(t, "alice", reps[1].LoginName)
	assert.Equal(t, "bob", reps[2].LoginName)
}

func TestUsersToRepresentationsEmpty(t *testing.T) {
	reps := UsersToRepresentations([]*User{})
	assert.NotNil(t, reps)
	assert.Empty(t, reps)
}

func TestRepresentationsToUsers(t *testing.T) {
	t.Run("ElementWise", func(t *testing.T) {
		result, err := RepresentationsToUsers([]UserRepresentation{
			{ID: 1, LoginName: "alice"},
			{ID: 2, LoginName: "bob"},
		})
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "alice", result[0].LoginName)
		assert.Equal(t, "bob", result[1].LoginName)
	})

	t.Run("MalformedElementFailsConversion", func(t *testing.T) {
		_, err := RepresentationsToUsers([]UserRepresentation{
			{ID: 1, LoginName: "alice"},
			{ID: 2},
		})
		require.Error(t, err)
		var mappingErr *MappingError
		assert.ErrorAs(t, err, &mappingErr)
	})
}

func TestCreateUserRequestValidate(t *testing.T) {
	valid := CreateUserRequest{ID: 1, LoginName: "alice", Password: "ref"}
	require.NoError(t, valid.Validate())

	user := valid.ToUser()
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice", user.LoginName)
	assert.Equal(t, "ref", user.CredentialRef)
	assert.False(t, user.CreatedAt.IsZero())

	invalid := CreateUserRequest{LoginName: "alice"}
	assert.Error(t, invalid.Validate())
}
