package users

import "time"

// UserRepresentation is the wire shape of a user. The credential reference
// travels in the password field and is opaque to this layer.
type UserRepresentation struct {
	ID        int64  `json:"id"`
	Name      string `json:"name,omitempty"`
	LoginName string `json:"login_name"`
	Password  string `json:"password,omitempty"`
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	ID        int64  `json:"id"`
	Name      string `json:"name,omitempty"`
	LoginName string `json:"login_name"`
	Password  string `json:"password"`
}

// Validate validates the create user request
func (r *CreateUserRequest) Validate() error {
	if r.ID <= 0 {
		return NewMappingError("id", "id must be a positive integer")
	}
	if r.LoginName == "" {
		return NewMappingError("login_name", "login_name is required")
	}
	return nil
}

// ToUser converts the request to a User
func (r *CreateUserRequest) ToUser() *User {
	now := time.Now()
	return &User{
		ID:            r.ID,
		Name:          r.Name,
		LoginName:     r.LoginName,
		CredentialRef: r.Password,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// UserToRepresentation converts a user entity to its wire shape
func UserToRepresentation(user *User) UserRepresentation {
	return UserRepresentation{
		ID:        user.ID,
		Name:      user.Name,
		LoginName: user.LoginName,
		Password:  user.CredentialRef,
	}
}

// UsersToRepresentations converts a list of users element-wise, preserving order
func UsersToRepresentations(users []*User) []UserRepresentation {
	reps := make([]UserRepresentation, len(users))
	for i, user := range users {
		reps[i] = UserToRepresentation(user)
	}
	return reps
}

// RepresentationToUser converts a wire representation back to a user entity.
// A structurally malformed representation fails with a *MappingError.
func RepresentationToUser(rep UserRepresentation) (*User, error) {
	if rep.ID <= 0 {
		return nil, NewMappingError("id", "id must be a positive integer")
	}
	if rep.LoginName == "" {
		return nil, NewMappingError("login_name", "login_name is required")
	}

	return &User{
		ID:            rep.ID,
		Name:          rep.Name,
		LoginName:     rep.LoginName,
		CredentialRef: rep.Password,
	}, nil
}

// RepresentationsToUsers converts a list of representations element-wise,
// preserving order. The first malformed element fails the whole conversion.
func RepresentationsToUsers(reps []UserRepresentation) ([]*User, error) {
	result := make([]*User, len(reps))
	for i, rep := range reps {
		user, err := RepresentationToUser(rep)
		if err != nil {
			return nil, err
		}
		result[i] = user
	}
	return result, nil
}
