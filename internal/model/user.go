package model

import "context"

// UserStore defines in-memory storage operations for users.
type UserStore interface {
	Create(ctx context.Context, params CreateUserParams) (User, error)
	GetByID(ctx context.Context, id int) (User, error)
	List(ctx context.Context, filter UserFilter) ([]User, error)
	Update(ctx context.Context, id int, params UpdateUserParams) (User, error)
	Delete(ctx context.Context, id int) (User, error)
	Count(ctx context.Context) int
	Seed(ctx context.Context, users []User) error
}

// Role enumerates user roles.
type Role string

const (
	// RoleAdmin is an administrator.
	RoleAdmin Role = "admin"
	// RoleUser is a regular user.
	RoleUser Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents a stored user.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Merge applies the fields present in params and keeps the identifier.
func (u User) Merge(params UpdateUserParams) User {
	if params.Name != nil {
		u.Name = *params.Name
	}
	if params.Email != nil {
		u.Email = *params.Email
	}
	if params.Role != nil {
		u.Role = *params.Role
	}
	return u
}

// CreateUserParams contains parameters to create a user.
type CreateUserParams struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// UpdateUserParams contains a partial user update. Nil fields are left untouched.
type UpdateUserParams struct {
	ID    *int    `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *Role   `json:"role"`
}

// UserFilter narrows a user listing. An ID filter takes precedence over every other field.
type UserFilter struct {
	ID   *int
	Role *Role
}
