// Package entities contains core business entities.
package entities

// User is a login account tied to a company and a role. PasswordHash is a
// bcrypt digest and never leaves the persistence and auth layers.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	IsActive     bool
	RoleID       int64
	CompanyID    int64
	Audit
}

// UserCreate carries the fields accepted on user creation. Password is the
// plaintext credential; it is hashed before it reaches the repository.
type UserCreate struct {
	Email     string
	Password  string
	RoleID    int64
	CompanyID int64
	CreatedBy int64
}

// UserPatch is a partial update; nil fields are left untouched.
type UserPatch struct {
	Email        *string
	PasswordHash *string
	IsActive     *bool
	RoleID       *int64
	CompanyID    *int64
	UpdatedBy    int64
}

// Empty reports whether the patch carries no updatable field.
func (p UserPatch) Empty() bool {
	return p.Email == nil && p.PasswordHash == nil && p.IsActive == nil &&
		p.RoleID == nil && p.CompanyID == nil
}

// UserPageFilter narrows paginated user listings.
type UserPageFilter struct {
	PageRequest
	CompanyID *int64
	RoleID    *int64
	Search    string
}

// Credentials is a login request.
type Credentials struct {
	Email    string
	Password string
}

// AuthToken is an issued bearer token.
type AuthToken struct {
	AccessToken string
	TokenType   string
}

// RoleAdmin is the role id allowed to create users.
const RoleAdmin int64 = 1
