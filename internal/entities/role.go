// Package entities contains core business entities.
package entities

// Role is a company-scoped user role. CompanyName is joined in on reads.
type Role struct {
	ID          int64
	Name        string
	CompanyID   int64
	CompanyName string
	IsActive    bool
	Audit
}

// RoleCreate carries the fields accepted on role creation.
type RoleCreate struct {
	Name      string
	CompanyID int64
	CreatedBy int64
}

// RolePatch is a partial update; nil fields are left untouched.
type RolePatch struct {
	Name      *string
	CompanyID *int64
	UpdatedBy int64
}

// Empty reports whether the patch carries no updatable field.
func (p RolePatch) Empty() bool {
	return p.Name == nil && p.CompanyID == nil
}
