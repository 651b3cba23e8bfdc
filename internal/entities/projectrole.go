// Package entities contains core business entities.
package entities

// ProjectRole is a company-scoped role an employee holds on a project.
type ProjectRole struct {
	ID        int64
	Name      string
	CompanyID int64
	IsActive  bool
	Audit
}

// ProjectRoleCreate carries the fields accepted on project role creation.
type ProjectRoleCreate struct {
	Name      string
	CompanyID int64
	CreatedBy int64
}

// ProjectRolePatch is a partial update; nil fields are left untouched.
type ProjectRolePatch struct {
	Name      *string
	CompanyID *int64
	UpdatedBy int64
}

// Empty reports whether the patch carries no updatable field.
func (p ProjectRolePatch) Empty() bool {
	return p.Name == nil && p.CompanyID == nil
}
