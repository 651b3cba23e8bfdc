// Package entities contains core business entities.
package entities

// ProjectEmployee links an employee to a project under a project role.
type ProjectEmployee struct {
	ID            int64
	EmpID         int64
	ProjectID     int64
	CompanyID     int64
	ProjectRoleID int64
	IsActive      bool
	Audit
}

// ProjectEmployeeCreate carries the fields accepted on assignment creation.
type ProjectEmployeeCreate struct {
	EmpID         int64
	ProjectID     int64
	CompanyID     int64
	ProjectRoleID int64
	CreatedBy     int64
}

// ProjectEmployeePatch is a partial update; nil fields are left untouched.
type ProjectEmployeePatch struct {
	ProjectID     *int64
	CompanyID     *int64
	ProjectRoleID *int64
	UpdatedBy     int64
}

// Empty reports whether the patch carries no updatable field.
func (p ProjectEmployeePatch) Empty() bool {
	return p.ProjectID == nil && p.CompanyID == nil && p.ProjectRoleID == nil
}

// ProjectEmployeeFilter selects assignments by company and project.
type ProjectEmployeeFilter struct {
	CompanyID int64
	ProjectID int64
	Status    StatusFilter
}
