// Package entities contains core business entities.
package entities

// Employee is a staff member of a company.
type Employee struct {
	ID          int64
	Name        string
	RoleID      int64
	Phone       string
	Address     string
	Email       string
	Description string
	CompanyID   int64
	ImageURL    *string
	ImagePath   *string
	IsActive    bool
	Audit
}

// EmployeeCreate carries the fields accepted on employee creation.
// ImagePath is filled by the transport layer after persisting an uploaded
// base64 image.
type EmployeeCreate struct {
	Name        string
	RoleID      int64
	Phone       string
	Address     string
	Email       string
	Description string
	CompanyID   int64
	ImageURL    *string
	ImagePath   *string
	CreatedBy   int64
}

// EmployeePatch is a partial update; nil fields are left untouched.
type EmployeePatch struct {
	Name        *string
	RoleID      *int64
	Phone       *string
	Address     *string
	Email       *string
	Description *string
	ImageURL    *string
	ImagePath   *string
	UpdatedBy   int64
}

// Empty reports whether the patch carries no updatable field.
func (p EmployeePatch) Empty() bool {
	return p.Name == nil && p.RoleID == nil && p.Phone == nil &&
		p.Address == nil && p.Email == nil && p.Description == nil &&
		p.ImageURL == nil && p.ImagePath == nil
}

// EmployeePageFilter narrows paginated employee listings. The system role
// (id 8) is always excluded from the window.
type EmployeePageFilter struct {
	PageRequest
	CompanyID int64
	RoleID    *int64
	Search    string
}

// SystemRoleID is excluded from employee pagination windows.
const SystemRoleID int64 = 8
