// Package entities contains core business entities.
package entities

import "time"

// Project groups tasks under a company with a managing employee.
type Project struct {
	ID          int64
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	ManagerID   int64
	Priority    string
	Status      string
	CompanyID   int64
	Description *string
	IsActive    bool
	Audit
}

// ProjectCreate carries the fields accepted on project creation.
type ProjectCreate struct {
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	ManagerID   int64
	Priority    string
	Status      string
	CompanyID   int64
	Description *string
	CreatedBy   int64
}

// ProjectPatch is a partial update; nil fields are left untouched.
type ProjectPatch struct {
	Name        *string
	StartDate   *time.Time
	EndDate     *time.Time
	ManagerID   *int64
	Priority    *string
	Status      *string
	Description *string
	IsActive    *bool
	UpdatedBy   int64
}

// Empty reports whether the patch carries no updatable field.
func (p ProjectPatch) Empty() bool {
	return p.Name == nil && p.StartDate == nil && p.EndDate == nil &&
		p.ManagerID == nil && p.Priority == nil && p.Status == nil &&
		p.Description == nil && p.IsActive == nil
}

// ProjectPageFilter narrows paginated project listings.
type ProjectPageFilter struct {
	PageRequest
	Name      string
	Status    string
	Priority  string
	ManagerID *int64
}
