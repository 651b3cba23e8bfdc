// Package entities contains core business entities.
package entities

import "time"

// Task is a unit of work inside a project, optionally assigned to an
// employee and ordered by deadline in listings.
type Task struct {
	ID            int64
	Name          string
	ProjectID     int64
	AssignedTo    *int64
	DocumentPath  *string
	DocumentURL   *string
	DocumentName  *string
	Deadline      *time.Time
	Priority      *string
	Status        *string
	CompanyID     int64
	Description   *string
	ExpectedHours *float64
	IsActive      bool
	Audit
}

// TaskCreate carries the fields accepted on task creation.
type TaskCreate struct {
	Name          string
	ProjectID     int64
	AssignedTo    *int64
	DocumentPath  *string
	DocumentURL   *string
	DocumentName  *string
	Deadline      *time.Time
	Priority      *string
	Status        *string
	CompanyID     int64
	Description   *string
	ExpectedHours *float64
	CreatedBy     int64
}

// TaskPatch is a partial update; nil fields are left untouched.
type TaskPatch struct {
	Name          *string
	ProjectID     *int64
	AssignedTo    *int64
	DocumentPath  *string
	DocumentURL   *string
	DocumentName  *string
	Deadline      *time.Time
	Priority      *string
	Status        *string
	CompanyID     *int64
	Description   *string
	ExpectedHours *float64
	IsActive      *bool
	UpdatedBy     int64
}

// Empty reports whether the patch carries no updatable field.
func (p TaskPatch) Empty() bool {
	return p.Name == nil && p.ProjectID == nil && p.AssignedTo == nil &&
		p.DocumentPath == nil && p.DocumentURL == nil && p.DocumentName == nil &&
		p.Deadline == nil && p.Priority == nil && p.Status == nil &&
		p.CompanyID == nil && p.Description == nil && p.ExpectedHours == nil &&
		p.IsActive == nil
}

// TaskPageFilter narrows paginated task listings. ManagerID and ProjectName
// filter through the owning project.
type TaskPageFilter struct {
	PageRequest
	ProjectName string
	TaskName    string
	AssignedTo  *int64
	Priority    string
	ManagerID   *int64
}
