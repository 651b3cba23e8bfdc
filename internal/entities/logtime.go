// Package entities contains core business entities.
package entities

import "time"

// LogTime is a work-time record an employee books against a task.
type LogTime struct {
	ID           int64
	EmpID        int64
	TaskID       int64
	Date         time.Time
	CompanyID    int64
	Description  *string
	MinutesSpent *int
	HoursSpent   *int
	IsActive     bool
	Audit
}

// LogTimeCreate carries the fields accepted on log creation.
type LogTimeCreate struct {
	EmpID        int64
	TaskID       int64
	Date         time.Time
	CompanyID    int64
	Description  *string
	MinutesSpent *int
	HoursSpent   *int
	CreatedBy    int64
}

// LogTimePatch is a partial update; nil fields are left untouched.
type LogTimePatch struct {
	EmpID        *int64
	TaskID       *int64
	Date         *time.Time
	Description  *string
	MinutesSpent *int
	HoursSpent   *int
	UpdatedBy    int64
}

// Empty reports whether the patch carries no updatable field.
func (p LogTimePatch) Empty() bool {
	return p.EmpID == nil && p.TaskID == nil && p.Date == nil &&
		p.Description == nil && p.MinutesSpent == nil && p.HoursSpent == nil
}

// LogTimePageFilter narrows paginated log listings by joined employee name
// or task title.
type LogTimePageFilter struct {
	PageRequest
	EmployeeName string
	TaskTitle    string
}
