package domain

import (
	"context"
	"fmt"

	"github.com/Harshanand45/WorkNest/internal/entities"
)

// CreateEmployee validates required fields and creates an employee.
func (u *Usecase) CreateEmployee(ctx context.Context, in entities.EmployeeCreate) (*entities.Employee, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if in.Email == "" {
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	if in.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", entities.ErrInvalidArgument)
	}
	return u.repo.CreateEmployee(ctx, in)
}

// UpdateEmployee applies a partial update to an employee.
func (u *Usecase) UpdateEmployee(ctx context.Context, id int64, patch entities.EmployeePatch) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if patch.Empty() {
		return entities.ErrNoFieldsToUpdate
	}
	return u.repo.UpdateEmployee(ctx, id, patch)
}

// DeleteEmployee soft-deletes an employee.
func (u *Usecase) DeleteEmployee(ctx context.Context, id, deletedBy int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteEmployee(ctx, id, deletedBy)
}

// ListEmployees returns all active employees.
func (u *Usecase) ListEmployees(ctx context.Context) ([]entities.Employee, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListEmployees(ctx)
}

// PaginateEmployees returns one window of active employees for a company.
func (u *Usecase) PaginateEmployees(ctx context.Context, filter entities.EmployeePageFilter) (entities.Page[entities.Employee], error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if filter.CompanyID == 0 {
		return entities.Page[entities.Employee]{}, fmt.Errorf("%w: company_id is required", entities.ErrInvalidArgument)
	}
	filter.Normalize()
	return u.repo.PaginateEmployees(ctx, filter)
}
