package domain

import (
	"context"
	"fmt"

	"github.com/Harshanand45/WorkNest/internal/entities"
)

// CreateProjectEmployee validates references and links an employee to a
// project.
func (u *Usecase) CreateProjectEmployee(ctx context.Context, in entities.ProjectEmployeeCreate) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if in.EmpID == 0 || in.ProjectID == 0 || in.CompanyID == 0 || in.ProjectRoleID == 0 {
		return fmt.Errorf("%w: emp_id, project_id, company_id and project_role_id are required", entities.ErrInvalidArgument)
	}
	return u.repo.CreateProjectEmployee(ctx, in)
}

// UpdateProjectEmployee applies a partial update to an assignment.
func (u *Usecase) UpdateProjectEmployee(ctx context.Context, id int64, patch entities.ProjectEmployeePatch) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if patch.Empty() {
		return entities.ErrNoFieldsToUpdate
	}
	return u.repo.UpdateProjectEmployee(ctx, id, patch)
}

// DeleteProjectEmployee soft-deletes an assignment.
func (u *Usecase) DeleteProjectEmployee(ctx context.Context, id, deletedBy int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteProjectEmployee(ctx, id, deletedBy)
}

// ListProjectEmployees returns assignments matching the soft-delete filter.
func (u *Usecase) ListProjectEmployees(ctx context.Context, status entities.StatusFilter) ([]entities.ProjectEmployee, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListProjectEmployees(ctx, status)
}

// ProjectEmployeesByCompanyProject returns assignments for one project of
// one company.
func (u *Usecase) ProjectEmployeesByCompanyProject(ctx context.Context, filter entities.ProjectEmployeeFilter) ([]entities.ProjectEmployee, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if filter.CompanyID == 0 || filter.ProjectID == 0 {
		return nil, fmt.Errorf("%w: company_id and project_id are required", entities.ErrInvalidArgument)
	}
	return u.repo.ProjectEmployeesByCompanyProject(ctx, filter)
}
