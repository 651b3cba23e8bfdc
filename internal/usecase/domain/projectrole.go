package domain

import (
	"context"
	"fmt"

	"github.com/Harshanand45/WorkNest/internal/entities"
)

// CreateProjectRole validates required fields and creates a project role.
func (u *Usecase) CreateProjectRole(ctx context.Context, in entities.ProjectRoleCreate) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if in.Name == "" {
		return fmt.Errorf("%w: role is required", entities.ErrInvalidArgument)
	}
	if in.CompanyID == 0 {
		return fmt.Errorf("%w: company_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.CreateProjectRole(ctx, in)
}

// UpdateProjectRole applies a partial update to a project role.
func (u *Usecase) UpdateProjectRole(ctx context.Context, id int64, patch entities.ProjectRolePatch) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if patch.Empty() {
		return entities.ErrNoFieldsToUpdate
	}
	return u.repo.UpdateProjectRole(ctx, id, patch)
}

// DeleteProjectRole soft-deletes a project role.
func (u *Usecase) DeleteProjectRole(ctx context.Context, id, deletedBy int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteProjectRole(ctx, id, deletedBy)
}

// ListProjectRoles returns all active project roles.
func (u *Usecase) ListProjectRoles(ctx context.Context) ([]entities.ProjectRole, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListProjectRoles(ctx)
}
