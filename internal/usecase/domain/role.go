package domain

import (
	"context"
	"fmt"

	"github.com/Harshanand45/WorkNest/internal/entities"
)

// CreateRole validates required fields and creates a role.
func (u *Usecase) CreateRole(ctx context.Context, in entities.RoleCreate) (*entities.Role, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if in.Name == "" {
		return nil, fmt.Errorf("%w: role is required", entities.ErrInvalidArgument)
	}
	return u.repo.CreateRole(ctx, in)
}

// UpdateRole applies a partial update to a role.
func (u *Usecase) UpdateRole(ctx context.Context, id int64, patch entities.RolePatch) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if patch.Empty() {
		return entities.ErrNoFieldsToUpdate
	}
	return u.repo.UpdateRole(ctx, id, patch)
}

// DeleteRole soft-deletes a role.
func (u *Usecase) DeleteRole(ctx context.Context, id, deletedBy int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteRole(ctx, id, deletedBy)
}

// ListRoles returns all active roles.
func (u *Usecase) ListRoles(ctx context.Context) ([]entities.Role, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListRoles(ctx)
}

// PaginateRoles returns one window of active roles.
func (u *Usecase) PaginateRoles(ctx context.Context, req entities.PageRequest) (entities.Page[entities.Role], error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	req.Normalize()
	return u.repo.PaginateRoles(ctx, req)
}
