package domain

import (
	"context"
	"fmt"

	"github.com/Harshanand45/WorkNest/internal/entities"
)

// CreateProject validates required fields and creates a project.
func (u *Usecase) CreateProject(ctx context.Context, in entities.ProjectCreate) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, fmt.Errorf("%w: end_date must not precede start_date", entities.ErrInvalidArgument)
	}
	return u.repo.CreateProject(ctx, in)
}

// UpdateProject applies a partial update to a project.
func (u *Usecase) UpdateProject(ctx context.Context, id int64, patch entities.ProjectPatch) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if patch.Empty() {
		return entities.ErrNoFieldsToUpdate
	}
	if patch.StartDate != nil || patch.EndDate != nil {
		start, end := patch.StartDate, patch.EndDate
		// A one-sided date patch is checked against the stored counterpart.
		if start == nil || end == nil {
			stored, err := u.repo.GetProject(ctx, id)
			if err != nil {
				return err
			}
			if start == nil {
				start = &stored.StartDate
			}
			if end == nil {
				end = &stored.EndDate
			}
		}
		if end.Before(*start) {
			return fmt.Errorf("%w: end_date must not precede start_date", entities.ErrInvalidArgument)
		}
	}
	return u.repo.UpdateProject(ctx, id, patch)
}

// DeleteProject soft-deletes a project.
func (u *Usecase) DeleteProject(ctx context.Context, id, deletedBy int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteProject(ctx, id, deletedBy)
}

// ListProjects returns all active projects.
func (u *Usecase) ListProjects(ctx context.Context) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListProjects(ctx)
}

// GetProject fetches one active project by id.
func (u *Usecase) GetProject(ctx context.Context, id int64) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetProject(ctx, id)
}

// ProjectsByManager returns active projects managed by the given employee.
func (u *Usecase) ProjectsByManager(ctx context.Context, managerID int64) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ProjectsByManager(ctx, managerID)
}

// PaginateProjects returns one window of active projects.
func (u *Usecase) PaginateProjects(ctx context.Context, filter entities.ProjectPageFilter) (entities.Page[entities.Project], error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	filter.Normalize()
	return u.repo.PaginateProjects(ctx, filter)
}
