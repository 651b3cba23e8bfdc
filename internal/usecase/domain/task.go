package domain

import (
	"context"
	"fmt"

	"github.com/Harshanand45/WorkNest/internal/entities"
)

// CreateTask validates required fields and creates a task.
func (u *Usecase) CreateTask(ctx context.Context, in entities.TaskCreate) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if in.ProjectID == 0 {
		return nil, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.CreateTask(ctx, in)
}

// UpdateTask applies a partial update to a task and returns the updated row.
func (u *Usecase) UpdateTask(ctx context.Context, id int64, patch entities.TaskPatch) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if patch.Empty() {
		return nil, entities.ErrNoFieldsToUpdate
	}
	return u.repo.UpdateTask(ctx, id, patch)
}

// DeleteTask soft-deletes a task.
func (u *Usecase) DeleteTask(ctx context.Context, id, deletedBy int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteTask(ctx, id, deletedBy)
}

// ListTasks returns all active tasks ordered by nearest deadline.
func (u *Usecase) ListTasks(ctx context.Context) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListTasks(ctx)
}

// TasksByAssignee returns active tasks assigned to the given employee.
func (u *Usecase) TasksByAssignee(ctx context.Context, employeeID int64) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.TasksByAssignee(ctx, employeeID)
}

// TasksByManager returns active tasks under projects managed by the given
// employee.
func (u *Usecase) TasksByManager(ctx context.Context, managerID int64) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.TasksByManager(ctx, managerID)
}

// PaginateTasks returns one window of active tasks.
func (u *Usecase) PaginateTasks(ctx context.Context, filter entities.TaskPageFilter) (entities.Page[entities.Task], error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	filter.Normalize()
	return u.repo.PaginateTasks(ctx, filter)
}
