package domain

import (
	"context"
	"fmt"

	"github.com/Harshanand45/WorkNest/internal/entities"
)

// CreateLogTime validates required fields and books a work log.
func (u *Usecase) CreateLogTime(ctx context.Context, in entities.LogTimeCreate) (*entities.LogTime, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if in.EmpID == 0 {
		return nil, fmt.Errorf("%w: emp_id is required", entities.ErrInvalidArgument)
	}
	if in.TaskID == 0 {
		return nil, fmt.Errorf("%w: task_id is required", entities.ErrInvalidArgument)
	}
	if in.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", entities.ErrInvalidArgument)
	}
	return u.repo.CreateLogTime(ctx, in)
}

// UpdateLogTime applies a partial update to a work log.
func (u *Usecase) UpdateLogTime(ctx context.Context, id int64, patch entities.LogTimePatch) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if patch.Empty() {
		return entities.ErrNoFieldsToUpdate
	}
	return u.repo.UpdateLogTime(ctx, id, patch)
}

// DeleteLogTime soft-deletes a work log.
func (u *Usecase) DeleteLogTime(ctx context.Context, id, deletedBy int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteLogTime(ctx, id, deletedBy)
}

// ListLogTimes returns all active work logs.
func (u *Usecase) ListLogTimes(ctx context.Context) ([]entities.LogTime, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListLogTimes(ctx)
}

// LogTimesByTask returns active work logs booked against the given task.
func (u *Usecase) LogTimesByTask(ctx context.Context, taskID int64) ([]entities.LogTime, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.LogTimesByTask(ctx, taskID)
}

// PaginateLogTimes returns one window of active work logs.
func (u *Usecase) PaginateLogTimes(ctx context.Context, filter entities.LogTimePageFilter) (entities.Page[entities.LogTime], error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	filter.Normalize()
	return u.repo.PaginateLogTimes(ctx, filter)
}
