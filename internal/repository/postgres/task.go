package postgres

import (
	"context"
	"fmt"

	"github.com/Harshanand45/WorkNest/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	taskColumns = `t.task_id, t.name, t.project_id, t.assigned_to, t.document_path, t.document_url, t.document_name,
t.deadline, t.priority, t.status, t.company_id, t.description, t.expected_hours, t.is_active,
t.created_on, t.created_by, t.updated_on, t.updated_by, t.deleted_on, t.deleted_by`

	insertTaskQuery = `
INSERT INTO tasks(name, project_id, assigned_to, document_path, document_url, document_name,
                  deadline, priority, status, company_id, description, expected_hours, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING task_id, created_on`

	tasksByAssigneeQuery = `
SELECT ` + taskColumns + ` FROM tasks t
WHERE t.assigned_to = $1 AND t.is_active = TRUE
ORDER BY t.deadline ASC NULLS LAST`

	tasksByManagerQuery = `
SELECT ` + taskColumns + ` FROM tasks t
JOIN projects p ON p.project_id = t.project_id
WHERE p.project_manager = $1 AND t.is_active = TRUE
ORDER BY t.deadline ASC NULLS LAST`

	deleteTaskQuery = `
UPDATE tasks SET is_active = FALSE, deleted_on = now(), deleted_by = $2
WHERE task_id = $1 AND is_active = TRUE`

	listTasksQuery = `SELECT ` + taskColumns + ` FROM tasks t WHERE t.is_active = TRUE ORDER BY t.deadline ASC NULLS LAST`
)

func scanTask(row pgx.Row) (*entities.Task, error) {
	var t entities.Task
	err := row.Scan(
		&t.ID, &t.Name, &t.ProjectID, &t.AssignedTo, &t.DocumentPath, &t.DocumentURL, &t.DocumentName,
		&t.Deadline, &t.Priority, &t.Status, &t.CompanyID, &t.Description, &t.ExpectedHours, &t.IsActive,
		&t.CreatedOn, &t.CreatedBy, &t.UpdatedOn, &t.UpdatedBy, &t.DeletedOn, &t.DeletedBy,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTask inserts a task after validating its project, company and
// optional assignee references.
func (p *Postgres) CreateTask(ctx context.Context, in entities.TaskCreate) (*entities.Task, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ok, err := activeRowExists(ctx, tx, "projects", "project_id", in.ProjectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entities.ErrProjectNotFound
	}
	ok, err = activeRowExists(ctx, tx, "companies", "company_id", in.CompanyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entities.ErrCompanyNotFound
	}
	if in.AssignedTo != nil {
		ok, err := activeRowExists(ctx, tx, "employees", "emp_id", *in.AssignedTo)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, entities.ErrEmployeeNotFound
		}
	}
	if err := checkEmployeeActor(ctx, tx, in.CreatedBy); err != nil {
		return nil, err
	}

	t := entities.Task{
		Name:          in.Name,
		ProjectID:     in.ProjectID,
		AssignedTo:    in.AssignedTo,
		DocumentPath:  in.DocumentPath,
		DocumentURL:   in.DocumentURL,
		DocumentName:  in.DocumentName,
		Deadline:      in.Deadline,
		Priority:      in.Priority,
		Status:        in.Status,
		CompanyID:     in.CompanyID,
		Description:   in.Description,
		ExpectedHours: in.ExpectedHours,
		IsActive:      true,
	}
	t.CreatedBy = in.CreatedBy

	err = tx.QueryRow(ctx, insertTaskQuery,
		in.Name, in.ProjectID, in.AssignedTo, in.DocumentPath, in.DocumentURL, in.DocumentName,
		in.Deadline, in.Priority, in.Status, in.CompanyID, in.Description, in.ExpectedHours, in.CreatedBy,
	).Scan(&t.ID, &t.CreatedOn)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("task created", "task_id", t.ID, "project_id", t.ProjectID)
	return &t, nil
}

// UpdateTask applies a partial update to an active task and returns the
// updated row.
func (p *Postgres) UpdateTask(ctx context.Context, id int64, patch entities.TaskPatch) (*entities.Task, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ok, err := activeRowExists(ctx, tx, "tasks", "task_id", id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entities.ErrTaskNotFound
	}
	if err := checkEmployeeActor(ctx, tx, patch.UpdatedBy); err != nil {
		return nil, err
	}

	if patch.ProjectID != nil {
		ok, err := activeRowExists(ctx, tx, "projects", "project_id", *patch.ProjectID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, entities.ErrProjectNotFound
		}
	}
	if patch.CompanyID != nil {
		ok, err := activeRowExists(ctx, tx, "companies", "company_id", *patch.CompanyID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, entities.ErrCompanyNotFound
		}
	}
	if patch.AssignedTo != nil {
		ok, err := activeRowExists(ctx, tx, "employees", "emp_id", *patch.AssignedTo)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, entities.ErrEmployeeNotFound
		}
	}

	b := &setBuilder{}
	setIf(b, "name", patch.Name)
	setIf(b, "project_id", patch.ProjectID)
	setIf(b, "assigned_to", patch.AssignedTo)
	setIf(b, "document_path", patch.DocumentPath)
	setIf(b, "document_url", patch.DocumentURL)
	setIf(b, "document_name", patch.DocumentName)
	setIf(b, "deadline", patch.Deadline)
	setIf(b, "priority", patch.Priority)
	setIf(b, "status", patch.Status)
	setIf(b, "company_id", patch.CompanyID)
	setIf(b, "description", patch.Description)
	setIf(b, "expected_hours", patch.ExpectedHours)
	setIf(b, "is_active", patch.IsActive)
	b.add("updated_by", patch.UpdatedBy)
	b.addExpr("updated_on = now()")

	query := "UPDATE tasks t SET " + b.clause() + " WHERE task_id = " + b.where(id) + " RETURNING " + taskColumns
	t, err := scanTask(tx.QueryRow(ctx, query, b.args...))
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("task updated", "task_id", id)
	return t, nil
}

// DeleteTask soft-deletes an active task.
func (p *Postgres) DeleteTask(ctx context.Context, id, deletedBy int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := checkEmployeeActor(ctx, tx, deletedBy); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, deleteTaskQuery, id, deletedBy)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTaskNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("task deleted", "task_id", id, "deleted_by", deletedBy)
	return nil
}

// ListTasks returns all active tasks ordered by nearest deadline.
func (p *Postgres) ListTasks(ctx context.Context) ([]entities.Task, error) {
	return p.queryTasks(ctx, listTasksQuery)
}

// TasksByAssignee returns active tasks assigned to the given employee.
func (p *Postgres) TasksByAssignee(ctx context.Context, employeeID int64) ([]entities.Task, error) {
	return p.queryTasks(ctx, tasksByAssigneeQuery, employeeID)
}

// TasksByManager returns active tasks under projects managed by the given
// employee.
func (p *Postgres) TasksByManager(ctx context.Context, managerID int64) ([]entities.Task, error) {
	return p.queryTasks(ctx, tasksByManagerQuery, managerID)
}

// PaginateTasks returns one window of active tasks ordered by nearest
// deadline, filtered by task name, project name, assignee, priority and
// project manager.
func (p *Postgres) PaginateTasks(ctx context.Context, filter entities.TaskPageFilter) (entities.Page[entities.Task], error) {
	where := "t.is_active = TRUE"
	args := make([]any, 0, 7)
	if filter.TaskName != "" {
		args = append(args, "%"+filter.TaskName+"%")
		where += fmt.Sprintf(" AND t.name ILIKE $%d", len(args))
	}
	if filter.ProjectName != "" {
		args = append(args, "%"+filter.ProjectName+"%")
		where += fmt.Sprintf(" AND p.name ILIKE $%d", len(args))
	}
	if filter.AssignedTo != nil {
		args = append(args, *filter.AssignedTo)
		where += fmt.Sprintf(" AND t.assigned_to = $%d", len(args))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		where += fmt.Sprintf(" AND t.priority = $%d", len(args))
	}
	if filter.ManagerID != nil {
		args = append(args, *filter.ManagerID)
		where += fmt.Sprintf(" AND p.project_manager = $%d", len(args))
	}

	base := "FROM tasks t JOIN projects p ON p.project_id = t.project_id WHERE " + where

	var total int64
	if err := p.db.QueryRow(ctx, "SELECT COUNT(*) "+base, args...).Scan(&total); err != nil {
		return entities.Page[entities.Task]{}, fmt.Errorf("count tasks: %w", err)
	}
	if total == 0 {
		return entities.NewPage[entities.Task](nil, 0, filter.PageRequest), nil
	}

	args = append(args, filter.Limit, filter.Offset())
	query := fmt.Sprintf(
		"SELECT %s %s ORDER BY t.deadline ASC NULLS LAST LIMIT $%d OFFSET $%d",
		taskColumns, base, len(args)-1, len(args),
	)
	tasks, err := p.queryTasks(ctx, query, args...)
	if err != nil {
		return entities.Page[entities.Task]{}, err
	}

	return entities.NewPage(tasks, total, filter.PageRequest), nil
}

func (p *Postgres) queryTasks(ctx context.Context, query string, args ...any) ([]entities.Task, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]entities.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}
