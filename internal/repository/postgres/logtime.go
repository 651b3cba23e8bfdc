package postgres

import (
	"context"
	"fmt"

	"github.com/Harshanand45/WorkNest/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	logTimeColumns = `l.log_id, l.emp_id, l.task_id, l.date, l.company_id, l.description, l.minutes_spent, l.hours_spent, l.is_active,
l.created_on, l.created_by, l.updated_on, l.updated_by, l.deleted_on, l.deleted_by`

	insertLogTimeQuery = `
INSERT INTO log_time(emp_id, task_id, date, company_id, description, minutes_spent, hours_spent, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING log_id, created_on`

	logTimesByTaskQuery = `
SELECT ` + logTimeColumns + ` FROM log_time l
WHERE l.task_id = $1 AND l.is_active = TRUE
ORDER BY l.log_id`

	deleteLogTimeQuery = `
UPDATE log_time SET is_active = FALSE, deleted_on = now(), deleted_by = $2
WHERE log_id = $1 AND is_active = TRUE`

	listLogTimesQuery = `SELECT ` + logTimeColumns + ` FROM log_time l WHERE l.is_active = TRUE ORDER BY l.log_id`
)

func scanLogTime(row pgx.Row) (*entities.LogTime, error) {
	var l entities.LogTime
	err := row.Scan(
		&l.ID, &l.EmpID, &l.TaskID, &l.Date, &l.CompanyID, &l.Description,
		&l.MinutesSpent, &l.HoursSpent, &l.IsActive,
		&l.CreatedOn, &l.CreatedBy, &l.UpdatedOn, &l.UpdatedBy, &l.DeletedOn, &l.DeletedBy,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateLogTime inserts a work log after validating employee, task and
// company references.
func (p *Postgres) CreateLogTime(ctx context.Context, in entities.LogTimeCreate) (*entities.LogTime, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ok, err := activeRowExists(ctx, tx, "employees", "emp_id", in.EmpID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entities.ErrEmployeeNotFound
	}
	ok, err = activeRowExists(ctx, tx, "tasks", "task_id", in.TaskID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entities.ErrTaskNotFound
	}
	ok, err = activeRowExists(ctx, tx, "companies", "company_id", in.CompanyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entities.ErrCompanyNotFound
	}
	if err := checkEmployeeActor(ctx, tx, in.CreatedBy); err != nil {
		return nil, err
	}

	l := entities.LogTime{
		EmpID:        in.EmpID,
		TaskID:       in.TaskID,
		Date:         in.Date,
		CompanyID:    in.CompanyID,
		Description:  in.Description,
		MinutesSpent: in.MinutesSpent,
		HoursSpent:   in.HoursSpent,
		IsActive:     true,
	}
	l.CreatedBy = in.CreatedBy

	err = tx.QueryRow(ctx, insertLogTimeQuery,
		in.EmpID, in.TaskID, in.Date, in.CompanyID, in.Description,
		in.MinutesSpent, in.HoursSpent, in.CreatedBy,
	).Scan(&l.ID, &l.CreatedOn)
	if err != nil {
		return nil, fmt.Errorf("insert log time: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("log time created", "log_id", l.ID, "task_id", l.TaskID)
	return &l, nil
}

// UpdateLogTime applies a partial update to an active work log.
func (p *Postgres) UpdateLogTime(ctx context.Context, id int64, patch entities.LogTimePatch) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ok, err := activeRowExists(ctx, tx, "log_time", "log_id", id)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrLogTimeNotFound
	}
	if err := checkUserActor(ctx, tx, patch.UpdatedBy); err != nil {
		return err
	}

	if patch.EmpID != nil {
		ok, err := activeRowExists(ctx, tx, "employees", "emp_id", *patch.EmpID)
		if err != nil {
			return err
		}
		if !ok {
			return entities.ErrEmployeeNotFound
		}
	}
	if patch.TaskID != nil {
		ok, err := activeRowExists(ctx, tx, "tasks", "task_id", *patch.TaskID)
		if err != nil {
			return err
		}
		if !ok {
			return entities.ErrTaskNotFound
		}
	}

	b := &setBuilder{}
	setIf(b, "emp_id", patch.EmpID)
	setIf(b, "task_id", patch.TaskID)
	setIf(b, "date", patch.Date)
	setIf(b, "description", patch.Description)
	setIf(b, "minutes_spent", patch.MinutesSpent)
	setIf(b, "hours_spent", patch.HoursSpent)
	b.add("updated_by", patch.UpdatedBy)
	b.addExpr("updated_on = now()")

	query := "UPDATE log_time SET " + b.clause() + " WHERE log_id = " + b.where(id)
	if _, err := tx.Exec(ctx, query, b.args...); err != nil {
		return fmt.Errorf("update log time: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("log time updated", "log_id", id)
	return nil
}

// DeleteLogTime soft-deletes an active work log.
func (p *Postgres) DeleteLogTime(ctx context.Context, id, deletedBy int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := checkUserActor(ctx, tx, deletedBy); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, deleteLogTimeQuery, id, deletedBy)
	if err != nil {
		return fmt.Errorf("delete log time: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrLogTimeNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("log time deleted", "log_id", id, "deleted_by", deletedBy)
	return nil
}

// ListLogTimes returns all active work logs, oldest first.
func (p *Postgres) ListLogTimes(ctx context.Context) ([]entities.LogTime, error) {
	return p.queryLogTimes(ctx, listLogTimesQuery)
}

// LogTimesByTask returns active work logs booked against the given task.
func (p *Postgres) LogTimesByTask(ctx context.Context, taskID int64) ([]entities.LogTime, error) {
	return p.queryLogTimes(ctx, logTimesByTaskQuery, taskID)
}

// PaginateLogTimes returns one window of active work logs filtered by
// joined employee name or task title.
func (p *Postgres) PaginateLogTimes(ctx context.Context, filter entities.LogTimePageFilter) (entities.Page[entities.LogTime], error) {
	where := "l.is_active = TRUE"
	args := make([]any, 0, 4)
	if filter.EmployeeName != "" {
		args = append(args, "%"+filter.EmployeeName+"%")
		where += fmt.Sprintf(" AND e.name ILIKE $%d", len(args))
	}
	if filter.TaskTitle != "" {
		args = append(args, "%"+filter.TaskTitle+"%")
		where += fmt.Sprintf(" AND t.name ILIKE $%d", len(args))
	}

	base := `FROM log_time l
JOIN employees e ON e.emp_id = l.emp_id
JOIN tasks t ON t.task_id = l.task_id
WHERE ` + where

	var total int64
	if err := p.db.QueryRow(ctx, "SELECT COUNT(*) "+base, args...).Scan(&total); err != nil {
		return entities.Page[entities.LogTime]{}, fmt.Errorf("count log times: %w", err)
	}
	if total == 0 {
		return entities.NewPage[entities.LogTime](nil, 0, filter.PageRequest), nil
	}

	args = append(args, filter.Limit, filter.Offset())
	query := fmt.Sprintf(
		"SELECT %s %s ORDER BY l.log_id LIMIT $%d OFFSET $%d",
		logTimeColumns, base, len(args)-1, len(args),
	)
	logs, err := p.queryLogTimes(ctx, query, args...)
	if err != nil {
		return entities.Page[entities.LogTime]{}, err
	}

	return entities.NewPage(logs, total, filter.PageRequest), nil
}

func (p *Postgres) queryLogTimes(ctx context.Context, query string, args ...any) ([]entities.LogTime, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query log times: %w", err)
	}
	defer rows.Close()

	logs := make([]entities.LogTime, 0)
	for rows.Next() {
		l, err := scanLogTime(rows)
		if err != nil {
			return nil, fmt.Errorf("scan log time: %w", err)
		}
		logs = append(logs, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate log times: %w", err)
	}
	return logs, nil
}
