package postgres

import (
	"context"
	"fmt"

	"github.com/Harshanand45/WorkNest/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	projectEmployeeColumns = `project_employee_id, emp_id, project_id, company_id, project_role_id, is_active,
created_on, created_by, updated_on, updated_by, deleted_on, deleted_by`

	insertProjectEmployeeQuery = `
INSERT INTO project_employees(emp_id, project_id, company_id, project_role_id, created_by)
VALUES ($1, $2, $3, $4, $5)`

	deleteProjectEmployeeQuery = `
UPDATE project_employees SET is_active = FALSE, deleted_on = now(), deleted_by = $2
WHERE project_employee_id = $1 AND is_active = TRUE`
)

func scanProjectEmployee(row pgx.Row) (*entities.ProjectEmployee, error) {
	var pe entities.ProjectEmployee
	err := row.Scan(
		&pe.ID, &pe.EmpID, &pe.ProjectID, &pe.CompanyID, &pe.ProjectRoleID, &pe.IsActive,
		&pe.CreatedOn, &pe.CreatedBy, &pe.UpdatedOn, &pe.UpdatedBy, &pe.DeletedOn, &pe.DeletedBy,
	)
	if err != nil {
		return nil, err
	}
	return &pe, nil
}

// CreateProjectEmployee links an employee to a project after validating all
// four references.
func (p *Postgres) CreateProjectEmployee(ctx context.Context, in entities.ProjectEmployeeCreate) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ok, err := activeRowExists(ctx, tx, "employees", "emp_id", in.EmpID)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrEmployeeNotFound
	}
	ok, err = activeRowExists(ctx, tx, "projects", "project_id", in.ProjectID)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrProjectNotFound
	}
	ok, err = activeRowExists(ctx, tx, "companies", "company_id", in.CompanyID)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrCompanyNotFound
	}
	ok, err = activeRowExists(ctx, tx, "project_roles", "project_role_id", in.ProjectRoleID)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrProjectRoleNotFound
	}
	if err := checkEmployeeActor(ctx, tx, in.CreatedBy); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, insertProjectEmployeeQuery,
		in.EmpID, in.ProjectID, in.CompanyID, in.ProjectRoleID, in.CreatedBy,
	); err != nil {
		return fmt.Errorf("insert project employee: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("project employee created", "emp_id", in.EmpID, "project_id", in.ProjectID)
	return nil
}

// UpdateProjectEmployee applies a partial update to an active assignment.
func (p *Postgres) UpdateProjectEmployee(ctx context.Context, id int64, patch entities.ProjectEmployeePatch) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ok, err := activeRowExists(ctx, tx, "project_employees", "project_employee_id", id)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrProjectEmployeeNotFound
	}
	if err := checkEmployeeActor(ctx, tx, patch.UpdatedBy); err != nil {
		return err
	}

	if patch.ProjectID != nil {
		ok, err := activeRowExists(ctx, tx, "projects", "project_id", *patch.ProjectID)
		if err != nil {
			return err
		}
		if !ok {
			return entities.ErrProjectNotFound
		}
	}
	if patch.CompanyID != nil {
		ok, err := activeRowExists(ctx, tx, "companies", "company_id", *patch.CompanyID)
		if err != nil {
			return err
		}
		if !ok {
			return entities.ErrCompanyNotFound
		}
	}
	if patch.ProjectRoleID != nil {
		ok, err := activeRowExists(ctx, tx, "project_roles", "project_role_id", *patch.ProjectRoleID)
		if err != nil {
			return err
		}
		if !ok {
			return entities.ErrProjectRoleNotFound
		}
	}

	b := &setBuilder{}
	setIf(b, "project_id", patch.ProjectID)
	setIf(b, "company_id", patch.CompanyID)
	setIf(b, "project_role_id", patch.ProjectRoleID)
	b.add("updated_by", patch.UpdatedBy)
	b.addExpr("updated_on = now()")

	query := "UPDATE project_employees SET " + b.clause() + " WHERE project_employee_id = " + b.where(id)
	if _, err := tx.Exec(ctx, query, b.args...); err != nil {
		return fmt.Errorf("update project employee: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("project employee updated", "project_employee_id", id)
	return nil
}

// DeleteProjectEmployee soft-deletes an active assignment.
func (p *Postgres) DeleteProjectEmployee(ctx context.Context, id, deletedBy int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := checkEmployeeActor(ctx, tx, deletedBy); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, deleteProjectEmployeeQuery, id, deletedBy)
	if err != nil {
		return fmt.Errorf("delete project employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrProjectEmployeeNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("project employee deleted", "project_employee_id", id, "deleted_by", deletedBy)
	return nil
}

// ListProjectEmployees returns assignments matching the soft-delete filter.
func (p *Postgres) ListProjectEmployees(ctx context.Context, status entities.StatusFilter) ([]entities.ProjectEmployee, error) {
	query := `SELECT ` + projectEmployeeColumns + ` FROM project_employees WHERE ` +
		statusPredicate(string(status)) + ` ORDER BY project_employee_id`
	return p.queryProjectEmployees(ctx, query)
}

// ProjectEmployeesByCompanyProject returns assignments for one project of
// one company. Both the company and the project must exist.
func (p *Postgres) ProjectEmployeesByCompanyProject(ctx context.Context, filter entities.ProjectEmployeeFilter) ([]entities.ProjectEmployee, error) {
	ok, err := activeRowExists(ctx, p.db, "companies", "company_id", filter.CompanyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entities.ErrCompanyNotFound
	}
	ok, err = activeRowExists(ctx, p.db, "projects", "project_id", filter.ProjectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entities.ErrProjectNotFound
	}

	query := `SELECT ` + projectEmployeeColumns + ` FROM project_employees
WHERE company_id = $1 AND project_id = $2 AND ` + statusPredicate(string(filter.Status)) + `
ORDER BY project_employee_id`
	return p.queryProjectEmployees(ctx, query, filter.CompanyID, filter.ProjectID)
}

func (p *Postgres) queryProjectEmployees(ctx context.Context, query string, args ...any) ([]entities.ProjectEmployee, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query project employees: %w", err)
	}
	defer rows.Close()

	assignments := make([]entities.ProjectEmployee, 0)
	for rows.Next() {
		pe, err := scanProjectEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project employee: %w", err)
		}
		assignments = append(assignments, *pe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project employees: %w", err)
	}
	return assignments, nil
}
