package postgres

import (
	"context"
	"fmt"

	"github.com/Harshanand45/WorkNest/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	employeeColumns = `emp_id, name, role_id, phone, address, email, description, company_id, img_url, img_path, is_active,
created_on, created_by, updated_on, updated_by, deleted_on, deleted_by`

	employeeDuplicateQuery = `SELECT EXISTS (SELECT 1 FROM employees WHERE (email = $1 OR phone = $2) AND is_active = TRUE AND emp_id <> $3)`

	insertEmployeeQuery = `
INSERT INTO employees(name, role_id, phone, address, email, description, company_id, img_url, img_path, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING emp_id, created_on`

	deleteEmployeeQuery = `
UPDATE employees SET is_active = FALSE, deleted_on = now(), deleted_by = $2
WHERE emp_id = $1 AND is_active = TRUE`

	listEmployeesQuery = `SELECT ` + employeeColumns + ` FROM employees WHERE is_active = TRUE ORDER BY emp_id`
)

func scanEmployee(row pgx.Row) (*entities.Employee, error) {
	var e entities.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.RoleID, &e.Phone, &e.Address, &e.Email, &e.Description,
		&e.CompanyID, &e.ImageURL, &e.ImagePath, &e.IsActive,
		&e.CreatedOn, &e.CreatedBy, &e.UpdatedOn, &e.UpdatedBy, &e.DeletedOn, &e.DeletedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEmployee inserts an employee after validating role and company
// references and email/phone uniqueness.
func (p *Postgres) CreateEmployee(ctx context.Context, in entities.EmployeeCreate) (*entities.Employee, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ok, err := activeRowExists(ctx, tx, "roles", "role_id", in.RoleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entities.ErrRoleNotFound
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

	var dup bool
	if err := tx.QueryRow(ctx, employeeDuplicateQuery, in.Email, in.Phone, int64(0)).Scan(&dup); err != nil {
		return nil, fmt.Errorf("employee duplicate check: %w", err)
	}
	if dup {
		return nil, entities.ErrEmployeeExists
	}

	e := entities.Employee{
		Name:        in.Name,
		RoleID:      in.RoleID,
		Phone:       in.Phone,
		Address:     in.Address,
		Email:       in.Email,
		Description: in.Description,
		CompanyID:   in.CompanyID,
		ImageURL:    in.ImageURL,
		ImagePath:   in.ImagePath,
		IsActive:    true,
	}
	e.CreatedBy = in.CreatedBy

	err = tx.QueryRow(ctx, insertEmployeeQuery,
		in.Name, in.RoleID, in.Phone, in.Address, in.Email, in.Description,
		in.CompanyID, in.ImageURL, in.ImagePath, in.CreatedBy,
	).Scan(&e.ID, &e.CreatedOn)
	if err != nil {
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("employee created", "emp_id", e.ID, "email", e.Email)
	return &e, nil
}

// UpdateEmployee applies a partial update to an active employee.
func (p *Postgres) UpdateEmployee(ctx context.Context, id int64, patch entities.EmployeePatch) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ok, err := activeRowExists(ctx, tx, "employees", "emp_id", id)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrEmployeeNotFound
	}
	if err := checkEmployeeActor(ctx, tx, patch.UpdatedBy); err != nil {
		return err
	}

	if patch.RoleID != nil {
		ok, err := activeRowExists(ctx, tx, "roles", "role_id", *patch.RoleID)
		if err != nil {
			return err
		}
		if !ok {
			return entities.ErrRoleNotFound
		}
	}
	if patch.Email != nil || patch.Phone != nil {
		var email, phone string
		if err := tx.QueryRow(ctx, "SELECT email, phone FROM employees WHERE emp_id = $1", id).Scan(&email, &phone); err != nil {
			return fmt.Errorf("employee identity: %w", err)
		}
		if patch.Email != nil {
			email = *patch.Email
		}
		if patch.Phone != nil {
			phone = *patch.Phone
		}
		var dup bool
		if err := tx.QueryRow(ctx, employeeDuplicateQuery, email, phone, id).Scan(&dup); err != nil {
			return fmt.Errorf("employee duplicate check: %w", err)
		}
		if dup {
			return entities.ErrEmployeeExists
		}
	}

	b := &setBuilder{}
	setIf(b, "name", patch.Name)
	setIf(b, "role_id", patch.RoleID)
	setIf(b, "phone", patch.Phone)
	setIf(b, "address", patch.Address)
	setIf(b, "email", patch.Email)
	setIf(b, "description", patch.Description)
	setIf(b, "img_url", patch.ImageURL)
	setIf(b, "img_path", patch.ImagePath)
	b.add("updated_by", patch.UpdatedBy)
	b.addExpr("updated_on = now()")

	query := "UPDATE employees SET " + b.clause() + " WHERE emp_id = " + b.where(id)
	if _, err := tx.Exec(ctx, query, b.args...); err != nil {
		return fmt.Errorf("update employee: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("employee updated", "emp_id", id)
	return nil
}

// DeleteEmployee soft-deletes an active employee.
func (p *Postgres) DeleteEmployee(ctx context.Context, id, deletedBy int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := checkEmployeeActor(ctx, tx, deletedBy); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, deleteEmployeeQuery, id, deletedBy)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrEmployeeNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("employee deleted", "emp_id", id, "deleted_by", deletedBy)
	return nil
}

// ListEmployees returns all active employees, oldest first.
func (p *Postgres) ListEmployees(ctx context.Context) ([]entities.Employee, error) {
	rows, err := p.db.Query(ctx, listEmployeesQuery)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]entities.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}
	return employees, nil
}

// PaginateEmployees returns one window of active employees for a company.
// System accounts are excluded from the window.
func (p *Postgres) PaginateEmployees(ctx context.Context, filter entities.EmployeePageFilter) (entities.Page[entities.Employee], error) {
	args := []any{filter.CompanyID, entities.SystemRoleID}
	where := "is_active = TRUE AND company_id = $1 AND role_id <> $2"
	if filter.RoleID != nil {
		args = append(args, *filter.RoleID)
		where += fmt.Sprintf(" AND role_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d)", len(args), len(args))
	}

	var total int64
	if err := p.db.QueryRow(ctx, "SELECT COUNT(*) FROM employees WHERE "+where, args...).Scan(&total); err != nil {
		return entities.Page[entities.Employee]{}, fmt.Errorf("count employees: %w", err)
	}
	if total == 0 {
		return entities.NewPage[entities.Employee](nil, 0, filter.PageRequest), nil
	}

	args = append(args, filter.Limit, filter.Offset())
	query := fmt.Sprintf(
		"SELECT %s FROM employees WHERE %s ORDER BY emp_id LIMIT $%d OFFSET $%d",
		employeeColumns, where, len(args)-1, len(args),
	)
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return entities.Page[entities.Employee]{}, fmt.Errorf("page employees: %w", err)
	}
	defer rows.Close()

	employees := make([]entities.Employee, 0, filter.Limit)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return entities.Page[entities.Employee]{}, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return entities.Page[entities.Employee]{}, fmt.Errorf("iterate employees: %w", err)
	}

	return entities.NewPage(employees, total, filter.PageRequest), nil
}
