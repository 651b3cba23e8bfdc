package postgres

import (
	"context"
	"fmt"

	"github.com/Harshanand45/WorkNest/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	projectRoleColumns = `project_role_id, role, company_id, is_active,
created_on, created_by, updated_on, updated_by, deleted_on, deleted_by`

	insertProjectRoleQuery = `
INSERT INTO project_roles(role, company_id, created_by)
VALUES ($1, $2, $3)`

	deleteProjectRoleQuery = `
UPDATE project_roles SET is_active = FALSE, deleted_on = now(), deleted_by = $2
WHERE project_role_id = $1 AND is_active = TRUE`

	listProjectRolesQuery = `SELECT ` + projectRoleColumns + ` FROM project_roles WHERE is_active = TRUE ORDER BY project_role_id`
)

func scanProjectRole(row pgx.Row) (*entities.ProjectRole, error) {
	var pr entities.ProjectRole
	err := row.Scan(
		&pr.ID, &pr.Name, &pr.CompanyID, &pr.IsActive,
		&pr.CreatedOn, &pr.CreatedBy, &pr.UpdatedOn, &pr.UpdatedBy, &pr.DeletedOn, &pr.DeletedBy,
	)
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

// CreateProjectRole inserts a project role after validating its company.
func (p *Postgres) CreateProjectRole(ctx context.Context, in entities.ProjectRoleCreate) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ok, err := activeRowExists(ctx, tx, "companies", "company_id", in.CompanyID)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrCompanyNotFound
	}
	if err := checkEmployeeActor(ctx, tx, in.CreatedBy); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, insertProjectRoleQuery, in.Name, in.CompanyID, in.CreatedBy); err != nil {
		return fmt.Errorf("insert project role: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("project role created", "role", in.Name, "company_id", in.CompanyID)
	return nil
}

// UpdateProjectRole applies a partial update to an active project role.
func (p *Postgres) UpdateProjectRole(ctx context.Context, id int64, patch entities.ProjectRolePatch) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ok, err := activeRowExists(ctx, tx, "project_roles", "project_role_id", id)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrProjectRoleNotFound
	}
	if err := checkEmployeeActor(ctx, tx, patch.UpdatedBy); err != nil {
		return err
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

	b := &setBuilder{}
	setIf(b, "role", patch.Name)
	setIf(b, "company_id", patch.CompanyID)
	b.add("updated_by", patch.UpdatedBy)
	b.addExpr("updated_on = now()")

	query := "UPDATE project_roles SET " + b.clause() + " WHERE project_role_id = " + b.where(id)
	if _, err := tx.Exec(ctx, query, b.args...); err != nil {
		return fmt.Errorf("update project role: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("project role updated", "project_role_id", id)
	return nil
}

// DeleteProjectRole soft-deletes an active project role.
func (p *Postgres) DeleteProjectRole(ctx context.Context, id, deletedBy int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := checkEmployeeActor(ctx, tx, deletedBy); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, deleteProjectRoleQuery, id, deletedBy)
	if err != nil {
		return fmt.Errorf("delete project role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrProjectRoleNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("project role deleted", "project_role_id", id, "deleted_by", deletedBy)
	return nil
}

// ListProjectRoles returns all active project roles, oldest first.
func (p *Postgres) ListProjectRoles(ctx context.Context) ([]entities.ProjectRole, error) {
	rows, err := p.db.Query(ctx, listProjectRolesQuery)
	if err != nil {
		return nil, fmt.Errorf("list project roles: %w", err)
	}
	defer rows.Close()

	roles := make([]entities.ProjectRole, 0)
	for rows.Next() {
		pr, err := scanProjectRole(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project role: %w", err)
		}
		roles = append(roles, *pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project roles: %w", err)
	}
	return roles, nil
}
