package postgres

import (
	"context"
	"fmt"

	"github.com/Harshanand45/WorkNest/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	roleColumns = `r.role_id, r.role, r.company_id, c.name AS company_name, r.is_active,
r.created_on, r.created_by, r.updated_on, r.updated_by, r.deleted_on, r.deleted_by`

	insertRoleQuery = `
INSERT INTO roles(role, company_id, created_by)
VALUES ($1, $2, $3)
RETURNING role_id, created_on`

	deleteRoleQuery = `
UPDATE roles SET is_active = FALSE, deleted_on = now(), deleted_by = $2
WHERE role_id = $1 AND is_active = TRUE`

	listRolesQuery = `
SELECT ` + roleColumns + `
FROM roles r
JOIN companies c ON c.company_id = r.company_id
WHERE r.is_active = TRUE
ORDER BY r.role_id DESC`

	countRolesQuery = `SELECT COUNT(*) FROM roles WHERE is_active = TRUE`

	pageRolesQuery = `
SELECT ` + roleColumns + `
FROM roles r
JOIN companies c ON c.company_id = r.company_id
WHERE r.is_active = TRUE
ORDER BY r.role_id DESC
LIMIT $1 OFFSET $2`
)

func scanRole(row pgx.Row) (*entities.Role, error) {
	var r entities.Role
	err := row.Scan(
		&r.ID, &r.Name, &r.CompanyID, &r.CompanyName, &r.IsActive,
		&r.CreatedOn, &r.CreatedBy, &r.UpdatedOn, &r.UpdatedBy, &r.DeletedOn, &r.DeletedBy,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateRole inserts a role after validating its company reference.
func (p *Postgres) CreateRole(ctx context.Context, in entities.RoleCreate) (*entities.Role, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ok, err := activeRowExists(ctx, tx, "companies", "company_id", in.CompanyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entities.ErrCompanyNotFound
	}
	if err := checkUserActor(ctx, tx, in.CreatedBy); err != nil {
		return nil, err
	}

	r := entities.Role{Name: in.Name, CompanyID: in.CompanyID, IsActive: true}
	r.CreatedBy = in.CreatedBy

	err = tx.QueryRow(ctx, insertRoleQuery, in.Name, in.CompanyID, in.CreatedBy).Scan(&r.ID, &r.CreatedOn)
	if err != nil {
		return nil, fmt.Errorf("insert role: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("role created", "role_id", r.ID, "role", r.Name)
	return &r, nil
}

// UpdateRole applies a partial update to an active role.
func (p *Postgres) UpdateRole(ctx context.Context, id int64, patch entities.RolePatch) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ok, err := activeRowExists(ctx, tx, "roles", "role_id", id)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrRoleNotFound
	}
	if err := checkUserActor(ctx, tx, patch.UpdatedBy); err != nil {
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

	query := "UPDATE roles SET " + b.clause() + " WHERE role_id = " + b.where(id)
	if _, err := tx.Exec(ctx, query, b.args...); err != nil {
		return fmt.Errorf("update role: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("role updated", "role_id", id)
	return nil
}

// DeleteRole soft-deletes an active role.
func (p *Postgres) DeleteRole(ctx context.Context, id, deletedBy int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := checkUserActor(ctx, tx, deletedBy); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, deleteRoleQuery, id, deletedBy)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrRoleNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("role deleted", "role_id", id, "deleted_by", deletedBy)
	return nil
}

// ListRoles returns all active roles with company names, newest first.
func (p *Postgres) ListRoles(ctx context.Context) ([]entities.Role, error) {
	rows, err := p.db.Query(ctx, listRolesQuery)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	roles := make([]entities.Role, 0)
	for rows.Next() {
		r, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roles: %w", err)
	}
	return roles, nil
}

// PaginateRoles returns one window of active roles, newest first.
func (p *Postgres) PaginateRoles(ctx context.Context, req entities.PageRequest) (entities.Page[entities.Role], error) {
	var total int64
	if err := p.db.QueryRow(ctx, countRolesQuery).Scan(&total); err != nil {
		return entities.Page[entities.Role]{}, fmt.Errorf("count roles: %w", err)
	}
	if total == 0 {
		return entities.NewPage[entities.Role](nil, 0, req), nil
	}

	rows, err := p.db.Query(ctx, pageRolesQuery, req.Limit, req.Offset())
	if err != nil {
		return entities.Page[entities.Role]{}, fmt.Errorf("page roles: %w", err)
	}
	defer rows.Close()

	roles := make([]entities.Role, 0, req.Limit)
	for rows.Next() {
		r, err := scanRole(rows)
		if err != nil {
			return entities.Page[entities.Role]{}, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, *r)
	}
	if err := rows.Err(); err != nil {
		return entities.Page[entities.Role]{}, fmt.Errorf("iterate roles: %w", err)
	}

	return entities.NewPage(roles, total, req), nil
}
