package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshanand45/WorkNest/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	projectColumns = `project_id, name, start_date, end_date, project_manager, priority, status, company_id, description, is_active,
created_on, created_by, updated_on, updated_by, deleted_on, deleted_by`

	projectDuplicateQuery = `SELECT EXISTS (SELECT 1 FROM projects WHERE name = $1 AND company_id = $2 AND is_active = TRUE AND project_id <> $3)`

	insertProjectQuery = `
INSERT INTO projects(name, start_date, end_date, project_manager, priority, status, company_id, description, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING project_id, created_on`

	selectProjectQuery = `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1 AND is_active = TRUE`

	projectsByManagerQuery = `SELECT ` + projectColumns + ` FROM projects WHERE project_manager = $1 AND is_active = TRUE ORDER BY project_id DESC`

	deleteProjectQuery = `
UPDATE projects SET is_active = FALSE, deleted_on = now(), deleted_by = $2
WHERE project_id = $1 AND is_active = TRUE`

	listProjectsQuery = `SELECT ` + projectColumns + ` FROM projects WHERE is_active = TRUE ORDER BY project_id DESC`
)

func scanProject(row pgx.Row) (*entities.Project, error) {
	var pr entities.Project
	err := row.Scan(
		&pr.ID, &pr.Name, &pr.StartDate, &pr.EndDate, &pr.ManagerID, &pr.Priority,
		&pr.Status, &pr.CompanyID, &pr.Description, &pr.IsActive,
		&pr.CreatedOn, &pr.CreatedBy, &pr.UpdatedOn, &pr.UpdatedBy, &pr.DeletedOn, &pr.DeletedBy,
	)
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

// CreateProject inserts a project after validating the company and manager
// references and name uniqueness within the company.
func (p *Postgres) CreateProject(ctx context.Context, in entities.ProjectCreate) (*entities.Project, error) {
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
	ok, err = activeRowExists(ctx, tx, "employees", "emp_id", in.ManagerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entities.ErrEmployeeNotFound
	}
	if err := checkEmployeeActor(ctx, tx, in.CreatedBy); err != nil {
		return nil, err
	}

	var dup bool
	if err := tx.QueryRow(ctx, projectDuplicateQuery, in.Name, in.CompanyID, int64(0)).Scan(&dup); err != nil {
		return nil, fmt.Errorf("project duplicate check: %w", err)
	}
	if dup {
		return nil, entities.ErrProjectExists
	}

	pr := entities.Project{
		Name:        in.Name,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		ManagerID:   in.ManagerID,
		Priority:    in.Priority,
		Status:      in.Status,
		CompanyID:   in.CompanyID,
		Description: in.Description,
		IsActive:    true,
	}
	pr.CreatedBy = in.CreatedBy

	err = tx.QueryRow(ctx, insertProjectQuery,
		in.Name, in.StartDate, in.EndDate, in.ManagerID, in.Priority, in.Status,
		in.CompanyID, in.Description, in.CreatedBy,
	).Scan(&pr.ID, &pr.CreatedOn)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("project created", "project_id", pr.ID, "name", pr.Name)
	return &pr, nil
}

// UpdateProject applies a partial update to an active project.
func (p *Postgres) UpdateProject(ctx context.Context, id int64, patch entities.ProjectPatch) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ok, err := activeRowExists(ctx, tx, "projects", "project_id", id)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrProjectNotFound
	}
	if err := checkEmployeeActor(ctx, tx, patch.UpdatedBy); err != nil {
		return err
	}

	if patch.ManagerID != nil {
		ok, err := activeRowExists(ctx, tx, "employees", "emp_id", *patch.ManagerID)
		if err != nil {
			return err
		}
		if !ok {
			return entities.ErrEmployeeNotFound
		}
	}
	if patch.Name != nil {
		var companyID int64
		if err := tx.QueryRow(ctx, "SELECT company_id FROM projects WHERE project_id = $1", id).Scan(&companyID); err != nil {
			return fmt.Errorf("project company lookup: %w", err)
		}
		var dup bool
		if err := tx.QueryRow(ctx, projectDuplicateQuery, *patch.Name, companyID, id).Scan(&dup); err != nil {
			return fmt.Errorf("project duplicate check: %w", err)
		}
		if dup {
			return entities.ErrProjectExists
		}
	}

	b := &setBuilder{}
	setIf(b, "name", patch.Name)
	setIf(b, "start_date", patch.StartDate)
	setIf(b, "end_date", patch.EndDate)
	setIf(b, "project_manager", patch.ManagerID)
	setIf(b, "priority", patch.Priority)
	setIf(b, "status", patch.Status)
	setIf(b, "description", patch.Description)
	setIf(b, "is_active", patch.IsActive)
	b.add("updated_by", patch.UpdatedBy)
	b.addExpr("updated_on = now()")

	query := "UPDATE projects SET " + b.clause() + " WHERE project_id = " + b.where(id)
	if _, err := tx.Exec(ctx, query, b.args...); err != nil {
		return fmt.Errorf("update project: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("project updated", "project_id", id)
	return nil
}

// DeleteProject soft-deletes an active project.
func (p *Postgres) DeleteProject(ctx context.Context, id, deletedBy int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := checkEmployeeActor(ctx, tx, deletedBy); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, deleteProjectQuery, id, deletedBy)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrProjectNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("project deleted", "project_id", id, "deleted_by", deletedBy)
	return nil
}

// ListProjects returns all active projects, newest first.
func (p *Postgres) ListProjects(ctx context.Context) ([]entities.Project, error) {
	return p.queryProjects(ctx, listProjectsQuery)
}

// GetProject fetches one active project by id.
func (p *Postgres) GetProject(ctx context.Context, id int64) (*entities.Project, error) {
	pr, err := scanProject(p.db.QueryRow(ctx, selectProjectQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return pr, nil
}

// ProjectsByManager returns active projects managed by the given employee.
func (p *Postgres) ProjectsByManager(ctx context.Context, managerID int64) ([]entities.Project, error) {
	return p.queryProjects(ctx, projectsByManagerQuery, managerID)
}

// PaginateProjects returns one window of active projects filtered by name,
// status, priority and manager, newest first.
func (p *Postgres) PaginateProjects(ctx context.Context, filter entities.ProjectPageFilter) (entities.Page[entities.Project], error) {
	where := "is_active = TRUE"
	args := make([]any, 0, 6)
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		where += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		where += fmt.Sprintf(" AND priority = $%d", len(args))
	}
	if filter.ManagerID != nil {
		args = append(args, *filter.ManagerID)
		where += fmt.Sprintf(" AND project_manager = $%d", len(args))
	}

	var total int64
	if err := p.db.QueryRow(ctx, "SELECT COUNT(*) FROM projects WHERE "+where, args...).Scan(&total); err != nil {
		return entities.Page[entities.Project]{}, fmt.Errorf("count projects: %w", err)
	}
	if total == 0 {
		return entities.NewPage[entities.Project](nil, 0, filter.PageRequest), nil
	}

	args = append(args, filter.Limit, filter.Offset())
	query := fmt.Sprintf(
		"SELECT %s FROM projects WHERE %s ORDER BY project_id DESC LIMIT $%d OFFSET $%d",
		projectColumns, where, len(args)-1, len(args),
	)
	projects, err := p.queryProjects(ctx, query, args...)
	if err != nil {
		return entities.Page[entities.Project]{}, err
	}

	return entities.NewPage(projects, total, filter.PageRequest), nil
}

func (p *Postgres) queryProjects(ctx context.Context, query string, args ...any) ([]entities.Project, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		pr, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}
