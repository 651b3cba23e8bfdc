package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshanand45/WorkNest/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	companyColumns = `company_id, name, description, logo_name, logo_url, logo_path, contact_no, email, address, is_active,
created_on, created_by, updated_on, updated_by, deleted_on, deleted_by`

	companyDuplicateQuery = `SELECT EXISTS (SELECT 1 FROM companies WHERE (name = $1 OR email = $2) AND is_active = TRUE AND company_id <> $3)`

	insertCompanyQuery = `
INSERT INTO companies(name, description, logo_name, logo_url, logo_path, contact_no, email, address, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING company_id, created_on`

	selectCompanyQuery = `SELECT ` + companyColumns + ` FROM companies WHERE company_id = $1`

	deleteCompanyQuery = `
UPDATE companies SET is_active = FALSE, deleted_on = now(), deleted_by = $2
WHERE company_id = $1 AND is_active = TRUE`

	countCompaniesQuery = `SELECT COUNT(*) FROM companies WHERE is_active = TRUE`

	pageCompaniesQuery = `SELECT ` + companyColumns + ` FROM companies WHERE is_active = TRUE ORDER BY company_id LIMIT $1 OFFSET $2`
)

func scanCompany(row pgx.Row) (*entities.Company, error) {
	var c entities.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.LogoName, &c.LogoURL, &c.LogoPath,
		&c.ContactNo, &c.Email, &c.Address, &c.IsActive,
		&c.CreatedOn, &c.CreatedBy, &c.UpdatedOn, &c.UpdatedBy, &c.DeletedOn, &c.DeletedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCompany inserts a company after checking name/email uniqueness
// among active companies.
func (p *Postgres) CreateCompany(ctx context.Context, in entities.CompanyCreate) (*entities.Company, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := checkUserActor(ctx, tx, in.CreatedBy); err != nil {
		return nil, err
	}

	var dup bool
	if err := tx.QueryRow(ctx, companyDuplicateQuery, in.Name, in.Email, int64(0)).Scan(&dup); err != nil {
		return nil, fmt.Errorf("company duplicate check: %w", err)
	}
	if dup {
		return nil, entities.ErrCompanyExists
	}

	c := entities.Company{
		Name:        in.Name,
		Description: in.Description,
		LogoName:    in.LogoName,
		LogoURL:     in.LogoURL,
		LogoPath:    in.LogoPath,
		ContactNo:   in.ContactNo,
		Email:       in.Email,
		Address:     in.Address,
		IsActive:    true,
	}
	c.CreatedBy = in.CreatedBy

	err = tx.QueryRow(ctx, insertCompanyQuery,
		in.Name, in.Description, in.LogoName, in.LogoURL, in.LogoPath,
		in.ContactNo, in.Email, in.Address, in.CreatedBy,
	).Scan(&c.ID, &c.CreatedOn)
	if err != nil {
		return nil, fmt.Errorf("insert company: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("company created", "company_id", c.ID, "name", c.Name)
	return &c, nil
}

// UpdateCompany applies a partial update to an active company.
func (p *Postgres) UpdateCompany(ctx context.Context, id int64, patch entities.CompanyPatch) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ok, err := activeRowExists(ctx, tx, "companies", "company_id", id)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrCompanyNotFound
	}
	if err := checkUserActor(ctx, tx, patch.UpdatedBy); err != nil {
		return err
	}

	if patch.Name != nil || patch.Email != nil {
		name, email, err := p.companyIdentity(ctx, tx, id)
		if err != nil {
			return err
		}
		if patch.Name != nil {
			name = *patch.Name
		}
		if patch.Email != nil {
			email = *patch.Email
		}
		var dup bool
		if err := tx.QueryRow(ctx, companyDuplicateQuery, name, email, id).Scan(&dup); err != nil {
			return fmt.Errorf("company duplicate check: %w", err)
		}
		if dup {
			return entities.ErrCompanyExists
		}
	}

	b := &setBuilder{}
	setIf(b, "name", patch.Name)
	setIf(b, "description", patch.Description)
	setIf(b, "logo_name", patch.LogoName)
	setIf(b, "logo_url", patch.LogoURL)
	setIf(b, "logo_path", patch.LogoPath)
	setIf(b, "contact_no", patch.ContactNo)
	setIf(b, "email", patch.Email)
	setIf(b, "address", patch.Address)
	setIf(b, "is_active", patch.IsActive)
	b.add("updated_by", patch.UpdatedBy)
	b.addExpr("updated_on = now()")

	query := "UPDATE companies SET " + b.clause() + " WHERE company_id = " + b.where(id)
	if _, err := tx.Exec(ctx, query, b.args...); err != nil {
		return fmt.Errorf("update company: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("company updated", "company_id", id)
	return nil
}

func (p *Postgres) companyIdentity(ctx context.Context, q queryer, id int64) (string, string, error) {
	var name, email string
	if err := q.QueryRow(ctx, "SELECT name, email FROM companies WHERE company_id = $1", id).Scan(&name, &email); err != nil {
		return "", "", fmt.Errorf("company identity: %w", err)
	}
	return name, email, nil
}

// DeleteCompany soft-deletes an active company.
func (p *Postgres) DeleteCompany(ctx context.Context, id, deletedBy int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := checkUserActor(ctx, tx, deletedBy); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, deleteCompanyQuery, id, deletedBy)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrCompanyNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("company deleted", "company_id", id, "deleted_by", deletedBy)
	return nil
}

// ListCompanies returns companies matching the soft-delete filter, oldest first.
func (p *Postgres) ListCompanies(ctx context.Context, status entities.StatusFilter) ([]entities.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE ` + statusPredicate(string(status)) + ` ORDER BY company_id`
	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]entities.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate companies: %w", err)
	}
	return companies, nil
}

// PaginateCompanies returns one window of active companies with totals.
func (p *Postgres) PaginateCompanies(ctx context.Context, req entities.PageRequest) (entities.Page[entities.Company], error) {
	var total int64
	if err := p.db.QueryRow(ctx, countCompaniesQuery).Scan(&total); err != nil {
		return entities.Page[entities.Company]{}, fmt.Errorf("count companies: %w", err)
	}
	if total == 0 {
		return entities.NewPage[entities.Company](nil, 0, req), nil
	}

	rows, err := p.db.Query(ctx, pageCompaniesQuery, req.Limit, req.Offset())
	if err != nil {
		return entities.Page[entities.Company]{}, fmt.Errorf("page companies: %w", err)
	}
	defer rows.Close()

	companies := make([]entities.Company, 0, req.Limit)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return entities.Page[entities.Company]{}, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, *c)
	}
	if err := rows.Err(); err != nil {
		return entities.Page[entities.Company]{}, fmt.Errorf("iterate companies: %w", err)
	}

	return entities.NewPage(companies, total, req), nil
}

// GetCompany fetches one company by id regardless of active state.
func (p *Postgres) GetCompany(ctx context.Context, id int64) (*entities.Company, error) {
	c, err := scanCompany(p.db.QueryRow(ctx, selectCompanyQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}
