package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshanand45/WorkNest/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	userColumns = `user_id, email, password_hash, is_active, role_id, company_id,
created_on, created_by, updated_on, updated_by, deleted_on, deleted_by`

	userDuplicateQuery = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND is_active = TRUE AND user_id <> $2)`

	insertUserQuery = `
INSERT INTO users(email, password_hash, role_id, company_id, created_by)
VALUES ($1, $2, $3, $4, $5)
RETURNING user_id, created_on`

	selectUserByEmailQuery = `SELECT ` + userColumns + ` FROM users WHERE email = $1 ORDER BY user_id DESC LIMIT 1`

	deleteUserQuery = `
UPDATE users SET is_active = FALSE, deleted_on = now(), deleted_by = $2
WHERE user_id = $1 AND is_active = TRUE`

	listUsersQuery = `SELECT ` + userColumns + ` FROM users WHERE is_active = TRUE ORDER BY user_id`
)

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.IsActive, &u.RoleID, &u.CompanyID,
		&u.CreatedOn, &u.CreatedBy, &u.UpdatedOn, &u.UpdatedBy, &u.DeletedOn, &u.DeletedBy,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts a user with a pre-hashed password after validating the
// role and company references and email uniqueness.
func (p *Postgres) CreateUser(ctx context.Context, in entities.UserCreate, passwordHash string) (*entities.User, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := checkUserActor(ctx, tx, in.CreatedBy); err != nil {
		return nil, err
	}
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

	var dup bool
	if err := tx.QueryRow(ctx, userDuplicateQuery, in.Email, int64(0)).Scan(&dup); err != nil {
		return nil, fmt.Errorf("user duplicate check: %w", err)
	}
	if dup {
		return nil, entities.ErrEmailExists
	}

	u := entities.User{
		Email:        in.Email,
		PasswordHash: passwordHash,
		IsActive:     true,
		RoleID:       in.RoleID,
		CompanyID:    in.CompanyID,
	}
	u.CreatedBy = in.CreatedBy

	err = tx.QueryRow(ctx, insertUserQuery, in.Email, passwordHash, in.RoleID, in.CompanyID, in.CreatedBy).
		Scan(&u.ID, &u.CreatedOn)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("user created", "user_id", u.ID, "email", u.Email)
	return &u, nil
}

// UpdateUser applies a partial update to an active user.
func (p *Postgres) UpdateUser(ctx context.Context, id int64, patch entities.UserPatch) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ok, err := activeRowExists(ctx, tx, "users", "user_id", id)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrUserNotFound
	}
	if err := checkUserActor(ctx, tx, patch.UpdatedBy); err != nil {
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
	if patch.CompanyID != nil {
		ok, err := activeRowExists(ctx, tx, "companies", "company_id", *patch.CompanyID)
		if err != nil {
			return err
		}
		if !ok {
			return entities.ErrCompanyNotFound
		}
	}
	if patch.Email != nil {
		var dup bool
		if err := tx.QueryRow(ctx, userDuplicateQuery, *patch.Email, id).Scan(&dup); err != nil {
			return fmt.Errorf("user duplicate check: %w", err)
		}
		if dup {
			return entities.ErrEmailExists
		}
	}

	b := &setBuilder{}
	setIf(b, "email", patch.Email)
	setIf(b, "password_hash", patch.PasswordHash)
	setIf(b, "is_active", patch.IsActive)
	setIf(b, "role_id", patch.RoleID)
	setIf(b, "company_id", patch.CompanyID)
	b.add("updated_by", patch.UpdatedBy)
	b.addExpr("updated_on = now()")

	query := "UPDATE users SET " + b.clause() + " WHERE user_id = " + b.where(id)
	if _, err := tx.Exec(ctx, query, b.args...); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("user updated", "user_id", id)
	return nil
}

// DeleteUser soft-deletes an active user.
func (p *Postgres) DeleteUser(ctx context.Context, id, deletedBy int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := checkUserActor(ctx, tx, deletedBy); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, deleteUserQuery, id, deletedBy)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrUserNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("user deleted", "user_id", id, "deleted_by", deletedBy)
	return nil
}

// ListUsers returns all active users, oldest first.
func (p *Postgres) ListUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// PaginateUsers returns one window of active users filtered by company,
// role and email substring.
func (p *Postgres) PaginateUsers(ctx context.Context, filter entities.UserPageFilter) (entities.Page[entities.User], error) {
	where := "is_active = TRUE"
	args := make([]any, 0, 5)
	if filter.CompanyID != nil {
		args = append(args, *filter.CompanyID)
		where += fmt.Sprintf(" AND company_id = $%d", len(args))
	}
	if filter.RoleID != nil {
		args = append(args, *filter.RoleID)
		where += fmt.Sprintf(" AND role_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where += fmt.Sprintf(" AND email ILIKE $%d", len(args))
	}

	var total int64
	if err := p.db.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE "+where, args...).Scan(&total); err != nil {
		return entities.Page[entities.User]{}, fmt.Errorf("count users: %w", err)
	}
	if total == 0 {
		return entities.NewPage[entities.User](nil, 0, filter.PageRequest), nil
	}

	args = append(args, filter.Limit, filter.Offset())
	query := fmt.Sprintf(
		"SELECT %s FROM users WHERE %s ORDER BY user_id LIMIT $%d OFFSET $%d",
		userColumns, where, len(args)-1, len(args),
	)
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return entities.Page[entities.User]{}, fmt.Errorf("page users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0, filter.Limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return entities.Page[entities.User]{}, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return entities.Page[entities.User]{}, fmt.Errorf("iterate users: %w", err)
	}

	return entities.NewPage(users, total, filter.PageRequest), nil
}

// GetUserByEmail fetches a user for authentication regardless of active
// state; the caller decides how to treat inactive accounts.
func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, selectUserByEmailQuery, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}
