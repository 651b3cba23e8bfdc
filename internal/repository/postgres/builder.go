package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Harshanand45/WorkNest/internal/entities"

	"github.com/jackc/pgx/v5"
)

// queryer is satisfied by both pgx.Tx and *pgxpool.Pool.
type queryer interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// setBuilder assembles a parameterized UPDATE SET clause from a typed
// patch. Column names are compile-time constants; values always travel
// through placeholders.
type setBuilder struct {
	assignments []string
	args        []any
}

func (b *setBuilder) add(col string, val any) {
	b.args = append(b.args, val)
	b.assignments = append(b.assignments, fmt.Sprintf("%s = $%d", col, len(b.args)))
}

func (b *setBuilder) addExpr(expr string) {
	b.assignments = append(b.assignments, expr)
}

// empty reports whether no assignment was collected.
func (b *setBuilder) empty() bool {
	return len(b.assignments) == 0
}

// where appends an extra placeholder-bound argument for the WHERE clause
// and returns its placeholder.
func (b *setBuilder) where(val any) string {
	b.args = append(b.args, val)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *setBuilder) clause() string {
	return strings.Join(b.assignments, ", ")
}

// setIf collects the assignment only when the patch field is present.
func setIf[T any](b *setBuilder, col string, v *T) {
	if v != nil {
		b.add(col, *v)
	}
}

// activeRowExists reports whether an active row with the given id exists.
// Table and column names come from call-site constants only.
func activeRowExists(ctx context.Context, q queryer, table, idCol string, id int64) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND is_active = TRUE)", table, idCol)
	var exists bool
	if err := q.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("existence check %s: %w", table, err)
	}
	return exists, nil
}

// checkUserActor verifies the audit actor refers to an active user. It
// runs inside the same transaction as the mutation it guards.
func checkUserActor(ctx context.Context, q queryer, id int64) error {
	ok, err := activeRowExists(ctx, q, "users", "user_id", id)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrUserNotFound
	}
	return nil
}

// checkEmployeeActor verifies the audit actor refers to an active employee.
func checkEmployeeActor(ctx context.Context, q queryer, id int64) error {
	ok, err := activeRowExists(ctx, q, "employees", "emp_id", id)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrEmployeeNotFound
	}
	return nil
}

// statusPredicate translates a soft-delete filter to a WHERE fragment.
func statusPredicate(status string) string {
	switch status {
	case "active":
		return "is_active = TRUE"
	case "inactive":
		return "is_active = FALSE"
	default:
		return "TRUE"
	}
}
