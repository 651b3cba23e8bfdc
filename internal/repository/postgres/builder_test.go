package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetBuilderClause(t *testing.T) {
	b := &setBuilder{}
	name := "Apollo"
	setIf(b, "name", &name)
	setIf[string](b, "description", nil)
	b.add("updated_by", int64(7))
	b.addExpr("updated_on = now()")

	require.False(t, b.empty())
	require.Equal(t, "name = $1, updated_by = $2, updated_on = now()", b.clause())
	require.Equal(t, []any{"Apollo", int64(7)}, b.args)

	where := b.where(int64(42))
	require.Equal(t, "$3", where)
	require.Equal(t, []any{"Apollo", int64(7), int64(42)}, b.args)
}

func TestSetBuilderEmpty(t *testing.T) {
	b := &setBuilder{}
	setIf[string](b, "name", nil)
	setIf[int64](b, "company_id", nil)
	require.True(t, b.empty())
}

func TestStatusPredicate(t *testing.T) {
	require.Equal(t, "is_active = TRUE", statusPredicate("active"))
	require.Equal(t, "is_active = FALSE", statusPredicate("inactive"))
	require.Equal(t, "TRUE", statusPredicate("all"))
	require.Equal(t, "TRUE", statusPredicate(""))
}
