package sqlquery_test

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-leo/specification/expression"
	"github.com/go-leo/specification/logger"
	"github.com/go-leo/specification/query/sqlquery"
	"github.com/go-leo/specification/specification"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

type Member struct {
	ID       int `db:"id"`
	Name     string
	Age      int
	Active   bool
	Nickname string `db:"-"`
}

type where = func(e *expression.ParameterExpression) expression.Expression

func predicate(t *testing.T, build where) *expression.Predicate[Member] {
	t.Helper()

	p, err := expression.Where[Member](build)
	require.NoError(t, err)

	return p
}

func ageAbove(n int) *specification.ExpressionSpecification[Member] {
	return specification.NewExpression(expression.Must(expression.Where[Member](func(e *expression.ParameterExpression) expression.Expression {
		return expression.GreaterThan(expression.Field(e, "Age"), expression.Constant(n))
	})))
}

func ageBelow(n int) *specification.ExpressionSpecification[Member] {
	return specification.NewExpression(expression.Must(expression.Where[Member](func(e *expression.ParameterExpression) expression.Expression {
		return expression.LessThan(expression.Field(e, "Age"), expression.Constant(n))
	})))
}

func toSql(t *testing.T, q any) (string, []any) {
	t.Helper()

	sqlizer, ok := q.(sq.Sqlizer)
	require.True(t, ok)
	statement, args, err := sqlizer.ToSql()
	require.NoError(t, err)

	return statement, args
}

func TestQuery_Comparison(t *testing.T) {
	t.Parallel()

	q := sqlquery.New[Member](nil, "members").Where(predicate(t, func(e *expression.ParameterExpression) expression.Expression {
		return expression.GreaterThan(expression.Field(e, "Age"), expression.Constant(18))
	}))

	statement, args := toSql(t, q)

	require.Equal(t, "SELECT id, name, age, active FROM members WHERE age > ?", statement)
	require.Equal(t, []any{18}, args)
}

func TestQuery_ConstantOnTheLeft(t *testing.T) {
	t.Parallel()

	q := sqlquery.New[Member](nil, "members").Where(predicate(t, func(e *expression.ParameterExpression) expression.Expression {
		return expression.LessThanOrEqual(expression.Constant(18), expression.Field(e, "Age"))
	}))

	statement, args := toSql(t, q)

	require.Contains(t, statement, "WHERE age >= ?")
	require.Equal(t, []any{18}, args)
}

func TestQuery_CombinedSpecification(t *testing.T) {
	t.Parallel()

	spec := ageAbove(18).And(ageBelow(65)).(specification.Expressive[Member])
	q := specification.ApplyQuery[Member](sqlquery.New[Member](nil, "members", sqlquery.WithPlaceholder(sq.Dollar)), spec)

	statement, args := toSql(t, q)

	require.Equal(t, "SELECT id, name, age, active FROM members WHERE (age > $1 AND age < $2)", statement)
	require.Equal(t, []any{18, 65}, args)
}

func TestQuery_OrNot(t *testing.T) {
	t.Parallel()

	spec := ageBelow(18).Or(ageAbove(65)).Not().(specification.Expressive[Member])
	q := specification.ApplyQuery[Member](sqlquery.New[Member](nil, "members"), spec)

	statement, args := toSql(t, q)

	require.Contains(t, statement, "NOT (")
	require.Contains(t, statement, "OR")
	require.Equal(t, []any{18, 65}, args)
}

func TestQuery_BoolFieldAndFieldComparison(t *testing.T) {
	t.Parallel()

	q := sqlquery.New[Member](nil, "members").
		Where(predicate(t, func(e *expression.ParameterExpression) expression.Expression {
			return expression.Field(e, "Active")
		})).
		Where(predicate(t, func(e *expression.ParameterExpression) expression.Expression {
			return expression.NotEqual(expression.Field(e, "ID"), expression.Field(e, "Age"))
		}))

	statement, args := toSql(t, q)

	require.Contains(t, statement, "WHERE active = ? AND id <> age")
	require.Equal(t, []any{true}, args)
}

func TestQuery_ParameterFreeSubexpressions(t *testing.T) {
	t.Parallel()

	double := func(n int) int { return n * 2 }
	q := sqlquery.New[Member](nil, "members").
		Where(predicate(t, func(e *expression.ParameterExpression) expression.Expression {
			return expression.Equal(expression.Field(e, "Age"), expression.Call("double", double, expression.Constant(9)))
		})).
		Where(specification.True[Member]().Expression())

	statement, args := toSql(t, q)

	require.Contains(t, statement, "WHERE age = ? AND 1=1")
	require.Equal(t, []any{18}, args)
}

func TestQuery_Untranslatable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		build where
	}{
		{
			name: "call over the entity",
			build: func(e *expression.ParameterExpression) expression.Expression {
				return expression.Call("strings.HasPrefix", strings.HasPrefix, expression.Field(e, "Name"), expression.Constant("A"))
			},
		},
		{
			name: "field without column",
			build: func(e *expression.ParameterExpression) expression.Expression {
				return expression.Equal(expression.Field(e, "Nickname"), expression.Constant("x"))
			},
		},
		{
			name: "negated call",
			build: func(e *expression.ParameterExpression) expression.Expression {
				return expression.Negate(expression.Call("strings.HasPrefix", strings.HasPrefix, expression.Field(e, "Name"), expression.Constant("A")))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := logger.NewWithWriter(logger.LogLevelWarn, logger.JSONLoggingFormat, &buf)
			q := sqlquery.New[Member](nil, "members", sqlquery.WithLogger(log)).Where(predicate(t, tc.build))

			_, err := q.All(context.Background())

			require.ErrorIs(t, err, sqlquery.ErrUntranslatable)
			require.Contains(t, buf.String(), "predicate cannot be translated to sql")
		})
	}
}

func TestQuery_NotStruct(t *testing.T) {
	t.Parallel()

	_, _, err := sqlquery.New[int](nil, "numbers").ToSql()

	require.ErrorIs(t, err, sqlquery.ErrNotStruct)
}

func openMembers(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE members (id INTEGER PRIMARY KEY, name TEXT, age INTEGER, active BOOLEAN)`)
	require.NoError(t, err)

	for _, m := range []Member{
		{ID: 1, Name: "Ann", Age: 10, Active: true},
		{ID: 2, Name: "Bob", Age: 20, Active: true},
		{ID: 3, Name: "Cid", Age: 70, Active: false},
	} {
		_, err = db.Exec(`INSERT INTO members (id, name, age, active) VALUES (?, ?, ?, ?)`, m.ID, m.Name, m.Age, m.Active)
		require.NoError(t, err)
	}

	return db
}

func TestQuery_All(t *testing.T) {
	t.Parallel()

	db := openMembers(t)

	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.LogLevelDebug, logger.JSONLoggingFormat, &buf)
	members := sqlquery.New[Member](db, "members", sqlquery.WithLogger(log))

	spec := ageAbove(18).And(ageBelow(65)).(specification.Expressive[Member])
	got, err := specification.ApplyQuery[Member](members, spec).All(context.Background())

	require.NoError(t, err)
	require.Equal(t, []Member{{ID: 2, Name: "Bob", Age: 20, Active: true}}, got)
	require.Contains(t, buf.String(), "running query")

	inactive := predicate(t, func(e *expression.ParameterExpression) expression.Expression {
		return expression.Negate(expression.Field(e, "Active"))
	})
	got, err = members.Where(inactive).All(context.Background())

	require.NoError(t, err)
	require.Equal(t, []Member{{ID: 3, Name: "Cid", Age: 70}}, got)

	got, err = members.All(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestQuery_AllEmpty(t *testing.T) {
	t.Parallel()

	db := openMembers(t)

	got, err := specification.ApplyQuery[Member](sqlquery.New[Member](db, "members"), specification.False[Member]()).All(context.Background())

	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestQuery_QueryError(t *testing.T) {
	t.Parallel()

	db := openMembers(t)

	_, err := sqlquery.New[Member](db, "missing").All(context.Background())

	require.Error(t, err)
	require.Contains(t, err.Error(), "sqlquery: query missing")
}
