package sqlquery_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/go-leo/specification/expression"
	"github.com/go-leo/specification/query/sqlquery"
	"github.com/go-leo/specification/specification"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

const workingAgeSQL = `SELECT id, name, age, active FROM members WHERE (age > $1 AND age < $2)`

func runPgxTest(t *testing.T, setupMock func(pgxmock.PgxPoolIface), testFn func(*testing.T, pgxmock.PgxPoolIface)) {
	t.Helper()
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	setupMock(mock)
	testFn(t, mock)

	require.NoError(t, mock.ExpectationsWereMet())
}

func workingAge() specification.Expressive[Member] {
	return ageAbove(18).And(ageBelow(65)).(specification.Expressive[Member])
}

func TestQuery_AllPgx(t *testing.T) {
	runPgxTest(t,
		func(mock pgxmock.PgxPoolIface) {
			rows := pgxmock.NewRows([]string{"id", "name", "age", "active"}).
				AddRow(2, "Bob", 20, true)
			mock.ExpectQuery(regexp.QuoteMeta(workingAgeSQL)).
				WithArgs(18, 65).
				WillReturnRows(rows)
		},
		func(t *testing.T, mock pgxmock.PgxPoolIface) {
			got, err := specification.ApplyQuery[Member](sqlquery.NewPgx[Member](mock, "members"), workingAge()).
				All(context.Background())

			require.NoError(t, err)
			require.Equal(t, []Member{{ID: 2, Name: "Bob", Age: 20, Active: true}}, got)
		},
	)
}

func TestQuery_AllPgxEmpty(t *testing.T) {
	runPgxTest(t,
		func(mock pgxmock.PgxPoolIface) {
			mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, age, active FROM members WHERE active = $1`)).
				WithArgs(true).
				WillReturnRows(pgxmock.NewRows([]string{"id", "name", "age", "active"}))
		},
		func(t *testing.T, mock pgxmock.PgxPoolIface) {
			active := predicate(t, func(e *expression.ParameterExpression) expression.Expression {
				return expression.Field(e, "Active")
			})
			got, err := sqlquery.NewPgx[Member](mock, "members").Where(active).All(context.Background())

			require.NoError(t, err)
			require.NotNil(t, got)
			require.Empty(t, got)
		},
	)
}

func TestQuery_AllPgxError(t *testing.T) {
	runPgxTest(t,
		func(mock pgxmock.PgxPoolIface) {
			mock.ExpectQuery(regexp.QuoteMeta(workingAgeSQL)).
				WithArgs(18, 65).
				WillReturnError(errors.New("connection refused"))
		},
		func(t *testing.T, mock pgxmock.PgxPoolIface) {
			_, err := specification.ApplyQuery[Member](sqlquery.NewPgx[Member](mock, "members"), workingAge()).
				All(context.Background())

			require.Error(t, err)
			require.Contains(t, err.Error(), "sqlquery: query members")
		},
	)
}

func TestQuery_Instrumentation(t *testing.T) {
	t.Parallel()

	db := openMembers(t)
	recorder := tracetest.NewSpanRecorder()
	reader := sdkmetric.NewManualReader()
	members := sqlquery.New[Member](db, "members",
		sqlquery.WithTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))),
		sqlquery.WithMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))),
	)

	got, err := specification.ApplyQuery[Member](members, workingAge()).All(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, err = sqlquery.New[Member](db, "missing",
		sqlquery.WithTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))),
	).All(context.Background())
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	require.Equal(t, "sqlquery.All", spans[0].Name())
	require.Contains(t, spans[0].Attributes(), attribute.String("db.sql.table", "members"))
	require.Contains(t, spans[0].Attributes(), attribute.Int("db.rows", 1))
	require.Equal(t, codes.Error, spans[1].Status().Code)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	rows := int64(-1)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok && m.Name == "sqlquery.rows" {
				rows = sum.DataPoints[0].Value
			}
		}
	}
	require.Equal(t, int64(1), rows)
}

type Endpoint struct {
	ID       int
	HTTPCode int
	APIKey   string
}

func TestQuery_AllPgxAcronymFields(t *testing.T) {
	runPgxTest(t,
		func(mock pgxmock.PgxPoolIface) {
			rows := pgxmock.NewRows([]string{"id", "http_code", "api_key"}).
				AddRow(1, 404, "k1")
			mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, http_code, api_key FROM endpoints WHERE http_code = $1`)).
				WithArgs(404).
				WillReturnRows(rows)
		},
		func(t *testing.T, mock pgxmock.PgxPoolIface) {
			notFound, err := expression.Where[Endpoint](func(e *expression.ParameterExpression) expression.Expression {
				return expression.Equal(expression.Field(e, "HTTPCode"), expression.Constant(404))
			})
			require.NoError(t, err)

			got, err := sqlquery.NewPgx[Endpoint](mock, "endpoints").Where(notFound).All(context.Background())

			require.NoError(t, err)
			require.Equal(t, []Endpoint{{ID: 1, HTTPCode: 404, APIKey: "k1"}}, got)
		},
	)
}
