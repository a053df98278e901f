// Package sqlquery is a query.Queryable backed by database/sql or pgx.
// Predicates are translated to SQL with squirrel and run by the database.
package sqlquery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/go-leo/specification/expression"
	"github.com/go-leo/specification/query"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/slices"
)

// Queryer runs a query. *sql.DB, *sql.Conn and *sql.Tx implement it.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// PgxQueryer runs a query on pgx. *pgxpool.Pool, *pgx.Conn and pgx.Tx
// implement it.
type PgxQueryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Query selects rows of a table into values of the struct type T.
type Query[T any] struct {
	db          Queryer
	pool        PgxQueryer
	table       string
	columns     *columns
	err         error
	predicates  []*expression.Predicate[T]
	options     *option
	instruments *instruments
}

// New returns a query over table run through database/sql. Columns are
// derived from the fields of T; an error in doing so is returned when the
// query is built.
func New[T any](db Queryer, table string, opts ...Option) *Query[T] {
	q := newQuery[T](table, opts...)
	q.db = db
	return q
}

// NewPgx returns a query over table run through pgx. Placeholders default to
// sq.Dollar.
func NewPgx[T any](pool PgxQueryer, table string, opts ...Option) *Query[T] {
	q := newQuery[T](table, append([]Option{WithPlaceholder(sq.Dollar)}, opts...)...)
	q.pool = pool
	return q
}

func newQuery[T any](table string, opts ...Option) *Query[T] {
	o := newOption(opts...)
	cols, colsErr := columnsOf(reflect.TypeFor[T]())
	inst, instErr := newInstruments(o.TracerProvider, o.MeterProvider)
	return &Query[T]{
		table:       table,
		columns:     cols,
		err:         errors.Join(colsErr, instErr),
		options:     o,
		instruments: inst,
	}
}

func (q *Query[T]) Where(predicate *expression.Predicate[T]) query.Queryable[T] {
	clone := *q
	clone.predicates = append(slices.Clip(slices.Clone(q.predicates)), predicate)
	return &clone
}

// ToSql builds the SELECT statement and its arguments.
func (q *Query[T]) ToSql() (string, []any, error) {
	if q.err != nil {
		return "", nil, q.err
	}
	translator := NewTranslator(q.columns.byField, q.options.Logger)
	builder := sq.StatementBuilder.
		PlaceholderFormat(q.options.Placeholder).
		Select(q.columns.names()...).
		From(q.table)
	for _, predicate := range q.predicates {
		if predicate == nil {
			return "", nil, fmt.Errorf("%w: nil predicate", expression.ErrInvalidExpression)
		}
		cond, err := translator.Translate(predicate.Body(), predicate.Parameter())
		if err != nil {
			return "", nil, err
		}
		builder = builder.Where(cond)
	}
	return builder.ToSql()
}

func (q *Query[T]) All(ctx context.Context) (result []T, err error) {
	if q.instruments != nil {
		var span trace.Span
		ctx, span = q.instruments.tracer.Start(ctx, "sqlquery.All",
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(attribute.String("db.sql.table", q.table)),
		)
		defer func() {
			q.instruments.record(ctx, span, q.table, len(result), err)
		}()
	}

	statement, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	if q.instruments != nil {
		trace.SpanFromContext(ctx).SetAttributes(attribute.String("db.statement", statement))
	}
	if q.options.Logger != nil {
		q.options.Logger.Debug().
			Str("table", q.table).
			Str("sql", statement).
			Interface("args", args).
			Msg("running query")
	}

	if q.pool != nil {
		return q.allPgx(ctx, statement, args)
	}
	return q.allSQL(ctx, statement, args)
}

func (q *Query[T]) allSQL(ctx context.Context, statement string, args []any) ([]T, error) {
	rows, err := q.db.QueryContext(ctx, statement, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlquery: query %s: %w", q.table, err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		var item T
		if err := rows.Scan(q.columns.destinations(reflect.ValueOf(&item).Elem())...); err != nil {
			return nil, fmt.Errorf("sqlquery: scan %s: %w", q.table, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlquery: read %s: %w", q.table, err)
	}
	return result, nil
}

func (q *Query[T]) allPgx(ctx context.Context, statement string, args []any) ([]T, error) {
	rows, err := q.pool.Query(ctx, statement, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlquery: query %s: %w", q.table, err)
	}

	result := make([]T, 0)
	if err := pgxscan.ScanAll(&result, rows); err != nil {
		return nil, fmt.Errorf("sqlquery: scan %s: %w", q.table, err)
	}
	return result, nil
}

type instruments struct {
	tracer  trace.Tracer
	queries metric.Int64Counter
	rows    metric.Int64Counter
}

func newInstruments(tp trace.TracerProvider, mp metric.MeterProvider) (*instruments, error) {
	meter := mp.Meter(instrumentationName)
	queries, err := meter.Int64Counter("sqlquery.queries", metric.WithDescription("queries run, by table and outcome"))
	if err != nil {
		return nil, err
	}
	rows, err := meter.Int64Counter("sqlquery.rows", metric.WithDescription("rows returned, by table"))
	if err != nil {
		return nil, err
	}
	return &instruments{tracer: tp.Tracer(instrumentationName), queries: queries, rows: rows}, nil
}

func (i *instruments) record(ctx context.Context, span trace.Span, table string, rows int, err error) {
	defer span.End()
	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int("db.rows", rows))
		i.rows.Add(ctx, int64(rows), metric.WithAttributes(attribute.String("table", table)))
	}
	i.queries.Add(ctx, 1, metric.WithAttributes(attribute.String("table", table), attribute.String("outcome", outcome)))
}
