package sqlquery

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-leo/specification/expression"
	"github.com/go-leo/specification/logger"
)

var operators = map[expression.BinaryOperator]string{
	expression.OpEqual:              "=",
	expression.OpNotEqual:           "<>",
	expression.OpLessThan:           "<",
	expression.OpLessThanOrEqual:    "<=",
	expression.OpGreaterThan:        ">",
	expression.OpGreaterThanOrEqual: ">=",
}

// Translator turns predicate bodies into squirrel conditions. Columns maps
// struct field names to column names.
type Translator struct {
	logger  *logger.Logger
	columns map[string]string
}

func NewTranslator(columns map[string]string, log *logger.Logger) *Translator {
	return &Translator{logger: log, columns: columns}
}

// Translate converts body, a bool expression over param, into a condition.
// Invocations are inlined first and sub-expressions that do not depend on
// param are evaluated to values.
func (t *Translator) Translate(body expression.Expression, param *expression.ParameterExpression) (sq.Sqlizer, error) {
	cond, err := t.translate(expression.Inline(body), param)
	if err != nil && t.logger != nil {
		t.logger.Warn().
			Err(err).
			Str("expression", fmt.Sprint(body)).
			Msg("predicate cannot be translated to sql")
	}
	return cond, err
}

func (t *Translator) translate(expr expression.Expression, param *expression.ParameterExpression) (sq.Sqlizer, error) {
	if expr == nil {
		return nil, fmt.Errorf("%w: missing expression", ErrUntranslatable)
	}
	if !expression.References(expr, param) {
		value, err := evaluate(expr)
		if err != nil {
			return nil, err
		}
		if b, ok := value.(bool); ok {
			if b {
				return sq.Expr("1=1"), nil
			}
			return sq.Expr("1=0"), nil
		}
		return nil, fmt.Errorf("%w: %s is not a condition", ErrUntranslatable, expr)
	}

	switch e := expr.(type) {
	case *expression.BinaryExpression:
		if !e.Operator().IsLogical() {
			return t.compare(e, param)
		}
		left, err := t.translate(e.Left(), param)
		if err != nil {
			return nil, err
		}
		right, err := t.translate(e.Right(), param)
		if err != nil {
			return nil, err
		}
		if e.Operator() == expression.OpAndAlso {
			return sq.And{left, right}, nil
		}
		return sq.Or{left, right}, nil

	case *expression.UnaryExpression:
		operand, err := t.translate(e.Operand(), param)
		if err != nil {
			return nil, err
		}
		return sq.Expr("NOT (?)", operand), nil

	case *expression.MemberExpression:
		col, err := t.column(e, param)
		if err != nil {
			return nil, err
		}
		return sq.Eq{col: true}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUntranslatable, expr)
}

func (t *Translator) compare(e *expression.BinaryExpression, param *expression.ParameterExpression) (sq.Sqlizer, error) {
	op := e.Operator()
	left, leftIsColumn, err := t.operand(e.Left(), param)
	if err != nil {
		return nil, err
	}
	right, rightIsColumn, err := t.operand(e.Right(), param)
	if err != nil {
		return nil, err
	}
	switch {
	case leftIsColumn && rightIsColumn:
		return sq.Expr(fmt.Sprintf("%s %s %s", left, operators[op], right)), nil
	case leftIsColumn:
		return condition(op, left.(string), right), nil
	default:
		return condition(op.Flip(), right.(string), left), nil
	}
}

// operand returns the column name of a field of param or the value of an
// expression independent of param.
func (t *Translator) operand(expr expression.Expression, param *expression.ParameterExpression) (any, bool, error) {
	if member, ok := expr.(*expression.MemberExpression); ok && member.Target() == expression.Expression(param) {
		col, err := t.column(member, param)
		return col, true, err
	}
	if expression.References(expr, param) {
		return nil, false, fmt.Errorf("%w: %s", ErrUntranslatable, expr)
	}
	value, err := evaluate(expr)
	return value, false, err
}

func (t *Translator) column(member *expression.MemberExpression, param *expression.ParameterExpression) (string, error) {
	if member.Target() != expression.Expression(param) {
		return "", fmt.Errorf("%w: nested field path %s", ErrUntranslatable, member)
	}
	col, ok := t.columns[member.Name()]
	if !ok {
		return "", fmt.Errorf("%w: no column for field %s", ErrUntranslatable, member.Name())
	}
	return col, nil
}

func condition(op expression.BinaryOperator, col string, value any) sq.Sqlizer {
	switch op {
	case expression.OpNotEqual:
		return sq.NotEq{col: value}
	case expression.OpLessThan:
		return sq.Lt{col: value}
	case expression.OpLessThanOrEqual:
		return sq.LtOrEq{col: value}
	case expression.OpGreaterThan:
		return sq.Gt{col: value}
	case expression.OpGreaterThanOrEqual:
		return sq.GtOrEq{col: value}
	default:
		return sq.Eq{col: value}
	}
}

func evaluate(expr expression.Expression) (any, error) {
	v, err := expression.Evaluate(expr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUntranslatable, expr, err)
	}
	if !v.IsValid() {
		return nil, nil
	}
	return v.Interface(), nil
}
