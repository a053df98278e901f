package shapes

import (
	"time"

	"github.com/go-leo/specification/expression"
)

type Order struct {
	ID       int
	Total    float64
	Customer string
	PlacedAt time.Time
}

type Customer struct {
	Name string
}

// Large matches orders above 100.
//
// @Specification
var Large = expression.Must(expression.Where[Order](func(e *expression.ParameterExpression) expression.Expression {
	return expression.GreaterThan(expression.Field(e, "Total"), expression.Constant(100.0))
}))

// @Specification(Order)
func PlacedAt(t time.Time) *expression.Predicate[Order] {
	return expression.Must(expression.Where[Order](func(e *expression.ParameterExpression) expression.Expression {
		return expression.Equal(expression.Field(e, "PlacedAt"), expression.Constant(t))
	}))
}

// @Specification
var ByCustomer = func(name string) func(minimum float64) *expression.Predicate[*Order] {
	return func(minimum float64) *expression.Predicate[*Order] {
		return expression.Must(expression.Where[*Order](func(e *expression.ParameterExpression) expression.Expression {
			return expression.And(
				expression.Equal(expression.Field(e, "Customer"), expression.Constant(name)),
				expression.GreaterThanOrEqual(expression.Field(e, "Total"), expression.Constant(minimum)),
			)
		}))
	}
}

// @Specification
func byID(_ int, id int) *expression.Predicate[Order] {
	return expression.Must(expression.Where[Order](func(e *expression.ParameterExpression) expression.Expression {
		return expression.Equal(expression.Field(e, "ID"), expression.Constant(id))
	}))
}

// TotalRule builds an order predicate from a total.
type TotalRule func(total float64) *expression.Predicate[Order]

// @Specification
var AtLeast TotalRule = func(total float64) *expression.Predicate[Order] {
	return expression.Must(expression.Where[Order](func(e *expression.ParameterExpression) expression.Expression {
		return expression.GreaterThanOrEqual(expression.Field(e, "Total"), expression.Constant(total))
	}))
}

// @Specification
func PlacedBy(specification string, spec string) *expression.Predicate[Order] {
	return expression.Must(expression.Where[Order](func(e *expression.ParameterExpression) expression.Expression {
		return expression.Equal(expression.Field(e, "Customer"), expression.Constant(specification+spec))
	}))
}

// @Specification
var IsBig = func(o Order) bool { return o.Total > 100 }

// @Specification(Order)
var Named = func(name string) *expression.Predicate[Customer] {
	return expression.Must(expression.Where[Customer](func(e *expression.ParameterExpression) expression.Expression {
		return expression.Equal(expression.Field(e, "Name"), expression.Constant(name))
	}))
}

// @Specification
func AnyOf(ids ...int) *expression.Predicate[Order] {
	return nil
}

// @Specification
func Pair() (*expression.Predicate[Order], error) {
	return nil, nil
}

// @Specification
var Threshold = 10

// @Specification
var Positive = func(n int) *expression.Predicate[int] {
	return nil
}

// NotAnnotated is ignored.
var NotAnnotated = Large

var _ = byID
