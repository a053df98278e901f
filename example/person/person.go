// Package person shows specgen on a small domain type. Run go generate after
// editing the annotated predicates.
package person

import "github.com/go-leo/specification/expression"

//go:generate go run github.com/go-leo/specification/cmd/specgen

type Person struct {
	ID   int
	Name string
	Age  int
}

// @Specification
var IsAdult = expression.Must(expression.Where[Person](func(e *expression.ParameterExpression) expression.Expression {
	return expression.GreaterThanOrEqual(expression.Field(e, "Age"), expression.Constant(18))
}))

// IsOlderThan matches people strictly older than n.
//
// @Specification
var IsOlderThan = func(n int) *expression.Predicate[Person] {
	return expression.Must(expression.Where[Person](func(e *expression.ParameterExpression) expression.Expression {
		return expression.GreaterThan(expression.Field(e, "Age"), expression.Constant(n))
	}))
}

// @Specification
func HasAgeBetween(low, high int) *expression.Predicate[Person] {
	return expression.Must(expression.Where[Person](func(e *expression.ParameterExpression) expression.Expression {
		return expression.And(
			expression.GreaterThanOrEqual(expression.Field(e, "Age"), expression.Constant(low)),
			expression.LessThanOrEqual(expression.Field(e, "Age"), expression.Constant(high)),
		)
	}))
}

// @Specification
var NamedWithAgeAbove = func(name string) func(age int) *expression.Predicate[Person] {
	return func(age int) *expression.Predicate[Person] {
		return expression.Must(expression.Where[Person](func(e *expression.ParameterExpression) expression.Expression {
			return expression.And(
				expression.Equal(expression.Field(e, "Name"), expression.Constant(name)),
				expression.GreaterThan(expression.Field(e, "Age"), expression.Constant(age)),
			)
		}))
	}
}
