package expression

import (
	"reflect"
	"strings"

	"golang.org/x/exp/slices"
)

// InvocationExpression applies a lambda to argument expressions.
type InvocationExpression struct {
	lambda *LambdaExpression
	args   []Expression
}

// Invoke creates an application of lambda to args.
func Invoke(lambda *LambdaExpression, args ...Expression) *InvocationExpression {
	return &InvocationExpression{lambda: lambda, args: slices.Clone(args)}
}

func (i *InvocationExpression) Kind() Kind { return KindInvocation }

func (i *InvocationExpression) Type() reflect.Type {
	if i.lambda == nil || isNil(i.lambda.body) {
		return nil
	}
	return i.lambda.body.Type()
}

func (i *InvocationExpression) Lambda() *LambdaExpression { return i.lambda }

func (i *InvocationExpression) Arguments() []Expression { return slices.Clone(i.args) }

// VisitChildren visits the lambda and the arguments. A visitor that turns the
// lambda into anything but a lambda leaves the invocation without one, which
// Validate reports.
func (i *InvocationExpression) VisitChildren(v Visitor) Expression {
	lambda := i.lambda
	changed := false
	if lambda != nil {
		visited := v.Visit(lambda)
		if visited != Expression(lambda) {
			changed = true
			lambda, _ = visited.(*LambdaExpression)
		}
	}
	args, argsChanged := visitAll(v, i.args)
	if !changed && !argsChanged {
		return i
	}
	return &InvocationExpression{lambda: lambda, args: args}
}

func (i *InvocationExpression) String() string {
	return "(" + stringOf(i.lambda) + ")(" + joinExpressions(i.args) + ")"
}

func (*InvocationExpression) expression() {}

func visitAll(v Visitor, exprs []Expression) ([]Expression, bool) {
	var result []Expression
	for index, expr := range exprs {
		visited := expr
		if !isNil(expr) {
			visited = v.Visit(expr)
		}
		if visited != expr && result == nil {
			result = slices.Clone(exprs)
		}
		if result != nil {
			result[index] = visited
		}
	}
	if result == nil {
		return exprs, false
	}
	return result, true
}

func joinExpressions(exprs []Expression) string {
	parts := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		parts = append(parts, stringOf(expr))
	}
	return strings.Join(parts, ", ")
}
