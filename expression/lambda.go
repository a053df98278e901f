package expression

import (
	"reflect"
	"strings"

	"golang.org/x/exp/slices"
)

// LambdaExpression is a function literal: parameters and a body that may
// refer to them.
type LambdaExpression struct {
	body   Expression
	params []*ParameterExpression
}

// Lambda creates a lambda over params.
func Lambda(body Expression, params ...*ParameterExpression) *LambdaExpression {
	return &LambdaExpression{body: body, params: slices.Clone(params)}
}

func (l *LambdaExpression) Kind() Kind { return KindLambda }

// Type returns the Go function type of the lambda, nil if any part is untyped.
func (l *LambdaExpression) Type() reflect.Type {
	if isNil(l.body) || l.body.Type() == nil {
		return nil
	}
	in := make([]reflect.Type, 0, len(l.params))
	for _, p := range l.params {
		if p == nil || p.Type() == nil {
			return nil
		}
		in = append(in, p.Type())
	}
	return reflect.FuncOf(in, []reflect.Type{l.body.Type()}, false)
}

func (l *LambdaExpression) Body() Expression { return l.body }

// Parameters returns a copy of the parameter list.
func (l *LambdaExpression) Parameters() []*ParameterExpression { return slices.Clone(l.params) }

// VisitChildren visits the body only; parameters are declarations.
func (l *LambdaExpression) VisitChildren(v Visitor) Expression {
	if isNil(l.body) {
		return l
	}
	body := v.Visit(l.body)
	if body == l.body {
		return l
	}
	return &LambdaExpression{body: body, params: l.params}
}

func (l *LambdaExpression) String() string {
	names := make([]string, 0, len(l.params))
	for _, p := range l.params {
		names = append(names, stringOf(p))
	}
	head := strings.Join(names, ", ")
	if len(l.params) != 1 {
		head = "(" + head + ")"
	}
	return head + " => " + stringOf(l.body)
}

func (*LambdaExpression) expression() {}
