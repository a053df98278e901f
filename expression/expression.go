// Package expression implements inspectable predicate expression trees.
//
// An Expression is an immutable node of a small tagged union: parameters,
// constants, struct field access, binary and unary operators, lambda
// invocations, calls of Go functions and lambdas. Trees are never mutated;
// rewriting allocates new nodes along the changed paths and shares the rest.
//
// Parameters are symbols compared by identity. Two parameters with the same
// name and type are still different parameters, which is what makes it safe
// to combine predicates that were written independently (see Combine).
package expression

import (
	"reflect"
)

// Kind identifies the concrete node type of an Expression.
type Kind int

const (
	KindParameter Kind = iota + 1
	KindConstant
	KindMember
	KindBinary
	KindUnary
	KindInvocation
	KindCall
	KindLambda
)

func (k Kind) String() string {
	switch k {
	case KindParameter:
		return "Parameter"
	case KindConstant:
		return "Constant"
	case KindMember:
		return "Member"
	case KindBinary:
		return "Binary"
	case KindUnary:
		return "Unary"
	case KindInvocation:
		return "Invocation"
	case KindCall:
		return "Call"
	case KindLambda:
		return "Lambda"
	default:
		return "Unknown"
	}
}

// Expression is a node of an expression tree.
type Expression interface {
	// Kind returns the node type.
	Kind() Kind

	// Type returns the Go type of the value produced by the expression,
	// or nil when it cannot be determined (for example an unknown field).
	Type() reflect.Type

	// VisitChildren calls v on every direct child and returns a node with the
	// results. The receiver itself is returned when no child changed.
	VisitChildren(v Visitor) Expression

	// String renders the expression in a Go-like notation.
	String() string

	// expression seals the union.
	expression()
}

var boolType = reflect.TypeOf(false)

// isNil reports whether expr is nil or a typed nil node.
func isNil(expr Expression) bool {
	if expr == nil {
		return true
	}
	switch e := expr.(type) {
	case *ParameterExpression:
		return e == nil
	case *ConstantExpression:
		return e == nil
	case *MemberExpression:
		return e == nil
	case *BinaryExpression:
		return e == nil
	case *UnaryExpression:
		return e == nil
	case *InvocationExpression:
		return e == nil
	case *CallExpression:
		return e == nil
	case *LambdaExpression:
		return e == nil
	}
	return false
}

func stringOf(expr Expression) string {
	if isNil(expr) {
		return "<nil>"
	}
	return expr.String()
}
