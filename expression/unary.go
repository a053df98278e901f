package expression

import "reflect"

// UnaryOperator is the operator of a UnaryExpression.
type UnaryOperator int

const (
	OpNot UnaryOperator = iota + 1
)

func (op UnaryOperator) String() string {
	if op == OpNot {
		return "!"
	}
	return "?"
}

// UnaryExpression applies a unary operator to a bool operand.
type UnaryExpression struct {
	op      UnaryOperator
	operand Expression
}

// Negate creates the logical negation of operand.
func Negate(operand Expression) *UnaryExpression {
	return &UnaryExpression{op: OpNot, operand: operand}
}

func (u *UnaryExpression) Kind() Kind { return KindUnary }

func (u *UnaryExpression) Type() reflect.Type { return boolType }

func (u *UnaryExpression) Operator() UnaryOperator { return u.op }

func (u *UnaryExpression) Operand() Expression { return u.operand }

func (u *UnaryExpression) VisitChildren(v Visitor) Expression {
	if isNil(u.operand) {
		return u
	}
	operand := v.Visit(u.operand)
	if operand == u.operand {
		return u
	}
	return &UnaryExpression{op: u.op, operand: operand}
}

func (u *UnaryExpression) String() string { return u.op.String() + stringOf(u.operand) }

func (*UnaryExpression) expression() {}
