package expression

import "reflect"

// BinaryOperator is the operator of a BinaryExpression. Every operator yields a bool.
type BinaryOperator int

const (
	OpEqual BinaryOperator = iota + 1
	OpNotEqual
	OpLessThan
	OpLessThanOrEqual
	OpGreaterThan
	OpGreaterThanOrEqual
	OpAndAlso
	OpOrElse
)

func (op BinaryOperator) String() string {
	switch op {
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpLessThan:
		return "<"
	case OpLessThanOrEqual:
		return "<="
	case OpGreaterThan:
		return ">"
	case OpGreaterThanOrEqual:
		return ">="
	case OpAndAlso:
		return "&&"
	case OpOrElse:
		return "||"
	default:
		return "?"
	}
}

// IsLogical reports whether op is AndAlso or OrElse.
func (op BinaryOperator) IsLogical() bool { return op == OpAndAlso || op == OpOrElse }

// IsOrdering reports whether op needs ordered operands.
func (op BinaryOperator) IsOrdering() bool {
	return op == OpLessThan || op == OpLessThanOrEqual || op == OpGreaterThan || op == OpGreaterThanOrEqual
}

// Flip returns the operator to use when the operands are swapped.
func (op BinaryOperator) Flip() BinaryOperator {
	switch op {
	case OpLessThan:
		return OpGreaterThan
	case OpLessThanOrEqual:
		return OpGreaterThanOrEqual
	case OpGreaterThan:
		return OpLessThan
	case OpGreaterThanOrEqual:
		return OpLessThanOrEqual
	default:
		return op
	}
}

// BinaryExpression applies a comparison or logical operator to two operands.
type BinaryExpression struct {
	op    BinaryOperator
	left  Expression
	right Expression
}

// MakeBinary creates a binary expression for op.
func MakeBinary(op BinaryOperator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{op: op, left: left, right: right}
}

func Equal(left, right Expression) *BinaryExpression { return MakeBinary(OpEqual, left, right) }

func NotEqual(left, right Expression) *BinaryExpression { return MakeBinary(OpNotEqual, left, right) }

func LessThan(left, right Expression) *BinaryExpression { return MakeBinary(OpLessThan, left, right) }

func LessThanOrEqual(left, right Expression) *BinaryExpression {
	return MakeBinary(OpLessThanOrEqual, left, right)
}

func GreaterThan(left, right Expression) *BinaryExpression {
	return MakeBinary(OpGreaterThan, left, right)
}

func GreaterThanOrEqual(left, right Expression) *BinaryExpression {
	return MakeBinary(OpGreaterThanOrEqual, left, right)
}

// And creates a short-circuit logical AND node.
func And(left, right Expression) *BinaryExpression { return MakeBinary(OpAndAlso, left, right) }

// Or creates a short-circuit logical OR node.
func Or(left, right Expression) *BinaryExpression { return MakeBinary(OpOrElse, left, right) }

func (b *BinaryExpression) Kind() Kind { return KindBinary }

func (b *BinaryExpression) Type() reflect.Type { return boolType }

func (b *BinaryExpression) Operator() BinaryOperator { return b.op }

func (b *BinaryExpression) Left() Expression { return b.left }

func (b *BinaryExpression) Right() Expression { return b.right }

func (b *BinaryExpression) VisitChildren(v Visitor) Expression {
	left, right := b.left, b.right
	if !isNil(left) {
		left = v.Visit(left)
	}
	if !isNil(right) {
		right = v.Visit(right)
	}
	if left == b.left && right == b.right {
		return b
	}
	return MakeBinary(b.op, left, right)
}

func (b *BinaryExpression) String() string {
	return "(" + stringOf(b.left) + " " + b.op.String() + " " + stringOf(b.right) + ")"
}

func (*BinaryExpression) expression() {}
