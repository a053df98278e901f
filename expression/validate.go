package expression

import (
	"errors"
	"fmt"
	"reflect"
)

// Validate checks expr for structural mistakes: missing operands, unknown
// fields, operands that cannot be compared, non-bool logical operands and
// arity or type mismatches in invocations and calls. Every problem found is
// reported, each wrapping ErrInvalidExpression.
func Validate(expr Expression) error {
	if isNil(expr) {
		return fmt.Errorf("%w: nil expression", ErrInvalidExpression)
	}
	var errs []error
	Inspect(expr, func(e Expression) bool {
		if err := validateNode(e); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %s", ErrInvalidExpression, e, err))
		}
		return true
	})
	return errors.Join(errs...)
}

func validateNode(expr Expression) error {
	switch e := expr.(type) {
	case *ParameterExpression:
		if e.typ == nil {
			return errors.New("parameter has no type")
		}
	case *MemberExpression:
		if isNil(e.target) {
			return errors.New("field access has no target")
		}
		if !e.found && e.target.Type() != nil {
			return fmt.Errorf("%s has no exported field %q", e.target.Type(), e.name)
		}
	case *BinaryExpression:
		if isNil(e.left) || isNil(e.right) {
			return errors.New("missing operand")
		}
		return validateBinary(e)
	case *UnaryExpression:
		if isNil(e.operand) {
			return errors.New("missing operand")
		}
		if isNilConstant(e.operand) {
			return errors.New("operand is nil")
		}
		if t := e.operand.Type(); t != nil && !isBool(t) {
			return fmt.Errorf("operand of %s is %s, not bool", e.op, t)
		}
	case *InvocationExpression:
		if e.lambda == nil {
			return errors.New("invocation has no lambda")
		}
		return validateArguments(e.lambda.params, e.args)
	case *CallExpression:
		return validateCall(e)
	case *LambdaExpression:
		if isNil(e.body) {
			return errors.New("lambda has no body")
		}
		for _, p := range e.params {
			if p == nil {
				return errors.New("nil lambda parameter")
			}
		}
	}
	return nil
}

func validateBinary(e *BinaryExpression) error {
	lt, rt := e.left.Type(), e.right.Type()
	if e.op.IsLogical() {
		if isNilConstant(e.left) || isNilConstant(e.right) {
			return fmt.Errorf("operands of %s must be bool, got nil", e.op)
		}
		if lt != nil && !isBool(lt) || rt != nil && !isBool(rt) {
			return fmt.Errorf("operands of %s must be bool, got %s and %s", e.op, lt, rt)
		}
		return nil
	}
	if lt == nil && !isNilConstant(e.left) || rt == nil && !isNilConstant(e.right) {
		// the untyped operand reports its own problem
		return nil
	}
	if !comparableWith(e.op, lt, rt) {
		return fmt.Errorf("cannot compare %s and %s with %s", lt, rt, e.op)
	}
	return nil
}

func isNilConstant(expr Expression) bool {
	c, ok := expr.(*ConstantExpression)
	return ok && c.IsNil()
}

func validateArguments(params []*ParameterExpression, args []Expression) error {
	if len(params) != len(args) {
		return fmt.Errorf("want %d arguments, got %d", len(params), len(args))
	}
	for index, arg := range args {
		if isNil(arg) {
			return fmt.Errorf("argument %d is nil", index)
		}
		if params[index] == nil {
			continue
		}
		if at, pt := arg.Type(), params[index].Type(); at != nil && pt != nil && !at.AssignableTo(pt) {
			return fmt.Errorf("argument %d is %s, want %s", index, at, pt)
		}
	}
	return nil
}

func validateCall(e *CallExpression) error {
	if !e.isFunc() {
		return fmt.Errorf("%s is not a function", e.name)
	}
	ft := e.fn.Type()
	if ft.NumOut() != 1 {
		return fmt.Errorf("%s must return exactly one value", e.name)
	}
	if ft.IsVariadic() {
		if len(e.args) < ft.NumIn()-1 {
			return fmt.Errorf("%s wants at least %d arguments, got %d", e.name, ft.NumIn()-1, len(e.args))
		}
	} else if len(e.args) != ft.NumIn() {
		return fmt.Errorf("%s wants %d arguments, got %d", e.name, ft.NumIn(), len(e.args))
	}
	for index, arg := range e.args {
		if isNil(arg) {
			return fmt.Errorf("argument %d of %s is nil", index, e.name)
		}
		at := arg.Type()
		if at == nil {
			continue
		}
		if pt := callParamType(ft, index); !at.AssignableTo(pt) && !at.ConvertibleTo(pt) {
			return fmt.Errorf("argument %d of %s is %s, want %s", index, e.name, at, pt)
		}
	}
	return nil
}

func callParamType(ft reflect.Type, index int) reflect.Type {
	if ft.IsVariadic() && index >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(index)
}
