package expression

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/maps"
)

// Bindings assigns values to parameters during evaluation.
type Bindings map[*ParameterExpression]reflect.Value

// Evaluate interprets expr with the given parameter bindings. Logical
// operators short-circuit. Errors wrap ErrEvaluation.
func Evaluate(expr Expression, bindings Bindings) (reflect.Value, error) {
	return evaluator{bindings: bindings}.eval(expr)
}

type evaluator struct {
	bindings Bindings
}

func (ev evaluator) eval(expr Expression) (reflect.Value, error) {
	if isNil(expr) {
		return reflect.Value{}, fmt.Errorf("%w: nil expression", ErrEvaluation)
	}
	switch e := expr.(type) {
	case *ParameterExpression:
		v, ok := ev.bindings[e]
		if !ok {
			return reflect.Value{}, fmt.Errorf("%w: unbound parameter %s", ErrEvaluation, e)
		}
		return v, nil
	case *ConstantExpression:
		return e.value, nil
	case *MemberExpression:
		return ev.member(e)
	case *BinaryExpression:
		return ev.binary(e)
	case *UnaryExpression:
		operand, err := ev.boolean(e.operand)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(!operand), nil
	case *InvocationExpression:
		return ev.invoke(e)
	case *CallExpression:
		return ev.call(e)
	default:
		return reflect.Value{}, fmt.Errorf("%w: cannot evaluate %s as a value", ErrEvaluation, expr)
	}
}

func (ev evaluator) boolean(expr Expression) (bool, error) {
	v, err := ev.eval(expr)
	if err != nil {
		return false, err
	}
	if !v.IsValid() || v.Kind() != reflect.Bool {
		return false, fmt.Errorf("%w: %s is not a bool", ErrEvaluation, expr)
	}
	return v.Bool(), nil
}

func (ev evaluator) member(e *MemberExpression) (reflect.Value, error) {
	if !e.found {
		return reflect.Value{}, fmt.Errorf("%w: unknown field %s", ErrEvaluation, e)
	}
	target, err := ev.eval(e.target)
	if err != nil {
		return reflect.Value{}, err
	}
	if target.Kind() == reflect.Pointer {
		if target.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil pointer dereference in %s", ErrEvaluation, e)
		}
		target = target.Elem()
	}
	field, err := target.FieldByIndexErr(e.field.Index)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %s: %v", ErrEvaluation, e, err)
	}
	return field, nil
}

func (ev evaluator) binary(e *BinaryExpression) (reflect.Value, error) {
	if e.op.IsLogical() {
		left, err := ev.boolean(e.left)
		if err != nil {
			return reflect.Value{}, err
		}
		if e.op == OpAndAlso && !left || e.op == OpOrElse && left {
			return reflect.ValueOf(left), nil
		}
		right, err := ev.boolean(e.right)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(right), nil
	}
	left, err := ev.eval(e.left)
	if err != nil {
		return reflect.Value{}, err
	}
	right, err := ev.eval(e.right)
	if err != nil {
		return reflect.Value{}, err
	}
	result, err := compare(e.op, left, right)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %s: %v", ErrEvaluation, e, err)
	}
	return reflect.ValueOf(result), nil
}

func (ev evaluator) invoke(e *InvocationExpression) (reflect.Value, error) {
	if e.lambda == nil {
		return reflect.Value{}, fmt.Errorf("%w: invocation has no lambda", ErrEvaluation)
	}
	if len(e.args) != len(e.lambda.params) {
		return reflect.Value{}, fmt.Errorf("%w: %s: want %d arguments, got %d", ErrEvaluation, e, len(e.lambda.params), len(e.args))
	}
	scope := maps.Clone(ev.bindings)
	if scope == nil {
		scope = make(Bindings, len(e.args))
	}
	for index, arg := range e.args {
		v, err := ev.eval(arg)
		if err != nil {
			return reflect.Value{}, err
		}
		scope[e.lambda.params[index]] = v
	}
	return evaluator{bindings: scope}.eval(e.lambda.body)
}

func (ev evaluator) call(e *CallExpression) (reflect.Value, error) {
	if !e.isFunc() {
		return reflect.Value{}, fmt.Errorf("%w: %s is not a function", ErrEvaluation, e.name)
	}
	ft := e.fn.Type()
	if ft.NumOut() != 1 {
		return reflect.Value{}, fmt.Errorf("%w: %s must return exactly one value", ErrEvaluation, e.name)
	}
	args := make([]reflect.Value, 0, len(e.args))
	for index, arg := range e.args {
		v, err := ev.eval(arg)
		if err != nil {
			return reflect.Value{}, err
		}
		pt := callParamType(ft, index)
		switch {
		case !v.IsValid():
			v = reflect.Zero(pt)
		case !v.Type().AssignableTo(pt) && v.Type().ConvertibleTo(pt):
			v = v.Convert(pt)
		}
		args = append(args, v)
	}
	var out []reflect.Value
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: calling %s: %v", ErrEvaluation, e.name, r)
			}
		}()
		out = e.fn.Call(args)
		return nil
	}()
	if err != nil {
		return reflect.Value{}, err
	}
	return out[0], nil
}

// compare applies a comparison operator. Numbers of different kinds compare
// by value; an invalid reflect.Value stands for an untyped nil.
func compare(op BinaryOperator, left, right reflect.Value) (bool, error) {
	if !left.IsValid() || !right.IsValid() {
		if op.IsOrdering() {
			return false, fmt.Errorf("cannot order nil")
		}
		equal := isNilValue(left) && isNilValue(right)
		return equal == (op == OpEqual), nil
	}
	lf, rf := familyOf(left.Type()), familyOf(right.Type())
	var order int
	switch {
	case lf.numeric() && rf.numeric():
		order = compareNumbers(left, lf, right, rf)
	case lf == familyString && rf == familyString:
		order = compareOrdered(left.String(), right.String())
	case op.IsOrdering():
		return false, fmt.Errorf("cannot order %s and %s", left.Type(), right.Type())
	case lf == familyBool && rf == familyBool:
		return (left.Bool() == right.Bool()) == (op == OpEqual), nil
	default:
		if !left.Type().Comparable() || !right.Type().Comparable() {
			return false, fmt.Errorf("cannot compare %s and %s", left.Type(), right.Type())
		}
		return (left.Interface() == right.Interface()) == (op == OpEqual), nil
	}
	switch op {
	case OpEqual:
		return order == 0, nil
	case OpNotEqual:
		return order != 0, nil
	case OpLessThan:
		return order < 0, nil
	case OpLessThanOrEqual:
		return order <= 0, nil
	case OpGreaterThan:
		return order > 0, nil
	case OpGreaterThanOrEqual:
		return order >= 0, nil
	default:
		return false, fmt.Errorf("%s is not a comparison", op)
	}
}

func isNilValue(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	return nillable(v.Type()) && v.IsNil()
}

func compareNumbers(left reflect.Value, lf family, right reflect.Value, rf family) int {
	switch {
	case lf == familyFloat || rf == familyFloat:
		return compareOrdered(asFloat(left, lf), asFloat(right, rf))
	case lf == familyInt && rf == familyInt:
		return compareOrdered(left.Int(), right.Int())
	case lf == familyUint && rf == familyUint:
		return compareOrdered(left.Uint(), right.Uint())
	case lf == familyInt:
		if left.Int() < 0 {
			return -1
		}
		return compareOrdered(uint64(left.Int()), right.Uint())
	default:
		if right.Int() < 0 {
			return 1
		}
		return compareOrdered(left.Uint(), uint64(right.Int()))
	}
}

func asFloat(v reflect.Value, f family) float64 {
	switch f {
	case familyInt:
		return float64(v.Int())
	case familyUint:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func compareOrdered[T int64 | uint64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
