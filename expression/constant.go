package expression

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/go-leo/gox/convx"
)

// ConstantExpression holds a fixed value.
type ConstantExpression struct {
	value reflect.Value
}

// Constant creates a constant of the dynamic type of value. A nil value is an
// untyped nil that only compares equal to nil pointers, maps, slices and
// interfaces.
func Constant(value any) *ConstantExpression {
	return &ConstantExpression{value: reflect.ValueOf(value)}
}

// ConstantOf creates a constant whose static type is T, which keeps interface
// types and typed nils intact.
func ConstantOf[T any](value T) *ConstantExpression {
	return &ConstantExpression{value: reflect.ValueOf(&value).Elem()}
}

func (c *ConstantExpression) Kind() Kind { return KindConstant }

func (c *ConstantExpression) Type() reflect.Type {
	if !c.value.IsValid() {
		return nil
	}
	return c.value.Type()
}

// Value returns the constant value, nil for an untyped nil.
func (c *ConstantExpression) Value() any {
	if !c.value.IsValid() {
		return nil
	}
	return c.value.Interface()
}

// IsNil reports whether the constant is an untyped nil.
func (c *ConstantExpression) IsNil() bool { return !c.value.IsValid() }

func (c *ConstantExpression) VisitChildren(Visitor) Expression { return c }

func (c *ConstantExpression) String() string {
	if !c.value.IsValid() {
		return "nil"
	}
	switch c.value.Kind() {
	case reflect.String:
		return strconv.Quote(c.value.String())
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return convx.ToString(c.value.Interface())
	default:
		return fmt.Sprintf("%v", c.value.Interface())
	}
}

func (*ConstantExpression) expression() {}
