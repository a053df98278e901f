package expression

import (
	"reflect"

	"golang.org/x/exp/slices"
)

// CallExpression calls an opaque Go function with argument expressions, for
// example strings.HasPrefix. The function must return exactly one value.
type CallExpression struct {
	name string
	fn   reflect.Value
	args []Expression
}

// Call creates a call of fn. name is used for rendering and by translators
// that recognise well-known functions.
func Call(name string, fn any, args ...Expression) *CallExpression {
	return &CallExpression{name: name, fn: reflect.ValueOf(fn), args: slices.Clone(args)}
}

func (c *CallExpression) Kind() Kind { return KindCall }

func (c *CallExpression) Type() reflect.Type {
	if !c.isFunc() || c.fn.Type().NumOut() != 1 {
		return nil
	}
	return c.fn.Type().Out(0)
}

func (c *CallExpression) Name() string { return c.name }

func (c *CallExpression) Func() reflect.Value { return c.fn }

func (c *CallExpression) Arguments() []Expression { return slices.Clone(c.args) }

func (c *CallExpression) isFunc() bool {
	return c.fn.IsValid() && c.fn.Kind() == reflect.Func && !c.fn.IsNil()
}

func (c *CallExpression) VisitChildren(v Visitor) Expression {
	args, changed := visitAll(v, c.args)
	if !changed {
		return c
	}
	return &CallExpression{name: c.name, fn: c.fn, args: args}
}

func (c *CallExpression) String() string { return c.name + "(" + joinExpressions(c.args) + ")" }

func (*CallExpression) expression() {}
