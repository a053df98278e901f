package expression

import "reflect"

// ParameterExpression is a named, typed symbol. Parameters are compared by
// identity: every call to Parameter creates a distinct symbol.
type ParameterExpression struct {
	name string
	typ  reflect.Type
}

// Parameter creates a new parameter of the given type.
func Parameter(name string, typ reflect.Type) *ParameterExpression {
	return &ParameterExpression{name: name, typ: typ}
}

// ParameterOf creates a new parameter of type T.
func ParameterOf[T any](name string) *ParameterExpression {
	return Parameter(name, reflect.TypeOf((*T)(nil)).Elem())
}

func (p *ParameterExpression) Kind() Kind { return KindParameter }

func (p *ParameterExpression) Type() reflect.Type { return p.typ }

// Name returns the parameter name. Names are only used for rendering.
func (p *ParameterExpression) Name() string { return p.name }

func (p *ParameterExpression) VisitChildren(Visitor) Expression { return p }

func (p *ParameterExpression) String() string { return p.name }

func (*ParameterExpression) expression() {}
