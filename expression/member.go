package expression

import "reflect"

// MemberExpression reads an exported struct field. The target may be a struct
// or a pointer to a struct; promoted fields of embedded structs are supported.
type MemberExpression struct {
	target Expression
	name   string
	field  reflect.StructField
	found  bool
}

// Field creates an access to the field called name on target. An unknown or
// unexported field is reported by Validate, not here.
func Field(target Expression, name string) *MemberExpression {
	m := &MemberExpression{target: target, name: name}
	if isNil(target) {
		return m
	}
	if st := structType(target.Type()); st != nil {
		if field, ok := st.FieldByName(name); ok && field.IsExported() {
			m.field, m.found = field, true
		}
	}
	return m
}

func structType(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return t
}

func (m *MemberExpression) Kind() Kind { return KindMember }

func (m *MemberExpression) Type() reflect.Type {
	if !m.found {
		return nil
	}
	return m.field.Type
}

// Target returns the expression the field is read from.
func (m *MemberExpression) Target() Expression { return m.target }

// Name returns the field name.
func (m *MemberExpression) Name() string { return m.name }

// StructField returns the resolved field and whether it was found.
func (m *MemberExpression) StructField() (reflect.StructField, bool) { return m.field, m.found }

func (m *MemberExpression) VisitChildren(v Visitor) Expression {
	if isNil(m.target) {
		return m
	}
	target := v.Visit(m.target)
	if target == m.target {
		return m
	}
	return Field(target, m.name)
}

func (m *MemberExpression) String() string { return stringOf(m.target) + "." + m.name }

func (*MemberExpression) expression() {}
