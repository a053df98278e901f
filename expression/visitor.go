package expression

// Visitor rewrites expression nodes. Visit returns the node to use in place
// of expr; returning expr keeps it. Implementations that want to descend call
// expr.VisitChildren(v) themselves.
type Visitor interface {
	Visit(expr Expression) Expression
}

// The VisitorFunc type is an adapter to allow the use of ordinary functions as Visitor.
type VisitorFunc func(expr Expression) Expression

// Visit calls f(expr).
func (f VisitorFunc) Visit(expr Expression) Expression {
	return f(expr)
}

// Rewrite walks expr bottom-up and replaces every node with f(node), after
// the node's children were rewritten. Unchanged subtrees are shared with the
// input.
func Rewrite(expr Expression, f func(Expression) Expression) Expression {
	var v VisitorFunc
	v = func(e Expression) Expression {
		if isNil(e) {
			return e
		}
		return f(e.VisitChildren(v))
	}
	return v(expr)
}

// Inspect traverses expr in depth-first order like ast.Inspect: f is called
// for every node and the children are visited only if f returns true.
func Inspect(expr Expression, f func(Expression) bool) {
	var v VisitorFunc
	v = func(e Expression) Expression {
		if isNil(e) || !f(e) {
			return e
		}
		e.VisitChildren(v)
		return e
	}
	v(expr)
}
