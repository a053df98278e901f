package expression

import "golang.org/x/exp/slices"

// replaceVisitor swaps every node identical to target for replacement.
type replaceVisitor struct {
	target      Expression
	replacement Expression
}

func (r replaceVisitor) Visit(expr Expression) Expression {
	if isNil(expr) {
		return nil
	}
	if expr == r.target {
		return r.replacement
	}
	return expr.VisitChildren(r)
}

// Replace returns expr with every occurrence of target replaced by
// replacement. Nodes match by identity only: a different node with the same
// name, type or value is left alone. expr is not modified; a nil expr yields nil.
func Replace(expr, target, replacement Expression) Expression {
	if isNil(expr) {
		return nil
	}
	return replaceVisitor{target: target, replacement: replacement}.Visit(expr)
}

// Inline replaces every invocation of a lambda by the lambda body with its
// parameters substituted by the arguments.
func Inline(expr Expression) Expression {
	return Rewrite(expr, func(e Expression) Expression {
		invocation, ok := e.(*InvocationExpression)
		if !ok || invocation.lambda == nil || len(invocation.args) != len(invocation.lambda.params) {
			return e
		}
		body := invocation.lambda.body
		for index, param := range invocation.lambda.params {
			body = Replace(body, param, invocation.args[index])
		}
		return body
	})
}

// References reports whether param occurs in expr.
func References(expr Expression, param *ParameterExpression) bool {
	found := false
	Inspect(expr, func(e Expression) bool {
		if e == Expression(param) {
			found = true
		}
		return !found
	})
	return found
}

// FreeParameters returns the parameters occurring in expr that no lambda
// within expr declares, in order of first occurrence.
func FreeParameters(expr Expression) []*ParameterExpression {
	var free []*ParameterExpression
	var walk func(expr Expression, bound []*ParameterExpression)
	walk = func(expr Expression, bound []*ParameterExpression) {
		Inspect(expr, func(e Expression) bool {
			switch n := e.(type) {
			case *ParameterExpression:
				if !slices.Contains(bound, n) && !slices.Contains(free, n) {
					free = append(free, n)
				}
			case *LambdaExpression:
				walk(n.body, append(slices.Clip(bound), n.params...))
				return false
			}
			return true
		})
	}
	walk(expr, nil)
	return free
}

// HasParameters reports whether any parameter occurs in expr.
func HasParameters(expr Expression) bool {
	found := false
	Inspect(expr, func(e Expression) bool {
		if e.Kind() == KindParameter {
			found = true
		}
		return !found
	})
	return found
}
