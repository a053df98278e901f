package expression

import "reflect"

type family int

const (
	familyOther family = iota
	familyInt
	familyUint
	familyFloat
	familyString
	familyBool
)

func familyOf(t reflect.Type) family {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return familyInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return familyUint
	case reflect.Float32, reflect.Float64:
		return familyFloat
	case reflect.String:
		return familyString
	case reflect.Bool:
		return familyBool
	default:
		return familyOther
	}
}

func (f family) numeric() bool { return f == familyInt || f == familyUint || f == familyFloat }

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

// comparableWith reports whether values of the two types can be compared with op.
// A nil type stands for an untyped nil constant.
func comparableWith(op BinaryOperator, left, right reflect.Type) bool {
	if left == nil || right == nil {
		other := left
		if other == nil {
			other = right
		}
		return !op.IsOrdering() && (other == nil || nillable(other))
	}
	lf, rf := familyOf(left), familyOf(right)
	if op.IsOrdering() {
		return (lf.numeric() && rf.numeric()) || (lf == familyString && rf == familyString)
	}
	switch {
	case lf.numeric() && rf.numeric():
		return true
	case lf != familyOther && lf == rf:
		return true
	case left.AssignableTo(right) || right.AssignableTo(left):
		return left.Comparable() && right.Comparable()
	default:
		return false
	}
}

func isBool(t reflect.Type) bool { return t != nil && t.Kind() == reflect.Bool }
