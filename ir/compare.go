package ir

import "strings"

// Compare orders nodes structurally: by type first, then value; containers
// compare element by element in tree order, shorter first on a tie.
func Compare(a, b *Node) int {
	if a == nil || b == nil {
		switch {
		case a == b:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	if a.Type != b.Type {
		if a.Type < b.Type {
			return -1
		}
		return 1
	}
	switch a.Type {
	case NullType, UndefinedType:
		return 0
	case BoolType:
		switch {
		case a.Bool == b.Bool:
			return 0
		case !a.Bool:
			return -1
		default:
			return 1
		}
	case StringType:
		return strings.Compare(a.String, b.String)
	case NumberType:
		af, bf := a.floatValue(), b.floatValue()
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	case ArrayType:
		n := min(len(a.Values), len(b.Values))
		for i := 0; i < n; i++ {
			if c := Compare(a.Values[i], b.Values[i]); c != 0 {
				return c
			}
		}
		return len(a.Values) - len(b.Values)
	case ObjectType:
		n := min(len(a.Fields), len(b.Fields))
		for i := 0; i < n; i++ {
			if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
				return c
			}
			if c := Compare(a.Values[i], b.Values[i]); c != 0 {
				return c
			}
		}
		return len(a.Fields) - len(b.Fields)
	default:
		panic("type")
	}
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func (y *Node) floatValue() float64 {
	if y.Int64 != nil {
		return float64(*y.Int64)
	}
	if y.Float64 != nil {
		return *y.Float64
	}
	return 0
}
