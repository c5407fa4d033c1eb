package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare orders two values, returning -1, 0 or +1. Values of different
// types order by Type (null, bool, number, string, array, object). Every
// integer orders before every float, so 4 and 4.0 are not equal. Arrays
// compare element-wise and objects entry by entry in insertion order, key
// before value; a shorter prefix orders first.
func Compare(a, b *Node) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case a.Type != b.Type:
		return cmp.Compare(a.Type, b.Type)
	}
	switch a.Type {
	case BoolType:
		return cmpBool(a.Bool, b.Bool)
	case NumberType:
		return cmpNumber(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return slices.CompareFunc(a.Values, b.Values, Compare)
	case ObjectType:
		n := min(len(a.Values), len(b.Values))
		for i := range n {
			if c := strings.Compare(a.Fields[i].String, b.Fields[i].String); c != 0 {
				return c
			}
			if c := Compare(a.Values[i], b.Values[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a.Values), len(b.Values))
	}
	return 0
}

// Equal reports whether a and b hold the same value. IDs and parent links
// are ignored.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}

func cmpNumber(a, b *Node) int {
	if af, bf := a.Float64 != nil, b.Float64 != nil; af || bf {
		if af && bf {
			return cmp.Compare(*a.Float64, *b.Float64)
		}
		return cmpBool(af, bf)
	}
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	x, xok := a.BigInt()
	y, yok := b.BigInt()
	if xok && yok {
		return x.Cmp(y)
	}
	return strings.Compare(a.Number, b.Number)
}
