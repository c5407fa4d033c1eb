package ir

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"slices"
)

// FromAny converts plain Go values to a tree. Maps are converted with
// their keys sorted.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint:
		return FromBigInt(new(big.Int).SetUint64(uint64(x))), nil
	case uint64:
		return FromBigInt(new(big.Int).SetUint64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case *big.Int:
		return FromBigInt(x), nil
	case json.Number:
		return FromNumberText(string(x))
	case []any:
		elts := make([]*Node, len(x))
		for i := range x {
			n, err := FromAny(x[i])
			if err != nil {
				return nil, err
			}
			elts[i] = n
		}
		return FromSlice(elts), nil
	case map[string]any:
		res := &Node{Type: ObjectType, Fields: []*Node{}, Values: []*Node{}}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.Set(k, n)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, reflect.TypeOf(v))
	}
}

// ToAny converts y to plain Go values: nil, bool, int64, *big.Int,
// float64, string, []any and map[string]any.
func (y *Node) ToAny() any {
	switch y.Type {
	case BoolType:
		return y.Bool
	case StringType:
		return y.String
	case NumberType:
		switch {
		case y.Int64 != nil:
			return *y.Int64
		case y.Float64 != nil:
			return *y.Float64
		}
		bi, _ := y.BigInt()
		return bi
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = v.ToAny()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Values))
		for i, v := range y.Values {
			res[y.Fields[i].String] = v.ToAny()
		}
		return res
	}
	return nil
}
