package ir

import (
	"maps"
	"math/big"
	"slices"
	"strconv"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	// ID is the document order number assigned by the parser, starting
	// at 1. Nodes built by hand have ID 0.
	ID int

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.ID = y.ID
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	for i, yv := range y.Values {
		dstI := yv.CloneTo(&Node{})
		dstI.Parent = dst
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := yf.CloneTo(&Node{})
		dstI.Parent = dst
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	dst.Float64 = nil
	dst.Int64 = nil
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: NumberType, Float64: &v}
}

// FromBigInt returns an integer node, holding v in Int64 when it fits.
func FromBigInt(v *big.Int) *Node {
	if v.IsInt64() {
		return FromInt(v.Int64())
	}
	return &Node{Type: NumberType, Number: v.String()}
}

// BigInt returns the value of an integer node of any size.
func (y *Node) BigInt() (*big.Int, bool) {
	if y.Type != NumberType {
		return nil, false
	}
	if y.Int64 != nil {
		return big.NewInt(*y.Int64), true
	}
	if y.Float64 != nil {
		return nil, false
	}
	return new(big.Int).SetString(y.Number, 10)
}

// IsInteger reports whether y is a number written without fraction or
// exponent.
func (y *Node) IsInteger() bool {
	return y.Type == NumberType && y.Float64 == nil
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
	}
	return res
}

// FromKeyVals builds an object from kvs in order. Keys must be string
// nodes; a repeated key replaces the earlier value in its original slot.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, 0, len(kvs)),
		Values: make([]*Node, 0, len(kvs)),
	}
	for i := range kvs {
		res.SetField(kvs[i].Key, kvs[i].Val)
	}
	return res
}

func FromMap(yMap map[string]*Node) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, 0, len(yMap)),
		Values: make([]*Node, 0, len(yMap)),
	}
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		res.Set(key, yMap[key])
	}
	return res
}

// Set stores val under key, replacing any existing value in place.
func (y *Node) Set(key string, val *Node) {
	y.SetField(FromString(key), val)
}

// SetField is Set with a caller supplied key node, which keeps its ID.
func (y *Node) SetField(key, val *Node) {
	i := y.index(key.String)
	if i < 0 {
		y.AppendField(key, val)
		return
	}
	y.ReplaceAt(i, val)
}

// AppendField adds an entry at the end of an object without looking for
// an existing entry with the same key.
func (y *Node) AppendField(key, val *Node) {
	i := len(y.Fields)
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, val)
	y.link(i)
}

// ReplaceAt replaces the i'th value of an array or object.
func (y *Node) ReplaceAt(i int, val *Node) {
	y.Values[i] = val
	y.link(i)
}

func (y *Node) link(i int) {
	val := y.Values[i]
	val.Parent = y
	val.ParentIndex = i
	val.ParentField = ""
	if y.Type != ObjectType {
		return
	}
	key := y.Fields[i]
	key.Parent = y
	key.ParentIndex = i
	key.ParentField = key.String
	val.ParentField = key.String
}

func (y *Node) index(field string) int {
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return i
		}
	}
	return -1
}

// Get returns the value stored under field, or nil.
func (y *Node) Get(field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	i := y.index(field)
	if i < 0 {
		return nil
	}
	return y.Values[i]
}

func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i := range y.Fields {
		res[i] = y.Fields[i].String
	}
	return res
}

// Len is the number of elements of an array or entries of an object.
func (y *Node) Len() int {
	return len(y.Values)
}

// Visit walks y depth first, calling f before (isPost false) and after
// (isPost true) the children of each node. Object keys are visited before
// their values. Returning false from the pre call skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for i, yy := range y.Values {
			if y.Type == ObjectType {
				if err := y.Fields[i].Visit(f); err != nil {
					return err
				}
			}
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// NumberText returns the canonical decimal text of a number node.
func (y *Node) NumberText() string {
	switch {
	case y.Int64 != nil:
		return strconv.FormatInt(*y.Int64, 10)
	case y.Float64 != nil:
		return FormatFloat(*y.Float64)
	default:
		return y.Number
	}
}

// FormatFloat renders f in the shortest form that reads back as the same
// float, always including a '.' or an exponent.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', 'e', 'E', 'I', 'N':
			return s
		}
	}
	return s + ".0"
}
