package ir

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var (
	ErrJSON          = errors.New("json")
	ErrUnsupported   = errors.New("unsupported value")
	jsonAPI          = jsoniter.ConfigCompatibleWithStandardLibrary
	errTrailingBytes = fmt.Errorf("%w: trailing data", ErrJSON)
)

// MarshalJSON renders y as JSON with object keys in insertion order.
func (y *Node) MarshalJSON() ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)
	if err := writeJSON(stream, y); err != nil {
		return nil, err
	}
	if stream.Error != nil {
		return nil, stream.Error
	}
	res := make([]byte, len(stream.Buffer()))
	copy(res, stream.Buffer())
	return res, nil
}

func writeJSON(s *jsoniter.Stream, y *Node) error {
	switch y.Type {
	case NullType:
		s.WriteNil()
	case BoolType:
		s.WriteBool(y.Bool)
	case StringType:
		s.WriteString(y.String)
	case NumberType:
		switch {
		case y.Int64 != nil:
			s.WriteInt64(*y.Int64)
		case y.Float64 != nil:
			f := *y.Float64
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("%w: %v", ErrUnsupported, f)
			}
			s.WriteRaw(FormatFloat(f))
		default:
			if _, ok := new(big.Int).SetString(y.Number, 10); !ok {
				return fmt.Errorf("%w: number %q", ErrUnsupported, y.Number)
			}
			s.WriteRaw(y.Number)
		}
	case ArrayType:
		s.WriteArrayStart()
		for i, v := range y.Values {
			if i > 0 {
				s.WriteMore()
			}
			if err := writeJSON(s, v); err != nil {
				return err
			}
		}
		s.WriteArrayEnd()
	case ObjectType:
		s.WriteObjectStart()
		for i, v := range y.Values {
			if i > 0 {
				s.WriteMore()
			}
			s.WriteObjectField(y.Fields[i].String)
			if err := writeJSON(s, v); err != nil {
				return err
			}
		}
		s.WriteObjectEnd()
	default:
		return fmt.Errorf("%w: type %s", ErrUnsupported, y.Type)
	}
	return nil
}

// UnmarshalJSON replaces y with the value decoded from d.
func (y *Node) UnmarshalJSON(d []byte) error {
	n, err := FromJSON(d)
	if err != nil {
		return err
	}
	n.CloneTo(y)
	return nil
}

// FromJSON decodes strict JSON, keeping object key order and exact
// integers.
func FromJSON(d []byte) (*Node, error) {
	iter := jsonAPI.BorrowIterator(d)
	defer jsonAPI.ReturnIterator(iter)
	res := readJSON(iter)
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrJSON, iter.Error)
	}
	// Only whitespace may follow; the iterator reports io.EOF once the
	// input is exhausted.
	if iter.WhatIsNext() != jsoniter.InvalidValue || iter.Error != io.EOF {
		return nil, errTrailingBytes
	}
	return res, nil
}

func readJSON(iter *jsoniter.Iterator) *Node {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return Null()
	case jsoniter.BoolValue:
		return FromBool(iter.ReadBool())
	case jsoniter.StringValue:
		return FromString(iter.ReadString())
	case jsoniter.NumberValue:
		num := iter.ReadNumber()
		n, err := FromNumberText(string(num))
		if err != nil {
			iter.ReportError("readJSON", err.Error())
			return nil
		}
		return n
	case jsoniter.ArrayValue:
		var elts []*Node
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			v := readJSON(it)
			if v == nil {
				return false
			}
			elts = append(elts, v)
			return true
		})
		return FromSlice(elts)
	case jsoniter.ObjectValue:
		res := &Node{Type: ObjectType}
		iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
			v := readJSON(it)
			if v == nil {
				return false
			}
			res.Set(field, v)
			return true
		})
		if res.Fields == nil {
			res.Fields, res.Values = []*Node{}, []*Node{}
		}
		return res
	default:
		iter.ReportError("readJSON", "expected a value")
		return nil
	}
}

// FromNumberText converts decimal number text to a node: an integer when
// there is no fraction or exponent, a float otherwise.
func FromNumberText(s string) (*Node, error) {
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnsupported, s)
		}
		return FromFloat(f), nil
	}
	bi, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	return FromBigInt(bi), nil
}
