package ir

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarshalJSON(t *testing.T) {
	huge, err := FromNumberText("123456789012345678901234567890")
	if err != nil {
		t.Fatal(err)
	}
	obj := &Node{Type: ObjectType}
	obj.Set("z", FromSlice([]*Node{FromInt(1), FromFloat(2), huge}))
	obj.Set("a", FromString("it's \"q\"\n"))
	obj.Set("n", Null())
	obj.Set("b", FromBool(true))
	obj.Set("e", FromSlice(nil))
	obj.Set("o", &Node{Type: ObjectType})
	d, err := obj.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":[1,2.0,123456789012345678901234567890],"a":"it's \"q\"\n","n":null,"b":true,"e":[],"o":{}}`
	if diff := cmp.Diff(want, string(d)); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}

	back, err := FromJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(obj, back) {
		t.Errorf("round trip mismatch: %s", d)
	}
}

func TestMarshalJSONStdlib(t *testing.T) {
	n := FromSlice([]*Node{FromString("a"), FromInt(2)})
	d, err := json.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `["a",2]` {
		t.Errorf("got %s", d)
	}
	var back Node
	if err := json.Unmarshal([]byte(`{"k": [1.5, null]}`), &back); err != nil {
		t.Fatal(err)
	}
	if back.Type != ObjectType || back.Get("k").Len() != 2 {
		t.Errorf("got %+v", back)
	}
	if back.Values[0].Parent != &back {
		t.Errorf("parent not set")
	}
}

func TestMarshalJSONNaN(t *testing.T) {
	_, err := FromFloat(math.NaN()).MarshalJSON()
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected unsupported, got %v", err)
	}
}

func TestFromJSONErrors(t *testing.T) {
	for _, in := range []string{``, `[1,`, `{"a" 1}`, `[1] 2`, `1 x`, `nope`} {
		if _, err := FromJSON([]byte(in)); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestFromAny(t *testing.T) {
	n, err := FromAny(map[string]any{
		"b": []any{1, 2.5, "x", nil, true},
		"a": json.Number("7"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, n.Keys()); diff != "" {
		t.Fatalf("(-want +got)\n%s", diff)
	}
	got := n.ToAny()
	want := map[string]any{
		"a": int64(7),
		"b": []any{int64(1), 2.5, "x", nil, true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if _, err := FromAny(struct{}{}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected unsupported, got %v", err)
	}
}

func TestFromJSONScalars(t *testing.T) {
	for in, want := range map[string]*Node{
		`1`:      FromInt(1),
		` -2.5 `: FromFloat(-2.5),
		`"s"`:    FromString("s"),
		"true\n": FromBool(true),
		`null`:   Null(),
		`[]`:     FromSlice(nil),
	} {
		got, err := FromJSON([]byte(in))
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if !Equal(want, got) {
			t.Errorf("%q: got %v", in, got.ToAny())
		}
	}
}
