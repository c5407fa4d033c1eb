package token

import (
	"errors"
	"testing"
)

func TestClassifyNumber(t *testing.T) {
	for _, tc := range []struct {
		in  string
		typ TokenType
	}{
		{"4", TInteger},
		{"-4", TInteger},
		{"+4", TInteger},
		{"007", TInteger},
		{"4_1", TInteger},
		{"4.1", TFloat},
		{"4e2", TFloat},
		{"4E+2", TFloat},
		{"4.1e-2", TFloat},
		{"1_000.000_1", TFloat},
		{"0b11", TInteger},
		{"0xa0", TInteger},
		{"0XA0", TInteger},
		{"0xa0_b0", TInteger},
		{"0x_a0", TInteger},
		{"0o12", TInteger},
		{"-0o12", TInteger},
	} {
		typ, err := ClassifyNumber([]byte(tc.in), false)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if typ != tc.typ {
			t.Errorf("%q: got %s want %s", tc.in, typ, tc.typ)
		}
	}
}

func TestClassifyNumberMalformed(t *testing.T) {
	for _, in := range []string{
		"4e", "4e+", "4.", "4.e1", "0x", "0xg", "0b12", "0o8", "1__2",
		"1_", "_1", "0x__1", "0x1_", "12abc", "1.2.3", "1e5.0", "--1",
	} {
		_, err := ClassifyNumber([]byte(in), false)
		if !errors.Is(err, ErrMalformedNumber) {
			t.Errorf("%q: expected malformed, got %v", in, err)
		}
	}
}

func TestClassifyNumberJSON(t *testing.T) {
	for _, in := range []string{"0", "-0", "12", "1.5", "-1.5e10", "1E-3"} {
		if _, err := ClassifyNumber([]byte(in), true); err != nil {
			t.Errorf("%q: %v", in, err)
		}
	}
	for _, in := range []string{"+1", "01", "0x1", "1_0", "0o7"} {
		if _, err := ClassifyNumber([]byte(in), true); !errors.Is(err, ErrNotJSON) {
			t.Errorf("%q: expected not json, got %v", in, err)
		}
	}
}
