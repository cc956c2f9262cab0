package token

import (
	"math"
	"testing"
)

func TestAppendQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", `""`},
		{"hello!", `"hello!"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"\x00\x01\x1f", `"\u0000\u0001\u001f"`},
		{"\x7f/é😀", "\"\x7f/é😀\""},
	}
	for _, tt := range tests {
		if got := string(AppendQuote(nil, []byte(tt.in))); got != tt.want {
			t.Errorf("AppendQuote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestQuoteUnquote(t *testing.T) {
	for _, s := range []string{"", "a\"b", "multi é byte ✓", "ctl \x01\x1f", "\\\n"} {
		got, err := Unquote(Quote(s))
		if err != nil {
			t.Errorf("Unquote(Quote(%q)): %v", s, err)
			continue
		}
		if got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
	if _, err := Unquote(`"a"b`); err == nil {
		t.Error("Unquote accepted trailing bytes")
	}
	if n, err := QuotedLen(`"a\"b".rest`); err != nil || n != 6 {
		t.Errorf("QuotedLen = %d, %v", n, err)
	}
}

func TestAppendFloat(t *testing.T) {
	tests := []struct {
		f    float64
		bits int
		want string
	}{
		{222.5, 32, "222.5"},
		{float64(float32(220.222)), 32, "220.222"},
		{float64(float32(33.25)), 32, "33.25"},
		{float64(float32(0.1)), 32, "0.1"},
		{0.1, 64, "0.1"},
		{123456789.123, 64, "123456789.123"},
		{-0.000001, 64, "-0.000001"},
		{1e-7, 64, "1e-7"},
		{1e21, 64, "1e+21"},
		{1e20, 64, "100000000000000000000"},
		{float64(float32(1e-7)), 32, "1e-7"},
		{math.NaN(), 64, "null"},
		{math.Inf(1), 64, "null"},
		{math.Inf(-1), 32, "null"},
	}
	for _, tt := range tests {
		if got := string(AppendFloat(nil, tt.f, tt.bits)); got != tt.want {
			t.Errorf("AppendFloat(%v, %d) = %s, want %s", tt.f, tt.bits, got, tt.want)
		}
	}
}
